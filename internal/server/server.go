package server

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/backend"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/handler"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/metrics"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/middleware"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/session"
	ws "github.com/vladanmitic78/srpskoudruzenje-sub001/internal/websocket"
)

// Auth form posts allowed per client IP and path.
const (
	authPostLimit  = 10
	authPostWindow = time.Minute
)

// Options configures a Server.
type Options struct {
	Backend         *backend.Client
	Sessions        session.Store
	Metrics         *metrics.Metrics
	Assets          fs.FS
	BaseURL         string
	DefaultLanguage string
	SessionTTL      time.Duration
	SecureCookies   bool
	TrustProxy      bool
	Version         string
	BrandingTTL     time.Duration
	Logger          *slog.Logger
}

type Server struct {
	opts        Options
	hub         *ws.Hub
	publicH     *handler.PublicHandler
	authH       *handler.AuthHandler
	dashboardH  *handler.DashboardHandler
	adminH      *handler.AdminHandler
	healthH     *handler.HealthHandler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(opts Options) (*Server, error) {
	logger := opts.Logger
	hub := ws.NewHub(logger.With("component", "websocket"))

	branding := handler.NewBrandingCache(opts.Backend, opts.BrandingTTL, logger.With("component", "branding"))
	renderer, err := handler.NewRenderer(opts.Assets, branding, logger.With("component", "render"))
	if err != nil {
		return nil, err
	}

	deps := func(component string) handler.Deps {
		return handler.Deps{
			Backend:       opts.Backend,
			Sessions:      opts.Sessions,
			Renderer:      renderer,
			Hub:           hub,
			Logger:        logger.With("component", component),
			SessionTTL:    opts.SessionTTL,
			SecureCookies: opts.SecureCookies,
		}
	}

	return &Server{
		opts:       opts,
		hub:        hub,
		publicH:    handler.NewPublicHandler(deps("public")),
		authH:      handler.NewAuthHandler(deps("auth")),
		dashboardH: handler.NewDashboardHandler(deps("dashboard")),
		adminH:     handler.NewAdminHandler(deps("admin")),
		healthH: handler.NewHealthHandler(opts.Version, map[string]handler.Pinger{
			"sessions": opts.Sessions,
			"backend":  opts.Backend,
		}, logger.With("component", "health")),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}, nil
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

// Hub returns the websocket hub.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(s.logger.With("component", "http"), s.opts.TrustProxy))
	r.Use(chimw.Recoverer)
	if s.opts.Metrics != nil {
		r.Use(middleware.Metrics(s.opts.Metrics))
	}

	// Operations endpoints skip sessions and language negotiation.
	r.Get("/health", s.healthH.Health)
	r.Get("/health/ready", s.healthH.Ready)
	if s.opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.opts.Metrics.Handler())
	}
	if static, err := fs.Sub(s.opts.Assets, "static"); err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Language(s.opts.DefaultLanguage))
		r.Use(middleware.LoadSession(s.opts.Sessions, s.logger.With("component", "session")))
		r.NotFound(s.publicH.NotFound)

		s.publicRoutes(r)
		s.authRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			s.memberRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth, middleware.RequireAdmin)
			s.adminRoutes(r)
			r.Get("/ws", ws.Handler(s.hub, s.opts.BaseURL))
		})
	})

	return r
}

func (s *Server) publicRoutes(r chi.Router) {
	r.Get("/", s.publicH.Home)
	r.Get("/news", s.publicH.News)
	r.Get("/news/{id}", s.publicH.NewsDetail)
	r.Get("/gallery", s.publicH.Gallery)
	r.Get("/stories", s.publicH.Stories)
	r.Get("/contact", s.publicH.ContactPage)
	r.Get("/lang/{code}", s.publicH.SetLanguage)
	r.With(s.rateLimited()).Post("/contact", s.publicH.ContactSubmit)
}

func (s *Server) authRoutes(r chi.Router) {
	r.Get("/login", s.authH.LoginPage)
	r.Post("/logout", s.authH.Logout)
	r.Get("/register", s.authH.RegisterPage)
	r.Get("/forgot-password", s.authH.ForgotPasswordPage)
	r.Get("/reset-password", s.authH.ResetPasswordPage)
	r.Get("/verify-email", s.authH.VerifyEmail)

	r.Group(func(r chi.Router) {
		r.Use(s.rateLimited())
		r.Post("/login", s.authH.Login)
		r.Post("/register", s.authH.Register)
		r.Post("/forgot-password", s.authH.ForgotPassword)
		r.Post("/reset-password", s.authH.ResetPassword)
	})
}

func (s *Server) memberRoutes(r chi.Router) {
	r.Get("/dashboard", s.dashboardH.Dashboard)
	r.Post("/dashboard/profile", s.dashboardH.UpdateProfile)
	r.With(s.rateLimited()).Post("/dashboard/password", s.dashboardH.ChangePassword)
	r.Post("/dashboard/cancel", s.dashboardH.CancelMembership)
	r.Get("/invoices/{id}/file", s.dashboardH.InvoiceFile)

	r.Route("/dashboard/family", func(r chi.Router) {
		r.Get("/new", s.dashboardH.NewFamilyMember)
		r.Post("/", s.dashboardH.CreateFamilyMember)
		r.Get("/{id}/edit", s.dashboardH.EditFamilyMember)
		r.Put("/{id}", s.dashboardH.UpdateFamilyMember)
		r.Post("/{id}", s.dashboardH.UpdateFamilyMember)
		r.Delete("/{id}", s.dashboardH.RemoveFamilyMember)
	})
}

func (s *Server) adminRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/", s.adminH.Overview)

		r.Route("/members", func(r chi.Router) {
			r.Get("/", s.adminH.Members)
			r.Get("/export/csv", s.adminH.ExportMembersCSV)
			r.Get("/export/{format}", s.adminH.ExportMembers)
			r.Get("/{id}", s.adminH.MemberDetails)
			r.Post("/{id}/suspend", s.adminH.SuspendMember)
			r.Delete("/{id}", s.adminH.DeleteMember)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", s.adminH.Invoices)
			r.Get("/new", s.adminH.NewInvoice)
			r.Post("/", s.adminH.CreateInvoice)
			r.Get("/filtered-members", s.adminH.FilteredMembers)
			r.Get("/filtered-members.xlsx", s.adminH.ExportFilteredMembers)
			r.Get("/{id}/edit", s.adminH.EditInvoice)
			r.Put("/{id}", s.adminH.UpdateInvoice)
			r.Post("/{id}", s.adminH.UpdateInvoice)
			r.Post("/{id}/paid", s.adminH.MarkInvoicePaid)
			r.Post("/{id}/file", s.adminH.UploadInvoiceFile)
			r.Delete("/{id}", s.adminH.DeleteInvoice)
		})

		r.Route("/families", func(r chi.Router) {
			r.Get("/", s.adminH.Families)
			r.Get("/{userID}/members/new", s.adminH.NewAdminFamilyMember)
			r.Post("/{userID}/members", s.adminH.AdminAddFamilyMember)
			r.Delete("/members/{id}", s.adminH.AdminRemoveFamilyMember)
		})
	})
}

func (s *Server) rateLimited() func(http.Handler) http.Handler {
	return middleware.RateLimit(s.rateLimiter, middleware.ByIP(s.opts.TrustProxy), authPostLimit, authPostWindow)
}
