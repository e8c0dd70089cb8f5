package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/backend"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/flash"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/form"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/session"
)

type AuthHandler struct {
	base
}

func NewAuthHandler(d Deps) *AuthHandler {
	return &AuthHandler{base: newBase(d)}
}

type loginData struct {
	Form   form.LoginForm
	Errors form.Errors
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Page(w, r, http.StatusOK, "login", "login.title", loginData{}, nil)
}

// landing is where a freshly signed-in user is sent.
func landing(role string) string {
	if model.IsAdminRole(role) {
		return "/admin"
	}
	return "/dashboard"
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	f := form.ParseLogin(r)
	// The password is never rendered back.
	rerender := func(status int, errs form.Errors, n flash.Notice) {
		h.Renderer.Page(w, r, status, "login", "login.title", loginData{Form: form.LoginForm{Username: f.Username}, Errors: errs}, &n)
	}

	if errs := form.Validate(f); errs != nil {
		rerender(http.StatusUnprocessableEntity, errs, flash.ErrorText(errs.First()))
		return
	}

	res, err := h.Backend.Login(r.Context(), f.Username, f.Password)
	if err != nil {
		// A 401 here means bad credentials, not an expired session.
		if errors.Is(err, backend.ErrUnauthorized) {
			rerender(http.StatusUnauthorized, nil, h.failure(r, err, "login.failed"))
			return
		}
		rerender(http.StatusOK, nil, h.failure(r, err, "login.failed"))
		return
	}

	// A login on top of an existing session replaces it.
	if old := session.TokenFromRequest(r); old != "" {
		if err := h.Sessions.Delete(r.Context(), old); err != nil {
			h.Logger.Error("delete previous session", "error", err)
		}
	}

	now := h.now()
	sess, err := h.Sessions.Create(r.Context(), session.Data{
		UserID:      res.User.ID,
		Username:    res.User.Username,
		FullName:    res.User.FullName,
		Role:        res.User.Role,
		YearOfBirth: res.User.YearOfBirth,
		Bearer:      res.Token,
		ExpiresAt:   backend.SessionExpiry(res.Token, now, h.SessionTTL),
	})
	if err != nil {
		h.Logger.Error("create session", "error", err)
		rerender(http.StatusInternalServerError, nil, flash.Error("error.generic"))
		return
	}

	session.SetCookie(w, r, sess.Token, sess.ExpiresAt, h.SecureCookies)
	h.Logger.Info("user logged in", "user_id", res.User.ID, "role", res.User.Role)
	done(w, r, flash.Success("login.welcome"), landing(res.User.Role))
}

// Logout only ends the local session; the backend keeps no session state.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := session.TokenFromRequest(r); token != "" {
		if err := h.Sessions.Delete(context.WithoutCancel(r.Context()), token); err != nil {
			h.Logger.Error("delete session", "error", err)
		}
	}
	session.ClearCookie(w)
	done(w, r, flash.Info("nav.logout"), "/login")
}

type registerData struct {
	Form   form.RegisterForm
	Errors form.Errors
	Done   bool
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Page(w, r, http.StatusOK, "register", "register.title", registerData{}, nil)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	f := form.ParseRegister(r)
	rerender := func(status int, errs form.Errors, n flash.Notice) {
		f.Password, f.ConfirmPassword = "", ""
		h.Renderer.Page(w, r, status, "register", "register.title", registerData{Form: f, Errors: errs}, &n)
	}

	if errs := form.Validate(f); errs != nil {
		rerender(http.StatusUnprocessableEntity, errs, flash.ErrorText(errs.First()))
		return
	}

	if _, err := h.Backend.Register(r.Context(), f.Registration()); err != nil {
		rerender(http.StatusOK, nil, h.failure(r, err, "register.failed"))
		return
	}

	n := flash.Success("register.done")
	h.Renderer.Page(w, r, http.StatusOK, "register", "register.title", registerData{Done: true}, &n)
}

type forgotData struct {
	Form   form.ForgotPasswordForm
	Errors form.Errors
	Sent   bool
}

func (h *AuthHandler) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Page(w, r, http.StatusOK, "forgot_password", "forgot.title", forgotData{}, nil)
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	f := form.ParseForgotPassword(r)
	if errs := form.Validate(f); errs != nil {
		n := flash.ErrorText(errs.First())
		h.Renderer.Page(w, r, http.StatusUnprocessableEntity, "forgot_password", "forgot.title", forgotData{Form: f, Errors: errs}, &n)
		return
	}

	if err := h.Backend.ForgotPassword(r.Context(), f.Email); err != nil {
		n := h.failure(r, err, "forgot.failed")
		h.Renderer.Page(w, r, http.StatusOK, "forgot_password", "forgot.title", forgotData{Form: f}, &n)
		return
	}

	h.Renderer.Page(w, r, http.StatusOK, "forgot_password", "forgot.title", forgotData{Form: f, Sent: true}, nil)
}

type resetData struct {
	Token  string
	Errors form.Errors
}

func (h *AuthHandler) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		done(w, r, flash.Error("reset.invalid_link"), "/login")
		return
	}
	h.Renderer.Page(w, r, http.StatusOK, "reset_password", "reset.title", resetData{Token: token}, nil)
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	f := form.ParseResetPassword(r)
	if f.Token == "" {
		done(w, r, flash.Error("reset.invalid_link"), "/login")
		return
	}
	if errs := form.Validate(f); errs != nil {
		n := flash.ErrorText(errs.First())
		h.Renderer.Page(w, r, http.StatusUnprocessableEntity, "reset_password", "reset.title", resetData{Token: f.Token, Errors: errs}, &n)
		return
	}

	if err := h.Backend.ResetPassword(r.Context(), f.Token, f.Password); err != nil {
		n := h.failure(r, err, "reset.failed")
		h.Renderer.Page(w, r, http.StatusOK, "reset_password", "reset.title", resetData{Token: f.Token}, &n)
		return
	}

	done(w, r, flash.Success("reset.done"), "/login")
}

type verifyData struct {
	OK      bool
	Missing bool
	Message string
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		h.Renderer.Page(w, r, http.StatusBadRequest, "verify_email", "verify.title", verifyData{Missing: true}, nil)
		return
	}

	res, err := h.Backend.VerifyEmail(r.Context(), token)
	if err != nil {
		h.Logger.Warn("verify email", "status", backend.StatusCode(err), "error", err)
		h.Renderer.Page(w, r, http.StatusOK, "verify_email", "verify.title", verifyData{Message: backend.Message(err, "")}, nil)
		return
	}
	h.Renderer.Page(w, r, http.StatusOK, "verify_email", "verify.title", verifyData{OK: true, Message: res.Message}, nil)
}
