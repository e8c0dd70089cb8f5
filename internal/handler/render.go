package handler

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/auth"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/family"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/filter"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/flash"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/i18n"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/paginate"
)

var hexColorRegexp = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// View is the data every page template receives. Page specific data sits
// in Data.
type View struct {
	Title    string
	Lang     string
	Langs    []i18n.Option
	Auth     *auth.AuthContext
	Notice   *flash.Notice
	Branding model.Branding
	Path     string
	Data     any
}

func (v *View) IsAdmin() bool {
	return v.Auth != nil && model.IsAdminRole(v.Auth.Role)
}

// PrimaryColor returns the branding color as CSS, or the default when the
// backend sent something that is not a hex color.
func (v *View) PrimaryColor() template.CSS {
	return safeColor(v.Branding.Colors.Primary, model.DefaultBranding().Colors.Primary)
}

func (v *View) SecondaryColor() template.CSS {
	return safeColor(v.Branding.Colors.Secondary, model.DefaultBranding().Colors.Secondary)
}

func safeColor(c, def string) template.CSS {
	if hexColorRegexp.MatchString(c) {
		return template.CSS(c)
	}
	return template.CSS(def)
}

// Renderer executes the embedded templates. Each page is parsed together
// with the layout and the shared partials.
type Renderer struct {
	pages    map[string]*template.Template
	branding *BrandingCache
	logger   *slog.Logger
	now      func() time.Time
}

func NewRenderer(fsys fs.FS, branding *BrandingCache, logger *slog.Logger) (*Renderer, error) {
	rd := &Renderer{
		pages:    make(map[string]*template.Template),
		branding: branding,
		logger:   logger,
		now:      time.Now,
	}

	base, err := template.New("").Funcs(rd.funcs()).ParseFS(fsys, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}
	for _, f := range files {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout: %w", err)
		}
		if _, err := t.ParseFS(fsys, f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		rd.pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}
	return rd, nil
}

func (rd *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"t":    i18n.T,
		"pick": i18n.Pick,
		"age": func(year string) int {
			return family.Age(year, rd.now())
		},
		"rel":           family.Label,
		"userNames":     filter.UserNames,
		"userName":      filter.UserName,
		"invoiceStatus": filter.InvoiceStatus,
		"showing":       showing,
		"date":          formatDate,
		"money":         formatMoney,
		"add":           func(a, b int) int { return a + b },
		"dict":          dict,
		"has": func(list []string, s string) bool {
			for _, v := range list {
				if v == s {
					return true
				}
			}
			return false
		},
		"pageURL": pageURL,
		"withQuery": func(path string, q url.Values) string {
			if len(q) == 0 {
				return path
			}
			return path + "?" + q.Encode()
		},
	}
}

// showing renders the "Showing X to Y of Z" line for p.
func showing(lang string, p paginate.Page) string {
	from, to, total := p.Showing()
	return i18n.T(lang, "pagination.showing", from, to, total)
}

// formatDate shortens backend timestamps to YYYY-MM-DD.
func formatDate(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}

func formatMoney(amount float64, currency string) string {
	if currency == "" {
		currency = model.DefaultCurrency
	}
	return strconv.FormatFloat(amount, 'f', 2, 64) + " " + currency
}

func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// pageURL returns the query string for page n, keeping the other params.
func pageURL(q url.Values, n int) string {
	out := url.Values{}
	for k, v := range q {
		out[k] = v
	}
	out.Set("page", strconv.Itoa(n))
	return "?" + out.Encode()
}

// view builds the View for r. Auth, language and branding come from the
// request context.
func (rd *Renderer) view(r *http.Request, title string, data any) *View {
	lang := i18n.FromContext(r.Context())
	v := &View{
		Title: title,
		Lang:  lang,
		Langs: i18n.Options(lang),
		Path:  r.URL.Path,
		Data:  data,
	}
	if ac, ok := auth.FromContext(r.Context()); ok {
		v.Auth = &ac
	}
	if rd.branding != nil {
		v.Branding = rd.branding.Get(r.Context())
	} else {
		v.Branding = model.DefaultBranding()
	}
	return v
}

// Page renders a full page. A notice passed in wins over one waiting in the
// flash cookie; the cookie is consumed either way.
func (rd *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, page, title string, data any, notice *flash.Notice) {
	v := rd.view(r, title, data)
	if n, ok := flash.ReadAndClear(w, r); ok {
		v.Notice = &n
	}
	if notice != nil {
		v.Notice = notice
	}
	rd.execute(w, status, page, "layout", v)
}

// Partial renders one named template of page for an HTMX swap.
func (rd *Renderer) Partial(w http.ResponseWriter, r *http.Request, page, name string, data any) {
	rd.execute(w, http.StatusOK, page, name, rd.view(r, "", data))
}

func (rd *Renderer) execute(w http.ResponseWriter, status int, page, name string, v *View) {
	t, ok := rd.pages[page]
	if !ok {
		rd.logger.Error("unknown template", "page", page)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, v); err != nil {
		rd.logger.Error("template error", "page", page, "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
