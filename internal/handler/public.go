package handler

import (
	"net/http"
	"net/url"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/flash"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/form"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/i18n"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/middleware"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/paginate"
)

const (
	// newsFetchLimit bounds how many news items are fetched for local
	// paging.
	newsFetchLimit = 100
	homeNewsCount  = 3
)

type PublicHandler struct {
	base
}

func NewPublicHandler(d Deps) *PublicHandler {
	return &PublicHandler{base: newBase(d)}
}

// newest sorts news by date, newest first.
func newest(items []model.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})
}

func (h *PublicHandler) fetchNews(r *http.Request) ([]model.NewsItem, error) {
	page, err := h.Backend.ListNews(r.Context(), newsFetchLimit, 0)
	if err != nil {
		return nil, err
	}
	newest(page.News)
	return page.News, nil
}

type homeData struct {
	News  []model.NewsItem
	Story *model.Story
}

func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	var data homeData
	var notice *flash.Notice

	news, err := h.fetchNews(r)
	if err != nil {
		n := h.failure(r, err, "error.load")
		notice = &n
	}
	if len(news) > homeNewsCount {
		news = news[:homeNewsCount]
	}
	data.News = news

	if stories, err := h.Backend.ListStories(r.Context()); err == nil && len(stories) > 0 {
		sort.SliceStable(stories, func(i, j int) bool { return stories[i].Date > stories[j].Date })
		data.Story = &stories[0]
	}

	h.Renderer.Page(w, r, http.StatusOK, "home", "nav.home", data, notice)
}

type newsData struct {
	Items []model.NewsItem
	Page  paginate.Page
	Query url.Values
}

func (h *PublicHandler) News(w http.ResponseWriter, r *http.Request) {
	var notice *flash.Notice
	news, err := h.fetchNews(r)
	if err != nil {
		n := h.failure(r, err, "error.load")
		notice = &n
	}

	p := paginate.New(len(news), pageParam(r), paginate.NewsPerPage)
	data := newsData{
		Items: paginate.Slice(news, p),
		Page:  p,
		Query: url.Values{},
	}
	h.Renderer.Page(w, r, http.StatusOK, "news", "news.title", data, notice)
}

// NewsDetail shows one news item. The backend has no single-item endpoint,
// so the item is looked up in the list.
func (h *PublicHandler) NewsDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	news, err := h.fetchNews(r)
	if err != nil {
		n := h.failure(r, err, "error.load")
		h.Renderer.Page(w, r, http.StatusBadGateway, "error", "error.load", nil, &n)
		return
	}
	for _, item := range news {
		if item.ID == id {
			h.Renderer.Page(w, r, http.StatusOK, "news_detail", "news.title", item, nil)
			return
		}
	}
	h.NotFound(w, r)
}

func (h *PublicHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	var notice *flash.Notice
	albums, err := h.Backend.ListGallery(r.Context())
	if err != nil {
		n := h.failure(r, err, "error.load")
		notice = &n
	}
	sort.SliceStable(albums, func(i, j int) bool { return albums[i].Date > albums[j].Date })
	h.Renderer.Page(w, r, http.StatusOK, "gallery", "gallery.title", albums, notice)
}

func (h *PublicHandler) Stories(w http.ResponseWriter, r *http.Request) {
	var notice *flash.Notice
	stories, err := h.Backend.ListStories(r.Context())
	if err != nil {
		n := h.failure(r, err, "error.load")
		notice = &n
	}
	sort.SliceStable(stories, func(i, j int) bool { return stories[i].Date > stories[j].Date })
	h.Renderer.Page(w, r, http.StatusOK, "stories", "stories.title", stories, notice)
}

type contactData struct {
	Form     form.ContactForm
	Errors   form.Errors
	Settings *model.Settings
	Topics   []string
}

func (h *PublicHandler) contactPage(w http.ResponseWriter, r *http.Request, status int, f form.ContactForm, errs form.Errors, notice *flash.Notice) {
	settings, err := h.Backend.Settings(r.Context())
	if err != nil {
		h.Logger.Warn("load settings", "error", err)
	}
	data := contactData{Form: f, Errors: errs, Settings: settings, Topics: form.ContactTopics}
	h.Renderer.Page(w, r, status, "contact", "contact.title", data, notice)
}

func (h *PublicHandler) ContactPage(w http.ResponseWriter, r *http.Request) {
	h.contactPage(w, r, http.StatusOK, form.ContactForm{}, nil, nil)
}

func (h *PublicHandler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	f := form.ParseContact(r)
	if errs := form.Validate(f); errs != nil {
		n := flash.ErrorText(errs.First())
		h.contactPage(w, r, http.StatusUnprocessableEntity, f, errs, &n)
		return
	}

	if err := h.Backend.SubmitContact(r.Context(), f.ContactMessage()); err != nil {
		n := h.failure(r, err, "contact.failed")
		h.contactPage(w, r, http.StatusOK, f, nil, &n)
		return
	}

	done(w, r, flash.Success("contact.sent"), "/contact")
}

// SetLanguage stores the chosen language and returns to the page the
// switcher was used on.
func (h *PublicHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	if code, ok := i18n.Parse(chi.URLParam(r, "code")); ok {
		middleware.SetLanguageCookie(w, code)
	}
	http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusSeeOther)
}

// safeNext only allows local absolute paths as redirect targets.
func safeNext(next string) string {
	if next == "" || next[0] != '/' || (len(next) > 1 && (next[1] == '/' || next[1] == '\\')) {
		return "/"
	}
	return next
}

func (h *PublicHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	n := flash.Error("error.not_found")
	h.Renderer.Page(w, r, http.StatusNotFound, "error", "error.not_found", nil, &n)
}
