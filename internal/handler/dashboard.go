package handler

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/backend"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/family"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/flash"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/form"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/session"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/websocket"
)

type DashboardHandler struct {
	base
}

func NewDashboardHandler(d Deps) *DashboardHandler {
	return &DashboardHandler{base: newBase(d)}
}

type familyFormData struct {
	ID            string
	Form          family.Form
	Errors        form.Errors
	Relationships []string
}

type dashboardData struct {
	User          model.User
	Profile       form.ProfileForm
	ProfileErrors form.Errors
	PasswordErrs  form.Errors
	Invoices      []model.Invoice
	Family        []model.FamilyMember
	CanAddFamily  bool
	FamilyForm    *familyFormData
}

// load fetches everything the dashboard shows. Only the profile is
// required; invoice or family failures come back as a notice.
func (h *DashboardHandler) load(r *http.Request) (*dashboardData, *flash.Notice, error) {
	ctx := r.Context()
	me, err := h.Backend.Me(ctx)
	if err != nil {
		return nil, nil, err
	}

	data := &dashboardData{
		User:         *me,
		Profile:      form.ProfileFromUser(*me),
		CanAddFamily: family.CanAddMembers(me.YearOfBirth, h.now()),
	}

	var notice *flash.Notice
	invoices, err := h.Backend.MyInvoices(ctx)
	if err != nil {
		n := h.failure(r, err, "invoices.load_failed")
		notice = &n
	}
	sort.SliceStable(invoices, func(i, j int) bool { return invoices[i].DueDate > invoices[j].DueDate })
	data.Invoices = invoices

	members, err := h.Backend.ListFamily(ctx)
	if err != nil {
		n := h.failure(r, err, "family.load_failed")
		notice = &n
	}
	data.Family = members

	return data, notice, nil
}

func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request, status int, mutate func(*dashboardData), notice *flash.Notice) {
	data, loadNotice, err := h.load(r)
	if err != nil {
		if h.expired(w, r, err) {
			return
		}
		n := h.failure(r, err, "error.load")
		h.Renderer.Page(w, r, http.StatusBadGateway, "error", "error.load", nil, &n)
		return
	}
	if mutate != nil {
		mutate(data)
	}
	if notice == nil {
		notice = loadNotice
	}
	h.Renderer.Page(w, r, status, "dashboard", "dashboard.title", data, notice)
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, nil, nil)
}

// InvoiceFile streams an invoice attachment through the session's bearer,
// for members and admins alike.
func (h *DashboardHandler) InvoiceFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	dl, err := h.Backend.DownloadInvoiceFile(r.Context(), id)
	if err != nil {
		if h.expired(w, r, err) {
			return
		}
		status := http.StatusBadGateway
		if backend.StatusCode(err) == http.StatusNotFound {
			status = http.StatusNotFound
		}
		n := h.failure(r, err, "invoice.download_failed")
		h.Renderer.Page(w, r, status, "error", "invoice.download_failed", nil, &n)
		return
	}
	name := dl.Filename
	if name == "" {
		name = "invoice_" + id
	}
	h.stream(w, dl, name)
}

// fail reports a rejected mutation: HTMX requests keep the page as it is,
// plain form posts get the dashboard back with the notice.
func (h *DashboardHandler) fail(w http.ResponseWriter, r *http.Request, n flash.Notice, status int, mutate func(*dashboardData)) {
	if isHTMX(r) {
		keep(w, r, n)
		return
	}
	h.render(w, r, status, mutate, &n)
}

func (h *DashboardHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	f := form.ParseProfile(r)
	if errs := form.Validate(f); errs != nil {
		h.fail(w, r, flash.ErrorText(errs.First()), http.StatusUnprocessableEntity, func(d *dashboardData) {
			d.Profile, d.ProfileErrors = f, errs
		})
		return
	}

	if err := h.Backend.UpdateMe(r.Context(), f.Update()); err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "dashboard.save_failed"), http.StatusOK, func(d *dashboardData) {
			d.Profile = f
		})
		return
	}
	done(w, r, flash.Success("dashboard.saved"), "/dashboard")
}

func (h *DashboardHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	f := form.ParsePassword(r)
	if errs := form.Validate(f); errs != nil {
		h.fail(w, r, flash.ErrorText(errs.First()), http.StatusUnprocessableEntity, func(d *dashboardData) {
			d.PasswordErrs = errs
		})
		return
	}

	if err := h.Backend.ChangePassword(r.Context(), f.Current, f.Password); err != nil {
		// A wrong current password is a 400, so a 401 here is a dead token.
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "dashboard.password_failed"), http.StatusOK, nil)
		return
	}
	done(w, r, flash.Success("dashboard.password_changed"), "/dashboard")
}

// CancelMembership cancels the account at the backend and ends the local
// session.
func (h *DashboardHandler) CancelMembership(w http.ResponseWriter, r *http.Request) {
	if err := h.Backend.CancelMembership(r.Context(), form.Value(r, "reason")); err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "dashboard.cancel_failed"), http.StatusOK, nil)
		return
	}

	if token := session.TokenFromRequest(r); token != "" {
		if err := h.Sessions.Delete(r.Context(), token); err != nil {
			h.Logger.Error("delete session", "error", err)
		}
	}
	session.ClearCookie(w)
	done(w, r, flash.Info("dashboard.cancelled"), "/")
}

// adult checks the age gate against the member's current profile. It
// writes the response and returns false when the member may not manage
// family members.
func (h *DashboardHandler) adult(w http.ResponseWriter, r *http.Request) bool {
	me, err := h.Backend.Me(r.Context())
	if err != nil {
		if h.expired(w, r, err) {
			return false
		}
		h.fail(w, r, h.failure(r, err, "error.load"), http.StatusOK, nil)
		return false
	}
	if !family.CanAddMembers(me.YearOfBirth, h.now()) {
		n := flash.Error("family.under_age")
		if isHTMX(r) {
			keep(w, r, n)
			return false
		}
		h.render(w, r, http.StatusForbidden, nil, &n)
		return false
	}
	return true
}

// familyForm answers with the family dialog: the partial for HTMX, the
// dashboard with the dialog open otherwise.
func (h *DashboardHandler) familyForm(w http.ResponseWriter, r *http.Request, status int, fd *familyFormData, n *flash.Notice) {
	fd.Relationships = family.Relationships
	if isHTMX(r) {
		if n != nil {
			flash.Trigger(w, *n, lang(r))
		}
		h.Renderer.Partial(w, r, "dashboard", "family_form", fd)
		return
	}
	h.render(w, r, status, func(d *dashboardData) { d.FamilyForm = fd }, n)
}

func (h *DashboardHandler) NewFamilyMember(w http.ResponseWriter, r *http.Request) {
	if !h.adult(w, r) {
		return
	}
	h.familyForm(w, r, http.StatusOK, &familyFormData{Form: family.Form{Relationship: model.RelationshipChild}}, nil)
}

func (h *DashboardHandler) EditFamilyMember(w http.ResponseWriter, r *http.Request) {
	if !h.adult(w, r) {
		return
	}
	id := chi.URLParam(r, "id")
	m, err := h.Backend.GetFamilyMember(r.Context(), id)
	if err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "family.load_failed"), http.StatusOK, nil)
		return
	}
	h.familyForm(w, r, http.StatusOK, &familyFormData{ID: id, Form: family.FromMember(*m)}, nil)
}

func (h *DashboardHandler) CreateFamilyMember(w http.ResponseWriter, r *http.Request) {
	if !h.adult(w, r) {
		return
	}
	f := family.Parse(r)
	if errs := f.Validate(); errs != nil {
		n := flash.ErrorText(errs.First())
		h.familyForm(w, r, http.StatusUnprocessableEntity, &familyFormData{Form: f, Errors: errs}, &n)
		return
	}

	if _, err := h.Backend.AddFamilyMember(r.Context(), f.Input()); err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "family.failed"), http.StatusOK, nil)
		return
	}
	h.notify(r, websocket.EntityFamily, "created", "")
	done(w, r, flash.Success("family.added"), "/dashboard")
}

func (h *DashboardHandler) UpdateFamilyMember(w http.ResponseWriter, r *http.Request) {
	if !h.adult(w, r) {
		return
	}
	id := chi.URLParam(r, "id")
	f := family.Parse(r)
	if errs := f.Validate(); errs != nil {
		n := flash.ErrorText(errs.First())
		h.familyForm(w, r, http.StatusUnprocessableEntity, &familyFormData{ID: id, Form: f, Errors: errs}, &n)
		return
	}

	if err := h.Backend.UpdateFamilyMember(r.Context(), id, f.Input()); err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "family.failed"), http.StatusOK, nil)
		return
	}
	h.notify(r, websocket.EntityFamily, "updated", id)
	done(w, r, flash.Success("family.updated"), "/dashboard")
}

func (h *DashboardHandler) RemoveFamilyMember(w http.ResponseWriter, r *http.Request) {
	if !h.adult(w, r) {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.Backend.RemoveFamilyMember(r.Context(), id); err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "family.failed"), http.StatusOK, nil)
		return
	}
	h.notify(r, websocket.EntityFamily, "deleted", id)
	done(w, r, flash.Success("family.removed"), "/dashboard")
}
