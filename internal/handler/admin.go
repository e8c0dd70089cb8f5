package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/backend"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/family"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/filter"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/flash"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/form"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/paginate"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/websocket"
)

// MaxInvoiceFileSize is the largest invoice attachment accepted.
const MaxInvoiceFileSize = 10 << 20

var invoiceFileTypes = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var exportExtensions = map[string]string{
	backend.ExportPDF:   "pdf",
	backend.ExportExcel: "xlsx",
	backend.ExportXML:   "xml",
}

type AdminHandler struct {
	base
}

func NewAdminHandler(d Deps) *AdminHandler {
	return &AdminHandler{base: newBase(d)}
}

// fail reports a rejected admin mutation. HTMX requests keep the screen as
// it is; plain posts go back to the tab with the notice.
func (h *AdminHandler) fail(w http.ResponseWriter, r *http.Request, n flash.Notice, back string) {
	if isHTMX(r) {
		keep(w, r, n)
		return
	}
	flash.Write(w, r, n)
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// loadError answers a request whose data could not be fetched.
func (h *AdminHandler) loadError(w http.ResponseWriter, r *http.Request, err error, key string) {
	if h.expired(w, r, err) {
		return
	}
	n := h.failure(r, err, key)
	if isHTMX(r) {
		keep(w, r, n)
		return
	}
	h.Renderer.Page(w, r, http.StatusBadGateway, "error", "error.load", nil, &n)
}

func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Backend.Statistics(r.Context())
	if err != nil {
		h.loadError(w, r, err, "error.load")
		return
	}
	h.Renderer.Page(w, r, http.StatusOK, "admin_overview", "admin.title", stats, nil)
}

// membersAndInvoices fetches the two lists the member and invoice tabs
// work on.
func (h *AdminHandler) membersAndInvoices(r *http.Request) ([]model.User, []model.Invoice, error) {
	users, err := h.Backend.ListUsers(r.Context())
	if err != nil {
		return nil, nil, err
	}
	invoices, err := h.Backend.ListInvoices(r.Context())
	if err != nil {
		return nil, nil, err
	}
	return users, invoices, nil
}

func memberFilter(q url.Values) filter.MemberFilter {
	return filter.MemberFilter{
		Query:         strings.TrimSpace(q.Get("q")),
		InvoiceStatus: orAll(q.Get("invoice_status")),
		HasFamily:     orAll(q.Get("has_family")),
	}
}

func orAll(v string) string {
	if v == "" {
		return filter.All
	}
	return v
}

type membersData struct {
	Users    []model.User
	Invoices []model.Invoice
	Filter   filter.MemberFilter
	Page     paginate.Page
	Query    url.Values
}

func (h *AdminHandler) Members(w http.ResponseWriter, r *http.Request) {
	users, invoices, err := h.membersAndInvoices(r)
	if err != nil {
		h.loadError(w, r, err, "error.load")
		return
	}

	q := r.URL.Query()
	f := memberFilter(q)
	matched := filter.Members(users, invoices, f)
	p := paginate.New(len(matched), pageParam(r), paginate.MembersPerPage)

	q.Del("page")
	data := membersData{
		Users:    paginate.Slice(matched, p),
		Invoices: invoices,
		Filter:   f,
		Page:     p,
		Query:    q,
	}
	if isHTMX(r) {
		h.Renderer.Partial(w, r, "admin_members", "members_table", data)
		return
	}
	h.Renderer.Page(w, r, http.StatusOK, "admin_members", "admin.members", data, nil)
}

func (h *AdminHandler) MemberDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.Backend.UserDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.loadError(w, r, err, "members.details_failed")
		return
	}
	if isHTMX(r) {
		h.Renderer.Partial(w, r, "admin_member_details", "member_details", details)
		return
	}
	h.Renderer.Page(w, r, http.StatusOK, "admin_member_details", "members.details", details, nil)
}

func (h *AdminHandler) SuspendMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Backend.SuspendUser(r.Context(), id); err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "members.suspend_failed"), "/admin/members")
		return
	}
	h.Logger.Info("member suspended", "member_id", id)
	h.notify(r, websocket.EntityMember, "suspended", id)
	done(w, r, flash.Success("members.suspended"), "/admin/members")
}

func (h *AdminHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Backend.DeleteUser(r.Context(), id); err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "members.delete_failed"), "/admin/members")
		return
	}
	h.Logger.Info("member deleted", "member_id", id)
	h.notify(r, websocket.EntityMember, "deleted", id)
	done(w, r, flash.Success("members.deleted"), "/admin/members")
}

// ExportFilename is the download name for a full member export.
func ExportFilename(format, date string) string {
	return "members_" + date + "." + exportExtensions[format]
}

func attachment(w http.ResponseWriter, contentType, filename string) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

// stream copies a backend download to the browser.
func (h *base) stream(w http.ResponseWriter, dl *backend.Download, filename string) {
	defer dl.Body.Close()
	attachment(w, dl.ContentType, filename)
	if _, err := io.Copy(w, dl.Body); err != nil {
		h.Logger.Error("stream download", "file", filename, "error", err)
	}
}

func (h *AdminHandler) ExportMembers(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if _, ok := exportExtensions[format]; !ok {
		http.NotFound(w, r)
		return
	}

	dl, err := h.Backend.ExportMembers(r.Context(), format)
	if err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "members.export_failed"), "/admin/members")
		return
	}
	h.stream(w, dl, ExportFilename(format, today(h.now())))
}

// ExportMembersCSV writes the members tab's current filtered list as CSV.
func (h *AdminHandler) ExportMembersCSV(w http.ResponseWriter, r *http.Request) {
	users, invoices, err := h.membersAndInvoices(r)
	if err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "members.export_failed"), "/admin/members")
		return
	}

	matched := filter.Members(users, invoices, memberFilter(r.URL.Query()))
	attachment(w, "text/csv; charset=utf-8", filter.CSVFilename(today(h.now())))
	if err := filter.WriteCSV(w, matched, invoices); err != nil {
		h.Logger.Error("write members csv", "error", err)
	}
}

func invoiceFilter(q url.Values) filter.InvoiceFilter {
	return filter.InvoiceFilter{
		InvoiceID:     q.Get("invoice_id"),
		PaymentStatus: orAll(q.Get("payment_status")),
		TrainingGroup: orAll(q.Get("training_group")),
	}
}

type invoicesData struct {
	Invoices []model.Invoice
	All      []model.Invoice
	Users    []model.User
	Groups   []string
	Filter   filter.InvoiceFilter
}

func (h *AdminHandler) Invoices(w http.ResponseWriter, r *http.Request) {
	users, invoices, err := h.membersAndInvoices(r)
	if err != nil {
		h.loadError(w, r, err, "invoices.load_failed")
		return
	}
	sort.SliceStable(invoices, func(i, j int) bool { return invoices[i].DueDate > invoices[j].DueDate })

	f := invoiceFilter(r.URL.Query())
	data := invoicesData{
		Invoices: filter.Invoices(invoices, users, f),
		All:      invoices,
		Users:    users,
		Groups:   filter.TrainingGroups(users),
		Filter:   f,
	}
	if isHTMX(r) {
		h.Renderer.Partial(w, r, "admin_invoices", "invoices_table", data)
		return
	}
	h.Renderer.Page(w, r, http.StatusOK, "admin_invoices", "admin.invoices", data, nil)
}

type invoiceFormData struct {
	ID     string
	Form   form.InvoiceForm
	Errors form.Errors
	Users  []model.User
	Groups []string
	Search string
}

// Hidden lists the selected ids the member search currently hides. The
// dialog posts them as hidden inputs so a search never drops a selection.
func (d *invoiceFormData) Hidden() []string {
	shown := make(map[string]bool, len(d.Users))
	for _, u := range d.Users {
		shown[u.ID] = true
	}
	var ids []string
	for _, id := range d.Form.UserIDs {
		if !shown[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Chosen returns the selected members among the listed users.
func (d *invoiceFormData) Chosen() []model.User {
	var out []model.User
	for _, u := range d.Users {
		if d.Form.Selected(u.ID) {
			out = append(out, u)
		}
	}
	return out
}

// invoiceForm answers with the invoice dialog: the partial for HTMX, the
// standalone page otherwise.
func (h *AdminHandler) invoiceForm(w http.ResponseWriter, r *http.Request, status int, fd *invoiceFormData, n *flash.Notice) {
	if isHTMX(r) {
		if n != nil {
			flash.Trigger(w, *n, lang(r))
		}
		h.Renderer.Partial(w, r, "admin_invoice_form", "invoice_form", fd)
		return
	}
	title := "invoices.create"
	if fd.ID != "" {
		title = "invoices.edit"
	}
	h.Renderer.Page(w, r, status, "admin_invoice_form", title, fd, n)
}

// selectable fills the member picker of fd from a fresh user list.
func (h *AdminHandler) selectable(r *http.Request, fd *invoiceFormData) ([]model.User, error) {
	users, err := h.Backend.ListUsers(r.Context())
	if err != nil {
		return nil, err
	}
	fd.Search = r.FormValue("member_q")
	fd.Users = filter.SelectableForInvoice(users, fd.Search)
	fd.Groups = filter.TrainingGroups(users)
	return users, nil
}

// NewInvoice shows the invoice dialog. It also redraws an open dialog when
// the member picker is searched or preselected by training group or by "no
// unpaid invoices"; the typed fields and the invoice id come back in the
// query.
func (h *AdminHandler) NewInvoice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fd := &invoiceFormData{ID: q.Get("id"), Form: form.ParseInvoice(r)}
	if fd.Form.Currency == "" {
		fd.Form.Currency = model.DefaultCurrency
	}
	users, err := h.selectable(r, fd)
	if err != nil {
		h.loadError(w, r, err, "invoices.load_failed")
		return
	}

	switch q.Get("select") {
	case "group":
		fd.Form.Add(filter.InGroup(users, q.Get("group"))...)
		fd.Form.TrainingGroup = q.Get("group")
	case "without_unpaid":
		invoices, err := h.Backend.ListInvoices(r.Context())
		if err != nil {
			h.loadError(w, r, err, "invoices.load_failed")
			return
		}
		fd.Form.UserIDs = filter.WithoutUnpaid(users, invoices)
	case "none":
		fd.Form.UserIDs = nil
	}
	h.invoiceForm(w, r, http.StatusOK, fd, nil)
}

func (h *AdminHandler) EditInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	invoices, err := h.Backend.ListInvoices(r.Context())
	if err != nil {
		h.loadError(w, r, err, "invoices.load_failed")
		return
	}
	for _, inv := range invoices {
		if inv.ID != id {
			continue
		}
		fd := &invoiceFormData{ID: id, Form: form.InvoiceFromModel(inv)}
		if _, err := h.selectable(r, fd); err != nil {
			h.loadError(w, r, err, "invoices.load_failed")
			return
		}
		h.invoiceForm(w, r, http.StatusOK, fd, nil)
		return
	}
	n := flash.Error("error.not_found")
	h.Renderer.Page(w, r, http.StatusNotFound, "error", "error.not_found", nil, &n)
}

// invalidInvoice re-renders the dialog with the validation errors.
func (h *AdminHandler) invalidInvoice(w http.ResponseWriter, r *http.Request, id string, f form.InvoiceForm, errs form.Errors) {
	fd := &invoiceFormData{ID: id, Form: f, Errors: errs}
	if _, err := h.selectable(r, fd); err != nil {
		h.loadError(w, r, err, "invoices.load_failed")
		return
	}
	n := flash.ErrorText(errs.First())
	h.invoiceForm(w, r, http.StatusUnprocessableEntity, fd, &n)
}

// rejectedInvoice answers a create or update the backend refused. HTMX keeps
// the open dialog; a plain post gets the dialog back with what was typed.
func (h *AdminHandler) rejectedInvoice(w http.ResponseWriter, r *http.Request, id string, f form.InvoiceForm, err error) {
	if h.expired(w, r, err) {
		return
	}
	n := h.failure(r, err, "invoices.failed")
	if isHTMX(r) {
		keep(w, r, n)
		return
	}
	fd := &invoiceFormData{ID: id, Form: f}
	if _, err := h.selectable(r, fd); err != nil {
		h.loadError(w, r, err, "invoices.load_failed")
		return
	}
	h.invoiceForm(w, r, http.StatusOK, fd, &n)
}

func (h *AdminHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	f := form.ParseInvoice(r)
	if errs := form.Validate(f); errs != nil {
		h.invalidInvoice(w, r, "", f, errs)
		return
	}

	inv, err := h.Backend.CreateInvoice(r.Context(), f.Input())
	if err != nil {
		h.rejectedInvoice(w, r, "", f, err)
		return
	}
	h.Logger.Info("invoice created", "invoice_id", inv.ID, "members", len(f.UserIDs))
	h.notify(r, websocket.EntityInvoice, "created", inv.ID)
	done(w, r, flash.Success("invoices.created"), "/admin/invoices")
}

// UpdateInvoice saves the edit dialog. Members are fixed once an invoice
// exists; a paid status without a date is paid today.
func (h *AdminHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f := form.ParseInvoice(r)
	if f.Status == "" {
		f.Status = model.InvoiceUnpaid
	}
	if errs := form.Validate(f); errs != nil {
		h.invalidInvoice(w, r, id, f, errs)
		return
	}
	if f.Status == model.InvoicePaid && f.PaymentDate == "" {
		f.PaymentDate = today(h.now())
	}

	if err := h.Backend.UpdateInvoice(r.Context(), id, f.Input()); err != nil {
		h.rejectedInvoice(w, r, id, f, err)
		return
	}
	h.notify(r, websocket.EntityInvoice, "updated", id)
	done(w, r, flash.Success("invoices.updated"), "/admin/invoices")
}

// MarkInvoicePaid records today as the payment date.
func (h *AdminHandler) MarkInvoicePaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Backend.MarkInvoicePaid(r.Context(), id, today(h.now())); err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "invoices.failed"), "/admin/invoices")
		return
	}
	h.notify(r, websocket.EntityInvoice, "paid", id)
	done(w, r, flash.Success("invoices.paid_ok"), "/admin/invoices")
}

func (h *AdminHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Backend.DeleteInvoice(r.Context(), id); err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "invoices.failed"), "/admin/invoices")
		return
	}
	h.notify(r, websocket.EntityInvoice, "deleted", id)
	done(w, r, flash.Success("invoices.deleted"), "/admin/invoices")
}

// ValidInvoiceFile reports whether name has an accepted extension.
func ValidInvoiceFile(name string) bool {
	return invoiceFileTypes[strings.ToLower(path.Ext(name))]
}

func (h *AdminHandler) UploadInvoiceFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	r.Body = http.MaxBytesReader(w, r.Body, MaxInvoiceFileSize+1<<20)
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		h.fail(w, r, flash.Error("invoices.file_type"), "/admin/invoices")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.fail(w, r, flash.Error("error.required"), "/admin/invoices")
		return
	}
	defer file.Close()

	if !ValidInvoiceFile(header.Filename) || header.Size > MaxInvoiceFileSize {
		h.fail(w, r, flash.Error("invoices.file_type"), "/admin/invoices")
		return
	}

	if err := h.Backend.UploadInvoiceFile(r.Context(), id, header.Filename, file); err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "invoices.failed"), "/admin/invoices")
		return
	}
	h.notify(r, websocket.EntityInvoice, "updated", id)
	done(w, r, flash.Success("invoices.uploaded"), "/admin/invoices")
}

func filteredMembersFilter(q url.Values) model.MemberFilter {
	return model.MemberFilter{
		InvoiceID:     q.Get("invoice_id"),
		PaymentStatus: orAll(q.Get("payment_status")),
		TrainingGroup: orAll(q.Get("training_group")),
	}
}

type filteredMembersData struct {
	Members  []model.User
	Filter   model.MemberFilter
	Invoices []model.Invoice
	Groups   []string
	Query    url.Values
}

// FilteredMembers shows the backend's member report for an invoice,
// payment status and training group.
func (h *AdminHandler) FilteredMembers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := filteredMembersFilter(q)

	members, err := h.Backend.FilteredMembers(r.Context(), f)
	if err != nil {
		h.loadError(w, r, err, "invoices.load_failed")
		return
	}

	data := filteredMembersData{Members: members, Filter: f, Query: q}
	if isHTMX(r) {
		h.Renderer.Partial(w, r, "admin_filtered_members", "filtered_members", data)
		return
	}

	// The full page also needs the filter choices.
	users, invoices, err := h.membersAndInvoices(r)
	if err != nil {
		h.loadError(w, r, err, "invoices.load_failed")
		return
	}
	data.Invoices = invoices
	data.Groups = filter.TrainingGroups(users)
	h.Renderer.Page(w, r, http.StatusOK, "admin_filtered_members", "invoices.filtered_members", data, nil)
}

func (h *AdminHandler) ExportFilteredMembers(w http.ResponseWriter, r *http.Request) {
	dl, err := h.Backend.ExportFilteredMembers(r.Context(), filteredMembersFilter(r.URL.Query()))
	if err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "members.export_failed"), "/admin/invoices/filtered-members")
		return
	}
	name := dl.Filename
	if name == "" {
		name = "filtered_members_" + today(h.now()) + ".xlsx"
	}
	h.stream(w, dl, name)
}

type familiesData struct {
	Families []model.Family
	Query    string
}

func (h *AdminHandler) Families(w http.ResponseWriter, r *http.Request) {
	families, err := h.Backend.AdminListFamilies(r.Context())
	if err != nil {
		h.loadError(w, r, err, "family.load_failed")
		return
	}

	raw := strings.TrimSpace(r.URL.Query().Get("q"))
	if q := strings.ToLower(raw); q != "" {
		kept := families[:0:0]
		for _, f := range families {
			if strings.Contains(strings.ToLower(f.FullName), q) || strings.Contains(strings.ToLower(f.Email), q) {
				kept = append(kept, f)
			}
		}
		families = kept
	}
	sort.SliceStable(families, func(i, j int) bool { return families[i].FullName < families[j].FullName })

	h.Renderer.Page(w, r, http.StatusOK, "admin_families", "admin.families", familiesData{Families: families, Query: raw}, nil)
}

type adminFamilyFormData struct {
	UserID        string
	Form          family.AdminForm
	Errors        form.Errors
	Relationships []string
}

func (h *AdminHandler) adminFamilyForm(w http.ResponseWriter, r *http.Request, status int, fd *adminFamilyFormData, n *flash.Notice) {
	fd.Relationships = family.Relationships
	if isHTMX(r) {
		if n != nil {
			flash.Trigger(w, *n, lang(r))
		}
		h.Renderer.Partial(w, r, "admin_family_form", "admin_family_form", fd)
		return
	}
	h.Renderer.Page(w, r, status, "admin_family_form", "family.add", fd, n)
}

func (h *AdminHandler) NewAdminFamilyMember(w http.ResponseWriter, r *http.Request) {
	fd := &adminFamilyFormData{
		UserID: chi.URLParam(r, "userID"),
		Form:   family.AdminForm{Relationship: model.RelationshipChild},
	}
	h.adminFamilyForm(w, r, http.StatusOK, fd, nil)
}

func (h *AdminHandler) AdminAddFamilyMember(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	f := family.ParseAdmin(r)
	if errs := f.Validate(h.now()); errs != nil {
		n := flash.ErrorText(errs.First())
		h.adminFamilyForm(w, r, http.StatusUnprocessableEntity, &adminFamilyFormData{UserID: userID, Form: f, Errors: errs}, &n)
		return
	}

	if _, err := h.Backend.AdminAddFamilyMember(r.Context(), userID, f.Input()); err != nil {
		if h.expired(w, r, err) {
			return
		}
		n := h.failure(r, err, "family.failed")
		if isHTMX(r) {
			keep(w, r, n)
			return
		}
		h.adminFamilyForm(w, r, http.StatusOK, &adminFamilyFormData{UserID: userID, Form: f}, &n)
		return
	}
	h.notify(r, websocket.EntityFamily, "created", userID)
	done(w, r, flash.Success("family.added"), "/admin/families")
}

// AdminRemoveFamilyMember unlinks a member; delete_account=true removes the
// member's own account as well.
func (h *AdminHandler) AdminRemoveFamilyMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	deleteAccount := r.URL.Query().Get("delete_account") == "true"
	if err := h.Backend.AdminRemoveFamilyMember(r.Context(), id, deleteAccount); err != nil {
		if h.expired(w, r, err) {
			return
		}
		h.fail(w, r, h.failure(r, err, "family.failed"), "/admin/families")
		return
	}
	h.Logger.Info("family member removed", "member_id", id, "delete_account", deleteAccount)
	h.notify(r, websocket.EntityFamily, "deleted", id)
	done(w, r, flash.Success("family.removed"), "/admin/families")
}
