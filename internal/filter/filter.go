// Package filter narrows the member and invoice lists shown on the admin
// screens. All functions work on already fetched slices and never mutate
// their input.
package filter

import (
	"strings"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

// Select values shared by the filter forms.
const (
	All = "all"

	StatusPaid   = "paid"
	StatusUnpaid = "unpaid"
	StatusNone   = "none"

	FamilyYes = "yes"
	FamilyNo  = "no"
)

func contains(field, q string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), q)
}

func normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func matchesQuery(u model.User, q string) bool {
	return contains(u.FullName, q) ||
		contains(u.Email, q) ||
		contains(u.Username, q) ||
		contains(u.Phone, q)
}

// SearchMembers keeps users whose name, email, username or phone contains q,
// ignoring case. An empty query keeps everyone.
func SearchMembers(users []model.User, q string) []model.User {
	q = normalize(q)
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if q == "" || matchesQuery(u, q) {
			out = append(out, u)
		}
	}
	return out
}

// MemberFilter is the state of the members tab filter bar.
type MemberFilter struct {
	Query         string
	InvoiceStatus string // all, paid, unpaid, none
	HasFamily     string // all, yes, no
}

// Active reports whether any filter narrows the list.
func (f MemberFilter) Active() bool {
	return strings.TrimSpace(f.Query) != "" ||
		(f.InvoiceStatus != "" && f.InvoiceStatus != All) ||
		(f.HasFamily != "" && f.HasFamily != All)
}

// invoicesFor returns the invoices addressed to userID.
func invoicesFor(invoices []model.Invoice, userID string) []model.Invoice {
	var out []model.Invoice
	for _, inv := range invoices {
		if inv.HasMember(userID) {
			out = append(out, inv)
		}
	}
	return out
}

func anyStatus(invoices []model.Invoice, status string) bool {
	for _, inv := range invoices {
		if inv.Status == status {
			return true
		}
	}
	return false
}

// Members applies f to users. Invoice status "paid" keeps users with at
// least one paid invoice, "unpaid" users with at least one unpaid invoice
// and "none" users without invoices.
func Members(users []model.User, invoices []model.Invoice, f MemberFilter) []model.User {
	matched := SearchMembers(users, f.Query)
	out := matched[:0]
	for _, u := range matched {
		switch f.InvoiceStatus {
		case StatusPaid, StatusUnpaid:
			if !anyStatus(invoicesFor(invoices, u.ID), f.InvoiceStatus) {
				continue
			}
		case StatusNone:
			if len(invoicesFor(invoices, u.ID)) > 0 {
				continue
			}
		}

		hasFamily := len(u.FamilyMembers) > 0
		if f.HasFamily == FamilyYes && !hasFamily {
			continue
		}
		if f.HasFamily == FamilyNo && hasFamily {
			continue
		}

		out = append(out, u)
	}
	return out
}

// InvoiceStatus summarizes a user's invoices as shown in the CSV export.
func InvoiceStatus(invoices []model.Invoice, userID string) string {
	mine := invoicesFor(invoices, userID)
	switch {
	case len(mine) == 0:
		return "No invoices"
	case anyStatus(mine, model.InvoiceUnpaid):
		return "Has unpaid"
	default:
		return "All paid"
	}
}

// InvoiceFilter is the state of the invoices tab filter bar.
type InvoiceFilter struct {
	InvoiceID     string
	PaymentStatus string // all, paid, unpaid
	TrainingGroup string // all or a group name
}

// Active reports whether any filter narrows the list.
func (f InvoiceFilter) Active() bool {
	return f.InvoiceID != "" ||
		(f.PaymentStatus != "" && f.PaymentStatus != All) ||
		(f.TrainingGroup != "" && f.TrainingGroup != All)
}

// Invoices applies f to invoices. The training group filter keeps invoices
// addressed to at least one user of that group.
func Invoices(invoices []model.Invoice, users []model.User, f InvoiceFilter) []model.Invoice {
	var group map[string]bool
	if f.TrainingGroup != "" && f.TrainingGroup != All {
		group = make(map[string]bool)
		for _, u := range users {
			if u.TrainingGroup == f.TrainingGroup {
				group[u.ID] = true
			}
		}
	}

	out := make([]model.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if f.InvoiceID != "" && inv.ID != f.InvoiceID {
			continue
		}
		if f.PaymentStatus != "" && f.PaymentStatus != All && inv.Status != f.PaymentStatus {
			continue
		}
		if group != nil && !addressedTo(inv, group) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

func addressedTo(inv model.Invoice, ids map[string]bool) bool {
	for _, id := range inv.Members() {
		if ids[id] {
			return true
		}
	}
	return false
}

// TrainingGroups returns the distinct non-empty training groups in
// first-seen order.
func TrainingGroups(users []model.User) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, u := range users {
		if u.TrainingGroup == "" || seen[u.TrainingGroup] {
			continue
		}
		seen[u.TrainingGroup] = true
		groups = append(groups, u.TrainingGroup)
	}
	return groups
}

// UserName returns the full name of the user with id, or "Unknown User".
func UserName(users []model.User, id string) string {
	for _, u := range users {
		if u.ID == id {
			return u.FullName
		}
	}
	return "Unknown User"
}

// UserNames joins the names of ids with ", ", or returns "No members".
func UserNames(users []model.User, ids []string) string {
	if len(ids) == 0 {
		return "No members"
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, UserName(users, id))
	}
	return strings.Join(names, ", ")
}

// SelectableForInvoice returns the regular members an invoice can be
// addressed to, narrowed by a name or email search.
func SelectableForInvoice(users []model.User, q string) []model.User {
	q = normalize(q)
	var out []model.User
	for _, u := range users {
		if u.Role != model.RoleUser {
			continue
		}
		if q != "" && !contains(u.FullName, q) && !contains(u.Email, q) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// InGroup returns the ids of regular members in the training group.
func InGroup(users []model.User, group string) []string {
	var ids []string
	for _, u := range users {
		if u.Role == model.RoleUser && group != "" && u.TrainingGroup == group {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

// WithoutUnpaid returns the ids of regular members with no unpaid invoice.
func WithoutUnpaid(users []model.User, invoices []model.Invoice) []string {
	var ids []string
	for _, u := range users {
		if u.Role != model.RoleUser {
			continue
		}
		if anyStatus(invoicesFor(invoices, u.ID), model.InvoiceUnpaid) {
			continue
		}
		ids = append(ids, u.ID)
	}
	return ids
}
