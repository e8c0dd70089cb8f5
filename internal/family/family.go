// Package family holds the rules for family members linked to a primary
// account: the age gate and the add/edit forms.
package family

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/form"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/i18n"
	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

// AdultAge is the age from which a member may add family members and from
// which a family member needs an own email address.
const AdultAge = 18

// Relationships lists the selectable relationships in display order.
var Relationships = []string{
	model.RelationshipChild,
	model.RelationshipSpouse,
	model.RelationshipFriend,
	model.RelationshipOther,
}

// Age returns the current year minus the year of birth. Empty or
// unparsable years give 0.
func Age(yearOfBirth string, now time.Time) int {
	y, err := strconv.Atoi(strings.TrimSpace(yearOfBirth))
	if err != nil || y <= 0 {
		return 0
	}
	return now.Year() - y
}

// IsAdult reports whether someone born in yearOfBirth is at least AdultAge.
func IsAdult(yearOfBirth string, now time.Time) bool {
	return Age(yearOfBirth, now) >= AdultAge
}

// CanAddMembers is the age gate for adding family members.
func CanAddMembers(yearOfBirth string, now time.Time) bool {
	return IsAdult(yearOfBirth, now)
}

// Label returns the translated relationship name.
func Label(lang, relationship string) string {
	switch relationship {
	case model.RelationshipChild, model.RelationshipSpouse, model.RelationshipFriend, model.RelationshipOther:
		return i18n.T(lang, "family.rel."+relationship)
	}
	return relationship
}

// Form is the family member dialog used by members for their own family.
type Form struct {
	FullName      string `form:"full_name" label:"Full name" validate:"required"`
	Email         string `form:"email" label:"Email" validate:"required,email"`
	YearOfBirth   string `form:"year_of_birth" label:"Year of birth" validate:"required,year"`
	Phone         string `form:"phone" label:"Phone" validate:"omitempty,max=30"`
	Address       string `form:"address" label:"Address"`
	TrainingGroup string `form:"training_group" label:"Training group"`
	Relationship  string `form:"relationship" label:"Relationship" validate:"required,oneof=child spouse friend other"`
}

// AdminForm is the dialog admins use to link a member to any account. The
// email is only required for adults.
type AdminForm struct {
	FullName      string `form:"full_name" label:"Full name" validate:"required"`
	Email         string `form:"email" label:"Email" validate:"omitempty,email"`
	YearOfBirth   string `form:"year_of_birth" label:"Year of birth" validate:"required,year"`
	Phone         string `form:"phone" label:"Phone" validate:"omitempty,max=30"`
	Address       string `form:"address" label:"Address"`
	TrainingGroup string `form:"training_group" label:"Training group"`
	Relationship  string `form:"relationship" label:"Relationship" validate:"required,oneof=child spouse friend other"`
}

func parseFields(r *http.Request) (fullName, email, year, phone, address, group, rel string) {
	rel = form.Value(r, "relationship")
	if rel == "" {
		rel = model.RelationshipChild
	}
	return form.Value(r, "full_name"),
		form.Value(r, "email"),
		form.Value(r, "year_of_birth"),
		form.Value(r, "phone"),
		form.Value(r, "address"),
		form.Value(r, "training_group"),
		rel
}

func Parse(r *http.Request) Form {
	var f Form
	f.FullName, f.Email, f.YearOfBirth, f.Phone, f.Address, f.TrainingGroup, f.Relationship = parseFields(r)
	return f
}

func ParseAdmin(r *http.Request) AdminForm {
	var f AdminForm
	f.FullName, f.Email, f.YearOfBirth, f.Phone, f.Address, f.TrainingGroup, f.Relationship = parseFields(r)
	return f
}

// FromMember prefills the edit dialog.
func FromMember(m model.FamilyMember) Form {
	rel := m.Relationship
	if rel == "" {
		rel = model.RelationshipChild
	}
	return Form{
		FullName:      m.FullName,
		Email:         m.Email,
		YearOfBirth:   m.YearOfBirth,
		Phone:         m.Phone,
		Address:       m.Address,
		TrainingGroup: m.TrainingGroup,
		Relationship:  rel,
	}
}

func (f Form) Validate() form.Errors {
	return form.Validate(f)
}

// Validate applies the tag rules plus the adult email rule.
func (f AdminForm) Validate(now time.Time) form.Errors {
	errs := form.Validate(f)
	if f.Email == "" && f.YearOfBirth != "" && IsAdult(f.YearOfBirth, now) && !errs.Has("email") {
		errs = append(errs, form.FieldError{
			Field:   "email",
			Message: "Email is required for family members 18 years or older",
		})
	}
	return errs
}

func (f Form) Input() model.FamilyMemberInput {
	return model.FamilyMemberInput{
		FullName:      f.FullName,
		Email:         f.Email,
		YearOfBirth:   f.YearOfBirth,
		Phone:         f.Phone,
		Address:       f.Address,
		TrainingGroup: f.TrainingGroup,
		Relationship:  f.Relationship,
	}
}

func (f AdminForm) Input() model.FamilyMemberInput {
	return Form(f).Input()
}
