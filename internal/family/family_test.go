package family

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/i18n"
)

var now = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestAge(t *testing.T) {
	tests := []struct {
		year string
		want int
	}{
		{"1990", 36},
		{" 2008 ", 18},
		{"2009", 17},
		{"", 0},
		{"abcd", 0},
		{"-5", 0},
	}
	for _, tt := range tests {
		if got := Age(tt.year, now); got != tt.want {
			t.Errorf("Age(%q) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestCanAddMembers(t *testing.T) {
	if !CanAddMembers("2008", now) {
		t.Error("18 year old should pass the age gate")
	}
	if CanAddMembers("2009", now) {
		t.Error("17 year old should not pass the age gate")
	}
	if CanAddMembers("", now) {
		t.Error("unknown year of birth should not pass the age gate")
	}
}

func TestLabel(t *testing.T) {
	if got := Label(i18n.English, "spouse"); got != "Spouse" {
		t.Errorf("Label(en, spouse) = %q", got)
	}
	if got := Label(i18n.English, "cousin"); got != "cousin" {
		t.Errorf("Label(en, cousin) = %q, want passthrough", got)
	}
}

func TestFormValidate(t *testing.T) {
	f := Form{FullName: "Mila", YearOfBirth: "2015", Relationship: "child"}
	errs := f.Validate()
	if !errs.Has("email") {
		t.Errorf("member form should require email, got %v", errs)
	}

	f.Email = "mila@example.com"
	if errs := f.Validate(); errs != nil {
		t.Errorf("valid form returned %v", errs)
	}

	f.Relationship = "cousin"
	if errs := f.Validate(); !errs.Has("relationship") {
		t.Errorf("unknown relationship accepted: %v", errs)
	}
}

func TestAdminFormValidate(t *testing.T) {
	child := AdminForm{FullName: "Mila", YearOfBirth: "2015", Relationship: "child"}
	if errs := child.Validate(now); errs != nil {
		t.Errorf("child without email should be valid, got %v", errs)
	}

	adult := AdminForm{FullName: "Petar", YearOfBirth: "1980", Relationship: "spouse"}
	errs := adult.Validate(now)
	if !errs.Has("email") {
		t.Errorf("adult without email should fail, got %v", errs)
	}

	missing := AdminForm{Relationship: "child"}
	errs = missing.Validate(now)
	if !errs.Has("full_name") || !errs.Has("year_of_birth") {
		t.Errorf("missing fields not reported: %v", errs)
	}
}

func TestParseDefaultsRelationship(t *testing.T) {
	body := url.Values{"full_name": {"  Mila  "}, "year_of_birth": {"2015"}}
	r := httptest.NewRequest("POST", "/dashboard/family", strings.NewReader(body.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	f := Parse(r)
	if f.FullName != "Mila" {
		t.Errorf("FullName = %q", f.FullName)
	}
	if f.Relationship != "child" {
		t.Errorf("Relationship = %q, want child", f.Relationship)
	}
	if in := f.Input(); in.YearOfBirth != "2015" {
		t.Errorf("Input().YearOfBirth = %q", in.YearOfBirth)
	}
}
