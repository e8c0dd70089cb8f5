package model

// Settings is the organisation's public contact and legal information.
type Settings struct {
	Address            string            `json:"address"`
	BankAccount        string            `json:"bankAccount"`
	VATNumber          string            `json:"vatNumber"`
	RegistrationNumber string            `json:"registrationNumber"`
	ContactEmail       string            `json:"contactEmail"`
	ContactPhone       string            `json:"contactPhone"`
	SocialMedia        map[string]string `json:"socialMedia,omitempty"`
	Visibility         map[string]bool   `json:"visibility,omitempty"`
}

// Visible reports whether a settings field is shown publicly. Fields without
// an explicit visibility entry are visible.
func (s Settings) Visible(field string) bool {
	v, ok := s.Visibility[field]
	return !ok || v
}

type BrandingColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type BrandingLanguage struct {
	Default   string   `json:"default"`
	Supported []string `json:"supported"`
}

type Branding struct {
	Logo     string           `json:"logo,omitempty"`
	Colors   BrandingColors   `json:"colors"`
	Language BrandingLanguage `json:"language"`
}

// DefaultBranding is used when the backend has no branding configured.
func DefaultBranding() Branding {
	return Branding{
		Colors:   BrandingColors{Primary: "#C1272D", Secondary: "#8B1F1F"},
		Language: BrandingLanguage{Default: "sr", Supported: []string{"sr", "en", "sv"}},
	}
}
