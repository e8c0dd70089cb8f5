package model

// Roles issued by the backend.
const (
	RoleUser       = "user"
	RoleModerator  = "moderator"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// IsAdminRole reports whether role grants access to the admin screens.
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

type User struct {
	ID            string         `json:"id"`
	Username      string         `json:"username"`
	Email         string         `json:"email"`
	FullName      string         `json:"fullName"`
	Phone         string         `json:"phone,omitempty"`
	Address       string         `json:"address,omitempty"`
	YearOfBirth   string         `json:"yearOfBirth,omitempty"`
	TrainingGroup string         `json:"trainingGroup,omitempty"`
	ParentName    string         `json:"parentName,omitempty"`
	ParentEmail   string         `json:"parentEmail,omitempty"`
	ParentPhone   string         `json:"parentPhone,omitempty"`
	Role          string         `json:"role"`
	EmailVerified bool           `json:"emailVerified"`
	Suspended     bool           `json:"suspended,omitempty"`
	CreatedAt     string         `json:"createdAt,omitempty"`
	FamilyMembers []FamilyMember `json:"familyMembers,omitempty"`
}

// UserUpdate carries the self-service profile fields.
type UserUpdate struct {
	FullName    string `json:"fullName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	YearOfBirth string `json:"yearOfBirth,omitempty"`
	Address     string `json:"address,omitempty"`
	ParentName  string `json:"parentName,omitempty"`
	ParentEmail string `json:"parentEmail,omitempty"`
	ParentPhone string `json:"parentPhone,omitempty"`
}

type Registration struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone,omitempty"`
	YearOfBirth string `json:"yearOfBirth,omitempty"`
	Address     string `json:"address,omitempty"`
	ParentName  string `json:"parentName,omitempty"`
	ParentEmail string `json:"parentEmail,omitempty"`
	ParentPhone string `json:"parentPhone,omitempty"`
}

// UserDetails is the admin view of a single account: the user record with
// its invoices alongside.
type UserDetails struct {
	User
	Invoices []Invoice `json:"invoices,omitempty"`
}

type Statistics struct {
	TotalMembers    int     `json:"totalMembers"`
	PaidInvoices    int     `json:"paidInvoices"`
	UnpaidInvoices  int     `json:"unpaidInvoices"`
	OverdueInvoices int     `json:"overdueInvoices"`
	TotalRevenue    float64 `json:"totalRevenue"`
}
