package model

const (
	InvoicePaid   = "paid"
	InvoiceUnpaid = "unpaid"

	DefaultCurrency = "SEK"
)

type Invoice struct {
	ID            string   `json:"id"`
	UserID        string   `json:"userId,omitempty"`
	UserIDs       []string `json:"userIds,omitempty"`
	Amount        float64  `json:"amount"`
	Currency      string   `json:"currency"`
	DueDate       string   `json:"dueDate"`
	PaymentDate   string   `json:"paymentDate,omitempty"`
	Status        string   `json:"status"`
	Description   string   `json:"description"`
	FileURL       string   `json:"fileUrl,omitempty"`
	TrainingGroup string   `json:"trainingGroup,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
}

// Members returns the ids the invoice is addressed to. Older invoices carry a
// single userId instead of the userIds list.
func (i Invoice) Members() []string {
	if len(i.UserIDs) > 0 {
		return i.UserIDs
	}
	if i.UserID != "" {
		return []string{i.UserID}
	}
	return nil
}

// HasMember reports whether the invoice is addressed to userID.
func (i Invoice) HasMember(userID string) bool {
	for _, id := range i.Members() {
		if id == userID {
			return true
		}
	}
	return false
}

// IsPaid reports whether the invoice status is paid.
func (i Invoice) IsPaid() bool {
	return i.Status == InvoicePaid
}

// InvoiceInput is the create/update payload for an invoice. Status and
// PaymentDate are only sent by the edit dialog.
type InvoiceInput struct {
	UserIDs       []string `json:"userIds"`
	Amount        float64  `json:"amount"`
	Currency      string   `json:"currency"`
	DueDate       string   `json:"dueDate"`
	Description   string   `json:"description"`
	TrainingGroup string   `json:"trainingGroup,omitempty"`
	Status        string   `json:"status,omitempty"`
	PaymentDate   string   `json:"paymentDate,omitempty"`
}

// MemberFilter narrows the backend's filtered-members report.
type MemberFilter struct {
	InvoiceID     string
	PaymentStatus string
	TrainingGroup string
}
