package filter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vladanmitic78/srpskoudruzenje-sub001/internal/model"
)

var csvHeader = []string{"Name", "Email", "Phone", "Invoice Status", "Family Members"}

// WriteCSV writes the member list with one row per user. Data fields are
// always quoted so spreadsheet tools keep phone numbers as text.
func WriteCSV(w io.Writer, users []model.User, invoices []model.Invoice) error {
	if _, err := io.WriteString(w, strings.Join(csvHeader, ",")); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, u := range users {
		row := []string{
			u.FullName,
			u.Email,
			u.Phone,
			InvoiceStatus(invoices, u.ID),
			strconv.Itoa(len(u.FamilyMembers)),
		}
		for i, v := range row {
			row[i] = quote(v)
		}
		if _, err := io.WriteString(w, "\n"+strings.Join(row, ",")); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return nil
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// CSVFilename returns the download name for a member CSV exported on date
// (YYYY-MM-DD).
func CSVFilename(date string) string {
	return "filtered_members_" + date + ".csv"
}
