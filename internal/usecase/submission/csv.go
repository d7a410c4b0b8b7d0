package submission

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"ashgrove-backend/internal/domain/enquiry"
)

// Fixed export header; column order is part of the contract with the
// back-office spreadsheet.
var csvHeader = []string{
	"ID", "Created At", "Source Page", "First Name", "Last Name",
	"Email", "Phone", "Address", "Eircode", "Product", "Message",
	"Consent", "Consent Text", "IP Hash", "User Agent",
}

// WriteCSV streams all submissions matching the filter, newest-first.
func (u *Usecase) WriteCSV(ctx context.Context, f enquiry.SubmissionFilter, w io.Writer) error {
	rows, err := u.List(ctx, f)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, csvLine(csvHeader)); err != nil {
		return err
	}
	for _, dto := range rows {
		if _, err := io.WriteString(w, csvLine(csvRow(dto))); err != nil {
			return err
		}
	}
	return nil
}

func csvRow(d SubmissionDTO) []string {
	return []string{
		d.ID,
		d.CreatedAt.UTC().Format(time.RFC3339),
		d.SourcePageSlug,
		d.Payload.FirstName,
		d.Payload.LastName,
		d.Payload.Email,
		d.Payload.Phone,
		d.Payload.Address,
		d.Payload.Eircode,
		d.Payload.PreferredProduct,
		d.Payload.Message,
		strconv.FormatBool(d.ConsentGiven),
		d.ConsentText,
		d.IPHash,
		d.UserAgent,
	}
}

func csvLine(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escapeCSV(f)
	}
	return strings.Join(escaped, ",") + "\r\n"
}

// escapeCSV quotes a field only when it contains a comma, quote or
// newline; embedded quotes are doubled.
func escapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
