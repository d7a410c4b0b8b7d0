package submission

import (
	"context"
	"strings"
	"testing"
	"time"

	"ashgrove-backend/internal/domain/enquiry"
	"ashgrove-backend/internal/testutil/enquirymock"
)

func TestWriteCSV(t *testing.T) {
	subs := &enquirymock.SubmissionRepo{
		ListFn: func(ctx context.Context, f enquiry.SubmissionFilter) ([]enquiry.Submission, error) {
			return []enquiry.Submission{
				{
					SubmissionID:   "id-2",
					Payload:        `{"firstName":"Se\u00e1n","lastName":"O'Neill","email":"sean@example.com","phone":"+3531","message":"Hello, I'd like a quote\nfor a \"two-bed\" unit"}`,
					SourcePageSlug: "two-bed",
					ConsentGiven:   true,
					ConsentText:    "ok",
					IPHash:         "beef",
					UserAgent:      "UA/1.0",
					CreatedAt:      time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC),
				},
				{
					SubmissionID:   "id-1",
					Payload:        `{"firstName":"Aoife","email":"aoife@example.com","phone":"+3532"}`,
					SourcePageSlug: "garden-rooms",
					CreatedAt:      time.Date(2025, 8, 13, 10, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}
	uc := NewUsecase(&enquirymock.UoW{}, subs)

	var b strings.Builder
	if err := uc.WriteCSV(context.Background(), enquiry.SubmissionFilter{}, &b); err != nil {
		t.Fatalf("WriteCSV err: %v", err)
	}
	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d:\n%s", len(lines), out)
	}

	wantHeader := "ID,Created At,Source Page,First Name,Last Name,Email,Phone,Address,Eircode,Product,Message,Consent,Consent Text,IP Hash,User Agent"
	if lines[0] != wantHeader {
		t.Fatalf("header = %q", lines[0])
	}

	// message contains a comma, quotes and a newline: must come out
	// quoted, with embedded quotes doubled.
	if !strings.Contains(out, `"Hello, I'd like a quote`+"\n"+`for a ""two-bed"" unit"`) {
		t.Fatalf("message field not escaped:\n%s", out)
	}
	if !strings.Contains(lines[1], "id-2,2025-08-14T10:00:00Z,two-bed,Seán,O'Neill") {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "id-1,") {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestEscapeCSV(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"", ""},
		{"a,b", `"a,b"`},
		{`say "hi"`, `"say ""hi"""`},
		{"line1\nline2", "\"line1\nline2\""},
		{"trailing\r", "\"trailing\r\""},
	}
	for _, tc := range cases {
		if got := escapeCSV(tc.in); got != tc.want {
			t.Fatalf("escapeCSV(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
