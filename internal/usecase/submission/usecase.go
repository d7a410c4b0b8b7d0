package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"ashgrove-backend/internal/domain/enquiry"
	"ashgrove-backend/internal/domain/uow"
	"ashgrove-backend/pkg/id"
)

// EnquiryPayload is the validated public form body, stored verbatim
// on the submission for audit.
type EnquiryPayload struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName,omitempty"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address,omitempty"`
	Eircode          string `json:"eircode,omitempty"`
	PreferredProduct string `json:"preferredProduct,omitempty"`
	Message          string `json:"message,omitempty"`
}

type CreateInput struct {
	Payload        EnquiryPayload
	SourcePageSlug string
	Consent        bool
	ConsentText    string
	IPHash         string
	UserAgent      string
}

type CreateResult struct {
	SubmissionID string
	QuoteNumber  string
}

// SubmissionDTO is the admin-facing view of a stored submission.
type SubmissionDTO struct {
	ID             string            `json:"id"`
	SourcePageSlug string            `json:"sourcePageSlug"`
	Payload        EnquiryPayload    `json:"payload"`
	ConsentGiven   bool              `json:"consent"`
	ConsentText    string            `json:"consentText,omitempty"`
	IPHash         string            `json:"ipHash"`
	UserAgent      string            `json:"userAgent,omitempty"`
	EmailLog       *enquiry.EmailLog `json:"emailLog,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

type Usecase struct {
	uow         uow.UnitOfWork
	submissions enquiry.SubmissionRepository
	now         func() time.Time
}

func NewUsecase(u uow.UnitOfWork, subs enquiry.SubmissionRepository) *Usecase {
	return &Usecase{uow: u, submissions: subs, now: time.Now}
}

// Create persists the customer, optional note and submission in one
// transaction. The quote number read-then-write happens under the
// same transaction so two concurrent enquiries can never race to the
// same sequence value. No partial state survives a failure.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	payload, err := json.Marshal(in.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission record: %w", err)
	}

	out := &CreateResult{SubmissionID: id.NewID32()}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		last := ""
		latest, err := r.Customers.GetLatestForUpdate(ctx)
		switch {
		case err == nil:
			last = latest.QuoteNumber
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		out.QuoteNumber = NextQuoteNumber(last, u.now())

		cust := &enquiry.Customer{
			CustomerID:  id.NewID32(),
			QuoteNumber: out.QuoteNumber,
			FirstName:   in.Payload.FirstName,
			LastName:    in.Payload.LastName,
			Email:       in.Payload.Email,
			Phone:       in.Payload.Phone,
			Address:     in.Payload.Address,
			Eircode:     strings.ToUpper(in.Payload.Eircode),
			Product:     in.Payload.PreferredProduct,
			Status:      enquiry.StatusActive,
			CreatedBy:   "enquiry-form",
		}
		if err := r.Customers.Create(ctx, cust); err != nil {
			return err
		}

		if msg := strings.TrimSpace(in.Payload.Message); msg != "" {
			note := &enquiry.Note{CustomerID: cust.ID, Body: msg, CreatedBy: "enquiry-form"}
			if err := r.Notes.Create(ctx, note); err != nil {
				return err
			}
		}

		sub := &enquiry.Submission{
			SubmissionID:   out.SubmissionID,
			Payload:        string(payload),
			SourcePageSlug: in.SourcePageSlug,
			ConsentGiven:   in.Consent,
			ConsentText:    in.ConsentText,
			IPHash:         in.IPHash,
			UserAgent:      in.UserAgent,
		}
		return r.Submissions.Create(ctx, sub)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create submission record: %w", err)
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, submissionID string) (*SubmissionDTO, error) {
	s, err := u.submissions.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, enquiry.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(*s)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, f enquiry.SubmissionFilter) ([]SubmissionDTO, error) {
	rows, err := u.submissions.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]SubmissionDTO, len(rows))
	for i, s := range rows {
		out[i] = toDTO(s)
	}
	return out, nil
}

// UpdateEmailLog persists the notification outcome onto the
// submission row.
func (u *Usecase) UpdateEmailLog(ctx context.Context, submissionID string, elog *enquiry.EmailLog) error {
	raw, err := json.Marshal(elog)
	if err != nil {
		return err
	}
	return u.submissions.UpdateEmailLog(ctx, submissionID, string(raw))
}

func toDTO(s enquiry.Submission) SubmissionDTO {
	dto := SubmissionDTO{
		ID:             s.SubmissionID,
		SourcePageSlug: s.SourcePageSlug,
		ConsentGiven:   s.ConsentGiven,
		ConsentText:    s.ConsentText,
		IPHash:         s.IPHash,
		UserAgent:      s.UserAgent,
		CreatedAt:      s.CreatedAt,
	}
	_ = json.Unmarshal([]byte(s.Payload), &dto.Payload)
	if s.EmailLog != nil {
		var elog enquiry.EmailLog
		if json.Unmarshal([]byte(*s.EmailLog), &elog) == nil {
			dto.EmailLog = &elog
		}
	}
	return dto
}
