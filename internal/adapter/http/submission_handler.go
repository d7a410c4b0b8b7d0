package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ashgrove-backend/internal/adapter/middleware"
	"ashgrove-backend/internal/usecase/submission"
)

// CreateEnquiryRequest is the public enquiry form body. Website is the
// honeypot: humans never see the field, so any value marks a bot.
type CreateEnquiryRequest struct {
	FirstName        string `json:"firstName" validate:"required,max=100"`
	LastName         string `json:"lastName" validate:"max=100"`
	Email            string `json:"email" validate:"required,email,max=254"`
	Phone            string `json:"phone" validate:"required,max=30"`
	Address          string `json:"address" validate:"max=500"`
	Eircode          string `json:"eircode" validate:"eircode"`
	PreferredProduct string `json:"preferredProduct" validate:"max=200"`
	Message          string `json:"message" validate:"max=5000"`
	SourcePage       string `json:"sourcePage" validate:"required,max=200"`
	Consent          bool   `json:"consent" validate:"required"`
	ConsentText      string `json:"consentText" validate:"max=1000"`
	Website          string `json:"website"`
}

type SubmissionHandler struct {
	uc                 *submission.Usecase
	proc               *submission.Processor
	ipSalt             string
	defaultConsentText string
}

func NewSubmissionHandler(uc *submission.Usecase, proc *submission.Processor, ipSalt, defaultConsentText string) *SubmissionHandler {
	return &SubmissionHandler{uc: uc, proc: proc, ipSalt: ipSalt, defaultConsentText: defaultConsentText}
}

// Create accepts an enquiry from the public site. Honeypot hits get
// the same success response as real submissions so bots cannot tell
// they were dropped.
func (h *SubmissionHandler) Create(c echo.Context) error {
	req := new(CreateEnquiryRequest)
	if ok, err := bindAndValidate(c, req); !ok {
		return err
	}

	if req.Website != "" {
		log.Printf("[ENQUIRY] honeypot triggered from %s", middleware.ClientIP(c.Request()))
		return c.JSON(http.StatusOK, map[string]any{"ok": true, "id": uuid.NewString()})
	}

	// The form may omit the consent wording; the stored record always
	// carries the text the consent was given against.
	consentText := req.ConsentText
	if strings.TrimSpace(consentText) == "" {
		consentText = h.defaultConsentText
	}

	in := submission.CreateInput{
		Payload: submission.EnquiryPayload{
			FirstName:        req.FirstName,
			LastName:         req.LastName,
			Email:            req.Email,
			Phone:            req.Phone,
			Address:          req.Address,
			Eircode:          req.Eircode,
			PreferredProduct: req.PreferredProduct,
			Message:          req.Message,
		},
		SourcePageSlug: req.SourcePage,
		Consent:        req.Consent,
		ConsentText:    consentText,
		IPHash:         HashIP(middleware.ClientIP(c.Request()), h.ipSalt),
		UserAgent:      c.Request().UserAgent(),
	}

	res, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		log.Printf("[ENQUIRY] create failed: %v", err)
		return internalError(c)
	}

	h.proc.Enqueue(submission.Job{
		SubmissionID:   res.SubmissionID,
		QuoteNumber:    res.QuoteNumber,
		SourcePageSlug: req.SourcePage,
		Payload:        in.Payload,
	})

	return c.JSON(http.StatusOK, map[string]any{"ok": true, "id": res.SubmissionID})
}
