package enquiry

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("enquiry: not found")

// Customer lifecycle status. Only "active" is assigned by the enquiry
// flow; other values are set through the admin surface.
const StatusActive = "active"

// Email dispatch outcomes recorded in the submission's email log.
const (
	EmailStatusSuccess = "success"
	EmailStatusFailure = "failure"
	EmailStatusNotSent = "not-sent"
)

// Customer is the business record derived from an accepted enquiry.
// QuoteNumber is unique and monotonic within a (year, quarter) bucket.
type Customer struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	CustomerID  string    `gorm:"size:32;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	QuoteNumber string    `gorm:"size:12;uniqueIndex:ux_customers_quote_number" json:"quote_number"`
	FirstName   string    `gorm:"size:120" json:"first_name"`
	LastName    string    `gorm:"size:120" json:"last_name"`
	Email       string    `gorm:"size:254" json:"email"`
	Phone       string    `gorm:"size:40" json:"phone"`
	Address     string    `gorm:"type:text" json:"address"`
	Eircode     string    `gorm:"size:8" json:"eircode"`
	Product     string    `gorm:"size:120" json:"product"`
	Status      string    `gorm:"size:24;default:'active'" json:"status"`
	CreatedBy   string    `gorm:"size:64" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

// Note is a free-text message attached to a customer.
type Note struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	CustomerID uint64    `gorm:"index:idx_notes_customer" json:"-"`
	Body       string    `gorm:"type:text" json:"body"`
	CreatedBy  string    `gorm:"size:64" json:"created_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Note) TableName() string { return "notes" }

// Submission is the immutable audit record of a public enquiry.
// EmailLog is the only field mutated after creation; it holds the
// serialized EmailLog written by the notification pipeline.
type Submission struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	SubmissionID   string    `gorm:"size:32;uniqueIndex:ux_submissions_submission_id" json:"submission_id"`
	Payload        string    `gorm:"type:text" json:"-"`
	SourcePageSlug string    `gorm:"size:160;index:idx_submissions_source" json:"source_page_slug"`
	ConsentGiven   bool      `json:"consent_given"`
	ConsentText    string    `gorm:"type:text" json:"consent_text"`
	IPHash         string    `gorm:"size:64" json:"ip_hash"`
	UserAgent      string    `gorm:"size:512" json:"user_agent"`
	EmailLog       *string   `gorm:"type:text" json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index:idx_submissions_created" json:"created_at"`
}

func (Submission) TableName() string { return "submissions" }

// EmailResult is the per-send outcome embedded in the email log.
type EmailResult struct {
	Status    string     `json:"status"`
	Reason    string     `json:"reason,omitempty"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
	Attempts  int        `json:"attempts"`
	MessageID string     `json:"messageId,omitempty"`
}

// EmailLog aggregates both notification outcomes for a submission.
// Customer carries a not-sent entry when confirmation is disabled.
type EmailLog struct {
	Internal        EmailResult  `json:"internal"`
	Customer        *EmailResult `json:"customer,omitempty"`
	ProcessedAt     time.Time    `json:"processedAt"`
	TotalDurationMs int64        `json:"totalDurationMs"`
}
