package submission

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"ashgrove-backend/internal/domain/enquiry"
	"ashgrove-backend/internal/mailer"
)

// MailSender is what the processor needs from the mailer.
type MailSender interface {
	Ready() bool
	Send(ctx context.Context, msg *mailer.Message) mailer.Result
}

// Job carries everything the notification flow needs so it never has
// to re-read the submission row.
type Job struct {
	SubmissionID   string
	QuoteNumber    string
	SourcePageSlug string
	Payload        EnquiryPayload
}

// Processor drives the post-response notification pipeline: the HTTP
// response is written as soon as the submission is durable, and jobs
// queued here complete afterwards. Stop drains the queue so email
// outcomes are persisted before shutdown.
type Processor struct {
	uc             *Usecase
	mail           MailSender
	internalTo     string
	confirmEnabled bool
	siteName       string

	queue chan Job
	wg    sync.WaitGroup
}

func NewProcessor(uc *Usecase, mail MailSender, internalTo string, confirmEnabled bool) *Processor {
	return &Processor{
		uc:             uc,
		mail:           mail,
		internalTo:     internalTo,
		confirmEnabled: confirmEnabled,
		siteName:       "Ashgrove Homes",
		queue:          make(chan Job, 64),
	}
}

func (p *Processor) Start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for job := range p.queue {
			p.Process(context.Background(), job)
		}
	}()
}

// Enqueue never blocks the caller: a full queue dispatches the job in
// its own tracked goroutine so a backed-up worker cannot stall the
// request that accepted the enquiry.
func (p *Processor) Enqueue(job Job) {
	select {
	case p.queue <- job:
	default:
		log.Printf("[ENQUIRY] notification queue full, processing %s out of band", job.SubmissionID)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.Process(context.Background(), job)
		}()
	}
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Processor) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// Process sends the mandatory internal notification and, when
// enabled, the customer confirmation, then writes both outcomes back
// onto the submission. A failed write is logged and swallowed: the
// delivery outcome must never be lost because persistence failed, and
// nothing here can affect the originating request.
func (p *Processor) Process(ctx context.Context, job Job) {
	start := time.Now()

	elog := &enquiry.EmailLog{}
	elog.Internal = p.sendInternal(ctx, job)
	customer := p.sendConfirmation(ctx, job)
	elog.Customer = &customer
	elog.ProcessedAt = time.Now().UTC()
	elog.TotalDurationMs = time.Since(start).Milliseconds()

	if err := p.uc.UpdateEmailLog(ctx, job.SubmissionID, elog); err != nil {
		log.Printf("[ENQUIRY] failed to persist email log for %s (internal=%s customer=%s): %v",
			job.SubmissionID, elog.Internal.Status, customer.Status, err)
	}
}

func (p *Processor) sendInternal(ctx context.Context, job Job) enquiry.EmailResult {
	if p.internalTo == "" {
		return notSent("no internal recipient configured")
	}
	if !p.mail.Ready() {
		return notSent("mailer not ready")
	}
	res := p.mail.Send(ctx, &mailer.Message{
		To:      strings.Split(p.internalTo, ","),
		Subject: fmt.Sprintf("New enquiry %s: %s %s", job.QuoteNumber, job.Payload.FirstName, job.Payload.LastName),
		Body:    p.internalBody(job),
	})
	return fromMailResult(res)
}

func (p *Processor) sendConfirmation(ctx context.Context, job Job) enquiry.EmailResult {
	if !p.confirmEnabled {
		return notSent("customer confirmation disabled")
	}
	if job.Payload.Email == "" {
		return notSent("no customer email")
	}
	if !p.mail.Ready() {
		return notSent("mailer not ready")
	}
	res := p.mail.Send(ctx, &mailer.Message{
		To:      []string{job.Payload.Email},
		Subject: fmt.Sprintf("Your %s enquiry (%s)", p.siteName, job.QuoteNumber),
		Body:    p.confirmationBody(job),
	})
	return fromMailResult(res)
}

func (p *Processor) internalBody(job Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New enquiry received via /%s\n\n", strings.TrimPrefix(job.SourcePageSlug, "/"))
	fmt.Fprintf(&b, "Quote number: %s\n", job.QuoteNumber)
	fmt.Fprintf(&b, "Name:         %s %s\n", job.Payload.FirstName, job.Payload.LastName)
	fmt.Fprintf(&b, "Email:        %s\n", job.Payload.Email)
	fmt.Fprintf(&b, "Phone:        %s\n", job.Payload.Phone)
	if job.Payload.Address != "" {
		fmt.Fprintf(&b, "Address:      %s\n", job.Payload.Address)
	}
	if job.Payload.Eircode != "" {
		fmt.Fprintf(&b, "Eircode:      %s\n", job.Payload.Eircode)
	}
	if job.Payload.PreferredProduct != "" {
		fmt.Fprintf(&b, "Product:      %s\n", job.Payload.PreferredProduct)
	}
	if job.Payload.Message != "" {
		fmt.Fprintf(&b, "\nMessage:\n%s\n", job.Payload.Message)
	}
	return b.String()
}

func (p *Processor) confirmationBody(job Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", job.Payload.FirstName)
	fmt.Fprintf(&b, "Thanks for getting in touch with %s. Your enquiry has been received and assigned reference %s.\n\n", p.siteName, job.QuoteNumber)
	b.WriteString("A member of our team will contact you within two working days.\n\n")
	fmt.Fprintf(&b, "Kind regards,\nThe %s Team\n", p.siteName)
	return b.String()
}

func notSent(reason string) enquiry.EmailResult {
	return enquiry.EmailResult{Status: enquiry.EmailStatusNotSent, Reason: reason}
}

func fromMailResult(res mailer.Result) enquiry.EmailResult {
	out := enquiry.EmailResult{
		Attempts:  res.Attempt,
		MessageID: res.MessageID,
	}
	if res.Success {
		out.Status = enquiry.EmailStatusSuccess
		ts := res.Timestamp
		out.SentAt = &ts
	} else {
		out.Status = enquiry.EmailStatusFailure
		out.Reason = res.Error
	}
	return out
}
