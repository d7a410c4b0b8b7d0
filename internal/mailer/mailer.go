package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"sync/atomic"
	"time"

	"ashgrove-backend/internal/config"
	"ashgrove-backend/pkg/id"
)

const (
	// Concurrency cap for outbound SMTP, policy not hard requirement.
	maxConcurrentSends = 5
	defaultRetryDelay  = 2 * time.Second
	dialTimeout        = 10 * time.Second
)

type Message struct {
	To      []string
	Subject string
	Body    string
}

// Result is returned for every send attempt, success or not. Send
// never surfaces a Go error to the caller: mail failures must not be
// able to fail the request that triggered them.
type Result struct {
	Success   bool      `json:"success"`
	MessageID string    `json:"messageId,omitempty"`
	Error     string    `json:"error,omitempty"`
	Attempt   int       `json:"attempt"`
	Timestamp time.Time `json:"timestamp"`
}

type Mailer struct {
	cfg        *config.MailConfig
	sem        chan struct{}
	ready      atomic.Bool
	retryDelay time.Duration

	// transport seam; tests swap this out
	sendFn func(msgID string, m *Message) error
}

// New builds a mailer and kicks off a non-blocking connection
// verification. A failed verification is logged, never fatal: the
// process must start without a working SMTP server.
func New(cfg *config.MailConfig) *Mailer {
	m := &Mailer{
		cfg:        cfg,
		sem:        make(chan struct{}, maxConcurrentSends),
		retryDelay: defaultRetryDelay,
	}
	m.sendFn = m.smtpSend
	go m.verify()
	return m
}

func (m *Mailer) verify() {
	if !m.cfg.Configured() {
		log.Println("[MAIL] not configured, outbound mail disabled")
		return
	}
	conn, err := net.DialTimeout("tcp", m.cfg.Addr(), dialTimeout)
	if err != nil {
		log.Printf("[MAIL] verification failed: %v", err)
		return
	}
	if m.cfg.Secure {
		conn = tls.Client(conn, m.tlsConfig())
	}
	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		log.Printf("[MAIL] verification failed: %v", err)
		return
	}
	defer client.Quit()
	if err := client.Noop(); err != nil {
		log.Printf("[MAIL] verification failed: %v", err)
		return
	}
	m.ready.Store(true)
	log.Printf("[MAIL] verified connection to %s", m.cfg.Addr())
}

// Ready reports whether the one-time verification succeeded. Callers
// use it to short-circuit with a "not-sent" outcome instead of
// attempting a send that will fail.
func (m *Mailer) Ready() bool { return m.ready.Load() }

// Send performs at most two attempts: one, and a single retry after a
// fixed delay when the first failure looks transient.
func (m *Mailer) Send(ctx context.Context, msg *Message) Result {
	m.sem <- struct{}{}
	defer func() { <-m.sem }()

	res, err := m.attempt(msg, 1)
	if err == nil || !isRetryable(err) {
		return res
	}

	select {
	case <-ctx.Done():
		return res
	case <-time.After(m.retryDelay):
	}
	res, _ = m.attempt(msg, 2)
	return res
}

func (m *Mailer) attempt(msg *Message, n int) (Result, error) {
	msgID := id.NewMessageID(m.cfg.Host)
	err := m.sendFn(msgID, msg)
	res := Result{Attempt: n, Timestamp: time.Now().UTC()}
	if err != nil {
		res.Error = err.Error()
		log.Printf("[MAIL] send attempt %d failed: %v", n, err)
		return res, err
	}
	res.Success = true
	res.MessageID = msgID
	return res, nil
}

// isRetryable treats 5xx SMTP replies and connection-level failures
// as transient.
func isRetryable(err error) bool {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		return tpErr.Code >= 500 && tpErr.Code < 600
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "timeout") ||
		strings.Contains(s, "connection") ||
		strings.Contains(s, "network")
}

func (m *Mailer) tlsConfig() *tls.Config {
	return &tls.Config{
		ServerName:         m.cfg.Host,
		InsecureSkipVerify: !m.cfg.RejectUnauthorized,
	}
}

func (m *Mailer) smtpSend(msgID string, msg *Message) error {
	if !m.cfg.Configured() {
		return fmt.Errorf("mail service not configured")
	}

	conn, err := net.DialTimeout("tcp", m.cfg.Addr(), dialTimeout)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	if m.cfg.Secure {
		conn = tls.Client(conn, m.tlsConfig())
	}
	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if !m.cfg.Secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(m.tlsConfig()); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}
	if m.cfg.User != "" {
		auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(m.cfg.FromEmail); err != nil {
		return err
	}
	for _, rcpt := range msg.To {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(m.buildMessage(msgID, msg)); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func (m *Mailer) buildMessage(msgID string, msg *Message) []byte {
	from := m.cfg.FromEmail
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: %s\r\n", msgID)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
