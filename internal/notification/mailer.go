package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/ticket"
	"github.com/mailersend/mailersend-go"
	"github.com/wb-go/wbf/logger"
)

const (
	sendTimeout   = 10 * time.Second
	qrContentID   = "ticket-qr"
	startTimeForm = "Monday, 2 January 2006 at 15:04 MST"
)

// Mailer sends transactional email through MailerSend. With an empty API
// key it is disabled: every send returns an error the caller downgrades
// to a warning, matching the best-effort notification policy.
type Mailer struct {
	client    *mailersend.Mailersend
	fromName  string
	fromEmail string
	publicURL string
	logger    logger.Logger
}

func NewMailer(apiKey, fromName, fromEmail, publicURL string, log logger.Logger) *Mailer {
	m := &Mailer{
		fromName:  fromName,
		fromEmail: fromEmail,
		publicURL: publicURL,
		logger:    log,
	}
	if apiKey == "" {
		log.Warn("mail api key is empty, outbound email disabled")
		return m
	}
	m.client = mailersend.NewMailersend(apiKey)
	return m
}

type emailData struct {
	AttendeeName string
	EventTitle   string
	StartsAt     string
	Location     string
	TicketCode   string
	TicketURL    string
	QRContentID  string
	Lead         string
}

// SendTicket emails the approval confirmation: event details, the ticket
// code and a QR image inlined by content id. The QR encodes the public
// ticket lookup URL and is regenerated on every send, never stored.
func (m *Mailer) SendTicket(ctx context.Context, to string, details domain.TicketDetails) error {
	data := m.emailData(details)

	html, err := render(ticketTemplate, data)
	if err != nil {
		return err
	}

	qr, err := m.inlineQR(data.TicketURL)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your ticket for %s", details.EventTitle)
	return m.send(ctx, to, details.AttendeeName, subject, html, qr)
}

// SendRejection emails the "not approved" notice. No QR code.
func (m *Mailer) SendRejection(ctx context.Context, to string, details domain.TicketDetails) error {
	data := m.emailData(details)

	html, err := render(rejectionTemplate, data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Update on your registration for %s", details.EventTitle)
	return m.send(ctx, to, details.AttendeeName, subject, html, nil)
}

// SendReminder emails an upcoming-event reminder, phrased per window.
func (m *Mailer) SendReminder(ctx context.Context, to string, details domain.TicketDetails, window domain.ReminderWindow) error {
	data := m.emailData(details)

	var subject string
	switch window {
	case domain.Window1h:
		subject = fmt.Sprintf("Starting soon: %s is in 1 hour", details.EventTitle)
		data.Lead = fmt.Sprintf("%s starts in 1 hour.", details.EventTitle)
	default:
		subject = fmt.Sprintf("Reminder: %s is tomorrow", details.EventTitle)
		data.Lead = fmt.Sprintf("%s is tomorrow.", details.EventTitle)
	}

	html, err := render(reminderTemplate, data)
	if err != nil {
		return err
	}

	qr, err := m.inlineQR(data.TicketURL)
	if err != nil {
		return err
	}

	return m.send(ctx, to, details.AttendeeName, subject, html, qr)
}

func (m *Mailer) emailData(details domain.TicketDetails) emailData {
	return emailData{
		AttendeeName: details.AttendeeName,
		EventTitle:   details.EventTitle,
		StartsAt:     details.StartsAt.Format(startTimeForm),
		Location:     details.Location(),
		TicketCode:   details.TicketCode,
		TicketURL:    fmt.Sprintf("%s/tickets/%s", m.publicURL, details.TicketCode),
		QRContentID:  qrContentID,
	}
}

func (m *Mailer) inlineQR(ticketURL string) (*mailersend.Attachment, error) {
	png, err := ticket.QRCode(ticketURL)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}

	return &mailersend.Attachment{
		Content:     base64.StdEncoding.EncodeToString(png),
		Filename:    "ticket-qr.png",
		Disposition: mailersend.DispositionInline,
		ID:          qrContentID,
	}, nil
}

func (m *Mailer) send(ctx context.Context, toEmail, toName, subject, html string, qr *mailersend.Attachment) error {
	if m.client == nil {
		return fmt.Errorf("mail channel is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(mailersend.From{Name: m.fromName, Email: m.fromEmail})
	message.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	message.SetSubject(subject)
	message.SetHTML(html)
	if qr != nil {
		message.AddAttachment(*qr)
	}

	res, err := m.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	m.logger.Info("email sent",
		logger.String("subject", subject),
		logger.String("message_id", res.Header.Get("X-Message-Id")),
	)

	return nil
}

func render(tmpl *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return buf.String(), nil
}
