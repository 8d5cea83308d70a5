// Package mailer sends the reservation-confirmation email. Delivery is
// best-effort: a failed send is logged and counted but never affects the
// reservation that triggered it.
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"

	"ticketfoot/internal/config"
	"ticketfoot/internal/models"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<html>
<head><title>Confirmation de réservation</title></head>
<body>
    <h2>Bonjour {{.UserName}},</h2>
    <p>Votre réservation a été confirmée avec succès !</p>
    <ul>
        <li><strong>Match :</strong> {{.HomeTeam}} vs {{.AwayTeam}}</li>
        <li><strong>Stade :</strong> {{.Stadium}} - {{.City}}</li>
        <li><strong>Date :</strong> {{.MatchDate}}</li>
        <li><strong>Heure :</strong> {{.MatchTime}}</li>
        <li><strong>Nombre de billets :</strong> {{.TicketQuantity}}</li>
        <li><strong>Prix :</strong> {{.TotalPrice}} MAD</li>
        <li><strong>Catégorie :</strong> {{.Category}}</li>
        <li><strong>Statut :</strong> {{.Status}}</li>
    </ul>
    <p>Merci pour votre confiance !</p>
</body>
</html>`))

type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendReservationConfirmation emails the booking summary to the user.
func (m *Mailer) SendReservationConfirmation(event models.ReservationCreatedEvent) error {
	body, err := RenderConfirmation(event)
	if err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	subject := "Confirmation de votre réservation - Billet de match"
	msg := buildMessage(m.cfg.FromName, m.cfg.Username, event.UserEmail, subject, body)

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.Username, []string{event.UserEmail}, msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

// RenderConfirmation produces the HTML body of the confirmation email.
func RenderConfirmation(event models.ReservationCreatedEvent) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, event); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildMessage(fromName, fromAddr, to, subject, htmlBody string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s <%s>\r\n", fromName, fromAddr)
	fmt.Fprintf(&buf, "To: <%s>\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)
	return buf.Bytes()
}
