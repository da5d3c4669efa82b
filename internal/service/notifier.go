package service

import (
	"context"
	"fmt"
	"html"
	"mime"
	"net/smtp"
	"strings"

	"fantapiazza-backend/internal/config"
	"fantapiazza-backend/internal/database/models"
	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/logger"
)

// SMTPNotifier sends HTML emails through an SMTP relay
type SMTPNotifier struct {
	host     string
	port     string
	user     string
	password string
	from     string
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// Ensure SMTPNotifier implements Notifier
var _ Notifier = (*SMTPNotifier)(nil)

// NewNotifier returns an SMTP notifier, or a log-only notifier when mail is not configured
func NewNotifier(cfg *config.Config) Notifier {
	if !cfg.MailEnabled() {
		return LogNotifier{}
	}
	return &SMTPNotifier{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.EmailFrom,
		sendMail: smtp.SendMail,
	}
}

// SendVerification sends the welcome email with the address confirmation link
func (n *SMTPNotifier) SendVerification(ctx context.Context, to, link string) error {
	body := fmt.Sprintf(`<h2 style="color: #bc9c5d;">Benvenuto in FantaPiazza!</h2>
<p>Siamo felici di averti con noi.</p>
<p>Conferma il tuo indirizzo email per iniziare a costruire la tua squadra:</p>
<p><a href="%s">Verifica il tuo account</a></p>
<hr/>
<p>Il Team di FantaPiazza</p>`, html.EscapeString(link))

	return n.send(to, "Benvenuto su FantaPiazza!", body)
}

// NotifyNewArtist tells every recipient about a newly added artist.
// Delivery continues past individual failures; the first error is returned.
func (n *SMTPNotifier) NotifyNewArtist(ctx context.Context, recipients []string, artist *models.Artist) error {
	subject := fmt.Sprintf("Nuovo artista FantaPiazza: %s", artist.Name)
	body := newArtistBody(artist)

	var firstErr error
	for _, to := range recipients {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := n.send(to, subject, body); err != nil {
			logger.WithContext(ctx).WithField("to", to).WithError(err).Warn("Failed to send new artist email")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	if n.host == "" {
		return apperrors.ErrMailNotConfigured
	}

	var auth smtp.Auth
	if n.user != "" {
		auth = smtp.PlainAuth("", n.user, n.password, n.host)
	}

	message := []byte("Subject: " + encodeHeader(subject) + "\r\n" +
		"From: " + stripLineBreaks(n.from) + "\r\n" +
		"To: " + stripLineBreaks(to) + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		strings.ReplaceAll(body, "\n", "\r\n") + "\r\n")

	if err := n.sendMail(n.host+":"+n.port, auth, n.from, []string{to}, message); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func stripLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}

// encodeHeader flattens s to one line and RFC 2047 encodes non-ASCII text
func encodeHeader(s string) string {
	return mime.QEncoding.Encode("utf-8", stripLineBreaks(s))
}

func newArtistBody(artist *models.Artist) string {
	return fmt.Sprintf(`<h2 style="color: #bc9c5d;">Nuovo artista in piazza!</h2>
<p><strong>%s</strong> si è unito a FantaPiazza e costa %d armoni.</p>
<p>Entra e valuta se inserirlo nella tua squadra prima della chiusura del mercato.</p>
<hr/>
<p>Il Team di FantaPiazza</p>`, html.EscapeString(artist.Name), artist.Cost)
}

// LogNotifier only logs the emails it would send
type LogNotifier struct{}

// SendVerification logs the verification link
func (LogNotifier) SendVerification(ctx context.Context, to, link string) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":   to,
		"link": link,
	}).Info("Mail disabled, verification link not sent")
	return nil
}

// NotifyNewArtist logs the announcement
func (LogNotifier) NotifyNewArtist(ctx context.Context, recipients []string, artist *models.Artist) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"recipients": len(recipients),
		"artist":     artist.Name,
	}).Info("Mail disabled, new artist announcement not sent")
	return nil
}
