// Package notifier delivers transactional email. Delivery is best-effort:
// domain operations never fail because the mail relay is down.
package notifier

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/vibrantyoga/api/internal/models"
	"github.com/vibrantyoga/api/internal/repository"
)

type Notifier interface {
	Dispatch(to, subject, htmlBody string)
}

type Mailer struct {
	settings repository.SettingsRepository
	defaults models.SMTPSettings
	log      *logrus.Logger
}

func NewMailer(settings repository.SettingsRepository, defaults models.SMTPSettings, log *logrus.Logger) *Mailer {
	return &Mailer{settings: settings, defaults: defaults, log: log}
}

// Dispatch sends in the background. Failures are logged and dropped.
func (m *Mailer) Dispatch(to, subject, htmlBody string) {
	go func() {
		if err := m.Send(to, subject, htmlBody); err != nil {
			m.log.WithFields(logrus.Fields{
				"to":      to,
				"subject": subject,
			}).WithError(err).Warn("email delivery failed")
		}
	}()
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	settings := m.activeSettings()

	msg := gomail.NewMessage()
	msg.SetHeader("From", settings.Email)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(settings.Host, settings.Port, settings.Username, settings.Password)
	dialer.SSL = strings.EqualFold(settings.Encryption, "SSL")

	return dialer.DialAndSend(msg)
}

// activeSettings returns the stored relay configuration, falling back to the
// configured defaults when nothing has been saved yet.
func (m *Mailer) activeSettings() models.SMTPSettings {
	stored, err := m.settings.Get(context.Background())
	if err != nil {
		return m.defaults
	}
	return *stored
}
