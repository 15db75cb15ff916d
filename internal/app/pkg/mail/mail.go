package mail

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP. When credentials are not
// configured every send is skipped and reported as not sent, so email can
// never break registration or the contact form.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	admin    string
}

func NewMailer(host string, port int, username, password, from, admin string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		admin:    admin,
	}
}

// Enabled reports whether SMTP credentials are configured.
func (m *Mailer) Enabled() bool {
	return m.username != "" && m.password != ""
}

func (m *Mailer) send(msg *gomail.Message) error {
	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return d.DialAndSend(msg)
}

// SendWelcome greets a newly registered user. Returns false when sending
// was skipped or failed.
func (m *Mailer) SendWelcome(email, name string) bool {
	if !m.Enabled() {
		log.Warn("email credentials not configured, skipping welcome email")
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Welcome to HealthPredict!")
	msg.SetBody("text/html", fmt.Sprintf(`
		<html><body style="font-family: Arial, sans-serif; color: #333;">
		<h2>Welcome, %s!</h2>
		<p>Thank you for registering with <strong>HealthPredict</strong>.</p>
		<p>You can now report symptoms, review your prediction history and
		download PDF reports from your dashboard.</p>
		<p>Best regards,<br>The HealthPredict Team</p>
		</body></html>`, name))

	if err := m.send(msg); err != nil {
		log.WithError(err).Warn("failed to send welcome email")
		return false
	}
	return true
}

// SendContactNotification forwards a contact-form submission to the admin
// address. Returns false when sending was skipped or failed.
func (m *Mailer) SendContactNotification(name, email, phone, subject, message string) bool {
	if !m.Enabled() || m.admin == "" {
		log.Warn("email credentials not configured, skipping contact notification")
		return false
	}

	if subject == "" {
		subject = "No Subject"
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.admin)
	msg.SetHeader("Reply-To", email)
	msg.SetHeader("Subject", "New Contact Form Submission: "+subject)
	msg.SetBody("text/html", fmt.Sprintf(`
		<html><body style="font-family: Arial, sans-serif; color: #333;">
		<h2>New Contact Form Submission</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>
		</body></html>`, name, email, phone, message))

	if err := m.send(msg); err != nil {
		log.WithError(err).Warn("failed to send contact notification")
		return false
	}
	return true
}
