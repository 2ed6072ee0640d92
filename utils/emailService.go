package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"scholarship/config"
)

// SendEmail delivers an HTML email through SendGrid.
func SendEmail(to, subject, htmlBody string) error {
	cfg := config.AppConfig
	if cfg.SendGridApiKey == "" {
		log.Printf("Email to %s skipped: SENDGRID_API_KEY is not set", to)
		return nil
	}

	from := mail.NewEmail("Scholarship Portal", cfg.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(cfg.SendGridApiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Scholarship Beneficiary Portal</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

var applicationTypeLabels = map[string]string{
	"schoolFees":     "School Fees",
	"travelExpenses": "Travel Expenses",
	"studyBooks":     "Study Books",
}

// SendApplicationStatusEmail notifies a beneficiary that an administrator
// reviewed their application.
func SendApplicationStatusEmail(to, name, applicationType, status string) error {
	label := applicationTypeLabels[applicationType]
	if label == "" {
		label = applicationType
	}

	subject := fmt.Sprintf("Your %s application has been %s", label, status)
	body := fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>Your <strong>%s</strong> scholarship application has been <strong>%s</strong>.</p>
		<p>Log in to the portal to view the details.</p>`, name, label, status)

	return SendEmail(to, subject, getEmailTemplate("Application Update", body))
}

// SendPendingDigestEmail sends the daily pending application counts to the
// configured admin inbox.
func SendPendingDigestEmail(to string, pendingByType map[string]int64, total int64) error {
	body := fmt.Sprintf("<h2>Pending Applications: %d</h2><ul>", total)
	for appType, count := range pendingByType {
		label := applicationTypeLabels[appType]
		if label == "" {
			label = appType
		}
		body += fmt.Sprintf("<li>%s: %d</li>", label, count)
	}
	body += "</ul><p>Log in to the admin dashboard to review them.</p>"

	return SendEmail(to, "Daily pending applications digest", getEmailTemplate("Pending Applications", body))
}
