package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"path/filepath"
	"strings"

	"volunteerhub/core/config"
)

// TemplateData carries the values interpolated into email templates
type TemplateData struct {
	RecipientName string `json:"recipient_name"`
	EventTitle    string `json:"event_title"`
	EventDate     string `json:"event_date"`
	TimeSlot      string `json:"time_slot"`
	Decision      string `json:"decision"`
	Note          string `json:"note"`
}

// SendEmail sends an HTML email over SMTP to the given recipients.
func SendEmail(to []string, subject, htmlBody string) error {
	cfg := config.Get()
	if cfg.SMTP.Host == "" {
		return fmt.Errorf("smtp not configured")
	}

	addr := fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	headers := []string{
		"From: " + cfg.SMTP.From,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	msg := []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody)

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}
	return smtp.SendMail(addr, auth, cfg.SMTP.From, to, msg)
}

// RenderEmailTemplate renders templatesDir/<templateName> with data.
func RenderEmailTemplate(templatesDir, templateName string, data TemplateData) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(templatesDir, templateName))
	if err != nil {
		return "", fmt.Errorf("failed to parse email template %s: %w", templateName, err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render email template %s: %w", templateName, err)
	}

	return body.String(), nil
}

// SendTemplateEmailFromTemplatesDir renders templates/<templateName> with data
// and sends the result.
func SendTemplateEmailFromTemplatesDir(to []string, subject, templateName string, data TemplateData) error {
	body, err := RenderEmailTemplate("templates", templateName, data)
	if err != nil {
		return err
	}

	return SendEmail(to, subject, body)
}
