package mailing

import (
	"FoodShare-Backend/internal/utils"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func SendReservationNotice(toEmail string, ownerName string, listingTitle string, reserverName string) error {
	subject := fmt.Sprintf("Your listing %q has been reserved", listingTitle)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p><b>%s</b> reserved your listing <b>%s</b>. "+
			"Open the app to arrange the pickup.</p>",
		ownerName, reserverName, listingTitle,
	)
	return SendMail(toEmail, subject, body)
}

func SendReservationCancelledNotice(toEmail string, ownerName string, listingTitle string) error {
	subject := fmt.Sprintf("Reservation for %q was cancelled", listingTitle)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>The reservation for your listing <b>%s</b> was cancelled. "+
			"The listing is available again.</p>",
		ownerName, listingTitle,
	)
	return SendMail(toEmail, subject, body)
}
