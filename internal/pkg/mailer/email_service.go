package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendDraftedReply(toEmail, subject, reply string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendDraftedReply(toEmail, subject, reply string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Re: %s", subject))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<p style="white-space: pre-wrap;">%s</p>
			<hr>
			<p style="font-size: 12px; color: #888;">This reply was drafted automatically for ticket "%s".</p>
		</div>
	`, reply, subject)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send drafted reply to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Drafted reply sent to %s\n", toEmail)
	return nil
}
