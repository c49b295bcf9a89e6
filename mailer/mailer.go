package mailer

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/quizplatform/apiv1/utils"
)

// Sender delivers a password reset code out-of-band.
type Sender interface {
	SendResetCode(to, code string) error
}

// FromEnv returns an SMTP sender when SMTP_HOST is configured and a console
// sender otherwise, so development setups keep working without a mail server.
func FromEnv(logger *zap.Logger) Sender {
	host := os.Getenv(utils.SMTP_HOST)
	if host == "" {
		return &ConsoleSender{logger: logger}
	}
	port, err := strconv.Atoi(os.Getenv(utils.SMTP_PORT))
	if err != nil {
		port = 587
	}
	from := os.Getenv(utils.SMTP_FROM)
	if from == "" {
		from = os.Getenv(utils.SMTP_USER)
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, os.Getenv(utils.SMTP_USER), os.Getenv(utils.SMTP_PASS)),
		from:   from,
		logger: logger,
	}
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func (s *SMTPSender) SendResetCode(to, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password Reset OTP - Quiz Platform")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello,\n\n"+
			"You requested a password reset for your quiz platform account.\n\n"+
			"Your OTP code is: %s\n\n"+
			"This code is valid for 10 minutes.\n\n"+
			"If you did not request this, please ignore this email.\n\n"+
			"Best regards,\nQuiz Platform Team", code))
	if err := s.dialer.DialAndSend(m); err != nil {
		// Keep the code reachable for the operator when delivery breaks.
		s.logger.Warn("email delivery failed, logging reset code locally",
			zap.String("to", to),
			zap.String("code", code),
			zap.Error(err))
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// ConsoleSender is the development fallback when no SMTP transport is
// configured: the code goes to the log instead of an inbox.
type ConsoleSender struct {
	logger *zap.Logger
}

func (c *ConsoleSender) SendResetCode(to, code string) error {
	c.logger.Info("email not configured, logging reset code",
		zap.String("to", to),
		zap.String("code", code))
	return nil
}
