package email

import (
	"fmt"

	"github.com/festpix/festpix-backend/internal/config"
	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(cfg *config.Config, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(cfg.Email.APIKey),
		from:     cfg.Email.FromAddress,
		fromName: cfg.Email.FromName,
		logger:   logger,
	}
}

func (s *EmailService) SendWelcomeEmail(to, username string) error {
	s.logger.Info("sending welcome email", zap.String("to", to))

	html := fmt.Sprintf(`
		<h1>Welcome to Festpix, %s!</h1>
		<p>Create your first event, print the QR code, and let your guests
		fill the gallery.</p>`, username)

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: "Welcome to Festpix!",
		Html:    html,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		s.logger.Error("welcome email failed", zap.String("to", to), zap.Error(err))
		return err
	}

	return nil
}
