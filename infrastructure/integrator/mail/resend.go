package mail

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-notifier/infrastructure/integrator/mail/resendclient"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

type ResendSender struct {
	cfg    *config.Config
	Client resendclient.Client
}

func NewResendSender(cfg *config.Config, client resendclient.Client) *ResendSender {
	return &ResendSender{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ResendSender) Send(ctx context.Context, message domain.EmailMessage) error {
	resp, err := s.Client.SendEmail(ctx, resendclient.SendEmailRequest{
		From:    s.cfg.Mail.FromAddress,
		To:      []string{message.To},
		Subject: message.Subject,
		HTML:    message.HTMLBody,
	})
	if err != nil {
		return err
	}

	logrus.WithField("resend_id", resp.ID).Debugf("E-mail aceito pela Resend para %s", message.To)
	return nil
}
