package mail

import (
	"context"
	"fmt"

	"github.com/vfg2006/app-rank-notifier/infrastructure/integrator/mail/resendclient"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

// Sender envia uma única mensagem. Erro indica que a mensagem não foi aceita pelo provedor.
type Sender interface {
	Send(ctx context.Context, message domain.EmailMessage) error
}

// NewSender monta o provedor configurado em MAIL_PROVIDER já protegido pelo circuit breaker
func NewSender(cfg *config.Config) (Sender, error) {
	var sender Sender

	switch cfg.Mail.Provider {
	case config.MailProviderLog, "":
		sender = NewLogSender()
	case config.MailProviderResend:
		sender = NewResendSender(cfg, resendclient.NewClient(cfg))
	case config.MailProviderSMTP:
		sender = NewSMTPSender(cfg)
	default:
		return nil, fmt.Errorf("provedor de e-mail não suportado: %s", cfg.Mail.Provider)
	}

	return NewBreakerSender(cfg.Mail.Provider, sender, cfg.Mail), nil
}
