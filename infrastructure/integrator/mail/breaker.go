package mail

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

// BreakerSender interrompe as tentativas quando o provedor falha em sequência.
// Com o circuito aberto cada envio falha imediatamente com gobreaker.ErrOpenState.
type BreakerSender struct {
	next    Sender
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func NewBreakerSender(name string, next Sender, cfg config.Mail) *BreakerSender {
	threshold := cfg.BreakerFailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	timeout := cfg.BreakerTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        "mail-" + name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker do provedor de e-mail mudou de estado")
		},
	}

	return &BreakerSender{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

func (s *BreakerSender) Send(ctx context.Context, message domain.EmailMessage) error {
	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.next.Send(ctx, message)
	})
	return err
}

// State expõe o estado atual do circuito (closed, half-open, open)
func (s *BreakerSender) State() string {
	return s.breaker.State().String()
}
