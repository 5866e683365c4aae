package notifying

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-notifier/infrastructure/integrator/mail"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"github.com/vfg2006/app-rank-notifier/internal/metrics"
	"github.com/vfg2006/app-rank-notifier/pkg/log"
	"golang.org/x/time/rate"
)

const defaultSendTimeout = 30 * time.Second

type Dispatcher interface {
	Dispatch(ctx context.Context, digests []domain.RecipientDigest) domain.DispatchReport
}

type Service struct {
	sender        mail.Sender
	sendTimeout   time.Duration
	maxConcurrent int
	limiter       *rate.Limiter
}

func NewService(cfg *config.Config, sender mail.Sender) Dispatcher {
	timeout := cfg.Mail.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}

	maxConcurrent := cfg.Mail.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	// Sem limite configurado, o limiter libera todos os envios
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.Mail.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Mail.RatePerSecond), 1)
	}

	return &Service{
		sender:        sender,
		sendTimeout:   timeout,
		maxConcurrent: maxConcurrent,
		limiter:       limiter,
	}
}

// Dispatch tenta enviar todos os digests. A falha de um destinatário nunca interrompe os demais;
// cada resultado fica registrado no relatório, na mesma ordem da entrada.
func (s *Service) Dispatch(ctx context.Context, digests []domain.RecipientDigest) domain.DispatchReport {
	results := make([]domain.DeliveryResult, len(digests))
	var sent, failed atomic.Int64

	sem := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	for i, digest := range digests {
		sem <- struct{}{}
		wg.Add(1)

		go func(i int, digest domain.RecipientDigest) {
			defer wg.Done()
			defer func() { <-sem }()

			result := s.send(ctx, digest)
			results[i] = result

			if result.OK() {
				sent.Add(1)
			} else {
				failed.Add(1)
			}
		}(i, digest)
	}

	wg.Wait()

	report := domain.DispatchReport{
		Results: results,
		Sent:    int(sent.Load()),
		Failed:  int(failed.Load()),
	}

	logrus.WithFields(logrus.Fields{
		"sent":   report.Sent,
		"failed": report.Failed,
	}).Info("Envio de digests concluído")

	return report
}

func (s *Service) send(ctx context.Context, digest domain.RecipientDigest) domain.DeliveryResult {
	start := time.Now()
	result := domain.DeliveryResult{Email: digest.Email}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	if digest.RenderErr != nil {
		result.Err = fmt.Errorf("%w: %v", errRender, digest.RenderErr)
	} else if err := s.limiter.Wait(sendCtx); err != nil {
		result.Err = err
	} else {
		result.Err = s.deliver(sendCtx, domain.EmailMessage{
			To:       digest.Email,
			Subject:  digest.Subject,
			HTMLBody: digest.HTMLBody,
		})
	}

	result.Duration = time.Since(start)
	metrics.RecordEmail(result.Err, result.Duration)

	if result.Err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"email":       digest.Email,
			"duration_ms": result.Duration.Milliseconds(),
		}).WithError(result.Err).Error("Erro ao enviar e-mail")
		return result
	}

	logrus.Debugf("E-mail enviado para %s", digest.Email)
	return result
}

// deliver devolve no máximo quando o prazo do contexto expira, mesmo que o provedor não respeite o contexto.
// O envio abandonado continua em segundo plano e seu resultado é descartado.
func (s *Service) deliver(ctx context.Context, message domain.EmailMessage) error {
	done := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logrus.Errorf("Panic ao enviar e-mail para %s: %v", message.To, r)
				done <- errSendPanic
			}
		}()
		done <- s.sender.Send(ctx, message)
	}()

	select {
	case err := <-done:
		// Envio que terminou sem erro depois do prazo também conta como falha
		if err == nil && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
