// Package scheduler contém os serviços de agendamento do pipeline de ranking
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/tracking"
)

var ErrRunInProgress = errors.New("execução do digest de ranking já está em andamento")

type RankDigestConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type RankDigestService struct {
	scheduler           *gocron.Scheduler
	orchestrator        tracking.Orchestrator
	config              RankDigestConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.RunSummary
}

func NewRankDigestService(orchestrator tracking.Orchestrator, cfg *config.Config) *RankDigestService {
	digestConfig := RankDigestConfig{
		CronSchedule: cfg.RankDigest.CronSchedule, // Default: 13h todos os dias
		SyncEnabled:  cfg.RankDigest.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(cfg.Location())

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"timezone":      cfg.Location().String(),
	}).Info("Configuração do agendador do digest de ranking carregada")

	return &RankDigestService{
		scheduler:    scheduler,
		orchestrator: orchestrator,
		config:       digestConfig,
	}
}

func (s *RankDigestService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do digest de ranking desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do digest de ranking")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); err != nil {
			logrus.WithError(err).Warn("Execução agendada do digest de ranking ignorada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar digest de ranking: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do digest de ranking")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa o pipeline de forma síncrona. Uma segunda chamada durante a execução
// retorna ErrRunInProgress sem executar nada.
func (s *RankDigestService) RunNow(ctx context.Context) (domain.RunSummary, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Digest de ranking já está em execução")
		return domain.RunSummary{}, ErrRunInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	summary := s.orchestrator.Run(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSummary = &summary
	s.syncMutex.Unlock()

	return summary, nil
}

// TriggerManualSync inicia uma execução em segundo plano
func (s *RankDigestService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Digest de ranking já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do digest de ranking")
	go func() {
		if _, err := s.RunNow(context.Background()); err != nil {
			logrus.WithError(err).Warn("Execução manual do digest de ranking ignorada")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *RankDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastSummary != nil {
		status["last_summary"] = *s.lastSummary
	}

	return status
}
