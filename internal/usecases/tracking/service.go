package tracking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-notifier/infrastructure/integrator/serpapi"
	"github.com/vfg2006/app-rank-notifier/infrastructure/repository"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"github.com/vfg2006/app-rank-notifier/internal/metrics"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/catalog"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/digesting"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/notifying"
	"github.com/vfg2006/app-rank-notifier/pkg/log"
	"github.com/vfg2006/app-rank-notifier/pkg/utils"
)

// Orchestrator executa o pipeline completo: ranking → histórico → digests → envio
type Orchestrator interface {
	Run(ctx context.Context) domain.RunSummary
}

type Service struct {
	cfg              *config.Config
	provider         serpapi.SnapshotProvider
	historyRepo      repository.RankObservationRepository
	subscriptionRepo repository.SubscriptionRepository
	resolver         catalog.AppResolver
	builder          digesting.Builder
	dispatcher       notifying.Dispatcher
	now              func() time.Time
	newRunID         func() string
}

func NewService(
	cfg *config.Config,
	provider serpapi.SnapshotProvider,
	historyRepo repository.RankObservationRepository,
	subscriptionRepo repository.SubscriptionRepository,
	resolver catalog.AppResolver,
	builder digesting.Builder,
	dispatcher notifying.Dispatcher,
) Orchestrator {
	return &Service{
		cfg:              cfg,
		provider:         provider,
		historyRepo:      historyRepo,
		subscriptionRepo: subscriptionRepo,
		resolver:         resolver,
		builder:          builder,
		dispatcher:       dispatcher,
		now:              time.Now,
		newRunID:         utils.GenerateRunID,
	}
}

func (s *Service) Run(ctx context.Context) domain.RunSummary {
	today := utils.StartOfDay(s.now(), s.cfg.Location())

	summary := domain.RunSummary{
		RunID:     s.newRunID(),
		State:     domain.RunStateFetchingSnapshot,
		Date:      today.Format(time.DateOnly),
		StartedAt: s.now(),
	}
	ctx = log.WithRunID(ctx, summary.RunID)
	logger := logrus.WithFields(logrus.Fields{
		"run_id": summary.RunID,
		"date":   summary.Date,
	})
	logger.Info("Iniciando execução do digest de ranking")

	snapshot := s.provider.FetchChartSnapshot(ctx, s.cfg.Chart.Category, s.cfg.Chart.Country)
	metrics.RecordSnapshotSize(snapshot.Len())

	// Ranking vazio indica falha do provedor: nada é gravado nem enviado
	if snapshot.IsEmpty() {
		logger.Error("Ranking vazio, execução abortada")
		return s.abort(summary, domain.AbortReasonEmptySnapshot)
	}

	summary.State = domain.RunStatePersistingHistory

	// Leituras antes da gravação de hoje
	yesterday, err := s.historyRepo.GetObservationsByDate(ctx, today.AddDate(0, 0, -1))
	if err != nil {
		logger.Errorf("Erro ao buscar ranking de ontem: %v", err)
		return s.abort(summary, domain.AbortReasonHistoryUnavailable)
	}

	lastWeek, err := s.historyRepo.GetObservationsByDate(ctx, today.AddDate(0, 0, -7))
	if err != nil {
		logger.Errorf("Erro ao buscar ranking da semana passada: %v", err)
		return s.abort(summary, domain.AbortReasonHistoryUnavailable)
	}

	appIDs, err := s.subscriptionRepo.ListTrackedAppIDs(ctx)
	if err != nil {
		logger.Errorf("Erro ao buscar apps acompanhados: %v", err)
		return s.abort(summary, domain.AbortReasonSubscriptions)
	}
	summary.TrackedApps = len(appIDs)

	observations := make([]domain.RankObservation, 0, len(appIDs))
	for _, appID := range appIDs {
		rank := snapshot.Rank(catalog.ChartKey(ctx, s.resolver, appID))
		observations = append(observations, domain.RankObservation{
			AppID: appID,
			Date:  today,
			Rank:  rank.Ptr(),
		})
	}

	if err := s.historyRepo.UpsertObservations(ctx, observations); err != nil {
		logger.Errorf("Erro ao gravar ranking de hoje: %v", err)
		return s.abort(summary, domain.AbortReasonHistoryUnavailable)
	}
	logger.Infof("Ranking de hoje gravado para %d apps", len(observations))

	summary.State = domain.RunStateBuildingDigests

	subscriptions, err := s.subscriptionRepo.ListSubscriptions(ctx)
	if err != nil {
		logger.Errorf("Erro ao buscar assinaturas: %v", err)
		return s.abort(summary, domain.AbortReasonSubscriptions)
	}

	byEmail := domain.GroupSubscriptionsByEmail(subscriptions)
	if skipped := len(subscriptions) - countSubscriptions(byEmail); skipped > 0 {
		logger.Warnf("%d assinaturas ignoradas por campos obrigatórios ausentes", skipped)
	}

	digests := s.builder.BuildDigests(ctx, snapshot, yesterday, lastWeek, byEmail)
	summary.Recipients = len(digests)

	summary.State = domain.RunStateDispatching
	report := s.dispatcher.Dispatch(ctx, digests)

	summary.EmailsSent = report.Sent
	summary.Errors = report.Failed
	if !report.AllSucceeded() {
		logger.WithField("failed_recipients", report.FailedRecipients()).
			Warnf("%d de %d e-mails falharam", report.Failed, len(digests))
	}
	summary.State = domain.RunStateDone

	return s.finish(summary)
}

func (s *Service) abort(summary domain.RunSummary, reason string) domain.RunSummary {
	summary.State = domain.RunStateAborted
	summary.AbortReason = reason
	return s.finish(summary)
}

func (s *Service) finish(summary domain.RunSummary) domain.RunSummary {
	summary.FinishedAt = s.now()
	metrics.RecordRun(summary)

	logrus.WithFields(logrus.Fields{
		"run_id":       summary.RunID,
		"state":        summary.State,
		"abort_reason": summary.AbortReason,
		"tracked_apps": summary.TrackedApps,
		"recipients":   summary.Recipients,
		"emails_sent":  summary.EmailsSent,
		"errors":       summary.Errors,
	}).Info(summary.Message())

	return summary
}

func countSubscriptions(byEmail map[string][]domain.Subscription) int {
	total := 0
	for _, subscriptions := range byEmail {
		total += len(subscriptions)
	}
	return total
}
