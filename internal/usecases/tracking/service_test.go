package tracking

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mailmocks "github.com/vfg2006/app-rank-notifier/infrastructure/integrator/mail/mocks"
	serpapimocks "github.com/vfg2006/app-rank-notifier/infrastructure/integrator/serpapi/mocks"
	"github.com/vfg2006/app-rank-notifier/infrastructure/repository/mocks"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/digesting"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/notifying"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	provider      *serpapimocks.MockSnapshotProvider
	history       *mocks.MockRankObservationRepository
	subscriptions *mocks.MockSubscriptionRepository
	sender        *mailmocks.MockSender
}

// Data de referência: 16 de janeiro de 2024, 13h UTC
var fixedNow = time.Date(2024, 1, 16, 13, 0, 0, 0, time.UTC)

var (
	today     = time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	yesterday = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	lastWeek  = time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
)

func newTestService(t *testing.T) (*Service, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		provider:      serpapimocks.NewMockSnapshotProvider(ctrl),
		history:       mocks.NewMockRankObservationRepository(ctrl),
		subscriptions: mocks.NewMockSubscriptionRepository(ctrl),
		sender:        mailmocks.NewMockSender(ctrl),
	}

	cfg := &config.Config{
		App: config.App{Timezone: "UTC"},
		Chart: config.Chart{
			Category:     "6015",
			CategoryName: "Finance",
			Country:      "us",
			Depth:        200,
		},
		Mail: config.Mail{
			SendTimeout:   time.Second,
			MaxConcurrent: 1,
		},
		RankDigest: config.RankDigest{
			SiteURL: "https://appstoreposition.com",
		},
	}

	service := &Service{
		cfg:              cfg,
		provider:         deps.provider,
		historyRepo:      deps.history,
		subscriptionRepo: deps.subscriptions,
		builder:          digesting.NewService(cfg, nil),
		dispatcher:       notifying.NewService(cfg, deps.sender),
		now:              func() time.Time { return fixedNow },
		newRunID:         func() string { return "run_test" },
	}

	return service, deps
}

func intPtr(i int) *int {
	return &i
}

func snapshotOf(ranks map[string]int) domain.RankSnapshot {
	return domain.NewRankSnapshot("6015", "us", fixedNow, 200, ranks)
}

func TestService_Run_EmptySnapshotAborts(t *testing.T) {
	service, deps := newTestService(t)

	// Nenhuma outra dependência pode ser chamada
	deps.provider.EXPECT().
		FetchChartSnapshot(gomock.Any(), "6015", "us").
		Return(snapshotOf(nil))

	summary := service.Run(context.Background())

	assert.Equal(t, domain.RunStateAborted, summary.State)
	assert.Equal(t, domain.AbortReasonEmptySnapshot, summary.AbortReason)
	assert.Equal(t, http.StatusInternalServerError, summary.StatusCode())
	assert.Equal(t, "Failed to fetch chart ranks", summary.Message())
	assert.Equal(t, 0, summary.EmailsSent)
	assert.Equal(t, "run_test", summary.RunID)
	assert.Equal(t, "2024-01-16", summary.Date)
}

func TestService_Run_PartialDeliveryFailure(t *testing.T) {
	service, deps := newTestService(t)
	hook := logtest.NewGlobal()
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

	deps.provider.EXPECT().
		FetchChartSnapshot(gomock.Any(), "6015", "us").
		Return(snapshotOf(map[string]int{"123": 5, "456": 30}))

	gomock.InOrder(
		deps.history.EXPECT().
			GetObservationsByDate(gomock.Any(), yesterday).
			Return(domain.ObservationSet{"123": intPtr(15)}, nil),
		deps.history.EXPECT().
			GetObservationsByDate(gomock.Any(), lastWeek).
			Return(domain.ObservationSet{"123": intPtr(5)}, nil),
		deps.subscriptions.EXPECT().
			ListTrackedAppIDs(gomock.Any()).
			Return([]string{"123", "456", "999"}, nil),
		deps.history.EXPECT().
			UpsertObservations(gomock.Any(), []domain.RankObservation{
				{AppID: "123", Date: today, Rank: intPtr(5)},
				{AppID: "456", Date: today, Rank: intPtr(30)},
				{AppID: "999", Date: today, Rank: nil},
			}).
			Return(nil),
		deps.subscriptions.EXPECT().
			ListSubscriptions(gomock.Any()).
			Return([]domain.Subscription{
				{Email: "ana@example.com", AppID: "123", AppName: "Coinbase"},
				{Email: "bruno@example.com", AppID: "456", AppName: "Revolut"},
				{Email: "bruno@example.com", AppID: "999", AppName: "Acorns"},
				{Email: "", AppID: "123", AppName: "Coinbase"},
			}, nil),
	)

	attempted := make([]string, 0, 2)
	deps.sender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, message domain.EmailMessage) error {
			attempted = append(attempted, message.To)
			if message.To == "ana@example.com" {
				assert.Equal(t, "📈 Coinbase is #5 in Finance (US)", message.Subject)
				return errors.New("mail transport unavailable")
			}
			assert.Equal(t, "📈 Your Daily App Rank Update", message.Subject)
			return nil
		}).
		Times(2)

	summary := service.Run(context.Background())

	assert.Equal(t, domain.RunStateDone, summary.State)
	assert.Equal(t, http.StatusOK, summary.StatusCode())
	assert.Equal(t, 1, summary.EmailsSent)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 3, summary.TrackedApps)
	assert.Equal(t, 2, summary.Recipients)
	assert.Equal(t, "Cron job completed. Emails sent: 1. Errors: 1.", summary.Message())
	assert.ElementsMatch(t, []string{"ana@example.com", "bruno@example.com"}, attempted)

	var failedRecipients any
	for _, entry := range hook.AllEntries() {
		if recipients, ok := entry.Data["failed_recipients"]; ok {
			failedRecipients = recipients
		}
	}
	assert.Equal(t, []string{"ana@example.com"}, failedRecipients)
}

func TestService_Run_HistoryFailures(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(deps testDeps)
		expectedReason string
	}{
		{
			name: "Falha ao ler ontem aborta sem gravar nem enviar",
			setup: func(deps testDeps) {
				deps.history.EXPECT().
					GetObservationsByDate(gomock.Any(), yesterday).
					Return(nil, errors.New("connection refused"))
			},
			expectedReason: domain.AbortReasonHistoryUnavailable,
		},
		{
			name: "Falha ao ler semana passada aborta",
			setup: func(deps testDeps) {
				deps.history.EXPECT().GetObservationsByDate(gomock.Any(), yesterday).Return(domain.ObservationSet{}, nil)
				deps.history.EXPECT().
					GetObservationsByDate(gomock.Any(), lastWeek).
					Return(nil, errors.New("connection refused"))
			},
			expectedReason: domain.AbortReasonHistoryUnavailable,
		},
		{
			name: "Falha ao gravar hoje aborta sem enviar",
			setup: func(deps testDeps) {
				deps.history.EXPECT().GetObservationsByDate(gomock.Any(), gomock.Any()).Return(domain.ObservationSet{}, nil).Times(2)
				deps.subscriptions.EXPECT().ListTrackedAppIDs(gomock.Any()).Return([]string{"123"}, nil)
				deps.history.EXPECT().
					UpsertObservations(gomock.Any(), gomock.Any()).
					Return(errors.New("deadlock detected"))
			},
			expectedReason: domain.AbortReasonHistoryUnavailable,
		},
		{
			name: "Falha ao ler assinaturas aborta",
			setup: func(deps testDeps) {
				deps.history.EXPECT().GetObservationsByDate(gomock.Any(), gomock.Any()).Return(domain.ObservationSet{}, nil).Times(2)
				deps.subscriptions.EXPECT().ListTrackedAppIDs(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expectedReason: domain.AbortReasonSubscriptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)

			deps.provider.EXPECT().
				FetchChartSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(snapshotOf(map[string]int{"123": 5}))
			tt.setup(deps)

			summary := service.Run(context.Background())

			require.Equal(t, domain.RunStateAborted, summary.State)
			assert.Equal(t, tt.expectedReason, summary.AbortReason)
			assert.Equal(t, http.StatusInternalServerError, summary.StatusCode())
			assert.Equal(t, "Cron job failed", summary.Message())
			assert.NotContains(t, summary.Message(), "connection")
		})
	}
}

func TestService_Run_NoSubscribers(t *testing.T) {
	service, deps := newTestService(t)

	deps.provider.EXPECT().FetchChartSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(snapshotOf(map[string]int{"123": 5}))
	deps.history.EXPECT().GetObservationsByDate(gomock.Any(), gomock.Any()).Return(domain.ObservationSet{}, nil).Times(2)
	deps.subscriptions.EXPECT().ListTrackedAppIDs(gomock.Any()).Return([]string{}, nil)
	deps.history.EXPECT().UpsertObservations(gomock.Any(), []domain.RankObservation{}).Return(nil)
	deps.subscriptions.EXPECT().ListSubscriptions(gomock.Any()).Return([]domain.Subscription{}, nil)

	summary := service.Run(context.Background())

	assert.Equal(t, domain.RunStateDone, summary.State)
	assert.Equal(t, "Cron job completed. Emails sent: 0. Errors: 0.", summary.Message())
}
