package serpapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/app-rank-notifier/infrastructure/integrator/serpapi/mocks"
	"github.com/vfg2006/app-rank-notifier/infrastructure/integrator/serpapi/serpapiclient"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSerpApiService_FetchChartSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	cfg := &config.Config{
		App: config.App{Timezone: "UTC"},
		Chart: config.Chart{
			Engine: "apple_app_store_charts",
			Name:   "top_free_applications",
			Depth:  200,
		},
	}

	fixedNow := time.Date(2024, 1, 16, 13, 0, 0, 0, time.UTC)
	service := &SerpApiService{
		cfg:    cfg,
		Client: mockClient,
		now:    func() time.Time { return fixedNow },
	}

	expectedParams := serpapiclient.ChartParams{
		Engine:   "apple_app_store_charts",
		Chart:    "top_free_applications",
		Category: "6015",
		Country:  "us",
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, snapshot domain.RankSnapshot)
	}{
		{
			name: "Converte entradas válidas e ignora id ausente ou rank inválido",
			setup: func() {
				mockClient.EXPECT().
					GetChart(gomock.Any(), expectedParams).
					Return([]serpapiclient.ChartEntry{
						{ID: "123", Rank: 5},
						{ID: "456", Rank: 12},
						{ID: "", Rank: 3},
						{ID: "789", Rank: 0},
						{ID: "321", Rank: -1},
					}, nil)
			},
			validate: func(t *testing.T, snapshot domain.RankSnapshot) {
				assert.Equal(t, 2, snapshot.Len())
				assert.Equal(t, domain.Ranked(5), snapshot.Rank("123"))
				assert.Equal(t, domain.Ranked(12), snapshot.Rank("456"))
				assert.Equal(t, domain.Unranked, snapshot.Rank("789"))
				assert.Equal(t, 200, snapshot.Depth)
				assert.Equal(t, fixedNow, snapshot.Date)
			},
		},
		{
			name: "App repetido mantém a melhor posição",
			setup: func() {
				mockClient.EXPECT().
					GetChart(gomock.Any(), expectedParams).
					Return([]serpapiclient.ChartEntry{
						{ID: "123", Rank: 9},
						{ID: "123", Rank: 4},
					}, nil)
			},
			validate: func(t *testing.T, snapshot domain.RankSnapshot) {
				assert.Equal(t, domain.Ranked(4), snapshot.Rank("123"))
			},
		},
		{
			name: "Falha do cliente resulta em snapshot vazio",
			setup: func() {
				mockClient.EXPECT().
					GetChart(gomock.Any(), expectedParams).
					Return(nil, errors.New("requisição falhou com status: 401 Unauthorized"))
			},
			validate: func(t *testing.T, snapshot domain.RankSnapshot) {
				assert.True(t, snapshot.IsEmpty())
				assert.Equal(t, "6015", snapshot.Category)
				assert.Equal(t, "us", snapshot.Country)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			snapshot := service.FetchChartSnapshot(context.Background(), "6015", "us")
			tt.validate(t, snapshot)
		})
	}
}
