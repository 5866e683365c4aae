package serpapi

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-notifier/infrastructure/integrator/serpapi/serpapiclient"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

// SnapshotProvider devolve o ranking completo de uma categoria/país. Nunca retorna erro:
// qualquer falha resulta em snapshot vazio.
type SnapshotProvider interface {
	FetchChartSnapshot(ctx context.Context, category, country string) domain.RankSnapshot
}

type SerpApiService struct {
	cfg    *config.Config
	Client serpapiclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client serpapiclient.Client) SnapshotProvider {
	return &SerpApiService{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

func (s *SerpApiService) FetchChartSnapshot(ctx context.Context, category, country string) domain.RankSnapshot {
	date := s.now().In(s.cfg.Location())

	entries, err := s.Client.GetChart(ctx, serpapiclient.ChartParams{
		Engine:   s.cfg.Chart.Engine,
		Chart:    s.cfg.Chart.Name,
		Category: category,
		Country:  country,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"category": category,
			"country":  country,
		}).Errorf("Erro ao buscar ranking na SerpApi: %v", err)
		return domain.NewRankSnapshot(category, country, date, s.cfg.Chart.Depth, nil)
	}

	ranks := make(map[string]int, len(entries))
	skipped := 0
	for _, entry := range entries {
		if entry.ID == "" || entry.Rank <= 0 {
			skipped++
			continue
		}
		// Mantém a melhor posição caso o mesmo app apareça duas vezes
		if current, exists := ranks[entry.ID]; exists && current <= entry.Rank {
			continue
		}
		ranks[entry.ID] = entry.Rank
	}

	if skipped > 0 {
		logrus.Warnf("%d entradas do chart ignoradas por id ausente ou rank inválido", skipped)
	}

	snapshot := domain.NewRankSnapshot(category, country, date, s.cfg.Chart.Depth, ranks)
	logrus.WithFields(logrus.Fields{
		"category": category,
		"country":  country,
		"apps":     snapshot.Len(),
	}).Info("Ranking obtido da SerpApi")

	return snapshot
}
