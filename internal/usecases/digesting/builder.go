package digesting

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/catalog"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/ranking"
)

const (
	DefaultSubject = "📈 Your Daily App Rank Update"
	defaultDepth   = 200
)

type Builder interface {
	BuildDigests(
		ctx context.Context,
		snapshot domain.RankSnapshot,
		yesterday, lastWeek domain.ObservationSet,
		subscriptionsByEmail map[string][]domain.Subscription,
	) []domain.RecipientDigest
}

type Service struct {
	resolver catalog.AppResolver
	renderer *renderer
	category string
	country  string
}

func NewService(cfg *config.Config, resolver catalog.AppResolver) Builder {
	return &Service{
		resolver: resolver,
		renderer: newRenderer(cfg.RankDigest.SiteURL, cfg.RankDigest.RequestAppURL),
		category: cfg.Chart.CategoryName,
		country:  cfg.Chart.CountryLabel(),
	}
}

// BuildDigests monta um digest por e-mail. Destinatários sem nenhuma linha são omitidos.
// A saída é ordenada por e-mail.
func (s *Service) BuildDigests(
	ctx context.Context,
	snapshot domain.RankSnapshot,
	yesterday, lastWeek domain.ObservationSet,
	subscriptionsByEmail map[string][]domain.Subscription,
) []domain.RecipientDigest {
	emails := make([]string, 0, len(subscriptionsByEmail))
	for email := range subscriptionsByEmail {
		if email == "" {
			continue
		}
		emails = append(emails, email)
	}
	sort.Strings(emails)

	digests := make([]domain.RecipientDigest, 0, len(emails))
	for _, email := range emails {
		lines := s.buildLines(ctx, snapshot, yesterday, lastWeek, subscriptionsByEmail[email])
		if len(lines) == 0 {
			logrus.Debugf("Nenhum app válido para %s, digest ignorado", email)
			continue
		}

		digest := domain.RecipientDigest{
			Email:   email,
			Subject: s.subject(lines),
			Lines:   lines,
		}

		body, err := s.renderer.render(digest, s.category, s.country)
		if err != nil {
			logrus.Errorf("Erro ao renderizar e-mail para %s: %v", email, err)
			digest.RenderErr = err
		}
		digest.HTMLBody = body

		digests = append(digests, digest)
	}

	return digests
}

func (s *Service) buildLines(
	ctx context.Context,
	snapshot domain.RankSnapshot,
	yesterday, lastWeek domain.ObservationSet,
	subscriptions []domain.Subscription,
) []domain.AppDigestLine {
	depth := snapshot.Depth
	if depth <= 0 {
		depth = defaultDepth
	}

	lines := make([]domain.AppDigestLine, 0, len(subscriptions))
	index := make(map[string]int, len(subscriptions))

	for _, subscription := range subscriptions {
		if subscription.AppID == "" {
			continue
		}

		// Assinatura repetida para o mesmo app: mantém a primeira linha e só completa o nome
		if i, exists := index[subscription.AppID]; exists {
			if lines[i].AppName == subscription.AppID && subscription.AppName != "" {
				lines[i].AppName = subscription.AppName
			}
			continue
		}

		meta, resolved := domain.AppMeta{}, false
		if s.resolver != nil {
			meta, resolved = s.resolver.Resolve(ctx, subscription.AppID)
		}

		chartKey := subscription.AppID
		if resolved && meta.ChartID != "" {
			chartKey = meta.ChartID
		}

		name := subscription.AppName
		if name == "" && resolved {
			name = meta.Name
		}
		if name == "" {
			name = subscription.AppID
		}

		today := snapshot.Rank(chartKey)

		index[subscription.AppID] = len(lines)
		lines = append(lines, domain.AppDigestLine{
			AppID:        subscription.AppID,
			AppName:      name,
			RankText:     RankText(today, depth),
			DailyChange:  ranking.ComputeChange(today, yesterday.Lookup(subscription.AppID)),
			WeeklyChange: ranking.ComputeChange(today, lastWeek.Lookup(subscription.AppID)),
		})
	}

	return lines
}

// subject é personalizado apenas quando o destinatário acompanha exatamente um app
func (s *Service) subject(lines []domain.AppDigestLine) string {
	if len(lines) != 1 {
		return DefaultSubject
	}
	return fmt.Sprintf("📈 %s is %s in %s (%s)", lines[0].AppName, lines[0].RankText, s.category, s.country)
}

// RankText formata a posição para exibição: "#5" ou "Below #200"
func RankText(rank domain.RankValue, depth int) string {
	if !rank.Ranked {
		return fmt.Sprintf("Below #%d", depth)
	}
	return fmt.Sprintf("#%d", rank.Position)
}
