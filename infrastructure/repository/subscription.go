package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/app-rank-notifier/infrastructure/database/postgres"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

const (
	subscriptionsTable = "subscriptions s"
)

// SubscriptionRepository é somente leitura: as assinaturas são mantidas pelo front-end
type SubscriptionRepository interface {
	ListSubscriptions(ctx context.Context) ([]domain.Subscription, error)
	ListTrackedAppIDs(ctx context.Context) ([]string, error)
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

func (r *subscriptionRepository) ListSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	query, args, err := squirrel.
		Select("s.email", "s.app_id", "s.app_name", "s.created_at").
		From(subscriptionsTable).
		OrderBy("s.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	subscriptions := make([]domain.Subscription, 0)
	for rows.Next() {
		var subscription domain.Subscription
		if err := rows.Scan(
			&subscription.Email,
			&subscription.AppID,
			&subscription.AppName,
			&subscription.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear assinatura: %w", err)
		}
		subscriptions = append(subscriptions, subscription)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return subscriptions, nil
}

// ListTrackedAppIDs retorna os apps com pelo menos uma assinatura
func (r *subscriptionRepository) ListTrackedAppIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT s.app_id").
		From(subscriptionsTable).
		OrderBy("s.app_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	appIDs := make([]string, 0)
	for rows.Next() {
		var appID string
		if err := rows.Scan(&appID); err != nil {
			return nil, fmt.Errorf("erro ao escanear app_id: %w", err)
		}
		appIDs = append(appIDs, appID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return appIDs, nil
}
