package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/app-rank-notifier/infrastructure/database/postgres"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

const (
	appCatalogTable = "app_catalog ac"
)

type AppCatalogRepository interface {
	GetByAppID(ctx context.Context, appID string) (*domain.AppMeta, error)
	SaveOrUpdate(ctx context.Context, meta domain.AppMeta) error
}

type appCatalogRepository struct {
	conn *postgres.Connection
}

func NewAppCatalogRepository(conn *postgres.Connection) AppCatalogRepository {
	return &appCatalogRepository{
		conn: conn,
	}
}

func (r *appCatalogRepository) GetByAppID(ctx context.Context, appID string) (*domain.AppMeta, error) {
	query, args, err := squirrel.
		Select("ac.app_id, ac.chart_id, ac.name").
		From(appCatalogTable).
		Where(squirrel.Eq{"ac.app_id": appID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	meta := &domain.AppMeta{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&meta.AppID, &meta.ChartID, &meta.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear app do catálogo: %w", err)
	}

	return meta, nil
}

func (r *appCatalogRepository) SaveOrUpdate(ctx context.Context, meta domain.AppMeta) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("app_catalog").
		Columns("app_id", "chart_id", "name").
		Values(meta.AppID, meta.ChartID, meta.Name).
		Suffix(`
			ON CONFLICT (app_id) DO UPDATE SET
				chart_id = EXCLUDED.chart_id,
				name = EXCLUDED.name,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}
