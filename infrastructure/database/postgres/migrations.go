package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
)

// RankPositiveConstraint é a CHECK que impede ranks não positivos em ranking_history
const RankPositiveConstraint = "ranking_history_rank_positive"

// schemaStatements cria as tabelas usadas pelo pipeline. Todas são idempotentes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS subscriptions (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		app_id VARCHAR(255) NOT NULL,
		app_name VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(email, app_id)
	)`,
	`CREATE TABLE IF NOT EXISTS ranking_history (
		id SERIAL PRIMARY KEY,
		app_id VARCHAR(255) NOT NULL,
		rank INTEGER CONSTRAINT ` + RankPositiveConstraint + ` CHECK (rank IS NULL OR rank > 0),
		recorded_date DATE NOT NULL DEFAULT CURRENT_DATE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(app_id, recorded_date)
	)`,
	// Tabelas criadas antes dos campos de auditoria
	`ALTER TABLE ranking_history ADD COLUMN IF NOT EXISTS created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP`,
	`ALTER TABLE ranking_history ADD COLUMN IF NOT EXISTS updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP`,
	`CREATE INDEX IF NOT EXISTS ranking_history_recorded_date_idx ON ranking_history (recorded_date)`,
	`CREATE TABLE IF NOT EXISTS app_catalog (
		app_id VARCHAR(255) PRIMARY KEY,
		chart_id VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,
}

// ApplyMigrations cria o schema caso ainda não exista
func ApplyMigrations(ctx context.Context, q Queryer) error {
	for i, stmt := range schemaStatements {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar migração %d: %w", i+1, err)
		}
	}

	logrus.WithField("statements", len(schemaStatements)).Info("Schema do banco de dados verificado")
	return nil
}

// NormalizeLegacyRanks converte o sentinela antigo (rank <= 0) em NULL, que é a única
// representação de "fora do ranking" aceita pelo pipeline
func NormalizeLegacyRanks(ctx context.Context, q Queryer) (int64, error) {
	query, args, err := squirrel.
		Update("ranking_history").
		Set("rank", nil).
		Where(squirrel.LtOrEq{"rank": 0}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao normalizar ranks legados: %w", err)
	}

	return result.RowsAffected()
}
