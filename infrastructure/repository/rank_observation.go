// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/app-rank-notifier/infrastructure/database/postgres"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

const (
	rankingHistoryTable = "ranking_history rh"
)

// RankObservationRepository é o History Store: uma observação de rank por (app_id, data)
type RankObservationRepository interface {
	UpsertObservation(ctx context.Context, appID string, date time.Time, rank *int) error
	UpsertObservations(ctx context.Context, observations []domain.RankObservation) error
	GetObservation(ctx context.Context, appID string, date time.Time) (*domain.RankObservation, error)
	GetObservationsByDate(ctx context.Context, date time.Time) (domain.ObservationSet, error)
	ListHistory(ctx context.Context, appID string, startDate, endDate time.Time) ([]domain.RankObservation, error)
}

type rankObservationRepository struct {
	conn *postgres.Connection
}

func NewRankObservationRepository(conn *postgres.Connection) RankObservationRepository {
	return &rankObservationRepository{
		conn: conn,
	}
}

func (r *rankObservationRepository) UpsertObservation(ctx context.Context, appID string, date time.Time, rank *int) error {
	return r.UpsertObservations(ctx, []domain.RankObservation{{AppID: appID, Date: date, Rank: rank}})
}

// UpsertObservations grava todas as observações em um único comando. Reexecutar para a mesma
// (app_id, data) sobrescreve o rank.
func (r *rankObservationRepository) UpsertObservations(ctx context.Context, observations []domain.RankObservation) error {
	if len(observations) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("ranking_history").
		Columns("app_id", "rank", "recorded_date").
		PlaceholderFormat(squirrel.Dollar)

	// O Postgres não aceita a mesma chave duas vezes no mesmo ON CONFLICT; a última vence
	seen := make(map[string]int, len(observations))
	deduped := make([]domain.RankObservation, 0, len(observations))
	for _, observation := range observations {
		key := observation.AppID + "|" + observation.Date.Format(time.DateOnly)
		if idx, exists := seen[key]; exists {
			deduped[idx] = observation
			continue
		}
		seen[key] = len(deduped)
		deduped = append(deduped, observation)
	}

	for _, observation := range deduped {
		query = query.Values(
			observation.AppID,
			nullableRank(observation.Rank),
			observation.Date.Format(time.DateOnly),
		)
	}

	query = query.Suffix(`
		ON CONFLICT (app_id, recorded_date) DO UPDATE SET
			rank = EXCLUDED.rank,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// GetObservation retorna nil, nil quando não existe linha para o app na data
func (r *rankObservationRepository) GetObservation(ctx context.Context, appID string, date time.Time) (*domain.RankObservation, error) {
	query, args, err := squirrel.
		Select("rh.id, rh.app_id, rh.recorded_date, rh.rank, rh.created_at").
		From(rankingHistoryTable).
		Where(squirrel.Eq{"rh.app_id": appID, "rh.recorded_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	observation, err := scanObservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear observação: %w", err)
	}

	return observation, nil
}

func (r *rankObservationRepository) GetObservationsByDate(ctx context.Context, date time.Time) (domain.ObservationSet, error) {
	query, args, err := squirrel.
		Select("rh.app_id, rh.rank").
		From(rankingHistoryTable).
		Where(squirrel.Eq{"rh.recorded_date": date.Format(time.DateOnly)}).
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

	observations := make(domain.ObservationSet)
	for rows.Next() {
		var appID string
		var rank sql.NullInt64

		if err := rows.Scan(&appID, &rank); err != nil {
			return nil, fmt.Errorf("erro ao escanear observação: %w", err)
		}

		observations[appID] = rankFromNull(rank)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return observations, nil
}

func (r *rankObservationRepository) ListHistory(ctx context.Context, appID string, startDate, endDate time.Time) ([]domain.RankObservation, error) {
	query, args, err := squirrel.
		Select("rh.id, rh.app_id, rh.recorded_date, rh.rank, rh.created_at").
		From(rankingHistoryTable).
		Where(squirrel.Eq{"rh.app_id": appID}).
		Where(squirrel.GtOrEq{"rh.recorded_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"rh.recorded_date": endDate.Format(time.DateOnly)}).
		OrderBy("rh.recorded_date ASC").
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

	observations := make([]domain.RankObservation, 0)
	for rows.Next() {
		observation, err := scanObservation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}
		observations = append(observations, *observation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return observations, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanObservation(s scanner) (*domain.RankObservation, error) {
	observation := &domain.RankObservation{}
	var rank sql.NullInt64

	err := s.Scan(
		&observation.ID,
		&observation.AppID,
		&observation.Date,
		&rank,
		&observation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	observation.Rank = rankFromNull(rank)
	return observation, nil
}

// nullableRank garante que "fora do ranking" seja sempre gravado como NULL, nunca 0 ou -1
func nullableRank(rank *int) any {
	if rank == nil || *rank <= 0 {
		return nil
	}
	return *rank
}

func rankFromNull(rank sql.NullInt64) *int {
	if !rank.Valid || rank.Int64 <= 0 {
		return nil
	}
	value := int(rank.Int64)
	return &value
}
