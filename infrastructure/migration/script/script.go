package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/vfg2006/app-rank-notifier/infrastructure/database/postgres"
	"github.com/vfg2006/app-rank-notifier/infrastructure/repository"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/catalog"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func connect(ctx context.Context) (*config.Config, *postgres.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
	}
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	return cfg, conn, nil
}

func migrate(ctx context.Context, conn *postgres.Connection) error {
	return postgres.ApplyMigrations(ctx, conn)
}

// normalizeRanks troca o sentinela -1 por NULL e só depois garante a constraint rank > 0
func normalizeRanks(ctx context.Context, conn *postgres.Connection) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		affected, err := postgres.NormalizeLegacyRanks(ctx, tx)
		if err != nil {
			return err
		}
		logrus.Infof("%d linhas de ranking_history normalizadas para NULL", affected)

		var constraintExists bool
		err = tx.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE table_name = 'ranking_history'
				AND constraint_type = 'CHECK'
				AND constraint_name = $1
			)
		`, postgres.RankPositiveConstraint).Scan(&constraintExists)
		if err != nil {
			return fmt.Errorf("erro ao verificar constraint existente: %w", err)
		}

		if constraintExists {
			logrus.Info("Constraint de rank positivo já existe na tabela ranking_history")
			return nil
		}

		_, err = tx.ExecContext(ctx, fmt.Sprintf(
			"ALTER TABLE ranking_history ADD CONSTRAINT %s CHECK (rank IS NULL OR rank > 0)",
			postgres.RankPositiveConstraint,
		))
		if err != nil {
			return fmt.Errorf("erro ao adicionar constraint de rank positivo: %w", err)
		}

		logrus.Info("Constraint de rank positivo adicionada na tabela ranking_history")
		return nil
	})
}

func seedCatalog(ctx context.Context, cfg *config.Config, conn *postgres.Connection) error {
	static, err := catalog.NewStaticResolver(cfg.Catalog.Entries)
	if err != nil {
		return fmt.Errorf("APP_CATALOG inválido: %w", err)
	}

	entries := static.Entries()
	if len(entries) == 0 {
		logrus.Info("APP_CATALOG vazio, nada a carregar")
		return nil
	}

	if err := catalog.Seed(ctx, repository.NewAppCatalogRepository(conn), static); err != nil {
		return err
	}

	logrus.Infof("%d apps gravados no catálogo", len(entries))
	return nil
}

func withConnection(fn func(ctx context.Context, cfg *config.Config, conn *postgres.Connection) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		startTime := time.Now()

		cfg, conn, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := fn(ctx, cfg, conn); err != nil {
			return err
		}

		logrus.Infof("Concluído em %v", time.Since(startTime))
		return nil
	}
}

func main() {
	setupLogger()

	app := &cli.Command{
		Name:  "migration",
		Usage: "Manutenção do schema e dos dados do app-rank-notifier",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Cria as tabelas subscriptions, ranking_history e app_catalog",
				Action: withConnection(func(ctx context.Context, _ *config.Config, conn *postgres.Connection) error {
					return migrate(ctx, conn)
				}),
			},
			{
				Name:  "normalize-ranks",
				Usage: "Converte ranks legados (<= 0) em NULL e adiciona a constraint rank > 0",
				Action: withConnection(func(ctx context.Context, _ *config.Config, conn *postgres.Connection) error {
					return normalizeRanks(ctx, conn)
				}),
			},
			{
				Name:  "seed-catalog",
				Usage: "Grava as entradas de APP_CATALOG na tabela app_catalog",
				Action: withConnection(seedCatalog),
			},
			{
				Name:  "all",
				Usage: "Executa migrate, normalize-ranks e seed-catalog em sequência",
				Action: withConnection(func(ctx context.Context, cfg *config.Config, conn *postgres.Connection) error {
					if err := migrate(ctx, conn); err != nil {
						return err
					}
					if err := normalizeRanks(ctx, conn); err != nil {
						return err
					}
					return seedCatalog(ctx, cfg, conn)
				}),
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logrus.WithError(err).Error("Erro na migração")
		os.Exit(1)
	}
}
