package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-notifier/infrastructure/database/postgres"
	"github.com/vfg2006/app-rank-notifier/infrastructure/integrator/mail"
	"github.com/vfg2006/app-rank-notifier/infrastructure/integrator/serpapi"
	"github.com/vfg2006/app-rank-notifier/infrastructure/integrator/serpapi/serpapiclient"
	"github.com/vfg2006/app-rank-notifier/infrastructure/repository"
	"github.com/vfg2006/app-rank-notifier/internal/api"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/scheduler"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/authenticating"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/catalog"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/digesting"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/notifying"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/ranking"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/tracking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Falha antes de abrir conexões se faltar configuração obrigatória
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.ApplyMigrations(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	rankObservationRepo := repository.NewRankObservationRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)
	appCatalogRepo := repository.NewAppCatalogRepository(pgConn)

	staticResolver, err := catalog.NewStaticResolver(cfg.Catalog.Entries)
	if err != nil {
		logrus.WithError(err).Fatal("APP_CATALOG inválido")
	}
	resolver := catalog.ChainResolver{staticResolver, catalog.NewRepositoryResolver(appCatalogRepo)}

	authenticator := authenticating.NewService(cfg)

	serpApiClient := serpapiclient.NewClient(cfg)
	snapshotProvider := serpapi.New(cfg, serpApiClient)

	sender, err := mail.NewSender(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o provedor de e-mail")
	}

	digestBuilder := digesting.NewService(cfg, resolver)
	dispatcher := notifying.NewService(cfg, sender)

	orchestrator := tracking.NewService(
		cfg,
		snapshotProvider,
		rankObservationRepo,
		subscriptionRepo,
		resolver,
		digestBuilder,
		dispatcher,
	)

	rankDigestService := scheduler.NewRankDigestService(orchestrator, cfg)
	if err := rankDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do digest de ranking")
	} else {
		logrus.Info("Agendador do digest de ranking iniciado com sucesso")
	}

	historyService := ranking.NewRankHistoryService(rankObservationRepo)

	server, err := api.New(
		cfg,
		authenticator,
		rankDigestService,
		historyService,
		pgConn,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
