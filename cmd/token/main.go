package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/authenticating"
)

// Emite tokens de acesso para o agendador externo e para leitores do histórico.
//
//	go run ./cmd/token --subject vercel-cron --scope cron:run
func main() {
	app := &cli.Command{
		Name:  "token",
		Usage: "Emite um token de acesso assinado com AUTH_SECRET",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "subject",
				Aliases:  []string{"s"},
				Usage:    "Identificação de quem vai usar o token",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "scope",
				Usage: fmt.Sprintf("Escopos concedidos (%s, %s)", domain.ScopeCronRun, domain.ScopeRankingRead),
				Value: []string{domain.ScopeCronRun},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			token, err := authenticating.NewService(cfg).GenerateToken(cmd.String("subject"), cmd.StringSlice("scope"))
			if err != nil {
				return err
			}

			fmt.Println(token)
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logrus.WithError(err).Fatal("Erro ao emitir token")
	}
}
