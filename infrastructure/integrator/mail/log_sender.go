package mail

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

// LogSender não envia nada: registra a mensagem no log (modo de desenvolvimento)
type LogSender struct {
	logger *logrus.Logger
}

func NewLogSender() *LogSender {
	return &LogSender{logger: logrus.StandardLogger()}
}

func (s *LogSender) Send(ctx context.Context, message domain.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"to":      message.To,
		"subject": message.Subject,
		"bytes":   len(message.HTMLBody),
	}).Info("Modo de e-mail simulado: mensagem não enviada")
	s.logger.Debug(message.HTMLBody)

	return nil
}
