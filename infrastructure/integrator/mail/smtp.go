package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

type SMTPSender struct {
	cfg            config.Mail
	defaultTimeout time.Duration
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		cfg:            cfg.Mail,
		defaultTimeout: 30 * time.Second,
	}
}

func (s *SMTPSender) Send(ctx context.Context, message domain.EmailMessage) error {
	return s.sendSMTP(ctx, message.To, buildMessage(s.cfg.FromAddress, message))
}

// buildMessage monta uma mensagem somente HTML; o assunto é codificado (RFC 2047) por conter emoji
func buildMessage(from string, message domain.EmailMessage) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", message.To))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", message.Subject)))
	msg.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(message.HTMLBody)

	return msg.String()
}

func (s *SMTPSender) sendSMTP(ctx context.Context, to, msg string) error {
	addr := net.JoinHostPort(s.cfg.SMTPHost, fmt.Sprintf("%d", s.cfg.SMTPPort))

	dialer := &net.Dialer{Timeout: s.defaultTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao servidor SMTP: %w", err)
	}
	defer func() { _ = conn.Close() }()

	// net/smtp não observa o contexto; o deadline da conexão limita a conversa inteira
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return fmt.Errorf("erro ao criar cliente SMTP: %w", err)
	}
	defer func() { _ = client.Close() }()

	if s.cfg.SMTPUseTLS {
		tlsConfig := &tls.Config{
			ServerName: s.cfg.SMTPHost,
			MinVersion: tls.VersionTLS12,
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("erro ao iniciar TLS: %w", err)
		}
	}

	if s.cfg.SMTPUser != "" && s.cfg.SMTPPassword != "" {
		auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("falha na autenticação SMTP: %w", err)
		}
	}

	if err := client.Mail(s.cfg.FromAddress); err != nil {
		return fmt.Errorf("erro ao definir remetente: %w", err)
	}

	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("erro ao definir destinatário: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("erro ao iniciar mensagem: %w", err)
	}

	if _, err := writer.Write([]byte(msg)); err != nil {
		return fmt.Errorf("erro ao escrever mensagem: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("erro ao finalizar mensagem: %w", err)
	}

	// A mensagem já foi aceita; falha no QUIT não invalida o envio
	_ = client.Quit()

	return nil
}
