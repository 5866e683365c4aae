package domain

import (
	"fmt"
	"net/http"
	"time"
)

// DeliveryResult é o resultado do envio para um destinatário
type DeliveryResult struct {
	Email    string
	Err      error
	Duration time.Duration
}

func (r DeliveryResult) OK() bool {
	return r.Err == nil
}

// DispatchReport agrega os resultados de envio de uma execução
type DispatchReport struct {
	Results []DeliveryResult
	Sent    int
	Failed  int
}

// AllSucceeded indica se todos os destinatários receberam o e-mail
func (r DispatchReport) AllSucceeded() bool {
	return r.Failed == 0
}

// FailedRecipients retorna os e-mails cujo envio falhou
func (r DispatchReport) FailedRecipients() []string {
	failed := make([]string, 0, r.Failed)
	for _, result := range r.Results {
		if !result.OK() {
			failed = append(failed, result.Email)
		}
	}
	return failed
}

// RunState representa os estados da execução do pipeline
type RunState string

const (
	RunStateFetchingSnapshot  RunState = "fetching_snapshot"
	RunStatePersistingHistory RunState = "persisting_history"
	RunStateBuildingDigests   RunState = "building_digests"
	RunStateDispatching       RunState = "dispatching"
	RunStateDone              RunState = "done"
	RunStateAborted           RunState = "aborted"
)

// Motivos de abortar a execução
const (
	AbortReasonEmptySnapshot      = "empty_snapshot"
	AbortReasonHistoryUnavailable = "history_unavailable"
	AbortReasonSubscriptions      = "subscriptions_unavailable"
)

// RunSummary é o resumo devolvido a quem disparou a execução. Nunca contém texto de erro bruto.
type RunSummary struct {
	RunID       string    `json:"run_id"`
	State       RunState  `json:"state"`
	AbortReason string    `json:"abort_reason,omitempty"`
	Date        string    `json:"date"`
	TrackedApps int       `json:"tracked_apps"`
	Recipients  int       `json:"recipients"`
	EmailsSent  int       `json:"emails_sent"`
	Errors      int       `json:"errors"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// StatusCode retorna 200 quando concluído (mesmo com falhas parciais) e 500 quando abortado
func (s RunSummary) StatusCode() int {
	if s.State == RunStateDone {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

func (s RunSummary) Message() string {
	switch s.State {
	case RunStateDone:
		return fmt.Sprintf("Cron job completed. Emails sent: %d. Errors: %d.", s.EmailsSent, s.Errors)
	case RunStateAborted:
		if s.AbortReason == AbortReasonEmptySnapshot {
			return "Failed to fetch chart ranks"
		}
		return "Cron job failed"
	default:
		return "Cron job in progress"
	}
}
