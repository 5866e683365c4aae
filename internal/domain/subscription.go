package domain

import "time"

// Subscription é mantida externamente (formulário web); o pipeline apenas lê.
type Subscription struct {
	Email     string    `json:"email"`
	AppID     string    `json:"app_id"`
	AppName   string    `json:"app_name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// IsValid indica se a assinatura tem todos os campos necessários para o digest
func (s Subscription) IsValid() bool {
	return s.Email != "" && s.AppID != "" && s.AppName != ""
}

// GroupSubscriptionsByEmail agrupa as assinaturas válidas por e-mail, preservando a ordem de leitura
func GroupSubscriptionsByEmail(subscriptions []Subscription) map[string][]Subscription {
	grouped := make(map[string][]Subscription)
	for _, subscription := range subscriptions {
		if !subscription.IsValid() {
			continue
		}
		grouped[subscription.Email] = append(grouped[subscription.Email], subscription)
	}
	return grouped
}

// AppMeta é o resultado da resolução de um app_id (nome amigável e id numérico do chart)
type AppMeta struct {
	AppID   string `json:"app_id"`
	ChartID string `json:"chart_id"`
	Name    string `json:"name"`
}
