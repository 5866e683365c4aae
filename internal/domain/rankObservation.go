package domain

import "time"

// RankObservation é uma linha de ranking_history: um rank por (app_id, data). Rank nil = fora do ranking.
type RankObservation struct {
	ID        int       `json:"id"`
	AppID     string    `json:"app_id"`
	Date      time.Time `json:"date"`
	Rank      *int      `json:"rank"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Value converte a observação para RankValue
func (o *RankObservation) Value() RankValue {
	if o == nil || o.Rank == nil {
		return Unranked
	}
	return Ranked(*o.Rank)
}

// ObservationSet contém as observações de uma data indexadas por app_id.
// Uma chave com valor nil indica linha existente com rank nulo; chave ausente indica linha inexistente.
type ObservationSet map[string]*int

// Lookup trata linha inexistente e rank nulo da mesma forma (fora do ranking)
func (o ObservationSet) Lookup(appID string) RankValue {
	rank, ok := o[appID]
	if !ok || rank == nil {
		return Unranked
	}
	return Ranked(*rank)
}

// Has indica se existe linha para o app nessa data
func (o ObservationSet) Has(appID string) bool {
	_, ok := o[appID]
	return ok
}

type RankHistoryResponse struct {
	AppID        string            `json:"app_id"`
	Observations []RankObservation `json:"observations"`
}
