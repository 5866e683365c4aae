// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// RankValue representa a posição de um app em um dia. Ranked=false significa fora do ranking
// (ausente do snapshot, linha inexistente ou rank nulo no histórico).
type RankValue struct {
	Position int
	Ranked   bool
}

// Unranked é o valor para apps fora do ranking
var Unranked = RankValue{}

// Ranked cria um RankValue para uma posição válida (1..N)
func Ranked(position int) RankValue {
	if position <= 0 {
		return Unranked
	}
	return RankValue{Position: position, Ranked: true}
}

// Ptr converte para o formato persistido (nil = fora do ranking)
func (v RankValue) Ptr() *int {
	if !v.Ranked {
		return nil
	}
	p := v.Position
	return &p
}

// RankSnapshot é o ranking completo de uma categoria/país em uma data. Imutável após criado.
type RankSnapshot struct {
	Category string
	Country  string
	Date     time.Time
	Depth    int // Profundidade do chart (ex: 200)
	ranks    map[string]int
}

func NewRankSnapshot(category, country string, date time.Time, depth int, ranks map[string]int) RankSnapshot {
	copied := make(map[string]int, len(ranks))
	for appID, position := range ranks {
		if appID == "" || position <= 0 {
			continue
		}
		copied[appID] = position
	}

	return RankSnapshot{
		Category: category,
		Country:  country,
		Date:     date,
		Depth:    depth,
		ranks:    copied,
	}
}

// Rank retorna a posição do app no snapshot
func (s RankSnapshot) Rank(chartID string) RankValue {
	position, ok := s.ranks[chartID]
	if !ok {
		return Unranked
	}
	return Ranked(position)
}

func (s RankSnapshot) Len() int {
	return len(s.ranks)
}

func (s RankSnapshot) IsEmpty() bool {
	return len(s.ranks) == 0
}
