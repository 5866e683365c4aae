package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

func TestComputeChange(t *testing.T) {
	tests := []struct {
		name     string
		today    domain.RankValue
		compare  domain.RankValue
		expected domain.Change
	}{
		{
			name:     "App subiu 10 posições",
			today:    domain.Ranked(5),
			compare:  domain.Ranked(15),
			expected: domain.Change{Direction: domain.ChangeUp, Magnitude: 10, Label: "up 10"},
		},
		{
			name:     "App desceu 3 posições",
			today:    domain.Ranked(8),
			compare:  domain.Ranked(5),
			expected: domain.Change{Direction: domain.ChangeDown, Magnitude: 3, Label: "down 3"},
		},
		{
			name:     "Mesma posição",
			today:    domain.Ranked(5),
			compare:  domain.Ranked(5),
			expected: domain.Change{Direction: domain.ChangeFlat, Label: LabelNoChange},
		},
		{
			name:     "Sem posição no período de comparação - NEW",
			today:    domain.Ranked(3),
			compare:  domain.Unranked,
			expected: domain.Change{Direction: domain.ChangeNew, Label: LabelNew},
		},
		{
			name:     "Fora do ranking hoje - sem rótulo mesmo com posição anterior",
			today:    domain.Unranked,
			compare:  domain.Ranked(8),
			expected: domain.Change{Direction: domain.ChangeNone},
		},
		{
			name:     "Fora do ranking hoje e antes",
			today:    domain.Unranked,
			compare:  domain.Unranked,
			expected: domain.Change{Direction: domain.ChangeNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeChange(tt.today, tt.compare)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.expected.Direction != domain.ChangeNone, result.HasLabel())
		})
	}
}

func TestComputeChange_Properties(t *testing.T) {
	const depth = 200

	t.Run("Direção up somente quando a posição de comparação é maior", func(t *testing.T) {
		for r1 := 1; r1 <= depth; r1 += 7 {
			for r2 := 1; r2 <= depth; r2 += 11 {
				if r1 == r2 {
					continue
				}
				change := ComputeChange(domain.Ranked(r1), domain.Ranked(r2))
				assert.Equal(t, r2 > r1, change.Direction == domain.ChangeUp, "r1=%d r2=%d", r1, r2)
				assert.Equal(t, r2 < r1, change.Direction == domain.ChangeDown, "r1=%d r2=%d", r1, r2)
				assert.Greater(t, change.Magnitude, 0)
			}
		}
	})

	t.Run("Mesma posição sempre sem mudança", func(t *testing.T) {
		for r := 1; r <= depth; r++ {
			assert.Equal(t, LabelNoChange, ComputeChange(domain.Ranked(r), domain.Ranked(r)).Label)
		}
	})

	t.Run("Comparação ausente sempre NEW", func(t *testing.T) {
		for r := 1; r <= depth; r++ {
			assert.Equal(t, LabelNew, ComputeChange(domain.Ranked(r), domain.Unranked).Label)
		}
	})

	t.Run("Hoje ausente nunca gera rótulo", func(t *testing.T) {
		for r := 1; r <= depth; r++ {
			assert.False(t, ComputeChange(domain.Unranked, domain.Ranked(r)).HasLabel())
		}
		assert.False(t, ComputeChange(domain.Unranked, domain.Unranked).HasLabel())
	})
}

func TestRankedRejectsNonPositivePositions(t *testing.T) {
	assert.Equal(t, domain.Unranked, domain.Ranked(0))
	assert.Equal(t, domain.Unranked, domain.Ranked(-1))
	assert.Nil(t, domain.Ranked(-1).Ptr())
	assert.Equal(t, 7, *domain.Ranked(7).Ptr())
}
