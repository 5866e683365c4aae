package ranking

import (
	"fmt"

	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

const (
	LabelNew      = "NEW"
	LabelNoChange = "no change"
)

// ComputeChange calcula a variação entre a posição de hoje e a de comparação.
// Posição menor é melhor, então delta positivo significa que o app subiu.
func ComputeChange(today, compare domain.RankValue) domain.Change {
	if !today.Ranked {
		return domain.Change{Direction: domain.ChangeNone}
	}

	if !compare.Ranked {
		return domain.Change{Direction: domain.ChangeNew, Label: LabelNew}
	}

	delta := compare.Position - today.Position

	switch {
	case delta == 0:
		return domain.Change{Direction: domain.ChangeFlat, Label: LabelNoChange}
	case delta > 0:
		return domain.Change{Direction: domain.ChangeUp, Magnitude: delta, Label: fmt.Sprintf("up %d", delta)}
	default:
		return domain.Change{Direction: domain.ChangeDown, Magnitude: -delta, Label: fmt.Sprintf("down %d", -delta)}
	}
}
