package food

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// PreparationType says how a dish is cooked. It drives the wording of the
// "fresh food" broadcast.
type PreparationType string

const (
	Oven    PreparationType = "oven"
	Fried   PreparationType = "fried"
	Grilled PreparationType = "grilled"
	Cooked  PreparationType = "cooked"
	Baked   PreparationType = "baked"
)

func getPreparationDisplayNames() map[PreparationType]string {
	return map[PreparationType]string{
		Oven:    "Assado no Forno",
		Fried:   "Frito",
		Grilled: "Grelhado",
		Cooked:  "Cozido",
		Baked:   "Assado",
	}
}

func ParsePreparationType(s string) (PreparationType, error) {
	p := PreparationType(strings.ToLower(strings.TrimSpace(s)))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

func (p PreparationType) Validate() error {
	if _, ok := getPreparationDisplayNames()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparation type",
			fmt.Errorf("%q is not one of oven, fried, grilled, cooked, baked", string(p)),
		)
	}
	return nil
}

func (p PreparationType) String() string {
	return string(p)
}

// DisplayName returns the pt-BR label, e.g. "Grelhado".
func (p PreparationType) DisplayName() string {
	return getPreparationDisplayNames()[p]
}

func (p PreparationType) Emoji() string {
	switch p {
	case Oven, Grilled:
		return "🔥"
	case Fried:
		return "🍳"
	case Cooked:
		return "🍲"
	case Baked:
		return "🥐"
	default:
		return ""
	}
}
