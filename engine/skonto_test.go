package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jungbauer-1968/rechnungs-cockpit/models"
)

func TestSkonto(t *testing.T) {
	tests := []struct {
		name    string
		amount  models.Money
		percent float64
		value   models.Money
		net     models.Money
	}{
		{"two percent of 100", 100, 2, 2, 98},
		{"two percent of 200", 200, 2, 4, 196},
		{"zero percent", 100, 0, 0, 100},
		{"three percent of 1234.50", 1234.50, 3, 37.035, 1197.465},
		{"full discount", 80, 100, 80, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Skonto(tc.amount, tc.percent)
			assert.InDelta(t, float64(tc.value), float64(d.Value), 1e-9)
			assert.InDelta(t, float64(tc.net), float64(d.Net), 1e-9)
		})
	}
}
