package engine

import "github.com/jungbauer-1968/rechnungs-cockpit/models"

// Discount is the result of a Skonto calculation.
type Discount struct {
	Value models.Money `json:"value"` // amount saved by paying early
	Net   models.Money `json:"net"`   // amount payable after the discount
}

// Skonto computes the early-payment discount for an amount at the given
// percentage. A zero percent yields a zero discount and the full amount as
// net; callers should render that as "no discount" rather than 0.00.
func Skonto(amount models.Money, percent float64) Discount {
	value := amount * models.Money(percent) / 100
	return Discount{Value: value, Net: amount - value}
}
