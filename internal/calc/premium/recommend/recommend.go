package recommend

import (
	"fmt"
	"math"

	stair "github.com/chanuka789/QS-Tools/internal/calc/stair"
)

type OrderInput struct {
	Stair      stair.Input `json:"stair"`
	WastagePct float64     `json:"wastage_pct"`
}

type OrderResult struct {
	NetConcreteM3   float64 `json:"net_concrete_m3"`
	OrderConcreteM3 float64 `json:"order_concrete_m3"`
	NetFormworkM2   float64 `json:"net_formwork_m2"`
	OrderFormworkM2 float64 `json:"order_formwork_m2"`
	Notes           string  `json:"notes"`
}

// Order turns the takeoff totals into site ordering quantities: a wastage
// allowance on top of the net figures, with concrete rounded up to the
// 0.25 m3 increments ready-mix is sold in.
func Order(in OrderInput) (OrderResult, error) {
	if in.WastagePct <= 0 {
		in.WastagePct = 5
	}
	rep := stair.Calculate(in.Stair)
	if rep.TotalVolumeM3 <= 0 {
		return OrderResult{}, fmt.Errorf("invalid input")
	}
	factor := 1 + in.WastagePct/100.0

	orderConcrete := math.Ceil(rep.TotalVolumeM3*factor*4.0) / 4.0
	orderFormwork := rep.TotalFormworkAreaM2 * factor

	return OrderResult{
		NetConcreteM3:   rep.TotalVolumeM3,
		OrderConcreteM3: orderConcrete,
		NetFormworkM2:   rep.TotalFormworkAreaM2,
		OrderFormworkM2: orderFormwork,
		Notes:           fmt.Sprintf("Includes %.0f%% wastage; concrete rounded up to 0.25 m3.", in.WastagePct),
	}, nil
}
