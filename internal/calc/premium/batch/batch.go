package batch

import (
	"fmt"

	stair "github.com/chanuka789/QS-Tools/internal/calc/stair"
)

type StairBatchInput struct {
	Items []stair.Input `json:"items"`
}

type StairBatchResult struct {
	Results []stair.Report `json:"results"`
}

// CalculateStair runs the engine over every item. Items with invalid
// dimensions come back as zero reports, so one half-filled stair in a batch
// never fails the rest.
func CalculateStair(in StairBatchInput) (StairBatchResult, error) {
	if len(in.Items) == 0 {
		return StairBatchResult{}, fmt.Errorf("no items")
	}
	out := StairBatchResult{Results: make([]stair.Report, 0, len(in.Items))}
	for _, item := range in.Items {
		out.Results = append(out.Results, stair.Calculate(item))
	}
	return out, nil
}
