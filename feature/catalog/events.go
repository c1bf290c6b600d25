package catalog

import "time"

// VariationsAssigned is published after a configurable product's variation
// links were replaced.
type VariationsAssigned struct {
	Sku        string    `json:"sku"`
	Variations []string  `json:"variations"`
	Warnings   []string  `json:"warnings,omitempty"`
	AssignedAt time.Time `json:"assigned_at"`
}

func newVariationsAssigned(sku string, result *ReconciliationResult) VariationsAssigned {
	event := VariationsAssigned{
		Sku:        sku,
		Variations: []string{},
		Warnings:   result.Warnings(),
		AssignedAt: time.Now().UTC(),
	}
	if result.Success != nil && result.Success.AssignedVariations.IsSuccess() {
		event.Variations = result.Success.AssignedVariations.Success.Variations
	}
	return event
}
