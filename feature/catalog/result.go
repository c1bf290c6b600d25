package catalog

import "fmt"

// Messages reported in a ReconciliationResult.
const (
	MsgConfigurableNotFound = "Unable to find configurable product."
	MsgNoVariationsByID     = "Unable to find any simple products using the variation ids retrieved from the configurable product sku '%s'."
	MsgNoVariationsBySku    = "Unable to find any simple products using the variation skus supplied."
	MsgSimpleNotFoundByID   = "Unable to find simple product for id: '%d'"
	MsgSimpleNotFoundBySku  = "Unable to find simple product for sku: '%s'"
	MsgGetSummary           = "'%d' variation(s) could not be found, these skus may not exist. Reindex suggested."
	MsgSetSummary           = "'%d' simple variation(s) had errors, see warn errors."
	MsgProductNotFound      = "No product found for %s"
)

// ReconciliationResult is the outcome of a variation read or write.
// A result with a crit error never carries a success part.
type ReconciliationResult struct {
	Errors  *ResultErrors  `json:"errors,omitempty"`
	Success *ResultSuccess `json:"success,omitempty"`
}

// ResultErrors holds the aborting error and the per-item warnings.
type ResultErrors struct {
	Crit string   `json:"crit,omitempty"`
	Warn []string `json:"warn,omitempty"`
}

// ResultSuccess is the resolved payload of a read or write.
type ResultSuccess struct {
	Variations         []string              `json:"variations,omitempty"`
	Count              int                   `json:"count,omitempty"`
	AssignedVariations *ReconciliationResult `json:"assignedVariations,omitempty"`
	Warn               []string              `json:"warn,omitempty"`
}

// Crit returns the aborting error message, if any.
func (r *ReconciliationResult) Crit() string {
	if r == nil || r.Errors == nil {
		return ""
	}
	return r.Errors.Crit
}

// Warnings returns the per-item warnings.
func (r *ReconciliationResult) Warnings() []string {
	if r == nil || r.Errors == nil {
		return nil
	}
	return r.Errors.Warn
}

// IsSuccess reports whether the call completed without a crit error.
func (r *ReconciliationResult) IsSuccess() bool {
	return r != nil && r.Success != nil
}

func (r *ReconciliationResult) warn(msg string) {
	if r.Errors == nil {
		r.Errors = &ResultErrors{}
	}
	r.Errors.Warn = append(r.Errors.Warn, msg)
}

func (r *ReconciliationResult) crit(msg string) *ReconciliationResult {
	if r.Errors == nil {
		r.Errors = &ResultErrors{}
	}
	r.Errors.Crit = msg
	r.Success = nil
	return r
}

func critResult(format string, args ...any) *ReconciliationResult {
	return (&ReconciliationResult{}).crit(fmt.Sprintf(format, args...))
}
