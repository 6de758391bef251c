package analysis

// Status describes whether a report could be computed.
type Status string

const (
	// StatusOK means at least one entity qualified.
	StatusOK Status = "ok"

	// StatusEmptyLedger means the ledger holds no observations.
	StatusEmptyLedger Status = "empty_ledger"

	// StatusInsufficientHistory means fewer distinct dates are recorded than
	// the analysis requires.
	StatusInsufficientHistory Status = "insufficient_history"

	// StatusNoQualifying means no entity has complete data for the window.
	StatusNoQualifying Status = "no_qualifying_entities"
)

// Advisory reports whether s is a degraded, non-error outcome.
func (s Status) Advisory() bool {
	return s != StatusOK
}
