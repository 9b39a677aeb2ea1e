package models

// Versioned carries the optimistic-lock column. Embed it anonymously; every
// state-changing UPDATE bumps RowVersion and checks the expected value.
type Versioned struct {
	RowVersion int64 `json:"row_version"`
}
