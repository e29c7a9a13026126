package domain

// IngestResult reports how an incoming message was classified and whether
// it was stored.
type IngestResult struct {
	*Summary
	Stored bool   `json:"stored"`
	Reason string `json:"reason,omitempty"`
}
