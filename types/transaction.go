package types //nolint:revive,nolintlint // allow pkg name 'types'

// SubmissionError describes why a submission did not produce an accepted transaction.
type SubmissionError struct {
	Kind          string `json:"kind"`
	UserRejection bool   `json:"userRejection"`
	Cause         error  `json:"-"`
}

func (e *SubmissionError) Error() string {
	if e.Cause != nil {
		return e.Kind + ": " + e.Cause.Error()
	}

	return e.Kind
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}

// TransactionHandle is what a submitter returns for a call sequence. Hash is empty until the
// wallet has signed and broadcast the transaction.
type TransactionHandle struct {
	Hash    string           `json:"hash,omitempty"`
	Pending bool             `json:"pending"`
	Err     *SubmissionError `json:"error,omitempty"`

	// RawTransaction is the chain specific transaction, if the submitter has one.
	RawTransaction any `json:"-"`
}

// HasHash reports whether the transaction has been broadcast.
func (h TransactionHandle) HasHash() bool {
	return h.Hash != ""
}
