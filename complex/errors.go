package complex

import "errors"

// Sentinel errors for construction-time validation. Disconnecting a
// nonexistent edge or breaking the mirror invariant are programmer errors,
// not user-input errors, and panic instead of returning one of these (see
// Disconnect).
var (
	// ErrSequenceMismatch indicates the size and degree sequences passed to
	// FromSequences do not share the same total (sum(sizes) != sum(degrees)).
	ErrSequenceMismatch = errors.New("complex: sum(sizes) != sum(degrees)")

	// ErrNonPositiveValue indicates a size or degree sequence entry was <= 0.
	ErrNonPositiveValue = errors.New("complex: sequence entries must be positive")
)
