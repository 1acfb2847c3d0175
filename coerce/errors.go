package coerce

import "errors"

// ErrDomainMismatch is returned when an operation is asked to combine
// two Domain values backed by different concrete abstract domains.
var ErrDomainMismatch = errors.New("coerce: domain mismatch")
