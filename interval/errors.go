package interval

import "errors"

// ErrEmptyInterval is returned by accessors (lower/upper value) that
// require a non-empty interval.
var ErrEmptyInterval = errors.New("interval: interval is empty")

// ErrNoStopPoints is returned by CC76WideningAssign when given an empty
// stop-point sequence and no default is requested.
var ErrNoStopPoints = errors.New("interval: no stop points supplied")
