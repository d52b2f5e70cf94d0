package concurrency

import "errors"

var ErrLimiterClosed = errors.New("limiter has been closed")
var ErrReleaseExceedsLimit = errors.New("release exceeds permit count")
