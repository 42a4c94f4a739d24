package golurk

import "github.com/go-logr/logr"

// golurk logs through logr so the caller picks the backend. Nothing is logged until a logger is set.
var internalLogger = logr.Discard()

// SetInternalLogger routes engine logs to logger. Turn by turn detail is logged at V(1), rolls at V(2).
func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("golurk")
}
