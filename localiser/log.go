package localiser

import "log"

// logf emits one line to logger if non-nil, replacing the original tool's
// module-level logging.getLogger() singleton with an explicit, optional
// sink (spec.md §9: "global mutable logger... make explicit").
func logf(logger *log.Logger, format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, args...)
}
