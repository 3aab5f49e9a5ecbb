package lines

import (
	"io"
	"sync/atomic"

	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
)

var traceLogger atomic.Pointer[ll.Logger]

// SetTrace writes a debug trace of builder operations to w. A nil w turns
// tracing off, which is the default.
func SetTrace(w io.Writer) {
	if w == nil {
		traceLogger.Store(nil)
		return
	}
	logger := ll.New("lines").Handler(lh.NewTextHandler(w))
	logger.Enable()
	traceLogger.Store(logger)
}

func tracef(format string, args ...any) {
	if logger := traceLogger.Load(); logger != nil {
		logger.Debugf(format, args...)
	}
}
