package xcmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// NotifyContext returns a copy of parent that is canceled when one of the
// given signals arrives or when the returned stop function is called.
// Without explicit signals it watches SIGINT and SIGTERM.
func NotifyContext(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	return signal.NotifyContext(parent, signals...)
}
