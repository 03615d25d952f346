package advisor

import (
	"context"
)

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Print(context.Context, ...any)          {}
func (nopLogger) Printf(context.Context, string, ...any) {}
