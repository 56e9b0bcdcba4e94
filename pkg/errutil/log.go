// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package errutil

import (
	"log/slog"

	"github.com/samber/oops"
)

// LogError logs an error with structured context.
// Tagged errors contribute their kind, code and field; oops errors in the
// chain contribute their code and context. Standard errors log their string.
func LogError(logger *slog.Logger, msg string, err error) {
	attrs := []any{"error", err.Error()}

	if tagged, ok := As(err); ok {
		attrs = append(attrs, "kind", tagged.Kind.String())
		if tagged.Field != "" {
			attrs = append(attrs, "field", tagged.Field)
		}
	}

	if oopsErr, ok := oops.AsOops(err); ok {
		if code := oopsErr.Code(); code != nil && code != "" {
			attrs = append(attrs, "code", code)
		}
		if ctx := oopsErr.Context(); len(ctx) > 0 {
			attrs = append(attrs, "context", ctx)
		}
	}

	if KindOf(err).Operational() {
		logger.Warn(msg, attrs...)
		return
	}
	logger.Error(msg, attrs...)
}
