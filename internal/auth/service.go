// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package auth

import (
	"context"
	"log/slog"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/blissfulweddings/blissful/internal/observability"
	"github.com/blissfulweddings/blissful/pkg/errutil"
)

var tracer = otel.Tracer("github.com/blissfulweddings/blissful/internal/auth")

// Deps are the collaborators of the identity services. Each constructor
// checks only the fields it uses. Metrics is optional.
type Deps struct {
	Accounts   AccountRepository
	Transactor Transactor
	Codes      CodeStore
	Sender     CodeSender
	Hasher     PasswordHasher
	Tokens     SessionIssuer
	Logger     *slog.Logger
	Metrics    *observability.Metrics
}

type need uint8

const (
	needAccounts need = 1 << iota
	needTransactor
	needCodes
	needSender
	needHasher
	needTokens
)

func (d Deps) check(n need) error {
	missing := func(what string) error {
		return oops.Code("AUTH_INVALID_DEPENDENCY").Errorf("%s is required", what)
	}
	switch {
	case n&needAccounts != 0 && d.Accounts == nil:
		return missing("accounts repository")
	case n&needTransactor != 0 && d.Transactor == nil:
		return missing("transactor")
	case n&needCodes != 0 && d.Codes == nil:
		return missing("code store")
	case n&needSender != 0 && d.Sender == nil:
		return missing("code sender")
	case n&needHasher != 0 && d.Hasher == nil:
		return missing("password hasher")
	case n&needTokens != 0 && d.Tokens == nil:
		return missing("session issuer")
	case d.Logger == nil:
		return missing("logger")
	}
	return nil
}

// Session is the result of a login or a challenge signup.
type Session struct {
	Token   string      `json:"token"`
	Account AccountView `json:"user"`
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on span when it is not operational and ends the span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		if !errutil.KindOf(err).Operational() {
			span.SetStatus(codes.Error, "internal error")
		}
	}
	span.End()
}

// outcome maps an error to a metrics result label.
func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return errutil.KindOf(err).String()
}
