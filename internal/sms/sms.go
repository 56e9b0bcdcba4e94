// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

// Package sms delivers verification codes through an outbound message gateway.
package sms

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/oops"

	"github.com/blissfulweddings/blissful/internal/auth"
	"github.com/blissfulweddings/blissful/internal/observability"
	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// CodeTemplate is the text of a verification message.
const CodeTemplate = "Your Blissful Weddings verification code is: %s"

// PhonePattern accepts E.164 numbers with an optional leading plus.
const PhonePattern = auth.PhonePattern

// ValidPhone reports whether phone looks like an E.164 number.
func ValidPhone(phone string) bool {
	return auth.ValidPhone(phone)
}

// Gateway sends one text message and returns the provider's message ID.
type Gateway interface {
	Name() string
	Send(ctx context.Context, destination, body string) (string, error)
}

// Dispatcher formats verification messages and hands them to a Gateway.
// It implements auth.CodeSender.
type Dispatcher struct {
	gateway Gateway
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewDispatcher creates a Dispatcher. metrics may be nil.
func NewDispatcher(gateway Gateway, logger *slog.Logger, metrics *observability.Metrics) (*Dispatcher, error) {
	if gateway == nil {
		return nil, oops.Code("SMS_INVALID_DEPENDENCY").Errorf("gateway is required")
	}
	if logger == nil {
		return nil, oops.Code("SMS_INVALID_DEPENDENCY").Errorf("logger is required")
	}
	return &Dispatcher{gateway: gateway, logger: logger, metrics: metrics}, nil
}

// SendCode sends code to phone. The code is never logged.
func (d *Dispatcher) SendCode(ctx context.Context, phone, code string) error {
	if !ValidPhone(phone) {
		d.metrics.RecordSMS(d.gateway.Name(), "rejected")
		return errutil.BadRequest("SMS_INVALID_PHONE", "Phone number format is not valid for sending a verification code.")
	}

	id, err := d.gateway.Send(ctx, phone, fmt.Sprintf(CodeTemplate, code))
	if err != nil {
		d.metrics.RecordSMS(d.gateway.Name(), "failed")
		err = oops.Code("SMS_SEND_FAILED").With("gateway", d.gateway.Name()).Wrap(err)
		errutil.LogError(d.logger, "verification message failed", err)
		return err
	}

	d.metrics.RecordSMS(d.gateway.Name(), "sent")
	d.logger.InfoContext(ctx, "verification message sent", "gateway", d.gateway.Name(), "message_id", id)
	return nil
}
