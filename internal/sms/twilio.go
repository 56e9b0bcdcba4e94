// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package sms

import (
	"context"

	"github.com/samber/oops"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioConfig holds the REST credentials and sender number.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
}

// TwilioGateway sends messages through the Twilio Messages API.
type TwilioGateway struct {
	api  messageCreator
	from string
}

// NewTwilioGateway creates a TwilioGateway.
func NewTwilioGateway(cfg TwilioConfig) (*TwilioGateway, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.From == "" {
		return nil, oops.Code("SMS_CONFIG_INVALID").Errorf("twilio account sid, auth token and sender number are required")
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioGateway{api: client.Api, from: cfg.From}, nil
}

// Name implements Gateway.
func (g *TwilioGateway) Name() string { return "twilio" }

// Send implements Gateway. The Twilio client does not take a context, so
// cancellation is only observed before the request starts.
func (g *TwilioGateway) Send(ctx context.Context, destination, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", oops.Code("SMS_CANCELLED").Wrap(err)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(destination)
	params.SetFrom(g.from)
	params.SetBody(body)

	msg, err := g.api.CreateMessage(params)
	if err != nil {
		return "", oops.Code("TWILIO_REQUEST_FAILED").Wrap(err)
	}
	if msg == nil || msg.Sid == nil {
		return "", oops.Code("TWILIO_REQUEST_FAILED").Errorf("response has no message sid")
	}
	return *msg.Sid, nil
}
