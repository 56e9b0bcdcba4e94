// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package web

import (
	"github.com/invopop/jsonschema"

	"github.com/blissfulweddings/blissful/internal/sms"
)

// setPattern sets a pattern outside the struct tag, where commas would split it.
func setPattern(s *jsonschema.Schema, property, pattern string) {
	if p, ok := s.Properties.Get(property); ok {
		p.Pattern = pattern
	}
}

type registerRequest struct {
	Email       *string `json:"email,omitempty" jsonschema:"format=email"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Password    string  `json:"password" jsonschema:"minLength=6"`
	FullName    *string `json:"fullName,omitempty" jsonschema:"minLength=2"`
	Username    *string `json:"username,omitempty" jsonschema:"minLength=4"`
}

func (registerRequest) JSONSchemaExtend(s *jsonschema.Schema) {
	setPattern(s, "phoneNumber", sms.PhonePattern)
}

func (registerRequest) validationMessages() map[string]string {
	return map[string]string{
		"email.format":        "Invalid email address",
		"phoneNumber.pattern": "Invalid phone number format. Use E.164 format.",
		"password.required":   "Password is required",
		"password.minLength":  "Password must be at least 6 characters long",
		"fullName.minLength":  "Full name is required",
		"username.minLength":  "Username must be at least 4 characters",
	}
}

type loginRequest struct {
	Identifier string `json:"identifier" jsonschema:"minLength=1"`
	Password   string `json:"password" jsonschema:"minLength=1"`
}

func (loginRequest) validationMessages() map[string]string {
	return map[string]string{
		"identifier.required":  "Email or phone number is required",
		"identifier.minLength": "Email or phone number is required",
		"password.required":    "Password is required",
		"password.minLength":   "Password is required",
	}
}

type otpRequest struct {
	PhoneNumber string `json:"phone_number"`
}

func (otpRequest) JSONSchemaExtend(s *jsonschema.Schema) {
	setPattern(s, "phone_number", sms.PhonePattern)
}

func (otpRequest) validationMessages() map[string]string {
	return map[string]string{
		"phone_number.required": "Phone number is required",
		"phone_number.pattern":  "Invalid phone number format. Use E.164 format (e.g., +1234567890)",
	}
}

type otpVerifyRequest struct {
	PhoneNumber string  `json:"phone_number"`
	OTP         string  `json:"otp" jsonschema:"minLength=6,maxLength=6"`
	Password    string  `json:"password" jsonschema:"minLength=6"`
	FullName    *string `json:"fullName,omitempty" jsonschema:"minLength=2"`
	Username    *string `json:"username,omitempty" jsonschema:"minLength=4"`
}

func (otpVerifyRequest) JSONSchemaExtend(s *jsonschema.Schema) {
	setPattern(s, "phone_number", sms.PhonePattern)
}

func (otpVerifyRequest) validationMessages() map[string]string {
	return map[string]string{
		"phone_number.required": "Phone number is required",
		"phone_number.pattern":  "Invalid phone number format",
		"otp.required":          "OTP is required",
		"otp.minLength":         "OTP must be 6 digits",
		"otp.maxLength":         "OTP must be 6 digits",
		"password.required":     "Password is required",
		"password.minLength":    "Password must be at least 6 characters long",
		"fullName.minLength":    "Full name is required",
		"username.minLength":    "Username must be at least 4 characters long",
	}
}

type updateProfileRequest struct {
	FullName *string `json:"fullName,omitempty" jsonschema:"minLength=2"`
	Username *string `json:"username,omitempty" jsonschema:"minLength=4"`
}

func (updateProfileRequest) validationMessages() map[string]string {
	return map[string]string{
		"fullName.minLength": "Full name must be at least 2 characters",
		"username.minLength": "Username must be at least 4 characters",
	}
}

type changeRoleRequest struct {
	Role string `json:"role" jsonschema:"enum=client,enum=admin"`
}

func (changeRoleRequest) validationMessages() map[string]string {
	return map[string]string{
		"role.required": "Role is required",
		"role.enum":     "Role must be one of: client, admin",
	}
}
