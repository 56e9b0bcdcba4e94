// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"

	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// Validation error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeMalformedBody    = "MALFORMED_BODY"
)

// FieldError is one schema violation reported to the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a request body.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

const schemaBaseURL = "https://blissfulweddings.com/schemas/api/"

// messenger is implemented by request types that override the default
// violation messages. Keys are "field.keyword", e.g. "password.minLength".
type messenger interface {
	validationMessages() map[string]string
}

// validator compiles one JSON Schema per request type, reflected from the
// type's jsonschema struct tags, and caches it.
type validator struct {
	mu      sync.Mutex
	schemas map[reflect.Type]*jschema.Schema
}

func newValidator() *validator {
	return &validator{schemas: make(map[reflect.Type]*jschema.Schema)}
}

func (v *validator) schemaFor(target any) (*jschema.Schema, error) {
	t := reflect.TypeOf(target)

	v.mu.Lock()
	defer v.mu.Unlock()
	if sch, ok := v.schemas[t]; ok {
		return sch, nil
	}

	r := jsonschema.Reflector{
		Anonymous:                 true,
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	raw, err := json.Marshal(r.Reflect(target))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema for %s: %w", t, err)
	}
	doc, err := jschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema for %s: %w", t, err)
	}

	url := schemaBaseURL + reflect.Indirect(reflect.ValueOf(target)).Type().Name() + ".json"
	c := jschema.NewCompiler()
	c.AssertFormat()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	v.schemas[t] = sch
	return sch, nil
}

// decode reads a JSON object from r, validates it against the schema of T
// and decodes it into T. Null members are treated as absent.
func decode[T any](v *validator, r *http.Request) (*T, error) {
	req := new(T)

	doc, err := jschema.UnmarshalJSON(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errutil.BadRequest(CodeMalformedBody, "Request body is too large.")
		}
		if errors.Is(err, io.EOF) {
			return nil, errutil.BadRequest(CodeMalformedBody, "Request body is required.")
		}
		return nil, errutil.BadRequest(CodeMalformedBody, "Request body must be valid JSON.")
	}
	if obj, ok := doc.(map[string]any); ok {
		for k, val := range obj {
			if val == nil {
				delete(obj, k)
			}
		}
	}

	sch, err := v.schemaFor(req)
	if err != nil {
		return nil, errutil.Internal("SCHEMA_COMPILE_FAILED", "failed to build request schema", err)
	}
	if err := sch.Validate(doc); err != nil {
		var ve *jschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, errutil.Internal("SCHEMA_VALIDATE_FAILED", "failed to validate request", err)
		}
		var overrides map[string]string
		if m, ok := any(req).(messenger); ok {
			overrides = m.validationMessages()
		}
		return nil, &ValidationError{Fields: fieldErrors(ve, overrides)}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errutil.Internal("REQUEST_DECODE_FAILED", "failed to re-encode request", err)
	}
	if err := json.Unmarshal(raw, req); err != nil {
		return nil, errutil.BadRequest(CodeMalformedBody, "Request body does not match the expected shape.")
	}
	return req, nil
}

// fieldErrors flattens the leaves of a validation error tree, one entry per
// field and keyword, sorted by field.
func fieldErrors(ve *jschema.ValidationError, overrides map[string]string) []FieldError {
	seen := make(map[string]bool)
	var out []FieldError

	add := func(field, keyword, fallback string) {
		key := field + "." + keyword
		if seen[key] {
			return
		}
		seen[key] = true
		msg := fallback
		if m, ok := overrides[key]; ok {
			msg = m
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}

	var walk func(e *jschema.ValidationError)
	walk = func(e *jschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, c := range e.Causes {
				walk(c)
			}
			return
		}
		field := strings.Join(e.InstanceLocation, ".")
		switch k := e.ErrorKind.(type) {
		case *kind.Required:
			for _, missing := range k.Missing {
				name := missing
				if field != "" {
					name = field + "." + missing
				}
				add(name, "required", name+" is required")
			}
		case *kind.MinLength:
			add(field, "minLength", fmt.Sprintf("must be at least %d characters", k.Want))
		case *kind.MaxLength:
			add(field, "maxLength", fmt.Sprintf("must be at most %d characters", k.Want))
		case *kind.Pattern:
			add(field, "pattern", "has an invalid format")
		case *kind.Format:
			add(field, "format", "must be a valid "+k.Want)
		case *kind.Type:
			if field == "" {
				field = "body"
			}
			add(field, "type", "must be of type "+strings.Join(k.Want, " or "))
		case *kind.Enum:
			add(field, "enum", "is not an allowed value")
		default:
			add(field, "invalid", "is invalid")
		}
	}
	walk(ve)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
