// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

// Package redisstore keeps pending verification codes in Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"

	"github.com/blissfulweddings/blissful/internal/auth"
)

// DefaultPrefix is prepended to the phone number to form the key.
const DefaultPrefix = "otp:"

// CodeStore implements auth.CodeStore. Expiry is left to Redis key TTLs.
type CodeStore struct {
	client redis.Cmdable
	prefix string
}

// NewCodeStore creates a CodeStore. An empty prefix uses DefaultPrefix.
func NewCodeStore(client redis.Cmdable, prefix string) *CodeStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &CodeStore{client: client, prefix: prefix}
}

func (s *CodeStore) key(phone string) string {
	return s.prefix + phone
}

// Put replaces any pending code for phone.
func (s *CodeStore) Put(ctx context.Context, phone string, code auth.StoredCode, ttl time.Duration) error {
	payload, err := json.Marshal(code)
	if err != nil {
		return oops.Code("CODE_STORE_ENCODE_FAILED").Wrap(err)
	}
	if err := s.client.Set(ctx, s.key(phone), payload, ttl).Err(); err != nil {
		return oops.Code("CODE_STORE_FAILED").With("operation", "set").Wrap(err)
	}
	return nil
}

// RemainingTTL reports the time left on the pending code for phone.
func (s *CodeStore) RemainingTTL(ctx context.Context, phone string) (time.Duration, bool, error) {
	ttl, err := s.client.PTTL(ctx, s.key(phone)).Result()
	if err != nil {
		return 0, false, oops.Code("CODE_STORE_FAILED").With("operation", "pttl").Wrap(err)
	}
	// PTTL answers -2 for a missing key and -1 for a key without expiry.
	if ttl <= 0 {
		return 0, false, nil
	}
	return ttl, true, nil
}

// Get returns the pending code for phone or auth.ErrNotFound.
func (s *CodeStore) Get(ctx context.Context, phone string) (*auth.StoredCode, error) {
	payload, err := s.client.Get(ctx, s.key(phone)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, auth.ErrNotFound
	}
	if err != nil {
		return nil, oops.Code("CODE_STORE_FAILED").With("operation", "get").Wrap(err)
	}

	var code auth.StoredCode
	if err := json.Unmarshal(payload, &code); err != nil {
		return nil, oops.Code("CODE_STORE_CORRUPT").Wrap(err)
	}
	if code.Code == "" {
		return nil, oops.Code("CODE_STORE_CORRUPT").Errorf("stored payload has no code")
	}
	return &code, nil
}

// Delete removes the pending code. Deleting a missing key is not an error.
func (s *CodeStore) Delete(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, s.key(phone)).Err(); err != nil {
		return oops.Code("CODE_STORE_FAILED").With("operation", "del").Wrap(err)
	}
	return nil
}
