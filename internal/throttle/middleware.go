// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

package throttle

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/blissfulweddings/blissful/pkg/errutil"
)

// CodeRateLimited is the error code of a throttled request.
const CodeRateLimited = "RATE_LIMITED"

// KeyFunc extracts the origin a request is counted against.
type KeyFunc func(*http.Request) string

// ErrorWriter renders a rejected request.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// ClientIP keys requests by remote address. With trustProxy set, the first
// X-Forwarded-For entry wins.
func ClientIP(trustProxy bool) KeyFunc {
	return func(r *http.Request) string {
		if trustProxy {
			if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
				first, _, _ := strings.Cut(fwd, ",")
				if ip := strings.TrimSpace(first); ip != "" {
					return ip
				}
			}
		}
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		return host
	}
}

// Middleware enforces g on every request. Allowed and rejected responses
// carry RateLimit-* headers; rejections add Retry-After and are rendered by
// deny. When Redis fails the request is let through and the failure is
// logged and counted.
func (l *Limiter) Middleware(g Guard, key KeyFunc, deny ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d, err := l.Hit(r.Context(), g, key(r))
			if err != nil {
				l.metrics.RecordThrottleError(g.Name)
				errutil.LogError(l.logger, "throttle unavailable, allowing request", err)
				next.ServeHTTP(w, r)
				return
			}

			resetSecs := strconv.Itoa(int(math.Ceil(d.Reset.Seconds())))
			h := w.Header()
			h.Set("RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("RateLimit-Remaining", strconv.Itoa(d.Remaining))
			h.Set("RateLimit-Reset", resetSecs)

			if !d.Allowed {
				h.Set("Retry-After", resetSecs)
				l.logger.WarnContext(r.Context(), "request throttled", "guard", g.Name, "path", r.URL.Path)
				deny(w, r, errutil.TooManyRequests(CodeRateLimited, g.Message))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
