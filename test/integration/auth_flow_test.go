// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
)

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"statusCode"`
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

type accountJSON struct {
	ID              int64   `json:"accountId"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Role            string  `json:"role"`
	PhoneVerifiedAt *string `json:"phoneVerifiedAt"`
}

type sessionJSON struct {
	Token string      `json:"token"`
	User  accountJSON `json:"user"`
}

var codePattern = regexp.MustCompile(`verification code is: (\d{6})`)

func call(method, path, token string, body any) (int, envelope) {
	GinkgoHelper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, api.URL+path, reader)
	Expect(err).NotTo(HaveOccurred())
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := api.Client().Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	Expect(json.NewDecoder(resp.Body).Decode(&env)).To(Succeed())
	return resp.StatusCode, env
}

func decodeData[T any](env envelope) T {
	GinkgoHelper()
	var v T
	Expect(json.Unmarshal(env.Data, &v)).To(Succeed())
	return v
}

func login(identifier, password string) sessionJSON {
	GinkgoHelper()
	status, env := call(http.MethodPost, "/api/auth/login", "", map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	Expect(status).To(Equal(http.StatusOK), env.Message)
	return decodeData[sessionJSON](env)
}

func lastCode() string {
	GinkgoHelper()
	matches := codePattern.FindAllStringSubmatch(outbox.String(), -1)
	Expect(matches).NotTo(BeEmpty(), "no code delivered")
	return matches[len(matches)-1][1]
}

func setRole(id int64, role string) {
	GinkgoHelper()
	_, err := pool.Exec(context.Background(),
		`UPDATE accounts SET role = $2::account_role WHERE id = $1`, id, role)
	Expect(err).NotTo(HaveOccurred())
}

var _ = Describe("Direct registration and login", func() {
	It("registers, logs in by email and reads the profile", func() {
		status, env := call(http.MethodPost, "/api/auth/register", "", map[string]any{
			"email":    "Bride@Example.com",
			"password": "s3cret-pass",
			"fullName": "Ada Bride",
		})
		Expect(status).To(Equal(http.StatusCreated), env.Message)

		registered := decodeData[struct {
			User accountJSON `json:"user"`
		}](env).User
		Expect(registered.Role).To(Equal("client"))
		Expect(*registered.Email).To(Equal("bride@example.com"))

		session := login("BRIDE@example.com", "s3cret-pass")
		Expect(session.Token).NotTo(BeEmpty())
		Expect(session.User.ID).To(Equal(registered.ID))

		status, env = call(http.MethodGet, "/api/users/me", session.Token, nil)
		Expect(status).To(Equal(http.StatusOK))
		Expect(decodeData[struct {
			User accountJSON `json:"user"`
		}](env).User.ID).To(Equal(registered.ID))
	})

	It("rejects a duplicate email with a conflict", func() {
		body := map[string]any{"email": "dup@example.com", "password": "s3cret-pass"}
		status, _ := call(http.MethodPost, "/api/auth/register", "", body)
		Expect(status).To(Equal(http.StatusCreated))

		status, env := call(http.MethodPost, "/api/auth/register", "", body)
		Expect(status).To(Equal(http.StatusConflict))
		Expect(env.Code).To(Equal("EMAIL_TAKEN"))
	})

	It("answers unknown accounts and wrong passwords identically", func() {
		status, _ := call(http.MethodPost, "/api/auth/register", "", map[string]any{
			"email": "known@example.com", "password": "s3cret-pass",
		})
		Expect(status).To(Equal(http.StatusCreated))

		_, wrong := call(http.MethodPost, "/api/auth/login", "", map[string]string{
			"identifier": "known@example.com", "password": "nope-nope",
		})
		_, unknown := call(http.MethodPost, "/api/auth/login", "", map[string]string{
			"identifier": "ghost@example.com", "password": "nope-nope",
		})
		Expect(wrong.StatusCode).To(Equal(http.StatusUnauthorized))
		Expect(wrong.Code).To(Equal(unknown.Code))
		Expect(wrong.Message).To(Equal(unknown.Message))
	})
})

var _ = Describe("Role gate", func() {
	It("reads the current role from the database on every request", func() {
		status, env := call(http.MethodPost, "/api/auth/register", "", map[string]any{
			"email": "planner@example.com", "password": "s3cret-pass",
		})
		Expect(status).To(Equal(http.StatusCreated))
		id := decodeData[struct {
			User accountJSON `json:"user"`
		}](env).User.ID

		session := login("planner@example.com", "s3cret-pass")
		path := fmt.Sprintf("/api/users/%d", id)

		status, env = call(http.MethodGet, path, session.Token, nil)
		Expect(status).To(Equal(http.StatusForbidden))
		Expect(env.Code).To(Equal("FORBIDDEN"))

		setRole(id, "admin")
		status, _ = call(http.MethodGet, path, session.Token, nil)
		Expect(status).To(Equal(http.StatusOK), "promotion applies to an existing token")

		setRole(id, "client")
		status, _ = call(http.MethodGet, path, session.Token, nil)
		Expect(status).To(Equal(http.StatusForbidden), "demotion applies to an existing token")
	})

	It("rejects a token whose account no longer exists", func() {
		status, _ := call(http.MethodPost, "/api/auth/register", "", map[string]any{
			"email": "gone@example.com", "password": "s3cret-pass",
		})
		Expect(status).To(Equal(http.StatusCreated))
		session := login("gone@example.com", "s3cret-pass")

		_, err := pool.Exec(context.Background(), `DELETE FROM accounts`)
		Expect(err).NotTo(HaveOccurred())

		status, env := call(http.MethodGet, "/api/users/me", session.Token, nil)
		Expect(status).To(Equal(http.StatusUnauthorized))
		Expect(env.Code).To(Equal("ACCOUNT_MISSING"))
	})

	It("distinguishes missing and malformed tokens", func() {
		status, env := call(http.MethodGet, "/api/users/me", "", nil)
		Expect(status).To(Equal(http.StatusUnauthorized))
		Expect(env.Code).To(Equal("TOKEN_REQUIRED"))

		status, env = call(http.MethodGet, "/api/users/me", "not.a.jwt", nil)
		Expect(status).To(Equal(http.StatusUnauthorized))
		Expect(env.Code).To(Equal("TOKEN_INVALID"))
	})
})

var _ = Describe("Phone challenge signup", func() {
	const phone = "+15557654321"

	It("sends a code, verifies it and signs the caller in", func() {
		status, env := call(http.MethodPost, "/api/auth/otp/request", "", map[string]string{"phone_number": phone})
		Expect(status).To(Equal(http.StatusOK), env.Message)

		code := lastCode()
		Expect(mr.Exists("otp:" + phone)).To(BeTrue())

		status, env = call(http.MethodPost, "/api/auth/otp/verify", "", map[string]any{
			"phone_number": phone,
			"otp":          code,
			"password":     "s3cret-pass",
			"username":     "groomsman",
		})
		Expect(status).To(Equal(http.StatusCreated), env.Message)

		session := decodeData[sessionJSON](env)
		Expect(session.Token).NotTo(BeEmpty())
		Expect(*session.User.Phone).To(Equal(phone))
		Expect(session.User.PhoneVerifiedAt).NotTo(BeNil())
		Expect(mr.Exists("otp:"+phone)).To(BeFalse(), "code is single use")

		status, env = call(http.MethodPost, "/api/auth/otp/verify", "", map[string]any{
			"phone_number": phone,
			"otp":          code,
			"password":     "s3cret-pass",
		})
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(env.Code).To(Equal("CHALLENGE_INVALID"))

		Expect(login(phone, "s3cret-pass").User.ID).To(Equal(session.User.ID))

		status, env = call(http.MethodPost, "/api/auth/otp/request", "", map[string]string{"phone_number": phone})
		Expect(status).To(Equal(http.StatusConflict))
		Expect(env.Code).To(Equal("PHONE_ALREADY_VERIFIED"))
	})

	It("enforces the resend cool-down", func() {
		status, _ := call(http.MethodPost, "/api/auth/otp/request", "", map[string]string{"phone_number": phone})
		Expect(status).To(Equal(http.StatusOK))

		status, env := call(http.MethodPost, "/api/auth/otp/request", "", map[string]string{"phone_number": phone})
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(env.Code).To(Equal("CHALLENGE_RESEND_TOO_SOON"))

		mr.FastForward(61 * time.Second)
		status, env = call(http.MethodPost, "/api/auth/otp/request", "", map[string]string{"phone_number": phone})
		Expect(status).To(Equal(http.StatusOK), env.Message)
		Expect(strings.Count(outbox.String(), "to="+phone)).To(Equal(2))
	})

	It("rejects a wrong code and keeps the pending one", func() {
		status, _ := call(http.MethodPost, "/api/auth/otp/request", "", map[string]string{"phone_number": phone})
		Expect(status).To(Equal(http.StatusOK))

		wrong := "000000"
		if lastCode() == wrong {
			wrong = "111111"
		}
		status, env := call(http.MethodPost, "/api/auth/otp/verify", "", map[string]any{
			"phone_number": phone, "otp": wrong, "password": "s3cret-pass",
		})
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(env.Code).To(Equal("CHALLENGE_MISMATCH"))
		Expect(mr.Exists("otp:" + phone)).To(BeTrue())
	})

	It("throttles challenge requests per client", func() {
		for i := range 5 {
			status, env := call(http.MethodPost, "/api/auth/otp/request", "",
				map[string]string{"phone_number": fmt.Sprintf("+1555000010%d", i)})
			Expect(status).To(Equal(http.StatusOK), env.Message)
		}

		status, env := call(http.MethodPost, "/api/auth/otp/request", "",
			map[string]string{"phone_number": "+15550000199"})
		Expect(status).To(Equal(http.StatusTooManyRequests))
		Expect(env.Code).To(Equal("RATE_LIMITED"))
	})
})
