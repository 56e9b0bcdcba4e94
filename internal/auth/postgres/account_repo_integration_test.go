// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Blissful Weddings Contributors

//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/blissfulweddings/blissful/internal/auth"
	"github.com/blissfulweddings/blissful/internal/auth/postgres"
)

func str(s string) *string { return &s }

var _ = Describe("AccountRepository", func() {
	var (
		ctx  context.Context
		repo *postgres.AccountRepository
		tx   *postgres.Transactor
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = postgres.NewAccountRepository(testPool)
		tx = postgres.NewTransactor(testPool)
		truncateAccounts(ctx)
	})

	create := func(p auth.NewAccountParams) *auth.Account {
		if p.PasswordHash == "" {
			p.PasswordHash = "$argon2id$hash"
		}
		a, err := auth.NewAccount(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.Create(ctx, a)).To(Succeed())
		return a
	}

	It("round-trips an account and finds it by email or phone", func() {
		a := create(auth.NewAccountParams{Email: str("Eve@Example.com"), Phone: str("+15551234567")})
		Expect(a.ID).To(BeNumerically(">", 0))
		Expect(a.CreatedAt).NotTo(BeZero())

		byEmail, err := repo.GetByIdentifier(ctx, "EVE@example.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(byEmail.ID).To(Equal(a.ID))

		byPhone, err := repo.GetByIdentifier(ctx, "+15551234567")
		Expect(err).NotTo(HaveOccurred())
		Expect(byPhone.ID).To(Equal(a.ID))
		Expect(byPhone.Role).To(Equal(auth.RoleClient))

		_, err = repo.GetByIdentifier(ctx, "nobody@example.com")
		Expect(errors.Is(err, auth.ErrNotFound)).To(BeTrue())
	})

	It("reports each unique violation by field", func() {
		create(auth.NewAccountParams{Email: str("a@x.com"), Phone: str("+15550000001"), Username: str("ann")})

		for field, p := range map[string]auth.NewAccountParams{
			auth.FieldEmail:    {Email: str("a@x.com")},
			auth.FieldPhone:    {Phone: str("+15550000001")},
			auth.FieldUsername: {Email: str("b@x.com"), Username: str("ann")},
		} {
			p.PasswordHash = "h"
			a, err := auth.NewAccount(p)
			Expect(err).NotTo(HaveOccurred())

			var dup *auth.DuplicateError
			Expect(errors.As(repo.Create(ctx, a), &dup)).To(BeTrue(), field)
			Expect(dup.Field).To(Equal(field))
		}
	})

	It("distinguishes verified phones", func() {
		now := time.Now()
		create(auth.NewAccountParams{Phone: str("+15550000002")})
		create(auth.NewAccountParams{Phone: str("+15550000003"), PhoneVerifiedAt: &now})

		verified, err := repo.ExistsVerifiedPhone(ctx, "+15550000002")
		Expect(err).NotTo(HaveOccurred())
		Expect(verified).To(BeFalse())

		taken, err := repo.ExistsByPhone(ctx, "+15550000002")
		Expect(err).NotTo(HaveOccurred())
		Expect(taken).To(BeTrue())

		verified, err = repo.ExistsVerifiedPhone(ctx, "+15550000003")
		Expect(err).NotTo(HaveOccurred())
		Expect(verified).To(BeTrue())
	})

	It("updates profile, hash and role", func() {
		a := create(auth.NewAccountParams{Email: str("p@x.com"), DisplayName: str("Pat")})

		updated, err := repo.UpdateProfile(ctx, a.ID, auth.ProfileUpdate{Username: str("pat")})
		Expect(err).NotTo(HaveOccurred())
		Expect(*updated.Username).To(Equal("pat"))
		Expect(*updated.DisplayName).To(Equal("Pat"))

		cleared, err := repo.UpdateProfile(ctx, a.ID, auth.ProfileUpdate{DisplayName: str("")})
		Expect(err).NotTo(HaveOccurred())
		Expect(cleared.DisplayName).To(BeNil())
		Expect(cleared.UpdatedAt).To(BeTemporally(">=", a.UpdatedAt))

		Expect(repo.UpdatePasswordHash(ctx, a.ID, "$argon2id$new")).To(Succeed())

		promoted, err := repo.UpdateRole(ctx, a.ID, auth.RoleAdmin)
		Expect(err).NotTo(HaveOccurred())
		Expect(promoted.Role).To(Equal(auth.RoleAdmin))
		Expect(promoted.PasswordHash).To(Equal("$argon2id$new"))

		role, err := repo.GetRole(ctx, a.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(role).To(Equal(auth.RoleAdmin))

		_, err = repo.GetRole(ctx, a.ID+100)
		Expect(errors.Is(err, auth.ErrNotFound)).To(BeTrue())
	})

	It("rolls back inserts made inside a failed transaction", func() {
		err := tx.InTransaction(ctx, func(txCtx context.Context) error {
			a, err := auth.NewAccount(auth.NewAccountParams{Phone: str("+15550000004"), PasswordHash: "h"})
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.Create(txCtx, a)).To(Succeed())
			return errors.New("force rollback")
		})
		Expect(err).To(HaveOccurred())

		taken, err := repo.ExistsByPhone(ctx, "+15550000004")
		Expect(err).NotTo(HaveOccurred())
		Expect(taken).To(BeFalse())
	})
})
