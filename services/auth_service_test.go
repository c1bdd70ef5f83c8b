package services_test

import (
	"context"
	"testing"

	"restaurant-pos/models"
	"restaurant-pos/services"
	"restaurant-pos/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() *services.AuthService {
	return services.NewAuthService(store.NewMemory(store.Seed{}), zap.NewNop()).WithHashCost(bcrypt.MinCost)
}

func createCashier(t *testing.T, svc *services.AuthService) *models.User {
	t.Helper()
	u, err := svc.CreateUser(context.Background(), services.NewUser{
		Email: "Cashier@Example.com", Password: "secret1", FirstName: "Cass", Role: models.RoleCashier,
	})
	require.NoError(t, err)
	return u
}

func TestAuth_CreateAndAuthenticate(t *testing.T) {
	svc := newAuthService()
	created := createCashier(t, svc)
	assert.Equal(t, "cashier@example.com", created.Email)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, "secret1", created.PasswordHash)

	u, err := svc.Authenticate(context.Background(), " CASHIER@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
}

func TestAuth_AuthenticateFailures(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()
	u := createCashier(t, svc)

	_, err := svc.Authenticate(ctx, "cashier@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.SetActive(ctx, "owner-id", u.ID, false)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, "cashier@example.com", "secret1")
	assert.ErrorIs(t, err, services.ErrAccountDisabled)
}

func TestAuth_CreateUserRules(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()
	createCashier(t, svc)

	_, err := svc.CreateUser(ctx, services.NewUser{Email: "cashier@example.com", Password: "secret1", FirstName: "Dup", Role: models.RoleCashier})
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	cases := map[string]services.NewUser{
		"bad email":      {Email: "nope", Password: "secret1", FirstName: "A", Role: models.RoleCashier},
		"short password": {Email: "a@b.c", Password: "123", FirstName: "A", Role: models.RoleCashier},
		"unknown role":   {Email: "a@b.c", Password: "secret1", FirstName: "A", Role: "driver"},
		"no first name":  {Email: "a@b.c", Password: "secret1", Role: models.RoleOwner},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, in)
			assert.True(t, services.IsValidation(err))
		})
	}
}

func TestAuth_CannotLockOutSelf(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()
	u := createCashier(t, svc)

	_, err := svc.SetActive(ctx, u.ID, u.ID, false)
	assert.True(t, services.IsValidation(err))
	assert.True(t, services.IsValidation(svc.DeleteUser(ctx, u.ID, u.ID)))

	// re-enabling yourself is harmless
	_, err = svc.SetActive(ctx, u.ID, u.ID, true)
	assert.NoError(t, err)
}

func TestAuth_DeleteUser(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService()
	u := createCashier(t, svc)

	require.NoError(t, svc.DeleteUser(ctx, "owner-id", u.ID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, "owner-id", u.ID), store.ErrNotFound)

	_, err := svc.Profile(ctx, u.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	users, err := svc.Users(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
