package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronominerals/minerals-insight/dto"
	"github.com/chronominerals/minerals-insight/models"
	"github.com/chronominerals/minerals-insight/repositories"
)

func newAuthFixture() *AuthService {
	return NewAuthService(repositories.NewMemoryUserRepository(), "test-secret")
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	auth := newAuthFixture()

	user, err := auth.Register(dto.RegisterRequest{
		Username: "alice",
		Password: "s3cret-pass",
		Email:    "alice@example.com",
		Role:     string(models.RoleInvestor),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleInvestor, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	resp, err := auth.Login(dto.LoginRequest{Username: "alice", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, string(models.RoleInvestor), claims.Role)
}

func TestRegisterDefaultsToResearcher(t *testing.T) {
	auth := newAuthFixture()

	user, err := auth.Register(dto.RegisterRequest{
		Username: "bob",
		Password: "password1",
		Email:    "bob@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleResearcher, user.Role)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	auth := newAuthFixture()

	_, err := auth.Register(dto.RegisterRequest{
		Username: "mallory",
		Password: "password1",
		Email:    "mallory@example.com",
		Role:     "Overlord",
	})
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	auth := newAuthFixture()

	tests := []dto.RegisterRequest{
		{Password: "password1", Email: "x@example.com"},
		{Username: "x", Email: "x@example.com"},
		{Username: "x", Password: "password1"},
		{Username: "   ", Password: "password1", Email: "x@example.com"},
	}
	for _, req := range tests {
		_, err := auth.Register(req)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestRegisterRejectsCaseInsensitiveDuplicate(t *testing.T) {
	auth := newAuthFixture()

	_, err := auth.Register(dto.RegisterRequest{Username: "Admin", Password: "password1", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = auth.Register(dto.RegisterRequest{Username: "admin", Password: "password2", Email: "b@example.com"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	auth := newAuthFixture()

	_, err := auth.Register(dto.RegisterRequest{Username: "carol", Password: "password1", Email: "c@example.com"})
	require.NoError(t, err)

	_, wrongPassword := auth.Login(dto.LoginRequest{Username: "carol", Password: "wrong"})
	_, unknownUser := auth.Login(dto.LoginRequest{Username: "nobody", Password: "password1"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLoginIsCaseInsensitiveOnUsername(t *testing.T) {
	auth := newAuthFixture()

	_, err := auth.Register(dto.RegisterRequest{Username: "Dave", Password: "password1", Email: "d@example.com"})
	require.NoError(t, err)

	resp, err := auth.Login(dto.LoginRequest{Username: "dave", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "Dave", resp.User.Username)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	auth := newAuthFixture()
	_, err := auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestSeedDefaultUsers(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	auth := NewAuthService(repo, "test-secret")

	require.NoError(t, auth.SeedDefaultUsers())
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	admin, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdministrator, admin.Role)

	// Seeding again is a no-op on a populated store.
	require.NoError(t, auth.SeedDefaultUsers())
	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	resp, err := auth.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdministrator, resp.User.Role)
}
