package services

import (
	"testing"
	"time"

	"github.com/harukik/secondhand-market-api/internal/auth"
	"github.com/harukik/secondhand-market-api/internal/models"
	"github.com/harukik/secondhand-market-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db      *gorm.DB
	service *AuthService
	tokens  *auth.TokenIssuer
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Phone{},
	)
	require.NoError(t, err)

	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	service := NewAuthService(repository.NewUserRepository(db), tokens)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{db: db, service: service, tokens: tokens}
}

func TestAuthSignup(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.service.Signup(SignupInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "supersecret",
		Phones:   []string{"0123456789", "0987654321"},
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.True(t, user.IsActive)
	require.Len(t, user.Phones, 2)

	// The stored hash is Argon2id, never the plaintext.
	require.NotEqual(t, "supersecret", user.PasswordHash)
	ok, err := auth.VerifyPassword(user.PasswordHash, "supersecret")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAuthSignupDuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.service.Signup(SignupInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = env.service.Signup(SignupInput{
		Username: "bob",
		Email:    "other@example.com",
		Password: "supersecret",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthSignupDuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.service.Signup(SignupInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = env.service.Signup(SignupInput{
		Username: "robert",
		Email:    "bob@example.com",
		Password: "supersecret",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

// racingUserRepository sneaks a conflicting row in after the service's
// duplicate pre-checks, the way a concurrent signup would.
type racingUserRepository struct {
	repository.UserRepository
	db *gorm.DB
}

func (r racingUserRepository) CreateWithPhones(user *models.User, phoneNumbers []string) error {
	rival := &models.User{
		Username:     user.Username,
		Email:        "rival@example.com",
		PasswordHash: "irrelevant",
		IsActive:     true,
	}
	if err := r.db.Create(rival).Error; err != nil {
		return err
	}
	return r.UserRepository.CreateWithPhones(user, phoneNumbers)
}

// A unique constraint that fires between the pre-checks and the insert
// still surfaces as a conflict, not an internal error.
func TestAuthSignupConcurrentDuplicate(t *testing.T) {
	env := setupAuthTestEnv(t)
	service := NewAuthService(racingUserRepository{
		UserRepository: repository.NewUserRepository(env.db),
		db:             env.db,
	}, env.tokens)

	_, err := service.Signup(SignupInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "supersecret",
	})
	require.ErrorIs(t, err, ErrAccountTaken)
}

func TestAuthSignupShortPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.service.Signup(SignupInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "short",
	})
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthenticate(t *testing.T) {
	env := setupAuthTestEnv(t)

	created, err := env.service.Signup(SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correcthorse",
	})
	require.NoError(t, err)

	user, err := env.service.Authenticate("alice", "correcthorse")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
}

// Wrong password and unknown username must be indistinguishable.
func TestAuthenticateEnumerationResistance(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.service.Signup(SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correcthorse",
	})
	require.NoError(t, err)

	_, wrongPassword := env.service.Authenticate("alice", "wrong")
	_, unknownUser := env.service.Authenticate("nonexistent", "anything")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	require.Equal(t, wrongPassword, unknownUser)
}

func TestAuthenticateMalformedStoredHash(t *testing.T) {
	env := setupAuthTestEnv(t)

	user := &models.User{
		Username:     "legacy",
		Email:        "legacy@example.com",
		PasswordHash: "plaintext_hashed_secret",
		IsActive:     true,
	}
	require.NoError(t, env.db.Create(user).Error)

	// A hash the verifier cannot parse is a failed login, not a panic.
	_, err := env.service.Authenticate("legacy", "plaintext")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.service.Signup(SignupInput{
		Username: "retired",
		Email:    "retired@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	require.NoError(t, env.db.Model(user).Update("is_active", false).Error)

	_, err = env.service.Authenticate("retired", "supersecret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	created, err := env.service.Signup(SignupInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, user, err := env.service.Login("bob", "supersecret")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	userID, err := env.tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, created.ID, userID)

	_, _, err = env.service.Login("bob", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	created, err := env.service.Signup(SignupInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "oldpassword",
	})
	require.NoError(t, err)

	newPassword := "newpassword"
	address := "12 Market Street"
	updated, err := env.service.UpdateProfile(created.ID, UpdateProfileInput{
		Password: &newPassword,
		Address:  &address,
	})
	require.NoError(t, err)
	require.Equal(t, &address, updated.Address)

	_, err = env.service.Authenticate("bob", "oldpassword")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.service.Authenticate("bob", "newpassword")
	require.NoError(t, err)
}
