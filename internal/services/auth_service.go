package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harukik/secondhand-market-api/internal/auth"
	"github.com/harukik/secondhand-market-api/internal/constants"
	"github.com/harukik/secondhand-market-api/internal/models"
	"github.com/harukik/secondhand-market-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already taken")
	ErrEmailTaken           = errors.New("email already registered")
	ErrAccountTaken         = errors.New("username or email already taken")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles registration and authentication.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Address  *string
	Phones   []string
}

// Signup creates a new user along with their phone numbers.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		IsActive:     true,
	}

	if err := s.userRepo.CreateWithPhones(user, input.Phones); err != nil {
		// Unique constraints may still fire under concurrent signups.
		// The driver does not say which column collided, so stay neutral.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAccountTaken
		}
		return nil, ErrFailedToCreateUser
	}

	return user, nil
}

// Authenticate verifies credentials and returns the user record. Unknown
// usernames and wrong passwords both collapse into ErrInvalidCredentials
// so callers cannot enumerate accounts.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Verify against the hash fetched just now; a malformed stored hash
	// is a failed match, not a crash.
	ok, _ := auth.VerifyPassword(user.PasswordHash, password)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates and issues a token for the user.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	user, err := s.Authenticate(username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateProfileInput holds the mutable profile fields. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	Email    *string
	Password *string
	Address  *string
}

// UpdateProfile updates a user's own profile. A new password is hashed
// the same way as at signup.
func (s *AuthService) UpdateProfile(id uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(*input.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		user.Email = *input.Email
	}

	if input.Password != nil {
		if len(*input.Password) < constants.MinPasswordLength {
			return nil, ErrPasswordTooShort
		}
		hashed, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		user.PasswordHash = hashed
	}

	if input.Address != nil {
		user.Address = input.Address
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
