package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/chronominerals/minerals-insight/dto"
	"github.com/chronominerals/minerals-insight/models"
	"github.com/chronominerals/minerals-insight/repositories"
	"github.com/chronominerals/minerals-insight/utils"
)

var (
	// ErrMissingFields is returned when registration lacks a required field.
	ErrMissingFields = errors.New("username, password and email are required")

	// ErrUsernameTaken is returned when the username is already registered
	// (compared case-insensitively).
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUnknownRole is returned when registration names a role outside
	// the known set.
	ErrUnknownRole = errors.New("unknown role")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so login failures don't reveal which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const tokenValidity = 24 * time.Hour

// AuthService handles registration, login and token issuance.
type AuthService struct {
	users     repositories.UserRepository
	jwtSecret []byte

	// registerMu serializes the duplicate check and insert so two
	// simultaneous registrations of the same username cannot both succeed
	// regardless of the backing repository.
	registerMu sync.Mutex
}

// NewAuthService creates a new auth service over a user repository.
func NewAuthService(users repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(jwtSecret)}
}

// Register creates a new account. An empty role defaults to Researcher;
// an unknown role is rejected at the boundary rather than flowing into
// permission checks.
func (s *AuthService) Register(req dto.RegisterRequest) (models.User, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" || strings.TrimSpace(req.Email) == "" {
		return models.User{}, ErrMissingFields
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleResearcher
	} else if !role.Valid() {
		return models.User{}, ErrUnknownRole
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	if _, err := s.users.FindByUsername(req.Username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return models.User{}, err
	}

	created, err := s.users.Create(user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return created, nil
}

// Login verifies credentials and returns a signed token. Unknown
// usernames and hash mismatches collapse to the same error.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateToken generates a new JWT token for a user
func (s *AuthService) GenerateToken(user models.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(tokenValidity)

	claims := dto.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ListUsers returns every account for the user management view.
func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.users.FindAll()
}

// SeedDefaultUsers creates the stock admin, investor and researcher
// accounts when the store is empty, so a fresh install is usable.
func (s *AuthService) SeedDefaultUsers() error {
	count, err := s.users.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []dto.RegisterRequest{
		{Username: "admin", Password: "admin123", Email: "admin@chronominerals.com", Role: string(models.RoleAdministrator)},
		{Username: "investor1", Password: "investor123", Email: "investor@example.com", Role: string(models.RoleInvestor)},
		{Username: "researcher1", Password: "research123", Email: "researcher@example.com", Role: string(models.RoleResearcher)},
	}
	for _, req := range defaults {
		if _, err := s.Register(req); err != nil {
			return err
		}
	}
	logger.Info().Int("count", len(defaults)).Msg("seeded default users")
	return nil
}
