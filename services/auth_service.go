package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-pos/models"
	"restaurant-pos/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type NewUser struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      models.UserRole
}

// AuthService signs staff in and manages staff accounts.
type AuthService struct {
	users  store.UserRepository
	logger *zap.Logger
	now    func() time.Time
	cost   int
}

func NewAuthService(users store.UserRepository, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{users: users, logger: logger, now: time.Now, cost: bcrypt.DefaultCost}
}

// WithHashCost lowers the bcrypt cost; tests use bcrypt.MinCost.
func (s *AuthService) WithHashCost(cost int) *AuthService {
	s.cost = cost
	return s
}

// Authenticate checks an email and password pair. Unknown emails and wrong
// passwords both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

func (s *AuthService) Profile(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetUserByID(ctx, id)
}

func (s *AuthService) Users(ctx context.Context) ([]models.User, error) {
	return s.users.GetUsers(ctx)
}

func (s *AuthService) CreateUser(ctx context.Context, in NewUser) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case email == "" || !strings.Contains(email, "@"):
		return nil, invalid("a valid email is required")
	case strings.TrimSpace(in.FirstName) == "":
		return nil, invalid("first name is required")
	case len(in.Password) < minPasswordLength:
		return nil, invalid("password must be at least %d characters", minPasswordLength)
	case !in.Role.Valid():
		return nil, invalid("invalid role %q, must be owner, warehouse_admin or cashier", in.Role)
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.AddUser(ctx, user); err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}
	s.logger.Info("staff account created", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return &user, nil
}

// SetActive enables or disables an account. Nobody can disable themselves.
func (s *AuthService) SetActive(ctx context.Context, actorID, id string, active bool) (*models.User, error) {
	if actorID == id && !active {
		return nil, invalid("you cannot deactivate your own account")
	}
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsActive = active
	user.UpdatedAt = s.now().UTC()
	if err := s.users.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	s.logger.Info("staff account updated", zap.String("user_id", id), zap.Bool("active", active))
	return user, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return invalid("you cannot delete your own account")
	}
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info("staff account deleted", zap.String("user_id", id))
	return nil
}
