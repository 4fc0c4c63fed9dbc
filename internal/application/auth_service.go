package application

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/taskify/taskify-api/internal/domain/apperror"
	"github.com/taskify/taskify-api/internal/domain/entity"
	repo "github.com/taskify/taskify-api/internal/domain/repository"
	"github.com/taskify/taskify-api/pkg/helpers"
)

// PasswordService is the hashing capability the account use cases depend on.
type PasswordService interface {
	Hash(plain string) (string, error)
	Compare(plain, hashed string) bool
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// AuthService implements the account use cases: signup, login, profile
// update, and password change. Passwords are hashed here, right before any
// persistence call; repositories never see plaintext.
type AuthService struct {
	Users     repo.UserRepository
	Passwords PasswordService
	JWT       *helpers.JWTManager
	Redis     *redis.Client
	Logger    *logrus.Logger
	NewID     func() string
}

func NewAuthService(users repo.UserRepository, passwords PasswordService, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{
		Users:     users,
		Passwords: passwords,
		JWT:       jwt,
		Redis:     rdb,
		Logger:    logger,
		NewID:     uuid.NewString,
	}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Signup registers a new account. The email must not already be taken;
// a duplicate is an authentication failure, not a validation one.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if !emailPattern.MatchString(in.Email) {
		return nil, apperror.NewValidationError("Invalid email address")
	}
	if utf8.RuneCountInString(in.Password) < 8 {
		return nil, apperror.NewValidationError("Password must be at least 8 characters")
	}
	if in.FirstName != "" && strings.TrimSpace(in.FirstName) == "" {
		return nil, apperror.NewValidationError("First name cannot be empty")
	}
	if in.LastName != "" && strings.TrimSpace(in.LastName) == "" {
		return nil, apperror.NewValidationError("Last name cannot be empty")
	}

	taken, err := s.Users.ExistsByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.NewAuthenticationError("User with this email already exists")
	}

	hash, err := s.Passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		ID:        s.NewID(),
		Email:     in.Email,
		Password:  hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.Users.Create(u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", in.Email).Error("create user failed")
		}
		return nil, err
	}
	return u, nil
}

type LoginInput struct {
	Email    string
	Password string
}

// Login authenticates by email and password. A missing user and a wrong
// password produce the same message so callers cannot tell which factor
// failed. The returned entity still carries the password hash; callers must
// not surface it.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*entity.User, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, apperror.NewValidationError("Email is required")
	}
	if in.Password == "" {
		return nil, apperror.NewValidationError("Password is required")
	}

	u, err := s.Users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NewAuthenticationError("Invalid email or password")
	}
	if !s.Passwords.Compare(in.Password, u.Password) {
		return nil, apperror.NewAuthenticationError("Invalid email or password")
	}
	return u, nil
}

// IssueTokens generates an access/refresh pair and records a session hash
// in Redis under the new session id.
func (s *AuthService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.FullName(),
			"sid":        sid,
			"logged_in":  true,
			"created_at": nowRFC3339(),
		}
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, 24*time.Hour)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Refresh rotates the session id and token pair from a valid refresh token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", apperror.NewAuthenticationError("")
	}
	u, err := s.Users.FindByID(claims.UserID)
	if err != nil || u == nil {
		return TokenPair{}, "", apperror.NewAuthenticationError("")
	}
	// The token's sid must match the current session.
	if s.Redis != nil {
		key := sessionKey(u.ID)
		data, rErr := s.Redis.HGetAll(ctx, key).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, "", apperror.NewAuthenticationError("")
		}
	}
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, "", err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, "", err
	}
	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"sid":        sid,
			"updated_at": nowRFC3339(),
		})
		pipe.Expire(ctx, key, 24*time.Hour)
		_, _ = pipe.Exec(ctx)
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, u.ID, nil
}

// Logout drops the server-side session.
func (s *AuthService) Logout(ctx context.Context, userID string) {
	if s.Redis != nil && userID != "" {
		_ = s.Redis.Del(ctx, sessionKey(userID)).Err()
	}
}

func (s *AuthService) GetProfile(userID string) (*entity.User, error) {
	u, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return u, nil
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

// UpdateProfile replaces email and both names. The password never changes
// here. A missing user surfaces as a validation failure, matching the
// behavior callers already depend on.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.NewValidationError("User ID is required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.FirstName)) < 2 {
		return nil, apperror.NewValidationError("First name must be at least 2 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.LastName)) < 2 {
		return nil, apperror.NewValidationError("Last name must be at least 2 characters")
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, apperror.NewValidationError("Valid email is required")
	}

	u, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NewValidationError("User not found")
	}

	updated := &entity.User{
		ID:        u.ID,
		Email:     in.Email,
		Password:  u.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		CreatedAt: u.CreatedAt,
	}
	if err := s.Users.Update(updated); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"email":      updated.Email,
			"name":       updated.FullName(),
			"updated_at": nowRFC3339(),
		})
		if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return updated, nil
}

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// ChangePassword verifies the current password against the stored hash and
// persists a copy of the user with only the password replaced.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, in ChangePasswordInput) error {
	if strings.TrimSpace(userID) == "" {
		return apperror.NewValidationError("User ID is required")
	}
	if in.CurrentPassword == "" {
		return apperror.NewValidationError("Current password is required")
	}
	if utf8.RuneCountInString(in.NewPassword) < 8 {
		return apperror.NewValidationError("New password must be at least 8 characters")
	}
	if in.NewPassword != in.ConfirmPassword {
		return apperror.NewValidationError("Passwords do not match")
	}
	if in.NewPassword == in.CurrentPassword {
		return apperror.NewValidationError("New password must be different from current password")
	}

	u, err := s.Users.FindByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return apperror.NewValidationError("User not found")
	}

	if !s.Passwords.Compare(in.CurrentPassword, u.Password) {
		return apperror.NewAuthenticationError("Current password is incorrect")
	}

	hash, err := s.Passwords.Hash(in.NewPassword)
	if err != nil {
		return err
	}

	updated := &entity.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  hash,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
	return s.Users.Update(updated)
}
