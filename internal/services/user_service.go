package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"invenBack/internal/models"
	"invenBack/utils"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

type SessionRepo interface {
	Set(ctx context.Context, refreshToken string, session models.Session) error
	Delete(ctx context.Context, refreshToken string) error
}

type UserService struct {
	UserRepo     UserRepo
	Sessions     SessionRepo
	Activity     Recorder
	TokenManager *utils.Manager
}

// SignUp registers a new user with the default role, hashes the password
// and signs them in right away. Emits a REGISTER record with the new
// user's id.
func (s *UserService) SignUp(ctx context.Context, username, password string) (models.Tokens, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Tokens{}, models.ErrEmptyCredentials
	}

	_, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return models.Tokens{}, models.ErrDuplicateUsername
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return models.Tokens{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Tokens{}, err
	}

	user := models.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
		Timezone: "UTC",
	}
	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.Tokens{}, err
	}

	s.Activity.Record(ctx, created.ID, models.ActionRegister, nil)

	return s.issueTokens(ctx, created)
}

// SignIn verifies the credentials and mints tokens. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *UserService) SignIn(ctx context.Context, username, password string) (models.Tokens, error) {
	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.Tokens{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.Tokens{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.Tokens{}, err
	}

	s.Activity.Record(ctx, user.ID, models.ActionLogin, nil)

	return tokens, nil
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.Tokens, error) {
	var (
		res models.Tokens
		err error
	)

	if s.TokenManager == nil {
		return models.Tokens{}, errors.New("token manager is not configured")
	}

	res.AccessToken, err = s.TokenManager.NewJWT(user.ID, user.Username, user.Role)
	if err != nil {
		return models.Tokens{}, err
	}

	res.RefreshToken, err = s.TokenManager.NewRefreshToken()
	if err != nil {
		// Refresh tokens are opaque; a UUID is an acceptable stand-in
		// when the random source fails.
		res.RefreshToken = uuid.New().String()
	}

	if s.Sessions != nil {
		session := models.Session{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		}
		if err := s.Sessions.Set(ctx, res.RefreshToken, session); err != nil {
			return res, err
		}
	}

	return res, nil
}

// GetMe returns the requester's own identity without the password hash.
func (s *UserService) GetMe(ctx context.Context, userID int) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// LogOut drops the refresh session. The access token simply expires.
func (s *UserService) LogOut(ctx context.Context, refreshToken string) error {
	if s.Sessions == nil || refreshToken == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, refreshToken)
}
