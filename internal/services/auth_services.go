package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rabgonzalez/GameSide/internal/model"
)

type AuthService struct {
	Users  UserStore
	Tokens TokenStore
}

func NewAuthService(users UserStore, tokens TokenStore) *AuthService {
	return &AuthService{Users: users, Tokens: tokens}
}

// Authenticate resolves a raw bearer token to its user. The syntax check
// runs before any registry lookup: a string that is not a UUID can never
// be a registered token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	key, err := uuid.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	t, err := s.Tokens.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrUnregisteredToken
	}
	user, err := s.Users.GetByID(ctx, t.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnregisteredToken
	}
	return user, nil
}

// Login checks the credentials and returns the user's token key, creating
// the token on first login. The failure never reveals whether the username
// or the password was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (uuid.UUID, error) {
	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return uuid.Nil, ErrInvalidCredentials
	}
	return s.Tokens.GetOrCreate(ctx, user.ID)
}
