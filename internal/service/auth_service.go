package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"litepos/internal/dto"
	"litepos/internal/model"
	"litepos/internal/repository"
	"litepos/internal/state"

	"github.com/rs/zerolog/log"
)

// HashPIN is the value stored in users.pin_hash. It is unsalted so that a
// login can look the user up by hash alone.
func HashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

type AuthService interface {
	// Login signs the matching user into the session.
	Login(ctx context.Context, pin string) (*model.User, error)
	Logout()
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (int64, error)
	ChangePIN(ctx context.Context, userID int64, pin string) error
}

type authService struct {
	repo    repository.UserRepository
	session *state.Session
}

func NewAuthService(repo repository.UserRepository, session *state.Session) AuthService {
	return &authService{repo: repo, session: session}
}

func (s *authService) Login(ctx context.Context, pin string) (*model.User, error) {
	if pin == "" {
		return nil, ErrInvalidPIN
	}
	user, err := s.repo.Login(ctx, HashPIN(pin))
	if err != nil {
		return nil, err
	}
	if user == nil {
		log.Warn().Msg("login rejected: no active user for PIN")
		return nil, ErrInvalidPIN
	}
	s.session.Login(user)
	log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("user signed in")
	return user, nil
}

func (s *authService) Logout() {
	if u := s.session.User(); u != nil {
		log.Info().Int64("user_id", u.ID).Msg("user signed out")
	}
	s.session.Logout()
}

func (s *authService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (int64, error) {
	if req.PIN == "" {
		return 0, ErrInvalidPIN
	}
	return s.repo.Create(ctx, dto.CreateUserInput{
		Name:    req.Name,
		Email:   req.Email,
		PINHash: HashPIN(req.PIN),
		Role:    req.Role,
	})
}

func (s *authService) ChangePIN(ctx context.Context, userID int64, pin string) error {
	if pin == "" {
		return ErrInvalidPIN
	}
	hash := HashPIN(pin)
	return s.repo.Update(ctx, userID, dto.UserPatch{PINHash: &hash})
}
