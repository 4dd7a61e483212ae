package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/sharely/sharely/internal/domain/entity"
	repo "github.com/sharely/sharely/internal/domain/repository"
	"github.com/sharely/sharely/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrUserNotFound       = errors.New("user not found")
)

// UserService orchestrates user registration, authentication and account
// management. All collaborators are injected at construction.
type UserService struct {
	Repo     repo.UserRepository
	Auth     AuthService
	Verifier EmailVerificationService
	Logger   *logrus.Logger
}

func NewUserService(r repo.UserRepository, auth AuthService, verifier EmailVerificationService, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Auth: auth, Verifier: verifier, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

// Register hashes the raw password, persists an unverified user, and
// dispatches exactly one verification email. Dispatch is best-effort:
// its failure does not fail the registration.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*UserResponse, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := entity.NewUser(in.Name, in.Email, hash)
	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, err
	}

	if s.Verifier != nil {
		if err := s.Verifier.SendVerificationEmail(ctx, u.ID); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("verification email dispatch failed")
		}
	}

	return toUserResponse(u), nil
}

// Login authenticates by email and raw password. The credential check
// strictly precedes the verification check, which strictly precedes token
// issuance.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if !u.HasVerifiedEmail() {
		return nil, ErrEmailNotVerified
	}
	token, err := s.Auth.CreateToken(ctx, u)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issuance failed")
		}
		return nil, err
	}
	return &LoginResponse{Token: token, UserID: u.ID, Name: u.Name, Email: u.Email}, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*UserResponse, error) {
	u, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Update applies only the fields present in the input, leaving absent
// fields untouched. A provided password is re-hashed.
func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (*UserResponse, error) {
	u, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	u.Touch()
	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// UpdatePassword re-hashes and persists a new password for the user.
// Used by the password reset flow.
func (s *UserService) UpdatePassword(ctx context.Context, id int64, password string) error {
	u, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hash
	u.Touch()
	return s.Repo.Save(ctx, u)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.findUser(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

func (s *UserService) findUser(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
