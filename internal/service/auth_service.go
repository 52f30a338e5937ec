package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taranjotsinghW28/Note-Nest/internal/apperror"
	"github.com/taranjotsinghW28/Note-Nest/internal/config"
	"github.com/taranjotsinghW28/Note-Nest/internal/dto"
	"github.com/taranjotsinghW28/Note-Nest/internal/entity"
	"github.com/taranjotsinghW28/Note-Nest/internal/pkg/logger"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/memory"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/specification"
	"github.com/taranjotsinghW28/Note-Nest/internal/repository/unitofwork"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Signin(ctx context.Context, req *dto.SigninRequest) (*dto.SigninResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error)
	Signout(ctx context.Context, refreshToken string) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	attempts   *memory.AttemptRepository
	cfg        config.AuthConfig
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, attempts *memory.AttemptRepository, cfg config.AuthConfig, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		attempts:   attempts,
		cfg:        cfg,
		log:        log,
	}
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Email is pre-checked for a friendly error. Username is not: the unique
	// constraint catches duplicates and surfaces as a constraint violation.
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateEmail
	}

	user := &entity.User{
		Id:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("auth", "user signed up", map[string]interface{}{"user_id": user.Id})

	return &dto.SignupResponse{
		Id:       user.Id,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *authService) Signin(ctx context.Context, req *dto.SigninRequest) (*dto.SigninResponse, error) {
	if s.attempts.Failures(req.Email) >= s.cfg.MaxSigninAttempts {
		return nil, apperror.ErrTooManyAttempts
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CheckPassword(req.Password) {
		s.attempts.RecordFailure(req.Email)
		return nil, apperror.ErrInvalidCredentials
	}
	s.attempts.Reset(req.Email)

	accessToken, err := s.signAccessToken(user.Id)
	if err != nil {
		return nil, err
	}

	var rawRefreshToken string
	if req.RememberMe {
		rawRefreshToken = uuid.New().String()

		refreshTokenEntity := &entity.UserRefreshToken{
			Id:        uuid.New(),
			UserId:    user.Id,
			TokenHash: hashToken(rawRefreshToken),
			ExpiresAt: time.Now().Add(s.cfg.RefreshTokenExpiry),
			Revoked:   false,
			CreatedAt: time.Now(),
		}

		if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
			return nil, err
		}
	}

	return &dto.SigninResponse{
		AccessToken:  accessToken,
		RefreshToken: rawRefreshToken,
		User: dto.UserDTO{
			Id:       user.Id,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.RefreshResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	token, err := uow.UserRepository().FindRefreshToken(ctx,
		specification.ByTokenHash{Hash: hashToken(req.RefreshToken)},
	)
	if err != nil {
		return nil, err
	}
	if token == nil || token.Revoked || time.Now().After(token.ExpiresAt) {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.signAccessToken(token.UserId)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Signout revokes the refresh token if one was issued. Access tokens are
// stateless and simply age out.
func (s *authService) Signout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().RevokeRefreshToken(ctx, hashToken(refreshToken))
}

func (s *authService) signAccessToken(userId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(s.cfg.AccessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JwtSecret))
}
