package authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/pkg/auth"
	"github.com/GlebRadaev/vivento/pkg/facebook"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByFacebookID(ctx context.Context, facebookID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	LinkFacebook(ctx context.Context, userID int, facebookID string, picture *string) error
}

type FacebookClient interface {
	Profile(ctx context.Context, accessToken string) (*facebook.Profile, error)
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrFacebookAuth       = errors.New("facebook authentication failed")
)

type Service struct {
	userRepo    Repo
	facebook    FacebookClient
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, fb FacebookClient, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		facebook:    fb,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: &hashedPassword,
		Role:         domain.RoleUser,
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.Int("userID", user.ID))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if user.PasswordHash == nil || !s.hashService.ComparePassword(*user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.Int("userID", user.ID))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.Int("userID", user.ID))
	return user, nil
}

// LoginWithFacebook resolves the token owner and links or creates the account:
// first by facebook id, then by email.
func (s *Service) LoginWithFacebook(ctx context.Context, accessToken string) (*domain.User, error) {
	profile, err := s.facebook.Profile(ctx, accessToken)
	if err != nil {
		zap.L().Info("facebook profile lookup failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFacebookAuth, err)
	}

	user, err := s.userRepo.FindByFacebookID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	var picture *string
	if url := profile.PictureURL(); url != "" {
		picture = &url
	}

	if profile.Email != "" {
		user, err = s.userRepo.FindByEmail(ctx, profile.Email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			if err := s.userRepo.LinkFacebook(ctx, user.ID, profile.ID, picture); err != nil {
				return nil, err
			}
			user.FacebookID = &profile.ID
			if user.ProfilePicture == nil {
				user.ProfilePicture = picture
			}
			zap.L().Info("facebook account linked", zap.Int("userID", user.ID))
			return user, nil
		}
	}

	email := profile.Email
	if email == "" {
		email = fmt.Sprintf("facebook-%s@users.vivento.az", profile.ID)
	}
	user, err = s.userRepo.Create(ctx, &domain.User{
		Name:           profile.Name,
		Email:          email,
		FacebookID:     &profile.ID,
		ProfilePicture: picture,
		Role:           domain.RoleUser,
	})
	if err != nil {
		zap.L().Error("can't create facebook user", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user registered through facebook", zap.Int("userID", user.ID))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, string(user.Role), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
