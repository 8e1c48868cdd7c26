package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/musemarket/musemarket-api/config"
	"github.com/musemarket/musemarket-api/internal/domain/entity"
	repo "github.com/musemarket/musemarket-api/internal/domain/repository"
	"github.com/musemarket/musemarket-api/pkg/helpers"
	"github.com/musemarket/musemarket-api/pkg/mailer"
	"github.com/musemarket/musemarket-api/pkg/mailer/templates"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidRole        = errors.New("role must be buyer or seller")
	ErrInvalidAge         = errors.New("buyer age must be between 18 and 50")
)

const (
	MinBuyerAge = 18
	MaxBuyerAge = 50
)

type AuthService struct {
	Users    repo.UserRepository
	JWT      *helpers.JWTManager
	Sessions SessionStore
	Jobs     JobPublisher
	Config   *config.Config
	Logger   *logrus.Logger
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, sessions SessionStore, jobs JobPublisher, cfg *config.Config, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Sessions: sessions, Jobs: jobs, Config: cfg, Logger: logger}
}

type SignupInput struct {
	FullName string
	Username string
	Email    string
	Password string
	Phone    string
	Address  string
	Role     entity.Role
	ArtStyle string
	Age      int
}

func profileFor(in SignupInput) (entity.Profile, error) {
	switch in.Role {
	case entity.RoleSeller:
		return entity.SellerProfile{ArtStyle: strings.TrimSpace(in.ArtStyle)}, nil
	case entity.RoleBuyer:
		if in.Age < MinBuyerAge || in.Age > MaxBuyerAge {
			return nil, ErrInvalidAge
		}
		return entity.BuyerProfile{Age: in.Age}, nil
	}
	// admins are only created by the bootstrap
	return nil, ErrInvalidRole
}

// Signup registers a buyer or seller and queues the welcome email.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	profile, err := profileFor(in)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	taken, err := s.Users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	exists, err := s.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username:     in.Username,
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        in.Phone,
		Address:      strings.TrimSpace(in.Address),
		Role:         in.Role,
		Profile:      profile,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		// lost a race with a concurrent signup
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	if s.Config != nil && s.Config.MailSendEnabled {
		data := templates.NewWelcomeData(s.Config, u.FullName, u.Email,
			templates.WithUsername(u.Username),
			templates.WithRole(string(u.Role)),
			templates.WithTime(time.Now()),
		)
		enqueueEmail(ctx, s.Jobs, s.Logger, mailer.EmailJob{To: u.Email, Template: templates.Welcome, Data: data})
	}
	return u, nil
}

// Authenticate validates username/password and returns the user without issuing tokens.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates access/refresh tokens and records a session.
func (s *AuthService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	pair, err := s.pair(u, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate tokens failed")
		}
		return TokenPair{}, err
	}
	if s.Sessions != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"username":   u.Username,
			"role":       string(u.Role),
			"sid":        sid,
			"created_at": nowRFC3339(),
		}
		if err := s.Sessions.Save(ctx, u.ID, fields, s.sessionTTL()); err != nil {
			return TokenPair{}, err
		}
	}
	return pair, nil
}

func (s *AuthService) pair(u *entity.User, sid string) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, string(u.Role), sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, string(u.Role), sid)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// sessionTTL follows the refresh token so a refresh can always find its session.
func (s *AuthService) sessionTTL() time.Duration {
	if s.JWT != nil && s.JWT.RefreshTTL > 0 {
		return s.JWT.RefreshTTL
	}
	return 24 * time.Hour
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh checks the refresh token against the stored session and rotates both.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, *entity.User, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, nil, ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, nil, ErrInvalidCredentials
	}
	if s.Sessions != nil {
		data, err := s.Sessions.Get(ctx, u.ID)
		if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, nil, ErrInvalidCredentials
		}
	}
	sid := uuid.NewString()
	pair, err := s.pair(u, sid)
	if err != nil {
		return TokenPair{}, nil, err
	}
	if s.Sessions != nil {
		if err := s.Sessions.Save(ctx, u.ID, map[string]any{"sid": sid, "updated_at": nowRFC3339()}, s.sessionTTL()); err != nil {
			return TokenPair{}, nil, err
		}
	}
	return pair, u, nil
}

// Logout drops the session; tokens carrying the old sid stop working.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if s.Sessions == nil || userID == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, userID)
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
