package user

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/car-showroom/cmd/config"
	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
	redisrepo "github.com/muhammadheryan/car-showroom/repository/redis"
	userrepo "github.com/muhammadheryan/car-showroom/repository/user"
	"github.com/muhammadheryan/car-showroom/thirdparty/oauth"
	"github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	// ValidateToken returns the user id and the session id (jti) of a live session.
	ValidateToken(ctx context.Context, tokenString string) (uint64, string, error)
	Logout(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, userID uint64) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.ProfileResponse, error)
	UpdatePassword(ctx context.Context, userID uint64, req *model.UpdatePasswordRequest) error
	IsAdmin(ctx context.Context, userID uint64) (bool, error)
	AuthForm(action string) *model.AuthForm
	OAuthRedirect(ctx context.Context, provider string) (*model.OAuthRedirectResponse, error)
	OAuthCallback(ctx context.Context, provider, state, code string) (*model.LoginResponse, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	identity  oauth.IdentityProvider
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, identity oauth.IdentityProvider) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		identity:  identity,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	if err := s.ensureUnique(ctx, "Register", 0, req.Email, req.Phone); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		Name:  userEntity.Name,
		Email: userEntity.Email,
	}, nil
}

// ensureUnique rejects an email or phone already held by a user other than selfID.
func (s *UserAppImpl) ensureUnique(ctx context.Context, op string, selfID uint64, email, phone string) error {
	filters := []*model.UserFilter{{Email: email}}
	if phone != "" {
		filters = append(filters, &model.UserFilter{Phone: phone})
	}

	for _, filter := range filters {
		existing, err := s.userRepo.Get(ctx, filter)
		if err != nil {
			logger.Error(fmt.Sprintf("[%s] err userRepo.Get", op), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil && existing.ID != selfID {
			return errors.SetCustomError(constant.ErrCredentialExists)
		}
	}
	return nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	filter := &model.UserFilter{}
	if strings.Contains(req.Identifier, "@") {
		filter.Email = req.Identifier
	} else {
		filter.Phone = req.Identifier
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Accounts created through a login provider have no password until one is set.
	if user.PasswordHash == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	return s.startSession(ctx, "Login", user)
}

// startSession signs a token for user and stores its jti in redis.
func (s *UserAppImpl) startSession(ctx context.Context, op string, user *model.UserEntity) (*model.LoginResponse, error) {
	token, jti, expiresAt, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err generateJWT", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err SetSession", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:      user.Name,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, "", fmt.Errorf("token missing jti")
	}

	// The session key disappears on logout, which revokes the token.
	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, "", fmt.Errorf("invalid or expired session")
	}

	if redisUserID != userID {
		return 0, "", fmt.Errorf("token does not match user session")
	}

	return userID, jti, nil
}

// Logout ends the session. An empty session id is a no-op so that logging
// out twice, or without a session, still succeeds.
func (s *UserAppImpl) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.redisRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) getUser(ctx context.Context, op string, userID uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error(fmt.Sprintf("[%s] err userRepo.Get", op), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, userID uint64) (*model.ProfileResponse, error) {
	user, err := s.getUser(ctx, "GetProfile", userID)
	if err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	user, err := s.getUser(ctx, "UpdateProfile", userID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUnique(ctx, "UpdateProfile", userID, req.Email, req.Phone); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, req.Name, req.Email, req.Phone); err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	return toProfile(user), nil
}

func (s *UserAppImpl) UpdatePassword(ctx context.Context, userID uint64, req *model.UpdatePasswordRequest) error {
	user, err := s.getUser(ctx, "UpdatePassword", userID)
	if err != nil {
		return err
	}

	if user.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			return errors.SetCustomError(constant.ErrInvalidPassword)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[UpdatePassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Error("[UpdatePassword] err userRepo.UpdatePassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) IsAdmin(ctx context.Context, userID uint64) (bool, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[IsAdmin] err userRepo.Get", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	return user != nil && user.IsAdmin, nil
}

// AuthForm describes the login or register page.
func (s *UserAppImpl) AuthForm(action string) *model.AuthForm {
	fields := []string{"identifier", "password"}
	if action == "/register" {
		fields = []string{"name", "email", "phone", "password"}
	}

	providers := make([]string, 0, len(s.config.OAuth))
	for name := range s.config.OAuth {
		providers = append(providers, name)
	}
	sort.Strings(providers)

	return &model.AuthForm{
		Action:    action,
		Fields:    fields,
		Providers: providers,
	}
}

func (s *UserAppImpl) OAuthRedirect(ctx context.Context, provider string) (*model.OAuthRedirectResponse, error) {
	p, ok := s.config.OAuth[provider]
	if !ok {
		return nil, errors.SetCustomError(constant.ErrUnsupportedProvider)
	}

	state, err := uuid.NewRandom()
	if err != nil {
		logger.Error("[OAuthRedirect] err uuid.NewRandom", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetOAuthState(ctx, state.String(), provider, s.config.Auth.OAuthStateTTL); err != nil {
		logger.Error("[OAuthRedirect] err SetOAuthState", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OAuthRedirectResponse{URL: oauth.AuthorizeURL(p, state.String())}, nil
}

// OAuthCallback finishes a provider login. The user is matched by provider
// account first, then by email (linking the provider), and is created
// otherwise.
func (s *UserAppImpl) OAuthCallback(ctx context.Context, provider, state, code string) (*model.LoginResponse, error) {
	if _, ok := s.config.OAuth[provider]; !ok {
		return nil, errors.SetCustomError(constant.ErrUnsupportedProvider)
	}
	if state == "" || code == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidOAuthState)
	}

	issuedFor, err := s.redisRepo.ConsumeOAuthState(ctx, state)
	if err != nil {
		logger.Error("[OAuthCallback] err ConsumeOAuthState", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if issuedFor != provider {
		return nil, errors.SetCustomError(constant.ErrInvalidOAuthState)
	}

	identity, err := s.identity.Exchange(ctx, provider, code)
	if err != nil {
		logger.Warn("[OAuthCallback] err identity.Exchange", zap.String("provider", provider), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Provider: provider, ProviderID: identity.ProviderID})
	if err != nil {
		logger.Error("[OAuthCallback] err userRepo.Get provider", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil && identity.Email != "" {
		user, err = s.userRepo.Get(ctx, &model.UserFilter{Email: identity.Email})
		if err != nil {
			logger.Error("[OAuthCallback] err userRepo.Get email", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if user != nil {
			if err := s.userRepo.LinkProvider(ctx, user.ID, provider, identity.ProviderID); err != nil {
				logger.Error("[OAuthCallback] err userRepo.LinkProvider", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}
	}

	if user == nil {
		if identity.Email == "" {
			return nil, errors.SetCustomError(constant.ErrUnauthorize)
		}
		name := identity.Name
		if name == "" {
			name = identity.Email
		}
		user, err = s.userRepo.Create(ctx, &model.UserEntity{
			Name:       name,
			Email:      identity.Email,
			Provider:   &identity.Provider,
			ProviderID: &identity.ProviderID,
		})
		if err != nil {
			logger.Error("[OAuthCallback] err userRepo.Create", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	return s.startSession(ctx, "OAuthCallback", user)
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, time.Time, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", time.Time{}, err
	}

	now := time.Now()
	expiresAt := now.Add(s.config.Auth.JWTExpiration)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, expiresAt, nil
}

func toProfile(user *model.UserEntity) *model.ProfileResponse {
	return &model.ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}
