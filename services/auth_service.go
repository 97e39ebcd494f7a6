package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/repository"
	"github.com/zninennea/nani-plate-perfect/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUnknownProvider    = errors.New("unknown oauth provider")
)

// OAuthProvider abstracts the external identity provider behind the social
// sign-in button. Verify exchanges the provider's code for a verified
// identity or fails.
type OAuthProvider interface {
	Verify(code string) (OAuthIdentity, error)
}

type OAuthIdentity struct {
	Email    string
	FullName string
}

type AuthService struct {
	Users     *repository.UserRepository
	Providers map[string]OAuthProvider
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, providers map[string]OAuthProvider, secret string, ttl time.Duration) *AuthService {
	if providers == nil {
		providers = map[string]OAuthProvider{}
	}
	return &AuthService{Users: users, Providers: providers, jwtSecret: secret, jwtTTL: ttl}
}

// Register creates a profile with a fixed role. Owner accounts are seeded,
// never self-registered.
func (s *AuthService) Register(email, password, fullName, phone, role string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if role == "" {
		role = entity.RoleCustomer
	}
	if !entity.ValidRole(role) || role == entity.RoleOwner {
		return nil, ErrInvalidRole
	}

	count, err := s.Users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		FullName: strings.TrimSpace(fullName),
		Phone:    strings.TrimSpace(phone),
		Role:     role,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// LoginWithOAuth verifies the provider code and signs the profile in,
// creating it as a customer on first contact.
func (s *AuthService) LoginWithOAuth(provider, code string) (string, *entity.User, error) {
	p, ok := s.Providers[provider]
	if !ok {
		return "", nil, ErrUnknownProvider
	}
	ident, err := p.Verify(code)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	email := strings.ToLower(strings.TrimSpace(ident.Email))
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		user = &entity.User{
			Email:    email,
			FullName: ident.FullName,
			Role:     entity.RoleCustomer,
		}
		if err := s.Users.Create(user); err != nil {
			return "", nil, err
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.Users.FindByID(userID)
}

// UpdateProfile accepts contact fields only; role and email are fixed.
func (s *AuthService) UpdateProfile(userID uint, fullName, phone *string) (*entity.User, error) {
	updates := map[string]any{}
	if fullName != nil {
		updates["full_name"] = strings.TrimSpace(*fullName)
	}
	if phone != nil {
		updates["phone"] = strings.TrimSpace(*phone)
	}
	if len(updates) > 0 {
		if err := s.Users.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.Users.FindByID(userID)
}
