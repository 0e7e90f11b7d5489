package service

import (
	"fmt"

	"ai-clinic-backend/pkg/utils"
)

type AuthService struct {
	users        UserRepository
	registration *RegistrationService
	activity     ActivityRepository
}

func NewAuthService(users UserRepository, registration *RegistrationService, activity ActivityRepository) *AuthService {
	return &AuthService{
		users:        users,
		registration: registration,
		activity:     activity,
	}
}

// RegisterResponse is the public-safe account projection plus the session
// credential returned after registration
type RegisterResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// LoginResponse is the projection returned after authentication
type LoginResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	SubscriptionPlan string `json:"subscription_plan"`
	Token            string `json:"token"`
}

// Register runs the public registration workflow and issues a session
// credential bound to the new account
func (s *AuthService) Register(in RegisterInput) (*RegisterResponse, error) {
	user, err := s.registration.Provision(in)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logActivity(s.activity, user.Name, "Registered account", "auth", "CREATE")

	return &RegisterResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

// Login verifies an email/password pair. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logActivity(s.activity, user.Name, "Logged in", "auth", "INFO")

	return &LoginResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Role:             user.Role,
		SubscriptionPlan: user.SubscriptionPlan,
		Token:            token,
	}, nil
}
