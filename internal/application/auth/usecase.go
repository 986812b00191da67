package auth

import (
	"context"

	"github.com/vetstock/vetstock-api/internal/application/dto"
	"github.com/vetstock/vetstock-api/internal/domain"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
	"github.com/vetstock/vetstock-api/internal/domain/repository"
	"github.com/vetstock/vetstock-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret            string
	AccessExpMinutes  int
	RefreshExpMinutes int
	Issuer            string
}

// AuthUseCase casos de uso de autenticación: login y refresh. El alta de
// usuarios ocurre fuera de este servicio; aquí solo se verifican credenciales
// y se emite el par de tokens que el resto de la API exige.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password con bcrypt y devuelve access + refresh token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.tokenPair(user, "login exitoso")
}

// Refresh valida el refresh token y emite un par nuevo.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	userID, err := jwt.ParseRefresh(uc.jwtCfg.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.tokenPair(user, "token renovado")
}

func (uc *AuthUseCase) tokenPair(user *entity.User, message string) (*dto.LoginResponse, error) {
	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.ClientID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message:      message,
		AccessToken:  access,
		RefreshToken: refresh,
		User: dto.UserResponse{
			ID:       user.ID,
			ClientID: user.ClientID,
			Email:    user.Email,
			Name:     user.Name,
		},
	}, nil
}
