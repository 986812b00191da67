package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetstock/vetstock-api/internal/application/auth"
	"github.com/vetstock/vetstock-api/internal/application/dto"
	"github.com/vetstock/vetstock-api/internal/domain"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
	pkgjwt "github.com/vetstock/vetstock-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "super-secreta"
)

type memUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.byID[id], nil
}

func newAuthUC(t *testing.T, status string) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{
		ID:           "u-1",
		ClientID:     "c-1",
		Email:        "vet@example.com",
		PasswordHash: string(hash),
		Name:         "Dra. Pérez",
		Status:       status,
	}
	repo := &memUserRepo{
		byEmail: map[string]*entity.User{user.Email: user},
		byID:    map[string]*entity.User{user.ID: user},
	}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:            testSecret,
		AccessExpMinutes:  60,
		RefreshExpMinutes: 60,
		Issuer:            "vetstock-test",
	})
}

// Login correcto devuelve access y refresh token con la identidad del usuario.
func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newAuthUC(t, "active")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "vet@example.com", Password: testPassword})
	require.NoError(t, err)

	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "u-1", out.User.ID)
	assert.Equal(t, "c-1", out.User.ClientID)

	userID, clientID, email, err := pkgjwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "c-1", clientID)
	assert.Equal(t, "vet@example.com", email)
}

// Contraseña incorrecta falla con ErrUnauthorized.
func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuthUC(t, "active")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "vet@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Email no registrado falla con ErrUserNotFound.
func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(t, "active")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Usuario inactivo no puede iniciar sesión aunque la contraseña sea correcta.
func TestLogin_UsuarioInactivo(t *testing.T) {
	uc := newAuthUC(t, "suspended")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "vet@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Refresh con un refresh token vigente emite un par nuevo.
func TestRefresh_TokenValido(t *testing.T) {
	uc := newAuthUC(t, "active")
	ctx := context.Background()

	login, err := uc.Login(ctx, dto.LoginRequest{Email: "vet@example.com", Password: testPassword})
	require.NoError(t, err)

	renewed, err := uc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.AccessToken)
	assert.Equal(t, "u-1", renewed.User.ID)
}

// Refresh con un access token (o basura) falla con ErrUnauthorized.
func TestRefresh_TokenInvalido(t *testing.T) {
	uc := newAuthUC(t, "active")
	ctx := context.Background()

	login, err := uc.Login(ctx, dto.LoginRequest{Email: "vet@example.com", Password: testPassword})
	require.NoError(t, err)

	_, err = uc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "un access token no sirve para refresh")

	_, err = uc.Refresh(ctx, "no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
