package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/vetstock/vetstock-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testUserID   = "00000000-0000-0000-0000-000000000001"
	testClientID = "00000000-0000-0000-0000-000000000002"
	testEmail    = "vet@example.com"
	testIssuer   = "vetstock-test"
)

// Un access token generado debe parsearse y devolver la identidad completa.
func TestGenerateYParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testClientID, testEmail, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, clientID, email, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testClientID, clientID)
	assert.Equal(t, testEmail, email)
}

// Un token expirado debe ser rechazado.
func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testClientID, testEmail, testIssuer, -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

// Un token firmado con otro secreto debe ser rechazado.
func TestParse_SecretoIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testClientID, testEmail, testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

// Un refresh token no sirve como access token ni al revés.
func TestParse_RechazaRefreshComoAccess(t *testing.T) {
	refresh, err := pkgjwt.GenerateRefresh(testSecret, testUserID, testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, refresh)
	assert.Error(t, err, "un refresh token no debe pasar como access")

	access, err := pkgjwt.Generate(testSecret, testUserID, testClientID, testEmail, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.ParseRefresh(testSecret, access)
	assert.Error(t, err, "un access token no debe pasar como refresh")
}

// ParseRefresh devuelve el userID del refresh token.
func TestParseRefresh_RoundTrip(t *testing.T) {
	refresh, err := pkgjwt.GenerateRefresh(testSecret, testUserID, testIssuer, 60)
	require.NoError(t, err)

	userID, err := pkgjwt.ParseRefresh(testSecret, refresh)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

// Generar con secreto vacío es un error.
func TestGenerate_SecretoVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testClientID, testEmail, testIssuer, 60)
	assert.Error(t, err)
}
