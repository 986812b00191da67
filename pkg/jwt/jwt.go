package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos por la aplicación.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la
// aplicación. ClientID permite al middleware delimitar el tenant sin
// consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	ClientID string `json:"client_id"`
	Email    string `json:"email"`
	Kind     string `json:"kind"`
}

// Generate genera un access token firmado con userID, clientID y email.
func Generate(secret, userID, clientID, email, issuer string, expMinutes int) (string, error) {
	return sign(secret, issuer, expMinutes, Claims{
		UserID:   userID,
		ClientID: clientID,
		Email:    email,
		Kind:     KindAccess,
	})
}

// GenerateRefresh genera un refresh token (solo identifica al usuario).
func GenerateRefresh(secret, userID, issuer string, expMinutes int) (string, error) {
	return sign(secret, issuer, expMinutes, Claims{
		UserID: userID,
		Kind:   KindRefresh,
	})
}

func sign(secret, issuer string, expMinutes int, claims Claims) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida un access token y devuelve userID, clientID y email.
// Retorna error si el token es inválido, expirado, de otro tipo o con firma incorrecta.
func Parse(secret, tokenString string) (userID, clientID, email string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", "", "", err
	}
	if claims.Kind != "" && claims.Kind != KindAccess {
		return "", "", "", fmt.Errorf("jwt: no es un access token")
	}
	return claims.UserID, claims.ClientID, claims.Email, nil
}

// ParseRefresh valida un refresh token y devuelve el userID.
func ParseRefresh(secret, tokenString string) (string, error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims.Kind != KindRefresh {
		return "", fmt.Errorf("jwt: no es un refresh token")
	}
	return claims.UserID, nil
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
