package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest body para POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UserResponse datos públicos del usuario autenticado.
type UserResponse struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// LoginResponse respuesta de login y refresh: par de tokens + usuario.
type LoginResponse struct {
	Message      string       `json:"message"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}
