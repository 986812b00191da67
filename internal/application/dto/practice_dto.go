package dto

import "time"

// PracticeResponse representación de una práctica en respuestas.
type PracticeResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PracticeListResponse respuesta de GET /api/practices.
type PracticeListResponse struct {
	Message   string             `json:"message"`
	Practices []PracticeResponse `json:"practices"`
}
