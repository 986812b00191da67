package dto

import "time"

// La API habla camelCase y la base snake_case; la conversión es explícita:
// son los tags json de esta capa, no un middleware global.

// StockItemRequest es una línea de un lote de entrada o salida de stock.
// Quantity omitida o en 0 equivale a la cantidad por defecto (1).
// ExpiryDate ("YYYY-MM-DD") solo aplica a entradas.
type StockItemRequest struct {
	ProductNumber string `json:"productNumber" validate:"required"`
	BatchNumber   string `json:"batchNumber" validate:"required"`
	ExpiryDate    string `json:"expiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Quantity      int64  `json:"quantity,omitempty" validate:"min=0"`
}

// StockBatchRequest body para POST /api/inventory/add y /api/inventory/remove.
// No lleva token de idempotencia: reenviar el lote lo vuelve a aplicar.
type StockBatchRequest struct {
	PracticeID string             `json:"practiceId" validate:"required"`
	Products   []StockItemRequest `json:"products" validate:"required,min=1,dive"`
}

// StockItemOutcome resultado por línea: created/updated/deleted, o rejected
// con errorCode y errorMessage.
type StockItemOutcome struct {
	ProductNumber string `json:"productNumber"`
	BatchNumber   string `json:"batchNumber"`
	ProductID     string `json:"productId,omitempty"`
	Status        string `json:"status"`
	Quantity      int64  `json:"quantity"`
	ErrorCode     string `json:"errorCode,omitempty"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
}

// StockBatchResponse respuesta agregada de un lote: conteos + resultado por línea.
type StockBatchResponse struct {
	Message   string             `json:"message"`
	Processed int                `json:"processed"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Items     []StockItemOutcome `json:"items"`
}

// StockRecordResponse un registro de stock unido con el producto
// (la vista de stock por práctica).
type StockRecordResponse struct {
	ID            string     `json:"id"`
	PracticeID    string     `json:"practiceId"`
	ProductID     string     `json:"productId"`
	ProductNumber string     `json:"productNumber"`
	PrimaryName   string     `json:"primaryName"`
	SecondaryName *string    `json:"secondaryName,omitempty"`
	NoBarcode     bool       `json:"noBarcode"`
	BatchNumber   string     `json:"batchNumber"`
	Quantity      int64      `json:"quantity"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// StockListResponse respuesta de GET /api/inventory.
type StockListResponse struct {
	Inventory []StockRecordResponse `json:"inventory"`
}
