package entity

import "time"

// StockRecord es la existencia de un lote de un producto en una práctica.
// Clave única: (PracticeID, ProductID, BatchNumber). Un registro vivo siempre
// tiene Quantity > 0; al llegar a cero o menos el registro se elimina, nunca
// se persisten cantidades negativas.
type StockRecord struct {
	ID          string
	PracticeID  string
	ProductID   string
	BatchNumber string
	Quantity    int64
	ExpiryDate  *time.Time // fecha de vencimiento del lote, opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockWithProduct es un StockRecord unido con los datos de presentación del
// producto (la vista de stock por práctica).
type StockWithProduct struct {
	StockRecord
	ProductNumber string
	PrimaryName   string
	SecondaryName *string
	NoBarcode     bool
}
