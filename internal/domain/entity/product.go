package entity

import "time"

// Product representa un producto del catálogo maestro, identificado por su
// número de producto (código global, inmutable una vez creado).
type Product struct {
	ID            string
	ProductNumber string // código único global, ej. el GTIN impreso en el empaque
	PrimaryName   string
	SecondaryName *string
	Image         *string // referencia a imagen (URL), opcional
	NoBarcode     bool    // true si el empaque no trae código de barras legible
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
