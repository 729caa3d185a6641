package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold regla de presentación: por debajo de esta cantidad el
// producto se marca visualmente como stock bajo. No es una regla de negocio;
// el umbral de reposición real es MinThreshold y lo administra el backend.
const LowStockThreshold = 10

// VendorSummary resumen del vendedor embebido en cada producto listado.
type VendorSummary struct {
	ID       string
	Name     string
	Verified bool
}

// Product entrada del catálogo. Precio y stock son autoritativos en el
// backend; el cliente mantiene una copia de lectura que solo crece cuando un
// vendor crea un producto en la sesión actual.
type Product struct {
	ID           string
	VendorID     string
	Name         string
	Category     string
	SKU          string
	Price        decimal.Decimal
	Stock        int
	Unit         string
	MinThreshold int
	WarehouseLat *float64
	WarehouseLon *float64
	Vendor       VendorSummary
	LastUpdated  time.Time
}

// LowStock indica si el producto debe resaltarse como stock bajo.
func (p Product) LowStock() bool { return p.Stock < LowStockThreshold }
