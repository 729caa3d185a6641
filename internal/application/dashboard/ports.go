package dashboard

import (
	"context"

	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

// DataAPI lecturas del backend que alimentan el dashboard. Todas requieren
// bearer token.
type DataAPI interface {
	Products(ctx context.Context, token string) ([]entity.Product, error)
	Orders(ctx context.Context, token string) ([]entity.Order, error)
	SpendAnalytics(ctx context.Context, token string) (entity.SpendSnapshot, error)
}
