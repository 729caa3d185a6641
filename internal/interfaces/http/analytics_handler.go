package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/medsupply-pro/internal/application/dto"
)

// AnalyticsHandler agregados de gasto mensual.
type AnalyticsHandler struct {
	store *Store
}

// NewAnalyticsHandler construye el handler de analítica.
func NewAnalyticsHandler(store *Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: store}
}

// Spend GET /api/analytics/spend (solo facility). ?year= y ?month= opcionales;
// por defecto el mes calendario en curso.
func (h *AnalyticsHandler) Spend(c *fiber.Ctx) error {
	now := time.Now().UTC()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	u := CurrentUser(c)
	total, count := h.store.SpendFor(u.ID, year, time.Month(month))
	return c.JSON(dto.SpendResponse{
		Year:        year,
		Month:       month,
		TotalSpend:  total,
		OrdersCount: count,
	})
}
