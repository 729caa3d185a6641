package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

// FilterProducts filtra el catálogo por subcadena, sin distinguir mayúsculas,
// contra el nombre del producto O el nombre de su vendor. Término vacío
// devuelve la colección original sin copiar. Se recalcula en cada pulsación,
// así que no asigna nada cuando no hay término.
func FilterProducts(products []entity.Product, term string) []entity.Product {
	if term == "" {
		return products
	}
	m := search.New(language.Und, search.IgnoreCase)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if containsFold(m, p.Name, term) || containsFold(m, p.Vendor.Name, term) {
			out = append(out, p)
		}
	}
	return out
}

// containsFold subcadena con case folding Unicode (no un simple ToLower).
func containsFold(m *search.Matcher, text, pattern string) bool {
	start, _ := m.IndexString(text, pattern)
	return start >= 0
}
