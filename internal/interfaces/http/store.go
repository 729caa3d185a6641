package http

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/medsupply-pro/internal/application/dto"
	"github.com/jhoicas/medsupply-pro/internal/domain"
	"github.com/jhoicas/medsupply-pro/internal/domain/entity"
)

// userRecord usuario del backend de desarrollo; el hash nunca sale del store.
type userRecord struct {
	entity.User
	PasswordHash string
}

// orderItemRecord línea persistida con el precio congelado al crear.
type orderItemRecord struct {
	ProductID string
	Qty       int
	UnitPrice decimal.Decimal
}

// orderRecord orden con sus contrapartes e ítems.
type orderRecord struct {
	entity.Order
	FacilityID string
	VendorID   string
	Items      []orderItemRecord
}

// Store estado en memoria del backend de desarrollo. Sin persistencia: se
// reconstruye en cada arranque (con Seed opcional). Protegido con RWMutex
// porque Fiber atiende handlers en paralelo.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*userRecord
	products map[string]*entity.Product
	orders   map[string]*orderRecord
}

// NewStore construye el store vacío.
func NewStore() *Store {
	return &Store{
		users:    map[string]*userRecord{},
		products: map[string]*entity.Product{},
		orders:   map[string]*orderRecord{},
	}
}

// CreateUser registra una cuenta con password bcrypt.
func (s *Store) CreateUser(email, password, role, name string) (*userRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &userRecord{
		User: entity.User{
			ID:        uuid.New().String(),
			Email:     email,
			Name:      name,
			Role:      role,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash: string(hash),
	}
	s.users[u.ID] = u
	return u, nil
}

// Authenticate valida email/password.
func (s *Store) Authenticate(email, password string) (*userRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
				return nil, domain.ErrInvalidCredentials
			}
			return u, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// GetUser busca por id.
func (s *Store) GetUser(id string) (*userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// MarkVerified marca la cuenta como verificada (verify_license).
func (s *Store) MarkVerified(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return false
	}
	u.Verified = true
	return true
}

// AddProduct da de alta un producto del vendor indicado y devuelve el id.
func (s *Store) AddProduct(p entity.Product) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.New().String()
	p.LastUpdated = time.Now().UTC()
	s.products[p.ID] = &p
	return p.ID
}

// ListProducts filtra por subcadena de nombre y vendor, y ordena por precio
// o por vendor (el default del backend de referencia es precio).
func (s *Store) ListProducts(q, vendorID, sortBy string) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			continue
		}
		if vendorID != "" && p.VendorID != vendorID {
			continue
		}
		cp := *p
		if v, ok := s.users[p.VendorID]; ok {
			cp.Vendor = entity.VendorSummary{ID: v.ID, Name: v.Name, Verified: v.Verified}
		}
		out = append(out, cp)
	}
	switch sortBy {
	case "vendor":
		sort.Slice(out, func(i, j int) bool { return out[i].VendorID < out[j].VendorID })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	}
	return out
}

// PlaceOrder crea la orden con las reglas del backend de referencia: todos
// los ítems del mismo vendor, stock suficiente salvo emergencia (las
// emergencias no descuentan stock) y total = Σ qty·price.
func (s *Store) PlaceOrder(facilityID string, items []dto.OrderItemRequest, emergency bool) (*orderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	first, ok := s.products[items[0].ProductID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	vendorID := first.VendorID

	total := decimal.Zero
	lines := make([]orderItemRecord, 0, len(items))
	for _, it := range items {
		p, ok := s.products[it.ProductID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		if p.VendorID != vendorID {
			return nil, domain.ErrMixedVendors
		}
		if !emergency && p.Stock < it.Qty {
			return nil, &stockError{product: p.Name}
		}
		lines = append(lines, orderItemRecord{ProductID: p.ID, Qty: it.Qty, UnitPrice: p.Price})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	// Descuento de stock recién cuando toda la orden validó.
	if !emergency {
		for _, it := range items {
			s.products[it.ProductID].Stock -= it.Qty
		}
	}

	o := &orderRecord{
		Order: entity.Order{
			ID:          uuid.New().String(),
			Status:      entity.OrderStatusPending,
			TotalAmount: total,
			Emergency:   emergency,
			CreatedAt:   time.Now().UTC(),
		},
		FacilityID: facilityID,
		VendorID:   vendorID,
		Items:      lines,
	}
	s.orders[o.ID] = o
	return o, nil
}

// stockError lleva el nombre del producto para el mensaje del backend de
// referencia: "not enough stock for <name>".
type stockError struct{ product string }

func (e *stockError) Error() string { return "not enough stock for " + e.product }

// ListOrders devuelve las órdenes visibles para el usuario: facility las
// suyas, vendor las dirigidas a él, admin todas. Más recientes primero.
func (s *Store) ListOrders(u *userRecord) []orderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]orderRecord, 0, len(s.orders))
	for _, o := range s.orders {
		switch u.Role {
		case entity.RoleFacility:
			if o.FacilityID != u.ID {
				continue
			}
		case entity.RoleVendor:
			if o.VendorID != u.ID {
				continue
			}
		}
		cp := *o
		if f, ok := s.users[o.FacilityID]; ok {
			cp.Facility = &entity.PartySummary{ID: f.ID, Name: f.Name}
		}
		if v, ok := s.users[o.VendorID]; ok {
			cp.Vendor = &entity.PartySummary{ID: v.ID, Name: v.Name}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// SpendFor agrega el gasto del facility en el mes dado. Solo cuentan las
// órdenes ya confirmadas o entregadas, igual que el backend de referencia.
func (s *Store) SpendFor(facilityID string, year int, month time.Month) (decimal.Decimal, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	total := decimal.Zero
	count := 0
	for _, o := range s.orders {
		if o.FacilityID != facilityID {
			continue
		}
		if o.CreatedAt.Before(start) || !o.CreatedAt.Before(end) {
			continue
		}
		switch o.Status {
		case entity.OrderStatusConfirmed, entity.OrderStatusOutForDelivery, entity.OrderStatusDelivered:
			total = total.Add(o.TotalAmount)
			count++
		}
	}
	return total, count
}

// Seed crea los datos de ejemplo del backend de referencia más una orden
// entregada para que la analítica del facility muestre algo.
func (s *Store) Seed() error {
	vendor, err := s.CreateUser("vendor@example.com", "vendorpass", entity.RoleVendor, "BestMed Supplies")
	if err != nil {
		return err
	}
	facility, err := s.CreateUser("facility@example.com", "facpass", entity.RoleFacility, "County Hospital")
	if err != nil {
		return err
	}
	s.MarkVerified(vendor.ID)
	s.MarkVerified(facility.ID)

	lat, lon := -1.2921, 36.8219
	gloves := s.AddProduct(entity.Product{
		VendorID: vendor.ID, Name: "Surgical Gloves - M", Category: "surgical",
		Price: decimal.NewFromFloat(0.5), Stock: 1000, Unit: "pcs",
		MinThreshold: 100, WarehouseLat: &lat, WarehouseLon: &lon,
	})
	s.AddProduct(entity.Product{
		VendorID: vendor.ID, Name: "IV Set - Std", Category: "equipment",
		Price: decimal.NewFromInt(5), Stock: 200, Unit: "pcs",
		MinThreshold: 20, WarehouseLat: &lat, WarehouseLon: &lon,
	})

	o, err := s.PlaceOrder(facility.ID, []dto.OrderItemRequest{{ProductID: gloves, Qty: 100}}, false)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.orders[o.ID].Status = entity.OrderStatusDelivered
	s.mu.Unlock()
	return nil
}
