package http

import (
	"time"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// ProductView is the JSON form of a product. Prices are decimal strings
// rounded to cents.
type ProductView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
	InStock     bool   `json:"in_stock"`
}

// ProductListView is a product listing.
type ProductListView struct {
	Products []ProductView `json:"products"`
	Total    int           `json:"total"`
}

// CartLineView is one cart line.
type CartLineView struct {
	Product   ProductView `json:"product"`
	Quantity  int         `json:"quantity"`
	LineTotal string      `json:"line_total"`
}

// CartView is a cart with its totals.
type CartView struct {
	CartID     string         `json:"cart_id"`
	Lines      []CartLineView `json:"lines"`
	TotalItems int            `json:"total_items"`
	TotalPrice string         `json:"total_price"`
}

// AuthView is the derived authentication state.
type AuthView struct {
	Authenticated bool   `json:"authenticated"`
	Admin         bool   `json:"admin"`
	Subject       string `json:"subject,omitempty"`
	Role          string `json:"role,omitempty"`
}

// SessionView is a browsing session.
type SessionView struct {
	ID             string    `json:"id"`
	Auth           AuthView  `json:"auth"`
	Cart           CartView  `json:"cart"`
	OpenedAt       time.Time `json:"opened_at"`
	Restored       bool      `json:"restored"`
	TokenDiscarded bool      `json:"token_discarded,omitempty"`
}

func toProductView(p *domain.Product) ProductView {
	return ProductView{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().String(),
		ImageURL:    p.ImageURL(),
		Category:    p.Category(),
		Stock:       p.Stock(),
		InStock:     p.InStock(),
	}
}

func toProductListView(products []*domain.Product) ProductListView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return ProductListView{Products: views, Total: len(views)}
}

func toCartView(cart domain.CartView) CartView {
	lines := make([]CartLineView, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, CartLineView{
			Product:   toProductView(l.Product()),
			Quantity:  l.Quantity(),
			LineTotal: l.LineTotal().String(),
		})
	}

	total := domain.Zero()
	if cart.Totals.TotalPrice != nil {
		total = cart.Totals.TotalPrice
	}

	return CartView{
		CartID:     cart.CartID,
		Lines:      lines,
		TotalItems: cart.Totals.TotalItems,
		TotalPrice: total.String(),
	}
}

func toAuthView(s domain.Session) AuthView {
	return AuthView{
		Authenticated: s.IsAuthenticated,
		Admin:         s.IsAdmin,
		Subject:       s.Subject,
		Role:          string(s.Role),
	}
}

func toSessionView(s contracts.SessionView) SessionView {
	return SessionView{
		ID:       s.ID,
		Auth:     toAuthView(s.Auth),
		Cart:     toCartView(s.Cart),
		OpenedAt: s.OpenedAt,
		Restored: s.Restored,
	}
}
