package logout_session

import (
	"context"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Request identifies the session to log out.
type Request struct {
	SessionID string
}

// Interactor handles the logout use case.
type Interactor struct {
	sessions contracts.SessionStore
}

// NewInteractor creates a new logout interactor.
func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{
		sessions: sessions,
	}
}

// Execute clears the claims; the cart survives.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.Session, error) {
	return i.sessions.Logout(ctx, req.SessionID)
}
