package close_session

import (
	"context"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
)

// Request identifies the session to dispose.
type Request struct {
	SessionID string
}

// Interactor handles the close session use case.
type Interactor struct {
	sessions contracts.SessionStore
}

// NewInteractor creates a new close session interactor.
func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{
		sessions: sessions,
	}
}

// Execute discards the session and its saved cart.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.sessions.Close(ctx, req.SessionID)
}
