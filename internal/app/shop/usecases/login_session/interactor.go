package login_session

import (
	"context"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Request replaces a session's claims with those of Token.
type Request struct {
	SessionID string
	Token     string
}

// Interactor handles the login use case.
type Interactor struct {
	sessions contracts.SessionStore
}

// NewInteractor creates a new login interactor.
func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{
		sessions: sessions,
	}
}

// Execute returns domain.ErrTokenDecode when the token can't be decoded; the
// session is anonymous afterwards. The token signature is never checked.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.Session, error) {
	return i.sessions.Login(ctx, req.SessionID, req.Token)
}
