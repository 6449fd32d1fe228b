package open_session

import (
	"context"
	"errors"

	"github.com/light-bringer/shopfront-service/internal/app/shop/contracts"
	"github.com/light-bringer/shopfront-service/internal/app/shop/domain"
)

// Request starts or resumes a session. Token is the stored bearer token,
// empty when the client has none.
type Request struct {
	ResumeID string
	Token    string
}

// Response carries the session and whether the supplied token was dropped.
type Response struct {
	Session        contracts.SessionView
	TokenDiscarded bool
}

// Interactor handles the open session use case.
type Interactor struct {
	sessions contracts.SessionStore
}

// NewInteractor creates a new open session interactor.
func NewInteractor(sessions contracts.SessionStore) *Interactor {
	return &Interactor{
		sessions: sessions,
	}
}

// Execute opens the session and derives its claims from the stored token.
// An undecodable token does not fail the call: the session stays anonymous
// and TokenDiscarded tells the client to drop its copy.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	view, err := i.sessions.Open(ctx, req.ResumeID)
	if err != nil {
		return nil, err
	}

	resp := &Response{}
	if req.Token != "" {
		if _, err := i.sessions.Login(ctx, view.ID, req.Token); err != nil {
			if !errors.Is(err, domain.ErrTokenDecode) {
				return nil, err
			}
			resp.TokenDiscarded = true
		}
	}

	resp.Session, err = i.sessions.Get(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
