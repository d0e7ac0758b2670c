package api

import (
	"context"
	"net/http"

	"github.com/tapfolio/tapfolio/internal/card"
)

// CardStatus is the descriptor returned for a card lookup. Unclaimed cards
// carry a message instead of the record; not-found comes back as a
// KindNotFound error so callers can render a distinct missing-card state.
type CardStatus struct {
	UUID    string     `json:"uuid"`
	Claimed bool       `json:"claimed"`
	Card    *card.Card `json:"card,omitempty"`
	Message string     `json:"message,omitempty"`
}

// ListCards returns the authenticated user's cards.
func (c *Client) ListCards(ctx context.Context) ([]card.Card, error) {
	var out struct {
		Cards []card.Card `json:"cards"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/cards", nil, &out); err != nil {
		return nil, err
	}
	return out.Cards, nil
}

// GetCard fetches a card by identifier.
func (c *Client) GetCard(ctx context.Context, uuid string) (*CardStatus, error) {
	var out CardStatus
	if err := c.doJSON(ctx, http.MethodGet, "/api/cards/"+uuid, nil, &out); err != nil {
		return nil, err
	}
	if out.UUID == "" {
		out.UUID = uuid
	}
	return &out, nil
}

// ClaimCard binds the unclaimed card to the current user as owner. Claiming
// a card already held by someone else returns a conflict error; local state
// is never mutated here.
func (c *Client) ClaimCard(ctx context.Context, uuid string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/cards/"+uuid+"/claim", nil, nil)
}

// UpdateCard persists a partial update. Only the top-level keys present in
// payload are changed by the backend.
func (c *Client) UpdateCard(ctx context.Context, uuid string, payload map[string]any) (*card.Card, error) {
	var out struct {
		Card *card.Card `json:"card"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/api/cards/"+uuid, payload, &out); err != nil {
		return nil, err
	}
	return out.Card, nil
}
