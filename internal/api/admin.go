package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tapfolio/tapfolio/internal/card"
)

// AdminStats summarizes the card inventory and user base.
type AdminStats struct {
	TotalCards     int `json:"totalCards"`
	ClaimedCards   int `json:"claimedCards"`
	UnclaimedCards int `json:"unclaimedCards"`
	TotalUsers     int `json:"totalUsers"`
}

// Page carries the backend's pagination envelope.
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Pages derives the page count; the backend sends no explicit field for it.
func (p Page) Pages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}

// AdminCardsPage is one page of the card inventory.
type AdminCardsPage struct {
	Cards []card.Card `json:"cards"`
	Page
}

// AdminUsersPage is one page of registered users.
type AdminUsersPage struct {
	Users []User `json:"users"`
	Page
}

// AdminStats fetches inventory and user totals. Requires the admin role;
// non-admins get a forbidden error.
func (c *Client) AdminStats(ctx context.Context) (*AdminStats, error) {
	var out AdminStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminCards lists the card inventory. The claimed filter is tri-state:
// nil means all cards.
func (c *Client) AdminCards(ctx context.Context, page, limit int, claimed *bool) (*AdminCardsPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	if claimed != nil {
		params.Set("claimed", strconv.FormatBool(*claimed))
	}

	var out AdminCardsPage
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/cards?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUsers lists registered users.
func (c *Client) AdminUsers(ctx context.Context, page, limit int) (*AdminUsersPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var out AdminUsersPage
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminCreateCards provisions count new unclaimed cards and returns them.
func (c *Client) AdminCreateCards(ctx context.Context, count int) ([]card.Card, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1")
	}
	var out struct {
		Cards []card.Card `json:"cards"`
	}
	body := map[string]int{"count": count}
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/cards", body, &out); err != nil {
		return nil, err
	}
	return out.Cards, nil
}

// AdminDeleteCard removes a card from the inventory.
func (c *Client) AdminDeleteCard(ctx context.Context, uuid string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/cards/"+uuid, nil, nil)
}
