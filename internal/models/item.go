package models

import "time"

// Item is a user-owned inventory entry. UserID and CreatedByRole are set
// once at creation and never change afterwards; CreatedByRole is
// informational metadata and is not an access-control input.
type Item struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Quantity      int        `json:"quantity"`
	UserID        int        `json:"user_id"`
	CreatedByRole Role       `json:"created_by_role"`
	IsOwner       *bool      `json:"is_owner,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ItemUpdate carries a partial update. Nil fields are left untouched.
type ItemUpdate struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
}
