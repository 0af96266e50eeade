package models

import "time"

// Activity action tags. Each successful qualifying operation produces
// exactly one record with one of these.
const (
	ActionRegister   = "REGISTER"
	ActionLogin      = "LOGIN"
	ActionCreateItem = "CREATE_ITEM"
	ActionUpdateItem = "UPDATE_ITEM"
	ActionDeleteItem = "DELETE_ITEM"
)

// ActivityRecord is an append-only audit entry. UserID is kept even if
// the user is later deleted, so there is no FK behind it.
type ActivityRecord struct {
	ID        int            `json:"id"`
	UserID    int            `json:"user_id"`
	Action    string         `json:"action"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
