package services

import (
	"context"
	"strings"

	"invenBack/internal/models"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

type ItemRepo interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItemByID(ctx context.Context, id int) (models.Item, error)
	GetItems(ctx context.Context, limit, offset int) ([]models.Item, error)
	GetItemsByUserID(ctx context.Context, userID, limit, offset int) ([]models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, id int) error
}

// Recorder is the audit side-channel. Implementations must never fail
// the caller.
type Recorder interface {
	Record(ctx context.Context, userID int, action string, metadata map[string]any)
}

type ItemService struct {
	ItemRepo ItemRepo
	Activity Recorder
}

// GetItems returns a page of items scoped by role: admins get everything,
// everyone else gets a query filtered to their own id. Scoping happens in
// the query, not by post-filtering, so other users' records never leave
// the store. Admin results carry an is_owner flag per item; for non-admins
// the flag would always be true, so it is omitted.
func (s *ItemService) GetItems(ctx context.Context, requester models.Claims, page, limit int) ([]models.Item, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	if requester.Role == models.RoleAdmin {
		items, err := s.ItemRepo.GetItems(ctx, limit, offset)
		if err != nil {
			return nil, err
		}
		for i := range items {
			owned := items[i].UserID == requester.UserID
			items[i].IsOwner = &owned
		}
		return items, nil
	}

	return s.ItemRepo.GetItemsByUserID(ctx, requester.UserID, limit, offset)
}

func (s *ItemService) GetItemByID(ctx context.Context, requester models.Claims, id int) (models.Item, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}

	if !CanAccess(requester, item.UserID) {
		return models.Item{}, models.ErrForbidden
	}

	if requester.Role == models.RoleAdmin {
		owned := item.UserID == requester.UserID
		item.IsOwner = &owned
	}
	return item, nil
}

// CreateItem validates the input, stamps ownership and the creator-role
// snapshot from the requester and emits a CREATE_ITEM record after the
// item exists.
func (s *ItemService) CreateItem(ctx context.Context, requester models.Claims, item models.Item) (models.Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return models.Item{}, models.ErrEmptyItemName
	}
	if item.Quantity < 0 {
		return models.Item{}, models.ErrNegativeQuantity
	}

	item.UserID = requester.UserID
	item.CreatedByRole = requester.Role

	created, err := s.ItemRepo.CreateItem(ctx, item)
	if err != nil {
		return models.Item{}, err
	}

	s.Activity.Record(ctx, requester.UserID, models.ActionCreateItem, map[string]any{
		"item_id":   created.ID,
		"item_name": created.Name,
	})
	return created, nil
}

// UpdateItem applies a partial update. Existence is checked before the
// access policy, so a missing id is always NotFound and an inaccessible
// one always Forbidden. Ownership and created_by_role are not touchable
// through this path.
func (s *ItemService) UpdateItem(ctx context.Context, requester models.Claims, id int, upd models.ItemUpdate) (models.Item, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}

	if !CanAccess(requester, item.UserID) {
		return models.Item{}, models.ErrForbidden
	}

	if upd.Name != nil {
		item.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Quantity != nil {
		item.Quantity = *upd.Quantity
	}
	if item.Name == "" {
		return models.Item{}, models.ErrEmptyItemName
	}
	if item.Quantity < 0 {
		return models.Item{}, models.ErrNegativeQuantity
	}

	updated, err := s.ItemRepo.UpdateItem(ctx, item)
	if err != nil {
		return models.Item{}, err
	}

	s.Activity.Record(ctx, requester.UserID, models.ActionUpdateItem, map[string]any{
		"item_id":   updated.ID,
		"item_name": updated.Name,
	})
	return updated, nil
}

// DeleteItem removes the item and emits a DELETE_ITEM record carrying the
// pre-deletion name.
func (s *ItemService) DeleteItem(ctx context.Context, requester models.Claims, id int) error {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanAccess(requester, item.UserID) {
		return models.ErrForbidden
	}

	if err := s.ItemRepo.DeleteItem(ctx, id); err != nil {
		return err
	}

	s.Activity.Record(ctx, requester.UserID, models.ActionDeleteItem, map[string]any{
		"item_id":   item.ID,
		"item_name": item.Name,
	})
	return nil
}
