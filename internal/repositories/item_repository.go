package repositories

import (
	"context"
	"database/sql"
	"time"

	"invenBack/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
		INSERT INTO items (name, quantity, user_id, created_by_role, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		item.Name, item.Quantity, item.UserID, item.CreatedByRole,
	)
	if err != nil {
		return models.Item{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}
	item.ID = int(id)
	return r.GetItemByID(ctx, item.ID)
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	query := `
		SELECT id, name, quantity, user_id, created_by_role, created_at, updated_at
		FROM items
		WHERE id = ?
	`

	var item models.Item
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Quantity, &item.UserID, &item.CreatedByRole,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (r *ItemRepository) GetItems(ctx context.Context, limit, offset int) ([]models.Item, error) {
	query := `
		SELECT id, name, quantity, user_id, created_by_role, created_at, updated_at
		FROM items
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *ItemRepository) GetItemsByUserID(ctx context.Context, userID, limit, offset int) ([]models.Item, error) {
	query := `
		SELECT id, name, quantity, user_id, created_by_role, created_at, updated_at
		FROM items
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// UpdateItem persists name and quantity only. Ownership and the creator
// role snapshot are write-once and never part of the SET clause.
func (r *ItemRepository) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
        UPDATE items
        SET name = ?, quantity = ?, updated_at = ?
        WHERE id = ?
    `
	updatedAt := time.Now()
	item.UpdatedAt = &updatedAt
	// RowsAffected is not checked here: the driver counts changed rows,
	// so a resubmit of the current values would report zero even though
	// the row exists. The re-read below surfaces a vanished row instead.
	_, err := r.DB.ExecContext(ctx, query,
		item.Name, item.Quantity, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return models.Item{}, err
	}

	return r.GetItemByID(ctx, item.ID)
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id int) error {
	query := `DELETE FROM items WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

func scanItems(rows *sql.Rows) ([]models.Item, error) {
	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Quantity, &item.UserID, &item.CreatedByRole,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
