package repositories

import (
	"context"
	"database/sql"
	"encoding/json"

	"invenBack/internal/models"
)

// ActivityRepository appends and reads audit records. The table is
// append-only; there are no update or delete statements here on purpose.
type ActivityRepository struct {
	DB *sql.DB
}

func (r *ActivityRepository) CreateActivity(ctx context.Context, rec models.ActivityRecord) error {
	var metadata any
	if len(rec.Metadata) > 0 {
		raw, err := json.Marshal(rec.Metadata)
		if err != nil {
			return err
		}
		metadata = raw
	}

	query := `
		INSERT INTO activity_logs (user_id, action, metadata, created_at)
		VALUES (?, ?, ?, NOW())
	`
	_, err := r.DB.ExecContext(ctx, query, rec.UserID, rec.Action, metadata)
	return err
}

func (r *ActivityRepository) GetAllActivity(ctx context.Context, limit int) ([]models.ActivityRecord, error) {
	query := `
		SELECT id, user_id, action, metadata, created_at
		FROM activity_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivity(rows)
}

func (r *ActivityRepository) GetActivityByUserID(ctx context.Context, userID, limit int) ([]models.ActivityRecord, error) {
	query := `
		SELECT id, user_id, action, metadata, created_at
		FROM activity_logs
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivity(rows)
}

func scanActivity(rows *sql.Rows) ([]models.ActivityRecord, error) {
	var records []models.ActivityRecord
	for rows.Next() {
		var (
			rec      models.ActivityRecord
			userID   sql.NullInt64
			metadata []byte
		)
		if err := rows.Scan(&rec.ID, &userID, &rec.Action, &metadata, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.UserID = int(userID.Int64)
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &rec.Metadata); err != nil {
				return nil, err
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
