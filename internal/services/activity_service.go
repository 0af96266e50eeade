package services

import (
	"context"
	"log"

	"invenBack/internal/models"
)

// activityFeedLimit caps the feed at the newest 50 records.
const activityFeedLimit = 50

type ActivityRepo interface {
	CreateActivity(ctx context.Context, rec models.ActivityRecord) error
	GetAllActivity(ctx context.Context, limit int) ([]models.ActivityRecord, error)
	GetActivityByUserID(ctx context.Context, userID, limit int) ([]models.ActivityRecord, error)
}

type ActivityService struct {
	ActivityRepo ActivityRepo
	ErrorLog     *log.Logger
}

// Record appends one audit record, best effort. A persistence failure is
// reported to the error log and swallowed so it can never fail the
// business operation that triggered it. One attempt, no retries.
func (s *ActivityService) Record(ctx context.Context, userID int, action string, metadata map[string]any) {
	rec := models.ActivityRecord{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}
	if err := s.ActivityRepo.CreateActivity(ctx, rec); err != nil {
		if s.ErrorLog != nil {
			s.ErrorLog.Printf("failed to log activity %s for user %d: %v", action, userID, err)
			return
		}
		log.Printf("failed to log activity %s for user %d: %v", action, userID, err)
	}
}

// GetActivityFeed returns the newest records, newest first. Admins see
// every actor's records, everyone else only their own.
func (s *ActivityService) GetActivityFeed(ctx context.Context, requester models.Claims) ([]models.ActivityRecord, error) {
	if requester.Role == models.RoleAdmin {
		return s.ActivityRepo.GetAllActivity(ctx, activityFeedLimit)
	}
	return s.ActivityRepo.GetActivityByUserID(ctx, requester.UserID, activityFeedLimit)
}
