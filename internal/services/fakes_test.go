package services

import (
	"context"
	"sort"
	"time"

	"invenBack/internal/models"
)

type fakeItemRepo struct {
	items  map[int]models.Item
	nextID int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[int]models.Item)}
}

func (f *fakeItemRepo) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	f.nextID++
	item.ID = f.nextID
	item.CreatedAt = time.Now()
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeItemRepo) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeItemRepo) GetItems(ctx context.Context, limit, offset int) ([]models.Item, error) {
	return paginate(f.all(), limit, offset), nil
}

func (f *fakeItemRepo) GetItemsByUserID(ctx context.Context, userID, limit, offset int) ([]models.Item, error) {
	var owned []models.Item
	for _, item := range f.all() {
		if item.UserID == userID {
			owned = append(owned, item)
		}
	}
	return paginate(owned, limit, offset), nil
}

// UpdateItem mirrors the SQL repository: only name, quantity and
// updated_at are written.
func (f *fakeItemRepo) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	stored, ok := f.items[item.ID]
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	now := time.Now()
	stored.Name = item.Name
	stored.Quantity = item.Quantity
	stored.UpdatedAt = &now
	f.items[item.ID] = stored
	return stored, nil
}

func (f *fakeItemRepo) DeleteItem(ctx context.Context, id int) error {
	if _, ok := f.items[id]; !ok {
		return models.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) all() []models.Item {
	items := make([]models.Item, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items
}

func paginate(items []models.Item, limit, offset int) []models.Item {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

type fakeRecorder struct {
	records []models.ActivityRecord
}

func (f *fakeRecorder) Record(ctx context.Context, userID int, action string, metadata map[string]any) {
	f.records = append(f.records, models.ActivityRecord{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	})
}

type fakeActivityRepo struct {
	records   []models.ActivityRecord
	nextID    int
	createErr error
}

func (f *fakeActivityRepo) CreateActivity(ctx context.Context, rec models.ActivityRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	rec.ID = f.nextID
	rec.CreatedAt = time.Now()
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeActivityRepo) GetAllActivity(ctx context.Context, limit int) ([]models.ActivityRecord, error) {
	return newestFirst(f.records, limit), nil
}

func (f *fakeActivityRepo) GetActivityByUserID(ctx context.Context, userID, limit int) ([]models.ActivityRecord, error) {
	var own []models.ActivityRecord
	for _, rec := range f.records {
		if rec.UserID == userID {
			own = append(own, rec)
		}
	}
	return newestFirst(own, limit), nil
}

func newestFirst(records []models.ActivityRecord, limit int) []models.ActivityRecord {
	out := make([]models.ActivityRecord, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

type fakeUserRepo struct {
	users  map[string]models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users[user.Username] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id int) (models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

type fakeSessionStore struct {
	sessions map[string]models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]models.Session)}
}

func (f *fakeSessionStore) Set(ctx context.Context, refreshToken string, session models.Session) error {
	f.sessions[refreshToken] = session
	return nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, refreshToken string) error {
	delete(f.sessions, refreshToken)
	return nil
}
