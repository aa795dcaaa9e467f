package candidatestore

import (
	"context"
	"sort"
	"sync"
	"time"

	dbmodels "talent-tracker-backend/models/db"
)

// NewMemInstance хранилище в памяти, для тестов и локального запуска без БД
func NewMemInstance() Provider {
	return &memImpl{
		byID: map[uint]dbmodels.Candidate{},
	}
}

type memImpl struct {
	mu     sync.Mutex
	lastID uint
	byID   map[uint]dbmodels.Candidate
}

func (m *memImpl) Create(ctx context.Context, rec dbmodels.Candidate) (*dbmodels.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.byID {
		if item.Email == rec.Email {
			return nil, ErrDuplicateEmail
		}
	}
	m.lastID++
	now := time.Now()
	rec.ID = m.lastID
	rec.CreatedAt = now
	rec.UpdatedAt = now
	m.byID[rec.ID] = rec
	return &rec, nil
}

func (m *memImpl) FindByEmail(ctx context.Context, email string) (*dbmodels.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.byID {
		if item.Email == email {
			return &item, nil
		}
	}
	return nil, nil
}

func (m *memImpl) FindByID(ctx context.Context, id uint) (*dbmodels.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *memImpl) ListAll(ctx context.Context) ([]dbmodels.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]dbmodels.Candidate, 0, len(m.byID))
	for _, item := range m.byID {
		list = append(list, item)
	}
	sort.Slice(list, func(a, b int) bool {
		if list[a].CreatedAt.Equal(list[b].CreatedAt) {
			return list[a].ID > list[b].ID
		}
		return list[a].CreatedAt.After(list[b].CreatedAt)
	})
	return list, nil
}
