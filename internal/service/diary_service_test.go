package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"moodly-be/internal/cache"
	"moodly-be/internal/entities"
	"moodly-be/internal/models"
)

// fakeDiaryRepo implements repository.DiaryRepository for testing.
type fakeDiaryRepo struct {
	listFn   func(userID int64) ([]*entities.DiaryEntry, error)
	createFn func(userID int64, conteudo, humor, dataEntrada string) (int64, error)
	updateFn func(userID, entryID int64, conteudo, humor, dataEntrada string) (bool, error)
	deleteFn func(userID, entryID int64) (bool, error)

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeDiaryRepo) ListByUser(userID int64) ([]*entities.DiaryEntry, error) {
	f.listCalls++
	if f.listFn != nil {
		return f.listFn(userID)
	}
	return []*entities.DiaryEntry{}, nil
}

func (f *fakeDiaryRepo) Create(userID int64, conteudo, humor, dataEntrada string) (int64, error) {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(userID, conteudo, humor, dataEntrada)
	}
	return 1, nil
}

func (f *fakeDiaryRepo) Update(userID, entryID int64, conteudo, humor, dataEntrada string) (bool, error) {
	f.updateCalls++
	if f.updateFn != nil {
		return f.updateFn(userID, entryID, conteudo, humor, dataEntrada)
	}
	return true, nil
}

func (f *fakeDiaryRepo) SoftDelete(userID, entryID int64) (bool, error) {
	f.deleteCalls++
	if f.deleteFn != nil {
		return f.deleteFn(userID, entryID)
	}
	return true, nil
}

// fakeCache is an in-memory cache.Cache.
type fakeCache struct {
	store   map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	delete(f.store, key)
	return nil
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = data
	return nil
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, ok := f.store[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func validEntryReq() *models.DiaryEntryRequest {
	return &models.DiaryEntryRequest{
		Conteudo:    "dia bom",
		Humor:       "feliz",
		DataEntrada: "2024-01-15",
	}
}

func TestCreate_RejectsBadDates(t *testing.T) {
	repo := &fakeDiaryRepo{}
	svc := NewDiaryService(repo, nil)

	badDates := []string{"2024-1-15", "15-01-2024", "2024/01/15", "20240115", "2024-01-15T00:00:00", "abcd-ef-gh"}
	for _, d := range badDates {
		req := validEntryReq()
		req.DataEntrada = d
		_, err := svc.Create(1, req)
		if err == nil {
			t.Fatalf("expected validation error for date %q", d)
		}
		if code := statusOf(t, err); code != http.StatusBadRequest {
			t.Fatalf("expected 400 for date %q, got %d", d, code)
		}
	}
	if repo.createCalls != 0 {
		t.Fatalf("validation must fail before storage access")
	}
}

func TestCreate_RejectsMissingFields(t *testing.T) {
	svc := NewDiaryService(&fakeDiaryRepo{}, nil)

	cases := []models.DiaryEntryRequest{
		{Humor: "feliz", DataEntrada: "2024-01-15"},
		{Conteudo: "dia bom", DataEntrada: "2024-01-15"},
		{Conteudo: "dia bom", Humor: "feliz"},
	}
	for _, req := range cases {
		if _, err := svc.Create(1, &req); err == nil {
			t.Fatalf("expected validation error for %+v", req)
		}
	}
}

func TestCreate_Success_ScopedToUser(t *testing.T) {
	var gotUserID int64
	repo := &fakeDiaryRepo{
		createFn: func(userID int64, conteudo, humor, dataEntrada string) (int64, error) {
			gotUserID = userID
			return 33, nil
		},
	}
	c := newFakeCache()
	svc := NewDiaryService(repo, c)

	resp, err := svc.Create(9, validEntryReq())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if resp.InsertID != 33 {
		t.Fatalf("unexpected insert id: %d", resp.InsertID)
	}
	if gotUserID != 9 {
		t.Fatalf("create not scoped to caller: got user %d", gotUserID)
	}
	if len(c.deletes) != 1 || c.deletes[0] != "diary:user:9" {
		t.Fatalf("expected list cache invalidation, got %v", c.deletes)
	}
}

func TestUpdate_ValidatesDateOnUpdateToo(t *testing.T) {
	repo := &fakeDiaryRepo{}
	svc := NewDiaryService(repo, nil)

	req := validEntryReq()
	req.DataEntrada = "not-a-date"
	err := svc.Update(1, 2, req)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if repo.updateCalls != 0 {
		t.Fatalf("validation must fail before storage access")
	}
}

func TestUpdate_NotFoundIsUniform(t *testing.T) {
	// Missing, foreign-owned and soft-deleted all surface as a single
	// "no row matched" from the repository
	repo := &fakeDiaryRepo{
		updateFn: func(userID, entryID int64, conteudo, humor, dataEntrada string) (bool, error) {
			return false, nil
		},
	}
	svc := NewDiaryService(repo, nil)

	err := svc.Update(1, 99, validEntryReq())
	if err == nil {
		t.Fatalf("expected not found error")
	}
	if code := statusOf(t, err); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeDiaryRepo{
		deleteFn: func(userID, entryID int64) (bool, error) {
			return false, nil
		},
	}
	c := newFakeCache()
	svc := NewDiaryService(repo, c)

	err := svc.Delete(1, 99)
	if err == nil {
		t.Fatalf("expected not found error")
	}
	if code := statusOf(t, err); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if len(c.deletes) != 0 {
		t.Fatalf("failed delete must not invalidate cache")
	}
}

func TestDelete_Success_InvalidatesCache(t *testing.T) {
	repo := &fakeDiaryRepo{}
	c := newFakeCache()
	svc := NewDiaryService(repo, c)

	if err := svc.Delete(4, 10); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(c.deletes) != 1 || c.deletes[0] != "diary:user:4" {
		t.Fatalf("expected cache invalidation for user 4, got %v", c.deletes)
	}
}

func TestList_FormatsDatesAndCaches(t *testing.T) {
	entryDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeDiaryRepo{
		listFn: func(userID int64) ([]*entities.DiaryEntry, error) {
			return []*entities.DiaryEntry{
				{ID: 1, Conteudo: "dia bom", Humor: "feliz", EntryDate: entryDate},
			}, nil
		},
	}
	c := newFakeCache()
	svc := NewDiaryService(repo, c)

	entries, err := svc.List(3)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].DataEntrada != "2024-01-15" {
		t.Fatalf("unexpected date format: %q", entries[0].DataEntrada)
	}

	// Second call is served from cache
	if _, err := svc.List(3); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected cache hit on second list, repo called %d times", repo.listCalls)
	}
}

func TestList_NoCacheGoesStraightToRepo(t *testing.T) {
	repo := &fakeDiaryRepo{}
	svc := NewDiaryService(repo, nil)

	if _, err := svc.List(1); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if _, err := svc.List(1); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected repo on every list without cache, got %d calls", repo.listCalls)
	}
}
