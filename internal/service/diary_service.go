package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"moodly-be/internal/apperrors"
	"moodly-be/internal/cache"
	"moodly-be/internal/models"
	"moodly-be/internal/repository"
)

// DiaryService defines the interface for diary business logic. Every
// operation is scoped by the authenticated user's id.
type DiaryService interface {
	List(userID int64) ([]models.DiaryEntryResponse, error)
	Create(userID int64, req *models.DiaryEntryRequest) (*models.CreateEntryResponse, error)
	Update(userID, entryID int64, req *models.DiaryEntryRequest) error
	Delete(userID, entryID int64) error
}

type diaryService struct {
	repo  repository.DiaryRepository
	cache cache.Cache
	ctx   context.Context
}

// NewDiaryService creates a new diary service
func NewDiaryService(repo repository.DiaryRepository, cacheClient cache.Cache) DiaryService {
	svc := &diaryService{
		repo: repo,
		ctx:  context.Background(),
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// Shape check only; calendar validity is not enforced
var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const listCacheTTL = 5 * time.Minute

func listCacheKey(userID int64) string {
	return fmt.Sprintf("diary:user:%d", userID)
}

func validateEntry(req *models.DiaryEntryRequest) error {
	if req.Conteudo == "" || req.Humor == "" || req.DataEntrada == "" {
		return apperrors.NewValidation("conteudo, humor and data_entrada are required")
	}
	if !dateFormat.MatchString(req.DataEntrada) {
		return apperrors.NewValidation("data_entrada must be in YYYY-MM-DD format")
	}
	return nil
}

// List returns all non-deleted entries owned by userID, cache-aside.
// Cache failures fall through to the database.
func (s *diaryService) List(userID int64) ([]models.DiaryEntryResponse, error) {
	cacheKey := listCacheKey(userID)

	if s.cache != nil {
		var cached []models.DiaryEntryResponse
		if err := s.cache.GetJSON(s.ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	responses := make([]models.DiaryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, models.DiaryEntryResponse{
			ID:          entry.ID,
			Conteudo:    entry.Conteudo,
			Humor:       entry.Humor,
			DataEntrada: entry.EntryDate.Format("2006-01-02"),
		})
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, cacheKey, responses, listCacheTTL)
	}

	return responses, nil
}

// Create inserts a new entry owned by userID
func (s *diaryService) Create(userID int64, req *models.DiaryEntryRequest) (*models.CreateEntryResponse, error) {
	if err := validateEntry(req); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(userID, req.Conteudo, req.Humor, req.DataEntrada)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	s.invalidateList(userID)

	return &models.CreateEntryResponse{
		Message:  "entry created successfully",
		InsertID: id,
	}, nil
}

// Update overwrites an entry owned by userID. Missing, foreign-owned,
// and soft-deleted entries all report not found.
func (s *diaryService) Update(userID, entryID int64, req *models.DiaryEntryRequest) error {
	if err := validateEntry(req); err != nil {
		return err
	}

	found, err := s.repo.Update(userID, entryID, req.Conteudo, req.Humor, req.DataEntrada)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if !found {
		return apperrors.NewNotFound("entry not found")
	}

	s.invalidateList(userID)
	return nil
}

// Delete soft-deletes an entry owned by userID. A second delete of the
// same entry reports not found; the marker stays set either way.
func (s *diaryService) Delete(userID, entryID int64) error {
	found, err := s.repo.SoftDelete(userID, entryID)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if !found {
		return apperrors.NewNotFound("entry not found")
	}

	s.invalidateList(userID)
	return nil
}

func (s *diaryService) invalidateList(userID int64) {
	if s.cache != nil {
		s.cache.Delete(s.ctx, listCacheKey(userID))
	}
}
