package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-lifecoach-be/internal/dto"
	"ai-lifecoach-be/internal/entity"
	"ai-lifecoach-be/internal/pkg/logger"
	"ai-lifecoach-be/internal/repository/contract"
	"ai-lifecoach-be/pkg/ingest"

	"github.com/google/uuid"
)

// recentPageSize is the fixed reader page. No pagination.
const recentPageSize = 10

const dueDateOffsetDays = 7

var ErrDraftNotFound = errors.New("draft not found or expired")

type IReflectionService interface {
	GetRecent(ctx context.Context) (*dto.GetRecentReflectionsResponse, error)
	Parse(ctx context.Context, req *dto.ParseReflectionRequest) (*dto.ParseReflectionResponse, error)
	Commit(ctx context.Context, req *dto.CommitReflectionRequest) (*dto.CommitReflectionResponse, error)
}

type reflectionService struct {
	reflectionRepo contract.ReflectionRepository
	actionItemRepo contract.ActionItemRepository
	readingRepo    contract.ReadingRepository
	draftRepo      contract.DraftRepository
	themeService   IThemeService
	logger         logger.ILogger
}

func NewReflectionService(
	reflectionRepo contract.ReflectionRepository,
	actionItemRepo contract.ActionItemRepository,
	readingRepo contract.ReadingRepository,
	draftRepo contract.DraftRepository,
	themeService IThemeService,
	logger logger.ILogger,
) IReflectionService {
	return &reflectionService{
		reflectionRepo: reflectionRepo,
		actionItemRepo: actionItemRepo,
		readingRepo:    readingRepo,
		draftRepo:      draftRepo,
		themeService:   themeService,
		logger:         logger,
	}
}

// GetRecent is the reader flow: the latest reflections sorted by session date
// descending, each with its theme relations resolved to display names. A
// theme lookup failure turns into a warning and the reflection still renders.
func (s *reflectionService) GetRecent(ctx context.Context) (*dto.GetRecentReflectionsResponse, error) {
	reflections, err := s.reflectionRepo.FindRecent(ctx, recentPageSize)
	if err != nil {
		return nil, err
	}

	res := &dto.GetRecentReflectionsResponse{
		Reflections: make([]dto.ReflectionItemResponse, 0, len(reflections)),
		Warnings:    make([]string, 0),
	}

	for _, r := range reflections {
		names, warnings := s.themeService.DisplayNames(ctx, r.ThemeIds)
		res.Warnings = append(res.Warnings, warnings...)

		title := r.Title
		if title == "" {
			title = "Untitled"
		}

		res.Reflections = append(res.Reflections, dto.ReflectionItemResponse{
			Id:        r.Id,
			Title:     title,
			Date:      r.Date,
			Mood:      r.Mood,
			Intensity: r.Intensity,
			Summary:   r.Summary,
			Insights:  r.Insights,
			Themes:    strings.Join(names, ", "),
		})
	}

	return res, nil
}

// Parse is step one of the ingester: normalize the raw blob, partition its
// themes against the existing theme names (fetched fresh), and park the
// result as a draft for the confirmation step.
func (s *reflectionService) Parse(ctx context.Context, req *dto.ParseReflectionRequest) (*dto.ParseReflectionResponse, error) {
	record, err := ingest.Parse(req.RawText, time.Now())
	if err != nil {
		return nil, err
	}

	existing, err := s.themeService.ExistingNames(ctx)
	if err != nil {
		return nil, err
	}
	known, newThemes := ingest.PartitionThemes(record.Themes, existing)

	draft := &entity.Draft{
		Id:          uuid.NewString(),
		Record:      record,
		KnownThemes: known,
		NewThemes:   newThemes,
		CreatedAt:   time.Now(),
	}
	s.draftRepo.Save(draft)

	return &dto.ParseReflectionResponse{
		DraftId: draft.Id,
		Parsed: dto.ParsedReflection{
			Title:       record.Title,
			Date:        record.Date,
			Mood:        record.Mood,
			Intensity:   record.Intensity,
			Summary:     record.Summary,
			Insights:    record.Insights,
			Themes:      record.Themes,
			ActionItems: record.ActionItems,
			Readings:    record.Readings,
		},
		KnownThemes: known,
		NewThemes:   newThemes,
	}, nil
}

// Commit is step two: resolve the confirmed theme names, create the
// reflection, then its action items and readings, strictly in that order.
// Any remote rejection halts the remaining creates. Nothing already created
// is rolled back; a partial submission is the documented outcome.
func (s *reflectionService) Commit(ctx context.Context, req *dto.CommitReflectionRequest) (*dto.CommitReflectionResponse, error) {
	draft, ok := s.draftRepo.Get(req.DraftId)
	if !ok {
		return nil, ErrDraftNotFound
	}

	// A nil theme list means the user confirmed the parse as-is.
	themes := req.Themes
	if themes == nil {
		themes = append(append([]string{}, draft.KnownThemes...), draft.NewThemes...)
	}

	themeIds, err := s.themeService.ResolveIds(ctx, themes)
	if err != nil {
		return nil, err
	}

	record := draft.Record
	reflection := &entity.Reflection{
		Title:     record.Title,
		Date:      record.Date,
		Mood:      record.Mood,
		Intensity: record.Intensity,
		Summary:   record.Summary,
		Insights:  record.Insights,
		ThemeIds:  themeIds,
	}
	if err := s.reflectionRepo.Create(ctx, reflection); err != nil {
		return nil, fmt.Errorf("create reflection: %w", err)
	}

	dueDate := time.Now().AddDate(0, 0, dueDateOffsetDays).Format("2006-01-02")

	itemIds := make([]string, 0, len(record.ActionItems))
	for _, name := range record.ActionItems {
		item := &entity.ActionItem{
			Name:         name,
			ReflectionId: reflection.Id,
			DueDate:      dueDate,
			ThemeIds:     themeIds,
		}
		if err := s.actionItemRepo.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("create action item %q: %w", name, err)
		}
		itemIds = append(itemIds, item.Id)
	}

	readingIds := make([]string, 0, len(record.Readings))
	for _, name := range record.Readings {
		reading := &entity.Reading{
			Name:         name,
			ReflectionId: reflection.Id,
			ThemeIds:     themeIds,
		}
		if err := s.readingRepo.Create(ctx, reading); err != nil {
			return nil, fmt.Errorf("create reading %q: %w", name, err)
		}
		readingIds = append(readingIds, reading.Id)
	}

	s.draftRepo.Delete(req.DraftId)

	s.logger.Info("reflection", "reflection committed", map[string]interface{}{
		"id":           reflection.Id,
		"action_items": len(itemIds),
		"readings":     len(readingIds),
		"themes":       len(themeIds),
	})

	return &dto.CommitReflectionResponse{
		Id:            reflection.Id,
		ActionItemIds: itemIds,
		ReadingIds:    readingIds,
	}, nil
}
