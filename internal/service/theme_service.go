package service

import (
	"context"
	"fmt"

	"ai-lifecoach-be/internal/dto"
	"ai-lifecoach-be/internal/entity"
	"ai-lifecoach-be/internal/pkg/logger"
	"ai-lifecoach-be/internal/repository/contract"
)

type IThemeService interface {
	GetAll(ctx context.Context) (*dto.GetAllThemesResponse, error)
	ExistingNames(ctx context.Context) ([]string, error)
	DisplayNames(ctx context.Context, ids []string) (names []string, warnings []string)
	ResolveIds(ctx context.Context, names []string) ([]string, error)
}

type themeService struct {
	themeRepo contract.ThemeRepository
	logger    logger.ILogger
}

func NewThemeService(themeRepo contract.ThemeRepository, logger logger.ILogger) IThemeService {
	return &themeService{
		themeRepo: themeRepo,
		logger:    logger,
	}
}

func (s *themeService) GetAll(ctx context.Context) (*dto.GetAllThemesResponse, error) {
	themes, err := s.themeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.GetAllThemesResponse{Themes: make([]dto.ThemeResponse, 0, len(themes))}
	for _, t := range themes {
		res.Themes = append(res.Themes, dto.ThemeResponse{Id: t.Id, Name: t.Name})
	}
	return res, nil
}

// ExistingNames fetches the full theme name list, fresh on every call.
// Nothing is cached between interactions.
func (s *themeService) ExistingNames(ctx context.Context) ([]string, error) {
	themes, err := s.themeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(themes))
	for _, t := range themes {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return names, nil
}

// DisplayNames resolves theme relation ids to display names, one remote read
// per id. A failed lookup degrades to a warning; the remaining ids still
// resolve.
func (s *themeService) DisplayNames(ctx context.Context, ids []string) ([]string, []string) {
	names := make([]string, 0, len(ids))
	warnings := make([]string, 0)

	for _, id := range ids {
		theme, err := s.themeRepo.FindById(ctx, id)
		if err != nil {
			s.logger.Warn("theme", "failed to fetch theme", map[string]interface{}{
				"theme_id": id,
				"error":    err.Error(),
			})
			warnings = append(warnings, fmt.Sprintf("failed to fetch theme %s: %v", id, err))
			continue
		}
		if theme != nil && theme.Name != "" {
			names = append(names, theme.Name)
		}
	}
	return names, warnings
}

// ResolveIds maps each confirmed theme name to a remote id: an exact-match
// lookup first, a create on miss. Read-then-write with no transaction, so two
// concurrent submissions can both create the same name. Accepted for a
// single-user tool.
func (s *themeService) ResolveIds(ctx context.Context, names []string) ([]string, error) {
	ids := make([]string, 0, len(names))

	for _, name := range names {
		theme, err := s.themeRepo.FindByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("lookup theme %q: %w", name, err)
		}
		if theme == nil {
			theme = &entity.Theme{Name: name}
			if err := s.themeRepo.Create(ctx, theme); err != nil {
				return nil, fmt.Errorf("create theme %q: %w", name, err)
			}
			s.logger.Info("theme", "created new theme", map[string]interface{}{
				"name": name,
				"id":   theme.Id,
			})
		}
		ids = append(ids, theme.Id)
	}
	return ids, nil
}
