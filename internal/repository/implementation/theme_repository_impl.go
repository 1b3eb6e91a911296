package implementation

import (
	"context"

	"ai-lifecoach-be/internal/entity"
	"ai-lifecoach-be/internal/mapper"
	"ai-lifecoach-be/internal/repository/contract"

	"github.com/jomei/notionapi"
)

// themePageSize bounds the existing-theme fetch. One query, no cursor
// follow-up; a personal journal stays well under this.
const themePageSize = 100

type ThemeRepositoryImpl struct {
	client     *notionapi.Client
	databaseId notionapi.DatabaseID
	mapper     *mapper.ThemeMapper
}

func NewThemeRepository(client *notionapi.Client, databaseId string) contract.ThemeRepository {
	return &ThemeRepositoryImpl{
		client:     client,
		databaseId: notionapi.DatabaseID(databaseId),
		mapper:     mapper.NewThemeMapper(),
	}
}

func (r *ThemeRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Theme, error) {
	resp, err := r.client.Database.Query(ctx, r.databaseId, &notionapi.DatabaseQueryRequest{
		PageSize: themePageSize,
	})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(resp.Results), nil
}

func (r *ThemeRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.Theme, error) {
	resp, err := r.client.Database.Query(ctx, r.databaseId, &notionapi.DatabaseQueryRequest{
		Filter: &notionapi.PropertyFilter{
			Property: mapper.PropThemeName,
			RichText: &notionapi.TextFilterCondition{Equals: name},
		},
		PageSize: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	return r.mapper.ToEntity(&resp.Results[0]), nil
}

func (r *ThemeRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Theme, error) {
	page, err := r.client.Page.Get(ctx, notionapi.PageID(id))
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(page), nil
}

func (r *ThemeRepositoryImpl) Create(ctx context.Context, theme *entity.Theme) error {
	page, err := r.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: r.databaseId,
		},
		Properties: r.mapper.ToProperties(theme),
	})
	if err != nil {
		return err
	}
	theme.Id = string(page.ID)
	return nil
}
