package implementation

import (
	"context"

	"ai-lifecoach-be/internal/entity"
	"ai-lifecoach-be/internal/mapper"
	"ai-lifecoach-be/internal/repository/contract"

	"github.com/jomei/notionapi"
)

type ReflectionRepositoryImpl struct {
	client     *notionapi.Client
	databaseId notionapi.DatabaseID
	mapper     *mapper.ReflectionMapper
}

func NewReflectionRepository(client *notionapi.Client, databaseId string) contract.ReflectionRepository {
	return &ReflectionRepositoryImpl{
		client:     client,
		databaseId: notionapi.DatabaseID(databaseId),
		mapper:     mapper.NewReflectionMapper(),
	}
}

func (r *ReflectionRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*entity.Reflection, error) {
	resp, err := r.client.Database.Query(ctx, r.databaseId, &notionapi.DatabaseQueryRequest{
		Sorts: []notionapi.SortObject{
			{Property: mapper.PropSessionDate, Direction: notionapi.SortOrderDESC},
		},
		PageSize: limit,
	})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(resp.Results), nil
}

func (r *ReflectionRepositoryImpl) Create(ctx context.Context, reflection *entity.Reflection) error {
	page, err := r.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: r.databaseId,
		},
		Properties: r.mapper.ToProperties(reflection),
	})
	if err != nil {
		return err
	}
	reflection.Id = string(page.ID)
	return nil
}
