package implementation

import (
	"context"

	"ai-lifecoach-be/internal/entity"
	"ai-lifecoach-be/internal/mapper"
	"ai-lifecoach-be/internal/repository/contract"

	"github.com/jomei/notionapi"
)

type ActionItemRepositoryImpl struct {
	client     *notionapi.Client
	databaseId notionapi.DatabaseID
	mapper     *mapper.ActionItemMapper
}

func NewActionItemRepository(client *notionapi.Client, databaseId string) contract.ActionItemRepository {
	return &ActionItemRepositoryImpl{
		client:     client,
		databaseId: notionapi.DatabaseID(databaseId),
		mapper:     mapper.NewActionItemMapper(),
	}
}

func (r *ActionItemRepositoryImpl) Create(ctx context.Context, item *entity.ActionItem) error {
	page, err := r.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: r.databaseId,
		},
		Properties: r.mapper.ToProperties(item),
	})
	if err != nil {
		return err
	}
	item.Id = string(page.ID)
	return nil
}
