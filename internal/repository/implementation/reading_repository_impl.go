package implementation

import (
	"context"

	"ai-lifecoach-be/internal/entity"
	"ai-lifecoach-be/internal/mapper"
	"ai-lifecoach-be/internal/repository/contract"

	"github.com/jomei/notionapi"
)

type ReadingRepositoryImpl struct {
	client     *notionapi.Client
	databaseId notionapi.DatabaseID
	mapper     *mapper.ReadingMapper
}

func NewReadingRepository(client *notionapi.Client, databaseId string) contract.ReadingRepository {
	return &ReadingRepositoryImpl{
		client:     client,
		databaseId: notionapi.DatabaseID(databaseId),
		mapper:     mapper.NewReadingMapper(),
	}
}

func (r *ReadingRepositoryImpl) Create(ctx context.Context, reading *entity.Reading) error {
	page, err := r.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: r.databaseId,
		},
		Properties: r.mapper.ToProperties(reading),
	})
	if err != nil {
		return err
	}
	reading.Id = string(page.ID)
	return nil
}
