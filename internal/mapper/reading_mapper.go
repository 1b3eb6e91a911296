package mapper

import (
	"ai-lifecoach-be/internal/entity"

	"github.com/jomei/notionapi"
)

type ReadingMapper struct{}

func NewReadingMapper() *ReadingMapper {
	return &ReadingMapper{}
}

func (m *ReadingMapper) ToProperties(r *entity.Reading) notionapi.Properties {
	props := notionapi.Properties{
		PropItemName: notionapi.TitleProperty{Title: richText(r.Name)},
		PropItemReflection: notionapi.RelationProperty{
			Relation: relations([]string{r.ReflectionId}),
		},
	}

	if len(r.ThemeIds) > 0 {
		props[PropItemTheme] = notionapi.RelationProperty{Relation: relations(r.ThemeIds)}
	}

	return props
}

func (m *ReadingMapper) ToEntity(page *notionapi.Page) *entity.Reading {
	if page == nil {
		return nil
	}

	r := &entity.Reading{
		Id:       string(page.ID),
		ThemeIds: make([]string, 0),
	}
	if p, ok := page.Properties[PropItemName].(*notionapi.TitleProperty); ok {
		r.Name = plainText(p.Title)
	}
	if p, ok := page.Properties[PropItemReflection].(*notionapi.RelationProperty); ok {
		if ids := relationIds(p.Relation); len(ids) > 0 {
			r.ReflectionId = ids[0]
		}
	}
	if p, ok := page.Properties[PropItemTheme].(*notionapi.RelationProperty); ok {
		r.ThemeIds = relationIds(p.Relation)
	}
	return r
}
