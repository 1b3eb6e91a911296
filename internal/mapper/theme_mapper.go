package mapper

import (
	"ai-lifecoach-be/internal/entity"

	"github.com/jomei/notionapi"
)

// Themes database schema: a single "Name" title property.
const PropThemeName = "Name"

type ThemeMapper struct{}

func NewThemeMapper() *ThemeMapper {
	return &ThemeMapper{}
}

func (m *ThemeMapper) ToProperties(t *entity.Theme) notionapi.Properties {
	return notionapi.Properties{
		PropThemeName: notionapi.TitleProperty{Title: richText(t.Name)},
	}
}

func (m *ThemeMapper) ToEntity(page *notionapi.Page) *entity.Theme {
	if page == nil {
		return nil
	}

	t := &entity.Theme{Id: string(page.ID)}
	if p, ok := page.Properties[PropThemeName].(*notionapi.TitleProperty); ok {
		t.Name = plainText(p.Title)
	}
	return t
}

func (m *ThemeMapper) ToEntities(pages []notionapi.Page) []*entity.Theme {
	entities := make([]*entity.Theme, len(pages))
	for i := range pages {
		entities[i] = m.ToEntity(&pages[i])
	}
	return entities
}
