package mapper

import (
	"ai-lifecoach-be/internal/entity"

	"github.com/jomei/notionapi"
)

// ActionItems database schema.
const (
	PropItemName       = "Name"
	PropItemReflection = "Reflection"
	PropItemDueDate    = "Due Date"
	PropItemTheme      = "Theme"
)

type ActionItemMapper struct{}

func NewActionItemMapper() *ActionItemMapper {
	return &ActionItemMapper{}
}

func (m *ActionItemMapper) ToProperties(a *entity.ActionItem) notionapi.Properties {
	props := notionapi.Properties{
		PropItemName: notionapi.TitleProperty{Title: richText(a.Name)},
		PropItemReflection: notionapi.RelationProperty{
			Relation: relations([]string{a.ReflectionId}),
		},
	}

	if p := dateProperty(a.DueDate); p != nil {
		props[PropItemDueDate] = *p
	}
	if len(a.ThemeIds) > 0 {
		props[PropItemTheme] = notionapi.RelationProperty{Relation: relations(a.ThemeIds)}
	}

	return props
}

func (m *ActionItemMapper) ToEntity(page *notionapi.Page) *entity.ActionItem {
	if page == nil {
		return nil
	}

	a := &entity.ActionItem{
		Id:       string(page.ID),
		ThemeIds: make([]string, 0),
	}
	if p, ok := page.Properties[PropItemName].(*notionapi.TitleProperty); ok {
		a.Name = plainText(p.Title)
	}
	if p, ok := page.Properties[PropItemReflection].(*notionapi.RelationProperty); ok {
		if ids := relationIds(p.Relation); len(ids) > 0 {
			a.ReflectionId = ids[0]
		}
	}
	if p, ok := page.Properties[PropItemDueDate].(*notionapi.DateProperty); ok {
		a.DueDate = dateString(p)
	}
	if p, ok := page.Properties[PropItemTheme].(*notionapi.RelationProperty); ok {
		a.ThemeIds = relationIds(p.Relation)
	}
	return a
}
