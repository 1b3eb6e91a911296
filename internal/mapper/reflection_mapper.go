package mapper

import (
	"strings"

	"ai-lifecoach-be/internal/entity"

	"github.com/jomei/notionapi"
)

// Reflections database schema.
const (
	PropSessionTitle = "Session Title"
	PropSessionDate  = "Session Date"
	PropMood         = "Mood"
	PropIntensity    = "Intensity"
	PropSummary      = "Summary"
	PropInsights     = "Insights"
	PropTheme        = "Theme"
)

type ReflectionMapper struct{}

func NewReflectionMapper() *ReflectionMapper {
	return &ReflectionMapper{}
}

// ToProperties encodes a reflection for page creation. Empty fields are
// omitted; the title property is always present because the remote schema
// requires one.
func (m *ReflectionMapper) ToProperties(r *entity.Reflection) notionapi.Properties {
	props := notionapi.Properties{
		PropSessionTitle: notionapi.TitleProperty{Title: richText(r.Title)},
	}

	if p := dateProperty(r.Date); p != nil {
		props[PropSessionDate] = *p
	}
	if r.Mood != "" {
		props[PropMood] = notionapi.SelectProperty{Select: notionapi.Option{Name: r.Mood}}
	}
	if r.Intensity != nil {
		props[PropIntensity] = notionapi.NumberProperty{Number: float64(*r.Intensity)}
	}
	if r.Summary != "" {
		props[PropSummary] = notionapi.RichTextProperty{RichText: richText(r.Summary)}
	}
	if len(r.Insights) > 0 {
		props[PropInsights] = notionapi.RichTextProperty{
			RichText: richText(strings.Join(r.Insights, "\n")),
		}
	}
	if len(r.ThemeIds) > 0 {
		props[PropTheme] = notionapi.RelationProperty{Relation: relations(r.ThemeIds)}
	}

	return props
}

// ToEntity decodes a page back into the canonical record. Absent or
// differently-typed properties simply leave their field empty.
func (m *ReflectionMapper) ToEntity(page *notionapi.Page) *entity.Reflection {
	if page == nil {
		return nil
	}

	r := &entity.Reflection{
		Id:       string(page.ID),
		Insights: make([]string, 0),
		ThemeIds: make([]string, 0),
	}

	if p, ok := page.Properties[PropSessionTitle].(*notionapi.TitleProperty); ok {
		r.Title = plainText(p.Title)
	}
	if p, ok := page.Properties[PropSessionDate].(*notionapi.DateProperty); ok {
		r.Date = dateString(p)
	}
	if p, ok := page.Properties[PropMood].(*notionapi.SelectProperty); ok {
		r.Mood = p.Select.Name
	}
	if p, ok := page.Properties[PropIntensity].(*notionapi.NumberProperty); ok && p.Number != 0 {
		n := int(p.Number)
		r.Intensity = &n
	}
	if p, ok := page.Properties[PropSummary].(*notionapi.RichTextProperty); ok {
		r.Summary = plainText(p.RichText)
	}
	if p, ok := page.Properties[PropInsights].(*notionapi.RichTextProperty); ok {
		for _, line := range strings.Split(plainText(p.RichText), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				r.Insights = append(r.Insights, line)
			}
		}
	}
	if p, ok := page.Properties[PropTheme].(*notionapi.RelationProperty); ok {
		r.ThemeIds = relationIds(p.Relation)
	}

	return r
}

func (m *ReflectionMapper) ToEntities(pages []notionapi.Page) []*entity.Reflection {
	entities := make([]*entity.Reflection, len(pages))
	for i := range pages {
		entities[i] = m.ToEntity(&pages[i])
	}
	return entities
}
