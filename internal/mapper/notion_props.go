package mapper

import (
	"strings"
	"time"

	"github.com/jomei/notionapi"
)

const isoDateLayout = "2006-01-02"

// Shared helpers for translating between entity fields and Notion's typed
// property bags. All remote-schema knowledge stays inside this package.

func richText(content string) []notionapi.RichText {
	return []notionapi.RichText{
		{Text: &notionapi.Text{Content: content}},
	}
}

// plainText flattens a rich text list. API responses carry PlainText;
// locally built values only carry Text.Content.
func plainText(rts []notionapi.RichText) string {
	var sb strings.Builder
	for _, rt := range rts {
		if rt.PlainText != "" {
			sb.WriteString(rt.PlainText)
		} else if rt.Text != nil {
			sb.WriteString(rt.Text.Content)
		}
	}
	return sb.String()
}

func relations(ids []string) []notionapi.Relation {
	rels := make([]notionapi.Relation, 0, len(ids))
	for _, id := range ids {
		rels = append(rels, notionapi.Relation{ID: notionapi.PageID(id)})
	}
	return rels
}

func relationIds(rels []notionapi.Relation) []string {
	ids := make([]string, 0, len(rels))
	for _, rel := range rels {
		ids = append(ids, string(rel.ID))
	}
	return ids
}

// dateProperty builds a date property from an ISO date string. An
// unparsable date yields nil so the field is omitted rather than rejected
// remotely (same lenient policy as intensity).
func dateProperty(iso string) *notionapi.DateProperty {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return nil
	}
	start := notionapi.Date(t)
	return &notionapi.DateProperty{Date: &notionapi.DateObject{Start: &start}}
}

func dateString(p *notionapi.DateProperty) string {
	if p == nil || p.Date == nil || p.Date.Start == nil {
		return ""
	}
	return time.Time(*p.Date.Start).Format(isoDateLayout)
}
