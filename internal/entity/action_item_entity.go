package entity

// ActionItem is a follow-up task derived from a reflection.
type ActionItem struct {
	Id           string
	Name         string
	ReflectionId string
	DueDate      string // ISO date, submission time + 7 days
	ThemeIds     []string
}
