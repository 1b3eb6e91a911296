package dto

type ParseReflectionRequest struct {
	RawText string `json:"raw_text" validate:"required"`
}

// ParsedReflection mirrors ingest.Record for the confirmation screen.
type ParsedReflection struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Mood        string   `json:"mood"`
	Intensity   *int     `json:"intensity,omitempty"`
	Summary     string   `json:"summary"`
	Insights    []string `json:"insights"`
	Themes      []string `json:"themes"`
	ActionItems []string `json:"action_items"`
	Readings    []string `json:"readings"`
}

type ParseReflectionResponse struct {
	DraftId     string           `json:"draft_id"`
	Parsed      ParsedReflection `json:"parsed"`
	KnownThemes []string         `json:"known_themes"`
	NewThemes   []string         `json:"new_themes"`
}

type CommitReflectionRequest struct {
	DraftId string   `json:"draft_id" validate:"required"`
	Themes  []string `json:"themes"`
}

type CommitReflectionResponse struct {
	Id            string   `json:"id"`
	ActionItemIds []string `json:"action_item_ids"`
	ReadingIds    []string `json:"reading_ids"`
}

// ReflectionItemResponse is one rendered row of the reader flow. Themes is
// the display-name concatenation, not the relation ids.
type ReflectionItemResponse struct {
	Id        string   `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Mood      string   `json:"mood"`
	Intensity *int     `json:"intensity,omitempty"`
	Summary   string   `json:"summary"`
	Insights  []string `json:"insights"`
	Themes    string   `json:"themes"`
}

type GetRecentReflectionsResponse struct {
	Reflections []ReflectionItemResponse `json:"reflections"`
	Warnings    []string                 `json:"warnings"`
}
