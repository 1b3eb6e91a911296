package entity

// Reflection is one journaling session record as held by the remote store.
// Created once per submission, never mutated afterwards.
type Reflection struct {
	Id        string
	Title     string
	Date      string // ISO date "2006-01-02"; empty when the source had none
	Mood      string
	Intensity *int
	Summary   string
	Insights  []string
	ThemeIds  []string
}
