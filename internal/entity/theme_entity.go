package entity

// Theme is a reusable tag shared by reflections, action items and readings.
// Name acts as the match key; uniqueness is not enforced by this system.
type Theme struct {
	Id   string
	Name string
}
