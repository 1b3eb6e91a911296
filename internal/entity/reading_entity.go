package entity

// Reading is a recommended reference derived from a reflection.
type Reading struct {
	Id           string
	Name         string
	ReflectionId string
	ThemeIds     []string
}
