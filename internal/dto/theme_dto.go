package dto

type ThemeResponse struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type GetAllThemesResponse struct {
	Themes []ThemeResponse `json:"themes"`
}
