package dto

type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type MPGResponse struct {
	Year  int     `json:"year"`
	Make  string  `json:"make"`
	Model string  `json:"model"`
	MPG   float64 `json:"mpg"`
}
