package handler

type categoriesResponse struct {
	Categories []string `json:"categories"`
}
