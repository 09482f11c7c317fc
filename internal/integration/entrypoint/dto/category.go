// Package dto defines data transfer objects for API requests and responses.
package dto

// UpdateCategoriesRequest represents the request body for replacing the
// user's quick-pick category labels.
type UpdateCategoriesRequest struct {
	Categories []string `json:"categories" binding:"required,max=20,dive,min=1,max=64"`
}

// CategoryListResponse represents the response for listing category labels.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
