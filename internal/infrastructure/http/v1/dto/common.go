// Package dto provides Data Transfer Objects for API responses.
package dto

// ListResponse wraps list results.
type ListResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

// NewListResponse creates a list response.
func NewListResponse(items any, total int) ListResponse {
	return ListResponse{Items: items, Total: total}
}
