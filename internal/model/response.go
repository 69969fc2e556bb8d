package model

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *Meta     `json:"meta,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices items for page/limit. A limit of zero or less returns the full
// list as a single page.
func Paginate[T any](items []T, page int, limit int) ([]T, Meta) {
	total := len(items)
	if limit <= 0 {
		pages := 0
		if total > 0 {
			pages = 1
		}
		return items, Meta{Page: 1, Limit: total, Total: total, TotalPages: pages}
	}
	if page < 1 {
		page = 1
	}
	if limit > 1000 {
		limit = 1000
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return items[start:end], Meta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
