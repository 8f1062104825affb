// Package service implements the domain logic: input validation, ownership
// enforcement, toggle semantics and pagination, independent of HTTP.
package service

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// PageRequest carries externally supplied pagination parameters. Handlers
// pass them through unchecked; Normalize coerces anything non-positive back
// to the defaults, so a garbage page never reaches the storage layer.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize returns a PageRequest with defaults applied and the limit capped.
func (p PageRequest) Normalize() PageRequest {
	if p.Page <= 0 {
		p.Page = defaultPage
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Offset converts the 1-based page into a row offset.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
