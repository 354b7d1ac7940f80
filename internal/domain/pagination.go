package domain

import "strings"

type Pagination struct {
	Page     int
	PageSize int
	Sort     string
}

func (p Pagination) SortColumn() string {
	return strings.TrimPrefix(p.Sort, "-")
}

func (p Pagination) SortDirection() string {
	if strings.HasPrefix(p.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
