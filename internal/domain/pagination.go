package domain

// Pagination параметры постраничной выборки
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination нормализует параметры: страница с 1, лимит в пределах [1, MaxPageLimit]
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset смещение для SQL
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages количество страниц для total записей
func (p Pagination) TotalPages(total int) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}
