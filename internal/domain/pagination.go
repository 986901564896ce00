package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination параметры пагинации
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewPagination создаёт параметры пагинации с валидацией
func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// Offset возвращает смещение первого элемента страницы
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit возвращает размер страницы
func (p Pagination) Limit() int {
	return p.PageSize
}

// TotalPages считает количество страниц для total элементов
func (p Pagination) TotalPages(total int) int {
	if p.PageSize < 1 {
		return 0
	}
	pages := total / p.PageSize
	if total%p.PageSize > 0 {
		pages++
	}
	return pages
}

// Window возвращает границы [start, end) страницы внутри среза длины total.
// Страница за пределами данных даёт пустое окно [total, total).
func (p Pagination) Window(total int) (start, end int) {
	// Сравнение до умножения: Offset переполняется на огромных page
	if p.Page < 1 || p.PageSize < 1 || p.Page-1 > total/p.PageSize {
		return total, total
	}

	start = p.Offset()
	if start > total {
		start = total
	}
	end = start + p.Limit()
	if end > total {
		end = total
	}
	return start, end
}
