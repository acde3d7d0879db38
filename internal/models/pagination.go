package models

type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalCards int  `json:"totalCards"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
}

// Paginate clamps page/pageSize and returns the slice bounds for a list
// of total items. pageSize defaults to 50 and caps at 100.
func Paginate(page, pageSize, total int) (start, end int, p Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	if pageSize > 100 {
		pageSize = 100
	}

	start = (page - 1) * pageSize
	if start > total {
		start = total
	}
	end = start + pageSize
	if end > total {
		end = total
	}

	return start, end, Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalCards: total,
		TotalPages: (total + pageSize - 1) / pageSize,
		HasNext:    end < total,
	}
}
