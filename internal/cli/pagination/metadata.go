package pagination

// PaginationMeta describes the window returned by Apply.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewPaginationMeta derives page numbers for params over totalCount items.
// Offset mode is reported in pages of Limit items; no limit is one page.
func NewPaginationMeta(params PaginationParams, totalCount int) PaginationMeta {
	offset, pageSize := params.CalculateOffsetLimit()
	if pageSize == 0 {
		pageSize = totalCount
	}

	totalPages := 0
	currentPage := 1
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
		currentPage = offset/pageSize + 1
	}
	if params.IsPageBased() && currentPage > totalPages && totalPages > 0 {
		currentPage = totalPages
	}

	return PaginationMeta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}
