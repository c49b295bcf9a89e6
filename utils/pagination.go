package utils

// Page is the envelope returned by every listing endpoint. The page index is
// zero-based; HasNext and HasPrevious are derived from the index and the
// total page count.
type Page struct {
	Items       interface{} `json:"items"`
	CurrentPage int         `json:"currentPage"`
	TotalItems  int64       `json:"totalItems"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

func NewPage(items interface{}, page, size int, totalItems int64) Page {
	totalPages := 0
	if size > 0 {
		totalPages = int((totalItems + int64(size) - 1) / int64(size))
	}
	return Page{
		Items:       items,
		CurrentPage: page,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page+1 < totalPages,
		HasPrevious: page > 0,
	}
}
