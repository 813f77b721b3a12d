package state

import (
	"sync"

	"litepos/internal/dto"
)

// Filters is the search text and category selected in the product browser.
type Filters struct {
	mu         sync.RWMutex
	search     string
	categoryID *int64
}

func NewFilters() *Filters { return &Filters{} }

func (f *Filters) SetSearch(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.search = s
}

// SetCategory selects a category; nil shows every category.
func (f *Filters) SetCategory(id *int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id == nil {
		f.categoryID = nil
		return
	}
	v := *id
	f.categoryID = &v
}

func (f *Filters) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.search = ""
	f.categoryID = nil
}

func (f *Filters) Search() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.search
}

func (f *Filters) CategoryID() *int64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.categoryID == nil {
		return nil
	}
	v := *f.categoryID
	return &v
}

// ProductFilter builds the repository filter for the register screen, which
// only lists active products.
func (f *Filters) ProductFilter() dto.ProductFilter {
	return dto.ProductFilter{
		Search:     f.Search(),
		CategoryID: f.CategoryID(),
	}
}
