package dto

// ─── Inputs ──────────────────────────────────────────────────────────────────

// CreateCategoryInput: Color falls back to model.DefaultCategoryColor and
// SortOrder to 0 when omitted.
type CreateCategoryInput struct {
	Name        string
	Description *string
	Color       *string
	Icon        *string
	SortOrder   *int
}

type CreateProductInput struct {
	Name              string
	Description       *string
	SKU               *string
	Barcode           *string
	CategoryID        *int64
	CostPriceCents    int64
	SalePriceCents    int64
	TaxRateBps        int
	StockQuantity     int
	LowStockThreshold int
	ImagePath         *string
	IsActive          bool
	SortOrder         int
}

// ─── Partial updates ─────────────────────────────────────────────────────────

type CategoryPatch struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
	SortOrder   *int
}

func (p CategoryPatch) Columns() map[string]interface{} {
	c := columns{}
	c.str("name", p.Name)
	c.nullStr("description", p.Description)
	c.str("color", p.Color)
	c.nullStr("icon", p.Icon)
	c.int("sort_order", p.SortOrder)
	return c
}

// ProductPatch: a CategoryID of 0 detaches the product from its category.
type ProductPatch struct {
	Name              *string
	Description       *string
	SKU               *string
	Barcode           *string
	CategoryID        *int64
	CostPriceCents    *int64
	SalePriceCents    *int64
	TaxRateBps        *int
	StockQuantity     *int
	LowStockThreshold *int
	ImagePath         *string
	IsActive          *bool
	SortOrder         *int
}

func (p ProductPatch) Columns() map[string]interface{} {
	c := columns{}
	c.str("name", p.Name)
	c.nullStr("description", p.Description)
	c.nullStr("sku", p.SKU)
	c.nullStr("barcode", p.Barcode)
	c.nullID("category_id", p.CategoryID)
	c.int64("cost_price_cents", p.CostPriceCents)
	c.int64("sale_price_cents", p.SalePriceCents)
	c.int("tax_rate_bps", p.TaxRateBps)
	c.int("stock_quantity", p.StockQuantity)
	c.int("low_stock_threshold", p.LowStockThreshold)
	c.nullStr("image_path", p.ImagePath)
	c.flag("is_active", p.IsActive)
	c.int("sort_order", p.SortOrder)
	return c
}

// ─── Filters ─────────────────────────────────────────────────────────────────

// ProductFilter narrows a product listing. Search is matched as a substring of
// name, sku or barcode.
type ProductFilter struct {
	CategoryID      *int64
	Search          string
	IncludeInactive bool
}
