package repository_test

import (
	"context"
	"testing"

	"litepos/internal/dto"
	"litepos/internal/model"
	"litepos/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepo_CreateDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.categories.Create(ctx, dto.CreateCategoryInput{Name: "Bakery"})
	require.NoError(t, err)

	c, err := f.categories.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, model.DefaultCategoryColor, c.Color)
	assert.Equal(t, 0, c.SortOrder)
	assert.Nil(t, c.Description)
}

func TestCategoryRepo_ListOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, in := range []dto.CreateCategoryInput{
		{Name: "Snacks", SortOrder: testutil.Ptr(2)},
		{Name: "Drinks", SortOrder: testutil.Ptr(1)},
		{Name: "Candy", SortOrder: testutil.Ptr(2)},
	} {
		_, err := f.categories.Create(ctx, in)
		require.NoError(t, err)
	}

	list, err := f.categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Drinks", list[0].Name)
	assert.Equal(t, "Candy", list[1].Name)
	assert.Equal(t, "Snacks", list[2].Name)
}

func TestCategoryRepo_UpdateAndSoftDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.categories.Create(ctx, dto.CreateCategoryInput{Name: "Dairy", Icon: testutil.Ptr("milk")})
	require.NoError(t, err)

	require.NoError(t, f.categories.Update(ctx, id, dto.CategoryPatch{
		Color: testutil.Ptr("#ffffff"),
		Icon:  testutil.Ptr(""),
	}))
	c, err := f.categories.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dairy", c.Name)
	assert.Equal(t, "#ffffff", c.Color)
	assert.Nil(t, c.Icon)

	require.NoError(t, f.categories.SoftDelete(ctx, id))
	c, err = f.categories.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestProductRepo_ListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	drinks, err := f.categories.Create(ctx, dto.CreateCategoryInput{Name: "Drinks"})
	require.NoError(t, err)

	f.product(t, dto.CreateProductInput{Name: "Cola", SKU: testutil.Ptr("DRK-1"), CategoryID: &drinks, IsActive: true})
	f.product(t, dto.CreateProductInput{Name: "Water", Barcode: testutil.Ptr("7790001"), CategoryID: &drinks, IsActive: true})
	f.product(t, dto.CreateProductInput{Name: "Chips", SKU: testutil.Ptr("SNK-1"), IsActive: true})
	f.product(t, dto.CreateProductInput{Name: "Old Cola", IsActive: false})

	all, err := f.products.List(ctx, dto.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	withInactive, err := f.products.List(ctx, dto.ProductFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, withInactive, 4)

	byCat, err := f.products.List(ctx, dto.ProductFilter{CategoryID: &drinks})
	require.NoError(t, err)
	require.Len(t, byCat, 2)
	assert.Equal(t, "Cola", byCat[0].Name)
	assert.Equal(t, "Water", byCat[1].Name)

	bySKU, err := f.products.List(ctx, dto.ProductFilter{Search: "snk"})
	require.NoError(t, err)
	require.Len(t, bySKU, 1)
	assert.Equal(t, "Chips", bySKU[0].Name)

	byBarcode, err := f.products.List(ctx, dto.ProductFilter{Search: "0001"})
	require.NoError(t, err)
	require.Len(t, byBarcode, 1)
	assert.Equal(t, "Water", byBarcode[0].Name)

	combined, err := f.products.List(ctx, dto.ProductFilter{Search: "cola", CategoryID: &drinks, IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "Cola", combined[0].Name)
}

func TestProductRepo_FindByBarcode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.product(t, dto.CreateProductInput{Name: "Hidden", Barcode: testutil.Ptr("111"), IsActive: false})
	id := f.product(t, dto.CreateProductInput{Name: "Shown", Barcode: testutil.Ptr("222"), IsActive: true})

	p, err := f.products.FindByBarcode(ctx, "111")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = f.products.FindByBarcode(ctx, "222")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, id, p.ID)
}

func TestProductRepo_PatchAndStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cat, err := f.categories.Create(ctx, dto.CreateCategoryInput{Name: "Misc"})
	require.NoError(t, err)
	id := f.product(t, dto.CreateProductInput{
		Name: "Pen", CategoryID: &cat, SalePriceCents: 150, StockQuantity: 10, IsActive: true,
	})

	require.NoError(t, f.products.Update(ctx, id, dto.ProductPatch{
		SalePriceCents: testutil.Ptr(int64(175)),
		CategoryID:     testutil.Ptr(int64(0)),
		IsActive:       testutil.Ptr(false),
	}))
	require.NoError(t, f.products.AdjustStock(ctx, id, -3))
	require.NoError(t, f.products.AdjustStock(ctx, id, 1))

	p, err := f.products.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(175), p.SalePriceCents)
	assert.Nil(t, p.CategoryID)
	assert.False(t, p.IsActive)
	assert.Equal(t, 8, p.StockQuantity)
	assert.Equal(t, "Pen", p.Name)
}

func TestProductRepo_LowStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.product(t, dto.CreateProductInput{Name: "Plenty", StockQuantity: 50, LowStockThreshold: 5, IsActive: true})
	f.product(t, dto.CreateProductInput{Name: "Edge", StockQuantity: 5, LowStockThreshold: 5, IsActive: true})
	f.product(t, dto.CreateProductInput{Name: "Empty", StockQuantity: 0, LowStockThreshold: 5, IsActive: true})
	f.product(t, dto.CreateProductInput{Name: "Retired", StockQuantity: 0, LowStockThreshold: 5, IsActive: false})

	low, err := f.products.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Empty", low[0].Name)
	assert.Equal(t, "Edge", low[1].Name)
}

func TestProductRepo_SoftDeleteHidesFromList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.product(t, dto.CreateProductInput{Name: "Gone", Barcode: testutil.Ptr("9"), IsActive: true})
	require.NoError(t, f.products.SoftDelete(ctx, id))

	list, err := f.products.List(ctx, dto.ProductFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Empty(t, list)

	p, err := f.products.FindByBarcode(ctx, "9")
	require.NoError(t, err)
	assert.Nil(t, p)

	db, err := f.gw.Conn(ctx)
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Unscoped().Model(&model.Product{}).Where("id = ?", id).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCustomerRepo_SearchAndOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, in := range []dto.CreateCustomerInput{
		{FirstName: "Ana", LastName: "Zamora", Phone: testutil.Ptr("555-0100")},
		{FirstName: "Luis", LastName: "Alvarez", Email: testutil.Ptr("luis@example.com")},
		{FirstName: "Berta", LastName: "Alvarez"},
	} {
		_, err := f.customers.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := f.customers.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Berta", all[0].FirstName)
	assert.Equal(t, "Luis", all[1].FirstName)
	assert.Equal(t, "Ana", all[2].FirstName)

	byPhone, err := f.customers.List(ctx, "0100")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Zamora", byPhone[0].LastName)

	byEmail, err := f.customers.List(ctx, "example.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Luis", byEmail[0].FirstName)
}

func TestCustomerRepo_UpdateAndSoftDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.customers.Create(ctx, dto.CreateCustomerInput{
		FirstName: "Ivo", LastName: "Paz", BillingCity: testutil.Ptr("Rosario"),
	})
	require.NoError(t, err)

	require.NoError(t, f.customers.Update(ctx, id, dto.CustomerPatch{
		ShippingCity: testutil.Ptr("Córdoba"),
		BillingCity:  testutil.Ptr(""),
	}))
	c, err := f.customers.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Nil(t, c.BillingCity)
	require.NotNil(t, c.ShippingCity)
	assert.Equal(t, "Córdoba", *c.ShippingCity)

	require.NoError(t, f.customers.SoftDelete(ctx, id))
	c, err = f.customers.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, c)
}
