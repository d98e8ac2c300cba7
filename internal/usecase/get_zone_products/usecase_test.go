package get_zone_products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/container-storefront/internal/domain"
	"github.com/m04kA/container-storefront/internal/integrations/commerce"
)

type mockZoneService struct {
	mock.Mock
}

func (m *mockZoneService) ResolveTagID(ctx context.Context, tagName string) (string, bool) {
	args := m.Called(ctx, tagName)
	return args.String(0), args.Bool(1)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetCategoryByHandle(ctx context.Context, handle string) (*domain.Category, error) {
	args := m.Called(ctx, handle)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *mockCatalog) ListCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	args := m.Called(ctx, limit)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func (m *mockCatalog) ListProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error) {
	args := m.Called(ctx, filter)
	page, _ := args.Get(0).(*domain.ProductPage)
	return page, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func amount(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

var container7m3 = domain.Product{
	ID:    "prod_7m3",
	Title: "Container 7 m³",
	Variants: []domain.Variant{
		{ID: "var_a", Prices: []domain.Price{{Amount: 320, CurrencyCode: "eur"}}},
		{ID: "var_b", CalculatedPrice: &domain.CalculatedPrice{
			CalculatedAmount:        amount(250),
			CalculatedAmountWithTax: amount(297.5),
			OriginalAmount:          amount(250),
			CurrencyCode:            "eur",
		}},
	},
}

func TestUseCase_Execute_ZoneAndCategory(t *testing.T) {
	zones := &mockZoneService{}
	catalog := &mockCatalog{}

	zones.On("ResolveTagID", mock.Anything, "zone1").Return("ptag_z1", true)
	catalog.On("GetCategoryByHandle", mock.Anything, "bauschutt").
		Return(&domain.Category{ID: "pcat_bau", Handle: "bauschutt"}, nil)
	catalog.On("ListProducts", mock.Anything, domain.ProductFilter{
		TagID:      strPtr("ptag_z1"),
		CategoryID: strPtr("pcat_bau"),
		Limit:      domain.DefaultProductsPageLimit,
	}).Return(&domain.ProductPage{Products: []domain.Product{container7m3}, Count: 1}, nil)

	uc := NewUseCase(zones, catalog, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{ZoneTag: "zone1", WasteType: "bauschutt"})
	require.NoError(t, err)

	require.NotNil(t, resp.Zone)
	assert.Equal(t, 1, *resp.Zone)
	assert.Equal(t, "Zone 1 Container - KS Containerdienst", resp.ZoneName)
	assert.False(t, resp.NoService)
	require.Len(t, resp.Items, 1)
	require.NotNil(t, resp.Items[0].CheapestPrice)
	assert.Equal(t, "var_b", resp.Items[0].CheapestPrice.VariantID)
	assert.Equal(t, 297.5, resp.Items[0].CheapestPrice.CalculatedAmount)

	catalog.AssertNotCalled(t, "ListCategories", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_CategoryFallback(t *testing.T) {
	tests := []struct {
		name         string
		slug         string
		handleErr    error
		categories   []domain.Category
		listErr      error
		wantCategory *string
	}{
		{
			name:      "match by decoded name",
			slug:      "Gemischte%20Abf%C3%A4lle",
			handleErr: commerce.ErrCategoryNotFound,
			categories: []domain.Category{
				{ID: "pcat_holz", Name: "Holz", Handle: "holz"},
				{ID: "pcat_mix", Name: "Gemischte Abfälle", Handle: "gemischte-abfaelle"},
			},
			wantCategory: strPtr("pcat_mix"),
		},
		{
			name:         "match by handle case insensitive",
			slug:         "HOLZ",
			handleErr:    commerce.ErrInternal,
			categories:   []domain.Category{{ID: "pcat_holz", Name: "Holz", Handle: "holz"}},
			wantCategory: strPtr("pcat_holz"),
		},
		{
			name:       "no match lists without category",
			slug:       "asbest",
			handleErr:  commerce.ErrCategoryNotFound,
			categories: []domain.Category{{ID: "pcat_holz", Name: "Holz", Handle: "holz"}},
		},
		{
			name:      "listing categories fails",
			slug:      "holz",
			handleErr: commerce.ErrCategoryNotFound,
			listErr:   errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zones := &mockZoneService{}
			catalog := &mockCatalog{}

			zones.On("ResolveTagID", mock.Anything, "zone3").Return("ptag_z3", true)
			catalog.On("GetCategoryByHandle", mock.Anything, tt.slug).Return(nil, tt.handleErr)
			catalog.On("ListCategories", mock.Anything, domain.CategoriesFallbackLimit).Return(tt.categories, tt.listErr)
			catalog.On("ListProducts", mock.Anything, mock.Anything).
				Return(&domain.ProductPage{Products: []domain.Product{container7m3}, Count: 1}, nil)

			uc := NewUseCase(zones, catalog, nopLogger{})
			resp, err := uc.Execute(context.Background(), &Request{ZoneTag: "zone3", WasteType: tt.slug})
			require.NoError(t, err)

			assert.Equal(t, tt.wantCategory, resp.CategoryID)
			filter := catalog.Calls[len(catalog.Calls)-1].Arguments.Get(1).(domain.ProductFilter)
			assert.Equal(t, tt.wantCategory, filter.CategoryID)
		})
	}
}

// Тег зоны не найден или бэкенд недоступен: листинг без фильтра по зоне
func TestUseCase_Execute_TagNotResolved(t *testing.T) {
	zones := &mockZoneService{}
	catalog := &mockCatalog{}

	zones.On("ResolveTagID", mock.Anything, "zone5").Return("", false)
	catalog.On("ListProducts", mock.Anything, domain.ProductFilter{Limit: 24, Offset: 24}).
		Return(&domain.ProductPage{Products: []domain.Product{container7m3}, Count: 30}, nil)

	uc := NewUseCase(zones, catalog, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{ZoneTag: "zone5", Limit: 24, Offset: 24})
	require.NoError(t, err)

	assert.Nil(t, resp.TagID)
	assert.Equal(t, 30, resp.Count)
	assert.False(t, resp.NoService)
	catalog.AssertNotCalled(t, "GetCategoryByHandle", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_NoService(t *testing.T) {
	zones := &mockZoneService{}
	catalog := &mockCatalog{}

	zones.On("ResolveTagID", mock.Anything, "zone9").Return("ptag_z9", true)
	catalog.On("ListProducts", mock.Anything, mock.Anything).Return(&domain.ProductPage{Count: 0}, nil)

	uc := NewUseCase(zones, catalog, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{ZoneTag: "zone9"})
	require.NoError(t, err)

	assert.True(t, resp.NoService)
	assert.Empty(t, resp.Items)
}

func TestUseCase_Execute_UnknownZoneTag(t *testing.T) {
	zones := &mockZoneService{}
	catalog := &mockCatalog{}

	zones.On("ResolveTagID", mock.Anything, "sonderzone").Return("", false)
	catalog.On("ListProducts", mock.Anything, mock.Anything).Return(&domain.ProductPage{}, nil)

	uc := NewUseCase(zones, catalog, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{ZoneTag: "sonderzone"})
	require.NoError(t, err)

	assert.Nil(t, resp.Zone)
	assert.Equal(t, defaultZoneName, resp.ZoneName)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		listErr error
		wantErr error
	}{
		{name: "empty zone", req: Request{ZoneTag: " "}, wantErr: ErrInvalidInput},
		{name: "limit too large", req: Request{ZoneTag: "zone1", Limit: domain.MaxProductsPageLimit + 1}, wantErr: ErrInvalidInput},
		{name: "negative offset", req: Request{ZoneTag: "zone1", Offset: -1}, wantErr: ErrInvalidInput},
		{name: "catalog down", req: Request{ZoneTag: "zone1"}, listErr: commerce.ErrInternal, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zones := &mockZoneService{}
			catalog := &mockCatalog{}
			zones.On("ResolveTagID", mock.Anything, mock.Anything).Return("", false).Maybe()
			catalog.On("ListProducts", mock.Anything, mock.Anything).Return(nil, tt.listErr).Maybe()

			uc := NewUseCase(zones, catalog, nopLogger{})
			_, err := uc.Execute(context.Background(), &tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMatchCategory(t *testing.T) {
	categories := []domain.Category{
		{ID: "1", Name: "Bauschutt", Handle: "bauschutt"},
		{ID: "2", Name: "Grünschnitt", Handle: ""},
	}

	c, ok := matchCategory(categories, "Gr%C3%BCnschnitt")
	require.True(t, ok)
	assert.Equal(t, "2", c.ID)

	_, ok = matchCategory(categories, "")
	assert.False(t, ok)
}
