package add_to_cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/container-storefront/internal/domain"
	"github.com/m04kA/container-storefront/internal/integrations/commerce"
)

type mockCommerce struct {
	mock.Mock
}

func (m *mockCommerce) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

func (m *mockCommerce) AddLineItem(ctx context.Context, cartID string, item domain.LineItem) error {
	args := m.Called(ctx, cartID, item)
	return args.Error(0)
}

type staticFetcher []string

func (f staticFetcher) FetchBookedDates(context.Context, string) []string {
	return []string(f)
}

type countingRecorder struct {
	rejected  map[string]int
	additions map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{rejected: map[string]int{}, additions: map[string]int{}}
}

func (r *countingRecorder) IncBookedDatesFetch(string)     {}
func (r *countingRecorder) IncDateRejected(stage string)   { r.rejected[stage]++ }
func (r *countingRecorder) IncCartAddition(outcome string) { r.additions[outcome]++ }

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func amount(v float64) *float64 { return &v }

var container = &domain.Product{
	ID: "prod_10m3",
	Variants: []domain.Variant{
		{ID: "var_first", Prices: []domain.Price{{Amount: 350, CurrencyCode: "eur"}}},
		{ID: "var_second", CalculatedPrice: &domain.CalculatedPrice{CalculatedAmount: amount(300)}},
	},
}

var today = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

func newUseCase(client *mockCommerce, booked staticFetcher, recorder *countingRecorder) *UseCase {
	uc := NewUseCase(client, booked, recorder, nopLogger{})
	uc.timeProvider = fixedTime(today)
	return uc
}

func validRequest() *Request {
	return &Request{
		CartID:               "cart_01",
		ProductID:            "prod_10m3",
		DeliveryDate:         time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
		InstallationLocation: " Einfahrt links ",
		ContainerExchange:    true,
		ContactName:          "Max Mustermann",
		ContactPhone:         "+49 30 1234567",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	client := &mockCommerce{}
	recorder := newCountingRecorder()

	client.On("GetProduct", mock.Anything, "prod_10m3").Return(container, nil)
	client.On("AddLineItem", mock.Anything, "cart_01", domain.LineItem{
		VariantID: "var_first",
		Quantity:  1,
		Metadata: map[string]interface{}{
			domain.MetadataDeliveryDate:         "2024-06-14",
			domain.MetadataInstallationLocation: "Einfahrt links",
			domain.MetadataContainerExchange:    true,
			domain.MetadataContactName:          "Max Mustermann",
			domain.MetadataContactPhone:         "+49 30 1234567",
		},
	}).Return(nil)

	uc := newUseCase(client, staticFetcher{"2024-06-13", "2024-06-15"}, recorder)
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "var_first", resp.VariantID)
	assert.Equal(t, 1, resp.Quantity)
	assert.Equal(t, "2024-06-14", resp.DeliveryDate)
	require.NotNil(t, resp.Price)
	assert.Equal(t, 350.0, resp.Price.CalculatedAmount)
	assert.Equal(t, 1, recorder.additions[OutcomeAdded])
	client.AssertExpectations(t)
}

func TestUseCase_Execute_ExplicitVariant(t *testing.T) {
	client := &mockCommerce{}
	client.On("GetProduct", mock.Anything, "prod_10m3").Return(container, nil)
	client.On("AddLineItem", mock.Anything, "cart_01", mock.MatchedBy(func(item domain.LineItem) bool {
		return item.VariantID == "var_second" && item.Quantity == 3
	})).Return(nil)

	req := validRequest()
	req.VariantID = "var_second"
	req.Quantity = 3

	uc := newUseCase(client, staticFetcher{}, newCountingRecorder())
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 300.0, resp.Price.CalculatedAmount)
}

func TestUseCase_Execute_DateBooked(t *testing.T) {
	client := &mockCommerce{}
	recorder := newCountingRecorder()
	client.On("GetProduct", mock.Anything, "prod_10m3").Return(container, nil)

	uc := newUseCase(client, staticFetcher{"2024-06-14"}, recorder)
	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrDateBooked)
	assert.Equal(t, 1, recorder.rejected["select"])
	assert.Equal(t, 1, recorder.additions[OutcomeDateBooked])
	client.AssertNotCalled(t, "AddLineItem", mock.Anything, mock.Anything, mock.Anything)
}

// Время суток и часовой пояс выбранной даты не влияют на проверку
func TestUseCase_Execute_DateBookedLateEvening(t *testing.T) {
	client := &mockCommerce{}
	client.On("GetProduct", mock.Anything, "prod_10m3").Return(container, nil)

	req := validRequest()
	berlin := time.FixedZone("CEST", 2*60*60)
	req.DeliveryDate = time.Date(2024, time.June, 14, 23, 30, 0, 0, berlin)

	uc := newUseCase(client, staticFetcher{"2024-06-14"}, newCountingRecorder())
	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrDateBooked)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(r *Request)
		product    *domain.Product
		productErr error
		addErr     error
		wantErr    error
	}{
		{name: "missing cart", mutate: func(r *Request) { r.CartID = "" }, wantErr: ErrInvalidInput},
		{name: "missing date", mutate: func(r *Request) { r.DeliveryDate = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "missing location", mutate: func(r *Request) { r.InstallationLocation = "  " }, wantErr: ErrInvalidInput},
		{name: "missing contact name", mutate: func(r *Request) { r.ContactName = "" }, wantErr: ErrInvalidInput},
		{name: "missing contact phone", mutate: func(r *Request) { r.ContactPhone = "" }, wantErr: ErrInvalidInput},
		{name: "negative quantity", mutate: func(r *Request) { r.Quantity = -1 }, wantErr: ErrInvalidInput},
		{name: "quantity too large", mutate: func(r *Request) { r.Quantity = domain.MaxQuantity + 1 }, wantErr: ErrInvalidInput},
		{
			name:    "date in the past",
			mutate:  func(r *Request) { r.DeliveryDate = today.AddDate(0, 0, -1) },
			wantErr: ErrDateInPast,
		},
		{
			name:       "product not found",
			productErr: commerce.ErrProductNotFound,
			wantErr:    ErrProductNotFound,
		},
		{
			name:       "backend down",
			productErr: commerce.ErrInternal,
			wantErr:    ErrInternal,
		},
		{
			name:    "product without variants",
			product: &domain.Product{ID: "prod_10m3"},
			wantErr: ErrVariantNotFound,
		},
		{
			name:    "foreign variant",
			mutate:  func(r *Request) { r.VariantID = "var_other" },
			wantErr: ErrVariantNotFound,
		},
		{
			name:    "cart not found",
			addErr:  commerce.ErrCartNotFound,
			wantErr: ErrCartNotFound,
		},
		{
			name:    "backend rejects item",
			addErr:  commerce.ErrBadRequest,
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := tt.product
			if product == nil && tt.productErr == nil {
				product = container
			}

			client := &mockCommerce{}
			client.On("GetProduct", mock.Anything, mock.Anything).Return(product, tt.productErr).Maybe()
			client.On("AddLineItem", mock.Anything, mock.Anything, mock.Anything).Return(tt.addErr).Maybe()

			req := validRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			uc := newUseCase(client, staticFetcher{}, newCountingRecorder())
			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC)

	assert.True(t, isDateInPast(time.Date(2024, time.June, 9, 12, 0, 0, 0, time.UTC), now))
	assert.False(t, isDateInPast(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isDateInPast(time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC), now))
}
