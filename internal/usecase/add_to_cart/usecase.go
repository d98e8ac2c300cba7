package add_to_cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/container-storefront/internal/domain"
	"github.com/m04kA/container-storefront/internal/integrations/commerce"
	"github.com/m04kA/container-storefront/internal/service/availability"
)

// Результаты добавления в корзину для метрик
const (
	OutcomeAdded      = "added"
	OutcomeDateBooked = "date_booked"
	OutcomeRejected   = "rejected"
	OutcomeFailed     = "failed"
)

// UseCase use case для добавления контейнера в корзину с датой доставки
type UseCase struct {
	commerce     CommerceClient
	bookedDates  BookedDatesFetcher
	recorder     Recorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	commerceClient CommerceClient,
	bookedDates BookedDatesFetcher,
	recorder Recorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		commerce:     commerceClient,
		bookedDates:  bookedDates,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет дату доставки и добавляет позицию в корзину
// Занятые даты читаются заново при каждом вызове, кэша нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddToCart: validation failed: %v", err)
		uc.recorder.IncCartAddition(OutcomeRejected)
		return nil, err
	}

	deliveryDate := domain.BookedDateOf(req.DeliveryDate).String()
	uc.logger.Info("AddToCart: cart=%s, product=%s, variant=%s, qty=%d, date=%s",
		req.CartID, req.ProductID, req.VariantID, req.Quantity, deliveryDate)

	if isDateInPast(req.DeliveryDate, uc.timeProvider.Now()) {
		uc.logger.Warn("AddToCart: delivery date %s is in the past", deliveryDate)
		uc.recorder.IncCartAddition(OutcomeRejected)
		return nil, ErrDateInPast
	}

	// 1. Товар и вариант
	product, err := uc.commerce.GetProduct(ctx, req.ProductID)
	if err != nil {
		uc.recorder.IncCartAddition(OutcomeFailed)
		if errors.Is(err, commerce.ErrProductNotFound) {
			uc.logger.Warn("AddToCart: product id=%s not found", req.ProductID)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("AddToCart: failed to get product id=%s: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	variantID, err := selectVariant(product, req.VariantID)
	if err != nil {
		uc.logger.Warn("AddToCart: %v", err)
		uc.recorder.IncCartAddition(OutcomeRejected)
		return nil, err
	}

	// 2. Проверка даты по свежему списку занятых дат
	guard := availability.NewGuard(req.ProductID, uc.recorder)
	guard.Load(ctx, uc.bookedDates)

	if err := guard.Select(req.DeliveryDate); err != nil {
		return nil, uc.dateRejected(deliveryDate, err)
	}
	date, err := guard.ValidateSubmission()
	if err != nil {
		return nil, uc.dateRejected(deliveryDate, err)
	}

	// 3. Добавление позиции
	deliveryDate = domain.BookedDateOf(date).String()
	item := domain.LineItem{
		VariantID: variantID,
		Quantity:  req.Quantity,
		Metadata:  buildMetadata(req, deliveryDate),
	}

	if err := uc.commerce.AddLineItem(ctx, req.CartID, item); err != nil {
		uc.recorder.IncCartAddition(OutcomeFailed)
		switch {
		case errors.Is(err, commerce.ErrCartNotFound):
			uc.logger.Warn("AddToCart: cart id=%s not found", req.CartID)
			return nil, ErrCartNotFound
		case errors.Is(err, commerce.ErrBadRequest):
			uc.logger.Warn("AddToCart: backend rejected line item for cart=%s: %v", req.CartID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("AddToCart: failed to add line item to cart=%s: %v", req.CartID, err)
			return nil, fmt.Errorf("%w: failed to add line item: %v", ErrInternal, err)
		}
	}

	uc.recorder.IncCartAddition(OutcomeAdded)
	uc.logger.Info("AddToCart: added variant=%s to cart=%s for date=%s", variantID, req.CartID, deliveryDate)

	resp := &Response{
		CartID:       req.CartID,
		ProductID:    req.ProductID,
		VariantID:    variantID,
		Quantity:     req.Quantity,
		DeliveryDate: deliveryDate,
	}
	if price, ok := domain.VariantPriceByID(product, variantID); ok {
		resp.Price = &price
	}

	return resp, nil
}

func (uc *UseCase) dateRejected(deliveryDate string, err error) error {
	if errors.Is(err, availability.ErrDateBooked) {
		uc.logger.Warn("AddToCart: delivery date %s is already booked", deliveryDate)
		uc.recorder.IncCartAddition(OutcomeDateBooked)
		return ErrDateBooked
	}
	uc.logger.Error("AddToCart: date guard failed: %v", err)
	uc.recorder.IncCartAddition(OutcomeFailed)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
