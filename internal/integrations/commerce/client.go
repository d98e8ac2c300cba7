package commerce

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/m04kA/container-storefront/internal/domain"
)

const publishableKeyHeader = "x-publishable-api-key"

// Названия операций для метрик
const (
	opListProductTags = "list_product_tags"
	opGetBookedDates  = "get_booked_dates"
	opListCategories  = "list_categories"
	opListProducts    = "list_products"
	opGetProduct      = "get_product"
	opAddLineItem     = "add_line_item"
)

// Client клиент для работы со store API commerce-бэкенда
type Client struct {
	baseURL        string
	publishableKey string
	regionID       string
	httpClient     *http.Client
	observer       Observer
	log            Logger
}

// NewClient создает новый экземпляр клиента commerce-бэкенда
func NewClient(baseURL, publishableKey, regionID string, timeout time.Duration, observer Observer, log Logger) *Client {
	if observer == nil {
		observer = noopObserver{}
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		publishableKey: publishableKey,
		regionID:       regionID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		observer: observer,
		log:      log,
	}
}

// ListProductTags получает все теги товаров
func (c *Client) ListProductTags(ctx context.Context) ([]domain.ProductTag, error) {
	var resp productTagsResponse
	if err := c.get(ctx, opListProductTags, "/store/product-tags", nil, &resp); err != nil {
		return nil, notFoundAsInvalid(err, "product tags")
	}

	tags := make([]domain.ProductTag, len(resp.ProductTags))
	for i, t := range resp.ProductTags {
		tags[i] = t.ToDomain()
	}
	return tags, nil
}

// GetBookedDates получает даты, на которые товар уже забронирован
func (c *Client) GetBookedDates(ctx context.Context, productID string) ([]string, error) {
	path := fmt.Sprintf("/store/products/%s/available-dates", url.PathEscape(productID))

	var resp availableDatesResponse
	if err := c.get(ctx, opGetBookedDates, path, nil, &resp); err != nil {
		if err == errNotFound {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if resp.BookedDates == nil {
		return []string{}, nil
	}
	return resp.BookedDates, nil
}

// GetCategoryByHandle ищет категорию по точному handle
func (c *Client) GetCategoryByHandle(ctx context.Context, handle string) (*domain.Category, error) {
	query := url.Values{}
	query.Set("handle", handle)
	query.Set("fields", "id,name,handle")

	var resp categoriesResponse
	if err := c.get(ctx, opListCategories, "/store/product-categories", query, &resp); err != nil {
		if err == errNotFound {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if len(resp.ProductCategories) == 0 {
		return nil, ErrCategoryNotFound
	}

	category := resp.ProductCategories[0].ToDomain()
	return &category, nil
}

// ListCategories получает список категорий
func (c *Client) ListCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("fields", "id,name,handle")

	var resp categoriesResponse
	if err := c.get(ctx, opListCategories, "/store/product-categories", query, &resp); err != nil {
		return nil, notFoundAsInvalid(err, "product categories")
	}

	categories := make([]domain.Category, len(resp.ProductCategories))
	for i, cat := range resp.ProductCategories {
		categories[i] = cat.ToDomain()
	}
	return categories, nil
}

// ListProducts получает страницу товаров с фильтрацией по тегу и категории
func (c *Client) ListProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error) {
	query := url.Values{}
	if filter.TagID != nil {
		query.Set("tag_id", *filter.TagID)
	}
	if filter.CategoryID != nil {
		query.Set("category_id", *filter.CategoryID)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}
	if c.regionID != "" {
		query.Set("region_id", c.regionID)
	}
	query.Set("fields", "*variants.calculated_price,+variants.prices")

	var resp productsResponse
	if err := c.get(ctx, opListProducts, "/store/products", query, &resp); err != nil {
		return nil, notFoundAsInvalid(err, "products")
	}

	products := make([]domain.Product, len(resp.Products))
	for i, p := range resp.Products {
		products[i] = p.ToDomain()
	}
	return &domain.ProductPage{Products: products, Count: resp.Count}, nil
}

// GetProduct получает товар по ID
func (c *Client) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	path := fmt.Sprintf("/store/products/%s", url.PathEscape(productID))
	query := url.Values{}
	if c.regionID != "" {
		query.Set("region_id", c.regionID)
	}

	var resp productResponse
	if err := c.get(ctx, opGetProduct, path, query, &resp); err != nil {
		if err == errNotFound {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	product := resp.Product.ToDomain()
	return &product, nil
}

// AddLineItem добавляет позицию в корзину
func (c *Client) AddLineItem(ctx context.Context, cartID string, item domain.LineItem) error {
	path := fmt.Sprintf("/store/carts/%s/line-items", url.PathEscape(cartID))
	body := addLineItemRequest{
		VariantID: item.VariantID,
		Quantity:  item.Quantity,
		Metadata:  item.Metadata,
	}

	var resp cartResponse
	if err := c.do(ctx, opAddLineItem, http.MethodPost, path, nil, body, &resp); err != nil {
		if err == errNotFound {
			return ErrCartNotFound
		}
		return err
	}
	return nil
}

// notFoundAsInvalid превращает 404 списочного эндпоинта в ErrInvalidResponse
func notFoundAsInvalid(err error, resource string) error {
	if err == errNotFound {
		return fmt.Errorf("%w: %s endpoint returned 404", ErrInvalidResponse, resource)
	}
	return err
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, out)
}

// do выполняет запрос к бэкенду и декодирует ответ
// 404 возвращается как errNotFound, чтобы вызывающий метод выбрал свою ошибку
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body interface{}, out interface{}) error {
	start := time.Now()
	status := "error"
	defer func() {
		c.observer.ObserveBackendRequest(op, status, time.Since(start))
	}()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	if c.publishableKey != "" {
		req.Header.Set(publishableKeyHeader, c.publishableKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	status = strconv.Itoa(resp.StatusCode)

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode == http.StatusBadRequest:
		msg := readErrorMessage(resp.Body)
		c.log.Warn("commerce %s %s: bad request: %s", method, path, msg)
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	default:
		msg := readErrorMessage(resp.Body)
		c.log.Warn("commerce %s %s: unexpected status=%d: %s", method, path, resp.StatusCode, msg)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readErrorMessage достаёт message из тела ошибки, иначе возвращает тело как есть
func readErrorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))
	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(raw)
}
