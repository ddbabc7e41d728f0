package arenaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
)

// Client клиент для REST API бэкенда ArenaAxis
type Client struct {
	http     *resty.Client
	log      Logger
	observer CallObserver
}

// NewClient создает новый экземпляр клиента. token может быть пустым.
func NewClient(baseURL, token string, timeout time.Duration, log Logger, observer CallObserver) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if token != "" {
		httpClient.SetAuthToken(token)
	}

	return &Client{
		http:     httpClient,
		log:      log,
		observer: observer,
	}
}

// GetFieldsWithStatus получает поля магазина со статусами бронирований на дату
func (c *Client) GetFieldsWithStatus(ctx context.Context, storeID, sport string, date time.Time) (fields []domain.Field, err error) {
	defer c.observe("GetFieldsWithStatus", time.Now(), &err)

	query := map[string]string{
		"storeId": storeID,
		"date":    date.Format(domain.DateFormat),
	}
	if sport != "" {
		query["sportId"] = sport
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get("/fields/status")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var raw []FieldWithStatus
	if err := decodeData(resp.Body(), &raw); err != nil {
		return nil, err
	}

	fields = make([]domain.Field, len(raw))
	for i := range raw {
		fields[i] = raw[i].ToDomain()
	}
	return fields, nil
}

// GetOrders получает заказы магазина за период [dateFrom, dateTo]
func (c *Client) GetOrders(ctx context.Context, storeID string, dateFrom, dateTo time.Time) (orders []domain.Order, err error) {
	defer c.observe("GetOrders", time.Now(), &err)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"storeId":   storeID,
			"startDate": dateFrom.Format(domain.DateFormat),
			"endDate":   dateTo.Format(domain.DateFormat),
		}).
		Get("/orders")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var raw []Order
	if err := decodeData(resp.Body(), &raw); err != nil {
		return nil, err
	}

	orders = make([]domain.Order, len(raw))
	for i := range raw {
		orders[i] = raw[i].ToDomain()
	}
	return orders, nil
}

// GetAllFieldPricings получает все правила цен поля в порядке, заданном бэкендом
func (c *Client) GetAllFieldPricings(ctx context.Context, fieldID string) (rules []domain.PricingRule, err error) {
	defer c.observe("GetAllFieldPricings", time.Now(), &err)

	resp, err := c.http.R().
		SetContext(ctx).
		Get("/field-pricings/field/" + url.PathEscape(fieldID))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := decodeData(resp.Body(), &raw); err != nil {
		return nil, err
	}

	// Некорректное правило пропускается, остальные правила поля остаются в силе
	rules = make([]domain.PricingRule, 0, len(raw))
	for i, item := range raw {
		var rule domain.PricingRule
		if err := json.Unmarshal(item, &rule); err != nil {
			if c.log != nil {
				c.log.Warn("arenaapi: GetAllFieldPricings: field=%s rule #%d skipped: %v", fieldID, i, err)
			}
			if c.observer != nil {
				c.observer.SkippedRecord(SkipKindPricingRule)
			}
			continue
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// CreateFieldPricing создает правило цены по дню недели
func (c *Client) CreateFieldPricing(ctx context.Context, req *CreateFieldPricingRequest) (rule *domain.PricingRule, err error) {
	defer c.observe("CreateFieldPricing", time.Now(), &err)
	return c.createPricing(ctx, "/field-pricings", req)
}

// CreateSpecialDatePricing создает правило цены на конкретную дату
func (c *Client) CreateSpecialDatePricing(ctx context.Context, req *CreateSpecialDatePricingRequest) (rule *domain.PricingRule, err error) {
	defer c.observe("CreateSpecialDatePricing", time.Now(), &err)
	return c.createPricing(ctx, "/field-pricings/special-date", req)
}

// DeleteFieldPricing удаляет правило цены
func (c *Client) DeleteFieldPricing(ctx context.Context, pricingID string) (err error) {
	defer c.observe("DeleteFieldPricing", time.Now(), &err)

	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/field-pricings/" + url.PathEscape(pricingID))
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	return checkStatus(resp)
}

func (c *Client) createPricing(ctx context.Context, path string, body interface{}) (*domain.PricingRule, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var rule domain.PricingRule
	if err := decodeData(resp.Body(), &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (c *Client) observe(operation string, started time.Time, errp *error) {
	if c.observer != nil {
		c.observer.ObserveBackendCall(operation, started, *errp)
	}
	if *errp != nil && c.log != nil {
		c.log.Warn("arenaapi: %s failed: %v", operation, *errp)
	}
}

// checkStatus переводит статус-код ответа в ошибку клиента
func checkStatus(resp *resty.Response) error {
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrBadRequest, errorMessage(resp.Body()))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s",
			ErrInvalidResponse, resp.StatusCode(), errorMessage(resp.Body()))
	}
}

func errorMessage(body []byte) string {
	var e ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(body)
}

// decodeData разбирает тело ответа. Бэкенд оборачивает часть ответов в {"data": ...},
// поэтому сначала пробуем снять обертку.
func decodeData(body []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			trimmed = envelope.Data
		}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
