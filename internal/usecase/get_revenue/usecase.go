package get_revenue

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/integrations/arenaapi"
)

// Дата игры берется из startTime текстом, без перевода часовых поясов
var playDatePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[T ]`)

// UseCase use case отчета о выручке магазина
type UseCase struct {
	client OrdersClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client OrdersClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute получает заказы за период и сводит выручку по полям и дням
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRevenue: user=%s, store=%s, from=%s, to=%s",
		req.UserID, req.StoreID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRevenue: validation failed: %v", err)
		return nil, err
	}

	orders, err := uc.client.GetOrders(ctx, req.StoreID, req.From, req.To)
	if err != nil {
		if errors.Is(err, arenaapi.ErrNotFound) {
			uc.logger.Warn("GetRevenue: store=%s not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("GetRevenue: failed to get orders of store=%s: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get orders: %v", ErrInternal, err)
	}

	resp := aggregate(orders)
	resp.StoreID = req.StoreID
	resp.From = req.From
	resp.To = req.To

	uc.logger.Info("GetRevenue: store=%s orders=%d slots=%d total=%d",
		req.StoreID, resp.OrderCount, resp.SlotCount, resp.Total)
	return resp, nil
}

func aggregate(orders []domain.Order) *Response {
	resp := &Response{OrderCount: len(orders)}
	byField := make(map[string]*FieldRevenue)
	byDay := make(map[string]*DayRevenue)

	for _, order := range orders {
		for _, detail := range order.Details {
			resp.Total += detail.Price
			resp.SlotCount++

			fr, ok := byField[detail.FieldID]
			if !ok {
				fr = &FieldRevenue{FieldID: detail.FieldID}
				byField[detail.FieldID] = fr
			}
			fr.Total += detail.Price
			fr.Slots++

			if m := playDatePattern.FindStringSubmatch(detail.StartTime); m != nil {
				dr, ok := byDay[m[1]]
				if !ok {
					dr = &DayRevenue{Date: m[1]}
					byDay[m[1]] = dr
				}
				dr.Total += detail.Price
				dr.Slots++
			}
		}
	}

	resp.ByField = make([]FieldRevenue, 0, len(byField))
	for _, fr := range byField {
		resp.ByField = append(resp.ByField, *fr)
	}
	sort.Slice(resp.ByField, func(i, j int) bool {
		if resp.ByField[i].Total != resp.ByField[j].Total {
			return resp.ByField[i].Total > resp.ByField[j].Total
		}
		return resp.ByField[i].FieldID < resp.ByField[j].FieldID
	})

	resp.ByDay = make([]DayRevenue, 0, len(byDay))
	for _, dr := range byDay {
		resp.ByDay = append(resp.ByDay, *dr)
	}
	sort.Slice(resp.ByDay, func(i, j int) bool {
		return resp.ByDay[i].Date < resp.ByDay[j].Date
	})

	return resp
}
