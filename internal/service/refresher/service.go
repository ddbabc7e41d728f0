package refresher

import (
	"context"
	"time"
)

const signalBuffer = 16

// Service держит сетки в памяти актуальными.
//
// Все обновления выполняются последовательно в горутине Run. Ошибка
// загрузки сетки оставляет в памяти предыдущий результат.
type Service struct {
	loader   GridLoader
	keys     GridKeys
	observer Observer
	logger   Logger
	settings Settings

	signals chan Reason
}

// NewService создает новый экземпляр сервиса обновления. observer может быть nil.
func NewService(loader GridLoader, keys GridKeys, observer Observer, settings Settings, logger Logger) *Service {
	return &Service{
		loader:   loader,
		keys:     keys,
		observer: observer,
		logger:   logger,
		settings: settings,
		signals:  make(chan Reason, signalBuffer),
	}
}

// PaymentCompleted обновляет сетки сразу и затем BurstCount раз с паузой
// BurstInterval. Новый сигнал во время серии начинает серию заново.
func (s *Service) PaymentCompleted() {
	_ = s.Trigger(ReasonPaymentCompleted)
}

// Visible вкладка снова стала видимой
func (s *Service) Visible() {
	_ = s.Trigger(ReasonVisibility)
}

// Navigated возврат на страницу через историю браузера
func (s *Service) Navigated() {
	_ = s.Trigger(ReasonNavigation)
}

// PricingChanged правила цен изменились
func (s *Service) PricingChanged() {
	_ = s.Trigger(ReasonPricingChanged)
}

// Trigger ставит обновление в очередь без блокировки
func (s *Service) Trigger(reason Reason) error {
	select {
	case s.signals <- reason:
		return nil
	default:
		s.logger.Warn("Refresher: signal %s dropped, queue is full", reason)
		return ErrBusy
	}
}

// Run обрабатывает расписание и сигналы до отмены ctx
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.settings.Interval)
	defer ticker.Stop()

	var (
		burstTicker *time.Ticker
		burstC      <-chan time.Time
		burstLeft   int
	)
	stopBurst := func() {
		if burstTicker != nil {
			burstTicker.Stop()
		}
		burstTicker, burstC, burstLeft = nil, nil, 0
	}
	defer stopBurst()

	s.logger.Info("Refresher: started, interval=%s burst=%dx%s",
		s.settings.Interval, s.settings.BurstCount, s.settings.BurstInterval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Refresher: stopped")
			return

		case <-ticker.C:
			s.refreshAll(ctx, ReasonTick)

		case reason := <-s.signals:
			s.refreshAll(ctx, reason)
			if reason == ReasonPaymentCompleted && s.settings.BurstCount > 0 {
				stopBurst()
				burstTicker = time.NewTicker(s.settings.BurstInterval)
				burstC = burstTicker.C
				burstLeft = s.settings.BurstCount
			}

		case <-burstC:
			s.refreshAll(ctx, ReasonPaymentBurst)
			burstLeft--
			if burstLeft <= 0 {
				stopBurst()
			}
		}
	}
}

// RefreshNow синхронно обновляет все сетки. Возвращает число неудачных загрузок.
func (s *Service) RefreshNow(ctx context.Context, reason Reason) int {
	return s.refreshAll(ctx, reason)
}

func (s *Service) refreshAll(ctx context.Context, reason Reason) int {
	keys := s.keys.Keys()
	if s.observer != nil {
		s.observer.SetWatchedGrids(len(keys))
	}

	failed := 0
	for _, key := range keys {
		if ctx.Err() != nil {
			return failed
		}

		_, err := s.loader.Load(ctx, key)
		if s.observer != nil {
			s.observer.ObserveRefresh(string(reason), err)
		}
		if err != nil {
			failed++
			s.logger.Warn("Refresher: %s refresh of store=%s date=%s failed, keeping previous grid: %v",
				reason, key.StoreID, key.Date, err)
		}
	}
	return failed
}
