package main

import (
	"github.com/MoodLink/ArenaAxis-sub000/internal/config"
	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/infra/cache"
	"github.com/MoodLink/ArenaAxis-sub000/internal/integrations/arenaapi"
	"github.com/MoodLink/ArenaAxis-sub000/internal/resolver"
	pricingService "github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing"
	getSlotGridUC "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_slot_grid"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/logger"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/metrics"
)

// core общие зависимости serve и grid
type core struct {
	client     *arenaapi.Client
	grids      *cache.GridStore
	pricingSvc *pricingService.Service
	slotGrid   *getSlotGridUC.UseCase
}

// buildCore собирает клиента бэкенда, кэши, резолверы и use case сетки.
// metricsCollector и snapshots могут быть nil.
func buildCore(
	cfg *config.Config,
	log *logger.Logger,
	metricsCollector *metrics.Metrics,
	snapshots getSlotGridUC.SnapshotRepository,
) (*core, error) {
	client := arenaapi.NewClient(
		cfg.ArenaAPI.URL,
		cfg.ArenaAPI.Token,
		cfg.ArenaAPI.TimeoutDuration(),
		log,
		metricsCollector,
	)

	pricingCache, err := cache.NewPricingCache(cfg.Cache.PricingSize, cfg.Cache.PricingTTLDuration())
	if err != nil {
		return nil, err
	}
	grids, err := cache.NewGridStore(cfg.Cache.GridSize, func(key domain.GridKey) {
		log.Info("Grid evicted from memory: store=%s sport=%s date=%s", key.StoreID, key.Sport, key.Date)
	})
	if err != nil {
		return nil, err
	}

	slotResolver := resolver.New(log, metricsCollector)
	pricingSvc := pricingService.NewService(client, pricingCache, slotResolver, log)
	slotGrid := getSlotGridUC.NewUseCase(client, pricingSvc, slotResolver, grids, snapshots, log)

	return &core{
		client:     client,
		grids:      grids,
		pricingSvc: pricingSvc,
		slotGrid:   slotGrid,
	}, nil
}
