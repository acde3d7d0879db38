package migration

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"daddeck/internal/migration/interfaces"
	"daddeck/internal/providers"
	"daddeck/internal/services"
	"daddeck/internal/structures"
)

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	metrics     providers.MetricsProviderInterface
	fileManager *FileManager
	wishlist    services.WishlistServiceInterface
	trades      services.TradeServiceInterface
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func NewScheduler(config *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, fileManager *FileManager, wishlist services.WishlistServiceInterface, trades services.TradeServiceInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		metrics:     metrics,
		fileManager: fileManager,
		wishlist:    wishlist,
		trades:      trades,
	}
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		if err := s.save(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted collection to file %s", s.config.Persistence.FilePath)
	})

	cleanup := s.config.Trade.CleanupInterval
	if cleanup <= 0 {
		cleanup = time.Hour
	}
	s.cron.AddFunc(gron.Every(cleanup), func() {
		s.trades.PruneConsumed()
		s.logger.Debugf(providers.TypeApp, "Pruned expired trade offers")
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore loads the persisted collection and wishlist snapshots. Both run
// in recovery mode: a damaged snapshot yields an empty state, not a
// startup failure.
func (s *Scheduler) Restore() error {
	if err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath); err != nil {
		return err
	}
	return s.wishlist.Load()
}

func (s *Scheduler) Persist() error {
	s.logger.Infof(providers.TypeApp, "Persisting collection to file...")
	if err := s.save(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func (s *Scheduler) save() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	if err := s.fileManager.SaveToFile(s.config.Persistence.FilePath); err != nil {
		return err
	}
	if err := s.wishlist.Save(); err != nil {
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}
