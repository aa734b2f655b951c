package cmd

import (
	"context"
	"fmt"
	"log/slog"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpadapter "canteen/internal/adapters/in/http"
	"canteen/internal/adapters/out/docrepo/menurepo"
	"canteen/internal/adapters/out/docrepo/notificationrepo"
	"canteen/internal/adapters/out/docrepo/orderrepo"
	"canteen/internal/adapters/out/memstore"
	"canteen/internal/adapters/out/postgres/docstore"
	"canteen/internal/core/application/liveview"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/services"
	"canteen/internal/core/ports"
	"canteen/internal/jobs"
)

// CompositionRoot builds and owns the object graph: the document store, the
// repositories on top of it, the live views and the background jobs.
type CompositionRoot struct {
	logger *slog.Logger

	store         ports.DocumentStore
	orders        ports.OrderRepository
	notifications ports.NotificationRepository
	menuItems     ports.MenuItemRepository

	views      *liveview.Manager
	jobManager *jobs.JobManager
}

// NewCompositionRoot wires the full graph for the configured store driver.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	store, refresher, err := newDocumentStore(config, logger)
	if err != nil {
		return nil, err
	}

	orders, err := orderrepo.NewRepository(store, logger)
	if err != nil {
		return nil, err
	}
	notifications, err := notificationrepo.NewRepository(store)
	if err != nil {
		return nil, err
	}
	menuItems, err := menurepo.NewRepository(store)
	if err != nil {
		return nil, err
	}

	views, err := liveview.NewManager(orders, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		logger:        logger,
		store:         store,
		orders:        orders,
		notifications: notifications,
		menuItems:     menuItems,
		views:         views,
		jobManager:    jobs.NewJobManager(refresher, logger),
	}, nil
}

// newDocumentStore selects the backend. The in-memory store publishes its own
// snapshots, so only the postgres store comes with a refresher.
func newDocumentStore(config Config, logger *slog.Logger) (ports.DocumentStore, jobs.Refresher, error) {
	switch config.StoreDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
			config.DBName, config.DBSslMode)
		db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		store, err := docstore.NewStore(db, logger)
		if err != nil {
			return nil, nil, err
		}
		if err = store.Migrate(); err != nil {
			return nil, nil, fmt.Errorf("migrate documents table: %w", err)
		}
		return store, store, nil
	default:
		return memstore.NewStore(), nil, nil
	}
}

// Start opens the live views and launches the background jobs.
func (c *CompositionRoot) Start(ctx context.Context) error {
	if err := c.views.Start(ctx); err != nil {
		return err
	}
	return c.jobManager.StartAll()
}

// Stop shuts down the background jobs and the live views.
func (c *CompositionRoot) Stop() {
	c.jobManager.StopAll()
	c.views.Stop()
}

func (c *CompositionRoot) CreatePrepareOrderCommandHandler() commands.PrepareOrderCommandHandler {
	return commands.NewPrepareOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateCompleteOrderByScanCommandHandler() commands.CompleteOrderByScanCommandHandler {
	return commands.NewCompleteOrderByScanCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.menuItems)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuItems)
}

func (c *CompositionRoot) CreateRemoveMenuItemCommandHandler() commands.RemoveMenuItemCommandHandler {
	return commands.NewRemoveMenuItemCommandHandler(c.menuItems)
}

func (c *CompositionRoot) CreateGetBucketOrdersQueryHandler() queries.GetBucketOrdersQueryHandler {
	return queries.NewGetBucketOrdersQueryHandler(c.views)
}

func (c *CompositionRoot) CreateGetRecentCompletedOrdersQueryHandler() queries.GetRecentCompletedOrdersQueryHandler {
	return queries.NewGetRecentCompletedOrdersQueryHandler(c.views,
		services.NewRetentionPolicy(services.DefaultRetentionWindow))
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.notifications)
}

func (c *CompositionRoot) CreateGetMenuItemsQueryHandler() queries.GetMenuItemsQueryHandler {
	return queries.NewGetMenuItemsQueryHandler(c.menuItems)
}

// CreateHTTPServer assembles the REST adapter from the handler graph.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreatePrepareOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateCompleteOrderByScanCommandHandler(),
		c.CreateAddMenuItemCommandHandler(),
		c.CreateUpdateMenuItemCommandHandler(),
		c.CreateRemoveMenuItemCommandHandler(),
		c.CreateGetBucketOrdersQueryHandler(),
		c.CreateGetRecentCompletedOrdersQueryHandler(),
		c.CreateGetNotificationsQueryHandler(),
		c.CreateGetMenuItemsQueryHandler(),
	)
}
