package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/emoorm/storefront/internal/remote"
	"github.com/emoorm/storefront/pkg/db/models"
	"github.com/emoorm/storefront/pkg/logger"
	"github.com/emoorm/storefront/pkg/metrics"
	"go.uber.org/multierr"
	"golang.org/x/sync/singleflight"
)

// Source is the remote catalog read surface the cache loads from.
type Source interface {
	ListActiveProducts(ctx context.Context) ([]models.ProductRecord, error)
	ListActiveStores(ctx context.Context) ([]remote.StoreView, error)
}

// State is the cache lifecycle phase.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateReady
)

// Snapshot is an immutable view of the merged catalog. Callers must not
// mutate the slices.
type Snapshot struct {
	Products   []Product
	Stores     []Store
	Categories []string
	Brands     []string
}

// Options tunes the cache.
type Options struct {
	LoadTimeout time.Duration
	UseSeed     bool
}

const defaultLoadTimeout = 10 * time.Second

// Cache consolidates the remote catalog with the static seed. One load runs
// at a time regardless of caller count; a failed load degrades to seed-only
// data and still lands in Ready so the storefront keeps rendering.
type Cache struct {
	source  Source
	logg    *logger.Logger
	metrics *metrics.CatalogMetrics
	timeout time.Duration
	useSeed bool

	group singleflight.Group

	mu    sync.RWMutex
	state State
	snap  Snapshot
}

const loadKey = "catalog"

func NewCache(source Source, logg *logger.Logger, met *metrics.CatalogMetrics, opts Options) (*Cache, error) {
	if source == nil {
		return nil, fmt.Errorf("catalog source is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	timeout := opts.LoadTimeout
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	return &Cache{
		source:  source,
		logg:    logg,
		metrics: met,
		timeout: timeout,
		useSeed: opts.UseSeed,
	}, nil
}

// Snapshot returns the merged catalog, loading it first if needed. Concurrent
// callers share a single load. The only error surfaced is the caller's own
// context expiring while waiting.
func (c *Cache) Snapshot(ctx context.Context) (Snapshot, error) {
	c.mu.RLock()
	if c.state == StateReady {
		snap := c.snap
		c.mu.RUnlock()
		return snap, nil
	}
	c.mu.RUnlock()

	ch := c.group.DoChan(loadKey, func() (any, error) {
		return c.load(), nil
	})

	select {
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case res := <-ch:
		return res.Val.(Snapshot), nil
	}
}

// Lookup finds a product by id in the current snapshot.
func (c *Cache) Lookup(ctx context.Context, id string) (Product, bool, error) {
	snap, err := c.Snapshot(ctx)
	if err != nil {
		return Product{}, false, err
	}
	for _, product := range snap.Products {
		if product.ID == id {
			return product, true, nil
		}
	}
	return Product{}, false, nil
}

// Invalidate drops the snapshot so the next read reloads. Reads already in
// flight complete against the load they joined.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.state = StateEmpty
	c.snap = Snapshot{}
	c.mu.Unlock()
	c.metrics.IncInvalidation()
}

// State reports the current lifecycle phase.
func (c *Cache) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// load runs detached from any caller so one slow or cancelled request cannot
// abort the shared load. The timeout is treated like any other remote failure.
func (c *Cache) load() Snapshot {
	c.setState(StateLoading)
	finish := c.metrics.LoadStarted()
	defer finish()
	start := time.Now()

	loadCtx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	var (
		wg         sync.WaitGroup
		records    []models.ProductRecord
		views      []remote.StoreView
		productErr error
		storeErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		records, productErr = c.source.ListActiveProducts(loadCtx)
	}()
	go func() {
		defer wg.Done()
		views, storeErr = c.source.ListActiveStores(loadCtx)
	}()
	wg.Wait()

	var seedProducts []Product
	var seedStores []Store
	if c.useSeed {
		seedProducts, seedStores = Seed()
	}

	fetchErr := multierr.Combine(productErr, storeErr)

	var products []Product
	var stores []Store
	if fetchErr != nil {
		c.logg.Error(loadCtx, "catalog load failed, serving seed only", fetchErr)
		products = seedProducts
		stores = seedStores
	} else {
		// Remote listings come first so fresh data wins placement. Ids are
		// not deduplicated: remote ids are UUIDs and seed ids short
		// numerics, so a collision would keep both records.
		products = make([]Product, 0, len(records)+len(seedProducts))
		for _, record := range records {
			products = append(products, AdaptProduct(record))
		}
		products = append(products, seedProducts...)

		stores = make([]Store, 0, len(views)+len(seedStores))
		for _, view := range views {
			stores = append(stores, AdaptStore(view))
		}
		stores = append(stores, seedStores...)
	}

	snap := Snapshot{
		Products:   products,
		Stores:     stores,
		Categories: distinctCategories(products),
		Brands:     distinctBrands(products),
	}

	c.mu.Lock()
	c.snap = snap
	c.state = StateReady
	c.mu.Unlock()

	c.metrics.ObserveLoad(time.Since(start), fetchErr != nil)
	return snap
}

func (c *Cache) setState(state State) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

func distinctCategories(products []Product) []string {
	return distinct(products, func(p Product) string { return p.Category })
}

func distinctBrands(products []Product) []string {
	return distinct(products, func(p Product) string { return p.Brand })
}

// distinct keeps first-seen order and skips empty values.
func distinct(products []Product, key func(Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	values := make([]string, 0, len(products))
	for _, product := range products {
		v := key(product)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
