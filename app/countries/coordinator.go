package countries

import (
	"context"
	"strings"
	"sync"

	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/models"
)

// Status is the lifecycle of one filter change.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

type trigger int

const (
	triggerLoad trigger = iota
	triggerTerm
	triggerRegion
)

// Snapshot is the published state of a coordinator.
type Snapshot struct {
	Generation uint64
	SearchTerm string
	Region     string
	Status     Status
	Countries  []models.Country
}

// Coordinator reconciles a search term and a region against the Client.
// Every change gets a generation number; results of superseded generations
// are dropped and their requests canceled.
type Coordinator struct {
	client Client
	log    logger.Logger

	root      context.Context
	closeRoot context.CancelFunc
	wg        sync.WaitGroup

	mu       sync.Mutex
	term     string
	region   string
	gen      uint64
	cancel   context.CancelFunc
	snapshot Snapshot
	changed  chan struct{}
	closed   bool
}

// NewCoordinator returns an idle coordinator. Close releases it.
func NewCoordinator(client Client, log logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NewNullLogger()
	}
	root, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		client:    client,
		log:       log,
		root:      root,
		closeRoot: cancel,
		snapshot:  Snapshot{Status: StatusIdle, Countries: []models.Country{}},
		changed:   make(chan struct{}),
	}
}

// Load issues the initial fetch of every country.
func (c *Coordinator) Load() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startLocked(triggerLoad)
}

// SetSearchTerm records term and refetches with it as the primary query.
func (c *Coordinator) SetSearchTerm(term string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.term = term
	return c.startLocked(triggerTerm)
}

// SetRegion records region, lower-cased, and refetches with it as the primary query.
func (c *Coordinator) SetRegion(region string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.region = strings.ToLower(strings.TrimSpace(region))
	return c.startLocked(triggerRegion)
}

// Snapshot returns the current published state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.snapshot
	s.Countries = append([]models.Country(nil), c.snapshot.Countries...)
	return s
}

// Wait blocks until generation gen has resolved or been superseded, then
// returns the snapshot at that moment.
func (c *Coordinator) Wait(ctx context.Context, gen uint64) (Snapshot, error) {
	for {
		c.mu.Lock()
		done := c.closed || c.gen > gen || (c.snapshot.Generation >= gen && c.snapshot.Status != StatusLoading)
		changed := c.changed
		c.mu.Unlock()

		if done {
			return c.Snapshot(), nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return c.Snapshot(), ctx.Err()
		}
	}
}

// Close cancels in-flight work and waits for it to stop.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.broadcastLocked()
	c.mu.Unlock()

	c.closeRoot()
	c.wg.Wait()
}

func (c *Coordinator) startLocked(t trigger) uint64 {
	if c.closed {
		return c.gen
	}
	if c.cancel != nil {
		c.cancel()
	}

	c.gen++
	gen, term, region := c.gen, c.term, c.region
	ctx, cancel := context.WithCancel(c.root)
	c.cancel = cancel

	c.snapshot.Generation = gen
	c.snapshot.SearchTerm = term
	c.snapshot.Region = region
	c.snapshot.Status = StatusLoading
	c.broadcastLocked()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()
		countries, err := c.reconcile(ctx, t, term, region)
		c.publish(gen, countries, err)
	}()
	return gen
}

// reconcile runs the primary fetch for whichever field changed and filters
// by the other one locally.
func (c *Coordinator) reconcile(ctx context.Context, t trigger, term, region string) ([]models.Country, error) {
	switch {
	case t == triggerTerm && term != "":
		found, err := c.client.FetchByName(ctx, term)
		if err != nil || region == "" {
			return found, err
		}
		return filter(found, func(country *models.Country) bool { return country.InRegion(region) }), nil

	case t == triggerRegion && region != "":
		found, err := c.client.FetchByRegion(ctx, region)
		if err != nil || term == "" {
			return found, err
		}
		return filter(found, func(country *models.Country) bool { return country.NameContains(term) }), nil

	// The term was cleared: fall back to the region alone.
	case t == triggerTerm && region != "":
		return c.client.FetchByRegion(ctx, region)

	// The region was cleared: fall back to the term alone.
	case t == triggerRegion && term != "":
		return c.client.FetchByName(ctx, term)

	default:
		return c.client.FetchAll(ctx)
	}
}

func (c *Coordinator) publish(gen uint64, countries []models.Country, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.closed {
		c.log.Debug("discarding stale country result", map[string]interface{}{
			"generation": gen,
			"latest":     c.gen,
		})
		return
	}

	if err != nil {
		c.log.Error(err, map[string]interface{}{
			"generation": gen,
			"term":       c.snapshot.SearchTerm,
			"region":     c.snapshot.Region,
		})
		c.snapshot.Status = StatusFailed
		c.snapshot.Countries = []models.Country{}
	} else {
		if countries == nil {
			countries = []models.Country{}
		}
		c.snapshot.Status = StatusSuccess
		c.snapshot.Countries = countries
	}
	c.broadcastLocked()
}

func (c *Coordinator) broadcastLocked() {
	close(c.changed)
	c.changed = make(chan struct{})
}

func filter(in []models.Country, keep func(*models.Country) bool) []models.Country {
	out := make([]models.Country, 0, len(in))
	for i := range in {
		if keep(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}
