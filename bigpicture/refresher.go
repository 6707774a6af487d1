package bigpicture

import (
	"context"
	"log"

	"github.com/redmie/lutrisview/catalog"
	"github.com/redmie/lutrisview/workers"
)

// RefreshState is the catalog refresher's load state
type RefreshState int

const (
	// RefreshIdle has no load in flight
	RefreshIdle RefreshState = iota
	// RefreshLoading has a load running in the background
	RefreshLoading
	// RefreshReady has just consumed a load result
	RefreshReady
)

// String returns the string representation of the state
func (s RefreshState) String() string {
	switch s {
	case RefreshIdle:
		return "Idle"
	case RefreshLoading:
		return "Loading"
	case RefreshReady:
		return "Ready"
	default:
		return "Unknown"
	}
}

// LoadPool runs one catalog load at a time. *workers.Pool satisfies it.
type LoadPool interface {
	Submit(task func() (*catalog.Catalog, error)) bool
	Poll() (workers.Result[*catalog.Catalog], bool)
	Stop()
}

// LoadFunc loads a fresh catalog. It may block for as long as the
// inventory command runs.
type LoadFunc func(ctx context.Context) (*catalog.Catalog, error)

// Refresher keeps the current catalog and reloads it in the background.
// Update is called once per frame from the ebiten goroutine and never
// blocks.
type Refresher struct {
	pool      LoadPool
	load      LoadFunc
	onCatalog func(*catalog.Catalog)

	state     RefreshState
	current   *catalog.Catalog
	reload    bool
	attempted bool
	lastErr   error
}

// NewRefresher creates an idle refresher. onCatalog, if not nil, is called
// on the ebiten goroutine each time a new catalog replaces the old one.
func NewRefresher(pool LoadPool, load LoadFunc, onCatalog func(*catalog.Catalog)) *Refresher {
	return &Refresher{
		pool:      pool,
		load:      load,
		onCatalog: onCatalog,
	}
}

// Update starts a load when one is due and collects a finished one.
func (r *Refresher) Update() {
	if r.state == RefreshReady {
		r.state = RefreshIdle
	}

	switch r.state {
	case RefreshIdle:
		if r.attempted && !r.reload {
			return
		}
		if !r.pool.Submit(r.task) {
			// Pool still winding down a previous task; try next frame
			return
		}
		r.attempted = true
		r.reload = false
		r.state = RefreshLoading

	case RefreshLoading:
		res, ok := r.pool.Poll()
		if !ok {
			return
		}
		r.state = RefreshReady
		if res.Err != nil {
			r.lastErr = res.Err
			log.Printf("Failed to load game list: %v", res.Err)
			return
		}
		r.lastErr = nil
		r.current = res.Value
		log.Printf("Loaded %d games", r.current.Len())
		if r.onCatalog != nil {
			r.onCatalog(r.current)
		}
	}
}

func (r *Refresher) task() (*catalog.Catalog, error) {
	return r.load(context.Background())
}

// RequestReload asks for a new load. While a load is in flight the request
// is remembered and served once that load has been consumed; it never
// starts a second concurrent load.
func (r *Refresher) RequestReload() {
	r.reload = true
}

// State returns the load state
func (r *Refresher) State() RefreshState {
	return r.state
}

// Catalog returns the latest successfully loaded catalog, or nil
func (r *Refresher) Catalog() *catalog.Catalog {
	return r.current
}

// Err returns the error of the most recent load, or nil if it succeeded
func (r *Refresher) Err() error {
	return r.lastErr
}

// Failed reports whether no catalog is available because loading failed
func (r *Refresher) Failed() bool {
	return r.current == nil && r.lastErr != nil && r.state != RefreshLoading
}

// Stop stops the pool without waiting for a load in flight
func (r *Refresher) Stop() {
	r.pool.Stop()
}
