package blockedsvc

import (
	"context"
	"log"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"phishx/internal/core/appliance"
	perrors "phishx/internal/errors"
)

func NewEditor(a appliance.ApplianceHandler) *Editor {
	return &Editor{
		applianceHandler: a,
		working:          []string{},
		lastSaved:        []string{},
	}
}

// Editor keeps a working set of enabled service ids apart from the set last
// confirmed by the appliance. Only Save sends anything upstream.
type Editor struct {
	applianceHandler appliance.ApplianceHandler

	mu        sync.Mutex
	catalog   []appliance.BlockedService
	working   []string
	lastSaved []string
	loaded    bool
	saving    bool
	saved     bool
	errMsg    string
}

// Load reads the catalog and the enabled list together and resets the
// working set to what the appliance reports.
func (e *Editor) Load(ctx context.Context) (State, error) {
	var (
		g       errgroup.Group
		catalog appliance.BlockedServicesResponse
		enabled []string
	)
	g.Go(func() (err error) {
		catalog, err = e.applianceHandler.GetBlockedServices(ctx)
		return
	})
	g.Go(func() (err error) {
		enabled, err = e.applianceHandler.GetEnabledBlockedServices(ctx)
		return
	})
	err := g.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		log.Printf("[!] blocked services load failed: %v", err)
		e.errMsg = LoadFailedMessage
		return e.stateLocked(), err
	}

	e.catalog = catalog.BlockedServices
	if e.catalog == nil {
		e.catalog = []appliance.BlockedService{}
	}
	e.working = dedupe(enabled)
	e.lastSaved = slices.Clone(e.working)
	e.loaded = true
	e.saved = false
	e.errMsg = ""
	return e.stateLocked(), nil
}

// Toggle adds serviceId to the working set when absent and removes it when
// present. Ids are not checked against the catalog.
func (e *Editor) Toggle(serviceId string) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		return e.stateLocked(), ErrNotLoaded
	}
	if i := slices.Index(e.working, serviceId); i >= 0 {
		e.working = slices.Delete(slices.Clone(e.working), i, i+1)
	} else {
		e.working = append(slices.Clone(e.working), serviceId)
	}
	e.saved = false
	return e.stateLocked(), nil
}

// Save submits the whole working set. On failure the working set is kept so
// the user can retry.
func (e *Editor) Save(ctx context.Context) (State, error) {
	e.mu.Lock()
	if !e.loaded {
		state := e.stateLocked()
		e.mu.Unlock()
		return state, ErrNotLoaded
	}
	if e.saving {
		state := e.stateLocked()
		e.mu.Unlock()
		return state, perrors.New(perrors.KindConflict, "save already in progress")
	}
	e.saving = true
	e.saved = false
	e.errMsg = ""
	submitted := slices.Clone(e.working)
	e.mu.Unlock()

	err := e.applianceHandler.SetBlockedServices(ctx, submitted)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.saving = false
	if err != nil {
		log.Printf("[!] blocked services save failed: %v", err)
		e.errMsg = SaveFailedMessage
		return e.stateLocked(), err
	}
	e.lastSaved = submitted
	// an edit made while saving keeps the indicator off
	e.saved = sameMembers(e.working, submitted)
	return e.stateLocked(), nil
}

// Dirty reports whether the working set differs from the last saved one.
func (e *Editor) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !sameMembers(e.working, e.lastSaved)
}

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Editor) stateLocked() State {
	catalog := e.catalog
	if catalog == nil {
		catalog = []appliance.BlockedService{}
	}
	return State{
		Services: catalog,
		Enabled:  slices.Clone(e.working),
		Loaded:   e.loaded,
		Dirty:    !sameMembers(e.working, e.lastSaved),
		Saving:   e.saving,
		Saved:    e.saved,
		Error:    e.errMsg,
	}
}

func sameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
