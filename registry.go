// Package-level process-wide active-region registry: every live Region
// registers itself here so process-exit signals can invoke teardown on all
// of them exactly once. Generalized from the teacher's name-keyed intrinsic
// handler registry (registry.go's sync.RWMutex-guarded map) — same
// concurrency pattern, repurposed from a static lookup table populated by
// init() to a dynamic add/remove set populated by Region lifecycle.
package region

import (
	"sync"

	"github.com/google/uuid"
)

var (
	activeRegions   = make(map[uuid.UUID]*Region)
	activeRegionsMu sync.RWMutex
)

func registerRegion(r *Region) {
	activeRegionsMu.Lock()
	defer activeRegionsMu.Unlock()
	activeRegions[r.id] = r
}

func unregisterRegion(r *Region) {
	activeRegionsMu.Lock()
	defer activeRegionsMu.Unlock()
	delete(activeRegions, r.id)
}

// DestroyAllRegions tears down every currently-registered region exactly
// once. Intended to be called from a process-exit signal handler so no
// region leaves the terminal in alternate-screen/raw-mode/cursor-hidden
// state if the host process is killed.
func DestroyAllRegions() {
	activeRegionsMu.RLock()
	regions := make([]*Region, 0, len(activeRegions))
	for _, r := range activeRegions {
		regions = append(regions, r)
	}
	activeRegionsMu.RUnlock()

	for _, r := range regions {
		r.Destroy(false)
	}
}

// ActiveRegionCount reports how many regions are currently registered
// (mainly useful for tests asserting destroy() actually unregisters).
func ActiveRegionCount() int {
	activeRegionsMu.RLock()
	defer activeRegionsMu.RUnlock()
	return len(activeRegions)
}
