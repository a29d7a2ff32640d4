package region

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRegisterUnregisterRoundTrips(t *testing.T) {
	before := ActiveRegionCount()
	r := &Region{id: uuid.New()}
	registerRegion(r)
	if ActiveRegionCount() != before+1 {
		t.Fatalf("ActiveRegionCount() = %d, want %d", ActiveRegionCount(), before+1)
	}
	unregisterRegion(r)
	if ActiveRegionCount() != before {
		t.Fatalf("ActiveRegionCount() = %d, want %d", ActiveRegionCount(), before)
	}
}

func TestUnregisterUnknownRegionIsNoop(t *testing.T) {
	before := ActiveRegionCount()
	unregisterRegion(&Region{id: uuid.New()})
	if ActiveRegionCount() != before {
		t.Errorf("ActiveRegionCount() changed after unregistering an unknown region")
	}
}

func TestActiveRegionCountIncludesConstructedRegion(t *testing.T) {
	// A *Region registered without NewRegion's full wiring (no resizeStop
	// channel) would panic on Destroy; DestroyAllRegions is exercised
	// end-to-end via fully constructed regions in region_test.go instead.
	var buf strings.Builder
	r, err := NewRegion(Options{Output: &buf, Width: 10, Height: 2, DisableThrottle: true})
	if err != nil {
		t.Fatalf("NewRegion() error = %v", err)
	}
	defer r.Destroy(false)
	if ActiveRegionCount() == 0 {
		t.Error("expected at least one active region")
	}
}
