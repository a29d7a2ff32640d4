package region

import (
	"strings"
	"testing"
	"time"
)

func TestPipelineRenderBlockingProducesOutput(t *testing.T) {
	var buf strings.Builder
	p := NewPipelineRegion(PipelineOptions{Output: &buf, Width: 20, Height: 3})
	defer p.Stop()

	p.RenderBlocking(TextComponent("hello"))

	deadline := time.After(time.Second)
	for buf.Len() == 0 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for pipeline output")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("output = %q, want it to contain %q", buf.String(), "hello")
	}
}

func TestPipelineRenderDropsFramesWhenSaturated(t *testing.T) {
	p := NewPipelineRegion(PipelineOptions{Output: &strings.Builder{}, Width: 10, Height: 2})
	defer p.Stop()

	// Render should never block regardless of how many frames are already
	// in flight, since a full pipeline drops the newest frame.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			p.Render(TextComponent("frame"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Render() blocked; expected non-blocking drop-on-saturation")
	}
}

func TestPipelineStopDrainsOutputStage(t *testing.T) {
	var buf strings.Builder
	p := NewPipelineRegion(PipelineOptions{Output: &buf, Width: 10, Height: 2})
	p.RenderBlocking(TextComponent("last"))
	time.Sleep(10 * time.Millisecond)
	p.Stop()
	// Stop must return (not hang) once the output stage has drained.
}
