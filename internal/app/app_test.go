package app

import (
	"context"
	"testing"

	"strife/internal/events"
	"strife/internal/platform"
	"strife/internal/platform/headless"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probeLayer struct {
	name     string
	attached int
	detached int
	updates  int
	seen     []string
}

func (l *probeLayer) Name() string { return l.name }
func (l *probeLayer) OnAttach()    { l.attached++ }
func (l *probeLayer) OnDetach()    { l.detached++ }
func (l *probeLayer) OnUpdate()    { l.updates++ }
func (l *probeLayer) OnEvent(e events.Event) bool {
	l.seen = append(l.seen, e.Name())
	return false
}

type fakeClipboard struct{ text string }

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func headlessConfig(frames int) Config {
	cfg := DefaultConfig()
	cfg.Headless = true
	cfg.Frames = frames
	cfg.LogFile = ""
	cfg.RawEvents = false
	return cfg
}

func TestRunHeadlessTicksEveryFrame(t *testing.T) {
	a, err := New(headlessConfig(5))
	require.NoError(t, err)
	probe := &probeLayer{name: "probe"}
	a.PushLayer(probe)

	require.NoError(t, a.Run(context.Background()))

	assert.EqualValues(t, 5, a.Ticks())
	assert.Equal(t, 5, probe.updates)
	assert.Equal(t, 1, probe.attached)
	assert.Equal(t, 1, probe.detached)
	assert.Empty(t, probe.seen, "redraw ticks must not be dispatched")
	assert.Equal(t, 0, a.Stack().Len())
}

func TestCloseEventStopsLoop(t *testing.T) {
	backend := headless.New(100).Script(
		[]platform.Event{{Type: platform.EventMouseMove, X: 10, Y: 20}},
		[]platform.Event{{Type: platform.EventClose}},
	)
	a, err := New(headlessConfig(0), WithPlatform(backend))
	require.NoError(t, err)
	probe := &probeLayer{name: "probe"}
	a.PushLayer(probe)

	require.NoError(t, a.Run(context.Background()))

	assert.True(t, a.Closing())
	assert.EqualValues(t, 1, a.Ticks())
	assert.Equal(t, []string{"MouseMoveEvent", "WindowCloseEvent"}, probe.seen)
}

func TestEscapeClosesWindow(t *testing.T) {
	backend := headless.New(10).Script(
		[]platform.Event{{Type: platform.EventKeyDown, Key: "Escape"}},
	)
	a, err := New(headlessConfig(0), WithPlatform(backend))
	require.NoError(t, err)
	probe := &probeLayer{name: "probe"}
	a.PushLayer(probe)

	require.NoError(t, a.Run(context.Background()))

	assert.True(t, a.Closing())
	assert.NotContains(t, probe.seen, "KeyPressedEvent", "escape is consumed at the top level")
}

func TestClientLayersSitBelowBuiltins(t *testing.T) {
	backend := headless.New(1)
	a, err := New(headlessConfig(0), WithPlatform(backend))
	require.NoError(t, err)
	a.PushLayer(&probeLayer{name: "probe"})

	var names []string
	a.PushOverlay(&inspectLayer{probeLayer: probeLayer{name: "inspect"}, onUpdate: func() {
		for _, l := range a.Stack().Layers() {
			names = append(names, l.Name())
		}
	}})

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, []string{"probe", "world", "inspect", "stats"}, names)
}

type inspectLayer struct {
	probeLayer
	onUpdate func()
}

func (l *inspectLayer) OnUpdate() { l.onUpdate() }

func TestStopOnConsumeHidesEventsFromLowerLayers(t *testing.T) {
	backend := headless.New(2).Script(
		[]platform.Event{{Type: platform.EventKeyDown, Key: "F1"}},
	)
	cfg := headlessConfig(0)
	cfg.Propagation = "stop"
	a, err := New(cfg, WithPlatform(backend))
	require.NoError(t, err)
	probe := &probeLayer{name: "probe"}
	a.PushLayer(probe)

	require.NoError(t, a.Run(context.Background()))

	assert.NotContains(t, probe.seen, "KeyPressedEvent")
}

func TestPropagateAllDeliversToEveryLayer(t *testing.T) {
	backend := headless.New(2).Script(
		[]platform.Event{{Type: platform.EventKeyDown, Key: "F1"}},
	)
	a, err := New(headlessConfig(0), WithPlatform(backend))
	require.NoError(t, err)
	probe := &probeLayer{name: "probe"}
	a.PushLayer(probe)

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, probe.seen, "KeyPressedEvent")
}

func TestRawEventsReachLayers(t *testing.T) {
	backend := headless.New(1).Script(
		[]platform.Event{{Type: platform.EventTextInput, Rune: 'q'}},
	)
	cfg := headlessConfig(0)
	cfg.RawEvents = true
	a, err := New(cfg, WithPlatform(backend))
	require.NoError(t, err)
	probe := &probeLayer{name: "probe"}
	a.PushLayer(probe)

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, probe.seen, "RawWindowEvent")
}

func TestCancelledContextClosesWindow(t *testing.T) {
	a, err := New(headlessConfig(0))
	require.NoError(t, err)
	probe := &probeLayer{name: "probe"}
	a.PushLayer(probe)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, a.Run(ctx))

	assert.True(t, a.Closing())
	assert.Equal(t, []string{"WindowCloseEvent"}, probe.seen)
	assert.Zero(t, a.Ticks())
	assert.Equal(t, 1, probe.detached)
}

func TestContextEndingMidRunClosesWindow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a, err := New(headlessConfig(0))
	require.NoError(t, err)
	probe := &probeLayer{name: "probe"}
	a.PushLayer(probe)
	a.PushOverlay(&inspectLayer{probeLayer: probeLayer{name: "cancel"}, onUpdate: func() {
		if a.Ticks() == 3 {
			cancel()
		}
	}})

	require.NoError(t, a.Run(ctx))

	assert.EqualValues(t, 3, a.Ticks())
	assert.Equal(t, []string{"WindowCloseEvent"}, probe.seen)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := headlessConfig(1)
	cfg.Propagation = "maybe"
	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = headlessConfig(1)
	cfg.Width = 0
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = headlessConfig(1)
	cfg.Width = 800
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig, "width below the default minimum")

	cfg.MinWidth = 800
	_, err = New(cfg)
	assert.NoError(t, err)

	cfg = headlessConfig(1)
	cfg.LogLevel = "chatty"
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestResizeUpdatesSize(t *testing.T) {
	backend := headless.New(1).Script(
		[]platform.Event{{Type: platform.EventResize, Width: 640, Height: 480}},
	)
	a, err := New(headlessConfig(0), WithPlatform(backend))
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, 640, a.width)
	assert.Equal(t, 480, a.height)
}
