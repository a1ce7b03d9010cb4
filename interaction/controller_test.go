package interaction

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestControllerCornerGesture(t *testing.T) {
	coords := rectangle()
	controller := NewController(coords, nil)

	var updates []DetachedCorner
	controller.OnCornerUpdate = func(c DetachedCorner) { updates = append(updates, c) }

	assert.Equal(t, SelectedCorner, controller.Start(295, 598))
	assert.NotEmpty(t, controller.Session())
	assert.True(t, controller.Move(320, 640))
	assert.True(t, controller.Move(310, 650))
	committed := controller.End()

	want := []DetachedCorner{{Point: Pt(310, 650), Position: BottomRight}}
	assert.Equal(t, want, committed)
	assert.Equal(t, want, updates)
	assert.Empty(t, controller.Session())
	assert.Equal(t, SelectedNone, controller.Engine().Selection())
}

func TestControllerEdgeGesture(t *testing.T) {
	coords := rectangle()
	controller := NewController(coords, nil)

	var updates []DetachedCorner
	controller.OnCornerUpdate = func(c DetachedCorner) { updates = append(updates, c) }

	assert.Equal(t, SelectedEdge, controller.Start(200, 300))
	assert.True(t, controller.Move(200, 280))
	controller.End()

	assert.Equal(t, []DetachedCorner{
		{Point: Pt(100, 280), Position: TopLeft},
		{Point: Pt(300, 280), Position: TopRight},
	}, updates)
}

func TestControllerMiss(t *testing.T) {
	coords := rectangle()
	controller := NewController(coords, nil)
	controller.OnCornerUpdate = func(DetachedCorner) { t.Fatal("nothing should be committed") }

	assert.Equal(t, SelectedNone, controller.Start(200, 450))
	assert.False(t, controller.Move(210, 460))
	assert.Nil(t, controller.End())
	assert.Equal(t, *rectangle(), *coords)
}

func TestControllerEnforceValidation(t *testing.T) {
	coords := rectangle()
	controller := NewController(coords, NewEngine(WithBounds(400, 700)))

	// Advisory by default
	controller.Start(100, 300)
	assert.True(t, controller.Move(-10, 300))
	controller.End()
	assert.Equal(t, Pt(-10, 300), coords.At(TopLeft))

	coords = rectangle()
	controller = NewController(coords, NewEngine(WithBounds(400, 700)))
	controller.EnforceValidation = true
	controller.Start(100, 300)
	assert.True(t, controller.Move(50, 250))
	assert.False(t, controller.Move(-10, 300))
	committed := controller.End()
	assert.Equal(t, []DetachedCorner{{Point: Pt(50, 250), Position: TopLeft}}, committed)
}

func TestControllerFromConfig(t *testing.T) {
	conf := DefaultConfig()
	conf.RequireConvex = true
	conf.EnforceValidation = true

	coords := rectangle()
	controller, err := NewControllerFromConfig(coords, conf)
	require.NoError(t, err)
	assert.True(t, controller.EnforceValidation)

	controller.Start(100, 300)
	assert.False(t, controller.Move(250, 450))
	controller.End()
	assert.Equal(t, Pt(100, 300), coords.At(TopLeft))

	conf.TouchRadius = "enormous"
	_, err = NewControllerFromConfig(coords, conf)
	assert.Error(t, err)
}

func TestControllerSwallowsContractViolations(t *testing.T) {
	logs := captureLogs(t)
	coords := rectangle()
	controller := NewController(coords, nil)
	controller.OnCornerUpdate = func(DetachedCorner) { t.Fatal("nothing should be committed") }

	controller.Start(100, 300)
	coords.Unset(TopLeft)
	assert.Nil(t, controller.End())

	assert.Contains(t, logs.String(), "error while detaching corner")
	assert.Contains(t, logs.String(), "precondition violation")
	assert.Contains(t, logs.String(), "controller="+controller.Name())
	// Reset still happened
	assert.False(t, controller.Engine().CornerActive())
}

func TestControllerRestart(t *testing.T) {
	logs := captureLogs(t)
	coords := rectangle()
	controller := NewController(coords, nil)

	controller.Start(100, 300)
	assert.Equal(t, SelectedEdge, controller.Start(200, 600))
	assert.NotEmpty(t, controller.Session())
	assert.Contains(t, logs.String(), "gesture started before previous one ended")
	assert.False(t, controller.Engine().CornerActive())
}

func TestControllerCancel(t *testing.T) {
	coords := rectangle()
	controller := NewController(coords, nil)
	controller.OnCornerUpdate = func(DetachedCorner) { t.Fatal("nothing should be committed") }

	controller.Start(200, 300)
	controller.Move(200, 250)
	controller.Cancel()
	assert.Nil(t, controller.End())
	// Cancelling doesn't roll back what was already moved
	assert.Equal(t, Pt(100, 250), coords.At(TopLeft))
}

func TestControllerWithoutHandler(t *testing.T) {
	logs := captureLogs(t)
	controller := NewController(rectangle(), nil)
	controller.Start(100, 300)
	assert.Len(t, controller.End(), 1)
	assert.Contains(t, logs.String(), "no corner update handler")
}

// Gestures from many goroutines interleave, abandoning each other, but every
// sample is applied under the lock so nothing is ever half committed.
func TestControllerConcurrentGestures(t *testing.T) {
	coords := rectangle()
	controller := NewController(coords, nil)

	var mu sync.Mutex
	var updates []DetachedCorner
	controller.OnCornerUpdate = func(c DetachedCorner) {
		mu.Lock()
		defer mu.Unlock()
		updates = append(updates, c)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				controller.Start(100, 300)
				controller.Move(100, 300)
				controller.End()
			}
		}()
	}
	wg.Wait()

	for _, u := range updates {
		assert.Equal(t, TopLeft, u.Position)
		assert.Equal(t, Pt(100, 300), u.Point)
	}
}
