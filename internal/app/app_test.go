package app

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"

	"github.com/silbinarywolf/toy-pixel-box/internal/input"
	"github.com/silbinarywolf/toy-pixel-box/internal/renderer"
	"github.com/silbinarywolf/toy-pixel-box/internal/renderer/headless"
	"github.com/silbinarywolf/toy-pixel-box/internal/world"
)

func newTestApp(driver renderer.App) *App {
	return New(driver, Options{
		Logger: log.New(io.Discard, "", 0),
	})
}

// expectedFrame simulates the world on its own for a number of ticks
func expectedFrame(ticks int) ([]byte, *world.World) {
	w := world.New(world.Options{})
	for i := 0; i < ticks; i++ {
		w.Update()
	}
	frame := make([]byte, w.FrameLen())
	w.Draw(frame)
	return frame, w
}

func TestRedrawUpdatesThenDraws(t *testing.T) {
	driver := &headless.App{}
	app := newTestApp(driver)
	screen := driver.Screen()

	if err := app.HandleEvent(renderer.RedrawRequestedEvent{Screen: screen}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	box := app.World().Box
	if box.X != 25 || box.Y != 17 {
		t.Errorf("expected box at (25, 17) after one redraw, got (%d, %d)", box.X, box.Y)
	}
	want, _ := expectedFrame(1)
	if !bytes.Equal(screen.Pixels(), want) {
		t.Error("presented frame does not match the world after one tick")
	}
	if app.FrameCount() != 1 {
		t.Errorf("expected 1 frame, got %d", app.FrameCount())
	}
}

func TestRunHeadless(t *testing.T) {
	const frames = 500
	driver := &headless.App{MaxFrames: frames, TickRate: -1}
	app := newTestApp(driver)
	if err := app.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, w := expectedFrame(frames)
	if app.World().Box != w.Box {
		t.Errorf("expected box %+v, got %+v", w.Box, app.World().Box)
	}
	screen := driver.Screen()
	if screen.FrameCount() != frames {
		t.Errorf("expected %d frames presented, got %d", frames, screen.FrameCount())
	}
	if len(screen.Pixels()) != 320*240*4 {
		t.Fatalf("expected frame of %d bytes, got %d", 320*240*4, len(screen.Pixels()))
	}
	if !bytes.Equal(screen.Pixels(), want) {
		t.Error("last presented frame does not match the simulated world")
	}
	if width, height := app.SurfaceSize(); width != 640 || height != 480 {
		t.Errorf("expected the default 640x480 window, got %dx%d", width, height)
	}
}

func TestExitEvents(t *testing.T) {
	goldenTests := []struct {
		Name   string
		Event  renderer.Event
		Output error
	}{
		{
			Name:   "close requested",
			Event:  renderer.CloseRequestedEvent{},
			Output: renderer.Termination,
		},
		{
			Name:   "escape",
			Event:  renderer.KeyPressedEvent{Key: input.KeyEscape},
			Output: renderer.Termination,
		},
		{
			Name:   "space is ignored",
			Event:  renderer.KeyPressedEvent{Key: input.KeySpace},
			Output: nil,
		},
		{
			Name:   "unknown key is ignored",
			Event:  renderer.KeyPressedEvent{Key: input.KeyUnknown},
			Output: nil,
		},
	}
	for _, test := range goldenTests {
		app := newTestApp(&headless.App{})
		if err := app.HandleEvent(test.Event); err != test.Output {
			t.Errorf("%s: returned %v but expected %v", test.Name, err, test.Output)
		}
	}
}

func TestResize(t *testing.T) {
	app := newTestApp(&headless.App{})
	if err := app.HandleEvent(renderer.ResizedEvent{Width: 1024, Height: 768}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if width, height := app.SurfaceSize(); width != 1024 || height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", width, height)
	}

	// Minimizing reports a zero size, the last size is kept
	if err := app.HandleEvent(renderer.ResizedEvent{Width: 0, Height: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if width, height := app.SurfaceSize(); width != 1024 || height != 768 {
		t.Errorf("expected 1024x768 to be kept, got %dx%d", width, height)
	}

	if err := app.HandleEvent(renderer.ResizedEvent{Width: -1, Height: 10}); err == nil {
		t.Error("expected an error for a negative size")
	}

	// The logical screen never changes with the window
	if width, height := app.ScreenSize(); width != 320 || height != 240 {
		t.Errorf("expected 320x240 screen, got %dx%d", width, height)
	}
}

func TestRunStopsOnResizeFailure(t *testing.T) {
	driver := &headless.App{TickRate: -1}
	app := newTestApp(driver)
	// The headless driver reports whatever size it's given as the first resize
	driver.SetWindowSize(-5, -5)
	err := app.Run()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "invalid surface size -5x-5") {
		t.Errorf("unexpected error: %v", err)
	}
	if app.FrameCount() != 0 {
		t.Errorf("expected no frames after a failed resize, got %d", app.FrameCount())
	}
}

// windowSizeDriver records the window size it was given
type windowSizeDriver struct {
	headless.App
	width, height int
}

func (driver *windowSizeDriver) SetWindowSize(width, height int) {
	driver.width = width
	driver.height = height
}

func TestNewWindowSize(t *testing.T) {
	goldenTests := []struct {
		Width, Height             int
		OutputWidth, OutputHeight int
	}{
		{Width: 0, Height: 0, OutputWidth: 640, OutputHeight: 480},
		{Width: 800, Height: 600, OutputWidth: 800, OutputHeight: 600},
		{Width: -5, Height: -5, OutputWidth: 640, OutputHeight: 480},
		{Width: 800, Height: -1, OutputWidth: 640, OutputHeight: 480},
		{Width: 0, Height: 600, OutputWidth: 640, OutputHeight: 480},
	}
	for _, test := range goldenTests {
		driver := &windowSizeDriver{}
		New(driver, Options{
			WindowWidth:  test.Width,
			WindowHeight: test.Height,
			Logger:       log.New(io.Discard, "", 0),
		})
		if driver.width != test.OutputWidth || driver.height != test.OutputHeight {
			t.Errorf("failed on input %dx%d, window set to %dx%d but expected %dx%d", test.Width, test.Height, driver.width, driver.height, test.OutputWidth, test.OutputHeight)
		}
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	root := errors.New("surface lost")
	err := pkgerrors.Wrap(pkgerrors.Wrap(root, "present"), "run game")
	logError(logger, "app.Run", err)

	want := "app.Run() failed: run game: present: surface lost\n" +
		"  Caused by: present: surface lost\n" +
		"  Caused by: surface lost\n"
	if got := buf.String(); got != want {
		t.Errorf("expected log output:\n%s\ngot:\n%s", want, got)
	}
}

func TestLogErrorWithoutCause(t *testing.T) {
	var buf bytes.Buffer
	logError(log.New(&buf, "", 0), "app.Run", errors.New("boom"))
	if got := buf.String(); got != "app.Run() failed: boom\n" {
		t.Errorf("unexpected log output: %q", got)
	}
}
