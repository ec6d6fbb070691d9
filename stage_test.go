package rowan

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestStaticOrder(t *testing.T) {
	var s StaticOrder
	a := newRecorder("a", nil)
	b := newRecorder("b", nil)
	s.Add(a)
	s.Add(b)
	s.Add(a) // idempotent

	items := s.VisibleItems(Rect{})
	if len(items) != 2 || items[0] != Drawable(a) || items[1] != Drawable(b) {
		t.Fatalf("items = %v, want [a b]", items)
	}

	s.Remove(a)
	s.Remove(a) // absent removal is a no-op
	if items := s.VisibleItems(Rect{}); len(items) != 1 || items[0] != Drawable(b) {
		t.Errorf("items after removal = %v, want [b]", items)
	}
}

func TestStageFrame(t *testing.T) {
	st := NewStage(BackendRetained, 320, 240)
	var calls []string
	st.Source().(*StaticOrder).Add(newRecorder("A", &calls))
	st.Compositor().AddInterstitial(newRecorder("I", &calls))

	st.Update(1.0 / 60)
	st.Frame()

	assertCallOrder(t, calls, "I", "A", "I")
	if st.Compositor().FrameCount() != 1 {
		t.Errorf("FrameCount = %d, want 1", st.Compositor().FrameCount())
	}
}

func TestStagePropPipeline(t *testing.T) {
	st := NewStage(BackendRetained, 320, 240)
	w := st.World()

	v := NewSpriteVisual("hero", WhitePixel)
	prop := w.NewProp(v)
	if err := prop.Initialize("hero", ""); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	prop.WorldX, prop.WorldY = 0, 0
	st.Source().(*StaticOrder).Add(prop)

	st.Frame()

	root := st.Compositor().FrameVisual()
	if root.NumChildren() != 1 || root.ChildAt(0) != v {
		t.Fatal("prop's visual should be in the frame tree")
	}
	// The default camera centers the world origin in the viewport.
	if v.X != 160 || v.Y != 120 {
		t.Errorf("visual position = (%v, %v), want (160, 120)", v.X, v.Y)
	}
}

func TestStageDraw(t *testing.T) {
	for _, backend := range []BackendKind{BackendRetained, BackendRaster} {
		st := NewStage(backend, 64, 64)
		prop := st.World().NewProp(NewSpriteVisual("p", WhitePixel))
		if err := prop.Initialize("p", ""); err != nil {
			t.Fatalf("Initialize: %v", err)
		}
		st.Source().(*StaticOrder).Add(prop)

		st.Frame()
		screen := ebiten.NewImage(64, 64)
		st.Draw(screen) // must not panic on either backend
	}
}

func TestStageSetSourceNilPanics(t *testing.T) {
	st := NewStage(BackendRetained, 64, 64)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil source, got none")
		}
	}()
	st.SetSource(nil)
}

func TestStageDebugMode(t *testing.T) {
	st := NewStage(BackendRetained, 64, 64)
	st.SetDebugMode(true)
	defer st.SetDebugMode(false)
	if !globalDebug {
		t.Error("debug mode should set the global debug flag")
	}
	st.Frame() // stats logging must not interfere with the frame

	st.SetDebugMode(false)
	if st.logger.GetLevel() != log.InfoLevel {
		t.Error("disabling debug mode should restore the logger level")
	}
}
