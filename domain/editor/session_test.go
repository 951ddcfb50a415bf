package editor

import (
	"errors"
	"image"
	"log/slog"
	"testing"

	"github.com/soocke/ratio-crop-go/domain/crop"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, &slog.HandlerOptions{Level: slog.LevelDebug}))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type redrawRecorder struct {
	calls int
	last  Overlay
}

func (r *redrawRecorder) Redraw(o Overlay) { r.calls++; r.last = o }

type cropRecorder struct {
	calls int
	path  string
	res   crop.Result
	err   error
}

func (c *cropRecorder) crop(path string, r crop.Result) error {
	c.calls++
	c.path, c.res = path, r
	return c.err
}

func newTestSession(t *testing.T) (*Session, *redrawRecorder, *cropRecorder) {
	t.Helper()
	f, err := crop.NewFrame(3000, 2000, 800, 550)
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	rd := &redrawRecorder{}
	cr := &cropRecorder{}
	s, _ := BeginSession("in.jpg", f, DefaultOptions(), rd, cr.crop, discardLogger)
	return s, rd, cr
}

func TestBeginSession_CentersAndRedraws(t *testing.T) {
	s, rd, _ := newTestSession(t)
	want := crop.Rect{X: 277, Y: 0, W: 245, H: 533}
	if s.Rect() != want {
		t.Fatalf("initial rect = %+v, want %+v", s.Rect(), want)
	}
	if rd.calls != 1 || rd.last.Rect != want {
		t.Fatalf("expected initial redraw with rect, calls=%d last=%+v", rd.calls, rd.last.Rect)
	}
	if len(rd.last.Masks) != 2 {
		t.Fatalf("expected left and right masks, got %v", rd.last.Masks)
	}
	if !s.Active() || s.Gesture().State != Idle {
		t.Fatalf("new session should be active and idle")
	}
}

func TestPointerDown_HandleBeforeBody(t *testing.T) {
	s, _, _ := newTestSession(t)
	r := s.Rect()
	// Inside the body but also inside the SE handle square.
	s.OnPointerDown(image.Pt(r.Right()-3, r.Bottom()-3))
	g := s.Gesture()
	if g.State != Resizing || g.Corner != crop.SE {
		t.Fatalf("expected resizing from se, got %v %v", g.State, g.Corner)
	}
}

func TestPointerDown_BodyStartsDrag(t *testing.T) {
	s, _, _ := newTestSession(t)
	p := image.Pt(s.Rect().X+100, 200)
	s.OnPointerDown(p)
	if g := s.Gesture(); g.State != Dragging || g.Anchor != p {
		t.Fatalf("expected dragging anchored at %v, got %+v", p, g)
	}
}

func TestPointerDown_OutsideIgnored(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.OnPointerDown(image.Pt(10, 10))
	if s.Gesture().State != Idle {
		t.Fatalf("click outside should stay idle, got %v", s.Gesture().State)
	}
}

func TestDrag_MovesClampsAndRedraws(t *testing.T) {
	s, rd, _ := newTestSession(t)
	start := s.Rect()
	s.OnPointerDown(image.Pt(400, 200))
	s.OnPointerMove(image.Pt(380, 250))
	if got := s.Rect(); got.X != start.X-20 || got.Y != 0 {
		t.Fatalf("after drag rect = %+v, want X=%d Y=0", got, start.X-20)
	}
	if rd.calls != 2 {
		t.Fatalf("expected one redraw per accepted move, got %d", rd.calls)
	}
	s.OnPointerMove(image.Pt(-2000, 250))
	if got := s.Rect(); got.X != 0 {
		t.Fatalf("drag should clamp at left edge, got %+v", got)
	}
	s.OnPointerUp()
	if s.Gesture().State != Idle {
		t.Fatalf("pointer up should return to idle")
	}
}

func TestResize_RejectedStepDoesNotAccumulate(t *testing.T) {
	s, rd, _ := newTestSession(t)
	s.OnResetRequested()
	r := s.Rect()
	// Grab NW and pull further out of the frame top: rejected.
	s.OnPointerDown(image.Pt(r.X, r.Y))
	calls := rd.calls
	s.OnPointerMove(image.Pt(r.X-30, r.Y))
	if s.Rect() != r {
		t.Fatalf("resize past frame top should be rejected, got %+v", s.Rect())
	}
	if rd.calls != calls {
		t.Fatalf("rejected resize must not redraw")
	}
	if s.Gesture().Anchor != image.Pt(r.X-30, r.Y) {
		t.Fatalf("anchor should advance on rejection, got %v", s.Gesture().Anchor)
	}
	// Moving back inward by 40 applies only this step's delta.
	s.OnPointerMove(image.Pt(r.X+10, r.Y))
	got := s.Rect()
	if got.W != r.W-40 || got.Right() != r.Right() || got.Bottom() != r.Bottom() {
		t.Fatalf("after inward step rect = %+v, want W=%d with SE fixed", got, r.W-40)
	}
}

func TestConfirm_MapsToSourceAndCropsOnce(t *testing.T) {
	s, _, cr := newTestSession(t)
	if err := s.OnConfirm(); err != nil {
		t.Fatalf("OnConfirm: %v", err)
	}
	if cr.calls != 1 || cr.path != "in.jpg" {
		t.Fatalf("crop calls=%d path=%q", cr.calls, cr.path)
	}
	want := crop.ToSourceSpace(crop.Rect{X: 277, Y: 0, W: 245, H: 533}, s.Frame())
	if cr.res != want {
		t.Fatalf("crop result = %+v, want %+v", cr.res, want)
	}
	if s.Active() {
		t.Fatalf("session should end after confirm")
	}
	if err := s.OnConfirm(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("second confirm: expected ErrNoSession, got %v", err)
	}
	if cr.calls != 1 {
		t.Fatalf("crop must run exactly once, got %d", cr.calls)
	}
}

func TestConfirm_RejectedMidGesture(t *testing.T) {
	s, _, cr := newTestSession(t)
	s.OnPointerDown(image.Pt(400, 200))
	if err := s.OnConfirm(); !errors.Is(err, ErrGestureActive) {
		t.Fatalf("expected ErrGestureActive, got %v", err)
	}
	if !s.Active() || cr.calls != 0 {
		t.Fatalf("failed precondition must not end session or crop")
	}
}

func TestConfirm_PropagatesCropError(t *testing.T) {
	s, _, cr := newTestSession(t)
	boom := errors.New("disk full")
	cr.err = boom
	if err := s.OnConfirm(); !errors.Is(err, boom) {
		t.Fatalf("expected crop error, got %v", err)
	}
	if s.Active() {
		t.Fatalf("session should end even when crop fails")
	}
}

func TestCancel_EndsWithoutCrop(t *testing.T) {
	s, _, cr := newTestSession(t)
	if err := s.OnCancel(); err != nil {
		t.Fatalf("OnCancel: %v", err)
	}
	if s.Active() || cr.calls != 0 {
		t.Fatalf("cancel should end session without cropping")
	}
	if err := s.OnCancel(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestReset_OverridesGesture(t *testing.T) {
	s, rd, _ := newTestSession(t)
	initial := s.Rect()
	s.OnPointerDown(image.Pt(400, 200))
	s.OnPointerMove(image.Pt(300, 200))
	calls := rd.calls
	s.OnResetRequested()
	if s.Rect() != initial || s.Gesture().State != Idle {
		t.Fatalf("reset should restore %+v and idle, got %+v %v", initial, s.Rect(), s.Gesture().State)
	}
	if rd.calls != calls+1 {
		t.Fatalf("reset should request a redraw")
	}
}

func TestInactiveSession_IgnoresPointer(t *testing.T) {
	s, rd, _ := newTestSession(t)
	_ = s.OnCancel()
	calls := rd.calls
	s.OnPointerDown(image.Pt(400, 200))
	s.OnPointerMove(image.Pt(300, 200))
	s.OnResetRequested()
	if rd.calls != calls || s.Gesture().State != Idle {
		t.Fatalf("ended session must ignore input")
	}
}
