package track

import (
	"image"
	"math"
	"strings"
	"testing"

	"github.com/golangdaddy/racer/pkg/mask"
)

const smallTrack = `
name: Test Oval
width: 200
height: 160
roadWidth: 40
borderWidth: 4
turfScale: 2
seed: 1
finish: {x: 20, y: 70, width: 40, height: 8}
playerStart: {x: 45, y: 40}
computerStart: {x: 25, y: 40}
waypoints:
  - {x: 40, y: 30}
  - {x: 160, y: 30}
  - {x: 160, y: 130}
  - {x: 40, y: 130}
`

func TestDefault(t *testing.T) {
	def, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if def.Width != 810 || def.Height != 810 {
		t.Errorf("size: got %dx%d, want 810x810", def.Width, def.Height)
	}
	if len(def.Waypoints) != 22 {
		t.Errorf("waypoints: got %d, want 22", len(def.Waypoints))
	}
	if got := def.Waypoints[0].Image(); got != image.Pt(175, 119) {
		t.Errorf("first waypoint: got %v, want (175,119)", got)
	}
	if got := def.PlayerStart.Image(); got != image.Pt(180, 200) {
		t.Errorf("player start: got %v, want (180,200)", got)
	}
	if got := def.ComputerStart.Image(); got != image.Pt(150, 200) {
		t.Errorf("computer start: got %v, want (150,200)", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "width: [", "failed to parse"},
		{"no size", strings.Replace(smallTrack, "width: 200", "width: 0", 1), "track size"},
		{"no waypoints", smallTrack[:strings.Index(smallTrack, "waypoints:")], "two waypoints"},
		{"finish outside", strings.Replace(smallTrack, "finish: {x: 20", "finish: {x: 190", 1), "finish"},
		{"start outside", strings.Replace(smallTrack, "playerStart: {x: 45", "playerStart: {x: 450", 1), "player start"},
		{"road width", strings.Replace(smallTrack, "roadWidth: 40", "roadWidth: -1", 1), "roadWidth"},
		{"turf scale", strings.Replace(smallTrack, "turfScale: 2", "turfScale: 0", 1), "turfScale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() returned no error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error: got %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewAssetsNil(t *testing.T) {
	if _, err := NewAssets(nil); err == nil {
		t.Error("NewAssets(nil): got no error")
	}
}

func TestNewAssetsSmallTrack(t *testing.T) {
	def, err := Parse([]byte(smallTrack))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	a, err := NewAssets(def)
	if err != nil {
		t.Fatalf("NewAssets() error: %v", err)
	}

	if w, h := a.Size(); w != 200 || h != 160 {
		t.Errorf("Size: got %dx%d, want 200x160", w, h)
	}
	if b := a.Turf.Bounds(); b.Dx() < 200 || b.Dy() < 160 {
		t.Errorf("turf %v does not cover the track", b)
	}
	if a.FinishPos != image.Pt(20, 70) {
		t.Errorf("FinishPos: got %v, want (20,70)", a.FinishPos)
	}
	if got := a.FinishMask.Count(); got != 40*8 {
		t.Errorf("finish mask count: got %d, want %d", got, 40*8)
	}
	if a.BorderMask.Count() == 0 {
		t.Error("border mask is empty")
	}

	// Road and kerb never share a pixel.
	roadMask := mask.FromImage(a.Track)
	if p, hit := roadMask.Overlap(a.BorderMask, image.Point{}); hit {
		t.Errorf("road and border overlap at %v", p)
	}

	// Waypoints sit on the road.
	for _, wp := range def.WaypointPath() {
		if !roadMask.Get(wp.X, wp.Y) {
			t.Errorf("waypoint %v is not on the road", wp)
		}
	}
}

func TestDefaultAssets(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the full size track")
	}
	def, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	a, err := NewAssets(def)
	if err != nil {
		t.Fatalf("NewAssets() error: %v", err)
	}

	// A car sized block at either start position is clear of the kerbs.
	car := mask.New(20, 37)
	for y := 0; y < 37; y++ {
		for x := 0; x < 20; x++ {
			car.Set(x, y, true)
		}
	}
	for _, start := range []Point{def.PlayerStart, def.ComputerStart} {
		if p, hit := a.BorderMask.Overlap(car, start.Image()); hit {
			t.Errorf("start %v touches the border at %v", start.Image(), p)
		}
	}

	// The whole finish strip is laid on road.
	roadMask := mask.FromImage(a.Track)
	if got := a.FinishMask.Count(); got != def.Finish.Width*def.Finish.Height {
		t.Fatalf("finish mask count: got %d", got)
	}
	finishArea := def.Finish.Image()
	for y := finishArea.Min.Y; y < finishArea.Max.Y; y++ {
		for x := finishArea.Min.X; x < finishArea.Max.X; x++ {
			if !roadMask.Get(x, y) {
				t.Fatalf("finish pixel (%d,%d) is off the road", x, y)
			}
		}
	}
}

func TestDistanceToSegment(t *testing.T) {
	tests := []struct {
		px, py, ax, ay, bx, by float64
		want                   float64
	}{
		{5, 3, 0, 0, 10, 0, 3},   // above the middle
		{-4, 3, 0, 0, 10, 0, 5},  // past the start
		{13, 4, 0, 0, 10, 0, 5},  // past the end
		{2, 2, 2, 2, 2, 2, 0},    // degenerate segment
		{0, 10, 0, 0, 0, 20, 0},  // on the segment
	}
	for _, tt := range tests {
		got := distanceToSegment(tt.px, tt.py, tt.ax, tt.ay, tt.bx, tt.by)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("distanceToSegment(%v,%v): got %v, want %v", tt.px, tt.py, got, tt.want)
		}
	}
}

func TestDistanceToLoopClosesPath(t *testing.T) {
	path := []image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	// (0, 5) is on the closing edge from the last point back to the first.
	if got := distanceToLoop(0, 5, path); got != 0 {
		t.Errorf("distanceToLoop: got %v, want 0", got)
	}
}
