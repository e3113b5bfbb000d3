package ui

import "testing"

func TestHUDLines(t *testing.T) {
	tests := []struct {
		stage   int
		seconds int
		speed   float64
		want    [3]string
	}{
		{1, 0, 0, [3]string{"Level 1", "Time: 0s", "Vel: 0.0px/s"}},
		{4, 17, 3.96, [3]string{"Level 4", "Time: 17s", "Vel: 4.0px/s"}},
		{10, 125, 1.23, [3]string{"Level 10", "Time: 125s", "Vel: 1.2px/s"}},
		{2, 3, -2, [3]string{"Level 2", "Time: 3s", "Vel: -2.0px/s"}},
	}
	for _, tt := range tests {
		if got := HUDLines(tt.stage, tt.seconds, tt.speed); got != tt.want {
			t.Errorf("HUDLines(%d, %d, %v): got %q, want %q", tt.stage, tt.seconds, tt.speed, got, tt.want)
		}
	}
}
