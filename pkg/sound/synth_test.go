package sound

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestSynthesize(t *testing.T) {
	tests := []struct {
		effect  Effect
		seconds float64
	}{
		{EffectStart, 0.31},
		{EffectBounce, 0.10},
		{EffectStageCleared, 0.36},
		{EffectLost, 0.76},
		{EffectWon, 0.81},
	}

	for _, tt := range tests {
		t.Run(tt.effect.String(), func(t *testing.T) {
			clip := Synthesize(tt.effect)
			if len(clip)%bytesPerFrame != 0 {
				t.Fatalf("length %d is not a whole number of frames", len(clip))
			}
			frames := len(clip) / bytesPerFrame
			want := int(tt.seconds * SampleRate)
			if diff := frames - want; diff < -4 || diff > 4 {
				t.Errorf("frames: got %d, want about %d", frames, want)
			}

			var peak int16
			for i := 0; i < frames; i++ {
				l := int16(binary.LittleEndian.Uint16(clip[i*4:]))
				r := int16(binary.LittleEndian.Uint16(clip[i*4+2:]))
				if l != r {
					t.Fatalf("frame %d: left %d and right %d differ", i, l, r)
				}
				if l < 0 {
					l = -l
				}
				peak = max(peak, l)
			}
			if peak == 0 {
				t.Error("clip is silent")
			}
		})
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	if !bytes.Equal(Synthesize(EffectWon), Synthesize(EffectWon)) {
		t.Error("two renders of the same effect differ")
	}
}

func TestSynthesizeUnknown(t *testing.T) {
	if clip := Synthesize(Effect(99)); clip != nil {
		t.Errorf("unknown effect: got %d bytes, want nil", len(clip))
	}
	if Effect(99).String() != "unknown" {
		t.Errorf("String: got %q", Effect(99).String())
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play(EffectBounce)
}

func TestOscillateRange(t *testing.T) {
	for _, w := range []waveform{waveSine, waveSquare, waveTriangle} {
		for i := 0; i < 1000; i++ {
			v := oscillate(w, 440, float64(i)/SampleRate)
			if v < -1 || v > 1 {
				t.Fatalf("waveform %d at %d: %v out of range", w, i, v)
			}
		}
	}
	if oscillate(waveSquare, 0, 0.5) != 0 {
		t.Error("rest is not silent")
	}
}
