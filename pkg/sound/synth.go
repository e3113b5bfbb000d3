package sound

import (
	"encoding/binary"
	"math"
)

// SampleRate of every synthesized clip
const SampleRate = 44100

// bytesPerFrame is 16-bit signed little endian, two channels
const bytesPerFrame = 4

// Effect identifies a sound effect
type Effect int

const (
	EffectStart Effect = iota
	EffectBounce
	EffectStageCleared
	EffectLost
	EffectWon
)

func (e Effect) String() string {
	switch e {
	case EffectStart:
		return "start"
	case EffectBounce:
		return "bounce"
	case EffectStageCleared:
		return "stage cleared"
	case EffectLost:
		return "lost"
	case EffectWon:
		return "won"
	}
	return "unknown"
}

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveTriangle
)

type note struct {
	freq     float64 // Hz, 0 is a rest
	duration float64 // seconds
	wave     waveform
	gain     float64
}

// Synthesize renders an effect as 16-bit stereo PCM at SampleRate
func Synthesize(e Effect) []byte {
	switch e {
	case EffectStart:
		return render([]note{
			{660, 0.10, waveSquare, 0.25},
			{0, 0.05, waveSine, 0},
			{880, 0.16, waveSquare, 0.25},
		})
	case EffectBounce:
		return render([]note{
			{110, 0.05, waveSquare, 0.35},
			{80, 0.05, waveTriangle, 0.35},
		})
	case EffectStageCleared:
		return render([]note{
			{523.25, 0.09, waveTriangle, 0.4},
			{659.25, 0.09, waveTriangle, 0.4},
			{783.99, 0.18, waveTriangle, 0.4},
		})
	case EffectLost:
		return render([]note{
			{392.00, 0.18, waveSine, 0.45},
			{329.63, 0.18, waveSine, 0.45},
			{261.63, 0.40, waveSine, 0.45},
		})
	case EffectWon:
		return render([]note{
			{523.25, 0.12, waveTriangle, 0.4},
			{659.25, 0.12, waveTriangle, 0.4},
			{783.99, 0.12, waveTriangle, 0.4},
			{1046.50, 0.45, waveTriangle, 0.4},
		})
	}
	return nil
}

// render concatenates notes. Each note gets a short attack and a linear
// release so consecutive notes do not click.
func render(notes []note) []byte {
	frames := 0
	for _, n := range notes {
		frames += int(n.duration * SampleRate)
	}
	buf := make([]byte, frames*bytesPerFrame)

	i := 0
	for _, n := range notes {
		count := int(n.duration * SampleRate)
		attack := min(count/10, SampleRate/200)
		for j := 0; j < count; j++ {
			env := 1.0
			if attack > 0 && j < attack {
				env = float64(j) / float64(attack)
			}
			env *= 1 - float64(j)/float64(count)

			t := float64(j) / SampleRate
			putStereo16(buf, i, n.gain*env*oscillate(n.wave, n.freq, t))
			i++
		}
	}
	return buf
}

func oscillate(w waveform, freq, t float64) float64 {
	if freq == 0 {
		return 0
	}
	phase := math.Mod(freq*t, 1)
	switch w {
	case waveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case waveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	}
	return math.Sin(2 * math.Pi * phase)
}

// putStereo16 writes a [-1,1] sample to both channels of frame i
func putStereo16(buf []byte, i int, sample float64) {
	sample = math.Max(-1, math.Min(1, sample))
	v := uint16(int16(sample * math.MaxInt16))
	binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], v)
	binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], v)
}
