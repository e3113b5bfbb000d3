package sound

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays synthesized effects. A nil *Player is silent.
type Player struct {
	ctx     *audio.Context
	clips   map[Effect][]byte
	playing map[Effect]*audio.Player
	volume  float64
}

// NewPlayer renders every effect once and plays them through ctx.
// ctx must run at SampleRate.
func NewPlayer(ctx *audio.Context) *Player {
	p := &Player{
		ctx:     ctx,
		clips:   make(map[Effect][]byte),
		playing: make(map[Effect]*audio.Player),
		volume:  0.6,
	}
	for _, e := range []Effect{EffectStart, EffectBounce, EffectStageCleared, EffectLost, EffectWon} {
		p.clips[e] = Synthesize(e)
	}
	return p
}

// Play starts an effect. An effect that is still playing is not restarted,
// so a car scraping along a wall does not stack bounce sounds.
func (p *Player) Play(e Effect) {
	if p == nil || p.ctx == nil {
		return
	}
	if cur, ok := p.playing[e]; ok {
		if cur.IsPlaying() {
			return
		}
		cur.Close()
		delete(p.playing, e)
	}

	clip, ok := p.clips[e]
	if !ok {
		return
	}
	player := p.ctx.NewPlayerFromBytes(clip)
	player.SetVolume(p.volume)
	player.Play()
	p.playing[e] = player
}
