package screen

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"skyraid/game"
)

const sampleRate = 44100

// tone describes a synthesized beep with a linear pitch slide
type tone struct {
	from, to float64 // Hz
	seconds  float64
	volume   float64
}

var eventTones = map[game.EventKind]tone{
	game.EventEnemyDestroyed:   {from: 420, to: 120, seconds: 0.12, volume: 0.30},
	game.EventBossHit:          {from: 300, to: 260, seconds: 0.04, volume: 0.15},
	game.EventBossDestroyed:    {from: 600, to: 60, seconds: 0.60, volume: 0.45},
	game.EventBossWarning:      {from: 880, to: 440, seconds: 0.35, volume: 0.35},
	game.EventMissileLaunched:  {from: 200, to: 700, seconds: 0.18, volume: 0.25},
	game.EventMissileExploded:  {from: 180, to: 40, seconds: 0.40, volume: 0.45},
	game.EventPowerUpCollected: {from: 660, to: 1320, seconds: 0.15, volume: 0.30},
	game.EventShieldAbsorbed:   {from: 500, to: 500, seconds: 0.10, volume: 0.25},
	game.EventPlayerHit:        {from: 240, to: 90, seconds: 0.25, volume: 0.40},
	game.EventPlayerDown:       {from: 240, to: 90, seconds: 0.25, volume: 0.40},
	game.EventLevelCleared:     {from: 520, to: 1040, seconds: 0.40, volume: 0.30},
	game.EventGameOver:         {from: 330, to: 110, seconds: 0.80, volume: 0.40},
}

// beepPCM renders a tone as 16-bit little endian stereo PCM
func beepPCM(t tone, rate int) []byte {
	n := int(float64(rate) * t.seconds)
	pcm := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.from + (t.to-t.from)*progress
		phase += 2 * math.Pi * freq / float64(rate)
		// square-ish wave with a short fade out
		v := math.Copysign(1, math.Sin(phase)) * t.volume * (1 - progress)
		s := int16(v * 32767)
		for ch := 0; ch < 2; ch++ {
			pcm[4*i+2*ch] = byte(s)
			pcm[4*i+2*ch+1] = byte(s >> 8)
		}
	}
	return pcm
}

// Sounds plays a short synthesized effect per game event
type Sounds struct {
	ctx   *audio.Context
	clips map[game.EventKind][]byte
	muted bool
}

// NewSounds renders every clip up front. A nil context yields a silent player.
func NewSounds(ctx *audio.Context) *Sounds {
	s := &Sounds{ctx: ctx, clips: make(map[game.EventKind][]byte, len(eventTones))}
	if ctx == nil {
		return s
	}
	for kind, t := range eventTones {
		s.clips[kind] = beepPCM(t, ctx.SampleRate())
	}
	return s
}

// SetMuted turns sound on or off
func (s *Sounds) SetMuted(m bool) { s.muted = m }

// Play starts the clip for an event, if it has one
func (s *Sounds) Play(ev game.Event) {
	if s == nil || s.ctx == nil || s.muted {
		return
	}
	pcm, ok := s.clips[ev.Kind]
	if !ok {
		return
	}
	s.ctx.NewPlayerFromBytes(pcm).Play()
}
