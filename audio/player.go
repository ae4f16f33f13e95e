package audio

import (
	"bytes"
	"log"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Player synthesizes effects once and plays them through the shared
// ebiten audio context. Safe to use with a nil receiver, which keeps
// sound optional in tests and headless runs.
type Player struct {
	ctx    *eaudio.Context
	volume float64
	cache  map[SoundID][]byte
}

// NewPlayer creates a Player and pre-renders all effects.
func NewPlayer(volume float64) *Player {
	p := &Player{
		ctx:    eaudio.NewContext(SampleRate),
		volume: volume,
		cache:  make(map[SoundID][]byte),
	}
	for _, id := range []SoundID{SoundFire, SoundExplosion, SoundShipHit, SoundWave} {
		p.cache[id] = toPCM16Stereo(generateSound(id), 0.6)
	}
	return p
}

// Play starts the effect from the beginning. Overlapping plays of the
// same effect each get their own player.
func (p *Player) Play(id SoundID) {
	if p == nil || p.ctx == nil {
		return
	}
	pcm, ok := p.cache[id]
	if !ok || len(pcm) == 0 {
		return
	}
	player, err := p.ctx.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		log.Printf("audio: play %d: %v", id, err)
		return
	}
	player.SetVolume(p.volume)
	player.Play()
}
