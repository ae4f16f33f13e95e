package systems

import (
	"log"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/astrodrift/audio"
	"github.com/milk9111/astrodrift/common"
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/prefabs"
)

// WaveSystem paces the game: when the field is clear it advances the
// wave, asks the pacing script how many rocks to send and how fast,
// and spawns them after a short delay.
type WaveSystem struct {
	Spec     *prefabs.WaveSpec
	RockSpec *prefabs.RockSpec
	Sounds   *audio.Player

	playfield common.Rect
	rng       *rand.Rand

	script       []byte
	scriptBroken bool

	pending      bool
	delayLeft    int
	pendingCount int
	pendingSpeed float64
}

// NewWaveSystem creates a WaveSystem and loads its pacing script.
func NewWaveSystem(spec *prefabs.WaveSpec, rockSpec *prefabs.RockSpec, sounds *audio.Player, playfield common.Rect, rng *rand.Rand) *WaveSystem {
	s := &WaveSystem{
		Spec:      spec,
		RockSpec:  rockSpec,
		Sounds:    sounds,
		playfield: playfield,
		rng:       rng,
	}
	s.ReloadScript()
	return s
}

// ReloadScript re-reads the pacing script from the prefab store.
func (s *WaveSystem) ReloadScript() {
	if s == nil || s.Spec == nil || s.Spec.Script == "" {
		return
	}
	src, err := prefabs.Load(s.Spec.Script)
	if err != nil {
		log.Printf("wave: load script %s: %v", s.Spec.Script, err)
		return
	}
	s.script = src
	s.scriptBroken = false
}

// Update advances the wave state machine.
func (s *WaveSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	session := w.FirstSession()
	if session == nil || session.Over {
		return
	}

	if s.pending {
		s.delayLeft--
		if s.delayLeft > 0 {
			return
		}
		SpawnRockWave(w, s.RockSpec, s.playfield, s.pendingCount, s.pendingSpeed, s.rng)
		s.Sounds.Play(audio.SoundWave)
		s.pending = false
		return
	}

	if w.Rocks().Len() > 0 {
		return
	}

	session.Wave++
	count, speed, delay := s.paramsFor(session.Wave)
	s.pending = true
	s.pendingCount = count
	s.pendingSpeed = speed
	s.delayLeft = delay
}

// paramsFor evaluates the pacing script for a wave, falling back to
// the yaml pacing when the script is absent or fails.
func (s *WaveSystem) paramsFor(wave int) (count int, speed float64, delay int) {
	count, speed, delay = s.fallbackParams(wave)
	if len(s.script) == 0 || s.scriptBroken {
		return count, speed, delay
	}

	script := tengo.NewScript(s.script)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("wave", wave); err != nil {
		s.markBroken(err)
		return count, speed, delay
	}
	compiled, err := script.Run()
	if err != nil {
		s.markBroken(err)
		return count, speed, delay
	}

	if v := compiled.Get("count"); v != nil && v.Int() > 0 {
		count = v.Int()
	}
	if v := compiled.Get("speed"); v != nil && v.Float() > 0 {
		speed = v.Float()
	}
	if v := compiled.Get("delay"); v != nil && v.Int() >= 0 {
		delay = v.Int()
	}
	return count, speed, delay
}

// markBroken disables the script until the next reload so a bad edit
// logs once instead of every wave.
func (s *WaveSystem) markBroken(err error) {
	log.Printf("wave: script error, using yaml pacing: %v", err)
	s.scriptBroken = true
}

func (s *WaveSystem) fallbackParams(wave int) (int, float64, int) {
	base, step, max := 3, 1, 10
	speedStep := 0.1
	delay := 90
	if s.Spec != nil {
		if s.Spec.BaseCount > 0 {
			base = s.Spec.BaseCount
		}
		if s.Spec.CountStep > 0 {
			step = s.Spec.CountStep
		}
		if s.Spec.MaxCount > 0 {
			max = s.Spec.MaxCount
		}
		if s.Spec.SpeedStep > 0 {
			speedStep = s.Spec.SpeedStep
		}
		if s.Spec.SpawnDelay > 0 {
			delay = s.Spec.SpawnDelay
		}
	}
	count := base + (wave-1)*step
	if count > max {
		count = max
	}
	return count, 1 + float64(wave-1)*speedStep, delay
}
