package audio

// SoundID selects one of the synthesized effects.
type SoundID int

const (
	SoundFire SoundID = iota
	SoundExplosion
	SoundShipHit
	SoundWave
)

func generateFireSound() floatBuffer {
	// short descending square blip
	samples := durationToSamples(0.09)
	buf := oscillator(waveSquare, 880, 330, samples)
	applyEnvelope(buf, 0.005, 0.05)
	return buf
}

func generateExplosionSound() floatBuffer {
	// noise burst with a low thump underneath
	samples := durationToSamples(0.35)
	buf := oscillator(waveNoise, 0, 0, samples)
	applyEnvelope(buf, 0.002, 0.3)

	thump := oscillator(waveSine, 110, 40, samples)
	applyEnvelope(thump, 0.002, 0.25)
	return mixFloatBuffers(buf, thump, 0.8)
}

func generateShipHitSound() floatBuffer {
	// longer, darker explosion with a falling saw
	samples := durationToSamples(0.6)
	buf := oscillator(waveNoise, 0, 0, samples)
	applyEnvelope(buf, 0.002, 0.5)

	fall := oscillator(waveSaw, 220, 30, samples)
	applyEnvelope(fall, 0.01, 0.5)
	return mixFloatBuffers(buf, fall, 0.6)
}

func generateWaveSound() floatBuffer {
	// two rising sine notes
	n1 := oscillator(waveSine, 440, 440, durationToSamples(0.1))
	applyEnvelope(n1, 0.01, 0.05)
	n2 := oscillator(waveSine, 660, 660, durationToSamples(0.14))
	applyEnvelope(n2, 0.01, 0.08)
	return concatFloatBuffers(n1, n2)
}

// generateSound dispatches to a specific generator.
func generateSound(id SoundID) floatBuffer {
	switch id {
	case SoundFire:
		return generateFireSound()
	case SoundExplosion:
		return generateExplosionSound()
	case SoundShipHit:
		return generateShipHitSound()
	case SoundWave:
		return generateWaveSound()
	default:
		return nil
	}
}
