package audio

import (
	"math"
	"math/rand"
)

// SampleRate is the rate of the shared audio context and of all
// generated buffers.
const SampleRate = 44100

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples. freqEnd, when > 0 and
// different from freq, sweeps the frequency linearly over the buffer.
func oscillator(waveType int, freq, freqEnd float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	if samples <= 0 {
		return buf
	}
	if freqEnd <= 0 {
		freqEnd = freq
	}
	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		f := freq + (freqEnd-freq)*t

		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if math.Mod(phase, 1) < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (math.Mod(phase, 1) - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += f / SampleRate
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place.
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * SampleRate)
	releaseSamples := int(releaseSec * SampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed.
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends b to a.
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// durationToSamples converts seconds to a sample count.
func durationToSamples(d float64) int {
	return int(d * SampleRate)
}

// toPCM16Stereo converts a mono unity-gain buffer to the 16-bit LE
// interleaved stereo stream the ebiten audio context plays.
func toPCM16Stereo(buf floatBuffer, gain float64) []byte {
	out := make([]byte, len(buf)*4)
	for i, v := range buf {
		s := v * gain
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		sample := int16(s * math.MaxInt16)
		lo := byte(sample)
		hi := byte(uint16(sample) >> 8)
		out[i*4] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}
