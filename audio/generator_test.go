package audio

import (
	"math"
	"testing"
)

func TestOscillatorBounds(t *testing.T) {
	for _, wave := range []int{waveSine, waveSquare, waveSaw, waveNoise} {
		buf := oscillator(wave, 440, 0, durationToSamples(0.05))
		if len(buf) == 0 {
			t.Fatalf("wave %d produced an empty buffer", wave)
		}
		for i, v := range buf {
			if v < -1 || v > 1 {
				t.Fatalf("wave %d sample %d out of range: %v", wave, i, v)
			}
		}
	}
}

func TestApplyEnvelopeRamps(t *testing.T) {
	buf := make(floatBuffer, durationToSamples(0.1))
	for i := range buf {
		buf[i] = 1
	}
	applyEnvelope(buf, 0.02, 0.02)

	if buf[0] != 0 {
		t.Fatalf("attack should start silent, got %v", buf[0])
	}
	mid := buf[len(buf)/2]
	if mid != 1 {
		t.Fatalf("sustain should be unity, got %v", mid)
	}
	if last := buf[len(buf)-1]; last >= mid {
		t.Fatalf("release should fall below sustain, got %v", last)
	}
}

func TestMixFloatBuffersExtends(t *testing.T) {
	a := floatBuffer{1, 1}
	b := floatBuffer{0.5, 0.5, 0.5}
	out := mixFloatBuffers(a, b, 2)

	want := floatBuffer{2, 2, 1}
	if len(out) != len(want) {
		t.Fatalf("mix length %d, want %d", len(out), len(want))
	}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Fatalf("mix[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestConcatFloatBuffers(t *testing.T) {
	out := concatFloatBuffers(floatBuffer{1, 2}, floatBuffer{3})
	if len(out) != 3 || out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Fatalf("concat got %v", out)
	}
}

func TestToPCM16StereoLayout(t *testing.T) {
	buf := floatBuffer{0, 1, -1, 2 /* clamps to 1 */}
	pcm := toPCM16Stereo(buf, 1)

	if len(pcm) != len(buf)*4 {
		t.Fatalf("pcm length %d, want %d", len(pcm), len(buf)*4)
	}

	sampleAt := func(i int) int16 {
		return int16(uint16(pcm[i*4]) | uint16(pcm[i*4+1])<<8)
	}
	if sampleAt(0) != 0 {
		t.Fatalf("sample 0 = %d, want 0", sampleAt(0))
	}
	if sampleAt(1) != math.MaxInt16 {
		t.Fatalf("sample 1 = %d, want %d", sampleAt(1), math.MaxInt16)
	}
	if sampleAt(2) != -math.MaxInt16 {
		t.Fatalf("sample 2 = %d, want %d", sampleAt(2), -math.MaxInt16)
	}
	if sampleAt(3) != math.MaxInt16 {
		t.Fatalf("over-unity input should clamp, got %d", sampleAt(3))
	}

	// both stereo channels carry the mono signal
	for i := range buf {
		if pcm[i*4] != pcm[i*4+2] || pcm[i*4+1] != pcm[i*4+3] {
			t.Fatalf("sample %d: left and right differ", i)
		}
	}
}

func TestGenerateSoundAllIDs(t *testing.T) {
	for _, id := range []SoundID{SoundFire, SoundExplosion, SoundShipHit, SoundWave} {
		buf := generateSound(id)
		if len(buf) == 0 {
			t.Fatalf("sound %d generated no samples", id)
		}
		for i, v := range buf {
			if v < -2 || v > 2 {
				t.Fatalf("sound %d sample %d far out of range: %v", id, i, v)
			}
		}
	}
	if generateSound(SoundID(99)) != nil {
		t.Fatalf("unknown id should generate nil")
	}
}
