package bigpicture

import "math"

const (
	chimeSampleRate = 48000
	chimeDuration   = 0.5
	chimeAmplitude  = 12000
)

// generateLaunchChime creates a short rising two-note chime (48kHz stereo
// S16LE). volume in [0, 1] scales the amplitude.
func generateLaunchChime(volume float64) []byte {
	volume = clamp01(volume)
	numSamples := int(float64(chimeSampleRate) * chimeDuration)

	// G4 then C5, a perfect fourth up
	notes := []struct {
		freq   float64
		start  float64
		volume float64
	}{
		{392.00, 0.0, 0.45},
		{523.25, 0.09, 0.4},
	}

	samples := make([]byte, numSamples*4) // 2 bytes * 2 channels

	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(chimeSampleRate)
		sample := 0.0

		for _, note := range notes {
			if t < note.start {
				continue
			}

			noteT := t - note.start
			attackTime := 0.02
			decayTime := 0.3
			var envelope float64

			if noteT < attackTime {
				envelope = (1 - math.Cos(math.Pi*noteT/attackTime)) / 2
			} else {
				envelope = math.Exp(-3 * (noteT - attackTime) / decayTime)
			}

			fundamental := math.Sin(2 * math.Pi * note.freq * noteT)
			harmonic := math.Sin(2*math.Pi*note.freq*3*noteT) * 0.1
			sample += (fundamental + harmonic) * envelope * note.volume
		}

		if sample > 1.0 {
			sample = 1.0
		} else if sample < -1.0 {
			sample = -1.0
		}

		value := int16(sample * chimeAmplitude * volume)

		idx := i * 4
		samples[idx] = byte(value)
		samples[idx+1] = byte(value >> 8)
		samples[idx+2] = byte(value)
		samples[idx+3] = byte(value >> 8)
	}

	return samples
}
