package bigpicture

import (
	"encoding/binary"
	"testing"
)

func TestGenerateLaunchChimeLength(t *testing.T) {
	data := generateLaunchChime(1)

	// 48000 Hz * 0.5 seconds * 4 bytes per sample (stereo S16LE)
	expected := int(48000 * 0.5 * 4)
	if len(data) != expected {
		t.Errorf("expected %d bytes, got %d", expected, len(data))
	}
}

func peak(data []byte) int16 {
	var p int16
	for i := 0; i < len(data)-1; i += 2 {
		s := int16(binary.LittleEndian.Uint16(data[i : i+2]))
		if s < 0 {
			s = -s
		}
		if s > p {
			p = s
		}
	}
	return p
}

func TestGenerateLaunchChimeNotSilent(t *testing.T) {
	if peak(generateLaunchChime(1)) == 0 {
		t.Error("sound data should not be all zeros")
	}
}

func TestGenerateLaunchChimeClipping(t *testing.T) {
	if p := peak(generateLaunchChime(1)); p > chimeAmplitude {
		t.Errorf("peak %d exceeds %d", p, chimeAmplitude)
	}
}

func TestGenerateLaunchChimeVolume(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
	}{
		{"muted", 0},
		{"negative", -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if p := peak(generateLaunchChime(tc.volume)); p != 0 {
				t.Errorf("peak = %d, want silence", p)
			}
		})
	}

	full := peak(generateLaunchChime(1))
	half := peak(generateLaunchChime(0.5))
	if half >= full || half == 0 {
		t.Errorf("half volume peak %d, full %d", half, full)
	}
	if over := peak(generateLaunchChime(3)); over != full {
		t.Errorf("volume above 1 not clamped: peak %d, want %d", over, full)
	}
}

func TestGenerateLaunchChimeStereo(t *testing.T) {
	data := generateLaunchChime(0.8)
	for i := 0; i < len(data)-3; i += 4 {
		left := int16(binary.LittleEndian.Uint16(data[i : i+2]))
		right := int16(binary.LittleEndian.Uint16(data[i+2 : i+4]))
		if left != right {
			t.Errorf("at sample %d: left=%d, right=%d (should be identical)", i/4, left, right)
			break
		}
	}
}
