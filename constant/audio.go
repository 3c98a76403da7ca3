package constant

import "time"

// Collision sound
const (
	AudioSampleRate = 48000
	// AudioBufferDuration is the speaker buffer length passed to speaker.Init
	AudioBufferDuration = 100 * time.Millisecond

	ClackDuration  = 25 * time.Millisecond
	ClackToneHz    = 2200.0
	ClackDecayRate = 220.0 // envelope exp(-t*rate), t in seconds

	// ClackVolumeStep is the extra gain (in volume base-2 exponent) per doubling of clacks in a frame
	ClackVolumeStep = 0.5
	// ClackVolumeMax caps the per-frame gain exponent
	ClackVolumeMax = 2.0

	DefaultMasterVolume = 0.6
)
