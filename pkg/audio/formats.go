// Package audio implements the audio payload pipeline: decoding base64
// transport payloads into raw bytes and packaging raw little-endian PCM
// into playable RIFF/WAVE containers.
package audio

// MIMETypeWAV is the MIME type of containers produced by EncodeWAV.
const MIMETypeWAV = "audio/wav"

// Deployment PCM layout. The synthesis provider emits signed 16-bit
// little-endian mono samples at 24 kHz.
const (
	DefaultSampleRate    = 24_000 // Hz
	DefaultChannels      = 1
	DefaultBitsPerSample = 16
)

// Format describes the layout of a raw PCM byte stream: consecutive
// little-endian signed integers of BitsPerSample/8 bytes, one per
// channel, interleaved frame by frame.
type Format struct {
	SampleRate    int `json:"sampleRate"`
	NumChannels   int `json:"numChannels"`
	BitsPerSample int `json:"bitsPerSample"`
}

// DefaultFormat returns the deployment's PCM layout.
func DefaultFormat() Format {
	return Format{
		SampleRate:    DefaultSampleRate,
		NumChannels:   DefaultChannels,
		BitsPerSample: DefaultBitsPerSample,
	}
}

// Validate checks the descriptor invariants: all fields positive and a
// byte-aligned bit depth.
func (f Format) Validate() error {
	if f.SampleRate < 1 {
		return errInvalidFormatf("sample rate must be positive, got %d", f.SampleRate)
	}
	if f.NumChannels < 1 {
		return errInvalidFormatf("channel count must be positive, got %d", f.NumChannels)
	}
	if f.BitsPerSample < 1 || f.BitsPerSample%8 != 0 {
		return errInvalidFormatf("bits per sample must be a positive multiple of 8, got %d", f.BitsPerSample)
	}
	return nil
}

// BlockAlign returns the stride of one interleaved frame in bytes.
func (f Format) BlockAlign() int {
	return f.NumChannels * f.BitsPerSample / 8
}

// ByteRate returns the number of PCM bytes consumed per second of audio.
func (f Format) ByteRate() int {
	return f.SampleRate * f.BlockAlign()
}
