package audio

import (
	"encoding/binary"
	"fmt"
	"math"
)

// wavHeaderSize is the size of a canonical RIFF/WAVE PCM header: the
// RIFF chunk preamble, a 16-byte "fmt " subchunk, and the "data"
// subchunk preamble.
const wavHeaderSize = 44

// Container is a fully assembled WAV file: a RIFF/WAVE header followed
// by the verbatim PCM payload, tagged with its MIME type. It is built
// once and never mutated.
type Container struct {
	Data []byte
	MIME string
}

// EncodeWAV wraps a raw PCM byte stream with a RIFF/WAVE PCM header.
// The payload is copied verbatim after the 44-byte header; no
// resampling, channel mixing, or sample conversion takes place.
//
// Encoding is all-or-nothing: it fails with ErrInvalidFormat when the
// descriptor violates its invariants and with ErrPayloadTooLarge when
// the payload length or a derived header value does not fit its
// fixed-width header field.
func EncodeWAV(pcm []byte, f Format) (Container, error) {
	if err := f.Validate(); err != nil {
		return Container{}, err
	}
	if uint64(len(pcm)) > math.MaxUint32-uint64(wavHeaderSize-8) {
		return Container{}, fmt.Errorf("%w: %d bytes of PCM exceed the 32-bit data size field", ErrPayloadTooLarge, len(pcm))
	}
	if uint64(f.SampleRate) > math.MaxUint32 || uint64(f.ByteRate()) > math.MaxUint32 {
		return Container{}, fmt.Errorf("%w: sample rate %d overflows the byte rate field", ErrPayloadTooLarge, f.SampleRate)
	}
	if f.NumChannels > math.MaxUint16 || f.BitsPerSample > math.MaxUint16 || f.BlockAlign() > math.MaxUint16 {
		return Container{}, fmt.Errorf("%w: descriptor %+v overflows the 16-bit header fields", ErrPayloadTooLarge, f)
	}

	dataSize := uint32(len(pcm))
	buf := make([]byte, wavHeaderSize+len(pcm))

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], wavHeaderSize-8+dataSize)
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // uncompressed PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(f.NumChannels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(buf[34:36], uint16(f.BitsPerSample))

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], dataSize)
	copy(buf[wavHeaderSize:], pcm)

	return Container{Data: buf, MIME: MIMETypeWAV}, nil
}
