package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates a base64 payload containing characters
	// outside the standard alphabet.
	ErrMalformedInput = errors.New("malformed input")

	// ErrPayloadTooLarge indicates a PCM payload or descriptor value that
	// cannot be represented in the WAV header's fixed-width fields.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrInvalidFormat indicates a descriptor violating the Format
	// invariants.
	ErrInvalidFormat = errors.New("invalid audio format")
)

func errInvalidFormatf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, fmt.Sprintf(format, args...))
}
