package audio

import (
	"encoding/base64"
	"fmt"
)

// DecodeBase64 converts a standard-alphabet base64 string into the exact
// byte sequence it encodes. Padding is optional; an empty string yields
// an empty buffer. Any character outside the alphabet (or misplaced
// padding) fails with ErrMalformedInput.
//
// Callers are expected to strip any data-URI prefix before calling.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	// Payloads shorter than a full 4-character group arrive unpadded
	// from some transports.
	if data, rawErr := base64.RawStdEncoding.DecodeString(s); rawErr == nil {
		return data, nil
	}

	// Report the padded decoder's error; padded payloads are the
	// normal case.
	return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
}
