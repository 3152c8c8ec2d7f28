package wave

import "errors"

// ErrDecode reports container bytes that cannot be decoded: corrupt or
// truncated header, unsupported sample encoding, or an empty payload.
var ErrDecode = errors.New("wave: undecodable audio data")
