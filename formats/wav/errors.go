// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by any call on a Reader or Writer after Close,
	// including a second Close.
	ErrClosed = errors.New("WAV stream already closed")

	// ErrFormat is the root of every malformed or unsupported header error.
	ErrFormat = errors.New("invalid WAV format")

	// ErrOverflow reports stream parameters that cannot be represented in the
	// header's fixed-width fields.
	ErrOverflow = errors.New("WAV parameters out of range")

	// ErrTruncatedHeader reports a source that ended before a full header
	// could be read.
	ErrTruncatedHeader = errors.New("truncated WAV header")
)

var (
	ErrNotWavFile            = fmt.Errorf("%w: not a WAV file", ErrFormat)
	ErrUnsupportedWavLayout  = fmt.Errorf("%w: unsupported WAV layout", ErrFormat)
	ErrOnlyPCM16bitSupported = fmt.Errorf("%w: only PCM 16-bit supported", ErrFormat)
	ErrUnsupportedWavChunks  = fmt.Errorf("%w: unsupported WAV chunks", ErrFormat)
	ErrUnsupportedFormat     = fmt.Errorf("%w: unsupported audio format for sample width", ErrFormat)
	ErrInvalidBitDepth       = fmt.Errorf("%w: invalid bits per sample", ErrFormat)
	ErrInconsistentHeader    = fmt.Errorf("%w: byte rate or block align disagrees with format", ErrFormat)
	ErrRiffSizeTooSmall      = fmt.Errorf("%w: RIFF size smaller than payload", ErrFormat)
	ErrFormatMismatch        = fmt.Errorf("%w: buffer format does not match stream", ErrFormat)
)
