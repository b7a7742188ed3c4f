// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"math"
)

// Format is the audio format code stored in the fmt chunk.
type Format uint16

const (
	FormatPCM   Format = 1 // linear PCM
	FormatALaw  Format = 6 // 8-bit ITU-T G.711 A-law
	FormatMuLaw Format = 7 // 8-bit ITU-T G.711 mu-law
)

func (f Format) String() string {
	switch f {
	case FormatPCM:
		return "PCM"
	case FormatALaw:
		return "A-law"
	case FormatMuLaw:
		return "mu-law"
	default:
		return fmt.Sprintf("Format(%d)", uint16(f))
	}
}

// MaxSamples is the largest sample count whose payload still fits the 32-bit
// RIFF size field for the given sample width.
func MaxSamples(bytesPerSample int) uint64 {
	if bytesPerSample <= 0 {
		return 0
	}

	return (math.MaxUint32 - riffHeaderOverhead) / uint64(bytesPerSample)
}

// CheckParameters reports whether a stream with these parameters can be
// described by a canonical 44-byte header. Range violations wrap ErrOverflow;
// a format code that disagrees with the sample width wraps ErrFormat.
func CheckParameters(numChannels, sampleRate int, format Format, bytesPerSample int, numSamples uint64) error {
	if numChannels <= 0 || sampleRate <= 0 || bytesPerSample <= 0 {
		return fmt.Errorf("%w: channels=%d rate=%d bytes per sample=%d must be positive",
			ErrOverflow, numChannels, sampleRate, bytesPerSample)
	}

	if uint64(sampleRate) > math.MaxUint32 {
		return fmt.Errorf("%w: sample rate %d", ErrOverflow, sampleRate)
	}

	if uint64(numChannels) > math.MaxUint16 {
		return fmt.Errorf("%w: %d channels", ErrOverflow, numChannels)
	}

	if uint64(bytesPerSample)*8 > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes per sample", ErrOverflow, bytesPerSample)
	}

	// Each factor is range-checked above, so the product fits in uint64.
	if uint64(sampleRate)*uint64(numChannels)*uint64(bytesPerSample) > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate for %d Hz x %d channels x %d bytes",
			ErrOverflow, sampleRate, numChannels, bytesPerSample)
	}

	switch format {
	case FormatPCM:
		if bytesPerSample != 1 && bytesPerSample != 2 {
			return fmt.Errorf("%w: %s with %d bytes per sample", ErrUnsupportedFormat, format, bytesPerSample)
		}
	case FormatALaw, FormatMuLaw:
		if bytesPerSample != 1 {
			return fmt.Errorf("%w: %s with %d bytes per sample", ErrUnsupportedFormat, format, bytesPerSample)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if numSamples > MaxSamples(bytesPerSample) {
		return fmt.Errorf("%w: %d samples overflow the RIFF size field", ErrOverflow, numSamples)
	}

	if numSamples%uint64(numChannels) != 0 {
		return fmt.Errorf("%w: %d samples not divisible by %d channels", ErrOverflow, numSamples, numChannels)
	}

	return nil
}

// ValidParameters is CheckParameters as a predicate.
func ValidParameters(numChannels, sampleRate int, format Format, bytesPerSample int, numSamples uint64) bool {
	return CheckParameters(numChannels, sampleRate, format, bytesPerSample, numSamples) == nil
}
