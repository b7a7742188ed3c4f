// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into an audio.Source, using
// github.com/go-audio/aiff.
//
// 8, 16, 24 and 32-bit samples are accepted and mapped onto the 16-bit float
// range [-32768, 32767]: 8-bit values are multiplied by 256, wider values
// are divided down and keep their fraction so the WAV writer can round them.
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // 12-bit, 20-bit and other odd widths
//	}
//	n, err := pcmwav.Convert(out, src)
//
// go-audio/aiff needs an io.ReadSeeker; other readers are buffered in
// memory first.
package aiff
