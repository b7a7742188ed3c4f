// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into an audio.Source, using
// github.com/jfreymuth/oggvorbis.
//
// The decoder's [-1, 1] output is scaled by 32768 into the 16-bit float
// range. Full-scale positive peaks land on 32768 and saturate to 32767 when
// written to a WAV file. Reads always return whole frames.
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrNotVorbisFile)
//	}
//	n, err := pcmwav.Convert(out, src)
package vorbis
