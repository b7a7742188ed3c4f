// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into an audio.Source, using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo, so Channels is 2 even for mono
// files. Samples are delivered in the 16-bit float range [-32768, 32767],
// ready for wav.Writer:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrNotMP3File)
//	}
//	n, err := pcmwav.Convert(out, src)
//
// Decoding only; there is no MP3 encoder.
package mp3
