// SPDX-License-Identifier: EPL-2.0

// Package pcmwav writes any decoded audio stream as a canonical 16-bit PCM
// WAV file.
//
// The codec itself lives in formats/wav: a parameter validator, a 44-byte
// header encoder and decoder, and streaming Writer and Reader types. The
// formats/mp3, formats/vorbis and formats/aiff packages decode other
// formats into an audio.Source, and Convert drains any source into a WAV
// file:
//
//	reg := audio.NewRegistry()
//	reg.Register("mp3", mp3.Decoder{})
//	reg.Register("wav", wav.Decoder{})
//
//	in, _ := os.Open("song.mp3")
//	src, err := reg.Decode(filepath.Ext(in.Name()), in)
//	if err != nil {
//	    return err
//	}
//
//	out, _ := os.Create("song.wav")
//	n, err := pcmwav.Convert(out, src)
//
// # Sample values
//
// Sources deliver float32 samples already in the 16-bit range
// [-32768.0, 32767.0], not normalized to [-1, 1]. The writer rounds them
// half away from zero and saturates at the int16 limits, so 100.4 becomes
// 100, 100.6 becomes 101 and 40000 becomes 32767.
//
// # Errors
//
// Errors are returned, never logged. The wav package exposes ErrFormat,
// ErrOverflow, ErrTruncatedHeader and ErrClosed as kinds for errors.Is.
// A Writer or Reader that failed once keeps failing with the same error.
package pcmwav
