// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files with the canonical 44-byte
// header.
//
// # Header
//
// A canonical file is a RIFF chunk holding exactly two sub-chunks, fmt and
// data, with nothing in between:
//
//	RIFF <size> WAVE
//	fmt  <16> format channels rate byte-rate block-align bits
//	data <size> samples...
//
// EncodeHeader and ReadHeader convert between this layout and Header.
// ReadHeader also accepts an 18-byte fmt chunk whose extension is empty, and
// rejects everything else, including LIST or fact chunks before the data.
//
// CheckParameters decides which streams can be described at all: channel
// count, rate and sample width must fit their header fields, the byte rate
// must fit in 32 bits, the payload must fit the RIFF size field, and the
// sample count must be a whole number of frames. PCM uses 1 or 2 bytes per
// sample; A-law and mu-law use 1.
//
// # Writing
//
// Writer produces 16-bit PCM. The header depends on the final sample count,
// so NewWriter reserves the first 44 bytes and Close seeks back to fill them:
//
//	f, _ := os.Create("out.wav")
//	w, err := wav.NewWriter(f, 16000, 1)
//	...
//	w.WriteSamples(samples) // float32 in [-32768, 32767]
//	err = w.Close()         // writes the header, closes f
//
// Float samples are rounded half away from zero and saturated at the int16
// limits. WriteWAV16 writes a complete mono file to a plain io.Writer when
// all samples are already in memory.
//
// # Reading
//
// Reader accepts 16-bit PCM only. It reads at most the declared payload,
// so data after the audio is left in the source:
//
//	r, err := wav.NewReader(f)
//	...
//	n, err := r.ReadSamples(buf) // io.EOF once the payload is consumed
//
// A source that ends early yields the samples that arrived and then io.EOF.
//
// # Errors
//
// Malformed or unsupported headers wrap ErrFormat. Parameters that do not
// fit the header wrap ErrOverflow. Test with errors.Is.
// After a write or read error a Writer or Reader keeps returning it. Any
// call after Close returns ErrClosed.
package wav
