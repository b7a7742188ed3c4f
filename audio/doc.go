// SPDX-License-Identifier: EPL-2.0

// Package audio defines the Source abstraction shared by every decoder and
// the Registry used to pick a decoder by file extension.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Sample Format
//
// Samples are interleaved float32 values on the 16-bit scale,
// [-32768.0, 32767.0], not normalized to [-1.0, 1.0]. A 16-bit PCM source
// therefore widens its samples without any arithmetic, and a writer rounds
// them back to int16 losslessly.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Decode(filepath.Ext(path), file)
//
// Keys are case-insensitive and may carry the leading dot of an extension.
// Decode wraps ErrUnknownFormat when nothing is registered for a key.
//
// # End of Stream
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
