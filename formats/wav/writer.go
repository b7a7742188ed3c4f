// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/pcmwav/utils"
)

const (
	// writerFormat and writerBytesPerSample describe everything a Writer
	// produces: 16-bit linear PCM.
	writerFormat         = FormatPCM
	writerBytesPerSample = 2

	// chunkSamples bounds the scratch memory used when converting samples.
	chunkSamples = 2048
)

// Writer streams interleaved 16-bit PCM samples into a seekable sink. The
// header cannot be known until the last sample is written, so NewWriter
// reserves HeaderSize zero bytes and Close overwrites them.
//
// A Writer is not safe for concurrent use. After any error the Writer is
// unusable; Close still releases the sink.
type Writer struct {
	w          io.WriteSeeker
	sampleRate int
	channels   int
	numSamples uint64

	ibuf   [chunkSamples]int16
	bbuf   [chunkSamples * writerBytesPerSample]byte
	err    error
	closed bool
}

// NewWriter writes a placeholder header to w and returns a Writer for a
// stream of the given rate and channel count. If w is an io.Closer it is
// closed by Writer.Close.
func NewWriter(w io.WriteSeeker, sampleRate, numChannels int) (*Writer, error) {
	if err := CheckParameters(numChannels, sampleRate, writerFormat, writerBytesPerSample, 0); err != nil {
		return nil, err
	}

	var placeholder [HeaderSize]byte
	if err := writeFull(w, placeholder[:]); err != nil {
		return nil, fmt.Errorf("writing WAV placeholder header: %w", err)
	}

	return &Writer{
		w:          w,
		sampleRate: sampleRate,
		channels:   numChannels,
	}, nil
}

func (wr *Writer) SampleRate() int { return wr.sampleRate }
func (wr *Writer) Channels() int   { return wr.channels }

// NumSamples returns the number of samples written so far, across all
// channels.
func (wr *Writer) NumSamples() uint64 { return wr.numSamples }

// WriteInt16 appends interleaved samples to the stream.
func (wr *Writer) WriteInt16(samples []int16) error {
	if err := wr.usable(); err != nil {
		return err
	}

	for len(samples) > 0 {
		chunk := samples[:min(len(samples), chunkSamples)]
		samples = samples[len(chunk):]

		if err := wr.writeChunk(chunk); err != nil {
			return err
		}
	}

	return wr.validate()
}

// WriteSamples appends interleaved float samples in the range
// [-32768.0, 32767.0]. Each value is rounded to the nearest int16, half away
// from zero, and saturated at the int16 limits.
func (wr *Writer) WriteSamples(samples []float32) error {
	if err := wr.usable(); err != nil {
		return err
	}

	for len(samples) > 0 {
		n := utils.FloatS16ToS16Slice(wr.ibuf[:], samples)
		samples = samples[n:]

		if err := wr.writeChunk(wr.ibuf[:n]); err != nil {
			return err
		}
	}

	return wr.validate()
}

// WriteBuffer appends the contents of a go-audio integer buffer. A buffer
// with a format must match the stream's rate and channel count; values
// outside the int16 range saturate.
func (wr *Writer) WriteBuffer(buf *goaudio.IntBuffer) error {
	if err := wr.usable(); err != nil {
		return err
	}
	if buf == nil {
		return nil
	}
	if f := buf.Format; f != nil && (f.NumChannels != wr.channels || f.SampleRate != wr.sampleRate) {
		return fmt.Errorf("%w: got %d ch @ %d Hz, stream is %d ch @ %d Hz",
			ErrFormatMismatch, f.NumChannels, f.SampleRate, wr.channels, wr.sampleRate)
	}

	data := buf.Data
	for len(data) > 0 {
		n := min(len(data), chunkSamples)
		for i, v := range data[:n] {
			wr.ibuf[i] = utils.SaturateInt16(v)
		}
		data = data[n:]

		if err := wr.writeChunk(wr.ibuf[:n]); err != nil {
			return err
		}
	}

	return wr.validate()
}

// Close writes the final header over the placeholder and releases the sink.
func (wr *Writer) Close() error {
	if wr.closed {
		return ErrClosed
	}
	wr.closed = true

	err := wr.err
	if err == nil {
		err = wr.writeHeader()
	}

	if c, ok := wr.w.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing WAV sink: %w", cerr)
		}
	}
	wr.w = nil

	return err
}

func (wr *Writer) writeHeader() error {
	hdr, err := EncodeHeader(Header{
		NumChannels:    wr.channels,
		SampleRate:     wr.sampleRate,
		Format:         writerFormat,
		BytesPerSample: writerBytesPerSample,
		NumSamples:     uint32(wr.numSamples),
	})
	if err != nil {
		return err
	}

	if _, err := wr.w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to WAV header: %w", err)
	}
	if err := writeFull(wr.w, hdr); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	return nil
}

// writeChunk writes at most chunkSamples samples. Any failure is kept as the
// Writer's sticky error.
func (wr *Writer) writeChunk(samples []int16) error {
	n := utils.PutInt16LE(wr.bbuf[:], samples)

	written, err := wr.w.Write(wr.bbuf[:n])
	wr.numSamples += uint64(written / writerBytesPerSample)
	if err == nil && written != n {
		err = io.ErrShortWrite
	}
	if err != nil {
		wr.err = fmt.Errorf("writing WAV samples: %w", err)
		return wr.err
	}

	if wr.numSamples > MaxSamples(writerBytesPerSample) {
		wr.err = fmt.Errorf("%w: %d samples overflow the RIFF size field", ErrOverflow, wr.numSamples)
		return wr.err
	}

	return nil
}

// validate re-checks the stream parameters against the running total at the
// end of every write call.
func (wr *Writer) validate() error {
	if err := CheckParameters(wr.channels, wr.sampleRate, writerFormat, writerBytesPerSample, wr.numSamples); err != nil {
		wr.err = err
		return err
	}

	return nil
}

func (wr *Writer) usable() error {
	if wr.closed {
		return ErrClosed
	}

	return wr.err
}

func writeFull(w io.Writer, buf []byte) error {
	n, err := w.Write(buf)
	if err == nil && n != len(buf) {
		err = io.ErrShortWrite
	}

	return err
}
