// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/pcmwav/utils"
)

// Reader reads interleaved 16-bit PCM samples from a WAV stream. It never
// reads past the data chunk, so anything appended after the audio (LIST
// chunks and the like) is left untouched.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	r         io.Reader
	hdr       Header
	remaining uint32

	ibuf   [chunkSamples]int16
	bbuf   [chunkSamples * writerBytesPerSample]byte
	err    error
	closed bool
}

// NewReader decodes and validates the header at the start of r. Only 16-bit
// PCM streams are accepted. If r is an io.Closer it is closed by
// Reader.Close.
func NewReader(r io.Reader) (*Reader, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	if hdr.Format != FormatPCM || hdr.BytesPerSample != writerBytesPerSample {
		return nil, fmt.Errorf("%w: got %s with %d bits", ErrOnlyPCM16bitSupported, hdr.Format, hdr.BitsPerSample())
	}

	return &Reader{
		r:         r,
		hdr:       hdr,
		remaining: hdr.NumSamples,
	}, nil
}

func (rd *Reader) SampleRate() int { return rd.hdr.SampleRate }
func (rd *Reader) Channels() int   { return rd.hdr.NumChannels }

// NumSamples returns the total number of samples declared by the header.
func (rd *Reader) NumSamples() uint32 { return rd.hdr.NumSamples }

// Remaining returns the number of samples not yet read.
func (rd *Reader) Remaining() uint32 { return rd.remaining }

// Header returns the decoded header.
func (rd *Reader) Header() Header { return rd.hdr }

// BufSize is the number of samples converted per internal read.
func (rd *Reader) BufSize() int { return chunkSamples }

// Duration is the playing time declared by the header.
func (rd *Reader) Duration() time.Duration {
	frames := time.Duration(rd.hdr.NumFrames())
	return frames * time.Second / time.Duration(rd.hdr.SampleRate)
}

// ReadInt16 reads up to len(dst) samples, never more than Remaining. A source
// that ends before the declared payload does yields a short count; once
// nothing is left ReadInt16 returns 0, io.EOF.
func (rd *Reader) ReadInt16(dst []int16) (int, error) {
	if err := rd.usable(); err != nil {
		return 0, err
	}

	read := 0
	for read < len(dst) {
		n, err := rd.readChunk(dst[read:])
		read += n
		if err != nil {
			if read > 0 && err == io.EOF {
				return read, nil
			}
			return read, err
		}
	}

	return read, nil
}

// ReadSamples reads up to len(dst) samples widened to float32 without
// scaling, so values stay in [-32768.0, 32767.0].
func (rd *Reader) ReadSamples(dst []float32) (int, error) {
	if err := rd.usable(); err != nil {
		return 0, err
	}

	read := 0
	for read < len(dst) {
		n, err := rd.readChunk(rd.ibuf[:min(len(dst)-read, chunkSamples)])
		utils.S16ToFloatS16Slice(dst[read:], rd.ibuf[:n])
		read += n
		if err != nil {
			if read > 0 && err == io.EOF {
				return read, nil
			}
			return read, err
		}
	}

	return read, nil
}

// ReadBuffer fills buf.Data with samples and sets its format. The returned
// count may be smaller than len(buf.Data); buf.Data is not resliced.
func (rd *Reader) ReadBuffer(buf *goaudio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, nil
	}
	if err := rd.usable(); err != nil {
		return 0, err
	}

	buf.Format = rd.hdr.AudioFormat()
	buf.SourceBitDepth = int(rd.hdr.BitsPerSample())

	read := 0
	for read < len(buf.Data) {
		n, err := rd.readChunk(rd.ibuf[:min(len(buf.Data)-read, chunkSamples)])
		for i, v := range rd.ibuf[:n] {
			buf.Data[read+i] = int(v)
		}
		read += n
		if err != nil {
			if read > 0 && err == io.EOF {
				return read, nil
			}
			return read, err
		}
	}

	return read, nil
}

// Close releases the source.
func (rd *Reader) Close() error {
	if rd.closed {
		return ErrClosed
	}
	rd.closed = true

	var err error
	if c, ok := rd.r.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil {
			err = fmt.Errorf("closing WAV source: %w", cerr)
		}
	}
	rd.r = nil

	return err
}

// readChunk reads at most chunkSamples samples into dst, clamped to the
// remaining count. It returns io.EOF once no sample could be read because the
// payload or the source is exhausted.
func (rd *Reader) readChunk(dst []int16) (int, error) {
	want := min(uint32(min(len(dst), chunkSamples)), rd.remaining)
	if want == 0 {
		if len(dst) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}

	nbytes := int(want) * writerBytesPerSample
	got, err := io.ReadFull(rd.r, rd.bbuf[:nbytes])
	n := utils.Int16LE(dst, rd.bbuf[:got])
	rd.remaining -= uint32(n)

	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		// The source ended inside the payload; keep what arrived.
		if n > 0 {
			return n, nil
		}
		return 0, io.EOF
	default:
		rd.err = fmt.Errorf("reading WAV samples: %w", err)
		return n, rd.err
	}
}

func (rd *Reader) usable() error {
	if rd.closed {
		return ErrClosed
	}

	return rd.err
}
