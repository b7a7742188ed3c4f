// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/pcmwav/audio"
)

const bufSamples = 4096

// aiffReader is the part of aiff.Decoder the source needs.
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec      aiffReader
	format   *goaudio.Format
	bitDepth int
	duration time.Duration

	// scale maps bitDepth-wide integers onto the 16-bit float range.
	scale float32
	ibuf  goaudio.IntBuffer
}

func newSource(dec aiffReader, format *goaudio.Format, bitDepth int) *source {
	s := &source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
		scale:    float32(math.Ldexp(1, 16-bitDepth)),
	}
	s.ibuf = goaudio.IntBuffer{
		Format:         format,
		Data:           make([]int, bufSamples),
		SourceBitDepth: bitDepth,
	}

	return s
}

func (s *source) SampleRate() int         { return s.format.SampleRate }
func (s *source) Channels() int           { return s.format.NumChannels }
func (s *source) Close() error            { return nil }
func (s *source) BufSize() int            { return bufSamples }
func (s *source) Duration() time.Duration { return s.duration }
func (s *source) BitDepth() int           { return s.bitDepth }

// ReadSamples converts up to len(dst) samples to the 16-bit float range.
// Wider samples keep their fraction; 8-bit samples are scaled up.
func (s *source) ReadSamples(dst []float32) (int, error) {
	read := 0
	for read < len(dst) {
		s.ibuf.Data = s.ibuf.Data[:min(len(dst)-read, bufSamples)]

		n, err := s.dec.PCMBuffer(&s.ibuf)
		for i, v := range s.ibuf.Data[:n] {
			if s.bitDepth == 32 {
				// go-audio/aiff hands 32-bit samples back unsigned.
				v = int(int32(v))
			}
			dst[read+i] = float32(v) * s.scale
		}
		read += n

		switch {
		case n > 0 && (err == nil || err == io.EOF):
			// A short chunk is not the end; the next call finds out.
			if n < len(s.ibuf.Data) {
				return read, nil
			}
		case err == nil || err == io.EOF:
			if read > 0 {
				return read, nil
			}
			return 0, io.EOF
		default:
			return read, fmt.Errorf("decoding AIFF: %w", err)
		}
	}

	return read, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	s := newSource(dec, format, int(dec.BitDepth))
	if d, err := dec.Duration(); err == nil {
		s.duration = d
	}

	return s, nil
}
