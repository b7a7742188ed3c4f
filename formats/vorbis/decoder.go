// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ik5/pcmwav/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggvorbis yields floats in [-1, 1]; sources speak the 16-bit float range.
const s16Scale = 32768

// oggReader is the part of oggvorbis.Reader the source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	// Read returns the number of values stored, always whole frames.
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// Duration is the stream length, or 0 when the source is not seekable.
func (s *source) Duration() time.Duration {
	frames := s.dec.Length()
	if frames <= 0 {
		return 0
	}

	return time.Duration(frames) * time.Second / time.Duration(s.sampleRate)
}

// ReadSamples decodes whole frames into dst. dst shorter than one frame
// reads nothing.
func (s *source) ReadSamples(dst []float32) (int, error) {
	dst = dst[:len(dst)-len(dst)%s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	for i := range dst[:n] {
		dst[i] *= s16Scale
	}

	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF):
		return n, io.EOF
	default:
		return n, fmt.Errorf("decoding Vorbis: %w", err)
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newSource(dec), nil
}

func newSource(dec oggReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}
}
