// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"
	"time"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/utils"
)

// go-mp3 always decodes to interleaved stereo 16-bit little-endian PCM.
const (
	channels       = 2
	bytesPerSample = 2
	bufSamples     = 4096
)

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	io.Reader
	SampleRate() int
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int

	bbuf [bufSamples * bytesPerSample]byte
	ibuf [bufSamples]int16
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return bufSamples }

// Duration is the decoded length, or 0 when the stream is not seekable.
func (s *source) Duration() time.Duration {
	n := s.dec.Length()
	if n <= 0 {
		return 0
	}
	frames := n / (channels * bytesPerSample)

	return time.Duration(frames) * time.Second / time.Duration(s.sampleRate)
}

// ReadSamples fills dst with samples in the 16-bit float range. The last
// read before the end of the stream may return n > 0 together with io.EOF.
func (s *source) ReadSamples(dst []float32) (int, error) {
	read := 0
	for read < len(dst) {
		want := min(len(dst)-read, bufSamples)

		got, err := io.ReadFull(s.dec, s.bbuf[:want*bytesPerSample])
		n := utils.Int16LE(s.ibuf[:], s.bbuf[:got])
		utils.S16ToFloatS16Slice(dst[read:], s.ibuf[:n])
		read += n

		switch {
		case err == nil:
		case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
			return read, io.EOF
		default:
			return read, fmt.Errorf("decoding MP3: %w", err)
		}
	}

	return read, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
	}
}
