// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

const (
	// HeaderSize is the size of a canonical header without the fmt extension.
	HeaderSize = 44

	chunkHeaderSize    = 8
	fmtChunkSize       = 16
	fmtChunkSizeExt    = fmtChunkSize + 2
	riffHeaderOverhead = HeaderSize - chunkHeaderSize

	// bytes up to and including the fmt chunk body, before the data chunk
	preDataSize = HeaderSize - chunkHeaderSize
)

// Byte offsets of the canonical header fields.
const (
	offRiffID        = 0
	offRiffSize      = 4
	offWaveID        = 8
	offFmtID         = 12
	offFmtSize       = 16
	offAudioFormat   = 20
	offNumChannels   = 22
	offSampleRate    = 24
	offByteRate      = 28
	offBlockAlign    = 32
	offBitsPerSample = 34
	offDataID        = 36
	offDataSize      = 40
)

// Header holds the stream parameters carried by a canonical WAV header.
type Header struct {
	NumChannels    int
	SampleRate     int
	Format         Format
	BytesPerSample int
	// NumSamples counts samples across all channels, not frames.
	NumSamples uint32
}

func (h Header) ByteRate() uint32 {
	return uint32(h.NumChannels) * uint32(h.SampleRate) * uint32(h.BytesPerSample)
}

func (h Header) BlockAlign() uint16 {
	return uint16(h.NumChannels * h.BytesPerSample)
}

func (h Header) BitsPerSample() uint16 {
	return uint16(8 * h.BytesPerSample)
}

// PayloadBytes is the size of the data chunk.
func (h Header) PayloadBytes() uint32 {
	return uint32(h.BytesPerSample) * h.NumSamples
}

// RiffSize is the value of the RIFF chunk size field: everything after the
// outer chunk header.
func (h Header) RiffSize() uint32 {
	return h.PayloadBytes() + riffHeaderOverhead
}

// NumFrames is the number of multi-channel sample frames.
func (h Header) NumFrames() uint32 {
	if h.NumChannels <= 0 {
		return 0
	}

	return h.NumSamples / uint32(h.NumChannels)
}

// AudioFormat describes the stream for the go-audio ecosystem.
func (h Header) AudioFormat() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: h.NumChannels,
		SampleRate:  h.SampleRate,
	}
}

// Validate runs CheckParameters over the header fields.
func (h Header) Validate() error {
	return CheckParameters(h.NumChannels, h.SampleRate, h.Format, h.BytesPerSample, uint64(h.NumSamples))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h Header) MarshalBinary() ([]byte, error) {
	return EncodeHeader(h)
}

// EncodeHeader returns the 44-byte canonical header for h. Parameters that
// CheckParameters rejects are never encoded.
func EncodeHeader(h Header) ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, HeaderSize)

	copy(buf[offRiffID:], riff.RiffID[:])
	binary.LittleEndian.PutUint32(buf[offRiffSize:], h.RiffSize())
	copy(buf[offWaveID:], riff.WavFormatID[:])

	copy(buf[offFmtID:], riff.FmtID[:])
	binary.LittleEndian.PutUint32(buf[offFmtSize:], fmtChunkSize)
	binary.LittleEndian.PutUint16(buf[offAudioFormat:], uint16(h.Format))
	binary.LittleEndian.PutUint16(buf[offNumChannels:], uint16(h.NumChannels))
	binary.LittleEndian.PutUint32(buf[offSampleRate:], uint32(h.SampleRate))
	binary.LittleEndian.PutUint32(buf[offByteRate:], h.ByteRate())
	binary.LittleEndian.PutUint16(buf[offBlockAlign:], h.BlockAlign())
	binary.LittleEndian.PutUint16(buf[offBitsPerSample:], h.BitsPerSample())

	copy(buf[offDataID:], riff.DataFormatID[:])
	binary.LittleEndian.PutUint32(buf[offDataSize:], h.PayloadBytes())

	return buf, nil
}

// ReadHeader reads and validates a canonical header from r, leaving r
// positioned at the first payload byte. A fmt chunk of 18 bytes is accepted
// only when its 2-byte extension size is zero; nothing else may sit between
// the fmt and data chunks.
//
// The sample count is the data chunk size divided by the sample width; a
// trailing partial sample is dropped.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte

	if err := readFull(r, buf[:preDataSize]); err != nil {
		return Header{}, err
	}

	if !hasTag(buf[:], offRiffID, riff.RiffID) || !hasTag(buf[:], offWaveID, riff.WavFormatID) {
		return Header{}, ErrNotWavFile
	}
	if !hasTag(buf[:], offFmtID, riff.FmtID) {
		return Header{}, ErrUnsupportedWavChunks
	}

	switch fmtSize := binary.LittleEndian.Uint32(buf[offFmtSize:]); fmtSize {
	case fmtChunkSize:
	case fmtChunkSizeExt:
		var ext [2]byte
		if err := readFull(r, ext[:]); err != nil {
			return Header{}, err
		}
		if extSize := binary.LittleEndian.Uint16(ext[:]); extSize != 0 {
			return Header{}, fmt.Errorf("%w: fmt extension size %d", ErrUnsupportedWavLayout, extSize)
		}
	default:
		return Header{}, fmt.Errorf("%w: fmt chunk size %d", ErrUnsupportedWavLayout, fmtSize)
	}

	if err := readFull(r, buf[offDataID:]); err != nil {
		return Header{}, err
	}

	if !hasTag(buf[:], offDataID, riff.DataFormatID) {
		return Header{}, ErrUnsupportedWavChunks
	}

	bitsPerSample := binary.LittleEndian.Uint16(buf[offBitsPerSample:])
	dataSize := binary.LittleEndian.Uint32(buf[offDataSize:])

	h := Header{
		NumChannels:    int(binary.LittleEndian.Uint16(buf[offNumChannels:])),
		SampleRate:     int(binary.LittleEndian.Uint32(buf[offSampleRate:])),
		Format:         Format(binary.LittleEndian.Uint16(buf[offAudioFormat:])),
		BytesPerSample: int(bitsPerSample / 8),
	}
	if h.BytesPerSample <= 0 {
		return Header{}, fmt.Errorf("%w: %d", ErrInvalidBitDepth, bitsPerSample)
	}
	// TODO: a dataSize that is not a multiple of BytesPerSample loses its last
	// partial sample here; decide whether that should be ErrFormat instead.
	h.NumSamples = dataSize / uint32(h.BytesPerSample)

	// Recompute in uint64 so adversarial fields cannot wrap into a match.
	byteRate := uint64(h.NumChannels) * uint64(h.SampleRate) * uint64(h.BytesPerSample)
	blockAlign := uint64(h.NumChannels) * uint64(h.BytesPerSample)
	if byteRate > math.MaxUint32 || uint64(binary.LittleEndian.Uint32(buf[offByteRate:])) != byteRate {
		return Header{}, fmt.Errorf("%w: byte rate %d, want %d",
			ErrInconsistentHeader, binary.LittleEndian.Uint32(buf[offByteRate:]), byteRate)
	}
	if uint64(binary.LittleEndian.Uint16(buf[offBlockAlign:])) != blockAlign {
		return Header{}, fmt.Errorf("%w: block align %d, want %d",
			ErrInconsistentHeader, binary.LittleEndian.Uint16(buf[offBlockAlign:]), blockAlign)
	}

	riffSize := binary.LittleEndian.Uint32(buf[offRiffSize:])
	if uint64(riffSize) < uint64(dataSize)+riffHeaderOverhead {
		return Header{}, fmt.Errorf("%w: %d < %d", ErrRiffSizeTooSmall, riffSize, uint64(dataSize)+riffHeaderOverhead)
	}

	if err := h.Validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}

func hasTag(buf []byte, off int, tag [4]byte) bool {
	return [4]byte(buf[off:off+4]) == tag
}

// readFull is io.ReadFull that reports any shortfall as ErrTruncatedHeader.
func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %w", ErrTruncatedHeader, err)
		}
		return fmt.Errorf("reading WAV header: %w", err)
	}

	return nil
}
