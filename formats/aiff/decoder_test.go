// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"slices"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/pcmwav/internal/audiotest"
)

// mockAiffReader simulates aiff.Decoder.PCMBuffer: at most chunk samples per
// call, then 0, nil once the data is gone.
type mockAiffReader struct {
	samples []int
	chunk   int
	err     error
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if len(m.samples) == 0 {
		return 0, m.err
	}

	want := len(buf.Data)
	if m.chunk > 0 {
		want = min(want, m.chunk)
	}
	n := copy(buf.Data[:want], m.samples)
	m.samples = m.samples[n:]

	return n, nil
}

// encodeAIFF builds a real AIFF file with go-audio/aiff.
func encodeAIFF(t *testing.T, sampleRate, bitDepth, channels int, data []int) []byte {
	t.Helper()

	mem := audiotest.NewMemFile(nil)
	enc := aiff.NewEncoder(mem, sampleRate, bitDepth, channels)
	err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		t.Fatalf("aiff Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("aiff Close() error = %v", err)
	}

	return mem.Bytes()
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not AIFF data at all, not even close")},
		{"wav", append([]byte("RIFF\x24\x00\x00\x00WAVE"), make([]byte, 32)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestDecoder_Decode16(t *testing.T) {
	t.Parallel()

	data := []int{0, 1, -1, 32767, -32768, 1000, -1000, 42}
	file := encodeAIFF(t, 22050, 16, 2, data)

	src, err := Decoder{}.Decode(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Errorf("source = %d Hz, %d ch; want 22050 Hz, 2 ch", src.SampleRate(), src.Channels())
	}

	var got []float32
	dst := make([]float32, 3)
	for {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	want := make([]float32, len(data))
	for i, v := range data {
		want[i] = float32(v)
	}
	if !slices.Equal(got, want) {
		t.Errorf("ReadSamples() = %v, want %v", got, want)
	}
}

func TestDecoder_NonSeekableInput(t *testing.T) {
	t.Parallel()

	file := encodeAIFF(t, 8000, 16, 1, []int{5, 6, 7})

	// Hide Seek so Decode has to buffer.
	src, err := Decoder{}.Decode(struct{ io.Reader }{bytes.NewReader(file)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if !slices.Equal(dst[:n], []float32{5, 6, 7}) {
		t.Errorf("ReadSamples() = %v, want [5 6 7]", dst[:n])
	}
}

func TestDecoder_ReadError(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(&audiotest.FailingReader{Data: []byte("FORM"), Limit: 4, Err: audiotest.ErrInjected})
	if !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("Decode() error = %v, want ErrInjected", err)
	}
}

func TestSource_BitDepthScaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		in       []int
		want     []float32
	}{
		{8, []int{127, -128, 1}, []float32{32512, -32768, 256}},
		{16, []int{32767, -32768, 1}, []float32{32767, -32768, 1}},
		{24, []int{8388607, -8388608, 256, 384}, []float32{32767.996, -32768, 1, 1.5}},
		{32, []int{math.MaxInt32, math.MinInt32, 1 << 16}, []float32{32768, -32768, 1}},
		// Unsigned 32-bit words are reinterpreted as two's complement.
		{32, []int{math.MaxUint32}, []float32{float32(math.Ldexp(-1, -16))}},
	}

	for _, tt := range tests {
		src := newSource(&mockAiffReader{samples: tt.in}, &goaudio.Format{NumChannels: 1, SampleRate: 8000}, tt.bitDepth)

		dst := make([]float32, len(tt.in))
		n, err := src.ReadSamples(dst)
		if err != nil || n != len(tt.in) {
			t.Fatalf("%d-bit ReadSamples() = %d, %v", tt.bitDepth, n, err)
		}
		if !slices.Equal(dst, tt.want) {
			t.Errorf("%d-bit ReadSamples() = %v, want %v", tt.bitDepth, dst, tt.want)
		}
		if src.BitDepth() != tt.bitDepth {
			t.Errorf("BitDepth() = %d, want %d", src.BitDepth(), tt.bitDepth)
		}
	}
}

func TestSource_ShortChunks(t *testing.T) {
	t.Parallel()

	in := make([]int, 10000)
	for i := range in {
		in[i] = i % 30000
	}
	src := newSource(&mockAiffReader{samples: in, chunk: 1000}, &goaudio.Format{NumChannels: 2, SampleRate: 44100}, 16)

	total := 0
	dst := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(dst)
		for i, v := range dst[:n] {
			if v != float32(in[total+i]) {
				t.Fatalf("sample %d = %v, want %d", total+i, v, in[total+i])
			}
		}
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != len(in) {
		t.Errorf("read %d samples, want %d", total, len(in))
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := newSource(&mockAiffReader{err: io.ErrUnexpectedEOF}, &goaudio.Format{NumChannels: 1, SampleRate: 8000}, 16)

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&mockAiffReader{}, &goaudio.Format{NumChannels: 2, SampleRate: 48000}, 24)

	if src.SampleRate() != 48000 || src.Channels() != 2 {
		t.Errorf("source = %d Hz, %d ch; want 48000 Hz, 2 ch", src.SampleRate(), src.Channels())
	}
	if src.BufSize() != bufSamples {
		t.Errorf("BufSize() = %d, want %d", src.BufSize(), bufSamples)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if n, err := src.ReadSamples(make([]float32, 4)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() on empty source = %d, %v; want 0, io.EOF", n, err)
	}
}

// BenchmarkSource_ReadSamples benchmarks integer to float conversion
func BenchmarkSource_ReadSamples(b *testing.B) {
	in := make([]int, 2*44100)
	dst := make([]float32, 4096)
	format := &goaudio.Format{NumChannels: 2, SampleRate: 44100}

	b.ReportAllocs()

	for b.Loop() {
		src := newSource(&mockAiffReader{samples: in}, format, 24)
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
