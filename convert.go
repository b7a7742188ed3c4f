// SPDX-License-Identifier: EPL-2.0

package pcmwav

import (
	"fmt"
	"io"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/formats/wav"
)

// Convert drains src into a 16-bit PCM WAV stream on w at the source's rate
// and channel count, and returns the number of samples written.
//
// Samples are handed to the writer in whole frames. A partial frame left
// when src ends is dropped. Both src and the writer are closed before
// Convert returns; w is closed with them when it is an io.Closer. If the
// writer cannot be created, w is left open.
func Convert(w io.WriteSeeker, src audio.Source) (int, error) {
	channels := src.Channels()

	wr, err := wav.NewWriter(w, src.SampleRate(), channels)
	if err != nil {
		src.Close()
		return 0, err
	}

	buf := make([]float32, max(src.BufSize(), 2*channels))
	carry := 0

	for err == nil {
		n, rerr := src.ReadSamples(buf[carry:])
		avail := carry + n
		whole := avail - avail%channels

		if whole > 0 {
			err = wr.WriteSamples(buf[:whole])
		}
		carry = copy(buf, buf[whole:avail])

		if rerr == io.EOF {
			break
		}
		if rerr != nil && err == nil {
			err = fmt.Errorf("reading source: %w", rerr)
		}
	}

	if cerr := wr.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if cerr := src.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing source: %w", cerr)
	}

	return int(wr.NumSamples()), err
}
