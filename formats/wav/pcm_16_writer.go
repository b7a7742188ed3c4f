// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/pcmwav/utils"
)

// WriteWAV16 writes a complete mono 16-bit PCM WAV at sampleRate. The sample
// count is known up front, so w does not need to seek; use Writer for
// streams whose length is not known in advance.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	header, err := EncodeHeader(Header{
		NumChannels:    1,
		SampleRate:     sampleRate,
		Format:         FormatPCM,
		BytesPerSample: writerBytesPerSample,
		// Clamp so an oversized slice fails validation instead of wrapping.
		NumSamples: uint32(min(uint64(len(samples)), MaxSamples(writerBytesPerSample)+1)),
	})
	if err != nil {
		return err
	}

	if err := writeFull(w, header); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSamples)*writerBytesPerSample)

	for len(samples) > 0 {
		chunk := samples[:min(len(samples), chunkSamples)]
		samples = samples[len(chunk):]

		n := utils.PutInt16LE(buf, chunk)
		if err := writeFull(w, buf[:n]); err != nil {
			return fmt.Errorf("writing WAV samples: %w", err)
		}
	}

	return nil
}
