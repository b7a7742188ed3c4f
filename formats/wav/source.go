// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/ik5/pcmwav/audio"
)

var _ audio.Source = (*Reader)(nil)

// Decoder adapts NewReader to audio.Decoder.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	return rd, nil
}
