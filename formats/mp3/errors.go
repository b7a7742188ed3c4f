// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File indicates the stream could not be parsed as MPEG audio.
var ErrNotMP3File = errors.New("not an MP3 file")
