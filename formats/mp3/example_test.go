// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"log"
	"os"

	"github.com/ik5/pcmwav"
	"github.com/ik5/pcmwav/formats/mp3"
)

// Example converts an MP3 file to a 16-bit stereo WAV file.
func Example() {
	in, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}

	src, err := mp3.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}

	n, err := pcmwav.Convert(out, src)
	if err != nil {
		log.Fatal(err)
	}
	in.Close()

	log.Printf("wrote %d samples at %d Hz", n, src.SampleRate())
}
