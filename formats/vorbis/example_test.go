// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"log"
	"os"

	"github.com/ik5/pcmwav"
	"github.com/ik5/pcmwav/formats/vorbis"
)

// Example converts an Ogg Vorbis file to a 16-bit WAV file.
func Example() {
	in, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}

	src, err := vorbis.Decoder{}.Decode(in)
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
