// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// PutInt16LE encodes src as little-endian 16-bit PCM into dst and returns the
// number of bytes written. dst must hold at least 2*len(src) bytes.
func PutInt16LE(dst []byte, src []int16) int {
	for i, s := range src {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(s))
	}

	return 2 * len(src)
}

// Int16LE decodes little-endian 16-bit PCM from src into dst and returns the
// number of whole samples decoded. A trailing odd byte is ignored.
func Int16LE(dst []int16, src []byte) int {
	n := min(len(dst), len(src)/2)
	for i := range n {
		dst[i] = int16(binary.LittleEndian.Uint16(src[2*i:]))
	}

	return n
}
