// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
)

// ErrInjected is returned by the failing helpers below.
var ErrInjected = errors.New("injected I/O failure")

// MemFile is an in-memory io.ReadWriteSeeker with Close accounting, standing
// in for an *os.File.
type MemFile struct {
	data   []byte
	offset int64

	Closed int // number of Close calls
}

// NewMemFile returns a MemFile positioned at the start of data.
func NewMemFile(data []byte) *MemFile {
	return &MemFile{data: data}
}

// Bytes returns the current contents.
func (f *MemFile) Bytes() []byte { return f.data }

func (f *MemFile) Read(p []byte) (int, error) {
	if f.offset >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.offset:])
	f.offset += int64(n)

	return n, nil
}

func (f *MemFile) Write(p []byte) (int, error) {
	end := f.offset + int64(len(p))
	if end > int64(len(f.data)) {
		f.data = append(f.data, make([]byte, end-int64(len(f.data)))...)
	}
	copy(f.data[f.offset:end], p)
	f.offset = end

	return len(p), nil
}

func (f *MemFile) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = f.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(f.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	f.offset = newOffset
	return newOffset, nil
}

func (f *MemFile) Close() error {
	f.Closed++
	return nil
}

// LimitedWriter is a seekable sink that accepts only Limit bytes in total and
// then reports short writes (Err == nil) or Err.
type LimitedWriter struct {
	MemFile
	Limit int
	Err   error
}

func (w *LimitedWriter) Write(p []byte) (int, error) {
	room := max(w.Limit-int(w.offset), 0)
	if len(p) <= room {
		return w.MemFile.Write(p)
	}

	n, _ := w.MemFile.Write(p[:room])
	return n, w.Err
}

// FailingReader returns the first Limit bytes of Data and then Err.
type FailingReader struct {
	Data  []byte
	Limit int
	Err   error

	offset int
}

func (r *FailingReader) Read(p []byte) (int, error) {
	if r.offset >= r.Limit {
		return 0, r.Err
	}
	n := copy(p, r.Data[r.offset:min(r.Limit, len(r.Data))])
	r.offset += n
	if n == 0 {
		return 0, r.Err
	}

	return n, nil
}
