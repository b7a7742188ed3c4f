package wav

import (
	"errors"
	"testing"
)

func TestErrors_Kinds(t *testing.T) {
	t.Parallel()

	formatErrors := []struct {
		name string
		err  error
	}{
		{"ErrNotWavFile", ErrNotWavFile},
		{"ErrUnsupportedWavLayout", ErrUnsupportedWavLayout},
		{"ErrOnlyPCM16bitSupported", ErrOnlyPCM16bitSupported},
		{"ErrUnsupportedWavChunks", ErrUnsupportedWavChunks},
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
		{"ErrInvalidBitDepth", ErrInvalidBitDepth},
		{"ErrInconsistentHeader", ErrInconsistentHeader},
		{"ErrRiffSizeTooSmall", ErrRiffSizeTooSmall},
		{"ErrFormatMismatch", ErrFormatMismatch},
	}

	for _, tt := range formatErrors {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !errors.Is(tt.err, ErrFormat) {
				t.Errorf("errors.Is(%s, ErrFormat) = false, want true", tt.name)
			}
			if errors.Is(tt.err, ErrOverflow) || errors.Is(tt.err, ErrClosed) || errors.Is(tt.err, ErrTruncatedHeader) {
				t.Errorf("%s matches an unrelated error kind", tt.name)
			}
		})
	}
}

func TestErrors_KindsAreDistinct(t *testing.T) {
	t.Parallel()

	kinds := []error{ErrClosed, ErrFormat, ErrOverflow, ErrTruncatedHeader}

	for i := range kinds {
		for j := range kinds {
			if i != j && errors.Is(kinds[i], kinds[j]) {
				t.Errorf("errors.Is(%v, %v) = true, want false", kinds[i], kinds[j])
			}
		}
	}
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrNotWavFile, "invalid WAV format: not a WAV file"},
		{ErrUnsupportedWavLayout, "invalid WAV format: unsupported WAV layout"},
		{ErrOnlyPCM16bitSupported, "invalid WAV format: only PCM 16-bit supported"},
		{ErrUnsupportedWavChunks, "invalid WAV format: unsupported WAV chunks"},
		{ErrClosed, "WAV stream already closed"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	messages := make(map[string]bool)
	allErrors := []error{
		ErrClosed, ErrFormat, ErrOverflow, ErrTruncatedHeader,
		ErrNotWavFile, ErrUnsupportedWavLayout, ErrOnlyPCM16bitSupported,
		ErrUnsupportedWavChunks, ErrUnsupportedFormat, ErrInvalidBitDepth,
		ErrInconsistentHeader, ErrRiffSizeTooSmall, ErrFormatMismatch,
	}

	for _, err := range allErrors {
		msg := err.Error()
		if messages[msg] {
			t.Errorf("duplicate error message %q", msg)
		}
		messages[msg] = true
	}
}
