package vcs

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"remote", &UnknownRemoteError{Name: "upstream"}, "unknown remote 'upstream'"},
		{"remote with suggestions", &UnknownRemoteError{Name: "orign", Suggestions: []string{"origin"}}, "unknown remote 'orign' (did you mean: origin?)"},
		{"tag", &UnknownTagError{Name: "v1.0"}, "unknown tag 'v1.0'"},
		{"revision", &UnknownRevisionError{Name: "nope"}, "unknown commit revision 'nope'"},
		{"revision with suggestions", &UnknownRevisionError{Name: "mian", Suggestions: []string{"main", "maintenance"}}, "unknown commit revision 'mian' (did you mean: main, maintenance?)"},
		{"file", &FileNotFoundError{Path: "src/app.js", Commit: "abc123"}, "file 'src/app.js' doesn't exist in commit abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorsIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"remote", &UnknownRemoteError{Name: "x"}, ErrUnknownRemote},
		{"tag", &UnknownTagError{Name: "x"}, ErrUnknownTag},
		{"revision", &UnknownRevisionError{Name: "x"}, ErrUnknownRevision},
		{"file", &FileNotFoundError{Path: "x", Commit: "y"}, ErrFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := fmt.Errorf("resolve: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
			for _, other := range []error{ErrUnknownRemote, ErrUnknownTag, ErrUnknownRevision, ErrFileNotFound} {
				if other != tt.sentinel && errors.Is(tt.err, other) {
					t.Errorf("errors.Is(%v, %v) = true, want false", tt.err, other)
				}
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrapped: %w", &FileNotFoundError{Path: "README.md", Commit: "abc"})
	var fnf *FileNotFoundError
	if !errors.As(err, &fnf) {
		t.Fatal("errors.As did not find *FileNotFoundError")
	}
	if fnf.Path != "README.md" || fnf.Commit != "abc" {
		t.Errorf("FileNotFoundError = %+v", fnf)
	}
}
