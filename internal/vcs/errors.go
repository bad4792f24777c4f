package vcs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownRemote matches any *UnknownRemoteError.
	ErrUnknownRemote = errors.New("unknown remote")
	// ErrUnknownTag matches any *UnknownTagError.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrUnknownRevision matches any *UnknownRevisionError.
	ErrUnknownRevision = errors.New("unknown commit revision")
	// ErrFileNotFound matches any *FileNotFoundError.
	ErrFileNotFound = errors.New("file not found at revision")
)

// UnknownRemoteError reports a remote without a configured URL.
type UnknownRemoteError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownRemoteError) Error() string {
	return fmt.Sprintf("unknown remote '%s'%s", e.Name, didYouMean(e.Suggestions))
}

func (e *UnknownRemoteError) Is(target error) bool { return target == ErrUnknownRemote }

// UnknownTagError reports a tag that could not be dereferenced to a commit.
type UnknownTagError struct {
	Name string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag '%s'", e.Name)
}

func (e *UnknownTagError) Is(target error) bool { return target == ErrUnknownTag }

// UnknownRevisionError reports a reference that does not resolve to a single commit.
type UnknownRevisionError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownRevisionError) Error() string {
	return fmt.Sprintf("unknown commit revision '%s'%s", e.Name, didYouMean(e.Suggestions))
}

func (e *UnknownRevisionError) Is(target error) bool { return target == ErrUnknownRevision }

// FileNotFoundError reports a path missing from the tree of a commit.
type FileNotFoundError struct {
	Path   string
	Commit string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file '%s' doesn't exist in commit %s", e.Path, e.Commit)
}

func (e *FileNotFoundError) Is(target error) bool { return target == ErrFileNotFound }

func didYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	return " (did you mean: " + strings.Join(suggestions, ", ") + "?)"
}
