package link

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/raphi011/repolink/internal/log"
	"github.com/raphi011/repolink/internal/vcs"
)

// fakeBackend answers from in-memory maps and records calls.
type fakeBackend struct {
	tags    map[string]string // tag -> commit
	revs    map[string]string // commit-ish -> commit
	remotes map[string]string // name -> url
	paths   map[string]bool   // commit:path
	refs    []vcs.Ref
	err     error // returned by every query when set
	refsErr error // returned by Refs when set

	mu    sync.Mutex
	calls []string
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) IsTag(_ context.Context, ref string) (bool, error) {
	f.record("IsTag " + ref)
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.tags[ref]
	return ok, nil
}

func (f *fakeBackend) TagCommit(_ context.Context, tag string) (string, error) {
	f.record("TagCommit " + tag)
	if c := f.tags[tag]; c != "" {
		return c, nil
	}
	return "", &vcs.UnknownTagError{Name: tag}
}

func (f *fakeBackend) CommitHash(_ context.Context, rev string) (string, error) {
	f.record("CommitHash " + rev)
	if c, ok := f.revs[rev]; ok {
		return c, nil
	}
	return "", &vcs.UnknownRevisionError{Name: rev}
}

func (f *fakeBackend) RemoteURL(_ context.Context, name string) (string, error) {
	f.record("RemoteURL " + name)
	if f.err != nil {
		return "", f.err
	}
	if u, ok := f.remotes[name]; ok {
		return u, nil
	}
	return "", &vcs.UnknownRemoteError{Name: name}
}

func (f *fakeBackend) Remotes(context.Context) ([]string, error) {
	var names []string
	for n := range f.remotes {
		names = append(names, n)
	}
	return names, nil
}

func (f *fakeBackend) PathExists(_ context.Context, commit, path string) (bool, error) {
	f.record("PathExists " + path)
	return f.paths[commit+":"+path], nil
}

func (f *fakeBackend) Refs(context.Context) ([]vcs.Ref, error) {
	if f.refsErr != nil {
		return nil, f.refsErr
	}
	return f.refs, nil
}

func (f *fakeBackend) called(prefix string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

const (
	hashA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	hashB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func TestResolveRevision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		backend *fakeBackend
		ref     string
		want    string
		wantErr error
	}{
		{
			name:    "default is HEAD",
			backend: &fakeBackend{revs: map[string]string{"HEAD": hashA}},
			want:    hashA,
		},
		{
			name:    "tag is dereferenced",
			backend: &fakeBackend{tags: map[string]string{"v1.0": hashB}},
			ref:     "v1.0",
			want:    hashB,
		},
		{
			name: "tag wins over commit-ish",
			backend: &fakeBackend{
				tags: map[string]string{"bbbbbbb": hashA},
				revs: map[string]string{"bbbbbbb": hashB},
			},
			ref:  "bbbbbbb",
			want: hashA,
		},
		{
			name:    "broken tag",
			backend: &fakeBackend{tags: map[string]string{"v2": ""}},
			ref:     "v2",
			wantErr: vcs.ErrUnknownTag,
		},
		{
			name:    "unknown revision",
			backend: &fakeBackend{},
			ref:     "nope",
			wantErr: vcs.ErrUnknownRevision,
		},
		{
			name:    "transport error",
			backend: &fakeBackend{err: context.DeadlineExceeded},
			ref:     "main",
			wantErr: context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ResolveRevision(context.Background(), tt.backend, tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveRevision() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveRevision() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveRevision() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveRevision_Suggestions(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{refs: []vcs.Ref{
		{Name: "feature/login", Kind: vcs.Branch, Commit: hashA},
		{Name: "main", Kind: vcs.Branch, Commit: hashA},
		{Name: "v1.0", Kind: vcs.Tag, Commit: hashB},
	}}

	_, err := ResolveRevision(context.Background(), b, "feat/login")
	var unknown *vcs.UnknownRevisionError
	if !errors.As(err, &unknown) {
		t.Fatalf("ResolveRevision() error = %v, want *UnknownRevisionError", err)
	}
	if want := []string{"feature/login"}; !reflect.DeepEqual(unknown.Suggestions, want) {
		t.Errorf("Suggestions = %v, want %v", unknown.Suggestions, want)
	}
	if got, want := err.Error(), "unknown commit revision 'feat/login' (did you mean: feature/login?)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestResolveRevision_RefListingFailureIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	b := &fakeBackend{refsErr: errors.New("packed-refs unreadable")}

	_, err := ResolveRevision(ctx, b, "feat/login")
	var unknown *vcs.UnknownRevisionError
	if !errors.As(err, &unknown) {
		t.Fatalf("ResolveRevision() error = %v, want *UnknownRevisionError", err)
	}
	if len(unknown.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, want none", unknown.Suggestions)
	}
	want := "resolving revision ref=feat/login\n" +
		"listing refs for suggestions failed error=packed-refs unreadable\n"
	if got := buf.String(); got != want {
		t.Errorf("log = %q, want %q", got, want)
	}
}

func TestLocateRemote(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{remotes: map[string]string{
		"origin":   "git@github.com:acme/widget.git",
		"upstream": "git@github.com:upstream/widget.git",
	}}

	got, err := LocateRemote(context.Background(), b, "")
	if err != nil {
		t.Fatalf("LocateRemote(\"\") error = %v", err)
	}
	if got != "git@github.com:acme/widget.git" {
		t.Errorf("LocateRemote(\"\") = %q", got)
	}

	_, err = LocateRemote(context.Background(), b, "upstrem")
	var unknown *vcs.UnknownRemoteError
	if !errors.As(err, &unknown) {
		t.Fatalf("LocateRemote(upstrem) error = %v, want *UnknownRemoteError", err)
	}
	if want := []string{"upstream"}; !reflect.DeepEqual(unknown.Suggestions, want) {
		t.Errorf("Suggestions = %v, want %v", unknown.Suggestions, want)
	}
}

func TestPublicURL_RemoteFailureSkipsPathCheck(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{
		revs:  map[string]string{"HEAD": hashA},
		paths: map[string]bool{hashA + ":README.md": true},
	}
	_, err := PublicURL(context.Background(), b, Options{Remote: "missing", File: "README.md"})
	if !errors.Is(err, vcs.ErrUnknownRemote) {
		t.Fatalf("PublicURL() error = %v, want ErrUnknownRemote", err)
	}
	if b.called("PathExists") {
		t.Error("PathExists was called after the remote lookup failed")
	}
}

func TestOpenBackend_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := OpenBackend(context.Background(), "svn", t.TempDir()); err == nil {
		t.Error("OpenBackend(svn) = nil error, want error")
	}
	for _, kind := range BackendKinds {
		if _, err := OpenBackend(context.Background(), kind, t.TempDir()); err == nil {
			t.Errorf("OpenBackend(%s, empty dir) = nil error, want error", kind)
		}
	}
}
