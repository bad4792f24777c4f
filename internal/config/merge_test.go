package config

import (
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func TestMergeLocal_Nil(t *testing.T) {
	t.Parallel()

	global := &Config{Remote: "origin", Backend: "git"}
	if result := MergeLocal(global, nil); result != global {
		t.Error("expected same pointer when local is nil")
	}
}

func TestMergeLocal_NoMutation(t *testing.T) {
	t.Parallel()

	global := &Config{
		Remote:  "origin",
		Backend: "git",
		Hosts:   map[string]string{"git.example.com": "github"},
	}
	local := &LocalConfig{
		Remote: "upstream",
		Hosts:  map[string]string{"stash.example.com": "bitbucket"},
	}

	MergeLocal(global, local)

	if global.Remote != "origin" {
		t.Error("global config was mutated")
	}
	if len(global.Hosts) != 1 {
		t.Errorf("global hosts were mutated: %v", global.Hosts)
	}
}

func TestMergeLocal_FieldReplace(t *testing.T) {
	t.Parallel()

	global := &Config{Remote: "origin", Backend: "git", Copy: true}
	local := &LocalConfig{Remote: "upstream", Backend: "go-git", Copy: boolPtr(false)}

	merged := MergeLocal(global, local)
	if merged.Remote != "upstream" {
		t.Errorf("Remote = %q, want %q", merged.Remote, "upstream")
	}
	if merged.Backend != "go-git" {
		t.Errorf("Backend = %q, want %q", merged.Backend, "go-git")
	}
	if merged.Copy {
		t.Error("Copy = true, want false")
	}
}

func TestMergeLocal_ZeroValuesPreserveGlobal(t *testing.T) {
	t.Parallel()

	global := &Config{Remote: "origin", Backend: "go-git", Copy: true}
	merged := MergeLocal(global, &LocalConfig{})

	if merged.Remote != "origin" || merged.Backend != "go-git" || !merged.Copy {
		t.Errorf("merged = %+v, want global values", merged)
	}
}

func TestMergeLocal_HostsMergeByDomain(t *testing.T) {
	t.Parallel()

	global := &Config{Hosts: map[string]string{
		"git.example.com":   "github",
		"stash.example.com": "github",
	}}
	local := &LocalConfig{Hosts: map[string]string{
		"stash.example.com": "bitbucket",
		"code.example.com":  "bitbucket",
	}}

	merged := MergeLocal(global, local)
	want := map[string]string{
		"git.example.com":   "github",
		"stash.example.com": "bitbucket",
		"code.example.com":  "bitbucket",
	}
	if len(merged.Hosts) != len(want) {
		t.Fatalf("Hosts = %v, want %v", merged.Hosts, want)
	}
	for k, v := range want {
		if merged.Hosts[k] != v {
			t.Errorf("Hosts[%q] = %q, want %q", k, merged.Hosts[k], v)
		}
	}
}
