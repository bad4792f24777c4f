package forge

import (
	"fmt"
	"strings"
)

// Provider identifies a hosting service family with a known URL layout.
type Provider int

const (
	// Unrecognized hosts produce no URL.
	Unrecognized Provider = iota
	Bitbucket
	GitHub
)

var providerNames = map[Provider]string{
	Unrecognized: "unrecognized",
	Bitbucket:    "bitbucket",
	GitHub:       "github",
}

func (p Provider) String() string {
	if name, ok := providerNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Provider(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler so providers print by name in JSON.
func (p Provider) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ByName returns the provider for a config name ("github" or "bitbucket").
func ByName(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "github":
		return GitHub, nil
	case "bitbucket":
		return Bitbucket, nil
	default:
		return Unrecognized, fmt.Errorf("unknown provider %q: must be \"github\" or \"bitbucket\"", name)
	}
}

// template builds a URL below base ("https://host/owner/project").
// path has already been trimmed of surrounding slashes.
type template func(base, commit, path string) string

// templates holds one entry per recognized provider.
var templates = map[Provider]template{
	Bitbucket: layout("src", "commits"),
	GitHub:    layout("blob", "commit"),
}

// layout returns a template linking files under base/<fileSeg>/<commit>/<path>
// and commits under base/<commitSeg>/<commit>.
func layout(fileSeg, commitSeg string) template {
	return func(base, commit, path string) string {
		switch {
		case path != "":
			return base + "/" + fileSeg + "/" + commit + "/" + path
		case commit != "":
			return base + "/" + commitSeg + "/" + commit
		default:
			return base
		}
	}
}

// Compose builds the web URL for commit (and path, if non-empty) on the given provider.
// Leading and trailing slashes are stripped from path.
// Returns false when the provider has no template; that is not an error.
func Compose(r Remote, p Provider, commit, path string) (string, bool) {
	tmpl, ok := templates[p]
	if !ok {
		return "", false
	}
	base := "https://" + r.Host + "/" + r.Owner + "/" + r.Project
	return tmpl(base, commit, strings.Trim(path, "/")), true
}
