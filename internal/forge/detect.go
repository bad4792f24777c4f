package forge

import (
	"errors"
	"fmt"
	"strings"

	giturls "github.com/whilp/git-urls"
)

// ErrUnparseableRemote indicates a remote URL without a host or an owner/project path.
var ErrUnparseableRemote = errors.New("remote URL has no host/owner/project")

// Remote is a remote URL decomposed into the parts a web URL needs.
type Remote struct {
	Raw     string `json:"raw"`
	Host    string `json:"host"`
	Owner   string `json:"owner"`
	Project string `json:"project"`
}

// knownHosts maps public hosting domains to their provider.
var knownHosts = map[string]Provider{
	"bitbucket.org": Bitbucket,
	"github.com":    GitHub,
}

// ParseRemote decomposes a git remote URL.
// Handles scp-style (git@host:owner/project.git), ssh://, git://, http(s)://.
// The host is lower-cased without port; owner is every path segment but the
// last, project is the last with any ".git" suffix removed.
func ParseRemote(raw string) (Remote, error) {
	raw = strings.TrimSpace(raw)
	u, err := giturls.Parse(raw)
	if err != nil {
		return Remote{Raw: raw}, fmt.Errorf("parse remote URL %q: %w", raw, err)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return Remote{Raw: raw}, fmt.Errorf("%w: %q", ErrUnparseableRemote, raw)
	}

	path := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) < 2 {
		return Remote{Raw: raw, Host: host}, fmt.Errorf("%w: %q", ErrUnparseableRemote, raw)
	}

	return Remote{
		Raw:     raw,
		Host:    host,
		Owner:   strings.Join(segments[:len(segments)-1], "/"),
		Project: segments[len(segments)-1],
	}, nil
}

// Detect returns the provider serving host.
// hostMap (domain -> "github"/"bitbucket") is checked first, so self-hosted
// instances can reuse a known URL layout. Domains compare case-insensitively.
func Detect(host string, hostMap map[string]string) Provider {
	host = strings.ToLower(host)
	if name, ok := lookupHost(hostMap, host); ok {
		if p, err := ByName(name); err == nil {
			return p
		}
	}
	if p, ok := knownHosts[host]; ok {
		return p
	}
	return Unrecognized
}

// lookupHost finds host in hostMap ignoring the case of the configured domain.
func lookupHost(hostMap map[string]string, host string) (string, bool) {
	if name, ok := hostMap[host]; ok {
		return name, true
	}
	for domain, name := range hostMap {
		if strings.EqualFold(domain, host) {
			return name, true
		}
	}
	return "", false
}
