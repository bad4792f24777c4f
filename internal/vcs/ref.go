package vcs

import "sort"

// RefKind distinguishes branches from tags in ref listings.
type RefKind int

const (
	Branch RefKind = iota
	Tag
)

func (k RefKind) String() string {
	if k == Tag {
		return "tag"
	}
	return "branch"
}

// Ref is a named branch or tag and the commit it points at.
type Ref struct {
	Name   string
	Kind   RefKind
	Commit string
}

// SortRefs orders refs branches first, then tags, each alphabetically.
func SortRefs(refs []Ref) {
	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].Kind != refs[j].Kind {
			return refs[i].Kind < refs[j].Kind
		}
		return refs[i].Name < refs[j].Name
	})
}

// RefNames returns the names of refs in order.
func RefNames(refs []Ref) []string {
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}
	return names
}
