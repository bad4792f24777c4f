package config

import "maps"

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global

	if local.Remote != "" {
		merged.Remote = local.Remote
	}
	if local.Backend != "" {
		merged.Backend = local.Backend
	}
	if local.Copy != nil {
		merged.Copy = *local.Copy
	}

	// Hosts merge by domain; local wins on conflicts
	if len(local.Hosts) > 0 {
		merged.Hosts = make(map[string]string, len(global.Hosts)+len(local.Hosts))
		maps.Copy(merged.Hosts, global.Hosts)
		maps.Copy(merged.Hosts, local.Hosts)
	}

	return &merged
}
