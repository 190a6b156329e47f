package pwgenvaultplugin

import "github.com/pwgen-vault-plugin/pwgen"

// PolicyEntry is a named set of composition rules and length bounds.
type PolicyEntry struct {
	Rules     pwgen.Rules `json:"rules"`
	MinLength int         `json:"min_length"`
	MaxLength int         `json:"max_length"`
}

// RoleEntry describes a batch of passwords generated from a policy.
type RoleEntry struct {
	Policy string `json:"policy"`
	Count  int    `json:"count"`
	Seed   *int64 `json:"seed,omitempty"`
}
