// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

// Package policy loads the optional sync policy file.
//
// The policy is a single YAML file named explicitly with --policy;
// there is no discovery and no fallback, so a run's behavior is fully
// determined by its command line. A missing or malformed file is a
// fatal error, never a silent default — a half-applied policy could
// remove users the operator meant to protect.
//
//	ignore_users:
//	  - "@roombot:example.org"
//	  - "@welcome:example.org"
//
// Ignored users are dropped from both membership sources before the
// diff, so they are never invited to the group and never removed from
// it, regardless of which side they appear on.
package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matrixops/groupsync/lib/ref"
)

// Policy is a loaded, validated sync policy.
type Policy struct {
	ignore map[ref.UserID]struct{}
}

// policyFile is the on-disk YAML shape. User IDs are read as plain
// strings and validated explicitly so a typo reports the offending
// entry, not a generic decode failure.
type policyFile struct {
	IgnoreUsers []string `yaml:"ignore_users"`
}

// Load reads and validates a policy file.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("policy: reading %s: %w", path, err)
	}

	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("policy: parsing %s: %w", path, err)
	}

	loaded := &Policy{ignore: make(map[ref.UserID]struct{}, len(file.IgnoreUsers))}
	for index, raw := range file.IgnoreUsers {
		userID, err := ref.ParseUserID(raw)
		if err != nil {
			return nil, fmt.Errorf("policy: %s: ignore_users[%d]: %w", path, index, err)
		}
		loaded.ignore[userID] = struct{}{}
	}
	return loaded, nil
}

// Ignores reports whether userID is excluded from synchronization.
func (p *Policy) Ignores(userID ref.UserID) bool {
	_, ok := p.ignore[userID]
	return ok
}

// IgnoredCount returns the number of users the policy excludes.
func (p *Policy) IgnoredCount() int {
	return len(p.ignore)
}
