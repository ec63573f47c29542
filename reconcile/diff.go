// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matrixops/groupsync/lib/ref"
)

// MemberSet is a deduplicated set of user IDs from one membership
// source. Duplicate identifiers in the source collapse to one entry,
// which keeps every tally value inside {−1, 0, +1}.
type MemberSet map[ref.UserID]struct{}

// NewMemberSet builds a MemberSet from a list of user IDs, deduplicating.
func NewMemberSet(members []ref.UserID) MemberSet {
	set := make(MemberSet, len(members))
	for _, userID := range members {
		set[userID] = struct{}{}
	}
	return set
}

// Contains reports whether userID is in the set.
func (s MemberSet) Contains(userID ref.UserID) bool {
	_, ok := s[userID]
	return ok
}

// Without returns a copy of the set with every user for which drop
// returns true removed. Used to apply the sync policy's ignore list to
// both sources before diffing, so ignored users are never invited and
// never removed.
func (s MemberSet) Without(drop func(ref.UserID) bool) MemberSet {
	filtered := make(MemberSet, len(s))
	for userID := range s {
		if drop(userID) {
			continue
		}
		filtered[userID] = struct{}{}
	}
	return filtered
}

// Tally maps each user ID to its membership classification: +1 for
// room-only, −1 for group-only, 0 for present in both.
type Tally map[ref.UserID]int

// Diff folds both member sets into a Tally: +1 per room member, −1 per
// group member. Pure function; linear in the combined size of the sets.
func Diff(room, group MemberSet) Tally {
	tally := make(Tally, len(room)+len(group))
	for userID := range room {
		tally[userID]++
	}
	for userID := range group {
		tally[userID]--
	}
	return tally
}

// Plan is the set of membership mutations that brings the group in line
// with the room. Both lists are sorted lexically so execution order and
// log output are deterministic (the contract does not require an order,
// but a stable one makes runs auditable and tests simple).
type Plan struct {
	// Invite lists users present in the room but not the group.
	Invite []ref.UserID
	// Remove lists users present in the group but not the room.
	Remove []ref.UserID
}

// Plan splits the tally into invite and removal lists. A tally value
// outside {−1, 0, +1} means an input was not a proper set; that is an
// internal invariant violation, reported as an error rather than
// silently misclassified.
func (t Tally) Plan() (Plan, error) {
	var plan Plan
	for userID, count := range t {
		switch count {
		case 1:
			plan.Invite = append(plan.Invite, userID)
		case -1:
			plan.Remove = append(plan.Remove, userID)
		case 0:
			// Present in both; nothing to do.
		default:
			return Plan{}, fmt.Errorf("reconcile: tally for %q is %d, outside {-1,0,1}: input was not deduplicated", userID, count)
		}
	}
	sortUserIDs(plan.Invite)
	sortUserIDs(plan.Remove)
	return plan, nil
}

// Empty reports whether the plan contains no actions.
func (p Plan) Empty() bool {
	return len(p.Invite) == 0 && len(p.Remove) == 0
}

func sortUserIDs(userIDs []ref.UserID) {
	slices.SortFunc(userIDs, func(a, b ref.UserID) int {
		return strings.Compare(a.String(), b.String())
	})
}
