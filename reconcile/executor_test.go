// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"context"
	"fmt"
	"testing"

	"github.com/matrixops/groupsync/lib/ref"
)

// fakeAdmin records group membership calls and fails the user IDs
// listed in failOn.
type fakeAdmin struct {
	invited []ref.UserID
	removed []ref.UserID
	failOn  map[ref.UserID]bool
}

func (f *fakeAdmin) GroupInviteUser(_ context.Context, _ ref.GroupID, userID ref.UserID) error {
	if f.failOn[userID] {
		return fmt.Errorf("simulated invite failure for %s", userID)
	}
	f.invited = append(f.invited, userID)
	return nil
}

func (f *fakeAdmin) GroupRemoveUser(_ context.Context, _ ref.GroupID, userID ref.UserID) error {
	if f.failOn[userID] {
		return fmt.Errorf("simulated removal failure for %s", userID)
	}
	f.removed = append(f.removed, userID)
	return nil
}

var testGroup = ref.MustParseGroupID("+staff:x.org")

func TestExecutorAppliesPlan(t *testing.T) {
	admin := &fakeAdmin{}
	executor := Executor{Admin: admin}

	result := executor.Apply(context.Background(), testGroup, Plan{
		Invite: users("@u1:x.org"),
		Remove: users("@u4:x.org"),
	})

	if result.Invited != 1 || result.Removed != 1 || result.Failed != 0 {
		t.Errorf("result = %+v, want 1 invited, 1 removed, 0 failed", result)
	}
	if len(admin.invited) != 1 || admin.invited[0].String() != "@u1:x.org" {
		t.Errorf("invited = %v, want [@u1:x.org]", admin.invited)
	}
	if len(admin.removed) != 1 || admin.removed[0].String() != "@u4:x.org" {
		t.Errorf("removed = %v, want [@u4:x.org]", admin.removed)
	}
}

func TestExecutorContinuesPastFailures(t *testing.T) {
	// One failed invite must not block the remaining invite or the
	// removals — membership mutations are independent per user.
	admin := &fakeAdmin{failOn: map[ref.UserID]bool{
		ref.MustParseUserID("@bad:x.org"): true,
	}}
	executor := Executor{Admin: admin}

	result := executor.Apply(context.Background(), testGroup, Plan{
		Invite: users("@bad:x.org", "@good:x.org"),
		Remove: users("@old:x.org"),
	})

	if result.Failed != 1 {
		t.Errorf("Failed = %d, want 1", result.Failed)
	}
	if result.Invited != 1 {
		t.Errorf("Invited = %d, want 1", result.Invited)
	}
	if result.Removed != 1 {
		t.Errorf("Removed = %d, want 1", result.Removed)
	}
	if len(admin.invited) != 1 || admin.invited[0].String() != "@good:x.org" {
		t.Errorf("invited = %v, want [@good:x.org]", admin.invited)
	}
}

func TestExecutorDryRun(t *testing.T) {
	admin := &fakeAdmin{}
	executor := Executor{Admin: admin, DryRun: true}

	result := executor.Apply(context.Background(), testGroup, Plan{
		Invite: users("@u1:x.org"),
		Remove: users("@u4:x.org"),
	})

	if len(admin.invited) != 0 || len(admin.removed) != 0 {
		t.Errorf("dry run issued calls: invited=%v removed=%v", admin.invited, admin.removed)
	}
	if result.Invited != 0 || result.Removed != 0 || result.Failed != 0 {
		t.Errorf("dry run result = %+v, want all zero", result)
	}
}

func TestExecutorEmptyPlan(t *testing.T) {
	admin := &fakeAdmin{}
	executor := Executor{Admin: admin}

	result := executor.Apply(context.Background(), testGroup, Plan{})
	if result != (Result{}) {
		t.Errorf("result = %+v, want zero", result)
	}
	if len(admin.invited) != 0 || len(admin.removed) != 0 {
		t.Error("empty plan must issue no calls")
	}
}
