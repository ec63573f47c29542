// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

package reconcile

import (
	"context"
	"log/slog"

	"github.com/matrixops/groupsync/lib/ref"
)

// GroupAdmin is the subset of the Matrix client the executor needs to
// mutate group membership. *matrix.Client satisfies it; tests inject a
// recording fake.
type GroupAdmin interface {
	GroupInviteUser(ctx context.Context, groupID ref.GroupID, userID ref.UserID) error
	GroupRemoveUser(ctx context.Context, groupID ref.GroupID, userID ref.UserID) error
}

// Executor applies a Plan against a group, one sequential call per
// user. Each action is independent: a failure is logged at Warn and
// counted, and the remaining actions still run.
type Executor struct {
	Admin  GroupAdmin
	Logger *slog.Logger
	// DryRun logs every intended action without issuing any call.
	DryRun bool
}

// Result counts the outcome of an Apply pass.
type Result struct {
	Invited int
	Removed int
	Failed  int
}

// Apply issues the plan's invites and removals against groupID. The
// intent of each action is logged before the call is attempted, so an
// operator can audit what the run meant to do even when the network
// call itself fails afterwards.
func (e *Executor) Apply(ctx context.Context, groupID ref.GroupID, plan Plan) Result {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var result Result
	for _, userID := range plan.Invite {
		logger.Info("inviting user to group",
			"user_id", userID,
			"group_id", groupID,
			"dry_run", e.DryRun,
		)
		if e.DryRun {
			continue
		}
		if err := e.Admin.GroupInviteUser(ctx, groupID, userID); err != nil {
			logger.Warn("group invite failed",
				"user_id", userID,
				"group_id", groupID,
				"error", err,
			)
			result.Failed++
			continue
		}
		result.Invited++
	}

	for _, userID := range plan.Remove {
		logger.Info("removing user from group",
			"user_id", userID,
			"group_id", groupID,
			"dry_run", e.DryRun,
		)
		if e.DryRun {
			continue
		}
		if err := e.Admin.GroupRemoveUser(ctx, groupID, userID); err != nil {
			logger.Warn("group removal failed",
				"user_id", userID,
				"group_id", groupID,
				"error", err,
			)
			result.Failed++
			continue
		}
		result.Removed++
	}

	return result
}
