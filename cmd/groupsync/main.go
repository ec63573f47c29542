// Copyright 2026 The Groupsync Authors
// SPDX-License-Identifier: Apache-2.0

// groupsync reconciles the membership of a Matrix room with the
// membership of a Matrix group (community) on the same homeserver:
// room members missing from the group are invited, group members
// absent from the room are removed. One pass per invocation, no
// retries, no persisted state — safe to re-run, since the server-side
// invite and remove endpoints are idempotent.
//
//	groupsync [flags] <homeserver-url> <access-token> <room-id-or-alias> <group-id>
//
// The room may be given as an opaque ID ("!abc:example.org") or an
// alias ("#general:example.org"); aliases are resolved through the
// directory before any membership fetch. Pass "-" as the access token
// to read it from stdin and keep it out of argv.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/matrixops/groupsync/lib/policy"
	"github.com/matrixops/groupsync/lib/ref"
	"github.com/matrixops/groupsync/lib/version"
	"github.com/matrixops/groupsync/matrix"
	"github.com/matrixops/groupsync/reconcile"
)

const usageText = "usage: groupsync [flags] <homeserver-url> <access-token> <room-id-or-alias> <group-id>"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stderr io.Writer) error {
	var (
		timeout     time.Duration
		dryRun      bool
		policyFile  string
		showVersion bool
	)

	flagSet := pflag.NewFlagSet("groupsync", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.DurationVar(&timeout, "timeout", matrix.DefaultRequestTimeout, "per-request timeout for homeserver calls")
	flagSet.BoolVar(&dryRun, "dry-run", false, "log planned invites and removals without issuing them")
	flagSet.StringVar(&policyFile, "policy", "", "path to YAML sync policy (users to leave untouched)")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if showVersion {
		fmt.Fprintf(stderr, "groupsync %s\n", version.Info())
		return nil
	}

	positional := flagSet.Args()
	if len(positional) != 4 {
		fmt.Fprintln(stderr, usageText)
		return fmt.Errorf("expected 4 arguments, got %d", len(positional))
	}
	homeserverURL := positional[0]
	accessToken := positional[1]
	roomArgument := positional[2]
	groupArgument := positional[3]

	if accessToken == "-" {
		token, err := readToken(stdin)
		if err != nil {
			return fmt.Errorf("reading access token from stdin: %w", err)
		}
		accessToken = token
	}

	groupID, err := ref.ParseGroupID(groupArgument)
	if err != nil {
		return err
	}

	var syncPolicy *policy.Policy
	if policyFile != "" {
		syncPolicy, err = policy.Load(policyFile)
		if err != nil {
			return err
		}
	}

	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := matrix.NewClient(matrix.ClientConfig{
		HomeserverURL:  homeserverURL,
		AccessToken:    accessToken,
		RequestTimeout: timeout,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	return syncMembership(ctx, client, logger, roomArgument, groupID, syncPolicy, dryRun)
}

// syncMembership runs the four-stage pipeline: resolve, fetch both
// sides, diff, apply. Resolution and fetch failures are fatal — acting
// on a partial membership view could remove every user from the group.
// Per-user action failures are absorbed by the executor.
func syncMembership(ctx context.Context, client *matrix.Client, logger *slog.Logger, roomArgument string, groupID ref.GroupID, syncPolicy *policy.Policy, dryRun bool) error {
	roomID, err := resolveRoom(ctx, client, roomArgument)
	if err != nil {
		return err
	}

	roomMembers, err := client.JoinedMembers(ctx, roomID)
	if err != nil {
		return err
	}
	groupMembers, err := client.GroupUsers(ctx, groupID)
	if err != nil {
		return err
	}

	room := reconcile.NewMemberSet(roomMembers)
	group := reconcile.NewMemberSet(groupMembers)
	if syncPolicy != nil {
		room = room.Without(syncPolicy.Ignores)
		group = group.Without(syncPolicy.Ignores)
	}

	plan, err := reconcile.Diff(room, group).Plan()
	if err != nil {
		return err
	}

	logger.Info("computed membership diff",
		"room_id", roomID,
		"group_id", groupID,
		"room_members", len(room),
		"group_members", len(group),
		"to_invite", len(plan.Invite),
		"to_remove", len(plan.Remove),
	)

	executor := reconcile.Executor{Admin: client, Logger: logger, DryRun: dryRun}
	result := executor.Apply(ctx, groupID, plan)

	logger.Info("sync complete",
		"invited", result.Invited,
		"removed", result.Removed,
		"failed", result.Failed,
	)
	return nil
}

// resolveRoom turns the room argument into a room ID. An alias (leading
// '#') goes through the directory; anything else must already be a
// valid room ID and is passed through unchanged.
func resolveRoom(ctx context.Context, client *matrix.Client, roomArgument string) (ref.RoomID, error) {
	if strings.HasPrefix(roomArgument, "#") {
		alias, err := ref.ParseRoomAlias(roomArgument)
		if err != nil {
			return ref.RoomID{}, err
		}
		return client.ResolveAlias(ctx, alias)
	}
	return ref.ParseRoomID(roomArgument)
}

// readToken reads one line from stdin and trims surrounding whitespace.
// Used when the access token argument is "-", which keeps the token out
// of /proc/*/cmdline and shell history.
func readToken(stdin io.Reader) (string, error) {
	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("stdin is empty")
	}
	token := strings.TrimSpace(scanner.Text())
	if token == "" {
		return "", fmt.Errorf("access token is empty")
	}
	return token, nil
}
