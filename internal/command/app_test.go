// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmctl/nmctl/internal/confirm"
	"github.com/nmctl/nmctl/internal/meta"
)

func TestInitApp_Commands(t *testing.T) {
	newHarness(t)
	app, err := InitApp(context.Background(), meta.Meta{Args: []string{"nmctl"}})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, cmd := range app.Commands {
		assert.False(t, seen[cmd.Name], "duplicate command %s", cmd.Name)
		seen[cmd.Name] = true

		names := make([]string, 0, len(cmd.Flags))
		for _, f := range cmd.Flags {
			names = append(names, f.Names()[0])
		}
		assert.True(t, sort.StringsAreSorted(names), "%s flags not sorted", cmd.Name)

		if cmd.Name != "completion" {
			assert.NotEmpty(t, cmd.Category, "%s has no category", cmd.Name)
		}
	}

	for _, name := range []string{
		"create-global-network", "describe-global-networks", "update-global-network", "delete-global-network",
		"create-site", "get-sites", "update-site", "delete-site",
		"create-device", "get-devices", "update-device", "delete-device",
		"create-link", "get-links", "update-link", "delete-link", "associate-link", "disassociate-link", "get-link-associations",
		"create-connection", "get-connections", "delete-connection",
		"register-transit-gateway", "deregister-transit-gateway", "get-transit-gateway-registrations",
		"associate-customer-gateway", "disassociate-customer-gateway", "get-customer-gateway-associations",
		"create-core-network", "get-core-network", "list-core-networks", "update-core-network", "delete-core-network",
		"put-core-network-policy", "get-core-network-policy", "list-core-network-policy-versions",
		"delete-core-network-policy-version", "restore-core-network-policy-version",
		"get-core-network-change-set", "execute-core-network-change-set", "diff-core-network-policy",
		"list-attachments", "accept-attachment", "reject-attachment", "delete-attachment",
		"create-vpc-attachment", "get-vpc-attachment", "create-connect-attachment", "get-connect-attachment",
		"create-site-to-site-vpn-attachment", "get-site-to-site-vpn-attachment",
		"create-connect-peer", "get-connect-peer", "list-connect-peers", "delete-connect-peer",
		"get-network-routes",
		"tag-resource", "untag-resource", "list-tags-for-resource",
		"completion",
	} {
		assert.True(t, seen[name], "missing command %s", name)
	}
	assert.Len(t, app.Commands, 60)
}

func TestInitApp_ImpactFlags(t *testing.T) {
	newHarness(t)
	app, err := InitApp(context.Background(), meta.Meta{Args: []string{"nmctl"}})
	require.NoError(t, err)

	for _, cmd := range app.Commands {
		impact, ok := cmd.Metadata["impact"].(confirm.Impact)
		if !ok {
			continue
		}

		flags := map[string]bool{}
		for _, f := range cmd.Flags {
			flags[f.Names()[0]] = true
		}

		verb := strings.SplitN(cmd.Name, "-", 2)[0]
		switch verb {
		case "get", "list", "describe", "diff":
			assert.Equal(t, confirm.ImpactNone, impact, cmd.Name)
		case "delete", "disassociate", "deregister", "reject", "restore", "execute", "untag":
			assert.Equal(t, confirm.ImpactHigh, impact, cmd.Name)
		default:
			assert.Equal(t, confirm.ImpactMedium, impact, cmd.Name)
		}

		if impact == confirm.ImpactNone {
			assert.False(t, flags["force"], cmd.Name)
		} else {
			assert.True(t, flags["force"], cmd.Name)
			assert.True(t, flags["confirm"], cmd.Name)
			assert.False(t, flags["cache"], cmd.Name)
		}
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh"} {
		t.Run(shell, func(t *testing.T) {
			h := newHarness(t)
			out, _, err := h.run(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "get-links")
			assert.Contains(t, out, "--global-network-id")
			assert.Contains(t, out, "--region")
		})
	}

	h := newHarness(t)
	out, _, err := h.run(t, "completion", "zsh")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#compdef nmctl"))
	assert.Contains(t, out, "'(--output -o)'{--output,-o}'[output format (text, json, yaml, raw)]:format:(text json raw yaml)'")

	h = newHarness(t)
	_, _, err = h.run(t, "completion", "fish")
	assert.Error(t, err)
}

func TestDiffCoreNetworkPolicy(t *testing.T) {
	policies := map[int32]string{
		0: `{"version":"2021.12","segments":[{"name":"prod"}]}`,
		1: `{"version":"2021.12","segments":[{"name":"dev"}]}`,
		2: `{"version":"2021.12","segments":[{"name":"dev"}]}`,
	}

	t.Run("from a version to live", func(t *testing.T) {
		h := newHarness(t)
		h.api.policies = policies
		out, _, err := h.run(t, "diff-core-network-policy", "--core-network-id", "cn-1", "--from", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "dev")
		assert.Contains(t, out, "prod")
		assert.Equal(t, []string{"GetCoreNetworkPolicy", "GetCoreNetworkPolicy"}, h.api.calls)
	})

	t.Run("identical versions", func(t *testing.T) {
		h := newHarness(t)
		h.api.policies = policies
		out, _, err := h.run(t, "diff-core-network-policy", "--core-network-id", "cn-1", "--from", "1", "--to", "2")
		require.NoError(t, err)
		assert.Equal(t, "The policy versions are identical.\n", out)
	})

	t.Run("missing version", func(t *testing.T) {
		h := newHarness(t)
		h.api.policies = policies
		_, _, err := h.run(t, "diff-core-network-policy", "--core-network-id", "cn-1", "--from", "9")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("from required without a terminal", func(t *testing.T) {
		h := newHarness(t)
		h.api.policies = policies
		_, _, err := h.run(t, "diff-core-network-policy", "--core-network-id", "cn-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--from is required")
	})
}

func TestValidators(t *testing.T) {
	assert.NoError(t, FlagValidators("json", OutputValidator))
	assert.Error(t, FlagValidators("xml", OutputValidator))
	assert.NoError(t, FlagValidators("zsh", ShellValidator))
	assert.Error(t, FlagValidators("fish", ShellValidator))

	assert.NoError(t, PageSizeValidator(int32(500)))
	assert.Error(t, PageSizeValidator(int32(0)))
	assert.Error(t, PageSizeValidator(10))

	assert.NoError(t, TagValidator([]string{"env=prod", "owner"}))
	assert.Error(t, TagValidator([]string{"=x"}))
	assert.Error(t, TagValidator([]string{strings.Repeat("k", 129) + "=v"}))
	assert.Error(t, TagValidator([]string{"AWS:cloudformation=x"}))
	assert.Error(t, TagValidator([]string{" aws:x=v"}))
	assert.NoError(t, TagValidator([]string{strings.Repeat("é", 100) + "=v"}))
	assert.NoError(t, TagValidator([]string{"k=" + strings.Repeat("ü", 256)}))
	assert.Error(t, TagValidator([]string{"k=" + strings.Repeat("ü", 257)}))
	assert.Error(t, TagValidator("env=prod"))
}
