// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/aws/aws-sdk-go-v2/service/networkmanager/types"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/differ"
	"github.com/nmctl/nmctl/internal/log"
	"github.com/nmctl/nmctl/internal/meta"
	"github.com/nmctl/nmctl/internal/nm"
)

const categoryPolicies = "Core network policies"

func putCoreNetworkPolicy() *Operation[nmv2.PutCoreNetworkPolicyInput, nmv2.PutCoreNetworkPolicyOutput] {
	return &Operation[nmv2.PutCoreNetworkPolicyInput, nmv2.PutCoreNetworkPolicyOutput]{
		Name:     "PutCoreNetworkPolicy",
		Use:      "put-core-network-policy",
		Usage:    "create a new version of a core network policy",
		Category: categoryPolicies,
		Impact:   ImpactMedium,
		Select:   "CoreNetworkPolicy",
		Flags: []cli.Flag{
			stringFlag("core-network-id", "ID of the core network"),
			documentFlag("policy-document", "policy document"),
			stringFlag("description", "description of the policy version"),
			int32Flag("latest-version-id", "ID of the policy version expected to be the latest"),
			clientTokenFlag(),
		},
		Required: []string{"core-network-id", "policy-document"},
		Target:   "core-network-id",
		Build: func(b *Binder, in *nmv2.PutCoreNetworkPolicyInput) {
			in.CoreNetworkId = b.String("core-network-id")
			in.PolicyDocument = b.Document("policy-document")
			in.Description = b.String("description")
			in.LatestVersionId = b.Int32("latest-version-id")
			in.ClientToken = b.ClientToken()
		},
		Call: nm.API.PutCoreNetworkPolicy,
	}
}

func getCoreNetworkPolicy() *Operation[nmv2.GetCoreNetworkPolicyInput, nmv2.GetCoreNetworkPolicyOutput] {
	return &Operation[nmv2.GetCoreNetworkPolicyInput, nmv2.GetCoreNetworkPolicyOutput]{
		Name:     "GetCoreNetworkPolicy",
		Use:      "get-core-network-policy",
		Usage:    "get a version of a core network policy",
		Category: categoryPolicies,
		Select:   "CoreNetworkPolicy",
		Flags: []cli.Flag{
			stringFlag("core-network-id", "ID of the core network"),
			int32Flag("policy-version-id", "ID of the policy version"),
			enumFlag("alias", "policy version alias", types.CoreNetworkPolicyAlias("").Values()),
		},
		Required: []string{"core-network-id"},
		Build: func(b *Binder, in *nmv2.GetCoreNetworkPolicyInput) {
			in.CoreNetworkId = b.String("core-network-id")
			in.PolicyVersionId = b.Int32("policy-version-id")
			in.Alias = bindEnum[types.CoreNetworkPolicyAlias](b, "alias")
		},
		Call: nm.API.GetCoreNetworkPolicy,
	}
}

func listCoreNetworkPolicyVersions() *Operation[nmv2.ListCoreNetworkPolicyVersionsInput, nmv2.ListCoreNetworkPolicyVersionsOutput] {
	return &Operation[nmv2.ListCoreNetworkPolicyVersionsInput, nmv2.ListCoreNetworkPolicyVersionsOutput]{
		Name:     "ListCoreNetworkPolicyVersions",
		Use:      "list-core-network-policy-versions",
		Usage:    "list the versions of a core network policy",
		Category: categoryPolicies,
		Select:   "CoreNetworkPolicyVersions",
		Attrs:    []string{"PolicyVersionId:Version,Alias,ChangeSetState,CreatedAt,Description"},
		Flags: []cli.Flag{
			stringFlag("core-network-id", "ID of the core network"),
		},
		Required: []string{"core-network-id"},
		Build: func(b *Binder, in *nmv2.ListCoreNetworkPolicyVersionsInput) {
			in.CoreNetworkId = b.String("core-network-id")
		},
		Call:  nm.API.ListCoreNetworkPolicyVersions,
		Paged: true,
	}
}

func deleteCoreNetworkPolicyVersion() *Operation[nmv2.DeleteCoreNetworkPolicyVersionInput, nmv2.DeleteCoreNetworkPolicyVersionOutput] {
	return &Operation[nmv2.DeleteCoreNetworkPolicyVersionInput, nmv2.DeleteCoreNetworkPolicyVersionOutput]{
		Name:     "DeleteCoreNetworkPolicyVersion",
		Use:      "delete-core-network-policy-version",
		Usage:    "delete a version of a core network policy",
		Category: categoryPolicies,
		Impact:   ImpactHigh,
		Select:   "CoreNetworkPolicy",
		Flags:    policyVersionFlags(),
		Required: []string{"core-network-id", "policy-version-id"},
		Target:   "core-network-id",
		Build: func(b *Binder, in *nmv2.DeleteCoreNetworkPolicyVersionInput) {
			in.CoreNetworkId = b.String("core-network-id")
			in.PolicyVersionId = b.Int32("policy-version-id")
		},
		Call: nm.API.DeleteCoreNetworkPolicyVersion,
	}
}

func restoreCoreNetworkPolicyVersion() *Operation[nmv2.RestoreCoreNetworkPolicyVersionInput, nmv2.RestoreCoreNetworkPolicyVersionOutput] {
	return &Operation[nmv2.RestoreCoreNetworkPolicyVersionInput, nmv2.RestoreCoreNetworkPolicyVersionOutput]{
		Name:     "RestoreCoreNetworkPolicyVersion",
		Use:      "restore-core-network-policy-version",
		Usage:    "restore a previous version of a core network policy as the latest",
		Category: categoryPolicies,
		Impact:   ImpactHigh,
		Select:   "CoreNetworkPolicy",
		Flags:    policyVersionFlags(),
		Required: []string{"core-network-id", "policy-version-id"},
		Target:   "core-network-id",
		Build: func(b *Binder, in *nmv2.RestoreCoreNetworkPolicyVersionInput) {
			in.CoreNetworkId = b.String("core-network-id")
			in.PolicyVersionId = b.Int32("policy-version-id")
		},
		Call: nm.API.RestoreCoreNetworkPolicyVersion,
	}
}

func getCoreNetworkChangeSet() *Operation[nmv2.GetCoreNetworkChangeSetInput, nmv2.GetCoreNetworkChangeSetOutput] {
	return &Operation[nmv2.GetCoreNetworkChangeSetInput, nmv2.GetCoreNetworkChangeSetOutput]{
		Name:     "GetCoreNetworkChangeSet",
		Use:      "get-core-network-change-set",
		Usage:    "list the changes a policy version makes to the core network",
		Category: categoryPolicies,
		Select:   "CoreNetworkChanges",
		Attrs:    []string{"Type,Action,Identifier"},
		Flags:    policyVersionFlags(),
		Required: []string{"core-network-id", "policy-version-id"},
		Build: func(b *Binder, in *nmv2.GetCoreNetworkChangeSetInput) {
			in.CoreNetworkId = b.String("core-network-id")
			in.PolicyVersionId = b.Int32("policy-version-id")
		},
		Call:  nm.API.GetCoreNetworkChangeSet,
		Paged: true,
	}
}

func executeCoreNetworkChangeSet() *Operation[nmv2.ExecuteCoreNetworkChangeSetInput, nmv2.ExecuteCoreNetworkChangeSetOutput] {
	return &Operation[nmv2.ExecuteCoreNetworkChangeSetInput, nmv2.ExecuteCoreNetworkChangeSetOutput]{
		Name:     "ExecuteCoreNetworkChangeSet",
		Use:      "execute-core-network-change-set",
		Usage:    "apply the change set of a policy version to the core network",
		Category: categoryPolicies,
		Impact:   ImpactHigh,
		Select:   "^policy-version-id",
		Flags:    policyVersionFlags(),
		Required: []string{"core-network-id", "policy-version-id"},
		Target:   "core-network-id",
		Build: func(b *Binder, in *nmv2.ExecuteCoreNetworkChangeSetInput) {
			in.CoreNetworkId = b.String("core-network-id")
			in.PolicyVersionId = b.Int32("policy-version-id")
		},
		Call: nm.API.ExecuteCoreNetworkChangeSet,
	}
}

func policyVersionFlags() []cli.Flag {
	return []cli.Flag{
		stringFlag("core-network-id", "ID of the core network"),
		int32Flag("policy-version-id", "ID of the policy version"),
	}
}

// diffCoreNetworkPolicy compares the documents of two policy versions.
type diffCoreNetworkPolicy struct{}

func (diffCoreNetworkPolicy) Command(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "diff-core-network-policy",
		Usage:    "show the difference between two policy versions",
		Category: categoryPolicies,
		Flags: []cli.Flag{
			stringFlag("core-network-id", "ID of the core network"),
			int32Flag("from", "policy version to compare from, picked interactively when absent"),
			int32Flag("to", "policy version to compare to, the LIVE version when absent"),
			&cli.StringSliceFlag{
				Name:  "ignore",
				Usage: "top level policy keys left out of the comparison",
			},
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "color added and removed lines",
			},
		},
		Metadata: map[string]any{
			"meta":      m,
			"operation": "GetCoreNetworkPolicy",
			"impact":    ImpactNone,
		},
		Action: diffCoreNetworkPolicyAction,
	}
}

func diffCoreNetworkPolicyAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	if missing := WarnMissing(cmd, []string{"core-network-id"}); len(missing) > 0 {
		return errors.New("--core-network-id is required")
	}
	coreNetworkID := awsv2.String(cmd.String("core-network-id"))

	if m.NewClient == nil {
		return errors.New("no client factory configured")
	}
	api, region, err := m.NewClient(ctx, SettingsFrom(cmd))
	if err != nil {
		return err
	}
	friendly := func(op string, err error) error {
		return nm.Friendly(err, nm.ErrorContext{Operation: op, Region: region})
	}

	from := &nmv2.GetCoreNetworkPolicyInput{CoreNetworkId: coreNetworkID}
	to := &nmv2.GetCoreNetworkPolicyInput{CoreNetworkId: coreNetworkID, Alias: types.CoreNetworkPolicyAliasLive}

	switch {
	case cmd.IsSet("from"):
		from.PolicyVersionId = awsv2.Int32(cmd.Int32("from"))
		if cmd.IsSet("to") {
			to = &nmv2.GetCoreNetworkPolicyInput{CoreNetworkId: coreNetworkID, PolicyVersionId: awsv2.Int32(cmd.Int32("to"))}
		}
	case m.Interactive:
		versions, err := policyVersions(ctx, api, coreNetworkID)
		if err != nil {
			return friendly("ListCoreNetworkPolicyVersions", err)
		}
		in := m.In
		if in == nil {
			in = os.Stdin
		}
		picked, err := differ.SelectPolicyVersions(versions, in, stderr(cmd, m))
		if err != nil {
			return err
		}
		if len(picked) != 2 {
			log.Debugf("version picker closed without a selection")
			return nil
		}
		sort.Slice(picked, func(i, j int) bool {
			return awsv2.ToInt32(picked[i].PolicyVersionId) < awsv2.ToInt32(picked[j].PolicyVersionId)
		})
		from.PolicyVersionId = picked[0].PolicyVersionId
		to = &nmv2.GetCoreNetworkPolicyInput{CoreNetworkId: coreNetworkID, PolicyVersionId: picked[1].PolicyVersionId}
	default:
		return errors.New("--from is required when stdin is not a terminal")
	}

	var docs [2][]byte
	for i, in := range []*nmv2.GetCoreNetworkPolicyInput{from, to} {
		out, err := api.GetCoreNetworkPolicy(ctx, in)
		if err != nil {
			return friendly("GetCoreNetworkPolicy", err)
		}
		if out.CoreNetworkPolicy == nil {
			return fmt.Errorf("policy version %s not found", describeVersion(in))
		}
		docs[i] = []byte(awsv2.ToString(out.CoreNetworkPolicy.PolicyDocument))
		log.Debugf("policy fetched: version=%s, len=%d", describeVersion(in), len(docs[i]))
	}

	_, err = differ.Diff(stdout(cmd, m), docs[0], docs[1], differ.Options{
		Ignore: cmd.StringSlice("ignore"),
		Color:  cmd.Bool("color"),
	})
	return err
}

// policyVersions lists every version of a core network policy.
func policyVersions(ctx context.Context, api nm.API, coreNetworkID *string) ([]types.CoreNetworkPolicyVersion, error) {
	var versions []types.CoreNetworkPolicyVersion
	in := &nmv2.ListCoreNetworkPolicyVersionsInput{CoreNetworkId: coreNetworkID}
	pager := Pager[nmv2.ListCoreNetworkPolicyVersionsInput, nmv2.ListCoreNetworkPolicyVersionsOutput]{
		Token:    func(out *nmv2.ListCoreNetworkPolicyVersionsOutput) *string { return out.NextToken },
		SetToken: func(in *nmv2.ListCoreNetworkPolicyVersionsInput, token *string) { in.NextToken = token },
	}
	call := func(ctx context.Context, in *nmv2.ListCoreNetworkPolicyVersionsInput) (*nmv2.ListCoreNetworkPolicyVersionsOutput, error) {
		return api.ListCoreNetworkPolicyVersions(ctx, in)
	}
	err := Paginate(ctx, in, call, pager, func(out *nmv2.ListCoreNetworkPolicyVersionsOutput) error {
		versions = append(versions, out.CoreNetworkPolicyVersions...)
		return nil
	})
	return versions, err
}

func describeVersion(in *nmv2.GetCoreNetworkPolicyInput) string {
	if in.PolicyVersionId != nil {
		return fmt.Sprint(*in.PolicyVersionId)
	}
	return string(in.Alias)
}

func policyCommands() []commander {
	return []commander{
		putCoreNetworkPolicy(),
		getCoreNetworkPolicy(),
		listCoreNetworkPolicyVersions(),
		deleteCoreNetworkPolicyVersion(),
		restoreCoreNetworkPolicyVersion(),
		getCoreNetworkChangeSet(),
		executeCoreNetworkChangeSet(),
		diffCoreNetworkPolicy{},
	}
}
