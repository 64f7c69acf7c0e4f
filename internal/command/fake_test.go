// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/aws/aws-sdk-go-v2/service/networkmanager/types"
	"github.com/stretchr/testify/require"

	"github.com/nmctl/nmctl/internal/cacheutil"
	"github.com/nmctl/nmctl/internal/config"
	"github.com/nmctl/nmctl/internal/confirm"
	"github.com/nmctl/nmctl/internal/meta"
	"github.com/nmctl/nmctl/internal/nm"
)

// fakeAPI records every call. Methods not overridden panic through the nil
// embedded interface.
type fakeAPI struct {
	nm.API

	calls  []string
	inputs []any
	err    error

	// linkPages maps the request token to the page returned for it.
	linkPages map[string]*nmv2.GetLinksOutput
	policies  map[int32]string
	versions  []types.CoreNetworkPolicyVersion
}

func (f *fakeAPI) record(name string, in any) error {
	f.calls = append(f.calls, name)
	f.inputs = append(f.inputs, in)
	return f.err
}

func lastInput[T any](t *testing.T, f *fakeAPI) *T {
	t.Helper()
	require.NotEmpty(t, f.inputs, "no calls recorded")
	in, ok := f.inputs[len(f.inputs)-1].(*T)
	require.True(t, ok, "last input is %T", f.inputs[len(f.inputs)-1])
	return in
}

func (f *fakeAPI) GetLinks(_ context.Context, in *nmv2.GetLinksInput, _ ...func(*nmv2.Options)) (*nmv2.GetLinksOutput, error) {
	// Copy, the caller reuses the input across pages.
	cp := *in
	if err := f.record("GetLinks", &cp); err != nil {
		return nil, err
	}
	if page, ok := f.linkPages[awsv2.ToString(in.NextToken)]; ok {
		out := *page
		return &out, nil
	}
	return &nmv2.GetLinksOutput{}, nil
}

func (f *fakeAPI) CreateLink(_ context.Context, in *nmv2.CreateLinkInput, _ ...func(*nmv2.Options)) (*nmv2.CreateLinkOutput, error) {
	if err := f.record("CreateLink", in); err != nil {
		return nil, err
	}
	return &nmv2.CreateLinkOutput{Link: &types.Link{LinkId: awsv2.String("link-1"), SiteId: in.SiteId}}, nil
}

func (f *fakeAPI) DeleteLink(_ context.Context, in *nmv2.DeleteLinkInput, _ ...func(*nmv2.Options)) (*nmv2.DeleteLinkOutput, error) {
	if err := f.record("DeleteLink", in); err != nil {
		return nil, err
	}
	return &nmv2.DeleteLinkOutput{Link: &types.Link{LinkId: in.LinkId}}, nil
}

func (f *fakeAPI) CreateSite(_ context.Context, in *nmv2.CreateSiteInput, _ ...func(*nmv2.Options)) (*nmv2.CreateSiteOutput, error) {
	if err := f.record("CreateSite", in); err != nil {
		return nil, err
	}
	return &nmv2.CreateSiteOutput{Site: &types.Site{SiteId: awsv2.String("site-1")}}, nil
}

func (f *fakeAPI) GetSites(_ context.Context, in *nmv2.GetSitesInput, _ ...func(*nmv2.Options)) (*nmv2.GetSitesOutput, error) {
	if err := f.record("GetSites", in); err != nil {
		return nil, err
	}
	return &nmv2.GetSitesOutput{Sites: []types.Site{{SiteId: awsv2.String("site-1")}}}, nil
}

func (f *fakeAPI) CreateDevice(_ context.Context, in *nmv2.CreateDeviceInput, _ ...func(*nmv2.Options)) (*nmv2.CreateDeviceOutput, error) {
	if err := f.record("CreateDevice", in); err != nil {
		return nil, err
	}
	return &nmv2.CreateDeviceOutput{Device: &types.Device{DeviceId: awsv2.String("device-1")}}, nil
}

func (f *fakeAPI) ListAttachments(_ context.Context, in *nmv2.ListAttachmentsInput, _ ...func(*nmv2.Options)) (*nmv2.ListAttachmentsOutput, error) {
	if err := f.record("ListAttachments", in); err != nil {
		return nil, err
	}
	return &nmv2.ListAttachmentsOutput{}, nil
}

func (f *fakeAPI) CreateConnectAttachment(_ context.Context, in *nmv2.CreateConnectAttachmentInput, _ ...func(*nmv2.Options)) (*nmv2.CreateConnectAttachmentOutput, error) {
	if err := f.record("CreateConnectAttachment", in); err != nil {
		return nil, err
	}
	return &nmv2.CreateConnectAttachmentOutput{}, nil
}

func (f *fakeAPI) CreateConnectPeer(_ context.Context, in *nmv2.CreateConnectPeerInput, _ ...func(*nmv2.Options)) (*nmv2.CreateConnectPeerOutput, error) {
	if err := f.record("CreateConnectPeer", in); err != nil {
		return nil, err
	}
	return &nmv2.CreateConnectPeerOutput{}, nil
}

func (f *fakeAPI) GetNetworkRoutes(_ context.Context, in *nmv2.GetNetworkRoutesInput, _ ...func(*nmv2.Options)) (*nmv2.GetNetworkRoutesOutput, error) {
	if err := f.record("GetNetworkRoutes", in); err != nil {
		return nil, err
	}
	return &nmv2.GetNetworkRoutesOutput{}, nil
}

func (f *fakeAPI) PutCoreNetworkPolicy(_ context.Context, in *nmv2.PutCoreNetworkPolicyInput, _ ...func(*nmv2.Options)) (*nmv2.PutCoreNetworkPolicyOutput, error) {
	if err := f.record("PutCoreNetworkPolicy", in); err != nil {
		return nil, err
	}
	return &nmv2.PutCoreNetworkPolicyOutput{}, nil
}

func (f *fakeAPI) GetCoreNetworkPolicy(_ context.Context, in *nmv2.GetCoreNetworkPolicyInput, _ ...func(*nmv2.Options)) (*nmv2.GetCoreNetworkPolicyOutput, error) {
	if err := f.record("GetCoreNetworkPolicy", in); err != nil {
		return nil, err
	}
	id := awsv2.ToInt32(in.PolicyVersionId)
	if in.Alias == types.CoreNetworkPolicyAliasLive {
		id = 0
	}
	doc, ok := f.policies[id]
	if !ok {
		return &nmv2.GetCoreNetworkPolicyOutput{}, nil
	}
	return &nmv2.GetCoreNetworkPolicyOutput{CoreNetworkPolicy: &types.CoreNetworkPolicy{
		CoreNetworkId:   in.CoreNetworkId,
		PolicyVersionId: awsv2.Int32(id),
		PolicyDocument:  awsv2.String(doc),
	}}, nil
}

func (f *fakeAPI) ListCoreNetworkPolicyVersions(_ context.Context, in *nmv2.ListCoreNetworkPolicyVersionsInput, _ ...func(*nmv2.Options)) (*nmv2.ListCoreNetworkPolicyVersionsOutput, error) {
	if err := f.record("ListCoreNetworkPolicyVersions", in); err != nil {
		return nil, err
	}
	return &nmv2.ListCoreNetworkPolicyVersionsOutput{CoreNetworkPolicyVersions: f.versions}, nil
}

func (f *fakeAPI) ExecuteCoreNetworkChangeSet(_ context.Context, in *nmv2.ExecuteCoreNetworkChangeSetInput, _ ...func(*nmv2.Options)) (*nmv2.ExecuteCoreNetworkChangeSetOutput, error) {
	if err := f.record("ExecuteCoreNetworkChangeSet", in); err != nil {
		return nil, err
	}
	return &nmv2.ExecuteCoreNetworkChangeSetOutput{}, nil
}

func (f *fakeAPI) TagResource(_ context.Context, in *nmv2.TagResourceInput, _ ...func(*nmv2.Options)) (*nmv2.TagResourceOutput, error) {
	if err := f.record("TagResource", in); err != nil {
		return nil, err
	}
	return &nmv2.TagResourceOutput{}, nil
}

// harness runs the app against a fakeAPI with captured streams.
type harness struct {
	api         *fakeAPI
	in          io.Reader
	interactive bool
	confirmer   *confirm.Confirmer
	settings    nm.Settings
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv(config.EnvFile, "testdata/nmctl.yaml")
	t.Setenv(cacheutil.DirEnv, t.TempDir())
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("NMCTL_ENDPOINT_URL", "")
	return &harness{api: &fakeAPI{}, in: strings.NewReader("")}
}

func (h *harness) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	m := meta.Meta{
		Args:        append([]string{"nmctl"}, args...),
		In:          h.in,
		Out:         &stdout,
		Err:         &stderr,
		Interactive: h.interactive,
		Confirmer:   h.confirmer,
		NewClient: func(_ context.Context, s nm.Settings) (nm.API, string, error) {
			h.settings = s
			return h.api, "us-west-2", nil
		},
	}

	ctx := context.Background()
	app, err := InitApp(ctx, m)
	require.NoError(t, err)

	err = app.Run(ctx, m.Args)
	return stdout.String(), stderr.String(), err
}
