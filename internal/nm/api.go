// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package nm

import (
	"context"

	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
)

// API is the subset of the Network Manager client used by nmctl. The SDK
// client satisfies it; tests substitute fakes that embed it and override the
// methods they exercise.
type API interface {
	// Global networks
	CreateGlobalNetwork(ctx context.Context, params *nmv2.CreateGlobalNetworkInput, optFns ...func(*nmv2.Options)) (*nmv2.CreateGlobalNetworkOutput, error)
	DescribeGlobalNetworks(ctx context.Context, params *nmv2.DescribeGlobalNetworksInput, optFns ...func(*nmv2.Options)) (*nmv2.DescribeGlobalNetworksOutput, error)
	UpdateGlobalNetwork(ctx context.Context, params *nmv2.UpdateGlobalNetworkInput, optFns ...func(*nmv2.Options)) (*nmv2.UpdateGlobalNetworkOutput, error)
	DeleteGlobalNetwork(ctx context.Context, params *nmv2.DeleteGlobalNetworkInput, optFns ...func(*nmv2.Options)) (*nmv2.DeleteGlobalNetworkOutput, error)

	// Sites
	CreateSite(ctx context.Context, params *nmv2.CreateSiteInput, optFns ...func(*nmv2.Options)) (*nmv2.CreateSiteOutput, error)
	GetSites(ctx context.Context, params *nmv2.GetSitesInput, optFns ...func(*nmv2.Options)) (*nmv2.GetSitesOutput, error)
	UpdateSite(ctx context.Context, params *nmv2.UpdateSiteInput, optFns ...func(*nmv2.Options)) (*nmv2.UpdateSiteOutput, error)
	DeleteSite(ctx context.Context, params *nmv2.DeleteSiteInput, optFns ...func(*nmv2.Options)) (*nmv2.DeleteSiteOutput, error)

	// Devices
	CreateDevice(ctx context.Context, params *nmv2.CreateDeviceInput, optFns ...func(*nmv2.Options)) (*nmv2.CreateDeviceOutput, error)
	GetDevices(ctx context.Context, params *nmv2.GetDevicesInput, optFns ...func(*nmv2.Options)) (*nmv2.GetDevicesOutput, error)
	UpdateDevice(ctx context.Context, params *nmv2.UpdateDeviceInput, optFns ...func(*nmv2.Options)) (*nmv2.UpdateDeviceOutput, error)
	DeleteDevice(ctx context.Context, params *nmv2.DeleteDeviceInput, optFns ...func(*nmv2.Options)) (*nmv2.DeleteDeviceOutput, error)

	// Links
	CreateLink(ctx context.Context, params *nmv2.CreateLinkInput, optFns ...func(*nmv2.Options)) (*nmv2.CreateLinkOutput, error)
	GetLinks(ctx context.Context, params *nmv2.GetLinksInput, optFns ...func(*nmv2.Options)) (*nmv2.GetLinksOutput, error)
	UpdateLink(ctx context.Context, params *nmv2.UpdateLinkInput, optFns ...func(*nmv2.Options)) (*nmv2.UpdateLinkOutput, error)
	DeleteLink(ctx context.Context, params *nmv2.DeleteLinkInput, optFns ...func(*nmv2.Options)) (*nmv2.DeleteLinkOutput, error)
	AssociateLink(ctx context.Context, params *nmv2.AssociateLinkInput, optFns ...func(*nmv2.Options)) (*nmv2.AssociateLinkOutput, error)
	DisassociateLink(ctx context.Context, params *nmv2.DisassociateLinkInput, optFns ...func(*nmv2.Options)) (*nmv2.DisassociateLinkOutput, error)
	GetLinkAssociations(ctx context.Context, params *nmv2.GetLinkAssociationsInput, optFns ...func(*nmv2.Options)) (*nmv2.GetLinkAssociationsOutput, error)

	// Connections
	CreateConnection(ctx context.Context, params *nmv2.CreateConnectionInput, optFns ...func(*nmv2.Options)) (*nmv2.CreateConnectionOutput, error)
	GetConnections(ctx context.Context, params *nmv2.GetConnectionsInput, optFns ...func(*nmv2.Options)) (*nmv2.GetConnectionsOutput, error)
	DeleteConnection(ctx context.Context, params *nmv2.DeleteConnectionInput, optFns ...func(*nmv2.Options)) (*nmv2.DeleteConnectionOutput, error)

	// Transit gateway registrations
	RegisterTransitGateway(ctx context.Context, params *nmv2.RegisterTransitGatewayInput, optFns ...func(*nmv2.Options)) (*nmv2.RegisterTransitGatewayOutput, error)
	DeregisterTransitGateway(ctx context.Context, params *nmv2.DeregisterTransitGatewayInput, optFns ...func(*nmv2.Options)) (*nmv2.DeregisterTransitGatewayOutput, error)
	GetTransitGatewayRegistrations(ctx context.Context, params *nmv2.GetTransitGatewayRegistrationsInput, optFns ...func(*nmv2.Options)) (*nmv2.GetTransitGatewayRegistrationsOutput, error)

	// Customer gateway associations
	AssociateCustomerGateway(ctx context.Context, params *nmv2.AssociateCustomerGatewayInput, optFns ...func(*nmv2.Options)) (*nmv2.AssociateCustomerGatewayOutput, error)
	DisassociateCustomerGateway(ctx context.Context, params *nmv2.DisassociateCustomerGatewayInput, optFns ...func(*nmv2.Options)) (*nmv2.DisassociateCustomerGatewayOutput, error)
	GetCustomerGatewayAssociations(ctx context.Context, params *nmv2.GetCustomerGatewayAssociationsInput, optFns ...func(*nmv2.Options)) (*nmv2.GetCustomerGatewayAssociationsOutput, error)

	// Core networks
	CreateCoreNetwork(ctx context.Context, params *nmv2.CreateCoreNetworkInput, optFns ...func(*nmv2.Options)) (*nmv2.CreateCoreNetworkOutput, error)
	GetCoreNetwork(ctx context.Context, params *nmv2.GetCoreNetworkInput, optFns ...func(*nmv2.Options)) (*nmv2.GetCoreNetworkOutput, error)
	ListCoreNetworks(ctx context.Context, params *nmv2.ListCoreNetworksInput, optFns ...func(*nmv2.Options)) (*nmv2.ListCoreNetworksOutput, error)
	UpdateCoreNetwork(ctx context.Context, params *nmv2.UpdateCoreNetworkInput, optFns ...func(*nmv2.Options)) (*nmv2.UpdateCoreNetworkOutput, error)
	DeleteCoreNetwork(ctx context.Context, params *nmv2.DeleteCoreNetworkInput, optFns ...func(*nmv2.Options)) (*nmv2.DeleteCoreNetworkOutput, error)

	// Core network policies
	PutCoreNetworkPolicy(ctx context.Context, params *nmv2.PutCoreNetworkPolicyInput, optFns ...func(*nmv2.Options)) (*nmv2.PutCoreNetworkPolicyOutput, error)
	GetCoreNetworkPolicy(ctx context.Context, params *nmv2.GetCoreNetworkPolicyInput, optFns ...func(*nmv2.Options)) (*nmv2.GetCoreNetworkPolicyOutput, error)
	ListCoreNetworkPolicyVersions(ctx context.Context, params *nmv2.ListCoreNetworkPolicyVersionsInput, optFns ...func(*nmv2.Options)) (*nmv2.ListCoreNetworkPolicyVersionsOutput, error)
	DeleteCoreNetworkPolicyVersion(ctx context.Context, params *nmv2.DeleteCoreNetworkPolicyVersionInput, optFns ...func(*nmv2.Options)) (*nmv2.DeleteCoreNetworkPolicyVersionOutput, error)
	RestoreCoreNetworkPolicyVersion(ctx context.Context, params *nmv2.RestoreCoreNetworkPolicyVersionInput, optFns ...func(*nmv2.Options)) (*nmv2.RestoreCoreNetworkPolicyVersionOutput, error)
	GetCoreNetworkChangeSet(ctx context.Context, params *nmv2.GetCoreNetworkChangeSetInput, optFns ...func(*nmv2.Options)) (*nmv2.GetCoreNetworkChangeSetOutput, error)
	ExecuteCoreNetworkChangeSet(ctx context.Context, params *nmv2.ExecuteCoreNetworkChangeSetInput, optFns ...func(*nmv2.Options)) (*nmv2.ExecuteCoreNetworkChangeSetOutput, error)

	// Attachments
	ListAttachments(ctx context.Context, params *nmv2.ListAttachmentsInput, optFns ...func(*nmv2.Options)) (*nmv2.ListAttachmentsOutput, error)
	AcceptAttachment(ctx context.Context, params *nmv2.AcceptAttachmentInput, optFns ...func(*nmv2.Options)) (*nmv2.AcceptAttachmentOutput, error)
	RejectAttachment(ctx context.Context, params *nmv2.RejectAttachmentInput, optFns ...func(*nmv2.Options)) (*nmv2.RejectAttachmentOutput, error)
	DeleteAttachment(ctx context.Context, params *nmv2.DeleteAttachmentInput, optFns ...func(*nmv2.Options)) (*nmv2.DeleteAttachmentOutput, error)
	CreateVpcAttachment(ctx context.Context, params *nmv2.CreateVpcAttachmentInput, optFns ...func(*nmv2.Options)) (*nmv2.CreateVpcAttachmentOutput, error)
	GetVpcAttachment(ctx context.Context, params *nmv2.GetVpcAttachmentInput, optFns ...func(*nmv2.Options)) (*nmv2.GetVpcAttachmentOutput, error)
	CreateConnectAttachment(ctx context.Context, params *nmv2.CreateConnectAttachmentInput, optFns ...func(*nmv2.Options)) (*nmv2.CreateConnectAttachmentOutput, error)
	GetConnectAttachment(ctx context.Context, params *nmv2.GetConnectAttachmentInput, optFns ...func(*nmv2.Options)) (*nmv2.GetConnectAttachmentOutput, error)
	CreateSiteToSiteVpnAttachment(ctx context.Context, params *nmv2.CreateSiteToSiteVpnAttachmentInput, optFns ...func(*nmv2.Options)) (*nmv2.CreateSiteToSiteVpnAttachmentOutput, error)
	GetSiteToSiteVpnAttachment(ctx context.Context, params *nmv2.GetSiteToSiteVpnAttachmentInput, optFns ...func(*nmv2.Options)) (*nmv2.GetSiteToSiteVpnAttachmentOutput, error)

	// Connect peers
	CreateConnectPeer(ctx context.Context, params *nmv2.CreateConnectPeerInput, optFns ...func(*nmv2.Options)) (*nmv2.CreateConnectPeerOutput, error)
	GetConnectPeer(ctx context.Context, params *nmv2.GetConnectPeerInput, optFns ...func(*nmv2.Options)) (*nmv2.GetConnectPeerOutput, error)
	ListConnectPeers(ctx context.Context, params *nmv2.ListConnectPeersInput, optFns ...func(*nmv2.Options)) (*nmv2.ListConnectPeersOutput, error)
	DeleteConnectPeer(ctx context.Context, params *nmv2.DeleteConnectPeerInput, optFns ...func(*nmv2.Options)) (*nmv2.DeleteConnectPeerOutput, error)

	// Routes
	GetNetworkRoutes(ctx context.Context, params *nmv2.GetNetworkRoutesInput, optFns ...func(*nmv2.Options)) (*nmv2.GetNetworkRoutesOutput, error)

	// Tags
	TagResource(ctx context.Context, params *nmv2.TagResourceInput, optFns ...func(*nmv2.Options)) (*nmv2.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *nmv2.UntagResourceInput, optFns ...func(*nmv2.Options)) (*nmv2.UntagResourceOutput, error)
	ListTagsForResource(ctx context.Context, params *nmv2.ListTagsForResourceInput, optFns ...func(*nmv2.Options)) (*nmv2.ListTagsForResourceOutput, error)
}

var _ API = (*nmv2.Client)(nil)
