// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/aws/aws-sdk-go-v2/service/networkmanager/types"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/nm"
)

const categoryAttachments = "Attachments"

func attachmentIDFlags() []cli.Flag {
	return []cli.Flag{
		stringFlag("attachment-id", "ID of the attachment"),
	}
}

func listAttachments() *Operation[nmv2.ListAttachmentsInput, nmv2.ListAttachmentsOutput] {
	return &Operation[nmv2.ListAttachmentsInput, nmv2.ListAttachmentsOutput]{
		Name:     "ListAttachments",
		Use:      "list-attachments",
		Usage:    "list the attachments of core networks",
		Category: categoryAttachments,
		Select:   "Attachments",
		Attrs:    []string{"AttachmentId,AttachmentType:Type,State,EdgeLocation,SegmentName,ResourceArn::-40"},
		Flags: []cli.Flag{
			enumFlag("attachment-type", "type of attachment", types.AttachmentType("").Values()),
			stringFlag("core-network-id", "ID of the core network"),
			stringFlag("edge-location", "Region of the edge location"),
			enumFlag("state", "state of the attachment", types.AttachmentState("").Values()),
		},
		Build: func(b *Binder, in *nmv2.ListAttachmentsInput) {
			in.AttachmentType = bindEnum[types.AttachmentType](b, "attachment-type")
			in.CoreNetworkId = b.String("core-network-id")
			in.EdgeLocation = b.String("edge-location")
			in.State = bindEnum[types.AttachmentState](b, "state")
		},
		Call:  nm.API.ListAttachments,
		Paged: true,
		Augment: func(in *nmv2.ListAttachmentsInput, serverSide map[string]string) error {
			for key, value := range serverSide {
				switch key {
				case "AttachmentType":
					in.AttachmentType = types.AttachmentType(value)
				case "CoreNetworkId":
					in.CoreNetworkId = &value
				case "EdgeLocation":
					in.EdgeLocation = &value
				case "State":
					in.State = types.AttachmentState(value)
				default:
					return unknownFilter(key, "_AttachmentType", "_CoreNetworkId", "_EdgeLocation", "_State")
				}
			}
			return nil
		},
	}
}

func acceptAttachment() *Operation[nmv2.AcceptAttachmentInput, nmv2.AcceptAttachmentOutput] {
	return &Operation[nmv2.AcceptAttachmentInput, nmv2.AcceptAttachmentOutput]{
		Name:     "AcceptAttachment",
		Use:      "accept-attachment",
		Usage:    "accept an attachment request",
		Category: categoryAttachments,
		Impact:   ImpactMedium,
		Select:   "Attachment",
		Flags:    attachmentIDFlags(),
		Required: []string{"attachment-id"},
		Target:   "attachment-id",
		Build: func(b *Binder, in *nmv2.AcceptAttachmentInput) {
			in.AttachmentId = b.String("attachment-id")
		},
		Call: nm.API.AcceptAttachment,
	}
}

func rejectAttachment() *Operation[nmv2.RejectAttachmentInput, nmv2.RejectAttachmentOutput] {
	return &Operation[nmv2.RejectAttachmentInput, nmv2.RejectAttachmentOutput]{
		Name:     "RejectAttachment",
		Use:      "reject-attachment",
		Usage:    "reject an attachment request",
		Category: categoryAttachments,
		Impact:   ImpactHigh,
		Select:   "Attachment",
		Flags:    attachmentIDFlags(),
		Required: []string{"attachment-id"},
		Target:   "attachment-id",
		Build: func(b *Binder, in *nmv2.RejectAttachmentInput) {
			in.AttachmentId = b.String("attachment-id")
		},
		Call: nm.API.RejectAttachment,
	}
}

func deleteAttachment() *Operation[nmv2.DeleteAttachmentInput, nmv2.DeleteAttachmentOutput] {
	return &Operation[nmv2.DeleteAttachmentInput, nmv2.DeleteAttachmentOutput]{
		Name:     "DeleteAttachment",
		Use:      "delete-attachment",
		Usage:    "delete an attachment",
		Category: categoryAttachments,
		Impact:   ImpactHigh,
		Select:   "Attachment",
		Flags:    attachmentIDFlags(),
		Required: []string{"attachment-id"},
		Target:   "attachment-id",
		Build: func(b *Binder, in *nmv2.DeleteAttachmentInput) {
			in.AttachmentId = b.String("attachment-id")
		},
		Call: nm.API.DeleteAttachment,
	}
}

func createVpcAttachment() *Operation[nmv2.CreateVpcAttachmentInput, nmv2.CreateVpcAttachmentOutput] {
	return &Operation[nmv2.CreateVpcAttachmentInput, nmv2.CreateVpcAttachmentOutput]{
		Name:     "CreateVpcAttachment",
		Use:      "create-vpc-attachment",
		Usage:    "attach a VPC to a core network",
		Category: categoryAttachments,
		Impact:   ImpactMedium,
		Select:   "VpcAttachment",
		Flags: []cli.Flag{
			stringFlag("core-network-id", "ID of the core network"),
			stringFlag("vpc-arn", "ARN of the VPC"),
			stringsFlag("subnet-arns", "ARNs of the subnets to attach"),
			clientTokenFlag(),
			tagsFlag(),
		},
		Required: []string{"core-network-id", "vpc-arn", "subnet-arns"},
		Target:   "vpc-arn",
		Build: func(b *Binder, in *nmv2.CreateVpcAttachmentInput) {
			in.CoreNetworkId = b.String("core-network-id")
			in.VpcArn = b.String("vpc-arn")
			in.SubnetArns = b.Strings("subnet-arns")
			in.ClientToken = b.ClientToken()
			in.Tags = b.Tags()
		},
		Call: nm.API.CreateVpcAttachment,
	}
}

func getVpcAttachment() *Operation[nmv2.GetVpcAttachmentInput, nmv2.GetVpcAttachmentOutput] {
	return &Operation[nmv2.GetVpcAttachmentInput, nmv2.GetVpcAttachmentOutput]{
		Name:     "GetVpcAttachment",
		Use:      "get-vpc-attachment",
		Usage:    "describe a VPC attachment",
		Category: categoryAttachments,
		Select:   "VpcAttachment",
		Flags:    attachmentIDFlags(),
		Required: []string{"attachment-id"},
		Build: func(b *Binder, in *nmv2.GetVpcAttachmentInput) {
			in.AttachmentId = b.String("attachment-id")
		},
		Call: nm.API.GetVpcAttachment,
	}
}

func createConnectAttachment() *Operation[nmv2.CreateConnectAttachmentInput, nmv2.CreateConnectAttachmentOutput] {
	return &Operation[nmv2.CreateConnectAttachmentInput, nmv2.CreateConnectAttachmentOutput]{
		Name:     "CreateConnectAttachment",
		Use:      "create-connect-attachment",
		Usage:    "create a Connect attachment over a transport attachment",
		Category: categoryAttachments,
		Impact:   ImpactMedium,
		Select:   "ConnectAttachment",
		Flags: []cli.Flag{
			stringFlag("core-network-id", "ID of the core network"),
			stringFlag("edge-location", "Region of the edge location"),
			stringFlag("transport-attachment-id", "ID of the attachment carrying the Connect attachment"),
			enumFlag("options-protocol", "tunnel protocol", types.TunnelProtocol("").Values()),
			clientTokenFlag(),
			tagsFlag(),
		},
		Required: []string{"core-network-id", "edge-location", "transport-attachment-id", "options-protocol"},
		Target:   "transport-attachment-id",
		Build: func(b *Binder, in *nmv2.CreateConnectAttachmentInput) {
			in.CoreNetworkId = b.String("core-network-id")
			in.EdgeLocation = b.String("edge-location")
			in.TransportAttachmentId = b.String("transport-attachment-id")
			if b.IsSet("options-protocol") {
				in.Options = &types.ConnectAttachmentOptions{
					Protocol: bindEnum[types.TunnelProtocol](b, "options-protocol"),
				}
			}
			in.ClientToken = b.ClientToken()
			in.Tags = b.Tags()
		},
		Call: nm.API.CreateConnectAttachment,
	}
}

func getConnectAttachment() *Operation[nmv2.GetConnectAttachmentInput, nmv2.GetConnectAttachmentOutput] {
	return &Operation[nmv2.GetConnectAttachmentInput, nmv2.GetConnectAttachmentOutput]{
		Name:     "GetConnectAttachment",
		Use:      "get-connect-attachment",
		Usage:    "describe a Connect attachment",
		Category: categoryAttachments,
		Select:   "ConnectAttachment",
		Flags:    attachmentIDFlags(),
		Required: []string{"attachment-id"},
		Build: func(b *Binder, in *nmv2.GetConnectAttachmentInput) {
			in.AttachmentId = b.String("attachment-id")
		},
		Call: nm.API.GetConnectAttachment,
	}
}

func createSiteToSiteVpnAttachment() *Operation[nmv2.CreateSiteToSiteVpnAttachmentInput, nmv2.CreateSiteToSiteVpnAttachmentOutput] {
	return &Operation[nmv2.CreateSiteToSiteVpnAttachmentInput, nmv2.CreateSiteToSiteVpnAttachmentOutput]{
		Name:     "CreateSiteToSiteVpnAttachment",
		Use:      "create-site-to-site-vpn-attachment",
		Usage:    "attach a Site-to-Site VPN connection to a core network",
		Category: categoryAttachments,
		Impact:   ImpactMedium,
		Select:   "SiteToSiteVpnAttachment",
		Flags: []cli.Flag{
			stringFlag("core-network-id", "ID of the core network"),
			stringFlag("vpn-connection-arn", "ARN of the VPN connection"),
			clientTokenFlag(),
			tagsFlag(),
		},
		Required: []string{"core-network-id", "vpn-connection-arn"},
		Target:   "vpn-connection-arn",
		Build: func(b *Binder, in *nmv2.CreateSiteToSiteVpnAttachmentInput) {
			in.CoreNetworkId = b.String("core-network-id")
			in.VpnConnectionArn = b.String("vpn-connection-arn")
			in.ClientToken = b.ClientToken()
			in.Tags = b.Tags()
		},
		Call: nm.API.CreateSiteToSiteVpnAttachment,
	}
}

func getSiteToSiteVpnAttachment() *Operation[nmv2.GetSiteToSiteVpnAttachmentInput, nmv2.GetSiteToSiteVpnAttachmentOutput] {
	return &Operation[nmv2.GetSiteToSiteVpnAttachmentInput, nmv2.GetSiteToSiteVpnAttachmentOutput]{
		Name:     "GetSiteToSiteVpnAttachment",
		Use:      "get-site-to-site-vpn-attachment",
		Usage:    "describe a Site-to-Site VPN attachment",
		Category: categoryAttachments,
		Select:   "SiteToSiteVpnAttachment",
		Flags:    attachmentIDFlags(),
		Required: []string{"attachment-id"},
		Build: func(b *Binder, in *nmv2.GetSiteToSiteVpnAttachmentInput) {
			in.AttachmentId = b.String("attachment-id")
		},
		Call: nm.API.GetSiteToSiteVpnAttachment,
	}
}

func attachmentCommands() []commander {
	return []commander{
		listAttachments(),
		acceptAttachment(),
		rejectAttachment(),
		deleteAttachment(),
		createVpcAttachment(),
		getVpcAttachment(),
		createConnectAttachment(),
		getConnectAttachment(),
		createSiteToSiteVpnAttachment(),
		getSiteToSiteVpnAttachment(),
	}
}
