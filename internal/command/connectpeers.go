// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/aws/aws-sdk-go-v2/service/networkmanager/types"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/nm"
)

const categoryConnectPeers = "Connect peers"

func createConnectPeer() *Operation[nmv2.CreateConnectPeerInput, nmv2.CreateConnectPeerOutput] {
	return &Operation[nmv2.CreateConnectPeerInput, nmv2.CreateConnectPeerOutput]{
		Name:     "CreateConnectPeer",
		Use:      "create-connect-peer",
		Usage:    "create a Connect peer on a Connect attachment",
		Category: categoryConnectPeers,
		Impact:   ImpactMedium,
		Select:   "ConnectPeer",
		Flags: []cli.Flag{
			stringFlag("connect-attachment-id", "ID of the Connect attachment"),
			stringFlag("peer-address", "peer IP address"),
			stringFlag("core-network-address", "IP address of the core network side"),
			int64Flag("bgp-options-peer-asn", "peer ASN"),
			stringsFlag("inside-cidr-blocks", "inside IP addresses used for BGP peering"),
			stringFlag("subnet-arn", "subnet ARN for a tunnel-less Connect peer"),
			clientTokenFlag(),
			tagsFlag(),
		},
		Required: []string{"connect-attachment-id", "peer-address"},
		Target:   "connect-attachment-id",
		Build: func(b *Binder, in *nmv2.CreateConnectPeerInput) {
			in.ConnectAttachmentId = b.String("connect-attachment-id")
			in.PeerAddress = b.String("peer-address")
			in.CoreNetworkAddress = b.String("core-network-address")
			if asn := b.Int64("bgp-options-peer-asn"); asn != nil {
				in.BgpOptions = &types.BgpOptions{PeerAsn: asn}
			}
			in.InsideCidrBlocks = b.Strings("inside-cidr-blocks")
			in.SubnetArn = b.String("subnet-arn")
			in.ClientToken = b.ClientToken()
			in.Tags = b.Tags()
		},
		Call: nm.API.CreateConnectPeer,
	}
}

func getConnectPeer() *Operation[nmv2.GetConnectPeerInput, nmv2.GetConnectPeerOutput] {
	return &Operation[nmv2.GetConnectPeerInput, nmv2.GetConnectPeerOutput]{
		Name:     "GetConnectPeer",
		Use:      "get-connect-peer",
		Usage:    "describe a Connect peer",
		Category: categoryConnectPeers,
		Select:   "ConnectPeer",
		Flags: []cli.Flag{
			stringFlag("connect-peer-id", "ID of the Connect peer"),
		},
		Required: []string{"connect-peer-id"},
		Build: func(b *Binder, in *nmv2.GetConnectPeerInput) {
			in.ConnectPeerId = b.String("connect-peer-id")
		},
		Call: nm.API.GetConnectPeer,
	}
}

func listConnectPeers() *Operation[nmv2.ListConnectPeersInput, nmv2.ListConnectPeersOutput] {
	return &Operation[nmv2.ListConnectPeersInput, nmv2.ListConnectPeersOutput]{
		Name:     "ListConnectPeers",
		Use:      "list-connect-peers",
		Usage:    "list Connect peers",
		Category: categoryConnectPeers,
		Select:   "ConnectPeers",
		Attrs:    []string{"ConnectPeerId,ConnectAttachmentId,ConnectPeerState:State,EdgeLocation,CreatedAt"},
		Flags: []cli.Flag{
			stringFlag("connect-attachment-id", "ID of the Connect attachment"),
			stringFlag("core-network-id", "ID of the core network"),
		},
		Build: func(b *Binder, in *nmv2.ListConnectPeersInput) {
			in.ConnectAttachmentId = b.String("connect-attachment-id")
			in.CoreNetworkId = b.String("core-network-id")
		},
		Call:  nm.API.ListConnectPeers,
		Paged: true,
	}
}

func deleteConnectPeer() *Operation[nmv2.DeleteConnectPeerInput, nmv2.DeleteConnectPeerOutput] {
	return &Operation[nmv2.DeleteConnectPeerInput, nmv2.DeleteConnectPeerOutput]{
		Name:     "DeleteConnectPeer",
		Use:      "delete-connect-peer",
		Usage:    "delete a Connect peer",
		Category: categoryConnectPeers,
		Impact:   ImpactHigh,
		Select:   "ConnectPeer",
		Flags: []cli.Flag{
			stringFlag("connect-peer-id", "ID of the Connect peer"),
		},
		Required: []string{"connect-peer-id"},
		Target:   "connect-peer-id",
		Build: func(b *Binder, in *nmv2.DeleteConnectPeerInput) {
			in.ConnectPeerId = b.String("connect-peer-id")
		},
		Call: nm.API.DeleteConnectPeer,
	}
}

func connectPeerCommands() []commander {
	return []commander{
		createConnectPeer(),
		getConnectPeer(),
		listConnectPeers(),
		deleteConnectPeer(),
	}
}
