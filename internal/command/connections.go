// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/nm"
)

const categoryConnections = "Connections"

func createConnection() *Operation[nmv2.CreateConnectionInput, nmv2.CreateConnectionOutput] {
	return &Operation[nmv2.CreateConnectionInput, nmv2.CreateConnectionOutput]{
		Name:     "CreateConnection",
		Use:      "create-connection",
		Usage:    "create a connection between two devices",
		Category: categoryConnections,
		Impact:   ImpactMedium,
		Select:   "Connection",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("device-id", "ID of the first device"),
			stringFlag("connected-device-id", "ID of the second device"),
			stringFlag("link-id", "ID of the link of the first device"),
			stringFlag("connected-link-id", "ID of the link of the second device"),
			stringFlag("description", "description of the connection"),
			tagsFlag(),
		},
		Required: []string{"global-network-id", "device-id", "connected-device-id"},
		Target:   "device-id",
		Build: func(b *Binder, in *nmv2.CreateConnectionInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.DeviceId = b.String("device-id")
			in.ConnectedDeviceId = b.String("connected-device-id")
			in.LinkId = b.String("link-id")
			in.ConnectedLinkId = b.String("connected-link-id")
			in.Description = b.String("description")
			in.Tags = b.Tags()
		},
		Call: nm.API.CreateConnection,
	}
}

func getConnections() *Operation[nmv2.GetConnectionsInput, nmv2.GetConnectionsOutput] {
	return &Operation[nmv2.GetConnectionsInput, nmv2.GetConnectionsOutput]{
		Name:     "GetConnections",
		Use:      "get-connections",
		Usage:    "list the connections of a global network",
		Category: categoryConnections,
		Select:   "Connections",
		Attrs:    []string{"ConnectionId,DeviceId,ConnectedDeviceId,State,Description"},
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringsFlag("connection-ids", "IDs of the connections"),
			stringFlag("device-id", "ID of the device"),
		},
		Required: []string{"global-network-id"},
		Build: func(b *Binder, in *nmv2.GetConnectionsInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.ConnectionIds = b.Strings("connection-ids")
			in.DeviceId = b.String("device-id")
		},
		Call:  nm.API.GetConnections,
		Paged: true,
		Augment: func(in *nmv2.GetConnectionsInput, serverSide map[string]string) error {
			for key, value := range serverSide {
				switch key {
				case "DeviceId":
					in.DeviceId = &value
				default:
					return unknownFilter(key, "_DeviceId")
				}
			}
			return nil
		},
	}
}

func deleteConnection() *Operation[nmv2.DeleteConnectionInput, nmv2.DeleteConnectionOutput] {
	return &Operation[nmv2.DeleteConnectionInput, nmv2.DeleteConnectionOutput]{
		Name:     "DeleteConnection",
		Use:      "delete-connection",
		Usage:    "delete a connection",
		Category: categoryConnections,
		Impact:   ImpactHigh,
		Select:   "Connection",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("connection-id", "ID of the connection"),
		},
		Required: []string{"global-network-id", "connection-id"},
		Target:   "connection-id",
		Build: func(b *Binder, in *nmv2.DeleteConnectionInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.ConnectionId = b.String("connection-id")
		},
		Call: nm.API.DeleteConnection,
	}
}

func connectionCommands() []commander {
	return []commander{
		createConnection(),
		getConnections(),
		deleteConnection(),
	}
}
