// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/nm"
)

const categoryCoreNetworks = "Core networks"

func createCoreNetwork() *Operation[nmv2.CreateCoreNetworkInput, nmv2.CreateCoreNetworkOutput] {
	return &Operation[nmv2.CreateCoreNetworkInput, nmv2.CreateCoreNetworkOutput]{
		Name:     "CreateCoreNetwork",
		Use:      "create-core-network",
		Usage:    "create a core network in a global network",
		Category: categoryCoreNetworks,
		Impact:   ImpactMedium,
		Select:   "CoreNetwork",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("description", "description of the core network"),
			documentFlag("policy-document", "initial policy document"),
			clientTokenFlag(),
			tagsFlag(),
		},
		Required: []string{"global-network-id"},
		Target:   "global-network-id",
		Build: func(b *Binder, in *nmv2.CreateCoreNetworkInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.Description = b.String("description")
			in.PolicyDocument = b.Document("policy-document")
			in.ClientToken = b.ClientToken()
			in.Tags = b.Tags()
		},
		Call: nm.API.CreateCoreNetwork,
	}
}

func getCoreNetwork() *Operation[nmv2.GetCoreNetworkInput, nmv2.GetCoreNetworkOutput] {
	return &Operation[nmv2.GetCoreNetworkInput, nmv2.GetCoreNetworkOutput]{
		Name:     "GetCoreNetwork",
		Use:      "get-core-network",
		Usage:    "describe a core network",
		Category: categoryCoreNetworks,
		Select:   "CoreNetwork",
		Flags: []cli.Flag{
			stringFlag("core-network-id", "ID of the core network"),
		},
		Required: []string{"core-network-id"},
		Build: func(b *Binder, in *nmv2.GetCoreNetworkInput) {
			in.CoreNetworkId = b.String("core-network-id")
		},
		Call: nm.API.GetCoreNetwork,
	}
}

func listCoreNetworks() *Operation[nmv2.ListCoreNetworksInput, nmv2.ListCoreNetworksOutput] {
	return &Operation[nmv2.ListCoreNetworksInput, nmv2.ListCoreNetworksOutput]{
		Name:     "ListCoreNetworks",
		Use:      "list-core-networks",
		Usage:    "list the core networks of the account",
		Category: categoryCoreNetworks,
		Select:   "CoreNetworks",
		Attrs:    []string{"CoreNetworkId,GlobalNetworkId,State,OwnerAccountId,Description"},
		Call:     nm.API.ListCoreNetworks,
		Paged:    true,
	}
}

func updateCoreNetwork() *Operation[nmv2.UpdateCoreNetworkInput, nmv2.UpdateCoreNetworkOutput] {
	return &Operation[nmv2.UpdateCoreNetworkInput, nmv2.UpdateCoreNetworkOutput]{
		Name:     "UpdateCoreNetwork",
		Use:      "update-core-network",
		Usage:    "update the description of a core network",
		Category: categoryCoreNetworks,
		Impact:   ImpactMedium,
		Select:   "CoreNetwork",
		Flags: []cli.Flag{
			stringFlag("core-network-id", "ID of the core network"),
			stringFlag("description", "description of the core network"),
		},
		Required: []string{"core-network-id"},
		Target:   "core-network-id",
		Build: func(b *Binder, in *nmv2.UpdateCoreNetworkInput) {
			in.CoreNetworkId = b.String("core-network-id")
			in.Description = b.String("description")
		},
		Call: nm.API.UpdateCoreNetwork,
	}
}

func deleteCoreNetwork() *Operation[nmv2.DeleteCoreNetworkInput, nmv2.DeleteCoreNetworkOutput] {
	return &Operation[nmv2.DeleteCoreNetworkInput, nmv2.DeleteCoreNetworkOutput]{
		Name:     "DeleteCoreNetwork",
		Use:      "delete-core-network",
		Usage:    "delete a core network",
		Category: categoryCoreNetworks,
		Impact:   ImpactHigh,
		Select:   "CoreNetwork",
		Flags: []cli.Flag{
			stringFlag("core-network-id", "ID of the core network"),
		},
		Required: []string{"core-network-id"},
		Target:   "core-network-id",
		Build: func(b *Binder, in *nmv2.DeleteCoreNetworkInput) {
			in.CoreNetworkId = b.String("core-network-id")
		},
		Call: nm.API.DeleteCoreNetwork,
	}
}

func coreNetworkCommands() []commander {
	return []commander{
		createCoreNetwork(),
		getCoreNetwork(),
		listCoreNetworks(),
		updateCoreNetwork(),
		deleteCoreNetwork(),
	}
}
