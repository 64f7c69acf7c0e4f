// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/nm"
)

const categoryGlobalNetworks = "Global networks"

func createGlobalNetwork() *Operation[nmv2.CreateGlobalNetworkInput, nmv2.CreateGlobalNetworkOutput] {
	return &Operation[nmv2.CreateGlobalNetworkInput, nmv2.CreateGlobalNetworkOutput]{
		Name:     "CreateGlobalNetwork",
		Use:      "create-global-network",
		Usage:    "create a global network",
		Category: categoryGlobalNetworks,
		Impact:   ImpactMedium,
		Select:   "GlobalNetwork",
		Flags: []cli.Flag{
			stringFlag("description", "description of the global network"),
			tagsFlag(),
		},
		Build: func(b *Binder, in *nmv2.CreateGlobalNetworkInput) {
			in.Description = b.String("description")
			in.Tags = b.Tags()
		},
		Call: nm.API.CreateGlobalNetwork,
	}
}

func describeGlobalNetworks() *Operation[nmv2.DescribeGlobalNetworksInput, nmv2.DescribeGlobalNetworksOutput] {
	return &Operation[nmv2.DescribeGlobalNetworksInput, nmv2.DescribeGlobalNetworksOutput]{
		Name:     "DescribeGlobalNetworks",
		Use:      "describe-global-networks",
		Usage:    "list global networks",
		Category: categoryGlobalNetworks,
		Select:   "GlobalNetworks",
		Attrs:    []string{"GlobalNetworkId,State,CreatedAt,Description,Tags.Name:Name"},
		Flags: []cli.Flag{
			stringsFlag("global-network-ids", "IDs of the global networks"),
		},
		Build: func(b *Binder, in *nmv2.DescribeGlobalNetworksInput) {
			in.GlobalNetworkIds = b.Strings("global-network-ids")
		},
		Call:  nm.API.DescribeGlobalNetworks,
		Paged: true,
	}
}

func updateGlobalNetwork() *Operation[nmv2.UpdateGlobalNetworkInput, nmv2.UpdateGlobalNetworkOutput] {
	return &Operation[nmv2.UpdateGlobalNetworkInput, nmv2.UpdateGlobalNetworkOutput]{
		Name:     "UpdateGlobalNetwork",
		Use:      "update-global-network",
		Usage:    "update a global network",
		Category: categoryGlobalNetworks,
		Impact:   ImpactMedium,
		Select:   "GlobalNetwork",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("description", "description of the global network"),
		},
		Required: []string{"global-network-id"},
		Target:   "global-network-id",
		Build: func(b *Binder, in *nmv2.UpdateGlobalNetworkInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.Description = b.String("description")
		},
		Call: nm.API.UpdateGlobalNetwork,
	}
}

func deleteGlobalNetwork() *Operation[nmv2.DeleteGlobalNetworkInput, nmv2.DeleteGlobalNetworkOutput] {
	return &Operation[nmv2.DeleteGlobalNetworkInput, nmv2.DeleteGlobalNetworkOutput]{
		Name:     "DeleteGlobalNetwork",
		Use:      "delete-global-network",
		Usage:    "delete a global network",
		Category: categoryGlobalNetworks,
		Impact:   ImpactHigh,
		Select:   "GlobalNetwork",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
		},
		Required: []string{"global-network-id"},
		Target:   "global-network-id",
		Build: func(b *Binder, in *nmv2.DeleteGlobalNetworkInput) {
			in.GlobalNetworkId = b.String("global-network-id")
		},
		Call: nm.API.DeleteGlobalNetwork,
	}
}

func globalNetworkCommands() []commander {
	return []commander{
		createGlobalNetwork(),
		describeGlobalNetworks(),
		updateGlobalNetwork(),
		deleteGlobalNetwork(),
	}
}
