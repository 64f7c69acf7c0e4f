// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/nm"
)

const categorySites = "Sites"

func locationFlags() []cli.Flag {
	return []cli.Flag{
		stringFlag("location-address", "physical address"),
		stringFlag("location-latitude", "latitude"),
		stringFlag("location-longitude", "longitude"),
	}
}

func createSite() *Operation[nmv2.CreateSiteInput, nmv2.CreateSiteOutput] {
	return &Operation[nmv2.CreateSiteInput, nmv2.CreateSiteOutput]{
		Name:     "CreateSite",
		Use:      "create-site",
		Usage:    "create a site in a global network",
		Category: categorySites,
		Impact:   ImpactMedium,
		Select:   "Site",
		Flags: append([]cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("description", "description of the site"),
			tagsFlag(),
		}, locationFlags()...),
		Required: []string{"global-network-id"},
		Target:   "global-network-id",
		Build: func(b *Binder, in *nmv2.CreateSiteInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.Description = b.String("description")
			in.Location = b.Location()
			in.Tags = b.Tags()
		},
		Call: nm.API.CreateSite,
	}
}

func getSites() *Operation[nmv2.GetSitesInput, nmv2.GetSitesOutput] {
	return &Operation[nmv2.GetSitesInput, nmv2.GetSitesOutput]{
		Name:     "GetSites",
		Use:      "get-sites",
		Usage:    "list the sites of a global network",
		Category: categorySites,
		Select:   "Sites",
		Attrs:    []string{"SiteId,State,Location.Address:Address,Description,Tags.Name:Name"},
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringsFlag("site-ids", "IDs of the sites"),
		},
		Required: []string{"global-network-id"},
		Build: func(b *Binder, in *nmv2.GetSitesInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.SiteIds = b.Strings("site-ids")
		},
		Call:  nm.API.GetSites,
		Paged: true,
	}
}

func updateSite() *Operation[nmv2.UpdateSiteInput, nmv2.UpdateSiteOutput] {
	return &Operation[nmv2.UpdateSiteInput, nmv2.UpdateSiteOutput]{
		Name:     "UpdateSite",
		Use:      "update-site",
		Usage:    "update the details of a site",
		Category: categorySites,
		Impact:   ImpactMedium,
		Select:   "Site",
		Flags: append([]cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("site-id", "ID of the site"),
			stringFlag("description", "description of the site"),
		}, locationFlags()...),
		Required: []string{"global-network-id", "site-id"},
		Target:   "site-id",
		Build: func(b *Binder, in *nmv2.UpdateSiteInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.SiteId = b.String("site-id")
			in.Description = b.String("description")
			in.Location = b.Location()
		},
		Call: nm.API.UpdateSite,
	}
}

func deleteSite() *Operation[nmv2.DeleteSiteInput, nmv2.DeleteSiteOutput] {
	return &Operation[nmv2.DeleteSiteInput, nmv2.DeleteSiteOutput]{
		Name:     "DeleteSite",
		Use:      "delete-site",
		Usage:    "delete a site",
		Category: categorySites,
		Impact:   ImpactHigh,
		Select:   "Site",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("site-id", "ID of the site"),
		},
		Required: []string{"global-network-id", "site-id"},
		Target:   "site-id",
		Build: func(b *Binder, in *nmv2.DeleteSiteInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.SiteId = b.String("site-id")
		},
		Call: nm.API.DeleteSite,
	}
}

func siteCommands() []commander {
	return []commander{
		createSite(),
		getSites(),
		updateSite(),
		deleteSite(),
	}
}
