// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/nm"
)

const categoryLinks = "Links"

func bandwidthFlags() []cli.Flag {
	return []cli.Flag{
		int32Flag("bandwidth-download-speed", "download speed in Mbps"),
		int32Flag("bandwidth-upload-speed", "upload speed in Mbps"),
	}
}

// linkAssociationFlags identify a link on a device.
func linkAssociationFlags() []cli.Flag {
	return []cli.Flag{
		stringFlag("global-network-id", "ID of the global network"),
		stringFlag("device-id", "ID of the device"),
		stringFlag("link-id", "ID of the link"),
	}
}

func createLink() *Operation[nmv2.CreateLinkInput, nmv2.CreateLinkOutput] {
	return &Operation[nmv2.CreateLinkInput, nmv2.CreateLinkOutput]{
		Name:     "CreateLink",
		Use:      "create-link",
		Usage:    "create a link for a site",
		Category: categoryLinks,
		Impact:   ImpactMedium,
		Select:   "Link",
		Flags: append([]cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("site-id", "ID of the site"),
			stringFlag("description", "description of the link"),
			stringFlag("provider", "provider of the link"),
			stringFlag("type", "type of the link"),
			tagsFlag(),
		}, bandwidthFlags()...),
		Required: []string{"global-network-id", "site-id", "bandwidth-download-speed", "bandwidth-upload-speed"},
		Target:   "site-id",
		Build: func(b *Binder, in *nmv2.CreateLinkInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.SiteId = b.String("site-id")
			in.Bandwidth = b.Bandwidth()
			in.Description = b.String("description")
			in.Provider = b.String("provider")
			in.Type = b.String("type")
			in.Tags = b.Tags()
		},
		Call: nm.API.CreateLink,
	}
}

func getLinks() *Operation[nmv2.GetLinksInput, nmv2.GetLinksOutput] {
	return &Operation[nmv2.GetLinksInput, nmv2.GetLinksOutput]{
		Name:     "GetLinks",
		Use:      "get-links",
		Usage:    "list the links of a global network",
		Category: categoryLinks,
		Select:   "Links",
		Attrs:    []string{"LinkId,SiteId,State,Type,Provider,Bandwidth.DownloadSpeed:Down,Bandwidth.UploadSpeed:Up"},
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringsFlag("link-ids", "IDs of the links"),
			stringFlag("site-id", "ID of the site"),
			stringFlag("provider", "link provider"),
			stringFlag("type", "link type"),
		},
		Required: []string{"global-network-id"},
		Build: func(b *Binder, in *nmv2.GetLinksInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.LinkIds = b.Strings("link-ids")
			in.SiteId = b.String("site-id")
			in.Provider = b.String("provider")
			in.Type = b.String("type")
		},
		Call:  nm.API.GetLinks,
		Paged: true,
		Augment: func(in *nmv2.GetLinksInput, serverSide map[string]string) error {
			for key, value := range serverSide {
				switch key {
				case "SiteId":
					in.SiteId = &value
				case "Provider":
					in.Provider = &value
				case "Type":
					in.Type = &value
				default:
					return unknownFilter(key, "_SiteId", "_Provider", "_Type")
				}
			}
			return nil
		},
	}
}

func updateLink() *Operation[nmv2.UpdateLinkInput, nmv2.UpdateLinkOutput] {
	return &Operation[nmv2.UpdateLinkInput, nmv2.UpdateLinkOutput]{
		Name:     "UpdateLink",
		Use:      "update-link",
		Usage:    "update the details of a link",
		Category: categoryLinks,
		Impact:   ImpactMedium,
		Select:   "Link",
		Flags: append([]cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("link-id", "ID of the link"),
			stringFlag("description", "description of the link"),
			stringFlag("provider", "provider of the link"),
			stringFlag("type", "type of the link"),
		}, bandwidthFlags()...),
		Required: []string{"global-network-id", "link-id"},
		Target:   "link-id",
		Build: func(b *Binder, in *nmv2.UpdateLinkInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.LinkId = b.String("link-id")
			in.Bandwidth = b.Bandwidth()
			in.Description = b.String("description")
			in.Provider = b.String("provider")
			in.Type = b.String("type")
		},
		Call: nm.API.UpdateLink,
	}
}

func deleteLink() *Operation[nmv2.DeleteLinkInput, nmv2.DeleteLinkOutput] {
	return &Operation[nmv2.DeleteLinkInput, nmv2.DeleteLinkOutput]{
		Name:     "DeleteLink",
		Use:      "delete-link",
		Usage:    "delete a link",
		Category: categoryLinks,
		Impact:   ImpactHigh,
		Select:   "Link",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("link-id", "ID of the link"),
		},
		Required: []string{"global-network-id", "link-id"},
		Target:   "link-id",
		Build: func(b *Binder, in *nmv2.DeleteLinkInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.LinkId = b.String("link-id")
		},
		Call: nm.API.DeleteLink,
	}
}

func associateLink() *Operation[nmv2.AssociateLinkInput, nmv2.AssociateLinkOutput] {
	return &Operation[nmv2.AssociateLinkInput, nmv2.AssociateLinkOutput]{
		Name:     "AssociateLink",
		Use:      "associate-link",
		Usage:    "associate a link with a device",
		Category: categoryLinks,
		Impact:   ImpactMedium,
		Select:   "LinkAssociation",
		Flags:    linkAssociationFlags(),
		Required: []string{"global-network-id", "device-id", "link-id"},
		Target:   "link-id",
		Build: func(b *Binder, in *nmv2.AssociateLinkInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.DeviceId = b.String("device-id")
			in.LinkId = b.String("link-id")
		},
		Call: nm.API.AssociateLink,
	}
}

func disassociateLink() *Operation[nmv2.DisassociateLinkInput, nmv2.DisassociateLinkOutput] {
	return &Operation[nmv2.DisassociateLinkInput, nmv2.DisassociateLinkOutput]{
		Name:     "DisassociateLink",
		Use:      "disassociate-link",
		Usage:    "disassociate a link from a device",
		Category: categoryLinks,
		Impact:   ImpactHigh,
		Select:   "LinkAssociation",
		Flags:    linkAssociationFlags(),
		Required: []string{"global-network-id", "device-id", "link-id"},
		Target:   "link-id",
		Build: func(b *Binder, in *nmv2.DisassociateLinkInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.DeviceId = b.String("device-id")
			in.LinkId = b.String("link-id")
		},
		Call: nm.API.DisassociateLink,
	}
}

func getLinkAssociations() *Operation[nmv2.GetLinkAssociationsInput, nmv2.GetLinkAssociationsOutput] {
	return &Operation[nmv2.GetLinkAssociationsInput, nmv2.GetLinkAssociationsOutput]{
		Name:     "GetLinkAssociations",
		Use:      "get-link-associations",
		Usage:    "list the link associations of a global network",
		Category: categoryLinks,
		Select:   "LinkAssociations",
		Attrs:    []string{"LinkId,DeviceId,LinkAssociationState:State"},
		Flags:    linkAssociationFlags(),
		Required: []string{"global-network-id"},
		Build: func(b *Binder, in *nmv2.GetLinkAssociationsInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.DeviceId = b.String("device-id")
			in.LinkId = b.String("link-id")
		},
		Call:  nm.API.GetLinkAssociations,
		Paged: true,
		Augment: func(in *nmv2.GetLinkAssociationsInput, serverSide map[string]string) error {
			for key, value := range serverSide {
				switch key {
				case "DeviceId":
					in.DeviceId = &value
				case "LinkId":
					in.LinkId = &value
				default:
					return unknownFilter(key, "_DeviceId", "_LinkId")
				}
			}
			return nil
		},
	}
}

func linkCommands() []commander {
	return []commander{
		createLink(),
		getLinks(),
		updateLink(),
		deleteLink(),
		associateLink(),
		disassociateLink(),
		getLinkAssociations(),
	}
}
