// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/aws/aws-sdk-go-v2/service/networkmanager/types"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/nm"
)

const categoryRoutes = "Routes"

func getNetworkRoutes() *Operation[nmv2.GetNetworkRoutesInput, nmv2.GetNetworkRoutesOutput] {
	return &Operation[nmv2.GetNetworkRoutesInput, nmv2.GetNetworkRoutesOutput]{
		Name:     "GetNetworkRoutes",
		Use:      "get-network-routes",
		Usage:    "list the routes of a route table",
		Category: categoryRoutes,
		Select:   "NetworkRoutes",
		Attrs:    []string{"DestinationCidrBlock:Destination,Type,State,PrefixListId"},
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("transit-gateway-route-table-arn", "ARN of the transit gateway route table"),
			stringFlag("segment-edge-core-network-id", "ID of the core network of the segment edge"),
			stringFlag("segment-edge-location", "Region of the segment edge"),
			stringFlag("segment-edge-segment-name", "name of the segment"),
			stringsFlag("destination-filters", "filters as name=value"),
			stringsFlag("exact-cidr-matches", "exact CIDR blocks"),
			stringsFlag("longest-prefix-matches", "most specific CIDR blocks"),
			stringsFlag("prefix-list-ids", "IDs of the prefix lists"),
			stringsFlag("subnet-of-matches", "routes within these CIDR blocks"),
			stringsFlag("supernet-of-matches", "routes containing these CIDR blocks"),
			enumsFlag("states", "route states", types.RouteState("").Values()),
			enumsFlag("types", "route types", types.RouteType("").Values()),
		},
		Required: []string{"global-network-id"},
		Build: func(b *Binder, in *nmv2.GetNetworkRoutesInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.RouteTableIdentifier = routeTableIdentifier(b)
			in.DestinationFilters = b.Pairs("destination-filters")
			in.ExactCidrMatches = b.Strings("exact-cidr-matches")
			in.LongestPrefixMatches = b.Strings("longest-prefix-matches")
			in.PrefixListIds = b.Strings("prefix-list-ids")
			in.SubnetOfMatches = b.Strings("subnet-of-matches")
			in.SupernetOfMatches = b.Strings("supernet-of-matches")
			in.States = bindEnums[types.RouteState](b, "states")
			in.Types = bindEnums[types.RouteType](b, "types")
		},
		Call: nm.API.GetNetworkRoutes,
	}
}

// routeTableIdentifier names either a transit gateway route table or a core
// network segment edge.
func routeTableIdentifier(b *Binder) *types.RouteTableIdentifier {
	id := &types.RouteTableIdentifier{
		TransitGatewayRouteTableArn: b.String("transit-gateway-route-table-arn"),
	}

	edge := types.CoreNetworkSegmentEdgeIdentifier{
		CoreNetworkId: b.String("segment-edge-core-network-id"),
		EdgeLocation:  b.String("segment-edge-location"),
		SegmentName:   b.String("segment-edge-segment-name"),
	}
	if edge.CoreNetworkId != nil || edge.EdgeLocation != nil || edge.SegmentName != nil {
		id.CoreNetworkSegmentEdge = &edge
	}

	if id.TransitGatewayRouteTableArn == nil && id.CoreNetworkSegmentEdge == nil {
		b.Missing("--transit-gateway-route-table-arn or --segment-edge-*")
		return nil
	}
	return id
}

func routeCommands() []commander {
	return []commander{
		getNetworkRoutes(),
	}
}
