// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/nm"
)

const (
	categoryTransitGateways  = "Transit gateways"
	categoryCustomerGateways = "Customer gateways"
)

func registerTransitGateway() *Operation[nmv2.RegisterTransitGatewayInput, nmv2.RegisterTransitGatewayOutput] {
	return &Operation[nmv2.RegisterTransitGatewayInput, nmv2.RegisterTransitGatewayOutput]{
		Name:     "RegisterTransitGateway",
		Use:      "register-transit-gateway",
		Usage:    "register a transit gateway in a global network",
		Category: categoryTransitGateways,
		Impact:   ImpactMedium,
		Select:   "TransitGatewayRegistration",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("transit-gateway-arn", "ARN of the transit gateway"),
		},
		Required: []string{"global-network-id", "transit-gateway-arn"},
		Target:   "transit-gateway-arn",
		Build: func(b *Binder, in *nmv2.RegisterTransitGatewayInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.TransitGatewayArn = b.String("transit-gateway-arn")
		},
		Call: nm.API.RegisterTransitGateway,
	}
}

func deregisterTransitGateway() *Operation[nmv2.DeregisterTransitGatewayInput, nmv2.DeregisterTransitGatewayOutput] {
	return &Operation[nmv2.DeregisterTransitGatewayInput, nmv2.DeregisterTransitGatewayOutput]{
		Name:     "DeregisterTransitGateway",
		Use:      "deregister-transit-gateway",
		Usage:    "deregister a transit gateway from a global network",
		Category: categoryTransitGateways,
		Impact:   ImpactHigh,
		Select:   "TransitGatewayRegistration",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("transit-gateway-arn", "ARN of the transit gateway"),
		},
		Required: []string{"global-network-id", "transit-gateway-arn"},
		Target:   "transit-gateway-arn",
		Build: func(b *Binder, in *nmv2.DeregisterTransitGatewayInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.TransitGatewayArn = b.String("transit-gateway-arn")
		},
		Call: nm.API.DeregisterTransitGateway,
	}
}

func getTransitGatewayRegistrations() *Operation[nmv2.GetTransitGatewayRegistrationsInput, nmv2.GetTransitGatewayRegistrationsOutput] {
	return &Operation[nmv2.GetTransitGatewayRegistrationsInput, nmv2.GetTransitGatewayRegistrationsOutput]{
		Name:     "GetTransitGatewayRegistrations",
		Use:      "get-transit-gateway-registrations",
		Usage:    "list the transit gateways registered in a global network",
		Category: categoryTransitGateways,
		Select:   "TransitGatewayRegistrations",
		Attrs:    []string{"TransitGatewayArn,State.Code:State"},
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringsFlag("transit-gateway-arns", "ARNs of the transit gateways"),
		},
		Required: []string{"global-network-id"},
		Build: func(b *Binder, in *nmv2.GetTransitGatewayRegistrationsInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.TransitGatewayArns = b.Strings("transit-gateway-arns")
		},
		Call:  nm.API.GetTransitGatewayRegistrations,
		Paged: true,
	}
}

func associateCustomerGateway() *Operation[nmv2.AssociateCustomerGatewayInput, nmv2.AssociateCustomerGatewayOutput] {
	return &Operation[nmv2.AssociateCustomerGatewayInput, nmv2.AssociateCustomerGatewayOutput]{
		Name:     "AssociateCustomerGateway",
		Use:      "associate-customer-gateway",
		Usage:    "associate a customer gateway with a device and optionally a link",
		Category: categoryCustomerGateways,
		Impact:   ImpactMedium,
		Select:   "CustomerGatewayAssociation",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("customer-gateway-arn", "ARN of the customer gateway"),
			stringFlag("device-id", "ID of the device"),
			stringFlag("link-id", "ID of the link"),
		},
		Required: []string{"global-network-id", "customer-gateway-arn", "device-id"},
		Target:   "customer-gateway-arn",
		Build: func(b *Binder, in *nmv2.AssociateCustomerGatewayInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.CustomerGatewayArn = b.String("customer-gateway-arn")
			in.DeviceId = b.String("device-id")
			in.LinkId = b.String("link-id")
		},
		Call: nm.API.AssociateCustomerGateway,
	}
}

func disassociateCustomerGateway() *Operation[nmv2.DisassociateCustomerGatewayInput, nmv2.DisassociateCustomerGatewayOutput] {
	return &Operation[nmv2.DisassociateCustomerGatewayInput, nmv2.DisassociateCustomerGatewayOutput]{
		Name:     "DisassociateCustomerGateway",
		Use:      "disassociate-customer-gateway",
		Usage:    "disassociate a customer gateway from a device and a link",
		Category: categoryCustomerGateways,
		Impact:   ImpactHigh,
		Select:   "CustomerGatewayAssociation",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("customer-gateway-arn", "ARN of the customer gateway"),
		},
		Required: []string{"global-network-id", "customer-gateway-arn"},
		Target:   "customer-gateway-arn",
		Build: func(b *Binder, in *nmv2.DisassociateCustomerGatewayInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.CustomerGatewayArn = b.String("customer-gateway-arn")
		},
		Call: nm.API.DisassociateCustomerGateway,
	}
}

func getCustomerGatewayAssociations() *Operation[nmv2.GetCustomerGatewayAssociationsInput, nmv2.GetCustomerGatewayAssociationsOutput] {
	return &Operation[nmv2.GetCustomerGatewayAssociationsInput, nmv2.GetCustomerGatewayAssociationsOutput]{
		Name:     "GetCustomerGatewayAssociations",
		Use:      "get-customer-gateway-associations",
		Usage:    "list the customer gateway associations of a global network",
		Category: categoryCustomerGateways,
		Select:   "CustomerGatewayAssociations",
		Attrs:    []string{"CustomerGatewayArn,DeviceId,LinkId,State"},
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringsFlag("customer-gateway-arns", "ARNs of the customer gateways"),
		},
		Required: []string{"global-network-id"},
		Build: func(b *Binder, in *nmv2.GetCustomerGatewayAssociationsInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.CustomerGatewayArns = b.Strings("customer-gateway-arns")
		},
		Call:  nm.API.GetCustomerGatewayAssociations,
		Paged: true,
	}
}

func transitGatewayCommands() []commander {
	return []commander{
		registerTransitGateway(),
		deregisterTransitGateway(),
		getTransitGatewayRegistrations(),
	}
}

func customerGatewayCommands() []commander {
	return []commander{
		associateCustomerGateway(),
		disassociateCustomerGateway(),
		getCustomerGatewayAssociations(),
	}
}
