// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/nm"
)

const categoryDevices = "Devices"

// deviceFlags are the device properties shared by create and update.
func deviceFlags() []cli.Flag {
	return append([]cli.Flag{
		stringFlag("global-network-id", "ID of the global network"),
		stringFlag("aws-location-subnet-arn", "ARN of the subnet the device is located in"),
		stringFlag("aws-location-zone", "Zone the device is located in"),
		stringFlag("description", "description of the device"),
		stringFlag("model", "model of the device"),
		stringFlag("serial-number", "serial number of the device"),
		stringFlag("site-id", "ID of the site"),
		stringFlag("type", "type of the device"),
		stringFlag("vendor", "vendor of the device"),
	}, locationFlags()...)
}

func createDevice() *Operation[nmv2.CreateDeviceInput, nmv2.CreateDeviceOutput] {
	return &Operation[nmv2.CreateDeviceInput, nmv2.CreateDeviceOutput]{
		Name:     "CreateDevice",
		Use:      "create-device",
		Usage:    "create a device in a global network",
		Category: categoryDevices,
		Impact:   ImpactMedium,
		Select:   "Device",
		Flags:    append(deviceFlags(), tagsFlag()),
		Required: []string{"global-network-id"},
		Target:   "global-network-id",
		Build: func(b *Binder, in *nmv2.CreateDeviceInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.AWSLocation = b.AWSLocation()
			in.Description = b.String("description")
			in.Location = b.Location()
			in.Model = b.String("model")
			in.SerialNumber = b.String("serial-number")
			in.SiteId = b.String("site-id")
			in.Type = b.String("type")
			in.Vendor = b.String("vendor")
			in.Tags = b.Tags()
		},
		Call: nm.API.CreateDevice,
	}
}

func getDevices() *Operation[nmv2.GetDevicesInput, nmv2.GetDevicesOutput] {
	return &Operation[nmv2.GetDevicesInput, nmv2.GetDevicesOutput]{
		Name:     "GetDevices",
		Use:      "get-devices",
		Usage:    "list the devices of a global network",
		Category: categoryDevices,
		Select:   "Devices",
		Attrs:    []string{"DeviceId,SiteId,State,Type,Vendor,Model,Tags.Name:Name"},
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringsFlag("device-ids", "IDs of the devices"),
			stringFlag("site-id", "ID of the site"),
		},
		Required: []string{"global-network-id"},
		Build: func(b *Binder, in *nmv2.GetDevicesInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.DeviceIds = b.Strings("device-ids")
			in.SiteId = b.String("site-id")
		},
		Call:  nm.API.GetDevices,
		Paged: true,
		Augment: func(in *nmv2.GetDevicesInput, serverSide map[string]string) error {
			for key, value := range serverSide {
				switch key {
				case "SiteId":
					in.SiteId = &value
				default:
					return unknownFilter(key, "_SiteId")
				}
			}
			return nil
		},
	}
}

func updateDevice() *Operation[nmv2.UpdateDeviceInput, nmv2.UpdateDeviceOutput] {
	return &Operation[nmv2.UpdateDeviceInput, nmv2.UpdateDeviceOutput]{
		Name:     "UpdateDevice",
		Use:      "update-device",
		Usage:    "update the details of a device",
		Category: categoryDevices,
		Impact:   ImpactMedium,
		Select:   "Device",
		Flags:    append(deviceFlags(), stringFlag("device-id", "ID of the device")),
		Required: []string{"global-network-id", "device-id"},
		Target:   "device-id",
		Build: func(b *Binder, in *nmv2.UpdateDeviceInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.DeviceId = b.String("device-id")
			in.AWSLocation = b.AWSLocation()
			in.Description = b.String("description")
			in.Location = b.Location()
			in.Model = b.String("model")
			in.SerialNumber = b.String("serial-number")
			in.SiteId = b.String("site-id")
			in.Type = b.String("type")
			in.Vendor = b.String("vendor")
		},
		Call: nm.API.UpdateDevice,
	}
}

func deleteDevice() *Operation[nmv2.DeleteDeviceInput, nmv2.DeleteDeviceOutput] {
	return &Operation[nmv2.DeleteDeviceInput, nmv2.DeleteDeviceOutput]{
		Name:     "DeleteDevice",
		Use:      "delete-device",
		Usage:    "delete a device",
		Category: categoryDevices,
		Impact:   ImpactHigh,
		Select:   "Device",
		Flags: []cli.Flag{
			stringFlag("global-network-id", "ID of the global network"),
			stringFlag("device-id", "ID of the device"),
		},
		Required: []string{"global-network-id", "device-id"},
		Target:   "device-id",
		Build: func(b *Binder, in *nmv2.DeleteDeviceInput) {
			in.GlobalNetworkId = b.String("global-network-id")
			in.DeviceId = b.String("device-id")
		},
		Call: nm.API.DeleteDevice,
	}
}

func deviceCommands() []commander {
	return []commander{
		createDevice(),
		getDevices(),
		updateDevice(),
		deleteDevice(),
	}
}
