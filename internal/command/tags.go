// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	nmv2 "github.com/aws/aws-sdk-go-v2/service/networkmanager"
	"github.com/urfave/cli/v3"

	"github.com/nmctl/nmctl/internal/nm"
)

const categoryTags = "Tags"

func tagResource() *Operation[nmv2.TagResourceInput, nmv2.TagResourceOutput] {
	return &Operation[nmv2.TagResourceInput, nmv2.TagResourceOutput]{
		Name:     "TagResource",
		Use:      "tag-resource",
		Usage:    "add tags to a resource",
		Category: categoryTags,
		Impact:   ImpactMedium,
		Select:   "^resource-arn",
		Flags: []cli.Flag{
			stringFlag("resource-arn", "ARN of the resource"),
			tagsFlag(),
		},
		Required: []string{"resource-arn", "tag"},
		Target:   "resource-arn",
		Build: func(b *Binder, in *nmv2.TagResourceInput) {
			in.ResourceArn = b.String("resource-arn")
			in.Tags = b.Tags()
		},
		Call: nm.API.TagResource,
	}
}

func untagResource() *Operation[nmv2.UntagResourceInput, nmv2.UntagResourceOutput] {
	return &Operation[nmv2.UntagResourceInput, nmv2.UntagResourceOutput]{
		Name:     "UntagResource",
		Use:      "untag-resource",
		Usage:    "remove tags from a resource",
		Category: categoryTags,
		Impact:   ImpactHigh,
		Select:   "^resource-arn",
		Flags: []cli.Flag{
			stringFlag("resource-arn", "ARN of the resource"),
			stringsFlag("tag-keys", "keys of the tags to remove"),
		},
		Required: []string{"resource-arn", "tag-keys"},
		Target:   "resource-arn",
		Build: func(b *Binder, in *nmv2.UntagResourceInput) {
			in.ResourceArn = b.String("resource-arn")
			in.TagKeys = b.Strings("tag-keys")
		},
		Call: nm.API.UntagResource,
	}
}

func listTagsForResource() *Operation[nmv2.ListTagsForResourceInput, nmv2.ListTagsForResourceOutput] {
	return &Operation[nmv2.ListTagsForResourceInput, nmv2.ListTagsForResourceOutput]{
		Name:     "ListTagsForResource",
		Use:      "list-tags-for-resource",
		Usage:    "list the tags of a resource",
		Category: categoryTags,
		Select:   "TagList",
		Attrs:    []string{"Key,Value"},
		Flags: []cli.Flag{
			stringFlag("resource-arn", "ARN of the resource"),
		},
		Required: []string{"resource-arn"},
		Build: func(b *Binder, in *nmv2.ListTagsForResourceInput) {
			in.ResourceArn = b.String("resource-arn")
		},
		Call: nm.API.ListTagsForResource,
	}
}

func tagCommands() []commander {
	return []commander{
		tagResource(),
		untagResource(),
		listTagsForResource(),
	}
}
