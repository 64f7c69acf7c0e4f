// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects items of a Network Manager response.
//
// A --filter value is a comma separated list of key-operator-target
// expressions. All of them must match for an item to be kept. Operators:
//
//   - = : exact match
//   - ~ : case insensitive match
//   - ^ : prefix
//   - < : less than (numeric when both sides are numbers)
//   - > : greater than
//   - @ : contains, substring for strings and membership for lists
//   - / : regular expression
//
// Any operator may be negated with a leading !, e.g. State!=DELETING.
//
// Keys are matched against the output key or the path of an attr. A key with
// a leading underscore is a server-side filter. It is ignored here and bound
// into the request by commands whose API can filter, for example
//
//	nmctl list-attachments --core-network-id core-network-0123 \
//	  --filter _State=PENDING_ATTACHMENT_ACCEPTANCE
//
// Set NMCTL_FILTER_DELIM to split on something other than a comma.
package filters
