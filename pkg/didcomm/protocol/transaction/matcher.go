/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"encoding/json"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/didexchange"
	"github.com/edgeid-labs/aries-transaction-go/pkg/store/connection"
)

// CheckForExistingConnection returns the most recently created connection
// that can be reused for the given invitation instead of establishing a new
// one, or nil when no candidate matches.
//
// A candidate must point at the invitation's service endpoint, be in the
// connected state, and carry an endpoint verkey equal to the invitation's
// routing keys. In awaitable mode the connection must additionally carry a
// recipient-keys tag equal to the invitation's recipient keys, which
// disambiguates concurrently pending connections to the same endpoint.
func CheckForExistingConnection(connections []*connection.Record,
	invitation *didexchange.Invitation, awaitable bool) *connection.Record {
	if invitation == nil {
		return nil
	}

	var fingerprint string

	if awaitable {
		bytes, err := json.Marshal(invitation.RecipientKeys)
		if err != nil {
			return nil
		}

		fingerprint = string(bytes)
	}

	var match *connection.Record

	for _, candidate := range connections {
		if candidate.ServiceEndPoint == "" ||
			candidate.ServiceEndPoint != invitation.ServiceEndpoint ||
			candidate.State != connection.StateConnected ||
			len(candidate.Verkey) == 0 {
			continue
		}

		if !keysEqual(candidate.Verkey, invitation.RoutingKeys) {
			continue
		}

		if awaitable && candidate.GetTag(connection.TagRecipientKeys) != fingerprint {
			continue
		}

		if match == nil || candidate.CreatedAt.After(match.CreatedAt) {
			match = candidate
		}
	}

	return match
}

// keysEqual reports element-wise, order-sensitive equality of two key
// sequences.
func keysEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
