/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/didexchange"
	"github.com/edgeid-labs/aries-transaction-go/pkg/store/connection"
)

func TestCheckForExistingConnection(t *testing.T) {
	invitation := &didexchange.Invitation{
		ServiceEndpoint: "https://agent.example.com",
		RecipientKeys:   []string{"recipient-key"},
		RoutingKeys:     []string{"routing-key"},
	}

	base := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)

	newConn := func(id string, createdAt time.Time) *connection.Record {
		return &connection.Record{
			ConnectionID:    id,
			State:           connection.StateConnected,
			ServiceEndPoint: "https://agent.example.com",
			Verkey:          []string{"routing-key"},
			CreatedAt:       createdAt,
		}
	}

	t.Run("no connections", func(t *testing.T) {
		require.Nil(t, CheckForExistingConnection(nil, invitation, false))
	})

	t.Run("nil invitation", func(t *testing.T) {
		require.Nil(t, CheckForExistingConnection([]*connection.Record{newConn("conn-1", base)}, nil, false))
	})

	t.Run("single match", func(t *testing.T) {
		match := CheckForExistingConnection([]*connection.Record{newConn("conn-1", base)}, invitation, false)
		require.NotNil(t, match)
		require.Equal(t, "conn-1", match.ConnectionID)
	})

	t.Run("latest creation timestamp wins", func(t *testing.T) {
		connections := []*connection.Record{
			newConn("conn-old", base),
			newConn("conn-newest", base.Add(2*time.Hour)),
			newConn("conn-middle", base.Add(time.Hour)),
		}

		match := CheckForExistingConnection(connections, invitation, false)
		require.NotNil(t, match)
		require.Equal(t, "conn-newest", match.ConnectionID)
	})

	t.Run("endpoint mismatch", func(t *testing.T) {
		conn := newConn("conn-1", base)
		conn.ServiceEndPoint = "https://other.example.com"

		require.Nil(t, CheckForExistingConnection([]*connection.Record{conn}, invitation, false))
	})

	t.Run("empty endpoint", func(t *testing.T) {
		conn := newConn("conn-1", base)
		conn.ServiceEndPoint = ""

		inv := &didexchange.Invitation{RoutingKeys: []string{"routing-key"}}

		require.Nil(t, CheckForExistingConnection([]*connection.Record{conn}, inv, false))
	})

	t.Run("not connected", func(t *testing.T) {
		conn := newConn("conn-1", base)
		conn.State = connection.StateInvited

		require.Nil(t, CheckForExistingConnection([]*connection.Record{conn}, invitation, false))
	})

	t.Run("missing verkey", func(t *testing.T) {
		conn := newConn("conn-1", base)
		conn.Verkey = nil

		require.Nil(t, CheckForExistingConnection([]*connection.Record{conn}, invitation, false))
	})

	t.Run("verkey does not match routing keys", func(t *testing.T) {
		conn := newConn("conn-1", base)
		conn.Verkey = []string{"another-key"}

		require.Nil(t, CheckForExistingConnection([]*connection.Record{conn}, invitation, false))
		require.Nil(t, CheckForExistingConnection([]*connection.Record{conn}, invitation, true))
	})

	t.Run("verkey order is significant", func(t *testing.T) {
		inv := &didexchange.Invitation{
			ServiceEndpoint: "https://agent.example.com",
			RoutingKeys:     []string{"key-1", "key-2"},
		}

		conn := newConn("conn-1", base)
		conn.Verkey = []string{"key-2", "key-1"}

		require.Nil(t, CheckForExistingConnection([]*connection.Record{conn}, inv, false))
	})

	t.Run("awaitable requires recipient keys tag", func(t *testing.T) {
		untagged := newConn("conn-untagged", base)

		tagged := newConn("conn-tagged", base)
		tagged.SetTag(connection.TagRecipientKeys, `["recipient-key"]`)

		require.Nil(t, CheckForExistingConnection([]*connection.Record{untagged}, invitation, true))

		match := CheckForExistingConnection([]*connection.Record{untagged, tagged}, invitation, true)
		require.NotNil(t, match)
		require.Equal(t, "conn-tagged", match.ConnectionID)
	})

	t.Run("awaitable rejects stale fingerprint", func(t *testing.T) {
		conn := newConn("conn-1", base)
		conn.SetTag(connection.TagRecipientKeys, `["stale-key"]`)

		require.Nil(t, CheckForExistingConnection([]*connection.Record{conn}, invitation, true))
	})
}
