/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didexchange

const (
	// CommunityDID is the DID used in legacy DID-scheme message type URIs.
	CommunityDID = "did:sov:BzCbsNYhMrjHiqZDTUASHg"

	// InvitationMsgType defines the connection invitation message type.
	InvitationMsgType = CommunityDID + ";spec/connections/1.0/invitation"
)

// Invitation model
//
// Invitation defines the DID exchange invitation message
// https://github.com/hyperledger/aries-rfcs/tree/master/features/0023-did-exchange#0-invitation-to-exchange
type Invitation struct {
	// the ID of the connection invitation
	ID string `json:"@id,omitempty"`

	// the Type of the connection invitation
	Type string `json:"@type,omitempty"`

	// the Label of the connection invitation
	Label string `json:"label,omitempty"`

	// the Image URL of the connection invitation
	ImageURL string `json:"imageUrl,omitempty"`

	// the Service endpoint of the connection invitation
	ServiceEndpoint string `json:"serviceEndpoint,omitempty"`

	// the RecipientKeys for the connection invitation
	RecipientKeys []string `json:"recipientKeys,omitempty"`

	// the RoutingKeys of the connection invitation
	RoutingKeys []string `json:"routingKeys,omitempty"`
}

// InvitationConfig customizes creation of a connection invitation.
type InvitationConfig struct {
	// Label to attach to the invitation.
	Label string

	// AutoAccept completes the connection handshake without a client action.
	AutoAccept bool

	// MultiParty allows the invitation to be accepted by more than one party.
	MultiParty bool
}
