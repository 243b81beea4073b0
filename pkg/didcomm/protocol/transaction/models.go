/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/didexchange"
)

// Message type URIs for the transaction protocol. Each logical message is
// recognized under two transport families, a DID-based scheme and an
// HTTPS-based scheme.
const (
	// SpecTransaction is the DID-scheme type URI prefix.
	SpecTransaction = didexchange.CommunityDID + ";spec/transaction/1.0/"

	// SpecTransactionHTTPS is the HTTPS-scheme type URI prefix.
	SpecTransactionHTTPS = "https://didcomm.org/transaction/1.0/"

	// OfferMsgType defines the transaction offer message type.
	OfferMsgType = SpecTransaction + "offer"
	// OfferMsgTypeHTTPS defines the transaction offer message type (HTTPS
	// scheme). Offers are implicit in the transaction URL here, so neither
	// offer type is ever emitted; both are declared to cover the wire
	// contract for counterparties that do send them.
	OfferMsgTypeHTTPS = SpecTransactionHTTPS + "offer"

	// ResponseMsgType defines the transaction response message type.
	ResponseMsgType = SpecTransaction + "response"
	// ResponseMsgTypeHTTPS defines the transaction response message type (HTTPS scheme).
	ResponseMsgTypeHTTPS = SpecTransactionHTTPS + "response"

	// ErrorMsgType defines the transaction error message type.
	ErrorMsgType = SpecTransaction + "error"
	// ErrorMsgTypeHTTPS defines the transaction error message type (HTTPS scheme).
	ErrorMsgTypeHTTPS = SpecTransactionHTTPS + "error"
)

// OfferMessage advertises a transaction to a counterparty.
type OfferMessage struct {
	ID          string `json:"@id,omitempty"`
	Type        string `json:"@type,omitempty"`
	Comment     string `json:"comment,omitempty"`
	Transaction string `json:"transaction,omitempty"`
}

// ResponseMessage acknowledges a transaction offer and triggers processing
// on the receiving agent. Transaction carries the transaction id being
// acknowledged.
type ResponseMessage struct {
	ID          string `json:"@id,omitempty"`
	Type        string `json:"@type,omitempty"`
	Comment     string `json:"comment,omitempty"`
	Transaction string `json:"transaction,omitempty"`
}

// ErrorMessage reports that a transaction could not be fired, typically
// because it was already consumed.
type ErrorMessage struct {
	ID          string `json:"@id,omitempty"`
	Type        string `json:"@type,omitempty"`
	Comment     string `json:"comment,omitempty"`
	Transaction string `json:"transaction,omitempty"`
}

// NewOfferMessage returns an offer message for the given transaction id.
func NewOfferMessage(transactionID, comment string) *OfferMessage {
	return &OfferMessage{
		ID:          uuid.New().String(),
		Type:        OfferMsgType,
		Comment:     comment,
		Transaction: transactionID,
	}
}

// NewResponseMessage returns a response message acknowledging the given
// transaction id.
func NewResponseMessage(transactionID string) *ResponseMessage {
	return &ResponseMessage{
		ID:          uuid.New().String(),
		Type:        ResponseMsgType,
		Transaction: transactionID,
	}
}

// NewErrorMessage returns an error message referencing the given
// transaction id.
func NewErrorMessage(transactionID, comment string) *ErrorMessage {
	return &ErrorMessage{
		ID:          uuid.New().String(),
		Type:        ErrorMsgType,
		Comment:     comment,
		Transaction: transactionID,
	}
}

// CredentialOfferMessage is the credential offer produced by the credential
// collaborator when a transaction fires. The attachment content is opaque to
// this protocol.
type CredentialOfferMessage struct {
	ID           string          `json:"@id,omitempty"`
	Type         string          `json:"@type,omitempty"`
	Comment      string          `json:"comment,omitempty"`
	OffersAttach json.RawMessage `json:"offers~attach,omitempty"`
}

// ProofRequestMessage is the proof request produced by the proof collaborator
// when a transaction fires. DeleteID is a single-use correlation token that
// lets the proof collaborator clean up the exchange record later.
type ProofRequestMessage struct {
	ID                        string          `json:"@id,omitempty"`
	Type                      string          `json:"@type,omitempty"`
	Comment                   string          `json:"comment,omitempty"`
	DeleteID                  string          `json:"~delete_id,omitempty"`
	RequestPresentationAttach json.RawMessage `json:"request_presentations~attach,omitempty"`
}

// CredentialRecord is the credential exchange record created as a side
// effect of firing a transaction.
type CredentialRecord struct {
	ID           string `json:"id"`
	ConnectionID string `json:"connection_id,omitempty"`
	State        string `json:"state,omitempty"`
}

// ProofRecord is the proof exchange record created as a side effect of
// firing a transaction.
type ProofRecord struct {
	ID           string            `json:"id"`
	ConnectionID string            `json:"connection_id,omitempty"`
	State        string            `json:"state,omitempty"`
	Tags         map[string]string `json:"tags,omitempty"`
}

// SetTag sets an ad hoc metadata tag on the proof record.
func (r *ProofRecord) SetTag(name, value string) {
	if r.Tags == nil {
		r.Tags = make(map[string]string)
	}

	r.Tags[name] = value
}
