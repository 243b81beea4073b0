/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"encoding/json"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/didexchange"
	protocol "github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/transaction"
)

// CreateTransactionArgs model
//
// This is used for creating or updating a transaction and publishing its
// invitation URL.
type CreateTransactionArgs struct {
	// TransactionID to create or update. A fresh id is generated when empty.
	TransactionID string `json:"transaction_id"`

	// ConnectionID of an existing connection to bind. A new invitation is
	// created when empty.
	ConnectionID string `json:"connection_id"`

	// OfferConfiguration is the opaque credential offer descriptor.
	OfferConfiguration json.RawMessage `json:"offer_configuration,omitempty"`

	// ProofRequest is the opaque proof request descriptor.
	ProofRequest json.RawMessage `json:"proof_request,omitempty"`

	// CredentialComment is forwarded into the outbound credential offer.
	CredentialComment string `json:"credential_comment"`

	// ProofComment is forwarded into the outbound proof request.
	ProofComment string `json:"proof_comment"`

	// Label to attach to a newly created invitation.
	Label string `json:"label"`

	// Endpoint is the base of the published invitation URL.
	Endpoint string `json:"endpoint"`

	// Awaitable marks the invitation URL for the awaitable connection flow.
	Awaitable bool `json:"awaitable"`
}

// CreateTransactionResponse model
//
// Represents a created or updated transaction.
type CreateTransactionResponse struct {
	TransactionID  string `json:"transaction_id"`
	ConnectionID   string `json:"connection_id"`
	TransactionURL string `json:"transaction_url"`
}

// ReadTransactionURLArgs model
//
// This is used for decoding an invitation URL.
type ReadTransactionURLArgs struct {
	// TransactionURL is the invitation URL to decode.
	TransactionURL string `json:"transaction_url"`
}

// ReadTransactionURLResponse model
//
// Represents the decoded parts of an invitation URL.
type ReadTransactionURLResponse struct {
	TransactionID string                  `json:"transaction_id"`
	Invitation    *didexchange.Invitation `json:"invitation,omitempty"`
	Awaitable     bool                    `json:"awaitable"`
}

// GetTransactionArgs model
//
// This is used for fetching a single transaction.
type GetTransactionArgs struct {
	// ID of the transaction record.
	ID string `json:"id"`
}

// GetTransactionResponse model
//
// Represents a single transaction record.
type GetTransactionResponse struct {
	Result *protocol.Record `json:"result,omitempty"`
}

// ListTransactionsResponse model
//
// Represents all stored transaction records.
type ListTransactionsResponse struct {
	Results []*protocol.Record `json:"results"`
}

// DeleteTransactionArgs model
//
// This is used for removing a transaction.
type DeleteTransactionArgs struct {
	// ID of the transaction record.
	ID string `json:"id"`
}

// SendResponseArgs model
//
// This is used for sending a transaction response over a connection.
type SendResponseArgs struct {
	// TransactionID being acknowledged.
	TransactionID string `json:"transaction_id"`

	// ConnectionID of the connection to send the response over.
	ConnectionID string `json:"connection_id"`
}
