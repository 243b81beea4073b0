/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	command "github.com/edgeid-labs/aries-transaction-go/pkg/controller/command/transaction"
)

// createTransactionRequest model
//
// This is used for operation to create or update a transaction.
//
// swagger:parameters createTransaction
type createTransactionRequest struct { // nolint: unused,deadcode
	// in: body
	Body command.CreateTransactionArgs
}

// createTransactionResponse model
//
// Represents a CreateTransaction response message.
//
// swagger:response createTransactionResponse
type createTransactionResponse struct { // nolint: unused,deadcode
	// in: body
	Body command.CreateTransactionResponse
}

// readTransactionURLRequest model
//
// This is used for operation to decode an invitation URL.
//
// swagger:parameters readTransactionURL
type readTransactionURLRequest struct { // nolint: unused,deadcode
	// in: body
	Body command.ReadTransactionURLArgs
}

// readTransactionURLResponse model
//
// Represents a ReadTransactionURL response message.
//
// swagger:response readTransactionURLResponse
type readTransactionURLResponse struct { // nolint: unused,deadcode
	// in: body
	Body command.ReadTransactionURLResponse
}

// getTransactionRequest model
//
// This is used for fetching a single transaction.
//
// swagger:parameters getTransaction deleteTransaction
type getTransactionRequest struct { // nolint: unused,deadcode
	// The transaction record id.
	//
	// in: path
	// required: true
	ID string `json:"id"`
}

// getTransactionResponse model
//
// Represents a GetTransaction response message.
//
// swagger:response getTransactionResponse
type getTransactionResponse struct { // nolint: unused,deadcode
	// in: body
	Body command.GetTransactionResponse
}

// listTransactionsResponse model
//
// Represents a Transactions response message.
//
// swagger:response listTransactionsResponse
type listTransactionsResponse struct { // nolint: unused,deadcode
	// in: body
	Body command.ListTransactionsResponse
}

// sendTransactionResponseRequest model
//
// This is used for sending a transaction response.
//
// swagger:parameters sendTransactionResponse
type sendTransactionResponseRequest struct { // nolint: unused,deadcode
	// The transaction record id.
	//
	// in: path
	// required: true
	ID string `json:"id"`

	// The connection to send the response over.
	//
	// in: query
	ConnectionID string `json:"connection_id"`
}

// emptyResponse model
//
// swagger:response emptyResponse
type emptyResponse struct { // nolint: unused,deadcode
	// in: body
	Body struct{}
}
