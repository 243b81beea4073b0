/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	client "github.com/edgeid-labs/aries-transaction-go/pkg/client/transaction"
	command "github.com/edgeid-labs/aries-transaction-go/pkg/controller/command/transaction"
	"github.com/edgeid-labs/aries-transaction-go/pkg/controller/internal/cmdutil"
	"github.com/edgeid-labs/aries-transaction-go/pkg/controller/rest"
)

const (
	operationID        = "/transaction"
	createTransaction  = operationID + "/create"
	readTransactionURL = operationID + "/read-url"
	getTransaction     = operationID + "/{id}"
	listTransactions   = operationID
	deleteTransaction  = operationID + "/{id}"
	sendResponse       = operationID + "/{id}/send-response"
)

// Operation is controller REST service controller for transactions.
type Operation struct {
	command  *command.Command
	handlers []rest.Handler
}

// New returns new transaction rest client protocol instance.
func New(ctx client.Provider) (*Operation, error) {
	cmd, err := command.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("transaction command : %w", err)
	}

	o := &Operation{command: cmd}
	o.registerHandler()

	return o, nil
}

// GetRESTHandlers get all controller API handler available for this protocol service.
func (c *Operation) GetRESTHandlers() []rest.Handler {
	return c.handlers
}

// registerHandler register handlers to be exposed from this protocol service as REST API endpoints.
func (c *Operation) registerHandler() {
	c.handlers = []rest.Handler{
		cmdutil.NewHTTPHandler(createTransaction, http.MethodPost, c.CreateTransaction),
		cmdutil.NewHTTPHandler(readTransactionURL, http.MethodPost, c.ReadTransactionURL),
		cmdutil.NewHTTPHandler(listTransactions, http.MethodGet, c.Transactions),
		cmdutil.NewHTTPHandler(getTransaction, http.MethodGet, c.GetTransaction),
		cmdutil.NewHTTPHandler(deleteTransaction, http.MethodDelete, c.DeleteTransaction),
		cmdutil.NewHTTPHandler(sendResponse, http.MethodPost, c.SendResponse),
	}
}

// CreateTransaction swagger:route POST /transaction/create transaction createTransaction
//
// Creates or updates a transaction and returns its invitation URL.
//
// Responses:
//    default: genericError
//        200: createTransactionResponse
func (c *Operation) CreateTransaction(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(c.command.CreateTransaction, rw, req.Body)
}

// ReadTransactionURL swagger:route POST /transaction/read-url transaction readTransactionURL
//
// Decodes an invitation URL into its transaction id, invitation and awaitable flag.
//
// Responses:
//    default: genericError
//        200: readTransactionURLResponse
func (c *Operation) ReadTransactionURL(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(c.command.ReadTransactionURL, rw, req.Body)
}

// GetTransaction swagger:route GET /transaction/{id} transaction getTransaction
//
// Returns a transaction record by id.
//
// Responses:
//    default: genericError
//        200: getTransactionResponse
func (c *Operation) GetTransaction(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(c.command.GetTransaction, rw, bytes.NewBufferString(fmt.Sprintf(`{
		"id":%q
	}`, mux.Vars(req)["id"])))
}

// Transactions swagger:route GET /transaction transaction listTransactions
//
// Returns all stored transaction records.
//
// Responses:
//    default: genericError
//        200: listTransactionsResponse
func (c *Operation) Transactions(rw http.ResponseWriter, _ *http.Request) {
	rest.Execute(c.command.Transactions, rw, nil)
}

// DeleteTransaction swagger:route DELETE /transaction/{id} transaction deleteTransaction
//
// Removes a transaction record by id.
//
// Responses:
//    default: genericError
//        200: emptyResponse
func (c *Operation) DeleteTransaction(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(c.command.DeleteTransaction, rw, bytes.NewBufferString(fmt.Sprintf(`{
		"id":%q
	}`, mux.Vars(req)["id"])))
}

// SendResponse swagger:route POST /transaction/{id}/send-response transaction sendTransactionResponse
//
// Sends a transaction response over the given connection.
//
// Responses:
//    default: genericError
//        200: emptyResponse
func (c *Operation) SendResponse(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(c.command.SendResponse, rw, bytes.NewBufferString(fmt.Sprintf(`{
		"transaction_id":%q,
		"connection_id":%q
	}`, mux.Vars(req)["id"], req.URL.Query().Get("connection_id"))))
}
