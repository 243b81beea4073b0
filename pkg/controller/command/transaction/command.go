/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperledger/aries-framework-go/component/log"

	client "github.com/edgeid-labs/aries-transaction-go/pkg/client/transaction"
	"github.com/edgeid-labs/aries-transaction-go/pkg/controller/command"
	"github.com/edgeid-labs/aries-transaction-go/pkg/controller/internal/cmdutil"
	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/didexchange"
	protocol "github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/transaction"
	"github.com/edgeid-labs/aries-transaction-go/pkg/internal/logutil"
)

const (
	// InvalidRequestErrorCode is typically a code for validation errors
	// for invalid transaction controller requests.
	InvalidRequestErrorCode = command.Code(iota + command.Transaction)
	// CreateTransactionErrorCode is for failures in create transaction command.
	CreateTransactionErrorCode
	// GetTransactionErrorCode is for failures in get transaction command.
	GetTransactionErrorCode
	// ListTransactionsErrorCode is for failures in list transactions command.
	ListTransactionsErrorCode
	// DeleteTransactionErrorCode is for failures in delete transaction command.
	DeleteTransactionErrorCode
	// SendResponseErrorCode is for failures in send response command.
	SendResponseErrorCode
)

const (
	// command name
	commandName        = "transaction"
	createTransaction  = "CreateTransaction"
	readTransactionURL = "ReadTransactionURL"
	getTransaction     = "GetTransaction"
	listTransactions   = "Transactions"
	deleteTransaction  = "DeleteTransaction"
	sendResponse       = "SendResponse"

	// error messages
	errEmptyTransactionID  = "empty transaction id"
	errEmptyTransactionURL = "empty transaction url"

	// log constants
	successString = "success"
)

var logger = log.New("transaction-go/controller/transaction")

// Command is controller command for transactions.
type Command struct {
	client *client.Client
}

// New returns new transaction controller command instance.
func New(ctx client.Provider) (*Command, error) {
	c, err := client.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot create a client: %w", err)
	}

	return &Command{client: c}, nil
}

// GetHandlers returns list of all commands supported by this controller command.
func (c *Command) GetHandlers() []command.Handler {
	return []command.Handler{
		cmdutil.NewCommandHandler(commandName, createTransaction, c.CreateTransaction),
		cmdutil.NewCommandHandler(commandName, readTransactionURL, c.ReadTransactionURL),
		cmdutil.NewCommandHandler(commandName, getTransaction, c.GetTransaction),
		cmdutil.NewCommandHandler(commandName, listTransactions, c.Transactions),
		cmdutil.NewCommandHandler(commandName, deleteTransaction, c.DeleteTransaction),
		cmdutil.NewCommandHandler(commandName, sendResponse, c.SendResponse),
	}
}

// CreateTransaction creates or updates a transaction and returns its
// invitation URL.
func (c *Command) CreateTransaction(rw io.Writer, req io.Reader) command.Error {
	var args CreateTransactionArgs
	if err := json.NewDecoder(req).Decode(&args); err != nil {
		logutil.LogInfo(logger, commandName, createTransaction, err.Error())
		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	params := &protocol.TransactionParams{
		TransactionID:      args.TransactionID,
		ConnectionID:       args.ConnectionID,
		OfferConfiguration: args.OfferConfiguration,
		ProofRequest:       args.ProofRequest,
		CredentialComment:  args.CredentialComment,
		ProofComment:       args.ProofComment,
	}

	if args.Label != "" {
		params.ConnectionConfig = &didexchange.InvitationConfig{
			Label:      args.Label,
			AutoAccept: true,
			MultiParty: true,
		}
	}

	transactionURL, record, conn, err := c.client.CreateTransactionURL(args.Endpoint, params, args.Awaitable)
	if err != nil {
		logutil.LogError(logger, commandName, createTransaction, err.Error())
		return command.NewExecuteError(CreateTransactionErrorCode, err)
	}

	command.WriteNillableResponse(rw, &CreateTransactionResponse{
		TransactionID:  record.ID,
		ConnectionID:   conn.ConnectionID,
		TransactionURL: transactionURL,
	}, logger)

	logutil.LogDebug(logger, commandName, createTransaction, successString,
		logutil.CreateKeyValueString("transaction_id", record.ID))

	return nil
}

// ReadTransactionURL decodes an invitation URL. Decoding is best-effort, so
// a malformed URL yields empty values rather than an error.
func (c *Command) ReadTransactionURL(rw io.Writer, req io.Reader) command.Error {
	var args ReadTransactionURLArgs
	if err := json.NewDecoder(req).Decode(&args); err != nil {
		logutil.LogInfo(logger, commandName, readTransactionURL, err.Error())
		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	if args.TransactionURL == "" {
		logutil.LogDebug(logger, commandName, readTransactionURL, errEmptyTransactionURL)
		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf(errEmptyTransactionURL))
	}

	transactionID, invitation, awaitable := c.client.ReadTransactionURL(args.TransactionURL)

	command.WriteNillableResponse(rw, &ReadTransactionURLResponse{
		TransactionID: transactionID,
		Invitation:    invitation,
		Awaitable:     awaitable,
	}, logger)

	logutil.LogDebug(logger, commandName, readTransactionURL, successString)

	return nil
}

// GetTransaction returns a transaction record by id.
func (c *Command) GetTransaction(rw io.Writer, req io.Reader) command.Error {
	var args GetTransactionArgs
	if err := json.NewDecoder(req).Decode(&args); err != nil {
		logutil.LogInfo(logger, commandName, getTransaction, err.Error())
		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	if args.ID == "" {
		logutil.LogDebug(logger, commandName, getTransaction, errEmptyTransactionID)
		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf(errEmptyTransactionID))
	}

	record, err := c.client.GetTransaction(args.ID)
	if err != nil {
		logutil.LogError(logger, commandName, getTransaction, err.Error(),
			logutil.CreateKeyValueString("transaction_id", args.ID))
		return command.NewExecuteError(GetTransactionErrorCode, err)
	}

	command.WriteNillableResponse(rw, &GetTransactionResponse{Result: record}, logger)

	logutil.LogDebug(logger, commandName, getTransaction, successString,
		logutil.CreateKeyValueString("transaction_id", args.ID))

	return nil
}

// Transactions returns all stored transaction records.
func (c *Command) Transactions(rw io.Writer, _ io.Reader) command.Error {
	records, err := c.client.Transactions()
	if err != nil {
		logutil.LogError(logger, commandName, listTransactions, err.Error())
		return command.NewExecuteError(ListTransactionsErrorCode, err)
	}

	command.WriteNillableResponse(rw, &ListTransactionsResponse{Results: records}, logger)

	logutil.LogDebug(logger, commandName, listTransactions, successString)

	return nil
}

// DeleteTransaction removes a transaction record by id.
func (c *Command) DeleteTransaction(rw io.Writer, req io.Reader) command.Error {
	var args DeleteTransactionArgs
	if err := json.NewDecoder(req).Decode(&args); err != nil {
		logutil.LogInfo(logger, commandName, deleteTransaction, err.Error())
		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	if args.ID == "" {
		logutil.LogDebug(logger, commandName, deleteTransaction, errEmptyTransactionID)
		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf(errEmptyTransactionID))
	}

	if err := c.client.DeleteTransaction(args.ID); err != nil {
		logutil.LogError(logger, commandName, deleteTransaction, err.Error(),
			logutil.CreateKeyValueString("transaction_id", args.ID))
		return command.NewExecuteError(DeleteTransactionErrorCode, err)
	}

	command.WriteNillableResponse(rw, nil, logger)

	logutil.LogDebug(logger, commandName, deleteTransaction, successString,
		logutil.CreateKeyValueString("transaction_id", args.ID))

	return nil
}

// SendResponse sends a transaction response over the given connection.
func (c *Command) SendResponse(rw io.Writer, req io.Reader) command.Error {
	var args SendResponseArgs
	if err := json.NewDecoder(req).Decode(&args); err != nil {
		logutil.LogInfo(logger, commandName, sendResponse, err.Error())
		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	if args.TransactionID == "" {
		logutil.LogDebug(logger, commandName, sendResponse, errEmptyTransactionID)
		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf(errEmptyTransactionID))
	}

	if err := c.client.SendResponse(args.TransactionID, args.ConnectionID); err != nil {
		logutil.LogError(logger, commandName, sendResponse, err.Error(),
			logutil.CreateKeyValueString("transaction_id", args.TransactionID))
		return command.NewExecuteError(SendResponseErrorCode, err)
	}

	command.WriteNillableResponse(rw, nil, logger)

	logutil.LogDebug(logger, commandName, sendResponse, successString,
		logutil.CreateKeyValueString("transaction_id", args.TransactionID))

	return nil
}
