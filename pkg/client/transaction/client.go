/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package transaction provides a client facade over the transaction
// protocol service.
package transaction

import (
	"fmt"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/didexchange"
	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/transaction"
	"github.com/edgeid-labs/aries-transaction-go/pkg/store/connection"
)

// Provider provides access to protocol services.
type Provider interface {
	Service(id string) (interface{}, error)
}

// protocolService is the subset of the transaction protocol service used by
// this client.
type protocolService interface {
	CreateOrUpdateTransaction(params *transaction.TransactionParams) (*transaction.Record,
		*connection.Record, *didexchange.Invitation, error)
	SendTransactionResponse(transactionID string, conn *connection.Record) error
	GetTransaction(id string) (*transaction.Record, error)
	ListTransactions() ([]*transaction.Record, error)
	DeleteTransaction(id string) error
	GetConnection(id string) (*connection.Record, error)
	FindExistingConnection(invitation *didexchange.Invitation, awaitable bool) (*connection.Record, error)
}

// Client enables access to the transaction protocol.
type Client struct {
	service protocolService
}

// New returns a new transaction client.
func New(p Provider) (*Client, error) {
	s, err := p.Service(transaction.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up service %s : %w", transaction.Name, err)
	}

	svc, ok := s.(protocolService)
	if !ok {
		return nil, fmt.Errorf("failed to cast service %s as a dependency", transaction.Name)
	}

	return &Client{service: svc}, nil
}

// CreateTransactionURL creates or updates the transaction described by
// params and returns the invitation URL publishing it, together with the
// transaction record and the resolved connection.
func (c *Client) CreateTransactionURL(endpoint string, params *transaction.TransactionParams,
	awaitable bool) (string, *transaction.Record, *connection.Record, error) {
	record, conn, invitation, err := c.service.CreateOrUpdateTransaction(params)
	if err != nil {
		return "", nil, nil, err
	}

	transactionURL, err := transaction.EncodeTransactionURL(endpoint, record.ID, invitation, awaitable)
	if err != nil {
		return "", nil, nil, err
	}

	return transactionURL, record, conn, nil
}

// ReadTransactionURL extracts the transaction id, the embedded invitation
// and the awaitable flag from an invitation URL.
func (c *Client) ReadTransactionURL(transactionURL string) (string, *didexchange.Invitation, bool) {
	return transaction.DecodeTransactionURL(transactionURL)
}

// CreateOrUpdateTransaction creates or updates a transaction record.
func (c *Client) CreateOrUpdateTransaction(params *transaction.TransactionParams) (*transaction.Record,
	*connection.Record, *didexchange.Invitation, error) {
	return c.service.CreateOrUpdateTransaction(params)
}

// SendResponse sends a transaction response for the given transaction id
// over the given connection.
func (c *Client) SendResponse(transactionID, connectionID string) error {
	conn, err := c.service.GetConnection(connectionID)
	if err != nil {
		return err
	}

	return c.service.SendTransactionResponse(transactionID, conn)
}

// GetTransaction returns the transaction record for the given id.
func (c *Client) GetTransaction(id string) (*transaction.Record, error) {
	return c.service.GetTransaction(id)
}

// Transactions returns all transaction records.
func (c *Client) Transactions() ([]*transaction.Record, error) {
	return c.service.ListTransactions()
}

// DeleteTransaction removes the transaction record for the given id.
func (c *Client) DeleteTransaction(id string) error {
	return c.service.DeleteTransaction(id)
}

// FindExistingConnection returns a reusable connection for the given
// invitation, or nil when none matches.
func (c *Client) FindExistingConnection(invitation *didexchange.Invitation,
	awaitable bool) (*connection.Record, error) {
	return c.service.FindExistingConnection(invitation, awaitable)
}
