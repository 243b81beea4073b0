/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/didexchange"
	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/transaction"
	"github.com/edgeid-labs/aries-transaction-go/pkg/store/connection"
)

type mockProvider struct {
	service    interface{}
	serviceErr error
}

func (p *mockProvider) Service(string) (interface{}, error) {
	return p.service, p.serviceErr
}

type mockService struct {
	record      *transaction.Record
	conn        *connection.Record
	invitation  *didexchange.Invitation
	err         error
	sentTxnID   string
	sentConnID  string
	deletedTxns []string
}

func (s *mockService) CreateOrUpdateTransaction(*transaction.TransactionParams) (*transaction.Record,
	*connection.Record, *didexchange.Invitation, error) {
	return s.record, s.conn, s.invitation, s.err
}

func (s *mockService) SendTransactionResponse(transactionID string, conn *connection.Record) error {
	s.sentTxnID = transactionID
	s.sentConnID = conn.ConnectionID

	return s.err
}

func (s *mockService) GetTransaction(string) (*transaction.Record, error) {
	return s.record, s.err
}

func (s *mockService) ListTransactions() ([]*transaction.Record, error) {
	return []*transaction.Record{s.record}, s.err
}

func (s *mockService) DeleteTransaction(id string) error {
	s.deletedTxns = append(s.deletedTxns, id)

	return s.err
}

func (s *mockService) GetConnection(string) (*connection.Record, error) {
	return s.conn, s.err
}

func (s *mockService) FindExistingConnection(*didexchange.Invitation, bool) (*connection.Record, error) {
	return s.conn, s.err
}

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, err := New(&mockProvider{service: &mockService{}})
		require.NoError(t, err)
		require.NotNil(t, client)
	})

	t.Run("service lookup error", func(t *testing.T) {
		client, err := New(&mockProvider{serviceErr: errors.New("lookup error")})
		require.ErrorContains(t, err, "lookup error")
		require.Nil(t, client)
	})

	t.Run("cast error", func(t *testing.T) {
		client, err := New(&mockProvider{service: struct{}{}})
		require.ErrorContains(t, err, "failed to cast service")
		require.Nil(t, client)
	})
}

func TestClient_CreateTransactionURL(t *testing.T) {
	invitation := &didexchange.Invitation{ID: "inv-1", ServiceEndpoint: "https://agent.example.com"}

	svc := &mockService{
		record:     &transaction.Record{ID: "txn-1"},
		conn:       &connection.Record{ConnectionID: "conn-1"},
		invitation: invitation,
	}

	client, err := New(&mockProvider{service: svc})
	require.NoError(t, err)

	transactionURL, record, conn, err := client.CreateTransactionURL("https://agent.example.com",
		&transaction.TransactionParams{}, true)
	require.NoError(t, err)
	require.Equal(t, "txn-1", record.ID)
	require.Equal(t, "conn-1", conn.ConnectionID)
	require.Contains(t, transactionURL, "t_o=txn-1")
	require.Contains(t, transactionURL, "wait=true")

	id, decoded, awaitable := client.ReadTransactionURL(transactionURL)
	require.Equal(t, "txn-1", id)
	require.Equal(t, invitation, decoded)
	require.True(t, awaitable)

	t.Run("service error", func(t *testing.T) {
		failing, err := New(&mockProvider{service: &mockService{err: errors.New("service error")}})
		require.NoError(t, err)

		_, _, _, err = failing.CreateTransactionURL("https://agent.example.com",
			&transaction.TransactionParams{}, false)
		require.ErrorContains(t, err, "service error")
	})
}

func TestClient_SendResponse(t *testing.T) {
	svc := &mockService{conn: &connection.Record{ConnectionID: "conn-1"}}

	client, err := New(&mockProvider{service: svc})
	require.NoError(t, err)

	require.NoError(t, client.SendResponse("txn-1", "conn-1"))
	require.Equal(t, "txn-1", svc.sentTxnID)
	require.Equal(t, "conn-1", svc.sentConnID)
}

func TestClient_TransactionOperations(t *testing.T) {
	svc := &mockService{
		record: &transaction.Record{ID: "txn-1"},
		conn:   &connection.Record{ConnectionID: "conn-1"},
	}

	client, err := New(&mockProvider{service: svc})
	require.NoError(t, err)

	record, err := client.GetTransaction("txn-1")
	require.NoError(t, err)
	require.Equal(t, "txn-1", record.ID)

	records, err := client.Transactions()
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, client.DeleteTransaction("txn-1"))
	require.Equal(t, []string{"txn-1"}, svc.deletedTxns)

	conn, err := client.FindExistingConnection(&didexchange.Invitation{}, false)
	require.NoError(t, err)
	require.Equal(t, "conn-1", conn.ConnectionID)
}
