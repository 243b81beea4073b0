/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hyperledger/aries-framework-go/component/storageutil/mem"
	"github.com/stretchr/testify/require"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/didexchange"
	protocol "github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/transaction"
	transactionMocks "github.com/edgeid-labs/aries-transaction-go/pkg/internal/gomocks/didcomm/protocol/transaction"
	"github.com/edgeid-labs/aries-transaction-go/pkg/store/connection"
)

type protocolProvider struct {
	service interface{}
	err     error
}

func (p *protocolProvider) Service(string) (interface{}, error) {
	return p.service, p.err
}

type testSetup struct {
	command           *Command
	connectionService *transactionMocks.MockConnectionService
	messenger         *transactionMocks.MockMessenger
}

func newTestSetup(t *testing.T, ctrl *gomock.Controller) *testSetup {
	t.Helper()

	connectionService := transactionMocks.NewMockConnectionService(ctrl)
	messenger := transactionMocks.NewMockMessenger(ctrl)

	provider := transactionMocks.NewMockProvider(ctrl)
	provider.EXPECT().StorageProvider().Return(mem.NewProvider()).AnyTimes()
	provider.EXPECT().ConnectionService().Return(connectionService).AnyTimes()
	provider.EXPECT().CredentialService().Return(transactionMocks.NewMockCredentialService(ctrl)).AnyTimes()
	provider.EXPECT().ProofService().Return(transactionMocks.NewMockProofService(ctrl)).AnyTimes()
	provider.EXPECT().Messenger().Return(messenger).AnyTimes()

	svc, err := protocol.New(provider)
	require.NoError(t, err)

	cmd, err := New(&protocolProvider{service: svc})
	require.NoError(t, err)

	return &testSetup{command: cmd, connectionService: connectionService, messenger: messenger}
}

func TestNew(t *testing.T) {
	t.Run("client error", func(t *testing.T) {
		cmd, err := New(&protocolProvider{err: errors.New("lookup error")})
		require.ErrorContains(t, err, "cannot create a client")
		require.Nil(t, cmd)
	})
}

func TestCommand_GetHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	setup := newTestSetup(t, ctrl)
	require.Len(t, setup.command.GetHandlers(), 6)
}

func TestCommand_CreateTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		setup := newTestSetup(t, ctrl)

		setup.connectionService.EXPECT().CreateInvitation(gomock.Any()).
			Return(&didexchange.Invitation{ID: "inv-1"}, &connection.Record{ConnectionID: "conn-1"}, nil)

		args, err := json.Marshal(&CreateTransactionArgs{
			TransactionID: "txn-1",
			Endpoint:      "https://agent.example.com",
			Label:         "issuer",
		})
		require.NoError(t, err)

		var rw bytes.Buffer
		require.Nil(t, setup.command.CreateTransaction(&rw, bytes.NewReader(args)))

		response := &CreateTransactionResponse{}
		require.NoError(t, json.Unmarshal(rw.Bytes(), response))
		require.Equal(t, "txn-1", response.TransactionID)
		require.Equal(t, "conn-1", response.ConnectionID)
		require.Contains(t, response.TransactionURL, "t_o=txn-1")
	})

	t.Run("invalid request", func(t *testing.T) {
		setup := newTestSetup(t, ctrl)

		var rw bytes.Buffer
		cmdErr := setup.command.CreateTransaction(&rw, bytes.NewReader([]byte("not json")))
		require.NotNil(t, cmdErr)
		require.Equal(t, InvalidRequestErrorCode, cmdErr.Code())
	})

	t.Run("connection not found", func(t *testing.T) {
		setup := newTestSetup(t, ctrl)

		args, err := json.Marshal(&CreateTransactionArgs{ConnectionID: "unknown"})
		require.NoError(t, err)

		var rw bytes.Buffer
		cmdErr := setup.command.CreateTransaction(&rw, bytes.NewReader(args))
		require.NotNil(t, cmdErr)
		require.Equal(t, CreateTransactionErrorCode, cmdErr.Code())
	})
}

func TestCommand_ReadTransactionURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	setup := newTestSetup(t, ctrl)

	t.Run("success", func(t *testing.T) {
		transactionURL, err := protocol.EncodeTransactionURL("https://agent.example.com", "txn-1",
			&didexchange.Invitation{ID: "inv-1"}, true)
		require.NoError(t, err)

		args, err := json.Marshal(&ReadTransactionURLArgs{TransactionURL: transactionURL})
		require.NoError(t, err)

		var rw bytes.Buffer
		require.Nil(t, setup.command.ReadTransactionURL(&rw, bytes.NewReader(args)))

		response := &ReadTransactionURLResponse{}
		require.NoError(t, json.Unmarshal(rw.Bytes(), response))
		require.Equal(t, "txn-1", response.TransactionID)
		require.Equal(t, "inv-1", response.Invitation.ID)
		require.True(t, response.Awaitable)
	})

	t.Run("empty url", func(t *testing.T) {
		var rw bytes.Buffer
		cmdErr := setup.command.ReadTransactionURL(&rw, bytes.NewReader([]byte("{}")))
		require.NotNil(t, cmdErr)
		require.Equal(t, InvalidRequestErrorCode, cmdErr.Code())
	})
}

func TestCommand_TransactionLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	setup := newTestSetup(t, ctrl)

	setup.connectionService.EXPECT().CreateInvitation(gomock.Any()).
		Return(&didexchange.Invitation{}, &connection.Record{ConnectionID: "conn-1"}, nil)

	args, err := json.Marshal(&CreateTransactionArgs{TransactionID: "txn-1", Endpoint: "https://x"})
	require.NoError(t, err)

	var rw bytes.Buffer
	require.Nil(t, setup.command.CreateTransaction(&rw, bytes.NewReader(args)))

	t.Run("get", func(t *testing.T) {
		var rw bytes.Buffer
		require.Nil(t, setup.command.GetTransaction(&rw, bytes.NewReader([]byte(`{"id":"txn-1"}`))))

		response := &GetTransactionResponse{}
		require.NoError(t, json.Unmarshal(rw.Bytes(), response))
		require.Equal(t, "txn-1", response.Result.ID)
	})

	t.Run("get empty id", func(t *testing.T) {
		var rw bytes.Buffer
		cmdErr := setup.command.GetTransaction(&rw, bytes.NewReader([]byte(`{}`)))
		require.NotNil(t, cmdErr)
		require.Equal(t, InvalidRequestErrorCode, cmdErr.Code())
	})

	t.Run("get unknown id", func(t *testing.T) {
		var rw bytes.Buffer
		cmdErr := setup.command.GetTransaction(&rw, bytes.NewReader([]byte(`{"id":"unknown"}`)))
		require.NotNil(t, cmdErr)
		require.Equal(t, GetTransactionErrorCode, cmdErr.Code())
	})

	t.Run("list", func(t *testing.T) {
		var rw bytes.Buffer
		require.Nil(t, setup.command.Transactions(&rw, nil))

		response := &ListTransactionsResponse{}
		require.NoError(t, json.Unmarshal(rw.Bytes(), response))
		require.Len(t, response.Results, 1)
	})

	t.Run("send response", func(t *testing.T) {
		setup.messenger.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		var rw bytes.Buffer
		require.Nil(t, setup.command.SendResponse(&rw,
			bytes.NewReader([]byte(`{"transaction_id":"txn-1","connection_id":"conn-1"}`))))
	})

	t.Run("send response unknown connection", func(t *testing.T) {
		var rw bytes.Buffer
		cmdErr := setup.command.SendResponse(&rw,
			bytes.NewReader([]byte(`{"transaction_id":"txn-1","connection_id":"unknown"}`)))
		require.NotNil(t, cmdErr)
		require.Equal(t, SendResponseErrorCode, cmdErr.Code())
	})

	t.Run("delete", func(t *testing.T) {
		var rw bytes.Buffer
		require.Nil(t, setup.command.DeleteTransaction(&rw, bytes.NewReader([]byte(`{"id":"txn-1"}`))))

		cmdErr := setup.command.GetTransaction(&rw, bytes.NewReader([]byte(`{"id":"txn-1"}`)))
		require.NotNil(t, cmdErr)
	})
}
