/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package transaction implements the transaction negotiation protocol.
//
// A transaction bundles a connection invitation with an optional credential
// offer and/or proof request, publishes the bundle as a compact URL, and
// fires the bundled exchange exactly once when the counterparty responds.
package transaction

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/hyperledger/aries-framework-go/spi/storage"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/common/service"
	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/didexchange"
	"github.com/edgeid-labs/aries-transaction-go/pkg/store/connection"
)

// Name of this protocol service.
const Name = "transaction"

// TagDeleteID is the proof record tag carrying the single-use correlation
// token attached to an outbound proof request. The proof collaborator uses
// it to clean up the exchange record after presentation.
const TagDeleteID = "DeleteId"

var logger = log.New("transaction-go/didcomm/transaction")

// ErrConnectionNotFound is returned when a referenced connection id does
// not exist in the connection store.
var ErrConnectionNotFound = errors.New("connection record not found")

// ConnectionService establishes new connections on demand.
type ConnectionService interface {
	CreateInvitation(config *didexchange.InvitationConfig) (*didexchange.Invitation, *connection.Record, error)
}

// CredentialService builds credential offers from an opaque offer
// configuration.
type CredentialService interface {
	CreateOffer(offerConfiguration json.RawMessage, connectionID string) (*CredentialOfferMessage, *CredentialRecord, error)
}

// ProofService builds proof requests from an opaque proof request
// descriptor.
type ProofService interface {
	CreateRequest(proofRequest json.RawMessage) (*ProofRequestMessage, *ProofRecord, error)
	UpdateRecord(record *ProofRecord) error
}

// Messenger sends pre-built protocol messages to a connection.
type Messenger interface {
	Send(msg interface{}, record *connection.Record) error
}

// Provider supplies this service's dependencies.
type Provider interface {
	StorageProvider() storage.Provider
	ConnectionService() ConnectionService
	CredentialService() CredentialService
	ProofService() ProofService
	Messenger() Messenger
}

// TransactionParams are the inputs to CreateOrUpdateTransaction. All fields
// are optional; a zero TransactionID generates a fresh one and a zero
// ConnectionID creates a new invitation.
type TransactionParams struct {
	TransactionID      string
	ConnectionID       string
	OfferConfiguration json.RawMessage
	ProofRequest       json.RawMessage
	ConnectionConfig   *didexchange.InvitationConfig
	CredentialComment  string
	ProofComment       string
}

// Service orchestrates transaction records: it creates and updates them,
// binds them to connections, and fires the bundled credential offer and
// proof request exactly once per transaction.
type Service struct {
	store             *recordStore
	connStore         *connection.Store
	connectionService ConnectionService
	credentialService CredentialService
	proofService      ProofService
	messenger         Messenger

	lock  sync.Mutex
	locks map[string]*sync.Mutex
}

// New returns a new transaction protocol service.
func New(p Provider) (*Service, error) {
	store, err := newRecordStore(p.StorageProvider())
	if err != nil {
		return nil, err
	}

	connStore, err := connection.NewStore(storageProviderFn(p.StorageProvider))
	if err != nil {
		return nil, fmt.Errorf("failed to open connection store: %w", err)
	}

	return &Service{
		store:             store,
		connStore:         connStore,
		connectionService: p.ConnectionService(),
		credentialService: p.CredentialService(),
		proofService:      p.ProofService(),
		messenger:         p.Messenger(),
		locks:             make(map[string]*sync.Mutex),
	}, nil
}

type storageProviderFn func() storage.Provider

func (fn storageProviderFn) StorageProvider() storage.Provider { return fn() }

// Name returns the protocol service name.
func (s *Service) Name() string {
	return Name
}

// Accept checks whether the service can handle the message type.
func (s *Service) Accept(msgType string) bool {
	return msgType == ResponseMsgType || msgType == ResponseMsgTypeHTTPS
}

// HandleInbound routes an inbound protocol message to the orchestrator. The
// orchestrator sends any replies itself, so no outbound message is returned.
func (s *Service) HandleInbound(msg service.DIDCommMsg, conn *connection.Record) (string, error) {
	if !s.Accept(msg.Type()) {
		return "", fmt.Errorf("unsupported message type: %s", msg.Type())
	}

	response := &ResponseMessage{}

	if err := msg.Decode(response); err != nil {
		return "", fmt.Errorf("decode transaction response: %w", err)
	}

	if err := s.ProcessTransactionResponse(response, conn); err != nil {
		return "", err
	}

	return msg.ID(), nil
}

// CreateOrUpdateTransaction creates a transaction record, or updates the
// offer configuration, proof request and connection binding of an existing
// one that has not yet been consumed. It returns the record, the resolved
// connection and the invitation to publish.
func (s *Service) CreateOrUpdateTransaction(params *TransactionParams) (*Record, *connection.Record,
	*didexchange.Invitation, error) {
	conn, invitation, err := s.resolveConnection(params)
	if err != nil {
		return nil, nil, nil, err
	}

	transactionID := params.TransactionID
	if transactionID == "" {
		transactionID = uuid.New().String()
	}

	record, err := s.store.Get(transactionID)

	switch {
	case errors.Is(err, ErrTransactionNotFound):
		record = &Record{
			ID:                 transactionID,
			ConnectionID:       conn.ConnectionID,
			OfferConfiguration: params.OfferConfiguration,
			ProofRequest:       params.ProofRequest,
			CredentialComment:  params.CredentialComment,
			ProofComment:       params.ProofComment,
		}
	case err != nil:
		return nil, nil, nil, err
	default:
		record.ConnectionID = conn.ConnectionID
		record.OfferConfiguration = params.OfferConfiguration
		record.ProofRequest = params.ProofRequest
	}

	if err := s.store.Save(record); err != nil {
		return nil, nil, nil, err
	}

	return record, conn, invitation, nil
}

func (s *Service) resolveConnection(params *TransactionParams) (*connection.Record,
	*didexchange.Invitation, error) {
	if params.ConnectionID == "" {
		config := params.ConnectionConfig
		if config == nil {
			config = &didexchange.InvitationConfig{AutoAccept: true, MultiParty: true}
		}

		invitation, conn, err := s.connectionService.CreateInvitation(config)
		if err != nil {
			return nil, nil, fmt.Errorf("create invitation: %w", err)
		}

		bytes, err := json.Marshal(invitation)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal invitation: %w", err)
		}

		conn.SetTag(connection.TagInvitation, string(bytes))

		if err := s.connStore.SaveConnectionRecord(conn); err != nil {
			return nil, nil, err
		}

		return conn, invitation, nil
	}

	conn, err := s.GetConnection(params.ConnectionID)
	if err != nil {
		return nil, nil, err
	}

	invitation := &didexchange.Invitation{}

	if cached := conn.GetTag(connection.TagInvitation); cached != "" {
		if err := json.Unmarshal([]byte(cached), invitation); err != nil {
			return nil, nil, fmt.Errorf("unmarshal cached invitation: %w", err)
		}
	}

	return conn, invitation, nil
}

// ProcessTransactionResponse fires the bundled credential offer and proof
// request for the transaction referenced by the response, then marks the
// transaction consumed. A response for an already consumed transaction
// triggers an error message to the counterparty instead.
//
// The whole read-act-write sequence runs under a per-transaction-id lock so
// that concurrent deliveries of the same response cannot both observe an
// unconsumed record.
func (s *Service) ProcessTransactionResponse(response *ResponseMessage, conn *connection.Record) error {
	unlock := s.lockTransaction(response.Transaction)
	defer unlock()

	record, err := s.store.Get(response.Transaction)
	if err != nil {
		return err
	}

	if record.Used {
		logger.Infof("transaction %s already consumed, sending error message", record.ID)

		errMsg := NewErrorMessage(record.ID, "transaction already used")

		// reply in the same type-URI family as the inbound response
		if response.Type == ResponseMsgTypeHTTPS {
			errMsg.Type = ErrorMsgTypeHTTPS
		}

		return s.messenger.Send(errMsg, conn)
	}

	record.ConnectionRecord = conn

	if len(record.ProofRequest) > 0 {
		if err := s.fireProofRequest(record, conn); err != nil {
			return err
		}
	}

	if len(record.OfferConfiguration) > 0 {
		if err := s.fireCredentialOffer(record, conn); err != nil {
			return err
		}
	}

	record.Used = true

	return s.store.Save(record)
}

func (s *Service) fireProofRequest(record *Record, conn *connection.Record) error {
	msg, proofRecord, err := s.proofService.CreateRequest(record.ProofRequest)
	if err != nil {
		return fmt.Errorf("create proof request: %w", err)
	}

	record.ProofRecordID = proofRecord.ID
	proofRecord.ConnectionID = conn.ConnectionID

	deleteID := uuid.New().String()
	msg.DeleteID = deleteID
	msg.Comment = record.ProofComment
	proofRecord.SetTag(TagDeleteID, deleteID)

	if err := s.proofService.UpdateRecord(proofRecord); err != nil {
		return fmt.Errorf("update proof record: %w", err)
	}

	return s.messenger.Send(msg, conn)
}

func (s *Service) fireCredentialOffer(record *Record, conn *connection.Record) error {
	msg, credentialRecord, err := s.credentialService.CreateOffer(record.OfferConfiguration, conn.ConnectionID)
	if err != nil {
		return fmt.Errorf("create credential offer: %w", err)
	}

	record.CredentialRecordID = credentialRecord.ID
	msg.Comment = record.CredentialComment

	return s.messenger.Send(msg, conn)
}

// SendTransactionResponse builds a response message carrying the transaction
// id and sends it to the connection. The initiator side uses it to trigger
// processing on the receiving agent.
func (s *Service) SendTransactionResponse(transactionID string, conn *connection.Record) error {
	return s.messenger.Send(NewResponseMessage(transactionID), conn)
}

// GetTransaction returns the transaction record for the given id.
func (s *Service) GetTransaction(id string) (*Record, error) {
	return s.store.Get(id)
}

// ListTransactions returns all transaction records.
func (s *Service) ListTransactions() ([]*Record, error) {
	return s.store.Query()
}

// DeleteTransaction removes the transaction record for the given id.
func (s *Service) DeleteTransaction(id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}

	s.lock.Lock()
	delete(s.locks, id)
	s.lock.Unlock()

	return nil
}

// GetConnection returns the connection record for the given id.
func (s *Service) GetConnection(id string) (*connection.Record, error) {
	conn, err := s.connStore.GetConnectionRecord(id)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrConnectionNotFound, id)
		}

		return nil, err
	}

	return conn, nil
}

// FindExistingConnection returns a reusable connection for the given
// invitation, or nil when none matches.
func (s *Service) FindExistingConnection(invitation *didexchange.Invitation,
	awaitable bool) (*connection.Record, error) {
	connections, err := s.connStore.QueryConnectionRecords()
	if err != nil {
		return nil, err
	}

	return CheckForExistingConnection(connections, invitation, awaitable), nil
}

func (s *Service) lockTransaction(id string) func() {
	s.lock.Lock()

	mu, ok := s.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[id] = mu
	}

	s.lock.Unlock()

	mu.Lock()

	return mu.Unlock
}
