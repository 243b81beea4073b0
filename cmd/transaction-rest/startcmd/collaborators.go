/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/btcsuite/btcutil/base58"
	"github.com/google/uuid"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/didexchange"
	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/transaction"
	"github.com/edgeid-labs/aries-transaction-go/pkg/store/connection"
)

const (
	offerCredentialMsgType     = didexchange.CommunityDID + ";spec/issue-credential/1.0/offer-credential"
	requestPresentationMsgType = didexchange.CommunityDID + ";spec/present-proof/1.0/request-presentation"
)

// localConnectionService mints self-contained invitations with a freshly
// generated ed25519 verkey. A full agent would delegate to its DID exchange
// protocol service instead.
type localConnectionService struct {
	endpoint     string
	defaultLabel string
}

func newLocalConnectionService(endpoint, defaultLabel string) *localConnectionService {
	return &localConnectionService{endpoint: endpoint, defaultLabel: defaultLabel}
}

func (s *localConnectionService) CreateInvitation(config *didexchange.InvitationConfig) (*didexchange.Invitation,
	*connection.Record, error) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate invitation key: %w", err)
	}

	verkey := base58.Encode(pub)

	label := config.Label
	if label == "" {
		label = s.defaultLabel
	}

	invitation := &didexchange.Invitation{
		ID:              uuid.New().String(),
		Type:            didexchange.InvitationMsgType,
		Label:           label,
		ServiceEndpoint: s.endpoint,
		RecipientKeys:   []string{verkey},
	}

	record := &connection.Record{
		ConnectionID:    uuid.New().String(),
		State:           connection.StateInvited,
		ServiceEndPoint: s.endpoint,
		Verkey:          []string{verkey},
		RecipientKeys:   []string{verkey},
		CreatedAt:       time.Now().UTC(),
	}

	return invitation, record, nil
}

// localCredentialService wraps the opaque offer configuration into an
// offer-credential message attachment.
type localCredentialService struct{}

func newLocalCredentialService() *localCredentialService {
	return &localCredentialService{}
}

func (s *localCredentialService) CreateOffer(offerConfiguration json.RawMessage,
	connectionID string) (*transaction.CredentialOfferMessage, *transaction.CredentialRecord, error) {
	msg := &transaction.CredentialOfferMessage{
		ID:           uuid.New().String(),
		Type:         offerCredentialMsgType,
		OffersAttach: offerConfiguration,
	}

	record := &transaction.CredentialRecord{
		ID:           uuid.New().String(),
		ConnectionID: connectionID,
	}

	return msg, record, nil
}

// localProofService wraps the opaque proof request into a
// request-presentation message attachment and keeps its exchange records in
// memory.
type localProofService struct {
	lock    sync.Mutex
	records map[string]*transaction.ProofRecord
}

func newLocalProofService() *localProofService {
	return &localProofService{records: make(map[string]*transaction.ProofRecord)}
}

func (s *localProofService) CreateRequest(proofRequest json.RawMessage) (*transaction.ProofRequestMessage,
	*transaction.ProofRecord, error) {
	msg := &transaction.ProofRequestMessage{
		ID:                        uuid.New().String(),
		Type:                      requestPresentationMsgType,
		RequestPresentationAttach: proofRequest,
	}

	record := &transaction.ProofRecord{ID: uuid.New().String()}

	s.lock.Lock()
	s.records[record.ID] = record
	s.lock.Unlock()

	return msg, record, nil
}

func (s *localProofService) UpdateRecord(record *transaction.ProofRecord) error {
	s.lock.Lock()
	s.records[record.ID] = record
	s.lock.Unlock()

	return nil
}

// httpMessenger posts protocol messages as JSON to the connection's service
// endpoint.
type httpMessenger struct {
	client *http.Client
}

func newHTTPMessenger(client *http.Client) *httpMessenger {
	return &httpMessenger{client: client}
}

func (m *httpMessenger) Send(msg interface{}, record *connection.Record) error {
	if record.ServiceEndPoint == "" {
		return fmt.Errorf("connection %s has no service endpoint", record.ConnectionID)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal outbound message: %w", err)
	}

	resp, err := m.client.Post(record.ServiceEndPoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("post message to %s: %w", record.ServiceEndPoint, err)
	}

	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("message to %s rejected with status %d", record.ServiceEndPoint, resp.StatusCode)
	}

	return nil
}
