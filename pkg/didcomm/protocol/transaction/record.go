/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hyperledger/aries-framework-go/spi/storage"

	"github.com/edgeid-labs/aries-transaction-go/pkg/store/connection"
)

const (
	storeName = "transaction"

	txnKeyPrefix = "txn_"
	txnTagName   = "transaction"
)

// ErrTransactionNotFound is returned when no transaction record exists for
// a given id.
var ErrTransactionNotFound = errors.New("transaction record not found")

// Record is the unit of negotiation state. Used flips to true exactly once,
// on the first successful processing of a response, and never reverts.
type Record struct {
	ID                 string          `json:"id"`
	ConnectionID       string          `json:"connection_id,omitempty"`
	Used               bool            `json:"used"`
	OfferConfiguration json.RawMessage `json:"offer_configuration,omitempty"`
	ProofRequest       json.RawMessage `json:"proof_request,omitempty"`
	CredentialRecordID string          `json:"credential_record_id,omitempty"`
	ProofRecordID      string          `json:"proof_record_id,omitempty"`
	CredentialComment  string          `json:"credential_comment,omitempty"`
	ProofComment       string          `json:"proof_comment,omitempty"`

	// ConnectionRecord is a transient association to the resolved
	// connection, populated during processing only.
	ConnectionRecord *connection.Record `json:"-"`
}

type recordStore struct {
	store storage.Store
}

func newRecordStore(p storage.Provider) (*recordStore, error) {
	store, err := p.OpenStore(storeName)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction store: %w", err)
	}

	err = p.SetStoreConfig(storeName, storage.StoreConfiguration{TagNames: []string{txnTagName}})
	if err != nil {
		return nil, fmt.Errorf("failed to set transaction store config: %w", err)
	}

	return &recordStore{store: store}, nil
}

// Get returns the transaction record for the given id.
func (s *recordStore) Get(id string) (*Record, error) {
	bytes, err := s.store.Get(txnKeyPrefix + id)
	if err != nil {
		if errors.Is(err, storage.ErrDataNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
		}

		return nil, fmt.Errorf("get transaction record: %w", err)
	}

	record := &Record{}

	if err := json.Unmarshal(bytes, record); err != nil {
		return nil, fmt.Errorf("unmarshal transaction record: %w", err)
	}

	return record, nil
}

// Save writes the transaction record, overwriting any previous value for
// the same id.
func (s *recordStore) Save(record *Record) error {
	if record.ID == "" {
		return fmt.Errorf("transaction id is mandatory")
	}

	bytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal transaction record: %w", err)
	}

	if err := s.store.Put(txnKeyPrefix+record.ID, bytes, storage.Tag{Name: txnTagName}); err != nil {
		return fmt.Errorf("save transaction record: %w", err)
	}

	return nil
}

// Delete removes the transaction record for the given id.
func (s *recordStore) Delete(id string) error {
	if err := s.store.Delete(txnKeyPrefix + id); err != nil {
		return fmt.Errorf("delete transaction record: %w", err)
	}

	return nil
}

// Query returns all transaction records in the store.
func (s *recordStore) Query() ([]*Record, error) {
	itr, err := s.store.Query(txnTagName)
	if err != nil {
		return nil, fmt.Errorf("query transaction records: %w", err)
	}

	defer storage.Close(itr, logger)

	var records []*Record

	more, err := itr.Next()
	if err != nil {
		return nil, fmt.Errorf("next transaction record: %w", err)
	}

	for more {
		value, err := itr.Value()
		if err != nil {
			return nil, fmt.Errorf("read transaction record: %w", err)
		}

		record := &Record{}

		if err := json.Unmarshal(value, record); err != nil {
			return nil, fmt.Errorf("unmarshal transaction record: %w", err)
		}

		records = append(records, record)

		more, err = itr.Next()
		if err != nil {
			return nil, fmt.Errorf("next transaction record: %w", err)
		}
	}

	return records, nil
}
