/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package connection

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bluele/gcache"
	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/hyperledger/aries-framework-go/spi/storage"
)

const (
	// Namespace is the namespace of the connection store name.
	Namespace = "connection"

	keyPattern      = "%s_%s"
	connIDKeyPrefix = "conn"
	keySeparator    = "_"

	recordCacheSize = 128
)

// Connection record states.
const (
	// StateInvited is the state of a connection whose invitation is published but not yet accepted.
	StateInvited = "invited"
	// StateConnected is the state of a fully established connection.
	StateConnected = "connected"
)

// Tag names for ad hoc connection record metadata.
const (
	// TagInvitation caches the JSON of the invitation that established the connection.
	TagInvitation = "InvitationMessage"
	// TagRecipientKeys caches the recipient-keys fingerprint used by awaitable invitation flows.
	TagRecipientKeys = "RecipientKeys"
)

var logger = log.New("transaction-go/store/connection")

type provider interface {
	StorageProvider() storage.Provider
}

// Record contains info about a didcomm connection.
type Record struct {
	ConnectionID    string            `json:"connection_id"`
	State           string            `json:"state,omitempty"`
	TheirLabel      string            `json:"their_label,omitempty"`
	TheirDID        string            `json:"their_did,omitempty"`
	MyDID           string            `json:"my_did,omitempty"`
	ServiceEndPoint string            `json:"service_endpoint,omitempty"`
	Verkey          []string          `json:"verkey,omitempty"`
	RecipientKeys   []string          `json:"recipient_keys,omitempty"`
	RoutingKeys     []string          `json:"routing_keys,omitempty"`
	CreatedAt       time.Time         `json:"created_at,omitempty"`
	Tags            map[string]string `json:"tags,omitempty"`
}

// GetTag returns the tag value for the given name, or an empty string when unset.
func (r *Record) GetTag(name string) string {
	return r.Tags[name]
}

// SetTag sets an ad hoc metadata tag on the record.
func (r *Record) SetTag(name, value string) {
	if r.Tags == nil {
		r.Tags = make(map[string]string)
	}

	r.Tags[name] = value
}

// Store provides persistence and query features for connection records.
type Store struct {
	store storage.Store
	cache gcache.Cache
}

// NewStore returns a new connection record store.
func NewStore(p provider) (*Store, error) {
	store, err := p.StorageProvider().OpenStore(Namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection store: %w", err)
	}

	err = p.StorageProvider().SetStoreConfig(Namespace, storage.StoreConfiguration{TagNames: []string{connIDKeyPrefix}})
	if err != nil {
		return nil, fmt.Errorf("failed to set connection store config: %w", err)
	}

	// underlying gcache is threadsafe, no need of locks.
	return &Store{store: store, cache: gcache.New(recordCacheSize).LRU().Build()}, nil
}

// SaveConnectionRecord saves the given connection record in the underlying store.
func (s *Store) SaveConnectionRecord(record *Record) error {
	if record.ConnectionID == "" {
		return fmt.Errorf("connection id is mandatory")
	}

	bytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal connection record: %w", err)
	}

	key := getConnectionKeyPrefix()(record.ConnectionID)

	if err = s.store.Put(key, bytes, storage.Tag{Name: connIDKeyPrefix}); err != nil {
		return fmt.Errorf("save connection record: %w", err)
	}

	if err := s.cache.Set(key, record); err != nil {
		logger.Warnf("failed to cache connection record %s: %s", record.ConnectionID, err.Error())
	}

	return nil
}

// GetConnectionRecord returns the connection record for the given connection ID.
func (s *Store) GetConnectionRecord(connectionID string) (*Record, error) {
	key := getConnectionKeyPrefix()(connectionID)

	if cached, err := s.cache.Get(key); err == nil {
		if record, ok := cached.(*Record); ok {
			return record, nil
		}
	}

	bytes, err := s.store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("get connection record: %w", err)
	}

	record := &Record{}

	if err := json.Unmarshal(bytes, record); err != nil {
		return nil, fmt.Errorf("unmarshal connection record: %w", err)
	}

	if err := s.cache.Set(key, record); err != nil {
		logger.Warnf("failed to cache connection record %s: %s", connectionID, err.Error())
	}

	return record, nil
}

// QueryConnectionRecords returns all connection records found in the underlying store.
func (s *Store) QueryConnectionRecords() ([]*Record, error) {
	itr, err := s.store.Query(connIDKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("query connection records: %w", err)
	}

	defer storage.Close(itr, logger)

	var records []*Record

	more, err := itr.Next()
	if err != nil {
		return nil, fmt.Errorf("next connection record: %w", err)
	}

	for more {
		value, err := itr.Value()
		if err != nil {
			return nil, fmt.Errorf("read connection record: %w", err)
		}

		record := &Record{}

		if err := json.Unmarshal(value, record); err != nil {
			return nil, fmt.Errorf("unmarshal connection record: %w", err)
		}

		records = append(records, record)

		more, err = itr.Next()
		if err != nil {
			return nil, fmt.Errorf("next connection record: %w", err)
		}
	}

	return records, nil
}

// getConnectionKeyPrefix key prefix for connection record persisted.
func getConnectionKeyPrefix() func(...string) string {
	return func(key ...string) string {
		return fmt.Sprintf(keyPattern, connIDKeyPrefix, strings.Join(key, keySeparator))
	}
}
