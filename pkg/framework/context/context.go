/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package context creates a framework provider context that holds the
// transaction protocol service and the collaborators it depends on.
package context

import (
	"errors"
	"fmt"

	"github.com/hyperledger/aries-framework-go/spi/storage"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/transaction"
)

// ErrSvcNotFound is returned when no protocol service is found for an id.
var ErrSvcNotFound = errors.New("service not found")

// Provider supplies the framework configuration to protocol services and
// clients.
type Provider struct {
	storageProvider   storage.Provider
	connectionService transaction.ConnectionService
	credentialService transaction.CredentialService
	proofService      transaction.ProofService
	messenger         transaction.Messenger
	transactionSvc    *transaction.Service
}

// ProviderOption configures the context provider.
type ProviderOption func(opts *Provider) error

// New instantiates a new context provider.
func New(opts ...ProviderOption) (*Provider, error) {
	ctxProvider := Provider{}

	for _, opt := range opts {
		err := opt(&ctxProvider)
		if err != nil {
			return nil, fmt.Errorf("option failed: %w", err)
		}
	}

	svc, err := transaction.New(&ctxProvider)
	if err != nil {
		return nil, fmt.Errorf("initialize transaction service: %w", err)
	}

	ctxProvider.transactionSvc = svc

	return &ctxProvider, nil
}

// Service returns a protocol service by id.
func (p *Provider) Service(id string) (interface{}, error) {
	if id == transaction.Name {
		return p.transactionSvc, nil
	}

	return nil, ErrSvcNotFound
}

// StorageProvider returns the storage provider.
func (p *Provider) StorageProvider() storage.Provider {
	return p.storageProvider
}

// ConnectionService returns the connection collaborator.
func (p *Provider) ConnectionService() transaction.ConnectionService {
	return p.connectionService
}

// CredentialService returns the credential collaborator.
func (p *Provider) CredentialService() transaction.CredentialService {
	return p.credentialService
}

// ProofService returns the proof collaborator.
func (p *Provider) ProofService() transaction.ProofService {
	return p.proofService
}

// Messenger returns the outbound messenger.
func (p *Provider) Messenger() transaction.Messenger {
	return p.messenger
}

// WithStorageProvider injects a storage provider into the context.
func WithStorageProvider(s storage.Provider) ProviderOption {
	return func(opts *Provider) error {
		opts.storageProvider = s
		return nil
	}
}

// WithConnectionService injects a connection collaborator into the context.
func WithConnectionService(s transaction.ConnectionService) ProviderOption {
	return func(opts *Provider) error {
		opts.connectionService = s
		return nil
	}
}

// WithCredentialService injects a credential collaborator into the context.
func WithCredentialService(s transaction.CredentialService) ProviderOption {
	return func(opts *Provider) error {
		opts.credentialService = s
		return nil
	}
}

// WithProofService injects a proof collaborator into the context.
func WithProofService(s transaction.ProofService) ProviderOption {
	return func(opts *Provider) error {
		opts.proofService = s
		return nil
	}
}

// WithMessenger injects an outbound messenger into the context.
func WithMessenger(m transaction.Messenger) ProviderOption {
	return func(opts *Provider) error {
		opts.messenger = m
		return nil
	}
}
