/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package context

import (
	"errors"
	"testing"

	"github.com/hyperledger/aries-framework-go/component/storageutil/mem"
	mockstorage "github.com/hyperledger/aries-framework-go/component/storageutil/mock/storage"
	"github.com/stretchr/testify/require"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/transaction"
)

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx, err := New(WithStorageProvider(mem.NewProvider()))
		require.NoError(t, err)
		require.NotNil(t, ctx)

		svc, err := ctx.Service(transaction.Name)
		require.NoError(t, err)
		require.NotNil(t, svc)

		_, ok := svc.(*transaction.Service)
		require.True(t, ok)
	})

	t.Run("unknown service", func(t *testing.T) {
		ctx, err := New(WithStorageProvider(mem.NewProvider()))
		require.NoError(t, err)

		_, err = ctx.Service("unknown")
		require.ErrorIs(t, err, ErrSvcNotFound)
	})

	t.Run("storage error", func(t *testing.T) {
		provider := mockstorage.NewMockStoreProvider()
		provider.ErrOpenStoreHandle = errors.New("open error")

		ctx, err := New(WithStorageProvider(provider))
		require.ErrorContains(t, err, "open error")
		require.Nil(t, ctx)
	})

	t.Run("option error", func(t *testing.T) {
		failing := func(*Provider) error { return errors.New("option error") }

		ctx, err := New(failing)
		require.ErrorContains(t, err, "option failed")
		require.Nil(t, ctx)
	})
}
