/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package controller

import (
	"fmt"

	client "github.com/edgeid-labs/aries-transaction-go/pkg/client/transaction"
	"github.com/edgeid-labs/aries-transaction-go/pkg/controller/command"
	transactioncmd "github.com/edgeid-labs/aries-transaction-go/pkg/controller/command/transaction"
	"github.com/edgeid-labs/aries-transaction-go/pkg/controller/rest"
	transactionrest "github.com/edgeid-labs/aries-transaction-go/pkg/controller/rest/transaction"
)

// GetRESTHandlers returns all REST handlers provided by controller.
func GetRESTHandlers(ctx client.Provider) ([]rest.Handler, error) {
	transactionOp, err := transactionrest.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create transaction rest operation : %w", err)
	}

	var allHandlers []rest.Handler
	allHandlers = append(allHandlers, transactionOp.GetRESTHandlers()...)

	return allHandlers, nil
}

// GetCommandHandlers returns all command handlers provided by controller.
func GetCommandHandlers(ctx client.Provider) ([]command.Handler, error) {
	txncmd, err := transactioncmd.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed initialized transaction command: %w", err)
	}

	var allHandlers []command.Handler
	allHandlers = append(allHandlers, txncmd.GetHandlers()...)

	return allHandlers, nil
}
