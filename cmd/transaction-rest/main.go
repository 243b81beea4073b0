/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package transaction-rest (Transaction Agent REST Server).
//
//
// Terms Of Service:
//
//
//     Schemes: https
//     Version: 0.1.0
//     License: SPDX-License-Identifier: Apache-2.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package main

import (
	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/spf13/cobra"

	"github.com/edgeid-labs/aries-transaction-go/cmd/transaction-rest/startcmd"
)

// This is an application which starts the transaction agent controller API
// on the given port.
func main() {
	rootCmd := &cobra.Command{
		Use: "transaction-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	logger := log.New("transaction-go/agent-rest")

	startCmd, err := startcmd.Cmd(&startcmd.HTTPServer{})
	if err != nil {
		logger.Fatalf(err.Error())
	}

	rootCmd.AddCommand(startCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("Failed to run transaction-rest: %s", err)
	}
}
