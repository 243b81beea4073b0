/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ariestransaction provides the transaction negotiation layer of an
// Aries-style agent: single-use transaction records that bundle a credential
// offer and/or a proof request behind a shareable invitation URL.
//
// Packages for end developer usage
//
// pkg/client/transaction: SDK client for creating transaction URLs, reading
// them back, and driving the transaction lifecycle.
//
// pkg/controller: REST and command handlers exposing the transaction
// operations over HTTP.
//
// Basic workflow
//
//	1) Build a context with framework/context.New, wiring your storage
//	   provider and agent collaborators.
//	2) Create a client instance using client/transaction.New, passing the
//	   context.
//	3) Call CreateTransactionURL to mint a single-use transaction URL and
//	   hand it to the other party.
//	4) When the transaction response arrives, the protocol service fires the
//	   bundled credential offer or proof request exactly once.
package ariestransaction
