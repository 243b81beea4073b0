/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transaction

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/edgeid-labs/aries-transaction-go/pkg/didcomm/protocol/didexchange"
)

// Invitation URL query parameter names.
const (
	queryTransactionID = "t_o"
	queryInvitation    = "c_i"
	queryWait          = "wait"
)

// EncodeTransactionURL builds an invitation URL carrying the transaction id
// and the base64 of the invitation's JSON serialization, optionally marking
// the flow awaitable.
func EncodeTransactionURL(endpoint, transactionID string, invitation *didexchange.Invitation,
	awaitable bool) (string, error) {
	bytes, err := json.Marshal(invitation)
	if err != nil {
		return "", fmt.Errorf("marshal invitation: %w", err)
	}

	transactionURL := fmt.Sprintf("%s?%s=%s&%s=%s", endpoint,
		queryTransactionID, transactionID,
		queryInvitation, base64.URLEncoding.EncodeToString(bytes))

	if awaitable {
		transactionURL += fmt.Sprintf("&%s=true", queryWait)
	}

	return transactionURL, nil
}

// DecodeTransactionURL extracts the transaction id, the embedded invitation
// and the awaitable flag from an invitation URL. Decoding is best-effort:
// any failure yields empty values rather than an error, so a malformed URL
// simply does not match a pending transaction.
func DecodeTransactionURL(transactionURL string) (string, *didexchange.Invitation, bool) {
	parsed, err := url.Parse(transactionURL)
	if err != nil {
		return "", nil, false
	}

	query := parsed.RawQuery
	if !strings.HasPrefix(query, queryTransactionID+"=") {
		return "", nil, false
	}

	params := map[string]string{}

	for _, pair := range strings.Split(query, "&") {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		params[name] = value
	}

	transactionID := params[queryTransactionID]

	encoded, ok := params[queryInvitation]
	if !ok {
		return transactionID, nil, false
	}

	bytes, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return transactionID, nil, false
	}

	invitation := &didexchange.Invitation{}
	if err := json.Unmarshal(bytes, invitation); err != nil {
		return transactionID, nil, false
	}

	awaitable, err := strconv.ParseBool(params[queryWait])
	if err != nil {
		awaitable = false
	}

	return transactionID, invitation, awaitable
}
