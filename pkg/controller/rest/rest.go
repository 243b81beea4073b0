/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/hyperledger/aries-framework-go/component/log"

	"github.com/edgeid-labs/aries-transaction-go/pkg/controller/command"
)

var logger = log.New("transaction-go/controller/rest")

// Handler http handler for each controller API endpoint.
type Handler interface {
	Path() string
	Method() string
	Handle() http.HandlerFunc
}

// genericErrorBody is the JSON error body sent on command failures.
type genericErrorBody struct {
	Code    command.Code `json:"code"`
	Message string       `json:"message"`
}

// Execute runs the given command with the request body and writes the
// command's response or error to the http response.
func Execute(exec command.Exec, rw http.ResponseWriter, req io.Reader) {
	rw.Header().Set("Content-Type", "application/json")

	if err := exec(rw, req); err != nil {
		SendError(rw, err)
	}
}

// SendError writes the command error to the http response, mapping
// validation errors to 400 and execution errors to 500.
func SendError(rw http.ResponseWriter, err command.Error) {
	switch err.Type() {
	case command.ValidationError:
		SendHTTPStatusError(rw, http.StatusBadRequest, err.Code(), err)
	default:
		SendHTTPStatusError(rw, http.StatusInternalServerError, err.Code(), err)
	}
}

// SendHTTPStatusError writes an error body with the given http status code.
func SendHTTPStatusError(rw http.ResponseWriter, httpStatus int, code command.Code, err error) {
	rw.WriteHeader(httpStatus)

	if encodeErr := json.NewEncoder(rw).Encode(genericErrorBody{Code: code, Message: err.Error()}); encodeErr != nil {
		logger.Errorf("Unable to send error message, %s", encodeErr)
	}
}
