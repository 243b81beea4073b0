/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package service

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

const (
	jsonID             = "@id"
	jsonType           = "@type"
	jsonThread         = "~thread"
	jsonParentThreadID = "pthid"
	jsonMetadata       = "_internal_metadata"
)

// ErrInvalidMessage is returned when a message map is nil or otherwise unusable.
var ErrInvalidMessage = errors.New("invalid message")

// DIDCommMsgMap is a messages in map format.
type DIDCommMsgMap map[string]interface{}

// NewDIDCommMsgMap converts a message struct into a DIDCommMsgMap.
func NewDIDCommMsgMap(v interface{}) DIDCommMsgMap {
	msg := DIDCommMsgMap{}

	bytes, err := json.Marshal(v)
	if err != nil {
		return msg
	}

	if err := json.Unmarshal(bytes, &msg); err != nil {
		return DIDCommMsgMap{}
	}

	return msg
}

// ParseDIDCommMsgMap returns a DIDCommMsgMap from the given payload.
func ParseDIDCommMsgMap(payload []byte) (DIDCommMsgMap, error) {
	msg := DIDCommMsgMap{}

	err := json.Unmarshal(payload, &msg)
	if err != nil {
		return nil, fmt.Errorf("invalid payload data format: %w", err)
	}

	return msg, nil
}

// ID returns the message `@id`.
func (m DIDCommMsgMap) ID() string {
	if m == nil {
		return ""
	}

	id, ok := m[jsonID].(string)
	if !ok {
		return ""
	}

	return id
}

// SetID sets the message `@id`.
func (m DIDCommMsgMap) SetID(id string) error {
	if m == nil {
		return ErrInvalidMessage
	}

	m[jsonID] = id

	return nil
}

// Type returns the message `@type`.
func (m DIDCommMsgMap) Type() string {
	if m == nil {
		return ""
	}

	msgType, ok := m[jsonType].(string)
	if !ok {
		return ""
	}

	return msgType
}

// ParentThreadID returns the message parent thread ID, when present.
func (m DIDCommMsgMap) ParentThreadID() string {
	if m == nil {
		return ""
	}

	thread, ok := m[jsonThread].(map[string]interface{})
	if !ok {
		return ""
	}

	pthID, ok := thread[jsonParentThreadID].(string)
	if !ok {
		return ""
	}

	return pthID
}

// Metadata returns the transient metadata attached to the message.
func (m DIDCommMsgMap) Metadata() map[string]interface{} {
	metadata, ok := m[jsonMetadata].(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}

	return metadata
}

// Clone returns a shallow copy of the message.
func (m DIDCommMsgMap) Clone() DIDCommMsgMap {
	if m == nil {
		return nil
	}

	msg := DIDCommMsgMap{}

	for k, v := range m {
		msg[k] = v
	}

	return msg
}

// Decode converts the message map into the given structure.
func (m DIDCommMsgMap) Decode(v interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
			base64ToBytesHook,
		),
		TagName: "json",
		Result:  v,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(m)
}

// base64ToBytesHook restores []byte fields from the base64 strings produced by encoding/json.
func base64ToBytesHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]byte(nil)) {
		return data, nil
	}

	return base64.StdEncoding.DecodeString(data.(string))
}
