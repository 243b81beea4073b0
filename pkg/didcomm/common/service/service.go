/*
Copyright Edge ID Labs Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package service

// DIDCommMsg is the common accessor surface of inbound didcomm messages.
type DIDCommMsg interface {
	ID() string
	Type() string
	ParentThreadID() string
	Clone() DIDCommMsgMap
	Metadata() map[string]interface{}
	Decode(v interface{}) error
}
