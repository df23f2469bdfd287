// Copyright © 2026 NDID Platform contributors
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ndid

// IdentityRef identifies a subject within a registered namespace
type IdentityRef struct {
	Namespace  string `json:"namespace"`
	Identifier string `json:"identifier"`
}

// IdPCallbackConfig registers where the platform delivers IdP callbacks
type IdPCallbackConfig struct {
	IncomingRequestURL             string `json:"incoming_request_url,omitempty"`
	IncomingRequestStatusUpdateURL string `json:"incoming_request_status_update_url,omitempty"`
	ErrorURL                       string `json:"error_url,omitempty"`
}

// IncomingRequest is delivered to an IdP that may answer a verification request
type IncomingRequest struct {
	Type                CallbackType  `json:"type"`
	NodeID              string        `json:"node_id,omitempty"`
	Mode                int           `json:"mode"`
	RequestID           string        `json:"request_id"`
	Namespace           string        `json:"namespace,omitempty"`
	Identifier          string        `json:"identifier,omitempty"`
	RequestMessage      string        `json:"request_message"`
	RequestMessageHash  string        `json:"request_message_hash"`
	RequestMessageSalt  string        `json:"request_message_salt"`
	RequesterNodeID     string        `json:"requester_node_id"`
	MinIal              float64       `json:"min_ial"`
	MinAal              float64       `json:"min_aal"`
	DataRequestList     []DataRequest `json:"data_request_list,omitempty"`
	RequestTimeout      int           `json:"request_timeout"`
	CreationTime        int64         `json:"creation_time"`
	CreationBlockHeight string        `json:"creation_block_height,omitempty"`
	InitialSalt         string        `json:"initial_salt,omitempty"`
}

// IdPResponseBody is the IdP's consent decision on an incoming request
type IdPResponseBody struct {
	ReferenceID string       `json:"reference_id"`
	CallbackURL string       `json:"callback_url"`
	RequestID   string       `json:"request_id"`
	Ial         float64      `json:"ial"`
	Aal         float64      `json:"aal"`
	Status      AnswerStatus `json:"status"`
	AccessorID  string       `json:"accessor_id,omitempty"`
	Signature   string       `json:"signature,omitempty"`
}

// ResponseResult acknowledges an IdP response asynchronously
type ResponseResult struct {
	Type        CallbackType `json:"type"`
	Success     bool         `json:"success"`
	ReferenceID string       `json:"reference_id"`
	RequestID   string       `json:"request_id"`
	NodeID      string       `json:"node_id,omitempty"`
	Error       *APIError    `json:"error,omitempty"`
}

// CreateIdentityBody onboards a subject at an IdP
type CreateIdentityBody struct {
	ReferenceID       string        `json:"reference_id"`
	CallbackURL       string        `json:"callback_url"`
	IdentityList      []IdentityRef `json:"identity_list"`
	AccessorType      string        `json:"accessor_type"`
	AccessorPublicKey string        `json:"accessor_public_key"`
	AccessorID        string        `json:"accessor_id,omitempty"`
	Ial               float64       `json:"ial"`
	Mode              int           `json:"mode"`
	RequestMessage    string        `json:"request_message,omitempty"`
}

// CreateIdentityResult acknowledges identity creation asynchronously
type CreateIdentityResult struct {
	Type               CallbackType `json:"type"`
	Success            bool         `json:"success"`
	ReferenceID        string       `json:"reference_id"`
	RequestID          string       `json:"request_id,omitempty"`
	NodeID             string       `json:"node_id,omitempty"`
	AccessorID         string       `json:"accessor_id,omitempty"`
	ReferenceGroupCode string       `json:"reference_group_code,omitempty"`
	Error              *APIError    `json:"error,omitempty"`
}

// AddAccessorBody adds a key to an existing identity
type AddAccessorBody struct {
	ReferenceID       string `json:"reference_id"`
	CallbackURL       string `json:"callback_url"`
	AccessorType      string `json:"accessor_type"`
	AccessorPublicKey string `json:"accessor_public_key"`
	AccessorID        string `json:"accessor_id,omitempty"`
	RequestMessage    string `json:"request_message,omitempty"`
}

// AddAccessorResult acknowledges accessor addition asynchronously
type AddAccessorResult struct {
	Type        CallbackType `json:"type"`
	Success     bool         `json:"success"`
	ReferenceID string       `json:"reference_id"`
	RequestID   string       `json:"request_id,omitempty"`
	NodeID      string       `json:"node_id,omitempty"`
	AccessorID  string       `json:"accessor_id,omitempty"`
	Error       *APIError    `json:"error,omitempty"`
}

// UpdateIalBody raises or lowers the IAL the IdP asserts for a subject
type UpdateIalBody struct {
	ReferenceID string  `json:"reference_id"`
	CallbackURL string  `json:"callback_url"`
	Ial         float64 `json:"ial"`
}

// IdentityInfo is the utility API view of an onboarded subject
type IdentityInfo struct {
	ReferenceGroupCode string `json:"reference_group_code"`
}
