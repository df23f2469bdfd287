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

// DataRequest names one service an RP wants data from, and which AS nodes may answer
type DataRequest struct {
	ServiceID     string   `json:"service_id"`
	ASIDList      []string `json:"as_id_list,omitempty"`
	MinAS         int      `json:"min_as"`
	RequestParams string   `json:"request_params,omitempty"`
}

// CreateRequestBody is the RP input to create a verification request
// against a subject identified by namespace/identifier (set on the URL path)
type CreateRequestBody struct {
	ReferenceID     string        `json:"reference_id"`
	CallbackURL     string        `json:"callback_url"`
	Mode            int           `json:"mode"`
	IdPIDList       []string      `json:"idp_id_list,omitempty"`
	DataRequestList []DataRequest `json:"data_request_list,omitempty"`
	RequestMessage  string        `json:"request_message"`
	MinIal          float64       `json:"min_ial"`
	MinAal          float64       `json:"min_aal"`
	MinIdP          int           `json:"min_idp"`
	RequestTimeout  int           `json:"request_timeout"`
}

// CreateRequestResult acknowledges (or fails) request creation asynchronously
type CreateRequestResult struct {
	Type                CallbackType `json:"type"`
	Success             bool         `json:"success"`
	ReferenceID         string       `json:"reference_id"`
	RequestID           string       `json:"request_id,omitempty"`
	NodeID              string       `json:"node_id,omitempty"`
	CreationBlockHeight string       `json:"creation_block_height,omitempty"`
	Error               *APIError    `json:"error,omitempty"`
}

// ServiceProgress reports per-service data collection progress on status events
type ServiceProgress struct {
	ServiceID         string `json:"service_id"`
	MinAS             int    `json:"min_as"`
	SignedDataCount   int    `json:"signed_data_count"`
	ReceivedDataCount int    `json:"received_data_count"`
}

// ResponseValid reports the platform's validation verdict on one IdP response
type ResponseValid struct {
	IdPID          string `json:"idp_id"`
	ValidSignature *bool  `json:"valid_signature"`
	ValidIal       *bool  `json:"valid_ial"`
}

// RequestStatusEvent is pushed to the RP each time the request progresses
type RequestStatusEvent struct {
	Type              CallbackType      `json:"type"`
	RequestID         string            `json:"request_id"`
	NodeID            string            `json:"node_id,omitempty"`
	Status            RequestStatus     `json:"status"`
	Mode              int               `json:"mode"`
	MinIdP            int               `json:"min_idp"`
	AnsweredIdPCount  int               `json:"answered_idp_count"`
	Closed            bool              `json:"closed"`
	TimedOut          bool              `json:"timed_out"`
	ServiceList       []ServiceProgress `json:"service_list,omitempty"`
	ResponseValidList []ResponseValid   `json:"response_valid_list,omitempty"`
	BlockHeight       string            `json:"block_height,omitempty"`
}

// CloseRequestBody closes an in-flight request
type CloseRequestBody struct {
	ReferenceID string `json:"reference_id"`
	CallbackURL string `json:"callback_url"`
	RequestID   string `json:"request_id"`
}

// CloseRequestResult acknowledges request closure
type CloseRequestResult struct {
	Type        CallbackType `json:"type"`
	Success     bool         `json:"success"`
	ReferenceID string       `json:"reference_id"`
	RequestID   string       `json:"request_id"`
	Error       *APIError    `json:"error,omitempty"`
}

// ReceivedData is one AS answer the RP can fetch once data arrives
type ReceivedData struct {
	SourceNodeID        string `json:"source_node_id"`
	ServiceID           string `json:"service_id"`
	SourceSignature     string `json:"source_signature"`
	SignatureSignMethod string `json:"signature_sign_method,omitempty"`
	DataSalt            string `json:"data_salt,omitempty"`
	Data                string `json:"data"`
}

// IdPResponseSummary is one IdP answer as reported on the request detail
type IdPResponseSummary struct {
	IdPID     string       `json:"idp_id"`
	Status    AnswerStatus `json:"status"`
	Ial       float64      `json:"ial"`
	Aal       float64      `json:"aal"`
	Signature string       `json:"signature,omitempty"`
}

// RequestDetail is the utility API view of one request
type RequestDetail struct {
	RequestID           string               `json:"request_id"`
	RequesterNodeID     string               `json:"requester_node_id"`
	Mode                int                  `json:"mode"`
	Status              RequestStatus        `json:"status"`
	MinIdP              int                  `json:"min_idp"`
	MinIal              float64              `json:"min_ial"`
	MinAal              float64              `json:"min_aal"`
	RequestTimeout      int                  `json:"request_timeout"`
	IdPIDList           []string             `json:"idp_id_list,omitempty"`
	DataRequestList     []DataRequest        `json:"data_request_list,omitempty"`
	RequestMessageHash  string               `json:"request_message_hash"`
	ResponseList        []IdPResponseSummary `json:"response_list,omitempty"`
	Closed              bool                 `json:"closed"`
	TimedOut            bool                 `json:"timed_out"`
	CreationBlockHeight string               `json:"creation_block_height,omitempty"`
}
