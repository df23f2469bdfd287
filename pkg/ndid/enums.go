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

// Package ndid holds the JSON shapes of the identity-verification platform's
// REST and callback contract, as exercised by the end-to-end suites. The
// platform owns the semantics; these types only mirror its published API.
package ndid

// CallbackType is the discriminator the platform sets on every callback body
type CallbackType string

const (
	CallbackCreateRequestResult  CallbackType = "create_request_result"
	CallbackRequestStatus        CallbackType = "request_status"
	CallbackIncomingRequest      CallbackType = "incoming_request"
	CallbackResponseResult       CallbackType = "response_result"
	CallbackCreateIdentityResult CallbackType = "create_identity_result"
	CallbackAddAccessorResult    CallbackType = "add_accessor_result"
	CallbackDataRequest          CallbackType = "data_request"
	CallbackSendDataResult       CallbackType = "send_data_result"
	CallbackCloseRequestResult   CallbackType = "close_request_result"
	CallbackError                CallbackType = "error"
)

// RequestStatus is the lifecycle status of a verification request
type RequestStatus string

const (
	RequestStatusPending     RequestStatus = "pending"
	RequestStatusConfirmed   RequestStatus = "confirmed"
	RequestStatusComplicated RequestStatus = "complicated"
	RequestStatusCompleted   RequestStatus = "completed"
)

// AnswerStatus is an IdP's consent decision on an incoming request
type AnswerStatus string

const (
	AnswerStatusAccept AnswerStatus = "accept"
	AnswerStatusReject AnswerStatus = "reject"
)

// NodeRole is the role a node is registered with at the registrar
type NodeRole string

const (
	RoleNDID  NodeRole = "NDID"
	RoleRP    NodeRole = "RP"
	RoleIdP   NodeRole = "IdP"
	RoleAS    NodeRole = "AS"
	RoleProxy NodeRole = "Proxy"
)

// Identity modes supported by the platform
const (
	IdentityMode1 = 1
	IdentityMode2 = 2
	IdentityMode3 = 3
)
