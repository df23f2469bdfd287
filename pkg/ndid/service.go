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

// ASServiceConfig registers an AS node as a provider of a service,
// including where the platform delivers its data_request callbacks
type ASServiceConfig struct {
	MinIal float64 `json:"min_ial"`
	MinAal float64 `json:"min_aal"`
	URL    string  `json:"url"`
}

// DataRequestEvent is delivered to an AS when an accepted request needs its data
type DataRequestEvent struct {
	Type                  CallbackType `json:"type"`
	NodeID                string       `json:"node_id,omitempty"`
	RequestID             string       `json:"request_id"`
	Mode                  int          `json:"mode"`
	Namespace             string       `json:"namespace"`
	Identifier            string       `json:"identifier"`
	ServiceID             string       `json:"service_id"`
	RequestParams         string       `json:"request_params,omitempty"`
	RequesterNodeID       string       `json:"requester_node_id"`
	MaxIal                float64      `json:"max_ial"`
	MaxAal                float64      `json:"max_aal"`
	CreationTime          int64        `json:"creation_time"`
	RequestTimeout        int          `json:"request_timeout"`
	ResponseSignatureList []string     `json:"response_signature_list,omitempty"`
}

// SendDataBody is the AS answer to a data request
type SendDataBody struct {
	ReferenceID string `json:"reference_id"`
	CallbackURL string `json:"callback_url"`
	Data        string `json:"data"`
}

// SendDataResult acknowledges an AS data submission asynchronously
type SendDataResult struct {
	Type        CallbackType `json:"type"`
	Success     bool         `json:"success"`
	ReferenceID string       `json:"reference_id"`
	RequestID   string       `json:"request_id"`
	NodeID      string       `json:"node_id,omitempty"`
	Error       *APIError    `json:"error,omitempty"`
}
