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

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
)

// CallbackEnvelope is the part of every callback body the harness routes on.
// Proxy nodes receive callbacks for their member nodes, distinguished by node_id.
type CallbackEnvelope struct {
	Type   CallbackType `json:"type"`
	NodeID string       `json:"node_id,omitempty"`
}

// PeekCallback extracts the routing fields from a raw callback body
func PeekCallback(raw []byte) (*CallbackEnvelope, error) {
	var envelope CallbackEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "callback body is not valid JSON")
	}
	if envelope.Type == "" {
		return nil, errors.New("callback body has no type")
	}
	return &envelope, nil
}

// HashRequestMessage computes the salted message hash carried on incoming
// requests: base64(sha256(request_message + request_message_salt)). An IdP
// recomputes this before signing, so a tampered message is detectable.
func HashRequestMessage(message, salt string) string {
	sum := sha256.Sum256([]byte(message + salt))
	return base64.StdEncoding.EncodeToString(sum[:])
}
