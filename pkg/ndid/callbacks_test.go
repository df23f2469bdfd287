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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekCallback(t *testing.T) {
	envelope, err := PeekCallback([]byte(`{"type":"request_status","request_id":"abc","status":"confirmed"}`))
	require.NoError(t, err)
	assert.Equal(t, CallbackRequestStatus, envelope.Type)
	assert.Empty(t, envelope.NodeID)
}

func TestPeekCallbackProxyMember(t *testing.T) {
	envelope, err := PeekCallback([]byte(`{"type":"create_request_result","node_id":"rp_behind_proxy"}`))
	require.NoError(t, err)
	assert.Equal(t, CallbackCreateRequestResult, envelope.Type)
	assert.Equal(t, "rp_behind_proxy", envelope.NodeID)
}

func TestPeekCallbackBadJSON(t *testing.T) {
	_, err := PeekCallback([]byte(`!json`))
	assert.Regexp(t, "not valid JSON", err)
}

func TestPeekCallbackNoType(t *testing.T) {
	_, err := PeekCallback([]byte(`{"request_id":"abc"}`))
	assert.Regexp(t, "no type", err)
}

func TestHashRequestMessage(t *testing.T) {
	assert.Equal(t, "vak3iAjEoI66RH2DP6z6+iV/QzDjnRJEswCn5tKGIN4=",
		HashRequestMessage("Please confirm login", "c2FsdA=="))
	assert.NotEqual(t,
		HashRequestMessage("Please confirm login", "c2FsdA=="),
		HashRequestMessage("Please confirm 1ogin", "c2FsdA=="))
}

func TestErrorResponseUnmarshal(t *testing.T) {
	var errRes ErrorResponse
	err := json.Unmarshal([]byte(`{"error":{"code":25007,"message":"not enough token to make a transaction"}}`), &errRes)
	require.NoError(t, err)
	require.NotNil(t, errRes.Error)
	assert.Equal(t, ErrCodeNodeTokenExhausted, errRes.Error.Code)
	assert.Regexp(t, "platform error 25007", errRes.Error.Error())
}
