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

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ndidplatform/api-e2e-go/internal/config"
	"github.com/ndidplatform/api-e2e-go/pkg/ndid"
	"github.com/ndidplatform/api-e2e-go/test/e2e/client"
)

func TestTimeoutsComeFromConfig(t *testing.T) {
	config.Reset()
	assert.Equal(t, 60*time.Second, awaitTimeout())
	r := pollRetry()
	assert.Equal(t, 250*time.Millisecond, r.InitialDelay)
	assert.Equal(t, 5*time.Second, r.MaximumDelay)

	config.Set(config.AwaitTimeout, "5s")
	defer config.Reset()
	assert.Equal(t, 5*time.Second, awaitTimeout())
}

func TestPollForRequestClosed(t *testing.T) {
	config.Reset()
	// First read still shows the request open, second shows it closed
	closed := false
	server := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/utility/requests/req1", req.URL.Path)
		res.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(res).Encode(&ndid.RequestDetail{
			RequestID: "req1",
			Status:    ndid.RequestStatusCompleted,
			Closed:    closed,
		})
		closed = true
	}))
	defer server.Close()

	utility := client.NewUtility(client.New(t, server.URL, "utility"))
	detail := PollForRequestClosed(t, utility, "req1")
	assert.True(t, detail.Closed)
	assert.Equal(t, ndid.RequestStatusCompleted, detail.Status)
}
