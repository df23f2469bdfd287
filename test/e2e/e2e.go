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
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndidplatform/api-e2e-go/internal/config"
	"github.com/ndidplatform/api-e2e-go/internal/retry"
	"github.com/ndidplatform/api-e2e-go/pkg/events"
	"github.com/ndidplatform/api-e2e-go/pkg/ndid"
	"github.com/ndidplatform/api-e2e-go/test/e2e/client"
)

// awaitTimeout bounds every callback await and utility poll. Tunable via
// NDID_E2E_AWAIT_TIMEOUT or the optional config file.
func awaitTimeout() time.Duration {
	return config.GetDuration(config.AwaitTimeout)
}

func pollRetry() retry.Retry {
	return retry.Retry{
		InitialDelay: config.GetDuration(config.PollInitialDelay),
		MaximumDelay: config.GetDuration(config.PollMaximumDelay),
	}
}

// ReadStack loads the deployment description, skipping the test when no
// stack is configured so the harness's own unit tests can run anywhere
func ReadStack(t *testing.T) *Stack {
	stackDir := os.Getenv("STACK_DIR")
	if stackDir == "" {
		t.Skip("STACK_DIR must be set to run end-to-end tests")
	}
	stack, err := ReadStackFile(filepath.Join(stackDir, "stack.json"))
	require.NoError(t, err)
	return stack
}

// PollForUp waits for a node's utility API to answer
func PollForUp(t *testing.T, utility *client.UtilityClient) {
	r := pollRetry()
	ctx, cancel := context.WithTimeout(context.Background(), awaitTimeout())
	defer cancel()
	err := r.Do(ctx, "poll for up", func(attempt int) (bool, error) {
		resp, err := utility.Client.R().Get("/utility/namespaces")
		if err != nil || resp.StatusCode() != 200 {
			return true, err
		}
		return false, nil
	})
	require.NoError(t, err)
}

// PollForRequestClosed polls the utility view of a request until it reports
// closed, for flows where the status callback can outrun the read API
func PollForRequestClosed(t *testing.T, utility *client.UtilityClient, requestID string) *ndid.RequestDetail {
	r := pollRetry()
	ctx, cancel := context.WithTimeout(context.Background(), awaitTimeout())
	defer cancel()
	var detail *ndid.RequestDetail
	err := r.Do(ctx, "poll for request closed", func(attempt int) (bool, error) {
		d, resp, err := utility.TryGetRequest(requestID)
		if err != nil || resp.StatusCode() != 200 || !d.Closed {
			return true, err
		}
		detail = d
		return false, nil
	})
	require.NoError(t, err)
	return detail
}

// MatchField matches callbacks whose named top-level field equals value
func MatchField(field, value string) events.Matcher {
	return func(payload json.RawMessage) bool {
		var fields map[string]interface{}
		if err := json.Unmarshal(payload, &fields); err != nil {
			return false
		}
		s, ok := fields[field].(string)
		return ok && s == value
	}
}

// MatchRequestStatus matches request_status callbacks for one request in one status
func MatchRequestStatus(requestID string, status ndid.RequestStatus) events.Matcher {
	return func(payload json.RawMessage) bool {
		var ev ndid.RequestStatusEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			return false
		}
		return ev.RequestID == requestID && ev.Status == status
	}
}

func await(t *testing.T, registry *events.Registry, nodeID string, cbType ndid.CallbackType, match events.Matcher, result interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), awaitTimeout())
	defer cancel()
	payload, err := registry.Await(ctx, nodeID, cbType, match)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, result))
	t.Logf("Received '%s' callback on node %s", cbType, nodeID)
}

// WaitForCreateRequestResult awaits the ack of a create-request call
func WaitForCreateRequestResult(t *testing.T, registry *events.Registry, nodeID, referenceID string) *ndid.CreateRequestResult {
	var result ndid.CreateRequestResult
	await(t, registry, nodeID, ndid.CallbackCreateRequestResult, MatchField("reference_id", referenceID), &result)
	return &result
}

// WaitForRequestStatus awaits a request reaching a lifecycle status
func WaitForRequestStatus(t *testing.T, registry *events.Registry, nodeID, requestID string, status ndid.RequestStatus) *ndid.RequestStatusEvent {
	var result ndid.RequestStatusEvent
	await(t, registry, nodeID, ndid.CallbackRequestStatus, MatchRequestStatus(requestID, status), &result)
	return &result
}

// WaitForRequestClosed awaits the closed status event for a request
func WaitForRequestClosed(t *testing.T, registry *events.Registry, nodeID, requestID string) *ndid.RequestStatusEvent {
	var result ndid.RequestStatusEvent
	await(t, registry, nodeID, ndid.CallbackRequestStatus, func(payload json.RawMessage) bool {
		var ev ndid.RequestStatusEvent
		return json.Unmarshal(payload, &ev) == nil && ev.RequestID == requestID && ev.Closed
	}, &result)
	return &result
}

// WaitForTimedOut awaits the timed-out status event for a request
func WaitForTimedOut(t *testing.T, registry *events.Registry, nodeID, requestID string) *ndid.RequestStatusEvent {
	var result ndid.RequestStatusEvent
	await(t, registry, nodeID, ndid.CallbackRequestStatus, func(payload json.RawMessage) bool {
		var ev ndid.RequestStatusEvent
		return json.Unmarshal(payload, &ev) == nil && ev.RequestID == requestID && ev.TimedOut
	}, &result)
	return &result
}

// WaitForIncomingRequest awaits the consent prompt on an IdP
func WaitForIncomingRequest(t *testing.T, registry *events.Registry, nodeID, requestID string) *ndid.IncomingRequest {
	var result ndid.IncomingRequest
	await(t, registry, nodeID, ndid.CallbackIncomingRequest, MatchField("request_id", requestID), &result)
	return &result
}

// WaitForResponseResult awaits the ack of an IdP response
func WaitForResponseResult(t *testing.T, registry *events.Registry, nodeID, referenceID string) *ndid.ResponseResult {
	var result ndid.ResponseResult
	await(t, registry, nodeID, ndid.CallbackResponseResult, MatchField("reference_id", referenceID), &result)
	return &result
}

// WaitForCreateIdentityResult awaits the ack of identity onboarding
func WaitForCreateIdentityResult(t *testing.T, registry *events.Registry, nodeID, referenceID string) *ndid.CreateIdentityResult {
	var result ndid.CreateIdentityResult
	await(t, registry, nodeID, ndid.CallbackCreateIdentityResult, MatchField("reference_id", referenceID), &result)
	return &result
}

// WaitForAddAccessorResult awaits the ack of adding an accessor key
func WaitForAddAccessorResult(t *testing.T, registry *events.Registry, nodeID, referenceID string) *ndid.AddAccessorResult {
	var result ndid.AddAccessorResult
	await(t, registry, nodeID, ndid.CallbackAddAccessorResult, MatchField("reference_id", referenceID), &result)
	return &result
}

// WaitForDataRequest awaits the data prompt on an AS
func WaitForDataRequest(t *testing.T, registry *events.Registry, nodeID, requestID string) *ndid.DataRequestEvent {
	var result ndid.DataRequestEvent
	await(t, registry, nodeID, ndid.CallbackDataRequest, MatchField("request_id", requestID), &result)
	return &result
}

// WaitForSendDataResult awaits the ack of an AS data submission
func WaitForSendDataResult(t *testing.T, registry *events.Registry, nodeID, referenceID string) *ndid.SendDataResult {
	var result ndid.SendDataResult
	await(t, registry, nodeID, ndid.CallbackSendDataResult, MatchField("reference_id", referenceID), &result)
	return &result
}

// WaitForCloseRequestResult awaits the ack of closing a request
func WaitForCloseRequestResult(t *testing.T, registry *events.Registry, nodeID, referenceID string) *ndid.CloseRequestResult {
	var result ndid.CloseRequestResult
	await(t, registry, nodeID, ndid.CallbackCloseRequestResult, MatchField("reference_id", referenceID), &result)
	return &result
}

// RequireSuccess fails the test when an async result reports a platform error
func RequireSuccess(t *testing.T, success bool, apiErr *ndid.APIError) {
	if apiErr != nil {
		assert.Fail(t, apiErr.Error())
	}
	require.True(t, success)
}
