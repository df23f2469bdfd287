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

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndidplatform/api-e2e-go/pkg/ndid"
)

func matchRequestID(id string) Matcher {
	return func(payload json.RawMessage) bool {
		var fields struct {
			RequestID string `json:"request_id"`
		}
		return json.Unmarshal(payload, &fields) == nil && fields.RequestID == id
	}
}

func TestPublishThenAwait(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	r.Publish(ctx, "rp1", ndid.CallbackRequestStatus, json.RawMessage(`{"request_id":"req1","status":"pending"}`))

	payload, err := r.Await(ctx, "rp1", ndid.CallbackRequestStatus, matchRequestID("req1"))
	require.NoError(t, err)
	assert.Contains(t, string(payload), "pending")
	assert.Zero(t, r.BufferedCount("rp1"))
}

func TestAwaitThenPublish(t *testing.T) {
	r := NewRegistry()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		time.Sleep(10 * time.Millisecond)
		r.Publish(ctx, "idp1", ndid.CallbackIncomingRequest, json.RawMessage(`{"request_id":"req2"}`))
	}()

	payload, err := r.Await(ctx, "idp1", ndid.CallbackIncomingRequest, matchRequestID("req2"))
	require.NoError(t, err)
	assert.Contains(t, string(payload), "req2")
}

func TestAwaitTimeout(t *testing.T) {
	r := NewRegistry()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := r.Await(ctx, "rp1", ndid.CallbackRequestStatus, nil)
	assert.Regexp(t, "timed out waiting for 'request_status'", err)
}

func TestMatcherSkipsUnrelatedCallbacks(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	r.Publish(ctx, "rp1", ndid.CallbackRequestStatus, json.RawMessage(`{"request_id":"other"}`))
	r.Publish(ctx, "rp1", ndid.CallbackRequestStatus, json.RawMessage(`{"request_id":"mine"}`))

	payload, err := r.Await(ctx, "rp1", ndid.CallbackRequestStatus, matchRequestID("mine"))
	require.NoError(t, err)
	assert.Contains(t, string(payload), "mine")

	// The unrelated callback is still buffered for whoever wants it
	assert.Equal(t, 1, r.BufferedCount("rp1"))
}

func TestAwaitIsOneShot(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			waitCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
			defer cancel()
			_, err := r.Await(waitCtx, "rp1", ndid.CallbackCloseRequestResult, nil)
			done <- err
		}()
	}
	time.Sleep(20 * time.Millisecond)
	r.Publish(ctx, "rp1", ndid.CallbackCloseRequestResult, json.RawMessage(`{"request_id":"req3"}`))

	var errs []error
	for i := 0; i < 2; i++ {
		errs = append(errs, <-done)
	}
	// Exactly one waiter gets the payload, the other times out
	if errs[0] == nil {
		assert.Error(t, errs[1])
	} else {
		assert.NoError(t, errs[1])
	}
}

func TestDrain(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	r.Publish(ctx, "as1", ndid.CallbackDataRequest, json.RawMessage(`{"request_id":"req4"}`))
	r.Publish(ctx, "as1", ndid.CallbackSendDataResult, json.RawMessage(`{"request_id":"req4"}`))
	r.Publish(ctx, "as2", ndid.CallbackDataRequest, json.RawMessage(`{"request_id":"req5"}`))
	require.Equal(t, 2, r.BufferedCount("as1"))

	r.Drain("as1")
	assert.Zero(t, r.BufferedCount("as1"))
	assert.Equal(t, 1, r.BufferedCount("as2"))
}

func TestBufferBounded(t *testing.T) {
	r := NewRegistry()
	r.maxBuffered = 3
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		r.Publish(ctx, "rp1", ndid.CallbackRequestStatus, json.RawMessage(fmt.Sprintf(`{"request_id":"req%d"}`, i)))
	}
	assert.Equal(t, 3, r.BufferedCount("rp1"))

	// Oldest were dropped
	waitCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	_, err := r.Await(waitCtx, "rp1", ndid.CallbackRequestStatus, matchRequestID("req0"))
	assert.Error(t, err)
}

func TestObserverSeesAllEvents(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	var seen []ndid.CallbackType
	r.SetObserver(func(ev *Event) {
		seen = append(seen, ev.Type)
	})

	r.Publish(ctx, "rp1", ndid.CallbackCreateRequestResult, json.RawMessage(`{}`))
	r.Publish(ctx, "rp1", ndid.CallbackRequestStatus, json.RawMessage(`{}`))
	assert.Equal(t, []ndid.CallbackType{ndid.CallbackCreateRequestResult, ndid.CallbackRequestStatus}, seen)
}
