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

// Package events republishes asynchronous platform callbacks as named events,
// and lets test steps await a specific callback deterministically. Callbacks
// that arrive before anyone awaits them are buffered per (node, type), so a
// fast platform can never race a slow test.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/ndidplatform/api-e2e-go/internal/log"
	"github.com/ndidplatform/api-e2e-go/pkg/ndid"
)

// DefaultMaxBuffered bounds the per-key backlog of unawaited callbacks
const DefaultMaxBuffered = 128

// Event is one callback delivered to a node's callback server
type Event struct {
	NodeID     string
	Type       ndid.CallbackType
	Payload    json.RawMessage
	ReceivedAt time.Time
}

// Matcher filters candidate payloads; typically it checks request_id or
// reference_id so concurrent flows don't consume each other's callbacks
type Matcher func(payload json.RawMessage) bool

// MatchAny accepts the first payload of the awaited type
func MatchAny(json.RawMessage) bool { return true }

type eventKey struct {
	nodeID string
	cbType ndid.CallbackType
}

type waiter struct {
	match Matcher
	ch    chan *Event
}

// Registry is the promise-per-event-type store shared by all callback servers
// in a test run
type Registry struct {
	mtx         sync.Mutex
	buffered    map[eventKey][]*Event
	waiters     map[eventKey][]*waiter
	observer    func(*Event)
	maxBuffered int
}

func NewRegistry() *Registry {
	return &Registry{
		buffered:    make(map[eventKey][]*Event),
		waiters:     make(map[eventKey][]*waiter),
		maxBuffered: DefaultMaxBuffered,
	}
}

// SetObserver registers a function invoked for every published event,
// in publish order. Used by the standalone sink to print callbacks.
func (r *Registry) SetObserver(fn func(*Event)) {
	r.mtx.Lock()
	r.observer = fn
	r.mtx.Unlock()
}

// Publish delivers a callback to the first matching waiter, or buffers it
func (r *Registry) Publish(ctx context.Context, nodeID string, cbType ndid.CallbackType, payload json.RawMessage) {
	ev := &Event{
		NodeID:     nodeID,
		Type:       cbType,
		Payload:    payload,
		ReceivedAt: time.Now(),
	}
	key := eventKey{nodeID: nodeID, cbType: cbType}

	r.mtx.Lock()
	observer := r.observer
	delivered := false
	remaining := r.waiters[key][:0]
	for _, w := range r.waiters[key] {
		if !delivered && w.match(payload) {
			w.ch <- ev // buffered chan of 1, waiter is one-shot
			delivered = true
			continue
		}
		remaining = append(remaining, w)
	}
	r.waiters[key] = remaining
	if !delivered {
		backlog := r.buffered[key]
		if len(backlog) >= r.maxBuffered {
			log.L(ctx).Warnf("Dropping oldest buffered '%s' callback for node %s", cbType, nodeID)
			backlog = backlog[1:]
		}
		r.buffered[key] = append(backlog, ev)
	}
	r.mtx.Unlock()

	log.L(ctx).Debugf("Event '%s' for node %s (delivered=%t)", cbType, nodeID, delivered)
	if observer != nil {
		observer(ev)
	}
}

// Await returns the first buffered-or-future callback of the given type for
// the given node accepted by match, or the context error on timeout
func (r *Registry) Await(ctx context.Context, nodeID string, cbType ndid.CallbackType, match Matcher) (json.RawMessage, error) {
	if match == nil {
		match = MatchAny
	}
	key := eventKey{nodeID: nodeID, cbType: cbType}

	r.mtx.Lock()
	backlog := r.buffered[key]
	for i, ev := range backlog {
		if match(ev.Payload) {
			r.buffered[key] = append(backlog[:i], backlog[i+1:]...)
			r.mtx.Unlock()
			return ev.Payload, nil
		}
	}
	w := &waiter{match: match, ch: make(chan *Event, 1)}
	r.waiters[key] = append(r.waiters[key], w)
	r.mtx.Unlock()

	select {
	case ev := <-w.ch:
		return ev.Payload, nil
	case <-ctx.Done():
		r.removeWaiter(key, w)
		// The publish may have won the race with cancellation
		select {
		case ev := <-w.ch:
			return ev.Payload, nil
		default:
		}
		return nil, errors.Wrapf(ctx.Err(), "timed out waiting for '%s' callback on node %s", cbType, nodeID)
	}
}

func (r *Registry) removeWaiter(key eventKey, w *waiter) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	remaining := r.waiters[key][:0]
	for _, candidate := range r.waiters[key] {
		if candidate != w {
			remaining = append(remaining, candidate)
		}
	}
	r.waiters[key] = remaining
}

// Drain discards all buffered callbacks for a node, between tests
func (r *Registry) Drain(nodeID string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for key := range r.buffered {
		if key.nodeID == nodeID {
			delete(r.buffered, key)
		}
	}
}

// BufferedCount reports the backlog for a node, across callback types
func (r *Registry) BufferedCount(nodeID string) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	count := 0
	for key, backlog := range r.buffered {
		if key.nodeID == nodeID {
			count += len(backlog)
		}
	}
	return count
}
