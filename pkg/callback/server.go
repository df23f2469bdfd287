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

// Package callback runs the per-node HTTP listeners that receive the
// platform's asynchronous notifications and republish them as named events.
package callback

import (
	"context"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/ndidplatform/api-e2e-go/internal/log"
	"github.com/ndidplatform/api-e2e-go/pkg/events"
	"github.com/ndidplatform/api-e2e-go/pkg/ndid"
)

const shutdownTimeout = 5 * time.Second

// Server is one simulated node's callback listener
type Server struct {
	nodeID      string
	registry    *events.Registry
	listener    net.Listener
	server      *http.Server
	ctx         context.Context
	badPayloads int64
}

// NewServer binds a listener for one node. Use port 0 in the address to let
// the OS pick, then hand URL() to the platform as callback_url.
func NewServer(ctx context.Context, nodeID, address string, registry *events.Registry) (*Server, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to bind callback listener for node %s", nodeID)
	}
	s := &Server{
		nodeID:   nodeID,
		registry: registry,
		listener: listener,
		ctx:      log.WithLogField(ctx, "node", nodeID),
	}
	r := mux.NewRouter()
	r.HandleFunc("/callback", s.handleCallback).Methods(http.MethodPost)
	// The platform lets each callback URL be registered independently, so one
	// node commonly points them all at role-scoped paths on the same listener
	r.HandleFunc("/{role}/callback", s.handleCallback).Methods(http.MethodPost)
	s.server = &http.Server{
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return s, nil
}

// Start serves in the background until Stop (or listener failure)
func (s *Server) Start() {
	log.L(s.ctx).Infof("Callback server listening on %s", s.listener.Addr())
	go func() {
		err := s.server.Serve(s.listener)
		if err != nil && err != http.ErrServerClosed {
			log.L(s.ctx).Errorf("Callback server exited: %s", err)
		}
	}()
}

// Stop shuts the listener down, letting in-flight callbacks finish
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(s.ctx, shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// NodeID returns the node this server receives callbacks for
func (s *Server) NodeID() string {
	return s.nodeID
}

// URL is the base callback URL to register with the platform
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s/callback", s.listener.Addr())
}

// BadPayloads counts malformed callback bodies received
func (s *Server) BadPayloads() int64 {
	return atomic.LoadInt64(&s.badPayloads)
}

func (s *Server) handleCallback(res http.ResponseWriter, req *http.Request) {
	body, err := ioutil.ReadAll(req.Body)
	if err == nil {
		var envelope *ndid.CallbackEnvelope
		envelope, err = ndid.PeekCallback(body)
		if err == nil {
			// Proxy servers receive callbacks on behalf of member nodes;
			// route on the body's node_id when the platform sets one
			nodeID := s.nodeID
			if envelope.NodeID != "" {
				nodeID = envelope.NodeID
			}
			s.registry.Publish(s.ctx, nodeID, envelope.Type, body)
			res.WriteHeader(http.StatusNoContent)
			return
		}
	}
	atomic.AddInt64(&s.badPayloads, 1)
	log.L(s.ctx).Warnf("Rejected callback: %s", err)
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusBadRequest)
	_, _ = res.Write([]byte(`{"error":"invalid callback body"}`))
}
