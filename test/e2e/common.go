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
	"fmt"
	"io/ioutil"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ndidplatform/api-e2e-go/internal/config"
	"github.com/ndidplatform/api-e2e-go/internal/nodekey"
	"github.com/ndidplatform/api-e2e-go/pkg/callback"
	"github.com/ndidplatform/api-e2e-go/pkg/events"
	"github.com/ndidplatform/api-e2e-go/pkg/ndid"
	"github.com/ndidplatform/api-e2e-go/test/e2e/client"
)

const (
	citizenNamespace = "citizen_id"
	defaultIal       = 2.3
	defaultAal       = 3.0
)

type testState struct {
	t         *testing.T
	startTime time.Time
	done      func()
	stack     *Stack
	registry  *events.Registry
	servers   map[string]*callback.Server

	ndid    *client.NDIDClient
	utility *client.UtilityClient
	rp      *client.RPClient
	idp1    *client.IdPClient
	idp2    *client.IdPClient
	as1     *client.ASClient

	rpNode   *Node
	idp1Node *Node
	idp2Node *Node
	as1Node  *Node

	accessorKey *nodekey.KeyPair
	idp2Key     *nodekey.KeyPair
}

func (ts *testState) T() *testing.T {
	return ts.t
}

func (ts *testState) StartTime() time.Time {
	return ts.startTime
}

// callbackURL is the URL the platform should deliver a node's callbacks to
func (ts *testState) callbackURL(nodeID string) string {
	server := ts.servers[nodeID]
	require.NotNil(ts.t, server, "no callback server for node %s", nodeID)
	return server.URL()
}

func beforeE2ETest(t *testing.T) *testState {
	require.NoError(t, config.ReadConfig(""))
	stack := ReadStack(t)
	registry := events.NewRegistry()
	ctx := context.Background()

	ts := &testState{
		t:         t,
		startTime: time.Now(),
		stack:     stack,
		registry:  registry,
		servers:   map[string]*callback.Server{},
	}

	for _, node := range stack.Nodes {
		if node.ProxyNodeID != "" {
			// Member-node callbacks arrive on the proxy's server
			continue
		}
		address := node.CallbackAddress
		if address == "" {
			address = "127.0.0.1:0"
		}
		server, err := callback.NewServer(ctx, node.ID, address, registry)
		require.NoError(t, err)
		server.Start()
		ts.servers[node.ID] = server
	}

	ndidNodes := stack.NodesByRole(ndid.RoleNDID)
	rpNodes := stack.NodesByRole(ndid.RoleRP)
	idpNodes := stack.NodesByRole(ndid.RoleIdP)
	asNodes := stack.NodesByRole(ndid.RoleAS)
	require.NotEmpty(t, ndidNodes, "stack has no NDID node")
	require.NotEmpty(t, rpNodes, "stack has no RP node")
	require.NotEmpty(t, idpNodes, "stack has no IdP node")
	require.NotEmpty(t, asNodes, "stack has no AS node")

	ts.rpNode = rpNodes[0]
	ts.idp1Node = idpNodes[0]
	ts.as1Node = asNodes[0]

	ts.ndid = client.NewNDID(client.New(t, ndidNodes[0].APIURL, ndidNodes[0].ID))
	ts.rp = client.NewRP(client.New(t, ts.rpNode.APIURL, ts.rpNode.ID))
	ts.idp1 = client.NewIdP(client.New(t, ts.idp1Node.APIURL, ts.idp1Node.ID))
	ts.as1 = client.NewAS(client.New(t, ts.as1Node.APIURL, ts.as1Node.ID))
	ts.utility = client.NewUtility(client.New(t, ts.rpNode.APIURL, ts.rpNode.ID))
	if len(idpNodes) > 1 {
		ts.idp2Node = idpNodes[1]
		ts.idp2 = client.NewIdP(client.New(t, ts.idp2Node.APIURL, ts.idp2Node.ID))
	}

	PollForUp(t, ts.utility)

	ts.accessorKey = loadOrGenerateKey(t, ts.idp1Node)
	if ts.idp2Node != nil {
		ts.idp2Key = loadOrGenerateKey(t, ts.idp2Node)
	}

	// Point IdP consent prompts at our listeners
	ts.idp1.SetCallbacks(t, &ndid.IdPCallbackConfig{
		IncomingRequestURL: ts.callbackURL(ts.idp1Node.ID),
		ErrorURL:           ts.callbackURL(ts.idp1Node.ID),
	})
	if ts.idp2 != nil {
		ts.idp2.SetCallbacks(t, &ndid.IdPCallbackConfig{
			IncomingRequestURL: ts.callbackURL(ts.idp2Node.ID),
			ErrorURL:           ts.callbackURL(ts.idp2Node.ID),
		})
	}

	ts.done = func() {
		for nodeID, server := range ts.servers {
			_ = server.Stop()
			registry.Drain(nodeID)
		}
	}
	return ts
}

func loadOrGenerateKey(t *testing.T, node *Node) *nodekey.KeyPair {
	if node.PrivateKeyFile != "" {
		pemBytes, err := ioutil.ReadFile(node.PrivateKeyFile)
		require.NoError(t, err)
		kp, err := nodekey.ParsePrivatePEM(pemBytes)
		require.NoError(t, err)
		return kp
	}
	kp, err := nodekey.Generate(nodekey.DefaultBits)
	require.NoError(t, err)
	return kp
}

// newReferenceID returns a fresh per-call reference ID
func newReferenceID() string {
	return uuid.New().String()
}

// newIdentifier fabricates an unused 13-digit identifier in the citizen namespace
func newIdentifier() string {
	identifier := "1"
	for i := 0; i < 12; i++ {
		identifier += fmt.Sprintf("%d", rand.Intn(10))
	}
	return identifier
}

// onboardIdentity creates a fresh subject at idp1 and waits for it to be usable
func onboardIdentity(t *testing.T, ts *testState) (namespace, identifier, accessorID string) {
	namespace = citizenNamespace
	identifier = newIdentifier()
	accessorID = onboardIdentityAt(t, ts, ts.idp1, ts.idp1Node, ts.accessorKey, namespace, identifier)
	return namespace, identifier, accessorID
}

// onboardIdentityAt registers a subject at the given IdP, minting an accessor
// for that IdP's key. For an already-known subject the IdP joins the existing
// reference group.
func onboardIdentityAt(t *testing.T, ts *testState, idp *client.IdPClient, node *Node, key *nodekey.KeyPair, namespace, identifier string) (accessorID string) {
	referenceID := newReferenceID()

	publicKey, err := key.PublicPEM()
	require.NoError(t, err)

	idp.CreateIdentity(t, &ndid.CreateIdentityBody{
		ReferenceID:       referenceID,
		CallbackURL:       ts.callbackURL(node.ID),
		IdentityList:      []ndid.IdentityRef{{Namespace: namespace, Identifier: identifier}},
		AccessorType:      "RSA",
		AccessorPublicKey: publicKey,
		Ial:               defaultIal,
		Mode:              ndid.IdentityMode2,
	})

	result := WaitForCreateIdentityResult(t, ts.registry, node.ID, referenceID)
	RequireSuccess(t, result.Success, result.Error)
	require.NotEmpty(t, result.AccessorID)
	require.NotEmpty(t, result.ReferenceGroupCode)
	return result.AccessorID
}

// respondToRequest drives idp1's consent answer for a request it was prompted on
func respondToRequest(t *testing.T, ts *testState, incoming *ndid.IncomingRequest, accessorID string, status ndid.AnswerStatus) {
	respondToRequestAs(t, ts, ts.idp1, ts.idp1Node, ts.accessorKey, incoming, accessorID, status)
}

// respondToRequestAs signs the request message hash with the given IdP's
// accessor key and submits its consent answer
func respondToRequestAs(t *testing.T, ts *testState, idp *client.IdPClient, node *Node, key *nodekey.KeyPair, incoming *ndid.IncomingRequest, accessorID string, status ndid.AnswerStatus) {
	referenceID := newReferenceID()

	// Never sign a hash that doesn't match the delivered message
	require.Equal(t, ndid.HashRequestMessage(incoming.RequestMessage, incoming.RequestMessageSalt), incoming.RequestMessageHash)

	signature, err := key.Sign([]byte(incoming.RequestMessageHash))
	require.NoError(t, err)

	idp.SubmitResponse(t, &ndid.IdPResponseBody{
		ReferenceID: referenceID,
		CallbackURL: ts.callbackURL(node.ID),
		RequestID:   incoming.RequestID,
		Ial:         defaultIal,
		Aal:         defaultAal,
		Status:      status,
		AccessorID:  accessorID,
		Signature:   signature,
	})
	result := WaitForResponseResult(t, ts.registry, node.ID, referenceID)
	RequireSuccess(t, result.Success, result.Error)
}
