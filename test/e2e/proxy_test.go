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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ndidplatform/api-e2e-go/pkg/ndid"
	"github.com/ndidplatform/api-e2e-go/test/e2e/client"
)

// Proxied nodes have no API of their own. The proxy's API answers on their
// behalf (selected by node_id), and their callbacks are delivered to the
// proxy's listener tagged with the member's node ID.
type ProxyTestSuite struct {
	suite.Suite
	testState *testState
	proxyNode *Node
	memberRP  *Node
	proxiedRP *client.RPClient
}

func (suite *ProxyTestSuite) BeforeTest(suiteName, testName string) {
	t := suite.T()
	suite.testState = beforeE2ETest(t)
	ts := suite.testState

	proxyNodes := ts.stack.NodesByRole(ndid.RoleProxy)
	if len(proxyNodes) == 0 {
		t.Skip("stack has no proxy node")
	}
	suite.proxyNode = proxyNodes[0]

	for _, node := range ts.stack.Nodes {
		if node.ProxyNodeID == suite.proxyNode.ID && node.Role == ndid.RoleRP {
			suite.memberRP = node
			break
		}
	}
	if suite.memberRP == nil {
		t.Skipf("proxy node %s has no RP member", suite.proxyNode.ID)
	}

	proxyBase := client.New(t, suite.proxyNode.APIURL, suite.proxyNode.ID)
	suite.proxiedRP = client.NewRP(proxyBase.ForMember(suite.memberRP.ID))
}

func (suite *ProxyTestSuite) AfterTest(suiteName, testName string) {
	if suite.testState == nil {
		// BeforeTest skipped (no STACK_DIR) before setup completed
		return
	}
	suite.testState.done()
}

func (suite *ProxyTestSuite) TestProxiedRequestFlow() {
	t := suite.T()
	ts := suite.testState

	namespace, identifier, accessorID := onboardIdentity(t, ts)

	// The member's callbacks land on the proxy's listener
	memberCallbackURL := ts.callbackURL(suite.proxyNode.ID)

	referenceID := newReferenceID()
	suite.proxiedRP.CreateRequest(t, namespace, identifier, &ndid.CreateRequestBody{
		ReferenceID:    referenceID,
		CallbackURL:    memberCallbackURL,
		Mode:           ndid.IdentityMode2,
		IdPIDList:      []string{ts.idp1Node.ID},
		RequestMessage: "Consent requested through proxy",
		MinIal:         1.1,
		MinAal:         1.0,
		MinIdP:         1,
		RequestTimeout: 86400,
	})

	// Awaits key on the member's node ID, carried in the callback body
	created := WaitForCreateRequestResult(t, ts.registry, suite.memberRP.ID, referenceID)
	RequireSuccess(t, created.Success, created.Error)
	requestID := created.RequestID

	WaitForRequestStatus(t, ts.registry, suite.memberRP.ID, requestID, ndid.RequestStatusPending)

	incoming := WaitForIncomingRequest(t, ts.registry, ts.idp1Node.ID, requestID)
	assert.Equal(t, suite.memberRP.ID, incoming.RequesterNodeID)

	respondToRequest(t, ts, incoming, accessorID, ndid.AnswerStatusAccept)
	WaitForRequestStatus(t, ts.registry, suite.memberRP.ID, requestID, ndid.RequestStatusCompleted)

	closeReferenceID := newReferenceID()
	suite.proxiedRP.CloseRequest(t, &ndid.CloseRequestBody{
		ReferenceID: closeReferenceID,
		CallbackURL: memberCallbackURL,
		RequestID:   requestID,
	})
	closeResult := WaitForCloseRequestResult(t, ts.registry, suite.memberRP.ID, closeReferenceID)
	RequireSuccess(t, closeResult.Success, closeResult.Error)

	detail := PollForRequestClosed(t, ts.utility, requestID)
	require.NotNil(t, detail)
	assert.True(t, detail.Closed)
}

func TestProxyE2E(t *testing.T) {
	suite.Run(t, new(ProxyTestSuite))
}
