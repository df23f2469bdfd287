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

// Package client provides thin per-role REST wrappers over the platform's
// node APIs, for use by the end-to-end suites.
package client

import (
	"encoding/json"
	"io"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ndidplatform/api-e2e-go/internal/config"
)

var (
	urlRPRequests          = "/rp/requests/%s/%s"
	urlRPRequestClose      = "/rp/request_close"
	urlRPRequestData       = "/rp/request_data/%s"
	urlRPRequestReferences = "/rp/request_references/%s"

	urlIdPCallback = "/idp/callback"
	urlIdPResponse = "/idp/response"

	urlIdentity          = "/identity"
	urlIdentityBySubject = "/identity/%s/%s"
	urlIdentityAccessors = "/identity/%s/%s/accessors"
	urlIdentityIal       = "/identity/%s/%s/ial"

	urlASService = "/as/service/%s"
	urlASData    = "/as/data/%s/%s"

	urlNDIDRegisterNode     = "/ndid/register_node"
	urlNDIDUpdateNode       = "/ndid/update_node"
	urlNDIDNamespaces       = "/ndid/namespaces"
	urlNDIDNamespaceEnable  = "/ndid/namespaces/%s/enable"
	urlNDIDNamespaceDisable = "/ndid/namespaces/%s/disable"
	urlNDIDServices         = "/ndid/services"
	urlNDIDServiceEnable    = "/ndid/services/%s/enable"
	urlNDIDServiceDisable   = "/ndid/services/%s/disable"
	urlNDIDApproveService   = "/ndid/approve_service"
	urlNDIDSetToken         = "/ndid/set_token"
	urlNDIDAddToken         = "/ndid/add_token"
	urlNDIDReduceToken      = "/ndid/reduce_token"

	urlUtilityNamespaces = "/utility/namespaces"
	urlUtilityServices   = "/utility/services"
	urlUtilityIdP        = "/utility/idp"
	urlUtilityAS         = "/utility/as/%s"
	urlUtilityNodeToken  = "/utility/nodes/%s/token"
	urlUtilityRequests   = "/utility/requests/%s"
)

type Logger interface {
	Logf(format string, args ...interface{})
}

// NodeClient talks to one node's API endpoint. When ViaNodeID is set the
// endpoint is a proxy node, and every call carries the member node's ID.
type NodeClient struct {
	logger    Logger
	NodeID    string
	Hostname  string
	ViaNodeID string
	Client    *resty.Client
}

// New creates a client for a node's API endpoint
func New(l Logger, hostname, nodeID string) *NodeClient {
	client := NewResty(l)
	client.SetBaseURL(hostname)
	return &NodeClient{
		logger:   l,
		NodeID:   nodeID,
		Hostname: hostname,
		Client:   client,
	}
}

// ForMember returns a client that drives the same (proxy) endpoint on behalf
// of a member node behind it
func (c *NodeClient) ForMember(memberNodeID string) *NodeClient {
	return &NodeClient{
		logger:    c.logger,
		NodeID:    memberNodeID,
		Hostname:  c.Hostname,
		ViaNodeID: memberNodeID,
		Client:    c.Client,
	}
}

// NewResty builds a resty client logging each request/response to the test log
func NewResty(l Logger) *resty.Client {
	client := resty.New()
	client.SetTimeout(config.GetDuration(config.APIRequestTimeout))
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		var b []byte
		if _, isReader := req.Body.(io.Reader); !isReader {
			b, _ = json.Marshal(req.Body)
		}
		l.Logf("%s: ==> %s %s %s: %s", time.Now().UTC().Format(time.RFC3339Nano), req.Method, req.URL, req.QueryParam, string(b))
		return nil
	})
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		if resp == nil {
			return nil
		}
		l.Logf("%s: <== %d", time.Now().UTC().Format(time.RFC3339Nano), resp.StatusCode())
		if resp.IsError() {
			l.Logf("<!! %s", resp.String())
		}
		return nil
	})
	return client
}

func (c *NodeClient) request() *resty.Request {
	req := c.Client.R()
	if c.ViaNodeID != "" {
		req.SetQueryParam("node_id", c.ViaNodeID)
	}
	return req
}

func pickExpected(expectedStatus []int, dflt int) int {
	if len(expectedStatus) > 0 {
		return expectedStatus[0]
	}
	return dflt
}
