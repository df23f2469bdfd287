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

package client

import (
	"fmt"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"

	"github.com/ndidplatform/api-e2e-go/pkg/ndid"
)

// UtilityClient drives the read-only utility API any node exposes
type UtilityClient struct {
	*NodeClient
}

func NewUtility(node *NodeClient) *UtilityClient {
	return &UtilityClient{NodeClient: node}
}

// GetNamespaces lists registered namespaces
func (c *UtilityClient) GetNamespaces(t *testing.T) (namespaces []*ndid.NamespaceInfo) {
	resp, err := c.request().
		SetResult(&namespaces).
		Get(urlUtilityNamespaces)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode(), "GET %s [%d]: %s", urlUtilityNamespaces, resp.StatusCode(), resp.String())
	return namespaces
}

// GetServices lists registered services
func (c *UtilityClient) GetServices(t *testing.T) (services []*ndid.ServiceInfo) {
	resp, err := c.request().
		SetResult(&services).
		Get(urlUtilityServices)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode(), "GET %s [%d]: %s", urlUtilityServices, resp.StatusCode(), resp.String())
	return services
}

// GetIdPNodes lists registered IdPs
func (c *UtilityClient) GetIdPNodes(t *testing.T) (idps []*ndid.IdPNode) {
	resp, err := c.request().
		SetResult(&idps).
		Get(urlUtilityIdP)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode(), "GET %s [%d]: %s", urlUtilityIdP, resp.StatusCode(), resp.String())
	return idps
}

// GetASNodesByService lists AS nodes approved for a service
func (c *UtilityClient) GetASNodesByService(t *testing.T, serviceID string) (asNodes []*ndid.ASNode) {
	path := fmt.Sprintf(urlUtilityAS, serviceID)
	resp, err := c.request().
		SetResult(&asNodes).
		Get(path)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode(), "GET %s [%d]: %s", path, resp.StatusCode(), resp.String())
	return asNodes
}

// GetNodeToken reads a node's token balance
func (c *UtilityClient) GetNodeToken(t *testing.T, nodeID string) *ndid.NodeToken {
	var token ndid.NodeToken
	path := fmt.Sprintf(urlUtilityNodeToken, nodeID)
	resp, err := c.request().
		SetResult(&token).
		Get(path)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode(), "GET %s [%d]: %s", path, resp.StatusCode(), resp.String())
	return &token
}

// GetRequest reads the platform's view of a request
func (c *UtilityClient) GetRequest(t *testing.T, requestID string) *ndid.RequestDetail {
	var detail ndid.RequestDetail
	path := fmt.Sprintf(urlUtilityRequests, requestID)
	resp, err := c.request().
		SetResult(&detail).
		Get(path)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode(), "GET %s [%d]: %s", path, resp.StatusCode(), resp.String())
	return &detail
}

// TryGetRequest is the error-returning variant of GetRequest, for polling
func (c *UtilityClient) TryGetRequest(requestID string) (*ndid.RequestDetail, *resty.Response, error) {
	var detail ndid.RequestDetail
	path := fmt.Sprintf(urlUtilityRequests, requestID)
	resp, err := c.request().
		SetResult(&detail).
		Get(path)
	return &detail, resp, err
}
