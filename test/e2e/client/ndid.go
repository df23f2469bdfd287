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

	"github.com/stretchr/testify/require"

	"github.com/ndidplatform/api-e2e-go/pkg/ndid"
)

// NDIDClient drives the registrar's administrative API
type NDIDClient struct {
	*NodeClient
}

func NewNDID(node *NodeClient) *NDIDClient {
	return &NDIDClient{NodeClient: node}
}

// RegisterNode registers a node and its keys with the registrar
func (c *NDIDClient) RegisterNode(t *testing.T, body *ndid.RegisterNodeBody, expectedStatus ...int) {
	resp, err := c.request().
		SetBody(body).
		Post(urlNDIDRegisterNode)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 201), resp.StatusCode(), "POST %s [%d]: %s", urlNDIDRegisterNode, resp.StatusCode(), resp.String())
}

// UpdateNode updates mutable registration fields of a node
func (c *NDIDClient) UpdateNode(t *testing.T, body *ndid.UpdateNodeBody, expectedStatus ...int) {
	resp, err := c.request().
		SetBody(body).
		Post(urlNDIDUpdateNode)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 204), resp.StatusCode(), "POST %s [%d]: %s", urlNDIDUpdateNode, resp.StatusCode(), resp.String())
}

// CreateNamespace registers a subject namespace
func (c *NDIDClient) CreateNamespace(t *testing.T, body *ndid.NamespaceBody, expectedStatus ...int) *ndid.ErrorResponse {
	var errRes ndid.ErrorResponse
	resp, err := c.request().
		SetBody(body).
		SetError(&errRes).
		Post(urlNDIDNamespaces)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 201), resp.StatusCode(), "POST %s [%d]: %s", urlNDIDNamespaces, resp.StatusCode(), resp.String())
	return &errRes
}

// EnableNamespace re-enables a disabled namespace
func (c *NDIDClient) EnableNamespace(t *testing.T, namespace string, expectedStatus ...int) {
	path := fmt.Sprintf(urlNDIDNamespaceEnable, namespace)
	resp, err := c.request().Post(path)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 204), resp.StatusCode(), "POST %s [%d]: %s", path, resp.StatusCode(), resp.String())
}

// DisableNamespace stops new identities being created in a namespace
func (c *NDIDClient) DisableNamespace(t *testing.T, namespace string, expectedStatus ...int) {
	path := fmt.Sprintf(urlNDIDNamespaceDisable, namespace)
	resp, err := c.request().Post(path)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 204), resp.StatusCode(), "POST %s [%d]: %s", path, resp.StatusCode(), resp.String())
}

// CreateService registers a data service
func (c *NDIDClient) CreateService(t *testing.T, body *ndid.ServiceBody, expectedStatus ...int) {
	resp, err := c.request().
		SetBody(body).
		Post(urlNDIDServices)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 201), resp.StatusCode(), "POST %s [%d]: %s", urlNDIDServices, resp.StatusCode(), resp.String())
}

// EnableService re-enables a disabled service
func (c *NDIDClient) EnableService(t *testing.T, serviceID string, expectedStatus ...int) {
	path := fmt.Sprintf(urlNDIDServiceEnable, serviceID)
	resp, err := c.request().Post(path)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 204), resp.StatusCode(), "POST %s [%d]: %s", path, resp.StatusCode(), resp.String())
}

// DisableService stops the service being requested
func (c *NDIDClient) DisableService(t *testing.T, serviceID string, expectedStatus ...int) {
	path := fmt.Sprintf(urlNDIDServiceDisable, serviceID)
	resp, err := c.request().Post(path)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 204), resp.StatusCode(), "POST %s [%d]: %s", path, resp.StatusCode(), resp.String())
}

// ApproveService allows an AS node to provide a service
func (c *NDIDClient) ApproveService(t *testing.T, body *ndid.ApproveServiceBody, expectedStatus ...int) {
	resp, err := c.request().
		SetBody(body).
		Post(urlNDIDApproveService)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 204), resp.StatusCode(), "POST %s [%d]: %s", urlNDIDApproveService, resp.StatusCode(), resp.String())
}

// SetToken sets a node's token balance to an absolute amount
func (c *NDIDClient) SetToken(t *testing.T, body *ndid.TokenBody, expectedStatus ...int) {
	resp, err := c.request().
		SetBody(body).
		Post(urlNDIDSetToken)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 204), resp.StatusCode(), "POST %s [%d]: %s", urlNDIDSetToken, resp.StatusCode(), resp.String())
}

// AddToken credits a node's token balance
func (c *NDIDClient) AddToken(t *testing.T, body *ndid.TokenBody, expectedStatus ...int) {
	resp, err := c.request().
		SetBody(body).
		Post(urlNDIDAddToken)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 204), resp.StatusCode(), "POST %s [%d]: %s", urlNDIDAddToken, resp.StatusCode(), resp.String())
}

// ReduceToken debits a node's token balance
func (c *NDIDClient) ReduceToken(t *testing.T, body *ndid.TokenBody, expectedStatus ...int) {
	resp, err := c.request().
		SetBody(body).
		Post(urlNDIDReduceToken)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 204), resp.StatusCode(), "POST %s [%d]: %s", urlNDIDReduceToken, resp.StatusCode(), resp.String())
}
