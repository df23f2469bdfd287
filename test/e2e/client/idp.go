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

// IdPClient drives the Identity Provider API on a node, including the
// identity onboarding endpoints
type IdPClient struct {
	*NodeClient
}

func NewIdP(node *NodeClient) *IdPClient {
	return &IdPClient{NodeClient: node}
}

// SetCallbacks registers where the platform delivers this IdP's callbacks
func (c *IdPClient) SetCallbacks(t *testing.T, cfg *ndid.IdPCallbackConfig) {
	resp, err := c.request().
		SetBody(cfg).
		Post(urlIdPCallback)
	require.NoError(t, err)
	require.Equal(t, 204, resp.StatusCode(), "POST %s [%d]: %s", urlIdPCallback, resp.StatusCode(), resp.String())
}

// GetCallbacks reads back the registered callback URLs
func (c *IdPClient) GetCallbacks(t *testing.T) *ndid.IdPCallbackConfig {
	var cfg ndid.IdPCallbackConfig
	resp, err := c.request().
		SetResult(&cfg).
		Get(urlIdPCallback)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode(), "GET %s [%d]: %s", urlIdPCallback, resp.StatusCode(), resp.String())
	return &cfg
}

// SubmitResponse answers an incoming request; acknowledged by response_result
func (c *IdPClient) SubmitResponse(t *testing.T, body *ndid.IdPResponseBody, expectedStatus ...int) *ndid.ErrorResponse {
	var errRes ndid.ErrorResponse
	resp, err := c.request().
		SetBody(body).
		SetError(&errRes).
		Post(urlIdPResponse)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 202), resp.StatusCode(), "POST %s [%d]: %s", urlIdPResponse, resp.StatusCode(), resp.String())
	return &errRes
}

// CreateIdentity onboards a subject; acknowledged by create_identity_result
func (c *IdPClient) CreateIdentity(t *testing.T, body *ndid.CreateIdentityBody, expectedStatus ...int) *ndid.ErrorResponse {
	var errRes ndid.ErrorResponse
	resp, err := c.request().
		SetBody(body).
		SetError(&errRes).
		Post(urlIdentity)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 202), resp.StatusCode(), "POST %s [%d]: %s", urlIdentity, resp.StatusCode(), resp.String())
	return &errRes
}

// GetIdentity looks a subject up; 404 means not onboarded at this IdP
func (c *IdPClient) GetIdentity(t *testing.T, namespace, identifier string, expectedStatus ...int) *ndid.IdentityInfo {
	var info ndid.IdentityInfo
	path := fmt.Sprintf(urlIdentityBySubject, namespace, identifier)
	resp, err := c.request().
		SetResult(&info).
		Get(path)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 200), resp.StatusCode(), "GET %s [%d]: %s", path, resp.StatusCode(), resp.String())
	if resp.StatusCode() != 200 {
		return nil
	}
	return &info
}

// AddAccessor adds a key to an existing identity; acknowledged by add_accessor_result
func (c *IdPClient) AddAccessor(t *testing.T, namespace, identifier string, body *ndid.AddAccessorBody, expectedStatus ...int) {
	path := fmt.Sprintf(urlIdentityAccessors, namespace, identifier)
	resp, err := c.request().
		SetBody(body).
		Post(path)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 202), resp.StatusCode(), "POST %s [%d]: %s", path, resp.StatusCode(), resp.String())
}

// UpdateIal changes the IAL this IdP asserts for a subject
func (c *IdPClient) UpdateIal(t *testing.T, namespace, identifier string, body *ndid.UpdateIalBody, expectedStatus ...int) {
	path := fmt.Sprintf(urlIdentityIal, namespace, identifier)
	resp, err := c.request().
		SetBody(body).
		Post(path)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 204), resp.StatusCode(), "POST %s [%d]: %s", path, resp.StatusCode(), resp.String())
}
