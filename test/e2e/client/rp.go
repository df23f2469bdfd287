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

// RPClient drives the Relying Party API on a node
type RPClient struct {
	*NodeClient
}

func NewRP(node *NodeClient) *RPClient {
	return &RPClient{NodeClient: node}
}

// CreateRequest starts a verification request against a subject. The result
// arrives asynchronously as a create_request_result callback.
func (c *RPClient) CreateRequest(t *testing.T, namespace, identifier string, body *ndid.CreateRequestBody, expectedStatus ...int) *ndid.ErrorResponse {
	var errRes ndid.ErrorResponse
	path := fmt.Sprintf(urlRPRequests, namespace, identifier)
	resp, err := c.request().
		SetBody(body).
		SetError(&errRes).
		Post(path)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 202), resp.StatusCode(), "POST %s [%d]: %s", path, resp.StatusCode(), resp.String())
	return &errRes
}

// CloseRequest closes an in-flight request; acknowledged by close_request_result
func (c *RPClient) CloseRequest(t *testing.T, body *ndid.CloseRequestBody, expectedStatus ...int) {
	resp, err := c.request().
		SetBody(body).
		Post(urlRPRequestClose)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 202), resp.StatusCode(), "POST %s [%d]: %s", urlRPRequestClose, resp.StatusCode(), resp.String())
}

// GetRequestData fetches the AS answers collected for a completed request
func (c *RPClient) GetRequestData(t *testing.T, requestID string) (data []*ndid.ReceivedData) {
	path := fmt.Sprintf(urlRPRequestData, requestID)
	resp, err := c.request().
		SetResult(&data).
		Get(path)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode(), "GET %s [%d]: %s", path, resp.StatusCode(), resp.String())
	return data
}

// GetRequestIDByReference resolves the caller's reference ID to the platform request ID
func (c *RPClient) GetRequestIDByReference(t *testing.T, referenceID string, expectedStatus ...int) string {
	var result struct {
		RequestID string `json:"request_id"`
	}
	path := fmt.Sprintf(urlRPRequestReferences, referenceID)
	resp, err := c.request().
		SetResult(&result).
		Get(path)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 200), resp.StatusCode(), "GET %s [%d]: %s", path, resp.StatusCode(), resp.String())
	return result.RequestID
}
