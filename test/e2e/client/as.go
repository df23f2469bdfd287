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

// ASClient drives the Authentication Service API on a node
type ASClient struct {
	*NodeClient
}

func NewAS(node *NodeClient) *ASClient {
	return &ASClient{NodeClient: node}
}

// RegisterService declares this node a provider of the service, and where
// its data_request callbacks go
func (c *ASClient) RegisterService(t *testing.T, serviceID string, cfg *ndid.ASServiceConfig, expectedStatus ...int) {
	path := fmt.Sprintf(urlASService, serviceID)
	resp, err := c.request().
		SetBody(cfg).
		Post(path)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 204), resp.StatusCode(), "POST %s [%d]: %s", path, resp.StatusCode(), resp.String())
}

// GetService reads back the service registration
func (c *ASClient) GetService(t *testing.T, serviceID string) *ndid.ASServiceConfig {
	var cfg ndid.ASServiceConfig
	path := fmt.Sprintf(urlASService, serviceID)
	resp, err := c.request().
		SetResult(&cfg).
		Get(path)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode(), "GET %s [%d]: %s", path, resp.StatusCode(), resp.String())
	return &cfg
}

// SendData answers a data request; acknowledged by send_data_result
func (c *ASClient) SendData(t *testing.T, requestID, serviceID string, body *ndid.SendDataBody, expectedStatus ...int) {
	path := fmt.Sprintf(urlASData, requestID, serviceID)
	resp, err := c.request().
		SetBody(body).
		Post(path)
	require.NoError(t, err)
	require.Equal(t, pickExpected(expectedStatus, 202), resp.StatusCode(), "POST %s [%d]: %s", path, resp.StatusCode(), resp.String())
}
