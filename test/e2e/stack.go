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
	"encoding/json"
	"io/ioutil"

	"github.com/ndidplatform/api-e2e-go/pkg/ndid"
)

// Stack describes the platform deployment under test, read from
// $STACK_DIR/stack.json
type Stack struct {
	Name  string  `json:"name,omitempty"`
	Nodes []*Node `json:"nodes"`
}

// Node is one platform node the suites drive
type Node struct {
	ID              string        `json:"id"`
	Role            ndid.NodeRole `json:"role"`
	APIURL          string        `json:"apiUrl"`
	CallbackAddress string        `json:"callbackAddress,omitempty"`
	ProxyNodeID     string        `json:"proxyNodeId,omitempty"`
	PrivateKeyFile  string        `json:"privateKeyFile,omitempty"`
}

func ReadStackFile(filename string) (*Stack, error) {
	jsonBytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var stack Stack
	if err := json.Unmarshal(jsonBytes, &stack); err != nil {
		return nil, err
	}
	return &stack, nil
}

// NodesByRole returns the stack's nodes with the given role, in file order
func (s *Stack) NodesByRole(role ndid.NodeRole) []*Node {
	var nodes []*Node
	for _, n := range s.Nodes {
		if n.Role == role {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// NodeByID returns the node with the given ID, or nil
func (s *Stack) NodeByID(id string) *Node {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}
