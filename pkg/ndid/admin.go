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

package ndid

// RegisterNodeBody registers a node with the registrar
type RegisterNodeBody struct {
	NodeID        string   `json:"node_id"`
	NodeName      string   `json:"node_name"`
	NodeKey       string   `json:"node_key"`
	NodeMasterKey string   `json:"node_master_key"`
	Role          NodeRole `json:"role"`
	MaxIal        float64  `json:"max_ial,omitempty"`
	MaxAal        float64  `json:"max_aal,omitempty"`
}

// UpdateNodeBody updates mutable node registration fields
type UpdateNodeBody struct {
	NodeID   string  `json:"node_id"`
	NodeName string  `json:"node_name,omitempty"`
	MaxIal   float64 `json:"max_ial,omitempty"`
	MaxAal   float64 `json:"max_aal,omitempty"`
}

// NamespaceBody creates a subject namespace
type NamespaceBody struct {
	Namespace   string `json:"namespace"`
	Description string `json:"description,omitempty"`
}

// ServiceBody creates a data service
type ServiceBody struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
}

// ApproveServiceBody allows an AS node to provide a service
type ApproveServiceBody struct {
	NodeID    string `json:"node_id"`
	ServiceID string `json:"service_id"`
}

// TokenBody sets or adjusts a node's token balance
type TokenBody struct {
	NodeID string  `json:"node_id"`
	Amount float64 `json:"amount"`
}

// NodeToken is the utility view of a node's token balance
type NodeToken struct {
	Amount float64 `json:"amount"`
}

// NamespaceInfo is the utility view of a registered namespace
type NamespaceInfo struct {
	Namespace   string `json:"namespace"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// ServiceInfo is the utility view of a registered service
type ServiceInfo struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Active      bool   `json:"active"`
}

// IdPNode is the utility view of a registered IdP
type IdPNode struct {
	NodeID   string  `json:"node_id"`
	NodeName string  `json:"node_name"`
	MaxIal   float64 `json:"max_ial"`
	MaxAal   float64 `json:"max_aal"`
}

// ASNode is the utility view of an AS registered for a service
type ASNode struct {
	NodeID   string  `json:"node_id"`
	NodeName string  `json:"node_name"`
	MinIal   float64 `json:"min_ial"`
	MinAal   float64 `json:"min_aal"`
}
