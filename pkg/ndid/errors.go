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

import "fmt"

// Platform error codes asserted by the suites. The platform publishes many
// more; only the ones a test asserts on are named here.
const (
	ErrCodeNamespaceNotFound     int64 = 20005
	ErrCodeServiceNotFound       int64 = 20006
	ErrCodeIdentityAlreadyExists int64 = 20011
	ErrCodeRequestNotFound       int64 = 20012
	ErrCodeRequestAlreadyClosed  int64 = 20025
	ErrCodeNodeTokenExhausted    int64 = 25007
)

// APIError is the platform's error body, on HTTP errors and failed callbacks
type APIError struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform error %d: %s", e.Code, e.Message)
}

// ErrorResponse is the envelope the platform wraps APIError in on HTTP errors
type ErrorResponse struct {
	Error *APIError `json:"error"`
}
