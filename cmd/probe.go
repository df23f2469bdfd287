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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ndidplatform/api-e2e-go/internal/config"
	"github.com/ndidplatform/api-e2e-go/internal/log"
	"github.com/ndidplatform/api-e2e-go/internal/restclient"
)

// probeCmd checks that a platform node's API is up, by listing its
// registered namespaces. Exits non-zero when the node is unreachable.
var probeCmd = &cobra.Command{
	Use:   "probe <api-url>",
	Short: "Check a platform node API is up",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := setupContext()
		if err != nil {
			return err
		}

		prefix := config.NewPrefix("api")
		restclient.InitPrefix(prefix)
		prefix.Set(restclient.HTTPConfigURL, args[0])

		client := restclient.New(ctx, prefix)
		res, err := client.R().SetContext(ctx).Get("/utility/namespaces")
		if err != nil || !res.IsSuccess() {
			return restclient.WrapRestErr(ctx, res, err, "node not ready")
		}
		log.L(ctx).Infof("Node at %s is up [%d]", args[0], res.StatusCode())
		return nil
	},
}
