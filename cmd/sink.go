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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ndidplatform/api-e2e-go/internal/config"
	"github.com/ndidplatform/api-e2e-go/internal/log"
	"github.com/ndidplatform/api-e2e-go/pkg/callback"
	"github.com/ndidplatform/api-e2e-go/pkg/events"
)

// sinkCmd runs a standalone callback listener, printing every callback the
// platform delivers. Useful when poking at a stack by hand with curl.
var sinkCmd = &cobra.Command{
	Use:   "sink",
	Short: "Run a callback listener that logs everything it receives",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := setupContext()
		if err != nil {
			return err
		}

		nodeID := config.GetString(config.CallbackNodeID)
		if nodeID == "" {
			nodeID = "sink"
		}
		address := fmt.Sprintf("%s:%d", config.GetString(config.CallbackAddress), config.GetInt(config.CallbackPort))

		registry := events.NewRegistry()
		registry.SetObserver(func(ev *events.Event) {
			log.L(ctx).Infof("node=%s type=%s payload=%s", ev.NodeID, ev.Type, ev.Payload)
		})

		server, err := callback.NewServer(ctx, nodeID, address, registry)
		if err != nil {
			return err
		}
		server.Start()
		log.L(ctx).Infof("Callback sink listening on %s", server.URL())

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		sig := <-sigs
		log.L(ctx).Infof("Shutting down on %s", sig)
		return server.Stop()
	},
}
