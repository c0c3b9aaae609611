// Copyright 2026 Radial Networks
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/radialnet/radial/pkg/private/serrors"
	"github.com/radialnet/radial/topology"
	"github.com/radialnet/radial/topology/config"
)

func newPlan(pather CommandPather) *cobra.Command {
	var flags struct {
		json bool
	}

	var cmd = &cobra.Command{
		Use:   "plan <definition-file>",
		Short: "Build a topology definition and show the allocation plan",
		Example: fmt.Sprintf(`  %[1]s plan topology.toml
  %[1]s plan --json topology.toml`, pather.CommandPath()),
		Long: `'plan' builds the topology described by a definition file and shows
the resulting allocation plan.

The definition is processed the way a deployment would process it:
reservations first, then hubs, then spokes. Nothing is provisioned; the
command only shows what a deployment of the definition would create.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			def, err := config.Load(args[0])
			if err != nil {
				return err
			}
			ctrl, err := def.Build()
			if err != nil {
				return serrors.Wrap("building topology", err)
			}
			plan := ctrl.Plan()
			if flags.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}
			renderPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.json, "json", false,
		"Write the output as machine readable json")

	return cmd
}

func renderPlan(w io.Writer, plan topology.Plan) {
	fmt.Fprintf(w, "Scope:           %s\n", plan.Scope)
	fmt.Fprintf(w, "Environment:     %s/%s\n", plan.Account, plan.Region)
	fmt.Fprintf(w, "Log destination: %s (%s format)\n", plan.LogDestination, plan.LogFormat)
	fmt.Fprintln(w)

	var rows [][]string
	for _, hub := range plan.Hubs {
		rows = append(rows, []string{
			"hub",
			hub.Name,
			hub.Account.String(),
			hub.Region.String(),
			hub.Prefix.String(),
			hub.RouteTable,
		})
		for _, spoke := range hub.Spokes {
			rows = append(rows, []string{
				"spoke",
				spoke.Name,
				spoke.Account.String(),
				hub.Region.String(),
				spoke.Prefix.String(),
				"-",
			})
		}
	}
	for _, res := range plan.Reserved {
		rows = append(rows, []string{
			"reserved",
			res.Key,
			"-",
			"-",
			res.Prefix.String(),
			"-",
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"TYPE", "NAME", "ACCOUNT", "REGION", "PREFIX", "ROUTE TABLE"})
	table.AppendBulk(rows)
	table.Render()

	if len(plan.Accounts) > 0 {
		fmt.Fprintf(w, "\nShared with accounts: %s\n", joinStringers(plan.Accounts))
	}
	if len(plan.Regions) > 0 {
		fmt.Fprintf(w, "Peered regions:       %s\n", joinStringers(plan.Regions))
	}
}

func joinStringers[T fmt.Stringer](items []T) string {
	strs := make([]string, 0, len(items))
	for _, item := range items {
		strs = append(strs, item.String())
	}
	return strings.Join(strs, ", ")
}
