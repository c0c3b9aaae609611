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

package config

import "io"

const sampleDefinition = `# Radial topology definition.
#
# The controller builds the topology in a single pass: reservations first,
# then hubs, then spokes. A spoke requires a hub in its region.

[controller]
# Unique path of the deployment unit in the definition tree.
scope = "net/prod"
# Account the controller is deployed in.
account = "111111111111"
# Region the controller is deployed in.
region = "us-east-1"
# Prefix length allocated when a hub or spoke does not specify one.
default_netmask = 16
# Traffic log record format, "default" or "extended".
log_format = "default"
# Pool automatic allocations are carved from.
address_pool = "10.0.0.0/8"
# Optional explicit traffic log destination. Derived from the scope path if
# empty.
# log_destination = "net-prod-traffic-logs"

[[hubs]]
name = "hub-use1"
# Region of the hub. At most one hub per region.
region = "us-east-1"
# Optional account, defaults to the controller account.
account = "222222222222"
max_azs = 3
default_route_table = "main"

[[spokes]]
name = "workload-a"
# Region of the spoke. The region must have a hub.
region = "us-east-1"
account = "333333333333"
availability_zones = ["us-east-1a", "us-east-1b"]
netmask = 20

[[reservations]]
# Externally managed ranges automatic allocation must avoid.
key = "legacy-dc"
prefix = "10.255.0.0/16"
`

// WriteSample writes a commented sample definition.
func WriteSample(w io.Writer) error {
	_, err := io.WriteString(w, sampleDefinition)
	return err
}
