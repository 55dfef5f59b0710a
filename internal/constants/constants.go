/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package constants

// Export formats supported by the export service
const (
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
)

// Import history statuses
const (
	ImportStatusPending    = "pending"
	ImportStatusProcessing = "processing"
	ImportStatusSuccess    = "success"
	ImportStatusFailed     = "failed"
)

// DefaultOpenAPIVersion is assigned when a document or configuration does not
// declare its own specification version.
const DefaultOpenAPIVersion = "3.0.0"

// SupportedOpenAPIVersions is the enumerated set of spec versions a
// configuration may declare.
var SupportedOpenAPIVersions = []string{"2.0", "3.0.0", "3.0.1", "3.0.2", "3.0.3", "3.1.0"}

// HTTPMethods lists the operation methods recognized when decomposing an
// OpenAPI document into endpoints. Order matters: imported endpoints are
// sequenced path-by-path in this method order.
var HTTPMethods = []string{"get", "post", "put", "delete", "patch", "options", "head"}

// SequenceStep is the gap left between consecutive sequence_order values so
// endpoints can be inserted or moved without renumbering every row.
const SequenceStep = 10

// Pagination defaults for configuration listing
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)
