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

package model

import (
	"time"
)

// GatewayEndpoint represents one operation of a gateway configuration.
// The OpenAPI operation fragments (parameters, requestBody, responses,
// security, x-* extensions) are stored as opaque JSON blobs: their shape is
// defined by the OpenAPI specification, not by this service.
type GatewayEndpoint struct {
	ID            string                 `json:"id" db:"uuid"`
	ConfigID      string                 `json:"configId" db:"config_uuid"` // FK to GatewayConfig.ID
	SequenceOrder int                    `json:"sequenceOrder" db:"sequence_order"`
	Method        string                 `json:"method" db:"method"`
	Path          string                 `json:"path" db:"path"`
	OperationID   string                 `json:"operationId,omitempty" db:"operation_id"`
	Summary       string                 `json:"summary,omitempty" db:"summary"`
	Description   string                 `json:"description,omitempty" db:"description"`
	Tags          []string               `json:"tags,omitempty" db:"tags"`
	TargetURL     string                 `json:"targetUrl,omitempty" db:"target_url"`
	PathParams    map[string]interface{} `json:"pathParams,omitempty" db:"path_params"`
	QueryParams   map[string]interface{} `json:"queryParams,omitempty" db:"query_params"`
	Headers       map[string]interface{} `json:"headers,omitempty" db:"headers"`
	RequestBody   map[string]interface{} `json:"requestBody,omitempty" db:"request_body"`
	Responses     map[string]interface{} `json:"responses,omitempty" db:"responses"`
	Security      []interface{}          `json:"security,omitempty" db:"security"`

	// Gateway-specific behavior attached to the operation
	Authentication    map[string]interface{} `json:"authentication,omitempty" db:"authentication"`
	RateLimiting      map[string]interface{} `json:"rateLimiting,omitempty" db:"rate_limiting"`
	CacheConfig       map[string]interface{} `json:"cacheConfig,omitempty" db:"cache_config"`
	CORSConfig        map[string]interface{} `json:"corsConfig,omitempty" db:"cors_config"`
	IntegrationType   string                 `json:"integrationType,omitempty" db:"integration_type"`
	IntegrationConfig map[string]interface{} `json:"integrationConfig,omitempty" db:"integration_config"`

	XExtensions map[string]interface{} `json:"xExtensions,omitempty" db:"x_extensions"`

	CreatedAt time.Time  `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty" db:"updated_at"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

// TableName returns the table name for the GatewayEndpoint model
func (GatewayEndpoint) TableName() string {
	return "gateway_endpoints"
}
