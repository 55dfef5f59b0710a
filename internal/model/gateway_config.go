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

// GatewayConfig represents a gateway configuration: the relational root of one
// OpenAPI document. Metadata carries verbatim OpenAPI root fragments
// (servers, security, tags, externalDocs).
type GatewayConfig struct {
	ID             string                 `json:"id" db:"uuid"`
	Name           string                 `json:"name" db:"name"`
	Version        string                 `json:"version" db:"version"`
	Description    string                 `json:"description,omitempty" db:"description"`
	FileHash       string                 `json:"fileHash,omitempty" db:"file_hash"`
	OpenAPIVersion string                 `json:"openapiVersion" db:"openapi_version"`
	IsActive       bool                   `json:"isActive" db:"is_active"`
	Metadata       map[string]interface{} `json:"metadata,omitempty" db:"metadata"`
	CreatedAt      time.Time              `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt      time.Time              `json:"updatedAt,omitempty" db:"updated_at"`
	DeletedAt      *time.Time             `json:"deletedAt,omitempty" db:"deleted_at"`
	Endpoints      []*GatewayEndpoint     `json:"endpoints,omitempty"`
}

// TableName returns the table name for the GatewayConfig model
func (GatewayConfig) TableName() string {
	return "gateway_configs"
}
