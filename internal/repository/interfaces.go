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

package repository

import (
	"time"

	"github.com/jl91/aws-gateway-editor/internal/model"
)

// GatewayConfigRepository defines persistence operations for gateway
// configurations. All read operations see only non-deleted rows.
type GatewayConfigRepository interface {
	Create(config *model.GatewayConfig) error
	GetByUUID(configUUID string) (*model.GatewayConfig, error)
	GetByFileHash(fileHash string) (*model.GatewayConfig, error)
	List(limit, offset int) ([]*model.GatewayConfig, error)
	Count() (int, error)
	Update(config *model.GatewayConfig) error
	SoftDelete(configUUID string) error
	// ActivateExclusive flips is_active on every non-deleted row in a single
	// statement so exactly the target configuration ends up active.
	ActivateExclusive(configUUID string) error
	SetActive(configUUID string, active bool) error
}

// GatewayEndpointRepository defines persistence operations for endpoints
type GatewayEndpointRepository interface {
	Create(endpoint *model.GatewayEndpoint) error
	CreateBatch(endpoints []*model.GatewayEndpoint) error
	GetByUUID(configUUID, endpointUUID string) (*model.GatewayEndpoint, error)
	GetByMethodAndPath(configUUID, method, path string) (*model.GatewayEndpoint, error)
	ListByConfig(configUUID string) ([]*model.GatewayEndpoint, error)
	CountByConfig(configUUID string) (int, error)
	MaxSequenceOrder(configUUID string) (int, error)
	Update(endpoint *model.GatewayEndpoint) error
	SoftDelete(configUUID, endpointUUID string) error
	// ReorderSequence validates every id against the configuration's live
	// endpoints and assigns (position+1)*10 inside one transaction. Either
	// all listed endpoints are renumbered or none are.
	ReorderSequence(configUUID string, endpointUUIDs []string) error
}

// ExportCacheRepository defines persistence operations for export cache rows
type ExportCacheRepository interface {
	Create(entry *model.ExportCache) error
	GetLatest(configUUID, format string) (*model.ExportCache, error)
	ListByConfig(configUUID string) ([]*model.ExportCache, error)
	TouchAccess(entryUUID string, accessedAt time.Time) error
	Delete(entryUUID string) error
}

// ImportHistoryRepository defines persistence operations for import audit rows
type ImportHistoryRepository interface {
	Create(history *model.ImportHistory) error
	Update(history *model.ImportHistory) error
	List(limit int) ([]*model.ImportHistory, error)
}
