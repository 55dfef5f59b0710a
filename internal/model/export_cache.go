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

// ExportCache is a content-addressed cache row for one serialized export of a
// configuration in one format. Expired rows are purged lazily at lookup time;
// there is no background sweeper.
type ExportCache struct {
	ID             string     `json:"id" db:"uuid"`
	ConfigID       string     `json:"configId" db:"config_uuid"` // FK to GatewayConfig.ID
	FileHash       string     `json:"fileHash" db:"file_hash"`
	FileFormat     string     `json:"fileFormat" db:"file_format"` // json or yaml
	FileContent    []byte     `json:"-" db:"file_content"`
	FileSize       int64      `json:"fileSize" db:"file_size"`
	GeneratedAt    time.Time  `json:"generatedAt" db:"generated_at"`
	ExpiresAt      time.Time  `json:"expiresAt" db:"expires_at"`
	AccessedCount  int        `json:"accessedCount" db:"accessed_count"`
	LastAccessedAt *time.Time `json:"lastAccessedAt,omitempty" db:"last_accessed_at"`
}

// TableName returns the table name for the ExportCache model
func (ExportCache) TableName() string {
	return "export_cache"
}
