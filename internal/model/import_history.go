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

// ImportHistory is the audit record of one import attempt. Rows are created
// when the attempt starts and updated exactly once at completion; they are
// never deleted by normal operation.
type ImportHistory struct {
	ID               string    `json:"id" db:"uuid"`
	ConfigID         string    `json:"configId,omitempty" db:"config_uuid"` // set-null FK to GatewayConfig.ID
	FileName         string    `json:"fileName" db:"file_name"`
	FileSize         int64     `json:"fileSize,omitempty" db:"file_size"`
	FileType         string    `json:"fileType,omitempty" db:"file_type"`
	ImportStatus     string    `json:"importStatus" db:"import_status"`
	ErrorDetails     string    `json:"errorDetails,omitempty" db:"error_details"`
	EndpointsCount   int       `json:"endpointsCount,omitempty" db:"endpoints_count"`
	ProcessingTimeMs int64     `json:"processingTimeMs,omitempty" db:"processing_time_ms"`
	ImportedAt       time.Time `json:"importedAt" db:"imported_at"`
	ImportedBy       string    `json:"importedBy,omitempty" db:"imported_by"`
}

// TableName returns the table name for the ImportHistory model
func (ImportHistory) TableName() string {
	return "import_history"
}
