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
	"database/sql"
	"time"

	"github.com/jl91/aws-gateway-editor/internal/database"
	"github.com/jl91/aws-gateway-editor/internal/model"

	"github.com/google/uuid"
)

// ImportHistoryRepo implements ImportHistoryRepository
type ImportHistoryRepo struct {
	db *database.DB
}

// NewImportHistoryRepo creates a new import history repository
func NewImportHistoryRepo(db *database.DB) ImportHistoryRepository {
	return &ImportHistoryRepo{db: db}
}

// Create inserts an import history record
func (r *ImportHistoryRepo) Create(history *model.ImportHistory) error {
	history.ID = uuid.New().String()
	if history.ImportedAt.IsZero() {
		history.ImportedAt = time.Now()
	}

	query := `
		INSERT INTO import_history (uuid, config_uuid, file_name, file_size, file_type,
			import_status, error_details, endpoints_count, processing_time_ms, imported_at, imported_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(r.db.Rebind(query),
		history.ID, nullString(history.ConfigID), history.FileName, history.FileSize,
		history.FileType, history.ImportStatus, nullString(history.ErrorDetails),
		history.EndpointsCount, history.ProcessingTimeMs, history.ImportedAt,
		nullString(history.ImportedBy))
	return err
}

// Update records the outcome of an import run
func (r *ImportHistoryRepo) Update(history *model.ImportHistory) error {
	query := `
		UPDATE import_history
		SET config_uuid = ?, import_status = ?, error_details = ?, endpoints_count = ?,
			processing_time_ms = ?
		WHERE uuid = ?
	`

	_, err := r.db.Exec(r.db.Rebind(query),
		nullString(history.ConfigID), history.ImportStatus, nullString(history.ErrorDetails),
		history.EndpointsCount, history.ProcessingTimeMs, history.ID)
	return err
}

// List retrieves the most recent import records
func (r *ImportHistoryRepo) List(limit int) ([]*model.ImportHistory, error) {
	query := `
		SELECT uuid, config_uuid, file_name, file_size, file_type, import_status,
			error_details, endpoints_count, processing_time_ms, imported_at, imported_by
		FROM import_history
		ORDER BY imported_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(r.db.Rebind(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*model.ImportHistory
	for rows.Next() {
		history := &model.ImportHistory{}
		var configUUID, errorDetails, importedBy sql.NullString
		if err := rows.Scan(&history.ID, &configUUID, &history.FileName, &history.FileSize,
			&history.FileType, &history.ImportStatus, &errorDetails, &history.EndpointsCount,
			&history.ProcessingTimeMs, &history.ImportedAt, &importedBy); err != nil {
			return nil, err
		}
		history.ConfigID = configUUID.String
		history.ErrorDetails = errorDetails.String
		history.ImportedBy = importedBy.String
		records = append(records, history)
	}

	return records, rows.Err()
}
