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
	"errors"
	"time"

	"github.com/jl91/aws-gateway-editor/internal/database"
	"github.com/jl91/aws-gateway-editor/internal/model"

	"github.com/google/uuid"
)

// ExportCacheRepo implements ExportCacheRepository
type ExportCacheRepo struct {
	db *database.DB
}

// NewExportCacheRepo creates a new export cache repository
func NewExportCacheRepo(db *database.DB) ExportCacheRepository {
	return &ExportCacheRepo{db: db}
}

const exportCacheColumns = `uuid, config_uuid, file_hash, file_format, file_content, file_size,
	generated_at, expires_at, accessed_count, last_accessed_at`

// Create inserts a cache entry
func (r *ExportCacheRepo) Create(entry *model.ExportCache) error {
	entry.ID = uuid.New().String()
	if entry.GeneratedAt.IsZero() {
		entry.GeneratedAt = time.Now()
	}

	query := `
		INSERT INTO export_cache (uuid, config_uuid, file_hash, file_format, file_content,
			file_size, generated_at, expires_at, accessed_count, last_accessed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var lastAccessed interface{}
	if entry.LastAccessedAt != nil {
		lastAccessed = *entry.LastAccessedAt
	}

	_, err := r.db.Exec(r.db.Rebind(query),
		entry.ID, entry.ConfigID, entry.FileHash, entry.FileFormat, entry.FileContent,
		entry.FileSize, entry.GeneratedAt, entry.ExpiresAt, entry.AccessedCount, lastAccessed)
	return err
}

// GetLatest retrieves the most recently generated cache entry for a
// configuration and format, expired or not. Expiry is the service's call.
func (r *ExportCacheRepo) GetLatest(configUUID, format string) (*model.ExportCache, error) {
	query := `
		SELECT ` + exportCacheColumns + `
		FROM export_cache
		WHERE config_uuid = ? AND file_format = ?
		ORDER BY generated_at DESC
		LIMIT 1
	`

	entry, err := scanExportCache(r.db.QueryRow(r.db.Rebind(query), configUUID, format))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

// ListByConfig retrieves all cache entries of a configuration
func (r *ExportCacheRepo) ListByConfig(configUUID string) ([]*model.ExportCache, error) {
	query := `
		SELECT ` + exportCacheColumns + `
		FROM export_cache
		WHERE config_uuid = ?
		ORDER BY generated_at DESC
	`

	rows, err := r.db.Query(r.db.Rebind(query), configUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.ExportCache
	for rows.Next() {
		entry, err := scanExportCache(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// TouchAccess increments the access counter and records the access time
func (r *ExportCacheRepo) TouchAccess(entryUUID string, accessedAt time.Time) error {
	query := `
		UPDATE export_cache SET accessed_count = accessed_count + 1, last_accessed_at = ?
		WHERE uuid = ?
	`
	_, err := r.db.Exec(r.db.Rebind(query), accessedAt, entryUUID)
	return err
}

// Delete removes a cache entry
func (r *ExportCacheRepo) Delete(entryUUID string) error {
	_, err := r.db.Exec(r.db.Rebind(`DELETE FROM export_cache WHERE uuid = ?`), entryUUID)
	return err
}

func scanExportCache(row rowScanner) (*model.ExportCache, error) {
	entry := &model.ExportCache{}
	var lastAccessed sql.NullTime

	err := row.Scan(&entry.ID, &entry.ConfigID, &entry.FileHash, &entry.FileFormat,
		&entry.FileContent, &entry.FileSize, &entry.GeneratedAt, &entry.ExpiresAt,
		&entry.AccessedCount, &lastAccessed)
	if err != nil {
		return nil, err
	}

	if lastAccessed.Valid {
		entry.LastAccessedAt = &lastAccessed.Time
	}
	return entry, nil
}
