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

// GatewayConfigRepo implements GatewayConfigRepository
type GatewayConfigRepo struct {
	db *database.DB
}

// NewGatewayConfigRepo creates a new gateway configuration repository
func NewGatewayConfigRepo(db *database.DB) GatewayConfigRepository {
	return &GatewayConfigRepo{db: db}
}

const gatewayConfigColumns = `uuid, name, version, description, file_hash, openapi_version,
	is_active, metadata, created_at, updated_at`

// Create inserts a new gateway configuration
func (r *GatewayConfigRepo) Create(config *model.GatewayConfig) error {
	config.ID = uuid.New().String()
	config.CreatedAt = time.Now()
	config.UpdatedAt = time.Now()

	metadataJSON, err := serializeJSON(config.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO gateway_configs (uuid, name, version, description, file_hash, openapi_version,
			is_active, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(r.db.Rebind(query), config.ID, config.Name, config.Version,
		nullString(config.Description), nullString(config.FileHash), config.OpenAPIVersion,
		config.IsActive, metadataJSON, config.CreatedAt, config.UpdatedAt)
	return err
}

// GetByUUID retrieves a non-deleted configuration by UUID
func (r *GatewayConfigRepo) GetByUUID(configUUID string) (*model.GatewayConfig, error) {
	query := `
		SELECT ` + gatewayConfigColumns + `
		FROM gateway_configs WHERE uuid = ? AND deleted_at IS NULL
	`
	return r.scanOne(r.db.QueryRow(r.db.Rebind(query), configUUID))
}

// GetByFileHash retrieves a non-deleted configuration by its content hash
func (r *GatewayConfigRepo) GetByFileHash(fileHash string) (*model.GatewayConfig, error) {
	query := `
		SELECT ` + gatewayConfigColumns + `
		FROM gateway_configs WHERE file_hash = ? AND deleted_at IS NULL
	`
	return r.scanOne(r.db.QueryRow(r.db.Rebind(query), fileHash))
}

// List retrieves non-deleted configurations, newest first
func (r *GatewayConfigRepo) List(limit, offset int) ([]*model.GatewayConfig, error) {
	query := `
		SELECT ` + gatewayConfigColumns + `
		FROM gateway_configs WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT ? OFFSET ?
	`

	rows, err := r.db.Query(r.db.Rebind(query), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*model.GatewayConfig
	for rows.Next() {
		config, err := r.scanConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}

	return configs, rows.Err()
}

// Count returns the number of non-deleted configurations
func (r *GatewayConfigRepo) Count() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM gateway_configs WHERE deleted_at IS NULL`
	err := r.db.QueryRow(query).Scan(&count)
	return count, err
}

// Update modifies an existing configuration
func (r *GatewayConfigRepo) Update(config *model.GatewayConfig) error {
	config.UpdatedAt = time.Now()

	metadataJSON, err := serializeJSON(config.Metadata)
	if err != nil {
		return err
	}

	query := `
		UPDATE gateway_configs
		SET name = ?, version = ?, description = ?, file_hash = ?, openapi_version = ?,
			is_active = ?, metadata = ?, updated_at = ?
		WHERE uuid = ? AND deleted_at IS NULL
	`

	_, err = r.db.Exec(r.db.Rebind(query), config.Name, config.Version,
		nullString(config.Description), nullString(config.FileHash), config.OpenAPIVersion,
		config.IsActive, metadataJSON, config.UpdatedAt, config.ID)
	return err
}

// SoftDelete marks a configuration as deleted without removing the row
func (r *GatewayConfigRepo) SoftDelete(configUUID string) error {
	query := `UPDATE gateway_configs SET deleted_at = ?, updated_at = ? WHERE uuid = ? AND deleted_at IS NULL`
	now := time.Now()
	_, err := r.db.Exec(r.db.Rebind(query), now, now, configUUID)
	return err
}

// ActivateExclusive activates one configuration and deactivates every other
// in a single conditional update, so no interleaving of concurrent calls can
// leave two configurations active.
func (r *GatewayConfigRepo) ActivateExclusive(configUUID string) error {
	query := `UPDATE gateway_configs SET is_active = (uuid = ?), updated_at = ? WHERE deleted_at IS NULL`
	_, err := r.db.Exec(r.db.Rebind(query), configUUID, time.Now())
	return err
}

// SetActive updates the active flag of a single configuration
func (r *GatewayConfigRepo) SetActive(configUUID string, active bool) error {
	query := `UPDATE gateway_configs SET is_active = ?, updated_at = ? WHERE uuid = ? AND deleted_at IS NULL`
	_, err := r.db.Exec(r.db.Rebind(query), active, time.Now(), configUUID)
	return err
}

func (r *GatewayConfigRepo) scanOne(row *sql.Row) (*model.GatewayConfig, error) {
	config, err := r.scanConfig(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return config, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *GatewayConfigRepo) scanConfig(row rowScanner) (*model.GatewayConfig, error) {
	config := &model.GatewayConfig{}
	var description, fileHash, metadataJSON sql.NullString

	err := row.Scan(&config.ID, &config.Name, &config.Version, &description, &fileHash,
		&config.OpenAPIVersion, &config.IsActive, &metadataJSON, &config.CreatedAt, &config.UpdatedAt)
	if err != nil {
		return nil, err
	}

	config.Description = description.String
	config.FileHash = fileHash.String
	if err := deserializeJSON(metadataJSON, &config.Metadata); err != nil {
		return nil, err
	}

	return config, nil
}
