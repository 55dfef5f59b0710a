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
	"path/filepath"
	"testing"

	"github.com/jl91/aws-gateway-editor/config"
	"github.com/jl91/aws-gateway-editor/internal/database"
	"github.com/jl91/aws-gateway-editor/internal/model"
)

// newTestDB opens a throwaway SQLite database with the real schema applied
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.NewConnection(&config.Database{
		Driver: "sqlite3",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.InitSchema(filepath.Join("..", "database", "schema.sql")); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}
	return db
}

func newTestConfig(t *testing.T, repo GatewayConfigRepository, name, fileHash string) *model.GatewayConfig {
	t.Helper()
	cfg := &model.GatewayConfig{
		Name:           name,
		Version:        "1.0.0",
		FileHash:       fileHash,
		OpenAPIVersion: "3.0.0",
	}
	if err := repo.Create(cfg); err != nil {
		t.Fatalf("failed to create configuration: %v", err)
	}
	return cfg
}
