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

package service

import (
	"path/filepath"
	"testing"

	"github.com/jl91/aws-gateway-editor/config"
	"github.com/jl91/aws-gateway-editor/internal/database"
	"github.com/jl91/aws-gateway-editor/internal/repository"
)

// testRepos bundles the repositories backed by one throwaway SQLite database
type testRepos struct {
	configs   repository.GatewayConfigRepository
	endpoints repository.GatewayEndpointRepository
	cache     repository.ExportCacheRepository
	history   repository.ImportHistoryRepository
}

func newTestRepos(t *testing.T) *testRepos {
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

	return &testRepos{
		configs:   repository.NewGatewayConfigRepo(db),
		endpoints: repository.NewGatewayEndpointRepo(db),
		cache:     repository.NewExportCacheRepo(db),
		history:   repository.NewImportHistoryRepo(db),
	}
}
