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

package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jl91/aws-gateway-editor/config"
	"github.com/jl91/aws-gateway-editor/internal/database"
	"github.com/jl91/aws-gateway-editor/internal/events"
	"github.com/jl91/aws-gateway-editor/internal/handler"
	"github.com/jl91/aws-gateway-editor/internal/middleware"
	"github.com/jl91/aws-gateway-editor/internal/repository"
	"github.com/jl91/aws-gateway-editor/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server wires the database, repositories, services, and HTTP routes together
type Server struct {
	router *gin.Engine
	db     *database.DB
	hub    *events.Hub
}

// NewGatewayEditorServer creates a server instance with all dependencies initialized
func NewGatewayEditorServer(cfg *config.Server) (*Server, error) {
	// Initialize database using configuration
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Initialize schema (skip when ExecuteSchemaDDL is false, e.g. deployed Postgres without DDL access)
	if cfg.Database.ExecuteSchemaDDL {
		if err := db.InitSchema(cfg.DBSchemaPath); err != nil {
			return nil, err
		}
	} else {
		log.Printf("Skipping schema DDL execution (DATABASE_EXECUTE_SCHEMA_DDL=false)\n")
	}

	// Initialize repositories
	configRepo := repository.NewGatewayConfigRepo(db)
	endpointRepo := repository.NewGatewayEndpointRepo(db)
	cacheRepo := repository.NewExportCacheRepo(db)
	historyRepo := repository.NewImportHistoryRepo(db)

	// Initialize event hub (needed by every mutating service)
	hub := events.NewHub(cfg.WebSocket.MaxConnections)

	// Initialize services
	gatewayService := service.NewGatewayService(configRepo, endpointRepo, hub)
	endpointService := service.NewEndpointService(configRepo, endpointRepo, hub)
	importService := service.NewImportService(configRepo, endpointRepo, historyRepo, hub)
	exportService := service.NewExportService(configRepo, endpointRepo, cacheRepo,
		time.Duration(cfg.Export.CacheTTL)*time.Second)

	// Initialize handlers
	gatewayHandler := handler.NewGatewayHandler(gatewayService)
	endpointHandler := handler.NewEndpointHandler(endpointService)
	importHandler := handler.NewImportHandler(importService, cfg.Import.TempDir,
		cfg.Import.MaxFileSizeMB, cfg.Import.HistoryLimit)
	exportHandler := handler.NewExportHandler(exportService)
	wsHandler := handler.NewWebSocketHandler(hub)

	// Setup router
	router := gin.Default()

	// Configure and apply CORS middleware first (before auth middleware)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Configure and apply JWT authentication middleware
	authConfig := middleware.AuthConfig{
		SecretKey:      cfg.JWT.SecretKey,
		TokenIssuer:    cfg.JWT.Issuer,
		SkipPaths:      cfg.JWT.SkipPaths,
		SkipValidation: cfg.JWT.SkipValidation,
	}
	router.Use(middleware.AuthMiddleware(authConfig))

	// Register routes
	gatewayHandler.RegisterRoutes(router)
	endpointHandler.RegisterRoutes(router)
	importHandler.RegisterRoutes(router)
	exportHandler.RegisterRoutes(router)
	wsHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Server{
		router: router,
		db:     db,
		hub:    hub,
	}, nil
}

// Start starts the HTTP server
func (s *Server) Start(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: s.router,
	}

	log.Printf("Starting HTTP server on http://localhost:%s", port)
	return srv.ListenAndServe()
}

// Close releases the server's resources. Safe to call once after Start fails
// or the listener stops.
func (s *Server) Close() error {
	s.hub.Close()
	return s.db.Close()
}

// GetRouter returns the gin router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
