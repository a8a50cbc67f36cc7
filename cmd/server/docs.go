// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

// @title CreativePathway API
// @version 1.0.0
// @description Behavioral telemetry ingestion API based on Park et al. (2017) research.
// @description
// @description ## Rate Limiting
// @description
// @description Budgets are per client IP and fixed-window:
// @description - everything under /api: 100 requests per 15 minutes
// @description - POST /api/v1/behavioral-data: additionally 30 requests per minute
// @description - GET /health: 60 requests per minute
// @description
// @description Responses carry `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "type": "NotFoundError",
// @description     "message": "Endpoint not found",
// @description     "timestamp": "2024-01-15T10:30:00.000Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/creativepathway/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health and documentation endpoints
//
// @tag.name Telemetry
// @tag.description Behavioral data submission
package main
