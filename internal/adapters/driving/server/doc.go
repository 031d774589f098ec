// Package server provides the reference recipe backend: a REST collection
// served over HTTP by the RecipeCatalogue driving port.
//
// Routes, relative to the configured collection path (default /api):
//
//	GET    {path}       list all recipes
//	POST   {path}       create a recipe (201)
//	PUT    {path}/{id}  update a recipe
//	DELETE {path}/{id}  delete a recipe
//	GET    /healthz     liveness
//	GET    /metrics     Prometheus metrics
//
// Bodies use the wire format of package wire. API routes pass through panic
// recovery, request id, rate limiting, logging and metrics middleware.
package server
