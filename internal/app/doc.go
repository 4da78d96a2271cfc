// Package app assembles the HTTP application and runs it.
//
// New is the application factory: every call returns an independent
// *gin.Engine with the page, health and docs routes and the HTML error
// handlers registered. Server owns the listener and graceful shutdown.
package app
