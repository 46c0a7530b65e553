// Package server implements the MCP (Model Context Protocol) server that
// exposes the raster editing core as tools.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout, one message per line.
// It owns a registry of editing sessions keyed by opaque handles; every tool
// that edits or inspects an image addresses a session by the handle that
// image_load returned.
//
// # Protocol Flow
//
//  1. Client sends "initialize", server responds with capabilities.
//  2. Client sends "tools/list" to discover the tool catalog.
//  3. Client sends "tools/call" requests to load, edit, inspect, and save.
//
// # Tool Groups
//
//   - Session lifecycle: image_load, session_status, session_close
//   - Editing: filter_apply, filter_list, edit_undo, edit_redo, edit_reset
//   - Persistence: image_save
//   - Analysis: image_histogram, image_sample_color, image_dominant_colors
//
// # Error Handling
//
// Protocol-level failures (unparseable params, unknown methods) use the
// standard JSON-RPC error codes. Tool execution failures (unknown session,
// empty history, edit before load, a rejected concurrent edit) are
// reported with code -32000 and the underlying error message as data. The
// session itself is never left in a partial state by a failed tool call.
//
// # Logging
//
// All logging goes to stderr; stdout carries only protocol frames. Set
// RASTER_MCP_LOG_LEVEL=debug for per-call logging.
package server
