package server

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/pixelsmith/raster-edit-mcp/internal/analysis"
	"github.com/pixelsmith/raster-edit-mcp/internal/filter"
	"github.com/pixelsmith/raster-edit-mcp/internal/imageio"
	"github.com/pixelsmith/raster-edit-mcp/internal/session"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "filter_apply").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.cfg.DebugMode {
		log.Printf("tool call: %s", params.Name)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Session Lifecycle
	case "image_load":
		return s.handleImageLoad(args)
	case "session_status":
		return s.handleSessionStatus(args)
	case "session_close":
		return s.handleSessionClose(args)

	// Editing
	case "filter_apply":
		return s.handleFilterApply(args)
	case "filter_list":
		return s.handleFilterList(args)
	case "edit_undo":
		return s.handleEditUndo(args)
	case "edit_redo":
		return s.handleEditRedo(args)
	case "edit_reset":
		return s.handleEditReset(args)

	// Persistence
	case "image_save":
		return s.handleImageSave(args)

	// Analysis
	case "image_histogram":
		return s.handleImageHistogram(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// SnapshotResult is the response payload for every mutating edit operation:
// the resulting image as a base64 PNG preview plus the state flags the
// client needs to enable or disable its controls.
type SnapshotResult struct {
	SessionID   string              `json:"session_id"`
	Width       int                 `json:"width"`
	Height      int                 `json:"height"`
	ImageBase64 string              `json:"image_base64"`
	MimeType    string              `json:"mime_type"`
	Histogram   *analysis.Histogram `json:"histogram,omitempty"`
	Dirty       bool                `json:"dirty"`
	CanUndo     bool                `json:"can_undo"`
	CanRedo     bool                `json:"can_redo"`
}

// snapshotResult converts a session snapshot into a response payload.
// The preview encodes the full-resolution buffer unless PreviewMaxDim caps
// it; a failed encode degrades to an empty preview rather than failing the
// operation that produced the snapshot.
func (s *Server) snapshotResult(id string, snap *session.Snapshot) *SnapshotResult {
	encoded, err := imageio.EncodePNGBase64(snap.Buffer, s.cfg.PreviewMaxDim)
	if err != nil {
		log.Printf("preview encode failed for %s: %v", id, err)
		encoded = ""
	}
	return &SnapshotResult{
		SessionID:   id,
		Width:       snap.Buffer.Width,
		Height:      snap.Buffer.Height,
		ImageBase64: encoded,
		MimeType:    "image/png",
		Histogram:   snap.Histogram,
		Dirty:       snap.Dirty,
		CanUndo:     snap.CanUndo,
		CanRedo:     snap.CanRedo,
	}
}

// === Session Lifecycle Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

// LoadResult describes a freshly started session.
type LoadResult struct {
	SessionID string              `json:"session_id"`
	Width     int                 `json:"width"`
	Height    int                 `json:"height"`
	Format    string              `json:"format"`
	Histogram *analysis.Histogram `json:"histogram,omitempty"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	info, err := imageio.LoadInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	id, sess := s.newSession()
	if err := sess.Load(buf); err != nil {
		s.closeSession(id)
		return nil, err
	}

	result := &LoadResult{
		SessionID: id,
		Width:     info.Width,
		Height:    info.Height,
		Format:    info.Format,
	}
	if hist, err := analysis.Compute(sess.Current()); err == nil {
		result.Histogram = hist
	}
	return result, nil
}

type sessionArgs struct {
	SessionID string `json:"session_id"`
}

// StatusResult reports session state without an image payload.
type StatusResult struct {
	SessionID string `json:"session_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Dirty     bool   `json:"dirty"`
	CanUndo   bool   `json:"can_undo"`
	CanRedo   bool   `json:"can_redo"`
}

func (s *Server) handleSessionStatus(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.lookupSession(a.SessionID)
	if err != nil {
		return nil, err
	}
	snap, err := sess.Status()
	if err != nil {
		return nil, err
	}
	return &StatusResult{
		SessionID: a.SessionID,
		Width:     snap.Buffer.Width,
		Height:    snap.Buffer.Height,
		Dirty:     snap.Dirty,
		CanUndo:   snap.CanUndo,
		CanRedo:   snap.CanRedo,
	}, nil
}

func (s *Server) handleSessionClose(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.closeSession(a.SessionID); err != nil {
		return nil, err
	}
	return map[string]interface{}{"closed": a.SessionID}, nil
}

// === Editing Handlers ===

type filterApplyArgs struct {
	SessionID  string  `json:"session_id"`
	Filter     string  `json:"filter"`
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	BlurRadius int     `json:"blur_radius"`
}

func (s *Server) handleFilterApply(args json.RawMessage) (interface{}, error) {
	var a filterApplyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.lookupSession(a.SessionID)
	if err != nil {
		return nil, err
	}

	snap, err := sess.Apply(filter.Kind(a.Filter), filter.Params{
		Brightness: a.Brightness,
		Contrast:   a.Contrast,
		BlurRadius: a.BlurRadius,
	})
	if err != nil {
		return nil, err
	}
	return s.snapshotResult(a.SessionID, snap), nil
}

// FilterListResult names the available filter kinds.
type FilterListResult struct {
	Filters []string `json:"filters"`
}

func (s *Server) handleFilterList(json.RawMessage) (interface{}, error) {
	kinds := filter.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	sort.Strings(names)
	return &FilterListResult{Filters: names}, nil
}

func (s *Server) handleEditUndo(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.lookupSession(a.SessionID)
	if err != nil {
		return nil, err
	}
	snap, err := sess.Undo()
	if err != nil {
		return nil, err
	}
	return s.snapshotResult(a.SessionID, snap), nil
}

func (s *Server) handleEditRedo(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.lookupSession(a.SessionID)
	if err != nil {
		return nil, err
	}
	snap, err := sess.Redo()
	if err != nil {
		return nil, err
	}
	return s.snapshotResult(a.SessionID, snap), nil
}

func (s *Server) handleEditReset(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.lookupSession(a.SessionID)
	if err != nil {
		return nil, err
	}
	snap, err := sess.Reset()
	if err != nil {
		return nil, err
	}
	return s.snapshotResult(a.SessionID, snap), nil
}

// === Persistence Handlers ===

type imageSaveArgs struct {
	SessionID string `json:"session_id"`
	Path      string `json:"path"`
	Format    string `json:"format"`
	Quality   int    `json:"quality"`
}

// SaveResult confirms a completed save.
type SaveResult struct {
	SessionID string `json:"session_id"`
	Path      string `json:"path"`
	Format    string `json:"format"`
	Dirty     bool   `json:"dirty"`
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.lookupSession(a.SessionID)
	if err != nil {
		return nil, err
	}
	buf := sess.Current()
	if buf == nil {
		return nil, session.ErrNoCurrentImage
	}

	format := a.Format
	if format == "" {
		format = "png"
	}
	quality := a.Quality
	if quality == 0 {
		quality = s.cfg.JPEGQuality
	}
	if err := imageio.Save(a.Path, buf, format, quality); err != nil {
		return nil, err
	}

	sess.MarkSaved()
	return &SaveResult{
		SessionID: a.SessionID,
		Path:      a.Path,
		Format:    format,
		Dirty:     sess.Dirty(),
	}, nil
}

// === Analysis Handlers ===

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.lookupSession(a.SessionID)
	if err != nil {
		return nil, err
	}
	buf := sess.Current()
	if buf == nil {
		return nil, session.ErrNoCurrentImage
	}
	return analysis.Compute(buf)
}

type sampleColorArgs struct {
	SessionID string `json:"session_id"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.lookupSession(a.SessionID)
	if err != nil {
		return nil, err
	}
	buf := sess.Current()
	if buf == nil {
		return nil, session.ErrNoCurrentImage
	}
	return analysis.SampleColor(buf, a.X, a.Y)
}

type dominantColorsArgs struct {
	SessionID string `json:"session_id"`
	Count     int    `json:"count"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a dominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	sess, err := s.lookupSession(a.SessionID)
	if err != nil {
		return nil, err
	}
	buf := sess.Current()
	if buf == nil {
		return nil, session.ErrNoCurrentImage
	}
	return analysis.DominantColors(buf, a.Count)
}
