package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// sessionProperty is the shared session_id parameter schema.
func sessionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session handle returned by image_load",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Session Lifecycle
		{
			Name:        "image_load",
			Description: "Load an image file (PNG, JPEG, GIF, or BMP) and start an editing session. Returns the session handle, dimensions, and initial histogram.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "session_status",
			Description: "Report the current dimensions, dirty flag, and undo/redo availability of a session without returning image data.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "session_close",
			Description: "Discard a session and free its buffers and history.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},

		// Editing
		{
			Name:        "filter_apply",
			Description: "Apply a filter to the current image. The previous image goes onto the undo stack and any redo history is discarded. Returns the new image as base64 PNG with its histogram.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
					"filter": map[string]interface{}{
						"type":        "string",
						"description": "Filter kind: none, grayscale, brightness, contrast, brightness_contrast, gaussian_blur, edge_detection, or sepia",
					},
					"brightness": map[string]interface{}{
						"type":        "number",
						"description": "Brightness adjustment, -100 to 100. Used by brightness and brightness_contrast.",
					},
					"contrast": map[string]interface{}{
						"type":        "number",
						"description": "Contrast adjustment, -100 to 100. Used by contrast and brightness_contrast.",
					},
					"blur_radius": map[string]interface{}{
						"type":        "integer",
						"description": "Blur window half-width, 1 to 10. Used by gaussian_blur; 0 or less is a no-op.",
					},
				},
				"required": []string{"session_id", "filter"},
			},
		},
		{
			Name:        "filter_list",
			Description: "List the available filter kinds.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "edit_undo",
			Description: "Step back one edit. The undone image moves to the redo stack. Fails when the undo history is empty.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "edit_redo",
			Description: "Reapply the most recently undone edit. Fails when the redo history is empty.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "edit_reset",
			Description: "Restore the image from the original load. The pre-reset state stays undoable.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},

		// Persistence
		{
			Name:        "image_save",
			Description: "Encode the current image to disk as PNG, JPEG, or BMP and clear the session's dirty flag.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Destination file path",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"description": "Output format: png (default), jpeg, or bmp",
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 1-100. Ignored for other formats.",
					},
				},
				"required": []string{"session_id", "path"},
			},
		},

		// Analysis
		{
			Name:        "image_histogram",
			Description: "Compute the 256-bin per-channel intensity histogram of the current image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel of the current image in hex, RGB, RGBA, and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"session_id", "x", "y"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors of the current image, quantized to group similar shades.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionProperty(),
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colors to return. Default 5.",
						"default":     5,
					},
				},
				"required": []string{"session_id"},
			},
		},
	}
}
