package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
	AppID  *string                `json:"app_id,omitempty"`
}

// DiscoverRequest represents an intent-based discovery request
type DiscoverRequest struct {
	Intent string `json:"intent" binding:"required"`
	Limit  int    `json:"limit"`
}
