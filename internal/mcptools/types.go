package mcptools

// --- MCP tool types for the seatperm server mode (--serve-mcp) ---

// FindSafeArrangementsInput is the input for the find_safe_arrangements tool.
type FindSafeArrangementsInput struct {
	Seats           int    `json:"seats" jsonschema:"number of seats around the table"`
	StartingMatches int    `json:"startingMatches" jsonschema:"number of leading seats that start in their assigned place"`
	Threshold       int    `json:"threshold" jsonschema:"funding threshold compared against every rotation's match count"`
	Policy          string `json:"policy,omitempty" jsonschema:"strict-below (count < threshold, default) or at-most (count <= threshold)"`
	Limit           int    `json:"limit,omitempty" jsonschema:"maximum number of arrangements to return (default: all)"`
}

// FindSafeArrangementsOutput is the result of the find_safe_arrangements tool.
type FindSafeArrangementsOutput struct {
	Identity     []int   `json:"identity"`
	Policy       string  `json:"policy"`
	Total        int     `json:"total"`
	Arrangements [][]int `json:"arrangements"`
}

// RotationProfileInput is the input for the rotation_profile tool.
type RotationProfileInput struct {
	Arrangement []int `json:"arrangement" jsonschema:"a permutation of 1..n, one value per seat"`
}

// RotationProfileOutput is the result of the rotation_profile tool.
type RotationProfileOutput struct {
	Counts  []int `json:"counts"`
	Peak    int   `json:"peak"`
	Matches int   `json:"matches"`
}
