package api

// EnhanceRequest is the body of POST /api/ai/enhance.
type EnhanceRequest struct {
	Text string `json:"text" validate:"notblank,max=1000"`
	Type string `json:"type" validate:"omitempty,oneof=about project description"`
}

// EnhanceResponse is the data of a successful enhance call.
type EnhanceResponse struct {
	Original string `json:"original"`
	Enhanced string `json:"enhanced"`
	Fallback bool   `json:"fallback,omitempty"`
}

// SkillsRequest is the body of POST /api/ai/skills.
type SkillsRequest struct {
	Prompt         string   `json:"prompt" validate:"notblank,max=200"`
	ExistingSkills []string `json:"existingSkills"`
}

// SkillsResponse is the data of a successful skills call.
type SkillsResponse struct {
	Prompt   string   `json:"prompt"`
	Skills   []string `json:"skills"`
	Count    int      `json:"count"`
	Fallback bool     `json:"fallback,omitempty"`
}

// StatusResponse is the data of GET /api/ai/status.
type StatusResponse struct {
	Configured      bool     `json:"configured"`
	Provider        string   `json:"provider"`
	Model           string   `json:"model"`
	AvailableModels []string `json:"availableModels"`
	Features        []string `json:"features"`
}
