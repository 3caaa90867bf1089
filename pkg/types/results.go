package types

// ProvisionResult holds the result of the 'provision' command.
type ProvisionResult struct {
	ContentRoot  string   `json:"contentRoot"`
	FilesWritten []string `json:"filesWritten"`
	DryRun       bool     `json:"dryRun"`
}

// LaunchResult holds the result of the 'launch' command.
type LaunchResult struct {
	Interpreter string `json:"interpreter"`
	Version     string `json:"version"`
	EntryPoint  string `json:"entryPoint"`
	ExitCode    int    `json:"exitCode"`
	DryRun      bool   `json:"dryRun"`
}

// ListResult holds the result of the 'list' command.
type ListResult struct {
	ContentRoot string        `json:"contentRoot"`
	Packs       []PackSummary `json:"packs"`
}

// PackSummary contains summary information about a single pack on disk.
type PackSummary struct {
	Key         string     `json:"key"`
	Path        string     `json:"path"`
	DisplayName string     `json:"displayName"`
	HasConfig   bool       `json:"hasConfig"`
	Config      PackConfig `json:"config"`
	Quotes      int        `json:"quotes"`
	Videos      int        `json:"videos"`
	Audio       int        `json:"audio"`
}

// Categories returns the distinct categories in first-seen order
func (r *ListResult) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range r.Packs {
		if !seen[p.Config.Category] {
			seen[p.Config.Category] = true
			out = append(out, p.Config.Category)
		}
	}
	return out
}
