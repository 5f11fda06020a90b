package content

import "github.com/lixenwraith/folio/vmath"

// DefaultProjects is the built-in showcase used when no config file is given
// Neighbors sit 4.5 apart so their activation areas overlap in the middle
func DefaultProjects() []Project {
	return []Project{
		{
			ID:       "tick-engine",
			Title:    "Fixed-Step Engine",
			Summary:  "Deterministic 60 Hz simulation loop with serialized ticks and drift-corrected scheduling.",
			Tags:     []string{"go", "simulation"},
			Position: vmath.Vec3F{X: -7},
		},
		{
			ID:       "term-render",
			Title:    "Terminal Renderer",
			Summary:  "Cell-based scene rendering with truecolor fallback and zero-allocation frame buffers.",
			Tags:     []string{"go", "tcell"},
			Position: vmath.Vec3F{X: -2.5},
		},
		{
			ID:       "synth",
			Title:    "Procedural Audio",
			Summary:  "Oscillator and envelope based sound effects generated at runtime, no sample assets.",
			Tags:     []string{"go", "audio"},
			Position: vmath.Vec3F{X: 2.5},
		},
		{
			ID:       "pathing",
			Title:    "Route Graphs",
			Summary:  "Flow-field navigation and route graph precomputation for crowds of agents.",
			Tags:     []string{"go", "algorithms"},
			Position: vmath.Vec3F{X: 7},
		},
	}
}
