package content

import (
	"github.com/lixenwraith/folio/physics"
)

// Catalog is an ordered, read-only project list
// Order defines collision iteration order
type Catalog struct {
	projects []Project
	index    map[string]int
}

// NewCatalog builds a catalog, later duplicates of an id are dropped
func NewCatalog(projects []Project) *Catalog {
	c := &Catalog{index: make(map[string]int, len(projects))}
	for _, p := range projects {
		if _, dup := c.index[p.ID]; dup {
			continue
		}
		c.index[p.ID] = len(c.projects)
		c.projects = append(c.projects, p)
	}
	return c
}

// Len returns the number of projects
func (c *Catalog) Len() int {
	return len(c.projects)
}

// At returns the project at position i in catalog order
func (c *Catalog) At(i int) (Project, bool) {
	if i < 0 || i >= len(c.projects) {
		return Project{}, false
	}
	return c.projects[i], true
}

// Lookup finds a project by id
func (c *Catalog) Lookup(id string) (Project, bool) {
	i, ok := c.index[id]
	if !ok {
		return Project{}, false
	}
	return c.projects[i], true
}

// Projects returns a copy in catalog order
func (c *Catalog) Projects() []Project {
	return append([]Project(nil), c.projects...)
}

// Targets converts the catalog to collision targets, preserving order
func (c *Catalog) Targets() []physics.Target {
	targets := make([]physics.Target, len(c.projects))
	for i, p := range c.projects {
		targets[i] = physics.Target{ID: p.ID, Position: p.Position}
	}
	return targets
}
