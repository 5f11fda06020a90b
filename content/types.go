package content

import (
	"github.com/lixenwraith/folio/vmath"
)

// Project is a portfolio entry placed in the walkable scene
type Project struct {
	ID       string
	Title    string
	Summary  string
	Tags     []string
	Position vmath.Vec3F
}
