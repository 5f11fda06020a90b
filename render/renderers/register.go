package renderers

import (
	"github.com/lixenwraith/folio/render"
)

// RegisterAll installs the default layer stack
func RegisterAll(o *render.Orchestrator) {
	o.Register(NewGroundRenderer(), render.PriorityGround)
	o.Register(NewTargetRenderer(), render.PriorityTargets)
	o.Register(NewAvatarRenderer(), render.PriorityAvatar)
	o.Register(NewPanelRenderer(), render.PriorityUI)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
	o.Register(NewSizeWarningRenderer(), render.PriorityOverlay)
}
