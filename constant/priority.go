package constant

// Render Layer Priorities (lower renders first)
const (
	PriorityBackground = 100
	PriorityDisc       = 200
	PriorityTicks      = 300
	PriorityText       = 400
	PriorityCursor     = 500
)
