package cursor

// Region is an interactive area that requests a cursor state
type Region struct {
	ID    string
	State State

	// Dial marks regions inside the dial component
	Dial bool
}

// Document resolves what lies under the pointer. It is re-supplied wholesale on page replacement
type Document interface {
	// HitTest returns the chain of cursor regions under (x, y), outermost first. Empty when none
	HitTest(x, y float64) []Region

	// Surface returns the element presenting the cursor, nil when absent
	Surface() Surface
}

// Surface presents the cursor visual. A surface from a replaced page reports detached
type Surface interface {
	Attached() bool
	Apply(v Visual)
}
