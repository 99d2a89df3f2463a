package domain

// ToolStatus describes an external program the pipeline shells out to
// or links against.
type ToolStatus struct {
	// Name is the program name (e.g., "pdftoppm").
	Name string

	// Available is true when the program can be used.
	Available bool

	// Version is the reported version, when known.
	Version string

	// Detail explains why the tool is unavailable.
	Detail string

	// Install gives installation instructions.
	Install string
}
