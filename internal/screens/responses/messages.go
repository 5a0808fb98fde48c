package responses

// ExportDoneMsg carries the outcome of an export started by ExportCmd.
type ExportDoneMsg struct {
	Path string
	Err  error
}
