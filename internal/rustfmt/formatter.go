package rustfmt

// Formatter post-processes a finished Rust module's source text before it
// is written to disk. The Non-goals carry an explicit rustfmt/
// prettyplease equivalent out of scope — PassthroughFormatter stands in
// for that collaborator so callers have a seam to plug a real formatter
// into later without reshaping the orchestrator.
type Formatter interface {
	Format(source string) (string, error)
}

// PassthroughFormatter returns its input unchanged.
type PassthroughFormatter struct{}

func (PassthroughFormatter) Format(source string) (string, error) {
	return source, nil
}
