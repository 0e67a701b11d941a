package ports

// EnvFileWriterPort persists exported environment lines for later
// sourcing.
type EnvFileWriterPort interface {
	Write(path string, lines []string) error
}
