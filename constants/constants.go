package constants

// Source file discovery
const (
	// DefaultLogDir is scanned when the log file argument carries no
	// directory component.
	DefaultLogDir = "/var/log/"

	// GzipSuffix marks a source file as gzip-compressed. Detection is by
	// filename only, never by magic bytes.
	GzipSuffix = ".gz"
)

// Output naming
const (
	// OutputSuffixes holds the single-letter suffixes for spread output
	// files, assigned in order. Its length bounds the output file count.
	OutputSuffixes = "abcdefghijklmnopqrstuvwxyz"

	// MaxOutputFiles is the largest allowed n-files value.
	MaxOutputFiles = len(OutputSuffixes)

	// OutputFileMode is the permission set for newly created output files.
	OutputFileMode = 0644
)
