package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"gitlab.com/NebulousLabs/errors"

	"logspread/constants"
)

// ErrInvalidFileCount is returned when the requested number of output files
// cannot be named with the single-letter suffix scheme.
var ErrInvalidFileCount = errors.New(fmt.Sprintf("n-files must be between 1 and %d", constants.MaxOutputFiles))

// SpreadConfig holds the validated configuration for the spread command
type SpreadConfig struct {
	LogDir     string
	LogName    string
	NumFiles   int
	OutDir     string
	Seed       int64
	CheckOrder bool
}

// MergeConfig holds the validated configuration for the merge command
type MergeConfig struct {
	LogDir  string
	LogName string
	Output  string
}

// splitLogPath splits the log file argument into the directory to scan and
// the filename prefix to match. A bare filename scans the default log
// directory.
func splitLogPath(arg string) (logDir, logName string, err error) {
	logDir, logName = filepath.Split(arg)
	if logDir == "" {
		logDir = constants.DefaultLogDir
	}
	if logName == "" {
		return "", "", errors.New("log file name must not be empty")
	}
	return logDir, logName, nil
}

// ParseSpreadConfig extracts and validates the spread configuration from the
// command flags and positional arguments.
func ParseSpreadConfig(cmd *cobra.Command, args []string) (*SpreadConfig, error) {
	logDir, logName, err := splitLogPath(args[0])
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, errors.AddContext(err, "n-files must be an integer")
	}
	if n < 1 || n > constants.MaxOutputFiles {
		return nil, errors.AddContext(ErrInvalidFileCount, fmt.Sprintf("cannot spread across %d files", n))
	}

	outDir, _ := cmd.Flags().GetString("out-dir")
	seed, _ := cmd.Flags().GetInt64("seed")
	checkOrder, _ := cmd.Flags().GetBool("check-order")

	return &SpreadConfig{
		LogDir:     logDir,
		LogName:    logName,
		NumFiles:   n,
		OutDir:     outDir,
		Seed:       seed,
		CheckOrder: checkOrder,
	}, nil
}

// ParseMergeConfig extracts and validates the merge configuration from the
// command flags and positional arguments.
func ParseMergeConfig(cmd *cobra.Command, args []string) (*MergeConfig, error) {
	logDir, logName, err := splitLogPath(args[0])
	if err != nil {
		return nil, err
	}

	output, _ := cmd.Flags().GetString("output")

	return &MergeConfig{
		LogDir:  logDir,
		LogName: logName,
		Output:  output,
	}, nil
}
