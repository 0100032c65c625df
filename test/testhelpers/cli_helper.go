package testhelpers

import (
	"bytes"
	"os"

	"logspread/cmd"
)

// RunCLICommand runs the CLI in-process with the given arguments and returns
// the combined stdout/stderr output along with the command error.
func RunCLICommand(args []string) (string, error) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = append([]string{"logspread"}, args...)

	// Capture stdout using os.Pipe.
	rOut, wOut, err := os.Pipe()
	if err != nil {
		return "", err
	}
	oldOut := os.Stdout
	os.Stdout = wOut

	// Capture stderr using os.Pipe.
	rErr, wErr, err := os.Pipe()
	if err != nil {
		return "", err
	}
	oldErr := os.Stderr
	os.Stderr = wErr

	// Execute the CLI command.
	cmdErr := cmd.Execute()

	// Restore os.Stdout and os.Stderr.
	wOut.Close()
	wErr.Close()
	os.Stdout = oldOut
	os.Stderr = oldErr

	// Read from both pipes.
	var bufOut, bufErr bytes.Buffer
	if _, err := bufOut.ReadFrom(rOut); err != nil {
		rOut.Close()
		rErr.Close()
		return "", err
	}
	rOut.Close()
	if _, err := bufErr.ReadFrom(rErr); err != nil {
		rErr.Close()
		return "", err
	}
	rErr.Close()

	return bufOut.String() + bufErr.String(), cmdErr
}
