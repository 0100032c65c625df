package cmd

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"gitlab.com/NebulousLabs/errors"

	"logspread/constants"
	"logspread/logger"
)

// OutputFile tracks one spread destination and the number of lines written
// to it.
type OutputFile struct {
	Name  string
	Lines int

	file *os.File
}

// Spreader runs the collect, sort, partition, report pipeline for one
// spread invocation.
type Spreader struct {
	config *SpreadConfig
	rng    *rand.Rand
	output io.Writer
	log    logger.Logger
}

// NewSpreader creates a spreader. The rng decides which output file each
// line lands in; injecting it keeps runs reproducible under test.
func NewSpreader(config *SpreadConfig, rng *rand.Rand, output io.Writer) *Spreader {
	return &Spreader{
		config: config,
		rng:    rng,
		output: output,
		log:    logger.NewLoggerWithOutput(output),
	}
}

// Run executes the full pipeline and prints the final report.
func (s *Spreader) Run() error {
	lines, err := s.Collect()
	if err != nil {
		return err
	}
	SortLines(lines)
	outputs, err := s.Partition(lines)
	if err != nil {
		return err
	}
	return s.Report(len(lines), outputs)
}

// Collect reads every matching source file fully into memory, in filename
// order, announcing each file as it is opened.
func (s *Spreader) Collect() ([][]byte, error) {
	files, err := DiscoverLogFiles(s.config.LogDir, s.config.LogName)
	if err != nil {
		return nil, err
	}

	var lines [][]byte
	for _, file := range files {
		fmt.Fprintf(s.output, "reading %s\n", file.Path)
		fileLines, err := s.readSource(file)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fileLines...)
	}
	return lines, nil
}

// readSource reads one source file to exhaustion and closes it.
func (s *Spreader) readSource(file LogFile) ([][]byte, error) {
	r, err := file.Open()
	if err != nil {
		return nil, err
	}
	lines, err := ReadAllLines(r)
	err = errors.Compose(err, r.Close())
	if err != nil {
		return nil, errors.AddContext(err, "unable to read "+file.Path)
	}
	if s.config.CheckOrder {
		s.checkOrder(file, lines)
	}
	return lines, nil
}

// checkOrder notes source lines that are out of byte order. Diagnostic
// only; the spread output does not depend on source order.
func (s *Spreader) checkOrder(file LogFile, lines [][]byte) {
	for i := 1; i < len(lines); i++ {
		if bytes.Compare(lines[i], lines[i-1]) < 0 {
			s.log.Info("lines are not in order",
				logger.String("file", file.Path),
				logger.Int("line", i+1))
		}
	}
}

// SortLines orders lines byte-lexicographically over their full content,
// terminator included.
func SortLines(lines [][]byte) {
	sort.Slice(lines, func(i, j int) bool {
		return bytes.Compare(lines[i], lines[j]) < 0
	})
}

// Partition opens the n output files and appends each line to one of them,
// chosen uniformly at random with replacement.
func (s *Spreader) Partition(lines [][]byte) ([]*OutputFile, error) {
	outputs := make([]*OutputFile, 0, s.config.NumFiles)
	for i := 0; i < s.config.NumFiles; i++ {
		name := s.config.LogName + "." + string(constants.OutputSuffixes[i])
		path := filepath.Join(s.config.OutDir, name)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.OutputFileMode)
		if err != nil {
			err = errors.AddContext(err, "unable to create output file")
			return nil, errors.Compose(err, closeOutputs(outputs))
		}
		outputs = append(outputs, &OutputFile{Name: name, file: file})
	}

	for _, line := range lines {
		out := outputs[s.rng.Intn(len(outputs))]
		if _, err := out.file.Write(line); err != nil {
			err = errors.AddContext(err, "unable to write to "+out.Name)
			return nil, errors.Compose(err, closeOutputs(outputs))
		}
		out.Lines++
	}
	return outputs, nil
}

// Report closes every output file and prints the final per-file counts.
func (s *Spreader) Report(total int, outputs []*OutputFile) error {
	fmt.Fprintf(s.output, "\ndivided %d lines across %d files:\n", total, len(outputs))
	var err error
	for _, out := range outputs {
		fmt.Fprintf(s.output, "%s: %d lines\n", out.Name, out.Lines)
		err = errors.Compose(err, out.file.Close())
	}
	return errors.AddContext(err, "unable to close output files")
}

// closeOutputs closes any already opened output files on the error path.
func closeOutputs(outputs []*OutputFile) error {
	var err error
	for _, out := range outputs {
		err = errors.Compose(err, out.file.Close())
	}
	return err
}
