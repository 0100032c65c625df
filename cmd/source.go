package cmd

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/NebulousLabs/errors"

	"logspread/constants"
)

// ErrCorruptArchive is returned when a gzip-suffixed source file does not
// contain a valid gzip stream.
var ErrCorruptArchive = errors.New("corrupt gzip archive")

// LogFile identifies one source file discovered in the log directory.
type LogFile struct {
	Path       string
	Compressed bool
}

// DiscoverLogFiles lists the log directory and returns every entry whose
// name starts with the given prefix, capturing rotated variants like
// app.log.1 and app.log.2.gz. Entries come back in filename order.
func DiscoverLogFiles(logDir, prefix string) ([]LogFile, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return nil, errors.AddContext(err, "unable to read log directory")
	}

	var files []LogFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		files = append(files, LogFile{
			Path:       filepath.Join(logDir, entry.Name()),
			Compressed: strings.HasSuffix(entry.Name(), constants.GzipSuffix),
		})
	}
	return files, nil
}

// Open returns a reader over the file's decompressed contents. Compression
// is decided by the filename suffix alone.
func (f LogFile) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, errors.AddContext(err, "unable to open log file")
	}
	if !f.Compressed {
		return file, nil
	}

	// Wrap the file with a bufio.Reader so that gzip does not overread the
	// underlying stream.
	gz, err := gzip.NewReader(bufio.NewReader(file))
	if err != nil {
		err = errors.Extend(err, ErrCorruptArchive)
		return nil, errors.Compose(err, file.Close())
	}
	return &gzipFile{file: file, gz: gz}, nil
}

// gzipFile couples a gzip reader with its backing file so that closing the
// reader also closes the file.
type gzipFile struct {
	file *os.File
	gz   *gzip.Reader
}

func (g *gzipFile) Read(p []byte) (int, error) {
	n, err := g.gz.Read(p)
	if err != nil && err != io.EOF {
		// A read failing partway means the archive is truncated or invalid.
		return n, errors.Extend(err, ErrCorruptArchive)
	}
	return n, err
}

func (g *gzipFile) Close() error {
	return errors.Compose(g.gz.Close(), g.file.Close())
}

// ReadAllLines consumes the reader and splits its contents on newlines. The
// terminator stays attached to each line; a final unterminated line is kept
// as-is. There is no maximum line length.
func ReadAllLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)
	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, errors.AddContext(err, "unable to read log lines")
		}
	}
}
