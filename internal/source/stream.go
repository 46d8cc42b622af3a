// stream.go

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package source

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/intuitionamiga/sps1620/internal/sps"
)

// MaxFiles is the most source files one run accepts.
const MaxFiles = 15

const defaultExt = ".sps"

// SourceName appends the default extension when name has none.
func SourceName(name string) string {
	if filepath.Ext(name) == "" {
		return name + defaultExt
	}
	return name
}

// Stream reads one or more source files as a single sequence of lines.
// It is reopened for each pass.
type Stream struct {
	files  []string
	format Format
	tabs   Tabs
	multi  bool

	cur  int
	f    *os.File
	scan *bufio.Scanner
	line int

	// OnFile is called as each file is opened, with its 1 based index.
	OnFile func(index int, name string)
}

// NewStream checks the file list and returns a stream over it.
func NewStream(files []string, format Format, tabs Tabs) (*Stream, error) {
	if len(files) == 0 {
		return nil, errors.New("no source files")
	}
	if len(files) > MaxFiles {
		return nil, errors.Errorf("too many source files (%d), at most %d", len(files), MaxFiles)
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = SourceName(f)
	}
	if len(tabs) == 0 {
		tabs = DefaultTabs()
	}
	return &Stream{files: names, format: format, tabs: tabs, multi: len(names) > 1}, nil
}

// Files returns the resolved file names.
func (s *Stream) Files() []string { return s.files }

// Multi reports whether line keys carry a file index.
func (s *Stream) Multi() bool { return s.multi }

// Open rewinds to the first file.
func (s *Stream) Open() error {
	s.Close()
	s.cur = -1
	return s.advance()
}

// advance opens the next file. Failing to open a file is fatal.
func (s *Stream) advance() error {
	s.closeFile()
	s.cur++
	if s.cur >= len(s.files) {
		return nil
	}
	name := s.files[s.cur]
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrapf(err, "open source %s", name)
	}
	s.f = f
	s.scan = bufio.NewScanner(f)
	s.line = 0
	if s.OnFile != nil {
		s.OnFile(s.cur+1, name)
	}
	return nil
}

// Next returns the next tokenized line, io.EOF after the last file, or a
// *sps.ReadError when a file fails part way. The rest of that file is
// skipped.
func (s *Stream) Next() (sps.Line, error) {
	for s.cur < len(s.files) {
		if s.scan.Scan() {
			s.line++
			ln := Tokenize(s.scan.Text(), s.format, s.tabs)
			ln.File = s.cur + 1
			ln.FileLine = s.line
			ln.Number = sps.LineKey(ln.File, s.line, s.multi)
			return ln, nil
		}
		scanErr := s.scan.Err()
		name := s.files[s.cur]
		if err := s.advance(); err != nil {
			return sps.Line{}, err
		}
		if scanErr != nil {
			return sps.Line{}, &sps.ReadError{File: name, Err: scanErr}
		}
	}
	return sps.Line{}, io.EOF
}

func (s *Stream) closeFile() {
	if s.f != nil {
		s.f.Close()
		s.f = nil
		s.scan = nil
	}
}

// Close releases the open file.
func (s *Stream) Close() error {
	s.closeFile()
	return nil
}

var _ sps.LineSource = (*Stream)(nil)
