// emit.go

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

package output

import (
	"bufio"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/intuitionamiga/sps1620/internal/sps"
)

// Paths names the artifacts to produce; an empty path skips it.
type Paths struct {
	Listing string
	Cmem    string
	Crd     string
	Pt      string
	Symbols string
}

// Written reports what Emit produced and removed.
type Written struct {
	Created []string
	Removed []string
}

// Emit writes the requested artifacts. The listing is always written;
// the image files only when pass 2 was clean, and stale copies of them
// are removed otherwise. Every failure is collected.
func Emit(prog *sps.Program, meta Meta, paths Paths) (Written, error) {
	var out Written
	var result *multierror.Error

	create := func(kind, path string, fn func(io.Writer) error) {
		if path == "" {
			return
		}
		if err := writeFile(path, fn); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "cannot write %s file (%s)", kind, path))
			return
		}
		out.Created = append(out.Created, path)
	}

	create("list", paths.Listing, func(w io.Writer) error { return WriteListing(w, prog, meta) })

	images := []struct {
		kind, path string
		fn         func(io.Writer) error
	}{
		{"cmem", paths.Cmem, func(w io.Writer) error { return WriteCmem(w, prog, meta) }},
		{"crd", paths.Crd, func(w io.Writer) error { return WriteCrd(w, prog) }},
		{"pt", paths.Pt, func(w io.Writer) error { return WritePt(w, prog) }},
		{"symbols", paths.Symbols, func(w io.Writer) error { return WriteSymbols(w, prog, meta) }},
	}
	for _, img := range images {
		if prog.OK() {
			create(img.kind, img.path, img.fn)
			continue
		}
		if img.path == "" {
			continue
		}
		err := os.Remove(img.path)
		switch {
		case err == nil:
			out.Removed = append(out.Removed, img.path)
		case !os.IsNotExist(err):
			result = multierror.Append(result, errors.Wrapf(err, "cannot remove %s file (%s)", img.kind, img.path))
		}
	}
	return out, result.ErrorOrNil()
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return err
	}
	return w.Flush()
}
