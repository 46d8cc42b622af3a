// config.go

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

// Package config layers assembler options from defaults, a TOML file, the
// environment and finally the command line.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"

	"github.com/intuitionamiga/sps1620/internal/output"
	"github.com/intuitionamiga/sps1620/internal/source"
	"github.com/intuitionamiga/sps1620/internal/sps"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "SPS1620_"

// DefaultFile is loaded from the working directory when no file is named.
const DefaultFile = "sps1620.toml"

// Artifact enables one output file. An empty Path derives the name from
// the first source file.
type Artifact struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Options are the user facing settings of one run.
type Options struct {
	Format       string `toml:"format"`
	Model        int    `toml:"model"`
	Memory       int    `toml:"memory"`
	Tabs         string `toml:"tabs"`
	Tables       bool   `toml:"tables"`
	Halt         bool   `toml:"halt"`
	Warnings     bool   `toml:"warnings"`
	Pass1Errors  bool   `toml:"pass1_errors"`
	SymbolDivide bool   `toml:"symbol_divide"`

	Listing Artifact `toml:"listing"`
	Cmem    Artifact `toml:"cmem"`
	Crd     Artifact `toml:"crd"`
	Pt      Artifact `toml:"pt"`
	Symbols Artifact `toml:"symbols"`
}

// Default returns a fixed format 60000 digit model 1 run producing only
// the listing.
func Default() Options {
	return Options{
		Format:       source.Fixed.String(),
		Model:        1,
		Memory:       sps.DefaultMemorySize,
		Tables:       true,
		Halt:         true,
		Warnings:     true,
		SymbolDivide: true,
		Listing:      Artifact{Enabled: true},
	}
}

// Load overlays the TOML file at path onto o. Keys the file sets that no
// option knows are an error.
func Load(path string, o *Options) error {
	md, err := toml.DecodeFile(path, o)
	if err != nil {
		return errors.Wrapf(err, "error decoding configuration file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return errors.Errorf("unknown keys in configuration file %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// File picks the configuration file: flag, then environment, then
// DefaultFile when present. "" means none.
func File(flag string) string {
	env.Load()
	switch {
	case flag != "":
		return flag
	case env.Has(EnvPrefix + "CONFIG"):
		return env.Str(EnvPrefix + "CONFIG")
	case Exists(DefaultFile):
		return DefaultFile
	}
	return ""
}

func envBool(name string, dst *bool) {
	if env.Has(EnvPrefix + name) {
		*dst = env.Bool(EnvPrefix + name)
	}
}

func envArtifact(name string, a *Artifact) {
	envBool(name, &a.Enabled)
	if p := env.Str(EnvPrefix + name + "_PATH"); p != "" {
		a.Path = p
		a.Enabled = true
	}
}

// ApplyEnv overlays SPS1620_* variables onto o. The environment is reread
// on every call, env caches it otherwise.
func ApplyEnv(o *Options) {
	env.Load()
	o.Format = env.Str(EnvPrefix+"FORMAT", o.Format)
	o.Model = env.Int(EnvPrefix+"MODEL", o.Model)
	o.Memory = env.Int(EnvPrefix+"MEMORY", o.Memory)
	o.Tabs = env.Str(EnvPrefix+"TABS", o.Tabs)
	envBool("TABLES", &o.Tables)
	envBool("HALT", &o.Halt)
	envBool("WARNINGS", &o.Warnings)
	envBool("PASS1_ERRORS", &o.Pass1Errors)
	envBool("SYMBOL_DIVIDE", &o.SymbolDivide)
	envArtifact("LISTING", &o.Listing)
	envArtifact("CMEM", &o.Cmem)
	envArtifact("CRD", &o.Crd)
	envArtifact("PT", &o.Pt)
	envArtifact("SYMBOLS", &o.Symbols)
}

// MemorySize returns the memory size in digits. The short forms 20 to
// 100 are thousands.
func (o Options) MemorySize() int {
	if o.Memory > 0 && o.Memory <= 100 {
		return o.Memory * 1000
	}
	return o.Memory
}

// SourceFormat returns the parsed card format.
func (o Options) SourceFormat() source.Format {
	f, _ := source.ParseFormat(o.Format)
	return f
}

// TabStops returns the freeform tab stops; fixed format ignores them.
func (o Options) TabStops() (source.Tabs, error) {
	if o.Tabs == "" || o.SourceFormat() == source.Fixed {
		return source.DefaultTabs(), nil
	}
	return source.ParseTabs(o.Tabs)
}

// Validate reports every invalid setting at once.
func (o Options) Validate() error {
	var result *multierror.Error
	if _, ok := source.ParseFormat(o.Format); !ok {
		result = multierror.Append(result, errors.Errorf("invalid format (%s)", o.Format))
	}
	if o.Model != 1 && o.Model != 2 {
		result = multierror.Append(result, errors.Errorf("invalid model (%d)", o.Model))
	}
	if !sps.ValidMemorySize(o.MemorySize()) {
		result = multierror.Append(result, errors.Errorf("invalid memory size (%d)", o.Memory))
	}
	if _, err := o.TabStops(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Notices lists settings that are valid but have no effect.
func (o Options) Notices() []string {
	var out []string
	if o.Tabs != "" && o.SourceFormat() == source.Fixed {
		out = append(out, "tabs option only valid with freeform")
	}
	return out
}

// Assembler returns the core options.
func (o Options) Assembler() sps.Options {
	model := sps.Model1
	if o.Model == 2 {
		model = sps.Model2
	}
	return sps.Options{
		Model:        model,
		MemorySize:   o.MemorySize(),
		SymbolDivide: o.SymbolDivide,
		Tables:       o.Tables,
		LoadHalt:     o.Halt,
		Warnings:     o.Warnings,
	}
}

// Paths resolves the enabled artifacts against the first source file.
func (o Options) Paths(firstSource string) output.Paths {
	base := strings.TrimSuffix(firstSource, filepath.Ext(firstSource))
	pick := func(a Artifact, ext string) string {
		switch {
		case !a.Enabled:
			return ""
		case a.Path != "":
			return a.Path
		}
		return base + ext
	}
	return output.Paths{
		Listing: pick(o.Listing, ".lst"),
		Cmem:    pick(o.Cmem, ".cmem"),
		Crd:     pick(o.Crd, ".crd"),
		Pt:      pick(o.Pt, ".pt"),
		Symbols: pick(o.Symbols, ".sym.yaml"),
	}
}

// Exists reports whether path names a readable file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
