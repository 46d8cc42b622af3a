// tabs.go

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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultTabStop = 8
	maxColumn      = 80
)

// Tabs are freeform tab stops: a single entry sets a stop every n columns,
// more entries are explicit ascending stops.
type Tabs []int

// DefaultTabs returns a stop every DefaultTabStop columns.
func DefaultTabs() Tabs { return Tabs{DefaultTabStop} }

// ParseTabs parses "n" or "a,b,c". Each value must lie in 1..80 and a list
// must ascend.
func ParseTabs(s string) (Tabs, error) {
	parts := strings.Split(s, ",")
	tabs := make(Tabs, 0, len(parts))
	prev := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 || n > maxColumn || n <= prev {
			return nil, errors.Errorf("invalid tabs value (%s)", s)
		}
		tabs = append(tabs, n)
		prev = n
	}
	return tabs, nil
}

func (t Tabs) String() string {
	parts := make([]string, len(t))
	for i, n := range t {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// Expand replaces each tab in line with blanks up to the next stop. Past
// the last explicit stop a tab becomes one blank.
func (t Tabs) Expand(line string) string {
	if strings.IndexByte(line, '\t') < 0 {
		return line
	}
	if len(t) == 0 {
		t = DefaultTabs()
	}
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '\t' {
			b.WriteByte(c)
			continue
		}
		b.WriteString(strings.Repeat(" ", t.spaces(b.Len())))
	}
	return b.String()
}

func (t Tabs) spaces(pos int) int {
	if len(t) == 1 {
		return t[0] - pos%t[0]
	}
	for _, stop := range t {
		if pos < stop {
			return stop - pos - 1
		}
	}
	return 1
}
