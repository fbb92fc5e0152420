package index

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/matzehuels/cargoimport/pkg/desugar"
	"github.com/matzehuels/cargoimport/pkg/errors"
	"github.com/matzehuels/cargoimport/pkg/registry"
)

// maxLineSize bounds a single index record. Records with large feature
// tables run to a few hundred kilobytes.
const maxLineSize = 16 << 20

// Parser converts index files into partial registries.
type Parser struct {
	Namer registry.Namer
}

// ParseFile opens path on fs and parses it.
func (p *Parser) ParseFile(fs billy.Filesystem, path string) (registry.Registry, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRecordParse, err, "open %s", path)
	}
	defer f.Close()
	return p.Parse(f, path)
}

// Parse reads newline-delimited records from r. Blank lines are skipped;
// any other line that is not a valid record fails the whole file. source
// names the input in errors.
//
// Records fold into the result in input order, so a repeated version
// replaces the earlier entry.
func (p *Parser) Parse(r io.Reader, source string) (registry.Registry, error) {
	reg := make(registry.Registry)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRecordParse, err, "%s:%d", source, line)
		}
		if rec.Name == "" || rec.Vers == "" {
			return nil, errors.New(errors.ErrCodeRecordParse, "%s:%d: record without name or vers", source, line)
		}

		deps, err := p.runtimeDeps(rec)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRecordParse, err, "%s:%d: %s", source, line, rec.PURL())
		}

		name := p.Namer.Normalize(rec.Name)
		pkg, ok := reg[name]
		if !ok {
			pkg = make(registry.Package)
			reg[name] = pkg
		}
		pkg[rec.Version()] = deps
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRecordParse, err, "read %s", source)
	}

	return reg, nil
}

func (p *Parser) runtimeDeps(rec Record) (registry.Deps, error) {
	deps := make(registry.Deps)
	for _, d := range rec.Deps {
		if !d.Runtime() {
			continue
		}
		rng, err := desugar.Desugar(d.Req)
		if err != nil {
			return nil, fmt.Errorf("dependency %s: %w", d.Name, err)
		}
		deps[p.Namer.Normalize(d.Name)] = rng
	}
	return deps, nil
}
