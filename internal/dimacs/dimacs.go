// Package dimacs is the DIMACS CNF front end: it reads a DIMACS file
// into a cdcl.Instance and can pretty-print an Instance's clauses back
// out in the same format, so that parse -> print -> re-parse
// round-trips.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/tannerwright/satcore/internal/cdcl"
)

// Load reads a (optionally gzip-compressed) DIMACS CNF file and builds a
// cdcl.Instance from it. The returned vars slice maps a 1-based DIMACS
// variable number to its registered cdcl.Var, for callers (e.g. the
// CLI) that need to print a solution using the original numbering.
func Load(filename string, gzipped bool) (ins *cdcl.Instance, vars []cdcl.Var, err error) {
	r, err := open(filename, gzipped)
	if err != nil {
		return nil, nil, fmt.Errorf("cdcl/dimacs: %w", err)
	}
	defer r.Close()

	ins = cdcl.NewDefaultInstance()
	b := &builder{ins: ins}
	if err := readBuilder(r, b); err != nil {
		return nil, nil, fmt.Errorf("cdcl/dimacs: %w", err)
	}
	return ins, b.vars, nil
}

// readBuilder feeds b the same three callbacks as extdimacs.ReadBuilder
// (Problem/Clause/Comment) and b satisfies extdimacs.Builder, but the
// scan loop is hand-rolled rather than delegated to the real library's
// ReadBuilder. The real implementation treats one input line as exactly
// one clause and hard-fails on a header/body clause-count mismatch;
// real-world CNF files routinely span a clause across lines, pack
// multiple clauses onto one line, and carry a declared variable/clause
// count that is nothing more than a hint, so none of that can be
// treated as fatal. This loop accumulates literals token-by-token
// across line boundaries, closing a clause on every literal 0 wherever
// it falls, using a line-by-line bufio.Scanner/strings.Fields approach,
// just not constrained to one clause per line.
func readBuilder(r io.Reader, b extdimacs.Builder) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	foundHeader := false
	var pending []int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line[0] {
		case 'c':
			b.Comment(line)
			continue
		case 'p':
			if foundHeader {
				return fmt.Errorf("duplicate problem line: %q", line)
			}
			parts := strings.Fields(line)
			if len(parts) != 4 || parts[1] != "cnf" {
				return fmt.Errorf("malformed header line: %q", line)
			}
			nVars, err := strconv.Atoi(parts[2])
			if err != nil {
				return fmt.Errorf("malformed header line: %q: %w", line, err)
			}
			nClauses, err := strconv.Atoi(parts[3])
			if err != nil {
				return fmt.Errorf("malformed header line: %q: %w", line, err)
			}
			b.Problem(nVars, nClauses)
			foundHeader = true
			continue
		}

		if !foundHeader {
			return fmt.Errorf("clause found before problem line: %q", line)
		}

		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return fmt.Errorf("invalid literal %q on line %q: %w", tok, line, err)
			}
			if n == 0 {
				if len(pending) == 0 {
					return fmt.Errorf("empty clause on line %q", line)
				}
				b.Clause(pending)
				pending = pending[:0]
				continue
			}
			pending = append(pending, n)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if !foundHeader {
		return fmt.Errorf("no problem line found")
	}
	if len(pending) > 0 {
		return fmt.Errorf("clause not terminated by 0 before end of file")
	}
	return nil
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !gzipped {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return gzipReadCloser{gz, f}, nil
}

// gzipReadCloser closes both the gzip reader and the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g gzipReadCloser) Close() error {
	if err := g.Reader.Close(); err != nil {
		return err
	}
	return g.file.Close()
}

// builder adapts a cdcl.Instance to extdimacs.Builder. DIMACS variable
// numbers are registered as original variables under their decimal
// string name, matching a DIMACS identifier to a single dense cdcl.Var
// regardless of how many clauses mention it: Problem pre-registers every
// integer in 1..nVars once, and literal reuses the same registered Var
// on every subsequent occurrence.
type builder struct {
	ins  *cdcl.Instance
	vars []cdcl.Var // vars[i] is the Var for DIMACS variable i+1
}

func (b *builder) Problem(nVars int, nClauses int) {
	b.vars = make([]cdcl.Var, nVars)
	for i := 0; i < nVars; i++ {
		b.vars[i] = b.ins.NewVariable(strconv.Itoa(i + 1))
	}
}

func (b *builder) Clause(tmpClause []int) {
	lits := make([]cdcl.Literal, len(tmpClause))
	for i, l := range tmpClause {
		lits[i] = b.literal(l)
	}
	// readBuilder rejects an empty clause (a "0" with no literals before
	// it) with an error before it gets here; AddClause itself panics on
	// one.
	b.ins.AddClause(lits)
}

func (b *builder) Comment(string) {} // ignored

// literal maps a signed DIMACS integer to the corresponding cdcl.Literal,
// registering the variable on first use so that a clause mentioning a
// variable number outside [1, nVars] (a header/body mismatch, since the
// declared counts are only advisory) still resolves correctly.
func (b *builder) literal(l int) cdcl.Literal {
	n := l
	if n < 0 {
		n = -n
	}
	for len(b.vars) < n {
		b.vars = append(b.vars, b.ins.NewVariable(strconv.Itoa(len(b.vars)+1)))
	}
	v := b.vars[n-1]
	if l < 0 {
		return cdcl.NegativeLiteral(v)
	}
	return cdcl.PositiveLiteral(v)
}

// Write pretty-prints clauses in DIMACS CNF format with 1-based
// positional numbering: Var v is printed as v+1, and registry names are
// not consulted. For an instance built by Load this reproduces the
// file's own numbering, since Load registers DIMACS variable n as Var
// n-1; a formula built programmatically (e.g. by internal/builder,
// auxiliaries included) is printed by position as well.
func Write(w io.Writer, clauses [][]cdcl.Literal, numVars int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses)); err != nil {
		return err
	}
	for _, clause := range clauses {
		for _, l := range clause {
			n := int(l.Var()) + 1
			if !l.IsPositive() {
				n = -n
			}
			if _, err := fmt.Fprintf(bw, "%d ", n); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, "0"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
