// This file implements the CSV record parser. Rows stream lazily through
// Next; a parser is restarted by constructing a new one over the source.
package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMissingHeader reports a source whose first row is not the expected
// ITEM, PRICE, DESCRIPTION header. Unlike row-level problems, a bad header
// fails the whole operation.
var ErrMissingHeader = errors.New("missing or malformed header row")

// headerFields are the required leading columns, compared case-insensitively.
// Extra columns after the third are ignored.
var headerFields = []string{"ITEM", "PRICE", "DESCRIPTION"}

// Candidate is a parsed CSV row not yet reconciled against the store.
type Candidate struct {
	// Identifier is the component's natural key, never empty.
	Identifier string

	// Price is non-negative. An empty price field parses as zero.
	Price decimal.Decimal

	// Description is trimmed free text. The empty string means "absent".
	Description string

	// Line is the 1-based data row number (the header is row zero).
	Line int
}

// HasDescription reports whether the candidate carries a description.
func (c Candidate) HasDescription() bool {
	return c.Description != ""
}

// Parser yields candidate records from delimited text. Malformed rows are
// counted and skipped, never surfaced as errors.
type Parser struct {
	r       *csv.Reader
	line    int
	skipped int
}

// NewParser wraps a reader, sniffs the delimiter, and validates the header
// row. Returns ErrMissingHeader when the first row does not carry the
// expected columns, or the underlying read error for an unreadable source.
func NewParser(r io.Reader) (*Parser, error) {
	br := bufio.NewReader(r)

	cr := csv.NewReader(br)
	cr.Comma = sniffDelimiter(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrMissingHeader
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < len(headerFields) {
		return nil, ErrMissingHeader
	}
	for i, want := range headerFields {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, ErrMissingHeader
		}
	}

	return &Parser{r: cr}, nil
}

// Next returns the next valid candidate record, skipping malformed rows.
// Returns io.EOF when the source is exhausted.
func (p *Parser) Next() (*Candidate, error) {
	for {
		record, err := p.r.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			// Row-level CSV problems (stray quotes and the like) are
			// skipped like any other bad row; only transport errors abort.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				p.line++
				p.skipped++
				continue
			}
			return nil, fmt.Errorf("reading row: %w", err)
		}

		p.line++
		cand, ok := p.parseRecord(record)
		if !ok {
			p.skipped++
			continue
		}
		cand.Line = p.line
		return cand, nil
	}
}

// Skipped returns the number of rows discarded so far.
func (p *Parser) Skipped() int {
	return p.skipped
}

// parseRecord turns a raw CSV record into a candidate. Reports ok=false for
// rows missing an identifier or carrying a price that does not parse as a
// non-negative number.
func (p *Parser) parseRecord(record []string) (*Candidate, bool) {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	identifier := field(0)
	if identifier == "" {
		return nil, false
	}

	// An empty price field means zero, matching the import format's
	// convention for parts without pricing data.
	price := decimal.Zero
	if raw := field(1); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			return nil, false
		}
		price = parsed
	}

	return &Candidate{
		Identifier:  identifier,
		Price:       price,
		Description: field(2),
	}, true
}

// sniffDelimiter inspects the first kilobyte of the source and picks
// semicolon when it outnumbers comma, comma otherwise.
func sniffDelimiter(br *bufio.Reader) rune {
	sample, _ := br.Peek(1024)
	if strings.Count(string(sample), ";") > strings.Count(string(sample), ",") {
		return ';'
	}
	return ','
}
