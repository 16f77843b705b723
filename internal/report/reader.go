package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
)

const bom = "\ufeff"

// Read parses the report at path.
func Read(path string) ([]players.LookupResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFrom(f)
}

// ReadFrom parses a report, validating the header and every identifier.
func ReadFrom(r io.Reader) ([]players.LookupResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty report", ErrInvalidHeader)
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}
	for i := range Header {
		if header[i] != Header[i] {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidHeader, strings.Join(header, ","))
		}
	}

	var out []players.LookupResult
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		res, err := parseRow(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, res)
	}
	return out, nil
}

func parseRow(rec []string) (players.LookupResult, error) {
	name, raw := rec[0], strings.TrimSpace(rec[1])
	if raw == "" {
		return players.Unmatched(name), nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return players.LookupResult{}, fmt.Errorf("%w %q for %q", ErrInvalidIdentifier, raw, name)
	}
	return players.Matched(name, id), nil
}
