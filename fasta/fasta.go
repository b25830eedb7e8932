package fasta

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"
)

// headerSep splits a header line into the id token and the description.
// Compiled once at process start; shared, immutable.
var headerSep = regexp.MustCompile(`\s+`)

// Parse reads FASTA records from r in input order.
func Parse(r io.Reader) ([]Record, error) {
	records := make([]Record, 0)
	var cur Record
	open := false // a header has been seen and cur is accumulating

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, ">"):
			if open {
				records = append(records, cur)
			}
			cur = splitHeader(strings.TrimPrefix(line, ">"))
			open = true
		case strings.HasPrefix(line, ";"):
			// comment line, belongs to no sequence
		default:
			if open {
				cur.Sequence += line
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if open {
		records = append(records, cur)
	}

	return records, nil
}

// splitHeader parses a header body (the ">" already stripped) into id and
// description: the first whitespace-delimited token is the id, the remainder
// of the line is the description.
func splitHeader(body string) Record {
	parts := headerSep.Split(body, 2)
	rec := Record{ID: parts[0]}
	if len(parts) == 2 {
		rec.Description = parts[1]
	}

	return rec
}

// ParseFile reads FASTA records from the file at path.
func ParseFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// SplitByKeyword partitions records into samples and markers: a record whose
// id contains the keyword is a marker. An empty keyword marks nothing.
func SplitByKeyword(records []Record, keyword string) (samples, markers []Record) {
	samples = make([]Record, 0, len(records))
	markers = make([]Record, 0)
	for _, rec := range records {
		if keyword != "" && strings.Contains(rec.ID, keyword) {
			markers = append(markers, rec)
			continue
		}
		samples = append(samples, rec)
	}

	return samples, markers
}

// Sequences projects the records' sequence strings in order — the direct
// feed for seqmatrix.New.
func Sequences(records []Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Sequence
	}

	return out
}
