package awin

import (
	"encoding/json"
	"log"
	"strings"
)

// ParseFeed decodes raw feed text for the given extension variant and
// truncates the result to limit records. The ".jsonl" and extensionless
// variants are JSON Lines, ".json" is one document, ".csv" is delimited text.
func ParseFeed(format, text string, limit int) ([]RawRecord, error) {
	var (
		records []RawRecord
		err     error
	)
	switch format {
	case ".json":
		records, err = ParseJSON(text)
		if err != nil {
			return nil, err
		}
	case ".csv":
		records = ParseCSV(text)
	default: // ".jsonl" and the no-extension variant
		records = ParseJSONLines(text)
	}
	return Truncate(records, limit), nil
}

// Truncate caps a record sequence at limit. A non-positive limit keeps all.
func Truncate(records []RawRecord, limit int) []RawRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}

// ParseCSV parses delimited text whose first line names the fields. Rows
// whose field count differs from the header are skipped; a malformed feed
// must not abort the whole import.
func ParseCSV(text string) []RawRecord {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	headers := parseCSVLine(strings.TrimRight(lines[0], "\r"))
	records := make([]RawRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := parseCSVLine(strings.TrimRight(line, "\r"))
		if len(values) != len(headers) {
			continue
		}
		rec := make(RawRecord, len(headers))
		for i, h := range headers {
			rec[h] = values[i]
		}
		records = append(records, rec)
	}
	return records
}

// parseCSVLine splits one line on commas with quoted-field support: a quoted
// field may contain the delimiter, and a doubled quote inside a quoted field
// is a literal quote character.
func parseCSVLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))
	return values
}

// ParseJSONLines parses each non-blank line as one JSON object. A line that
// fails to parse is logged and dropped rather than aborting the batch.
func ParseJSONLines(text string) []RawRecord {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	records := make([]RawRecord, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			log.Printf("awin: skipping unparseable feed line: %v", err)
			continue
		}
		rec, err := DecodeRecord(obj)
		if err != nil {
			log.Printf("awin: skipping undecodable feed line: %v", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

// ParseJSON parses the whole body as one document: either an array of
// records or an object holding a "products" or "items" array.
func ParseJSON(text string) ([]RawRecord, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &ParseError{Format: "JSON", Err: err}
	}

	var items []interface{}
	switch v := doc.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		if arr, ok := v["products"].([]interface{}); ok {
			items = arr
		} else if arr, ok := v["items"].([]interface{}); ok {
			items = arr
		}
	}

	records := make([]RawRecord, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		rec, err := DecodeRecord(obj)
		if err != nil {
			log.Printf("awin: skipping undecodable feed entry: %v", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
