package awin

import (
	"errors"
	"testing"
)

func TestParseCSV_WellFormed(t *testing.T) {
	csv := "product_id,product_name,search_price\n" +
		"P1,Red Shoes,19.99\n" +
		"P2,Blue Shoes,25.00\n"
	records := ParseCSV(csv)
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0]["product_id"] != "P1" || records[0]["product_name"] != "Red Shoes" {
		t.Errorf("record[0] = %v", records[0])
	}
	if records[1]["search_price"] != "25.00" {
		t.Errorf("record[1] search_price = %q, want 25.00", records[1]["search_price"])
	}
}

func TestParseCSV_SkipsMalformedRows(t *testing.T) {
	csv := "a,b,c\n" +
		"1,2\n" + // wrong field count, skipped
		"1,2,3\n" +
		"4,5,6,7\n" // wrong field count, skipped
	records := ParseCSV(csv)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0]["c"] != "3" {
		t.Errorf("record[0][c] = %q, want 3", records[0]["c"])
	}
}

func TestParseCSV_QuotedFields(t *testing.T) {
	csv := "a,b,c\n" +
		`"hello, world",2,3` + "\n"
	records := ParseCSV(csv)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0]["a"] != "hello, world" {
		t.Errorf("quoted field = %q, want %q", records[0]["a"], "hello, world")
	}
}

func TestParseCSV_DoubledQuoteIsLiteral(t *testing.T) {
	csv := "a,b\n" +
		`"say ""hi""",2` + "\n"
	records := ParseCSV(csv)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0]["a"] != `say "hi"` {
		t.Errorf("field = %q, want %q", records[0]["a"], `say "hi"`)
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	if records := ParseCSV("a,b,c\n"); records != nil {
		t.Errorf("records = %v, want nil", records)
	}
}

func TestParseCSV_CRLF(t *testing.T) {
	csv := "a,b\r\n1,2\r\n"
	records := ParseCSV(csv)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0]["b"] != "2" {
		t.Errorf("record[0][b] = %q, want 2", records[0]["b"])
	}
}

func TestParseJSONLines_TolerantPerLine(t *testing.T) {
	text := `{"product_id":"P1","price":9.5}` + "\n" +
		"not json at all\n" +
		"\n" +
		`{"product_id":"P2","price":"12"}` + "\n"
	records := ParseJSONLines(text)
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0]["product_id"] != "P1" || records[0]["price"] != "9.5" {
		t.Errorf("record[0] = %v", records[0])
	}
	if records[1]["price"] != "12" {
		t.Errorf("record[1] price = %q, want 12", records[1]["price"])
	}
}

func TestParseJSON_Array(t *testing.T) {
	records, err := ParseJSON(`[{"product_id":"P1"},{"product_id":"P2"}]`)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
}

func TestParseJSON_ProductsWrapper(t *testing.T) {
	records, err := ParseJSON(`{"products":[{"product_id":"P1"}]}`)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(records) != 1 || records[0]["product_id"] != "P1" {
		t.Fatalf("records = %v", records)
	}
}

func TestParseJSON_ItemsWrapper(t *testing.T) {
	records, err := ParseJSON(`{"items":[{"id":1},{"id":2}]}`)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(records) != 2 || records[0]["id"] != "1" {
		t.Fatalf("records = %v", records)
	}
}

func TestParseJSON_InvalidDocument(t *testing.T) {
	_, err := ParseJSON(`{"products": [`)
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
}

func TestTruncate(t *testing.T) {
	records := []RawRecord{{"a": "1"}, {"a": "2"}, {"a": "3"}}
	if got := Truncate(records, 2); len(got) != 2 {
		t.Errorf("Truncate(3, 2) = %d records", len(got))
	}
	if got := Truncate(records, 10); len(got) != 3 {
		t.Errorf("Truncate(3, 10) = %d records", len(got))
	}
	if got := Truncate(records, 0); len(got) != 3 {
		t.Errorf("Truncate(3, 0) = %d records", len(got))
	}
}

func TestParseFeed_FormatDispatch(t *testing.T) {
	jsonl := `{"product_id":"P1"}`
	records, err := ParseFeed(".jsonl", jsonl, 10)
	if err != nil || len(records) != 1 {
		t.Fatalf("jsonl: records=%d err=%v", len(records), err)
	}

	// the extensionless variant is JSON Lines too
	records, err = ParseFeed("", jsonl, 10)
	if err != nil || len(records) != 1 {
		t.Fatalf("no extension: records=%d err=%v", len(records), err)
	}

	records, err = ParseFeed(".csv", "product_id\nP1\n", 10)
	if err != nil || len(records) != 1 {
		t.Fatalf("csv: records=%d err=%v", len(records), err)
	}

	records, err = ParseFeed(".json", `[{"product_id":"P1"},{"product_id":"P2"}]`, 1)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("limit not applied: records = %d, want 1", len(records))
	}
}
