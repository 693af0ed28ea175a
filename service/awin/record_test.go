package awin

import "testing"

func TestNormalize_AliasResolution(t *testing.T) {
	// only the Google-style field present
	p := Normalize(RawRecord{"title": "Only Title", "product_id": "P1"}, "")
	if p.Name != "Only Title" {
		t.Errorf("Name = %q, want Only Title", p.Name)
	}

	// the standard field wins over the alias
	p = Normalize(RawRecord{"product_name": "Standard", "title": "Google", "product_id": "P1"}, "")
	if p.Name != "Standard" {
		t.Errorf("Name = %q, want Standard", p.Name)
	}

	// empty values do not satisfy an alias
	p = Normalize(RawRecord{"product_name": "  ", "title": "Fallback", "product_id": "P1"}, "")
	if p.Name != "Fallback" {
		t.Errorf("Name = %q, want Fallback", p.Name)
	}
}

func TestNormalize_DefaultName(t *testing.T) {
	p := Normalize(RawRecord{"product_id": "P1"}, "")
	if p.Name != "Unknown Product" {
		t.Errorf("Name = %q, want Unknown Product", p.Name)
	}
}

func TestNormalize_ExternalIDAliases(t *testing.T) {
	if p := Normalize(RawRecord{"aw_product_id": "AW1"}, ""); p.ExternalID != "AW1" {
		t.Errorf("ExternalID = %q, want AW1", p.ExternalID)
	}
	if p := Normalize(RawRecord{"id": "42"}, ""); p.ExternalID != "42" {
		t.Errorf("ExternalID = %q, want 42", p.ExternalID)
	}
	if p := Normalize(RawRecord{"product_id": "P1", "id": "42"}, ""); p.ExternalID != "P1" {
		t.Errorf("ExternalID = %q, want P1", p.ExternalID)
	}
}

func TestNormalize_PriceCoercion(t *testing.T) {
	cases := []struct {
		rec  RawRecord
		want float64
	}{
		{RawRecord{"search_price": "19.99"}, 19.99},
		{RawRecord{"price": "12"}, 12},
		{RawRecord{"search_price": "not-a-number"}, 0},
		{RawRecord{"search_price": "-5"}, 0},
		{RawRecord{}, 0},
		{RawRecord{"search_price": "7.5", "price": "99"}, 7.5},
	}
	for _, tc := range cases {
		if got := Normalize(tc.rec, "").Price; got != tc.want {
			t.Errorf("Price for %v = %v, want %v", tc.rec, got, tc.want)
		}
	}
}

func TestNormalize_InStock(t *testing.T) {
	truthy := []RawRecord{
		{"in_stock": "1"},
		{"in_stock": "true"},
		{"in_stock": "in stock"},
		{"availability": "in stock"},
	}
	for _, rec := range truthy {
		if !Normalize(rec, "").InStock {
			t.Errorf("InStock for %v = false, want true", rec)
		}
	}
	falsy := []RawRecord{
		{"in_stock": "0"},
		{"in_stock": "yes"},
		{"availability": "out of stock"},
		{},
	}
	for _, rec := range falsy {
		if Normalize(rec, "").InStock {
			t.Errorf("InStock for %v = true, want false", rec)
		}
	}
}

func TestNormalize_StockQuantity(t *testing.T) {
	if q := Normalize(RawRecord{"stock_quantity": "17"}, "").StockQuantity; q != 17 {
		t.Errorf("StockQuantity = %d, want 17", q)
	}
	if q := Normalize(RawRecord{"stock_quantity": "lots"}, "").StockQuantity; q != 0 {
		t.Errorf("StockQuantity = %d, want 0", q)
	}
}

func TestNormalize_AdvertiserFallback(t *testing.T) {
	p := Normalize(RawRecord{"product_id": "P1"}, "777")
	if p.AdvertiserID != "777" || p.MerchantID != "777" {
		t.Errorf("fallback ids = %q/%q, want 777/777", p.AdvertiserID, p.MerchantID)
	}

	p = Normalize(RawRecord{"product_id": "P1", "advertiser_id": "111"}, "777")
	if p.AdvertiserID != "111" {
		t.Errorf("AdvertiserID = %q, want 111", p.AdvertiserID)
	}
}

func TestNormalize_CurrencyDefault(t *testing.T) {
	if c := Normalize(RawRecord{}, "").Currency; c != "GBP" {
		t.Errorf("Currency = %q, want GBP", c)
	}
	if c := Normalize(RawRecord{"currency": "EUR"}, "").Currency; c != "EUR" {
		t.Errorf("Currency = %q, want EUR", c)
	}
}

func TestDecodeRecord_StringifiesScalars(t *testing.T) {
	rec, err := DecodeRecord(map[string]interface{}{
		"product_id":    float64(12345),
		"search_price":  9.99,
		"in_stock":      true,
		"product_name":  "Widget",
		"nested":        map[string]interface{}{"skip": "me"},
		"list":          []interface{}{"skip"},
		"missing_value": nil,
	})
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if rec["product_id"] != "12345" {
		t.Errorf("product_id = %q, want 12345", rec["product_id"])
	}
	if rec["search_price"] != "9.99" {
		t.Errorf("search_price = %q, want 9.99", rec["search_price"])
	}
	if rec["in_stock"] != "true" {
		t.Errorf("in_stock = %q, want true", rec["in_stock"])
	}
	if _, ok := rec["nested"]; ok {
		t.Error("nested value should be dropped")
	}
	if _, ok := rec["missing_value"]; ok {
		t.Error("nil value should be dropped")
	}
}
