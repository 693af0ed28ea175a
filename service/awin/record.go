package awin

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// RawRecord is one loosely-typed feed row: source field name -> string value.
// Field names vary between feed generations (Awin standard vs Google
// Shopping-like), so every canonical attribute is resolved through an ordered
// alias list and the first non-empty match wins.
type RawRecord map[string]string

// Ordered source-field aliases per canonical attribute.
var (
	externalIDAliases      = []string{"product_id", "aw_product_id", "id"}
	nameAliases            = []string{"product_name", "name", "title"}
	priceAliases           = []string{"search_price", "price"}
	deepLinkAliases        = []string{"aw_deep_link", "deep_link", "link"}
	imageAliases           = []string{"aw_image_url", "merchant_image_url", "image_link"}
	merchantProductAliases = []string{"merchant_product_id", "id"}
	merchantIDAliases      = []string{"merchant_id", "advertiser_id"}
	merchantNameAliases    = []string{"merchant_name", "advertiser_name", "brand"}
	advertiserIDAliases    = []string{"advertiser_id", "merchant_id"}
	advertiserNameAliases  = []string{"advertiser_name", "merchant_name", "brand"}
	categoryAliases        = []string{"category_name", "merchant_category"}
	gtinAliases            = []string{"gtin", "product_gtin", "ean"}
)

// First returns the first present, non-empty value among the given source
// fields, or the empty string.
func (r RawRecord) First(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// DecodeRecord converts a decoded JSON object into a RawRecord. Feed JSON is
// not consistently typed (prices and ids arrive as numbers or strings), so
// scalar values are stringified and nested values dropped.
func DecodeRecord(src map[string]interface{}) (RawRecord, error) {
	rec := make(RawRecord, len(src))
	cfg := &mapstructure.DecoderConfig{
		DecodeHook:       scalarToStringHook(),
		WeaklyTypedInput: true,
		Result:           &rec,
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	flat := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch v.(type) {
		case map[string]interface{}, []interface{}, nil:
			// structured values carry no feed attribute
		default:
			flat[k] = v
		}
	}
	if err := dec.Decode(flat); err != nil {
		return nil, err
	}
	return rec, nil
}

func scalarToStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch v := data.(type) {
		case float64:
			// JSON numbers decode as float64; keep integral ids undecorated
			if v == float64(int64(v)) {
				return strconv.FormatInt(int64(v), 10), nil
			}
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case bool:
			return strconv.FormatBool(v), nil
		case int, int64, uint, uint64:
			return fmt.Sprint(v), nil
		}
		return data, nil
	}
}

// Product is the canonical normalized form of one feed row.
type Product struct {
	ExternalID        string
	Name              string
	Description       string
	Price             float64
	Currency          string
	DeepLink          string
	ImageURL          string
	MerchantProductID string
	MerchantID        string
	MerchantName      string
	AdvertiserID      string
	AdvertiserName    string
	DataFeedID        string
	InStock           bool
	StockQuantity     int
	GTIN              string
	MPN               string
	Brand             string
	Category          string
}

// Normalize maps a raw feed row onto the canonical product form.
// fallbackAdvertiserID fills the merchant/advertiser identifiers when the
// feed row carries neither. Unparseable numerics coerce to zero so a degraded
// row still imports.
func Normalize(r RawRecord, fallbackAdvertiserID string) Product {
	name := r.First(nameAliases...)
	if name == "" {
		name = "Unknown Product"
	}
	advertiserID := r.First(advertiserIDAliases...)
	if advertiserID == "" {
		advertiserID = fallbackAdvertiserID
	}
	merchantID := r.First(merchantIDAliases...)
	if merchantID == "" {
		merchantID = fallbackAdvertiserID
	}
	currency := r.First("currency")
	if currency == "" {
		currency = "GBP"
	}
	return Product{
		ExternalID:        r.First(externalIDAliases...),
		Name:              name,
		Description:       r.First("description"),
		Price:             parsePrice(r.First(priceAliases...)),
		Currency:          currency,
		DeepLink:          r.First(deepLinkAliases...),
		ImageURL:          r.First(imageAliases...),
		MerchantProductID: r.First(merchantProductAliases...),
		MerchantID:        merchantID,
		MerchantName:      r.First(merchantNameAliases...),
		AdvertiserID:      advertiserID,
		AdvertiserName:    r.First(advertiserNameAliases...),
		DataFeedID:        r.First("data_feed_id"),
		InStock:           parseInStock(r),
		StockQuantity:     parseQuantity(r.First("stock_quantity")),
		GTIN:              r.First(gtinAliases...),
		MPN:               r.First("mpn"),
		Brand:             r.First("brand"),
		Category:          r.First(categoryAliases...),
	}
}

// parsePrice clamps unparseable or negative prices to zero rather than
// rejecting the row; imports stay non-blocking.
func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseQuantity(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseInStock accepts the small set of truthy forms feeds actually send.
func parseInStock(r RawRecord) bool {
	switch strings.ToLower(r.First("in_stock")) {
	case "1", "true", "in stock":
		return true
	}
	return strings.ToLower(r.First("availability")) == "in stock"
}
