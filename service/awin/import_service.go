package awin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"biolink.GO/core/cache"
	entity "biolink.GO/model/entity"
	importlogRepo "biolink.GO/model/repository/importlog"
	productRepo "biolink.GO/model/repository/product"
)

// ImportOptions configures one ingestion run. Exactly one acquisition path
// applies: CSVContent when present (upload), AdvertiserID otherwise (remote
// fetch). Limit must be supplied explicitly by the calling surface.
type ImportOptions struct {
	CategoryID   string
	AdvertiserID string
	Limit        int
	CSVContent   string
	RequestedBy  string
}

// ImportResult holds the per-run tally. Imported + Updated + Failed always
// equals Total: every parsed record is accounted for.
type ImportResult struct {
	Imported int
	Updated  int
	Failed   int
	Total    int
	LogID    string
}

// ImportService runs the feed ingestion pipeline: acquire, parse, normalize
// and upsert, with a run log wrapped around the whole invocation.
type ImportService struct {
	products *productRepo.ProductRepository
	logs     *importlogRepo.ImportLogRepository
	feed     *FeedClient
}

func NewImportService(db *gorm.DB, feed *FeedClient) *ImportService {
	return &ImportService{
		products: productRepo.NewProductRepository(db),
		logs:     importlogRepo.NewImportLogRepository(db),
		feed:     feed,
	}
}

// Run executes one pipeline invocation. Records are processed strictly in
// sequence; a bad record is tallied as failed and never aborts the batch.
// Stage-level failures (acquisition, whole-document parse) mark the run log
// failed and propagate to the caller.
func (s *ImportService) Run(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	if opts.CSVContent == "" && opts.AdvertiserID == "" {
		return nil, fmt.Errorf("%w: advertiser ID is required for API import", ErrInvalidRequest)
	}
	if opts.Limit <= 0 {
		return nil, fmt.Errorf("%w: a positive record limit is required", ErrInvalidRequest)
	}

	runLog, err := s.logs.Start(
		optional(opts.CategoryID),
		optional(advertiserFilter(opts)),
		optional(opts.RequestedBy),
	)
	if err != nil {
		return nil, fmt.Errorf("create import log: %w", err)
	}
	log.Printf("awin: import started (log %s)", runLog.ID)

	result, err := s.run(ctx, opts)
	if err != nil {
		if logErr := s.logs.Fail(runLog.ID, err.Error()); logErr != nil {
			// the caller still gets the pipeline error
			log.Printf("awin: failed to mark import log %s failed: %v", runLog.ID, logErr)
		}
		return nil, err
	}

	if err := s.logs.Complete(runLog.ID, result.Imported, result.Updated, result.Failed); err != nil {
		return nil, fmt.Errorf("finalize import log: %w", err)
	}
	result.LogID = runLog.ID

	cache.GetInstance().InvalidateTags([]string{"products"})
	log.Printf("awin: import completed (log %s): imported=%d updated=%d failed=%d total=%d",
		runLog.ID, result.Imported, result.Updated, result.Failed, result.Total)
	return result, nil
}

func (s *ImportService) run(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	records, err := s.acquire(ctx, opts)
	if err != nil {
		return nil, err
	}
	return s.upsertAll(records, opts.AdvertiserID), nil
}

func (s *ImportService) acquire(ctx context.Context, opts ImportOptions) ([]RawRecord, error) {
	if opts.CSVContent != "" {
		records := Truncate(ParseCSV(opts.CSVContent), opts.Limit)
		log.Printf("awin: parsed %d products from uploaded CSV", len(records))
		return records, nil
	}

	feed, err := s.feed.Fetch(ctx, opts.AdvertiserID)
	if err != nil {
		return nil, err
	}
	records, err := ParseFeed(feed.Format, feed.Body, opts.Limit)
	if err != nil {
		return nil, err
	}
	log.Printf("awin: parsed %d products from feed (format %q)", len(records), feed.Format)
	return records, nil
}

// upsertAll folds the record sequence into a tally. Each record's
// lookup/insert/update is an independent unit of work.
func (s *ImportService) upsertAll(records []RawRecord, fallbackAdvertiserID string) *ImportResult {
	result := &ImportResult{Total: len(records)}
	for _, rec := range records {
		switch s.upsertOne(rec, fallbackAdvertiserID) {
		case upsertInserted:
			result.Imported++
		case upsertUpdated:
			result.Updated++
		default:
			result.Failed++
		}
	}
	return result
}

type upsertOutcome int

const (
	upsertFailed upsertOutcome = iota
	upsertInserted
	upsertUpdated
)

func (s *ImportService) upsertOne(rec RawRecord, fallbackAdvertiserID string) upsertOutcome {
	normalized := Normalize(rec, fallbackAdvertiserID)
	if normalized.ExternalID == "" {
		log.Printf("awin: record has no product identifier, cannot deduplicate")
		return upsertFailed
	}

	existing, err := s.products.FindByAwinProductID(normalized.ExternalID)
	switch {
	case err == nil:
		applyToEntity(existing, normalized)
		if err := s.products.Update(existing); err != nil {
			log.Printf("awin: update error for %s: %v", normalized.ExternalID, err)
			return upsertFailed
		}
		return upsertUpdated
	case errors.Is(err, gorm.ErrRecordNotFound):
		p := &entity.Product{AwinProductID: &normalized.ExternalID}
		applyToEntity(p, normalized)
		if err := s.products.Create(p); err != nil {
			log.Printf("awin: insert error for %s: %v", normalized.ExternalID, err)
			return upsertFailed
		}
		return upsertInserted
	default:
		log.Printf("awin: lookup error for %s: %v", normalized.ExternalID, err)
		return upsertFailed
	}
}

// applyToEntity refreshes every feed-owned attribute of a catalog row.
// CategoryID and CommissionRate are admin-owned and left untouched.
func applyToEntity(p *entity.Product, n Product) {
	now := time.Now()
	p.Name = n.Name
	p.Description = n.Description
	p.Price = n.Price
	p.SearchPrice = n.Price
	p.Currency = n.Currency
	p.AffiliateLink = n.DeepLink
	p.ImageURL = n.ImageURL
	p.AwinAdvertiserID = n.AdvertiserID
	p.AwinAdvertiserName = n.AdvertiserName
	p.MerchantProductID = n.MerchantProductID
	p.MerchantID = n.MerchantID
	p.MerchantName = n.MerchantName
	p.AwDeepLink = n.DeepLink
	p.AwImageURL = n.ImageURL
	p.DataFeedID = n.DataFeedID
	p.InStock = n.InStock
	p.StockQuantity = n.StockQuantity
	p.IsActive = true
	p.LastSyncedAt = &now
	p.Extra = extraJSON(n)
}

// extraJSON keeps feed attributes the fixed schema has no column for.
func extraJSON(n Product) datatypes.JSON {
	extra := map[string]string{}
	if n.GTIN != "" {
		extra["gtin"] = n.GTIN
	}
	if n.MPN != "" {
		extra["mpn"] = n.MPN
	}
	if n.Brand != "" {
		extra["brand"] = n.Brand
	}
	if n.Category != "" {
		extra["merchant_category"] = n.Category
	}
	if len(extra) == 0 {
		return nil
	}
	b, err := json.Marshal(extra)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// advertiserFilter mirrors what the run log records as its source: the
// advertiser id on the fetch path, a fixed marker on the upload path.
func advertiserFilter(opts ImportOptions) string {
	if opts.CSVContent != "" {
		return "CSV Upload"
	}
	return opts.AdvertiserID
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
