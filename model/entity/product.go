package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is one sellable item in the affiliate catalog. Rows sourced from
// feed ingestion carry a unique AwinProductID used as the natural key on
// repeated imports; manually created rows leave it NULL.
type Product struct {
	ID                 string         `gorm:"column:id;type:char(36);primaryKey"`
	Name               string         `gorm:"column:name;type:varchar(255);not null"`
	Description        string         `gorm:"column:description;type:text"`
	CategoryID         *string        `gorm:"column:category_id;type:char(36);index"`
	Price              float64        `gorm:"column:price;not null;default:0"`
	SearchPrice        float64        `gorm:"column:search_price;default:0"`
	Currency           string         `gorm:"column:currency;type:varchar(8);default:GBP"`
	AffiliateLink      string         `gorm:"column:affiliate_link;type:text"`
	ImageURL           string         `gorm:"column:image_url;type:text"`
	AwinProductID      *string        `gorm:"column:awin_product_id;type:varchar(64);uniqueIndex"`
	AwinAdvertiserID   string         `gorm:"column:awin_advertiser_id;type:varchar(64)"`
	AwinAdvertiserName string         `gorm:"column:awin_advertiser_name;type:varchar(255)"`
	MerchantProductID  string         `gorm:"column:merchant_product_id;type:varchar(64)"`
	MerchantID         string         `gorm:"column:merchant_id;type:varchar(64)"`
	MerchantName       string         `gorm:"column:merchant_name;type:varchar(255)"`
	AwDeepLink         string         `gorm:"column:aw_deep_link;type:text"`
	AwImageURL         string         `gorm:"column:aw_image_url;type:text"`
	DataFeedID         string         `gorm:"column:data_feed_id;type:varchar(64)"`
	InStock            bool           `gorm:"column:in_stock;default:false"`
	StockQuantity      int            `gorm:"column:stock_quantity;default:0"`
	CommissionRate     *float64       `gorm:"column:commission_rate"`
	IsActive           bool           `gorm:"column:is_active;default:true"`
	Extra              datatypes.JSON `gorm:"column:extra"`
	LastSyncedAt       *time.Time     `gorm:"column:last_synced_at"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
