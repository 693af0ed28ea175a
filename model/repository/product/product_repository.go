package product

import (
	"gorm.io/gorm"

	entity "biolink.GO/model/entity"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByID returns a product by its internal id.
func (r *ProductRepository) FindByID(id string) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByAwinProductID returns the product matching the external feed
// identifier. Returns gorm.ErrRecordNotFound when no row matches.
func (r *ProductRepository) FindByAwinProductID(awinID string) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.Where("awin_product_id = ?", awinID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

// Update persists all mutable fields of an existing row.
func (r *ProductRepository) Update(p *entity.Product) error {
	return r.db.Save(p).Error
}

// SearchActive does a plain substring match over name and description.
// Fallback for when Elasticsearch is not configured.
func (r *ProductRepository) SearchActive(query string, limit int) ([]entity.Product, error) {
	if limit < 1 || limit > 200 {
		limit = 20
	}
	like := "%" + query + "%"
	var products []entity.Product
	err := r.db.Where("is_active = ?", true).
		Where("name LIKE ? OR description LIKE ?", like, like).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListActive returns a page of active products, optionally filtered by
// category, newest first. Inactive rows stay stored but are never listed.
func (r *ProductRepository) ListActive(categoryID string, page, pageSize int) ([]entity.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}
	q := r.db.Model(&entity.Product{}).Where("is_active = ?", true)
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var products []entity.Product
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
