package product

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"biolink.GO/api"
	"biolink.GO/core/cache"
	entity "biolink.GO/model/entity"
	productRepo "biolink.GO/model/repository/product"
	searchService "biolink.GO/service/search"
)

func init() {
	api.RegisterModule(RegisterProductRoutes)
}

const listCacheTTL = 60 // seconds

func RegisterProductRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/products")
	repo := productRepo.NewProductRepository(db)
	search := searchService.NewSearchService()
	c := cache.GetInstance()

	// GET /api/products – active catalog, paginated, optional category filter
	g.GET("", func(ctx echo.Context) error {
		page, _ := strconv.Atoi(ctx.QueryParam("page"))
		pageSize, _ := strconv.Atoi(ctx.QueryParam("page_size"))
		categoryID := ctx.QueryParam("category_id")

		key := fmt.Sprintf("products:list:%s:%d:%d", categoryID, page, pageSize)
		if cached, ok := c.Get(key); ok {
			if payload, ok := cached.(string); ok {
				return ctx.JSONBlob(http.StatusOK, []byte(payload))
			}
		}

		products, total, err := repo.ListActive(categoryID, page, pageSize)
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		resp := echo.Map{"products": products, "total": total}
		if payload, err := marshal(resp); err == nil {
			c.Set(key, payload, listCacheTTL, []string{"products"})
		}
		return ctx.JSON(http.StatusOK, resp)
	})

	// GET /api/products/search – full-text when ES is configured, LIKE otherwise
	g.GET("/search", func(ctx echo.Context) error {
		query := ctx.QueryParam("q")
		if query == "" {
			return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "query parameter 'q' is required"})
		}
		limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

		if search.Enabled() {
			hits, err := search.Search(ctx.Request().Context(), query, limit)
			if err == nil {
				products := make([]entity.Product, 0, len(hits))
				for _, hit := range hits {
					if p, err := repo.FindByID(hit.ID); err == nil {
						products = append(products, *p)
					}
				}
				return ctx.JSON(http.StatusOK, echo.Map{"products": products, "total": len(products)})
			}
			// fall through to the database on ES failure
		}

		products, err := repo.SearchActive(query, limit)
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return ctx.JSON(http.StatusOK, echo.Map{"products": products, "total": len(products)})
	})

	// GET /api/products/:id
	g.GET("/:id", func(ctx echo.Context) error {
		p, err := repo.FindByID(ctx.Param("id"))
		if err != nil {
			return ctx.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return ctx.JSON(http.StatusOK, p)
	})
}

func marshal(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
