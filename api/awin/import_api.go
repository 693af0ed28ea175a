package awin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"biolink.GO/api"
	"biolink.GO/config"
	"biolink.GO/core/auth"
	importlogRepo "biolink.GO/model/repository/importlog"
	awinService "biolink.GO/service/awin"
)

func init() {
	api.RegisterModule(RegisterAwinRoutes)
}

type importRequest struct {
	CategoryID   string `json:"categoryId"`
	AdvertiserID string `json:"advertiserId"`
	Limit        int    `json:"limit"`
	CSVContent   string `json:"csvContent"`
}

func RegisterAwinRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/awin")

	cfg := config.AppConfig
	feed := awinService.NewFeedClient(cfg.AwinFeedBase, cfg.AwinPublisherID, cfg.AwinAPIToken)
	importService := awinService.NewImportService(db, feed)
	logs := importlogRepo.NewImportLogRepository(db)

	// POST /api/awin/import – run the feed ingestion pipeline (admin only)
	g.POST("/import", func(c echo.Context) error {
		start := time.Now()

		// role check before any run log or network activity
		if !auth.IsAdmin(c) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": awinService.ErrUnauthorized.Error()})
		}

		var body importRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Limit <= 0 {
			body.Limit = cfg.ImportLimit
		}

		res, err := importService.Run(c.Request().Context(), awinService.ImportOptions{
			CategoryID:   body.CategoryID,
			AdvertiserID: body.AdvertiserID,
			Limit:        body.Limit,
			CSVContent:   body.CSVContent,
			RequestedBy:  auth.UserID(c),
		})
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(importErrorStatus(err), echo.Map{
				"error":   err.Error(),
				"details": "Check the logs for more information. Ensure your API credentials are correct and you have access to the advertiser program.",
			})
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"success":          true,
			"productsImported": res.Imported,
			"productsUpdated":  res.Updated,
			"productsFailed":   res.Failed,
			"total":            res.Total,
		})
	})

	// GET /api/awin/imports – recent run logs for the admin dashboard
	g.GET("/imports", func(c echo.Context) error {
		if !auth.IsAdmin(c) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": awinService.ErrUnauthorized.Error()})
		}
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		list, err := logs.List(limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"imports": list})
	})
}

func importErrorStatus(err error) int {
	if errors.Is(err, awinService.ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}
