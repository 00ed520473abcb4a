// internal/api/handlers/forecast_handler.go
package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stocklens/wms-backend/internal/cache"
	"github.com/stocklens/wms-backend/internal/config"
	"github.com/stocklens/wms-backend/internal/domain"
	"github.com/stocklens/wms-backend/internal/forecast"
	"github.com/stocklens/wms-backend/internal/repository"
	"github.com/stocklens/wms-backend/internal/storage"
)

type ForecastHandler struct {
	forecaster *forecast.Forecaster
	cache      cache.ReportCache
	archive    *storage.ReportArchive
	defaults   config.ForecastConfig
}

func NewForecastHandler(forecaster *forecast.Forecaster, reportCache cache.ReportCache, archive *storage.ReportArchive, defaults config.ForecastConfig) *ForecastHandler {
	if reportCache == nil {
		reportCache = cache.NewNoopReportCache()
	}
	return &ForecastHandler{
		forecaster: forecaster,
		cache:      reportCache,
		archive:    archive,
		defaults:   defaults,
	}
}

func (h *ForecastHandler) parseParams(c *gin.Context) domain.ReportParams {
	params := domain.ReportParams{
		HistoryDays:  h.defaults.HistoryDays,
		ForecastDays: h.defaults.ForecastDays,
		Algorithm:    h.defaults.Algorithm,
	}

	if days, err := strconv.Atoi(c.DefaultQuery("history_days", "")); err == nil && days > 0 {
		params.HistoryDays = days
	}
	if days, err := strconv.Atoi(c.DefaultQuery("forecast_days", "")); err == nil && days > 0 {
		params.ForecastDays = days
	}
	if algorithm := c.Query("algorithm"); algorithm != "" {
		params.Algorithm = algorithm
	}

	return forecast.NormalizeParams(params)
}

// GetAllForecasts returns per-product forecasts for every product,
// most urgent first.
func (h *ForecastHandler) GetAllForecasts(c *gin.Context) {
	params := h.parseParams(c)

	forecasts, err := h.forecaster.ForecastAllProducts(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate forecasts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":      len(forecasts),
		"parameters": params,
		"forecasts":  forecasts,
	})
}

// GetProductForecast returns the detailed forecast for one product.
func (h *ForecastHandler) GetProductForecast(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	params := h.parseParams(c)

	result, err := h.forecaster.ForecastProduct(c.Request.Context(), productID, params)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate forecast", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCategoryForecasts returns demand and restock totals per category.
func (h *ForecastHandler) GetCategoryForecasts(c *gin.Context) {
	params := h.parseParams(c)

	categories, err := h.forecaster.ForecastByCategory(c.Request.Context(), params.HistoryDays, params.ForecastDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate category forecasts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(categories),
		"parameters": gin.H{
			"history_days":  params.HistoryDays,
			"forecast_days": params.ForecastDays,
		},
		"categories": categories,
	})
}

// GetReport returns the full forecast report payload. Identical
// back-to-back requests may be served from the report cache.
func (h *ForecastHandler) GetReport(c *gin.Context) {
	params := h.parseParams(c)
	ctx := c.Request.Context()

	if report, ok, err := h.cache.GetReport(ctx, params); err == nil && ok {
		c.JSON(http.StatusOK, report)
		return
	} else if err != nil {
		log.Warn().Err(err).Msg("forecast: report cache get failed")
	}

	report, err := h.forecaster.GenerateReport(ctx, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report", "details": err.Error()})
		return
	}

	if err := h.cache.SetReport(ctx, params, report); err != nil {
		log.Warn().Err(err).Msg("forecast: report cache set failed")
	}

	c.JSON(http.StatusOK, report)
}

// ExportReportCSV streams the report's product list as a CSV download
// and, when an archive is configured, stores a copy.
func (h *ForecastHandler) ExportReportCSV(c *gin.Context) {
	params := h.parseParams(c)
	ctx := c.Request.Context()

	report, err := h.forecaster.GenerateReport(ctx, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report", "details": err.Error()})
		return
	}

	payload, err := reportCSV(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode report", "details": err.Error()})
		return
	}

	filename := fmt.Sprintf("forecast_report_%s.csv", report.GeneratedAt.Format("20060102_150405"))

	if h.archive != nil {
		if err := h.archive.Put(ctx, filename, "text/csv", payload); err != nil {
			log.Warn().Err(err).Str("file", filename).Msg("forecast: report archive upload failed")
		}
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", payload)
}

func reportCSV(report *domain.ForecastReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"sku", "product", "category", "current_stock", "min_stock", "max_stock",
		"avg_daily_demand", "daily_forecast", "total_forecast", "safety_stock",
		"projected_stock", "restock_needed", "optimal_restock", "days_until_stockout",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, f := range report.AllProducts {
		row := []string{
			f.ProductSKU,
			f.ProductName,
			f.Category,
			strconv.Itoa(f.CurrentStock),
			strconv.Itoa(f.MinStock),
			strconv.Itoa(f.MaxStock),
			strconv.FormatFloat(f.AvgDailyDemand, 'f', 2, 64),
			strconv.FormatFloat(f.DailyForecast, 'f', 2, 64),
			strconv.FormatFloat(f.TotalForecast, 'f', 2, 64),
			strconv.Itoa(f.SafetyStock),
			strconv.FormatFloat(f.ProjectedStock, 'f', 2, 64),
			strconv.Itoa(f.RestockNeeded),
			strconv.Itoa(f.OptimalRestock),
			strconv.Itoa(f.DaysUntilStockout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
