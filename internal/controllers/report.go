package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"marketplace-system/internal/entities"
	"marketplace-system/internal/services"
	"marketplace-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetStats(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.reportService.GetStats(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *ReportController) GetRevenues(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	spec, err := utils.ParseQuerySpec(ctx.Request().URL.Query(), 0)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.reportService.GetRevenues(reqCtx, spec)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.ListResponse(ctx, res.List, res.Pagination, "Successfully")
}

// GetRevenueReport serves the joined revenue report, as JSON by default or as
// an XLSX attachment when format=xlsx.
func (c *ReportController) GetRevenueReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter := c.parseFilter(ctx)
	format := strings.ToLower(ctx.QueryParam("format"))

	if format == "xlsx" {
		data, err := c.reportService.GetRevenueReport(reqCtx, filter)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return c.respondWithXLSX(ctx, data)
	}

	data, err := c.reportService.GetRevenueReportDTOs(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, data, "Successfully", http.StatusOK)
}

func (c *ReportController) parseFilter(ctx echo.Context) entities.ReportFilter {
	var filter entities.ReportFilter

	if df := ctx.QueryParam("date_from"); df != "" {
		if t, err := time.Parse(time.RFC3339, df); err == nil {
			filter.DateFrom = &t
		}
	}
	if dt := ctx.QueryParam("date_to"); dt != "" {
		if t, err := time.Parse(time.RFC3339, dt); err == nil {
			filter.DateTo = &t
		}
	}
	if sid := ctx.QueryParam("seller_id"); sid != "" {
		if id, err := strconv.ParseUint(sid, 10, 64); err == nil {
			filter.SellerID = id
		}
	}
	return filter
}

var revenueReportHeaders = []string{
	"Revenue ID", "Seller ID", "Seller", "Email", "Order ID", "Upload", "Amount", "Date",
}

func revenueRowToSlice(item entities.RevenueReportItem) []interface{} {
	return []interface{}{
		item.RevenueID, item.SellerID, item.SellerName, item.SellerEmail,
		item.OrderID, item.UploadTitle, item.Amount,
		item.CreatedAt.Format("02.01.2006 15:04"),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []entities.RevenueReportItem) error {
	f := excelize.NewFile()
	sheet := "Revenue report"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &revenueReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "H1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := revenueRowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "C", "D", 25)
	f.SetColWidth(sheet, "F", "F", 35)
	f.SetColWidth(sheet, "H", "H", 20)

	fileName := fmt.Sprintf("revenue_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
