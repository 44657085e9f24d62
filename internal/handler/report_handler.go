package handler

import (
	"go-stock-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetSummary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report summary"})
	}
	return c.JSON(summary)
}

// GetTransactions supports ?type=in|out, default semua
func (h *ReportHandler) GetTransactions(c *fiber.Ctx) error {
	txns, err := h.service.GetTransactions(c.Query("type", "all"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(txns)
}
