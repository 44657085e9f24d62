package handler

import (
	"go-stock-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

// GetDailyActivity returns the 7-day in/out chart series
func (h *DashboardHandler) GetDailyActivity(c *fiber.Ctx) error {
	data, err := h.service.GetDailyActivity()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch daily activity"})
	}
	return c.JSON(fiber.Map{"data": data})
}

// GetWeeklyTrend returns the 6-week stock-out trend series
func (h *DashboardHandler) GetWeeklyTrend(c *fiber.Ctx) error {
	data, err := h.service.GetWeeklyTrend()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch weekly trend"})
	}
	return c.JSON(fiber.Map{"data": data})
}
