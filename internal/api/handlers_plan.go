package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aajkakhana/internal/services"
)

func (handler *Handler) ShowPlan(c *fiber.Ctx) error {
	messages := currentMessages(c)
	snapshot := handler.refresher.Current()
	days := services.BuildPlanDays(handler.cycle, snapshot.DayIndex)

	return handler.render(c, "plan", fiber.Map{
		"Title": translateMessage(messages, "plan.title"),
		"Days":  buildPlanDays(messages, currentLanguage(c), days),
	})
}
