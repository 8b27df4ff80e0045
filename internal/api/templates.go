package api

import (
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/terraincognita07/aajkakhana/internal/models"
	"github.com/terraincognita07/aajkakhana/internal/services"
)

var pageTemplates = []string{
	"dashboard",
	"plan",
	"not_found",
}

func parsePageTemplates(templateDir string, funcMap template.FuncMap, pages []string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, "partials.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"t":              translateMessage,
		"tf":             templateTranslatef,
		"mealEmoji":      templateMealEmoji,
		"equipmentEmoji": templateEquipmentEmoji,
		"prepEmoji":      templatePrepEmoji,
		"dict":           templateDict,
	}
}

func templateTranslatef(messages map[string]string, key string, args ...any) string {
	return fmt.Sprintf(translateMessage(messages, key), args...)
}

func templateMealEmoji(meal models.MealType) string {
	return services.MealEmoji(meal)
}

func templateEquipmentEmoji(equipment models.Equipment) string {
	return services.EquipmentEmoji(equipment)
}

func templatePrepEmoji(timing models.PrepTiming) string {
	return services.PrepTimingEmoji(timing)
}

func templateDict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict requires key-value pairs")
	}
	result := make(map[string]any, len(values)/2)
	for index := 0; index < len(values); index += 2 {
		key, ok := values[index].(string)
		if !ok {
			return nil, fmt.Errorf("dict key at index %d is not a string", index)
		}
		result[key] = values[index+1]
	}
	return result, nil
}
