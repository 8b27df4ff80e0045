package api

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/terraincognita07/aajkakhana/internal/i18n"
	"github.com/terraincognita07/aajkakhana/internal/services"
)

type Dependencies struct {
	Refresher    *services.RefreshService
	Cycle        *services.MenuCycle
	Settings     *services.SettingsService
	I18n         *i18n.Manager
	TemplatesDir string
	Metrics      http.Handler
}

type Handler struct {
	refresher *services.RefreshService
	cycle     *services.MenuCycle
	settings  *services.SettingsService
	i18n      *i18n.Manager
	templates map[string]*template.Template
	metrics   http.Handler
}

func NewHandler(deps Dependencies) (*Handler, error) {
	switch {
	case deps.Refresher == nil:
		return nil, errors.New("refresher is required")
	case deps.Cycle == nil:
		return nil, errors.New("menu cycle is required")
	case deps.Settings == nil:
		return nil, errors.New("settings service is required")
	case deps.I18n == nil:
		return nil, errors.New("i18n manager is required")
	}

	templates, err := parsePageTemplates(deps.TemplatesDir, newTemplateFuncMap(), pageTemplates)
	if err != nil {
		return nil, err
	}

	return &Handler{
		refresher: deps.Refresher,
		cycle:     deps.Cycle,
		settings:  deps.Settings,
		i18n:      deps.I18n,
		templates: templates,
		metrics:   deps.Metrics,
	}, nil
}
