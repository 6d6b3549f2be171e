package render

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Data é o contexto nomeado entregue ao template.
type Data map[string]any

// TemplateRenderer materializa páginas HTML a partir dos templates
// embutidos. A camada de apresentação em si fica fora do domínio: os
// handlers só conhecem o nome do template e o Data.
type TemplateRenderer struct {
	templates *template.Template
}

func New() (*TemplateRenderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &TemplateRenderer{
		templates: templates,
	}, nil
}

func (t *TemplateRenderer) Render(w http.ResponseWriter, name string, data Data) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	return nil
}
