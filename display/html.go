package display

import (
	"html/template"
	"io"
	"strings"

	"recipecatalog/catalog"
)

const htmlTemplates = `
{{define "list"}}{{if .Empty}}<p class="no-results">{{.Message}}</p>{{else}}{{range .Cards}}{{template "card" .}}{{end}}{{end}}{{end}}

{{define "card"}}<a class="recipe-card" href="{{.Href}}" data-recipe-id="{{.ID}}">
  <div class="recipe-image"><img src="{{.Image}}" alt="{{.Name}}" onerror="this.parentElement.textContent=this.alt"></div>
  <div class="recipe-content">
    <h3 class="recipe-card-title">{{.Name}}</h3>
    <p class="recipe-description">{{.Description}}</p>
    <div class="recipe-badges">
      <span class="badge badge-category">{{.Category}}</span>
      <span class="badge {{.Badge.Class}}">{{.Difficulty}}</span>
    </div>
    <div class="recipe-meta">⏱️ {{.Time}} • 👥 {{.Servings}} servings</div>
  </div>
</a>
{{end}}

{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<form class="filters" method="get" action="/">
  <input type="search" name="q" value="{{.Criteria.Search}}" placeholder="Search recipes">
  <input type="text" name="category" value="{{.Criteria.Category}}" placeholder="Category">
  <select name="difficulty">{{range .Difficulties}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}</select>
  <select name="time">{{range .Times}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}</select>
  <label><input type="checkbox" name="vegetarian" value="true"{{if .Criteria.VegetarianOnly}} checked{{end}}> Vegetarian</label>
  <button type="submit">Filter</button>
</form>
<select class="ingredients" name="ingredient">{{range .Ingredients}}<option value="{{.}}">{{.}}</option>{{end}}</select>
<div id="recipes-container" class="recipes-grid">{{template "list" .List}}</div>
</body>
</html>
{{end}}`

// Option is one entry of a select control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Page is the model of the full catalog page.
type Page struct {
	Title        string
	Criteria     catalog.Criteria
	Difficulties []Option
	Times        []Option
	Ingredients  []string
	List         List
}

// NewPage builds the page model. The difficulty options are the labels the
// catalog actually uses, since the filter compares label text.
func NewPage(title string, c catalog.Criteria, difficulties, ingredients []string, list List) Page {
	options := []Option{{Value: "", Label: "Any difficulty"}}
	for _, label := range difficulties {
		options = append(options, Option{
			Value:    label,
			Label:    label,
			Selected: c.Difficulty != "" && strings.EqualFold(c.Difficulty, label),
		})
	}

	times := []Option{{Value: "", Label: "Any time"}}
	for _, b := range []catalog.TimeBucket{catalog.Under30, catalog.From30To60, catalog.Over60} {
		times = append(times, Option{Value: b.String(), Label: b.String() + " min", Selected: c.Time == b})
	}

	return Page{
		Title:        title,
		Criteria:     c,
		Difficulties: options,
		Times:        times,
		Ingredients:  ingredients,
		List:         list,
	}
}

// HTML writes display models as HTML markup.
type HTML struct {
	tmpl *template.Template
}

func NewHTML() *HTML {
	return &HTML{tmpl: template.Must(template.New("display").Parse(htmlTemplates))}
}

// Render writes the card list fragment to w. A nil mount point is a no-op.
func (h *HTML) Render(w io.Writer, list List) error {
	if unmounted(w) {
		return nil
	}
	return h.tmpl.ExecuteTemplate(w, "list", list)
}

// RenderPage writes a complete document with the filter form and the list.
func (h *HTML) RenderPage(w io.Writer, page Page) error {
	if unmounted(w) {
		return nil
	}
	return h.tmpl.ExecuteTemplate(w, "page", page)
}
