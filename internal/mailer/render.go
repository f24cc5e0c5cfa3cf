package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"coastfire/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"usd":     FormatUSD,
	"percent": FormatPercent,
}).ParseFS(templateFS, "templates/*.html"))

type welcomeView struct {
	CalculatorURL string
}

type resultsView struct {
	Result    model.ProjectionResult
	Inputs    model.CalculatorInputs
	HasInputs bool
	SiteURL   string
}

func renderWelcome(siteURL string) (string, error) {
	return render("welcome.html", welcomeView{CalculatorURL: siteURL + "/calculator/coast-fire"})
}

func renderResults(siteURL string, result model.ProjectionResult, inputs *model.CalculatorInputs) (string, error) {
	view := resultsView{Result: result, SiteURL: siteURL}
	if inputs != nil {
		view.Inputs = *inputs
		view.HasInputs = true
	}
	return render("results.html", view)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
