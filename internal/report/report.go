package report

import (
	"io"
	"text/template"
	"time"

	"tcg-price-service/internal/eval"
	"tcg-price-service/internal/timeutil"
)

// Report is the rendered model-comparison report.
type Report struct {
	GeneratedAt string
	Folds       int
	Seed        int64
	Summary     Summary
	Results     []eval.ModelResult
	Best        eval.ModelResult
}

// New assembles a report from dataset summary and cross-validation results.
// Results are expected in the order produced by eval.CrossValidate.
func New(summary Summary, results []eval.ModelResult, folds int, seed int64, now time.Time) (Report, error) {
	best, err := eval.SelectBest(results)
	if err != nil {
		return Report{}, err
	}
	return Report{
		GeneratedAt: timeutil.FormatTimestamp(now),
		Folds:       folds,
		Seed:        seed,
		Summary:     summary,
		Results:     results,
		Best:        best,
	}, nil
}

var reportTemplate = template.Must(template.New("report").Parse(`# Model Comparison Report

Generated: {{.GeneratedAt}}

## Dataset

- Records: {{.Summary.Records}}
- Sets: {{.Summary.Sets}}
- Price mean: {{printf "%.2f" .Summary.PriceMean}}
- Price median: {{printf "%.2f" .Summary.PriceMedian}}
- Price std dev: {{printf "%.2f" .Summary.PriceStdDev}}
- Price range: {{printf "%.2f" .Summary.PriceMin}} - {{printf "%.2f" .Summary.PriceMax}}
{{if .Summary.Rarities}}
### Rarity distribution

| Rarity | Count |
|--------|-------|
{{range .Summary.Rarities}}| {{.Rarity}} | {{.Count}} |
{{end}}{{end}}
## Cross-Validation ({{.Folds}} folds, seed {{.Seed}})

| Model | R² (mean ± std) | RMSE (mean ± std) |
|-------|-----------------|-------------------|
{{range .Results}}| {{.Model}} | {{printf "%.4f" .MeanR2}} ± {{printf "%.4f" .StdR2}} | {{printf "%.4f" .MeanRMSE}} ± {{printf "%.4f" .StdRMSE}} |
{{end}}
## Best Model

**{{.Best.Model}}** (R² {{printf "%.4f" .Best.MeanR2}}, RMSE {{printf "%.4f" .Best.MeanRMSE}})
`))

// Render writes the Markdown report to w.
func (r Report) Render(w io.Writer) error {
	return reportTemplate.Execute(w, r)
}
