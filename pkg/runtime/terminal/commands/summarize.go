package commands

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/dataset"
	"github.com/de-tools/sales-atlas/pkg/services/pipeline"
	"github.com/spf13/cobra"
)

type SummarizeCmd struct {
	filePath     string
	profilesPath string
	profile      string
	days         []string
	categories   []string
	reporter     *export.Reporter
}

func NewSummarizeCmd(reporter *export.Reporter) *cobra.Command {
	sc := &SummarizeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Filter a sales file and print its summary report",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.filePath, "file", "", "Path to the CSV or XLSX file (omit to use the sample dataset)")
	cmd.Flags().StringVar(&sc.profilesPath, "profiles", "", "Path to the column profiles file")
	cmd.Flags().StringVar(&sc.profile, "profile", "", "Column profile to apply")
	cmd.Flags().StringSliceVar(&sc.days, "days", nil, "Days to keep (default: all)")
	cmd.Flags().StringSliceVar(&sc.categories, "categories", nil, "Categories to keep (default: all)")

	return cmd
}

func (sc *SummarizeCmd) run(cmd *cobra.Command, _ []string) error {
	ds, source, err := loadDataset(cmd, sc.filePath, sc.profilesPath, sc.profile)
	if err != nil {
		return err
	}

	sel := buildSelection(ds, sc.days, sc.categories)
	rows, summary := pipeline.Apply(ds, sel)
	stats := pipeline.Describe(rows)

	return sc.reporter.Handle(buildReport(source, summary, stats))
}

// loadDataset resolves the dataset for CLI commands: an explicit file or
// the built-in sample. Shared with the columns command.
func loadDataset(cmd *cobra.Command, filePath, profilesPath, profile string) (domain.Dataset, string, error) {
	var registry config.Registry = config.EmptyRegistry{}
	if profilesPath != "" {
		r, err := config.NewRegistry(profilesPath)
		if err != nil {
			return domain.Dataset{}, "", fmt.Errorf("failed to load profiles: %w", err)
		}
		registry = r
	}

	mapping, err := registry.GetMapping(cmd.Context(), profile)
	if err != nil {
		return domain.Dataset{}, "", err
	}

	if filePath == "" {
		return dataset.Sample(), "sample", nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return domain.Dataset{}, "", fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	source := dataset.Resolve(data, filePath, mapping)
	if source.Kind == dataset.SourceFailed {
		return domain.Dataset{}, "", source.Err
	}
	return source.Dataset, filePath, nil
}

func buildSelection(ds domain.Dataset, days, categories []string) domain.Selection {
	if days == nil {
		days = ds.Days()
	}
	var cats []string
	if ds.HasCategory {
		cats = categories
		if cats == nil {
			cats = ds.Categories()
		}
	}
	return domain.NewSelection(days, cats)
}

func buildReport(source string, summary domain.Summary, stats []domain.ColumnStats) *domain.Report {
	report := &domain.Report{
		Title:    "Sales Summary",
		Source:   source,
		RowCount: summary.Count,
	}

	kpi := domain.ReportSection{
		Title: "Summary (KPI)",
		Details: []domain.ReportDetail{
			{Name: "Total Sales", Value: formatValue(summary.TotalSales), Description: "Sum of salesCount over filtered rows"},
			{Name: "Total Visitors", Value: formatValue(summary.TotalVisitors), Description: "Sum of visitorCount over filtered rows"},
			{Name: "Average Sales", Value: formatValue(summary.MeanSales), Description: "Mean of salesCount"},
			{Name: "Average Visitors", Value: formatValue(summary.MeanVisitors), Description: "Mean of visitorCount"},
		},
	}
	report.Sections = append(report.Sections, kpi)

	if summary.CategoryTotals != nil {
		section := domain.ReportSection{Title: "Sales per Category"}
		for _, t := range summary.CategoryTotals {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:  t.Category,
				Value: formatValue(t.Sales),
				Unit:  "sales",
			})
		}
		report.Sections = append(report.Sections, section)
	}

	statSection := domain.ReportSection{Title: "Descriptive Statistics"}
	for _, s := range stats {
		statSection.Details = append(statSection.Details,
			domain.ReportDetail{Name: s.Column + " count", Value: s.Count},
			domain.ReportDetail{Name: s.Column + " mean", Value: formatValue(s.Mean)},
			domain.ReportDetail{Name: s.Column + " std", Value: formatValue(s.Std)},
			domain.ReportDetail{Name: s.Column + " min", Value: formatValue(s.Min)},
			domain.ReportDetail{Name: s.Column + " p25", Value: formatValue(s.P25)},
			domain.ReportDetail{Name: s.Column + " median", Value: formatValue(s.Median)},
			domain.ReportDetail{Name: s.Column + " p75", Value: formatValue(s.P75)},
			domain.ReportDetail{Name: s.Column + " max", Value: formatValue(s.Max)},
		)
	}
	report.Sections = append(report.Sections, statSection)

	return report
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
