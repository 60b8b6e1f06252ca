package domain

// Report is the terminal rendering of one filter-and-summarize pass,
// consumed by the text reporter.
type Report struct {
	Title    string
	Source   string // file name or "sample"
	RowCount int
	Sections []ReportSection
}

// ReportSection is a logical block of the report (KPIs, category totals,
// descriptive statistics).
type ReportSection struct {
	Title   string
	Details []ReportDetail
}

// ReportDetail is one labelled value within a section.
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
