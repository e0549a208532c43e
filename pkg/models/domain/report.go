package domain

// Report is a terminal rendering of a dashboard view
type Report struct {
	Title       string
	Subtitle    string
	Sections    []ReportSection
	TotalAmount float64
	Currency    string
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
