package schema

// BugReportTable represents the 'support.bugreport' table
type BugReportTable struct {
	Table       string
	ID          string
	ReporterID  string
	Title       string
	Description string
	PageURL     string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// BugReport is the schema definition for support.bugreport
var BugReport = BugReportTable{
	Table:       "support.bugreport",
	ID:          "id",
	ReporterID:  "reporterid",
	Title:       "title",
	Description: "description",
	PageURL:     "pageurl",
	Status:      "status",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t BugReportTable) Columns() []string {
	return []string{
		t.ID, t.ReporterID, t.Title, t.Description, t.PageURL,
		t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
