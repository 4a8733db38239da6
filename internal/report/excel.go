package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/haritsf/pr-report/internal/domain"
)

const (
	listSheet    = "Pull Requests"
	summarySheet = "Summary"
)

// Renderer writes one report run into a two-sheet Excel workbook: the raw
// pull-request list and the aggregated summary.
type Renderer struct {
	outputDir string
	logger    *logrus.Logger
}

// NewRenderer creates a new Renderer that writes into outputDir, creating the
// directory on first use when absent.
func NewRenderer(outputDir string, logger *logrus.Logger) *Renderer {
	return &Renderer{
		outputDir: outputDir,
		logger:    logger,
	}
}

// Render builds the workbook and writes it under a timestamped file name,
// returning the path of the written file.
func (r *Renderer) Render(records []*domain.PullRequestRecord, summary *domain.Summary, start, end time.Time) (string, error) {
	r.logger.Debugf("rendering %d pull requests", len(records))

	f := excelize.NewFile()
	defer f.Close()

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("failed to create header style: %w", err)
	}

	if err := r.writeListSheet(f, boldStyle, records); err != nil {
		return "", err
	}
	if err := r.writeSummarySheet(f, boldStyle, summary, start, end); err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", r.outputDir, err)
	}
	path := filepath.Join(r.outputDir, reportFileName(time.Now()))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return path, nil
}

// writeListSheet fills the first sheet with one row per record.
func (r *Renderer) writeListSheet(f *excelize.File, boldStyle int, records []*domain.PullRequestRecord) error {
	if err := f.SetSheetName("Sheet1", listSheet); err != nil {
		return fmt.Errorf("failed to rename list sheet: %w", err)
	}

	headers := []interface{}{"Project", "Title", "Description", "Author", "URL", "Additions", "Deletions", "Total", "Created", "Merged"}
	if err := f.SetSheetRow(listSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write list header: %w", err)
	}
	if err := f.SetCellStyle(listSheet, "A1", "J1", boldStyle); err != nil {
		return fmt.Errorf("failed to style list header: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to locate row %d: %w", i+2, err)
		}
		row := []interface{}{
			record.Repo,
			record.Title,
			record.Description,
			record.Author,
			record.URL,
			changeCount(record.Additions),
			changeCount(record.Deletions),
			changeTotal(record),
			FormatLongDate(record.CreatedAt),
			mergedDate(record),
		}
		if err := f.SetSheetRow(listSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row for #%d: %w", record.Number, err)
		}
	}

	// Wide columns for the text-heavy fields.
	for _, c := range []struct {
		start, end string
		width      float64
	}{
		{"A", "A", 22},
		{"B", "C", 42},
		{"E", "E", 44},
		{"I", "J", 30},
	} {
		if err := f.SetColWidth(listSheet, c.start, c.end, c.width); err != nil {
			return fmt.Errorf("failed to set column widths: %w", err)
		}
	}
	return nil
}

// writeSummarySheet fills the second sheet: report period, generation time,
// overall totals, then the author, top-PR and top-repository tables, each
// preceded by a bold section header row.
func (r *Renderer) writeSummarySheet(f *excelize.File, boldStyle int, summary *domain.Summary, start, end time.Time) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	w := &sheetWriter{f: f, sheet: summarySheet, boldStyle: boldStyle, nextRow: 1}

	w.row("Report Period", fmt.Sprintf("%s - %s", FormatLongDate(start), FormatLongDate(end)))
	w.row("Generated At", FormatLongDateTime(time.Now()))
	w.blank()

	w.header("Overall Totals")
	w.row("Pull Requests", summary.Overall.PullRequests)
	w.row("Merged", summary.Overall.MergedPullRequests)
	w.row("Open", summary.Overall.OpenPullRequests)
	w.row("Additions", summary.Overall.Additions)
	w.row("Deletions", summary.Overall.Deletions)
	w.row("Total Changes", summary.Overall.TotalChanges)
	w.row("Average Changes per PR", summary.Overall.AverageChanges)
	w.row("Median Changes per PR", summary.Overall.MedianChanges)
	w.blank()

	w.header("Statistics per Author")
	w.boldRow("Author", "Pull Requests", "Additions", "Deletions", "Total Changes")
	for _, stat := range summary.AuthorStats {
		w.row(stat.Author, stat.PullRequests, stat.Additions, stat.Deletions, stat.TotalChanges)
	}
	w.blank()

	w.header("Top Pull Requests by Change Volume")
	w.boldRow("Project", "Title", "Author", "Additions", "Deletions", "Total Changes")
	for _, record := range summary.TopPullRequests {
		w.row(record.Repo, record.Title, record.Author, changeCount(record.Additions), changeCount(record.Deletions), record.TotalChanges())
	}
	w.blank()

	w.header("Top Repositories by Change Volume")
	w.boldRow("Repository", "Total Changes")
	for _, stat := range summary.TopRepos {
		w.row(stat.Name, stat.TotalChanges)
	}

	if w.err != nil {
		return fmt.Errorf("failed to write summary sheet: %w", w.err)
	}
	return nil
}

// sheetWriter appends rows to one sheet, remembering the first write error so
// the call sites stay linear.
type sheetWriter struct {
	f         *excelize.File
	sheet     string
	boldStyle int
	nextRow   int
	err       error
}

func (w *sheetWriter) row(values ...interface{}) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, w.nextRow)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(w.sheet, cell, &values); err != nil {
		w.err = err
		return
	}
	w.nextRow++
}

func (w *sheetWriter) boldRow(values ...interface{}) {
	rowNum := w.nextRow
	w.row(values...)
	w.styleRow(rowNum, len(values))
}

// header writes a bold section header row.
func (w *sheetWriter) header(title string) {
	w.boldRow(title)
}

func (w *sheetWriter) blank() {
	if w.err == nil {
		w.nextRow++
	}
}

func (w *sheetWriter) styleRow(rowNum, width int) {
	if w.err != nil {
		return
	}
	first, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		w.err = err
		return
	}
	last, err := excelize.CoordinatesToCellName(width, rowNum)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, first, last, w.boldStyle)
}

// changeCount leaves the cell empty when enrichment attached no count.
func changeCount(count *int) interface{} {
	if count == nil {
		return nil
	}
	return *count
}

// changeTotal renders the combined change volume. The literal "N/A" stands in
// whenever the total is zero: the source report never distinguished a
// zero-change PR from one whose changes could not be fetched, and the sentinel
// keeps that meaning.
func changeTotal(record *domain.PullRequestRecord) interface{} {
	if total := record.TotalChanges(); total != 0 {
		return total
	}
	return "N/A"
}

func mergedDate(record *domain.PullRequestRecord) string {
	if record.MergedAt == nil {
		return "-"
	}
	return FormatLongDate(*record.MergedAt)
}

// reportFileName builds a fully sortable, filesystem-safe name from the UTC
// RFC 3339 instant, with ":" and "." replaced.
func reportFileName(now time.Time) string {
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(now.UTC().Format(time.RFC3339))
	return fmt.Sprintf("pr-report-%s.xlsx", stamp)
}
