package directory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ilinovom/company-info-bot/internal/model"
)

// Directory looks up the external employee roster. Implementations report
// ErrUnavailable when there is no backing data at all; callers present that
// as "no data", not as a failure. An empty search result is a plain empty
// slice, distinct from ErrUnavailable.
type Directory interface {
	Departments() ([]string, error)
	Staff(department string) ([]model.Employee, error)
	Find(query string) ([]model.Employee, error)
}

// ErrUnavailable means the roster file is missing or empty.
var ErrUnavailable = errors.New("employee roster unavailable")

// maxResults caps list replies so Telegram messages stay readable.
const maxResults = 20

var requiredColumns = []string{"name", "department", "position", "email", "phone", "hire_date"}

// FileDirectory reads the roster from a CSV file, falling back to an XLSX
// workbook. The file is re-read on every call so edits show up without a
// restart.
type FileDirectory struct {
	csvPath  string
	xlsxPath string
}

func NewFileDirectory(csvPath, xlsxPath string) *FileDirectory {
	return &FileDirectory{csvPath: csvPath, xlsxPath: xlsxPath}
}

func (d *FileDirectory) load() ([]model.Employee, error) {
	if _, err := os.Stat(d.csvPath); err == nil {
		return d.loadCSV()
	}
	if _, err := os.Stat(d.xlsxPath); err == nil {
		return d.loadXLSX()
	}
	return nil, ErrUnavailable
}

func (d *FileDirectory) loadCSV() ([]model.Employee, error) {
	f, err := os.Open(d.csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", d.csvPath, err)
	}
	return fromRows(rows)
}

func (d *FileDirectory) loadXLSX() ([]model.Employee, error) {
	f, err := excelize.OpenFile(d.xlsxPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.xlsxPath, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", d.xlsxPath, err)
	}
	return fromRows(rows)
}

// fromRows decodes a header row plus data rows into employees. Header names
// are case- and whitespace-normalized; all six required columns must be
// present.
func fromRows(rows [][]string) ([]model.Employee, error) {
	if len(rows) == 0 {
		return nil, ErrUnavailable
	}
	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("roster missing column %q", name)
		}
	}

	cell := func(row []string, name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]model.Employee, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, model.Employee{
			Name:       cell(row, "name"),
			Department: cell(row, "department"),
			Position:   cell(row, "position"),
			Email:      cell(row, "email"),
			Phone:      cell(row, "phone"),
			HireDate:   cell(row, "hire_date"),
		})
	}
	return out, nil
}

// Departments returns the sorted unique department names.
func (d *FileDirectory) Departments() ([]string, error) {
	employees, err := d.load()
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	out := []string{}
	for _, e := range employees {
		if e.Department == "" || seen[e.Department] {
			continue
		}
		seen[e.Department] = true
		out = append(out, e.Department)
	}
	sort.Strings(out)
	return out, nil
}

// Staff lists employees, optionally filtered by a department substring.
func (d *FileDirectory) Staff(department string) ([]model.Employee, error) {
	employees, err := d.load()
	if err != nil {
		return nil, err
	}
	out := []model.Employee{}
	for _, e := range employees {
		if department != "" && !containsFold(e.Department, department) {
			continue
		}
		out = append(out, e)
		if len(out) == maxResults {
			break
		}
	}
	return out, nil
}

// Find searches name, department and position with case-insensitive
// substring matching, OR-combined.
func (d *FileDirectory) Find(query string) ([]model.Employee, error) {
	employees, err := d.load()
	if err != nil {
		return nil, err
	}
	out := []model.Employee{}
	for _, e := range employees {
		if !containsFold(e.Name, query) &&
			!containsFold(e.Department, query) &&
			!containsFold(e.Position, query) {
			continue
		}
		out = append(out, e)
		if len(out) == maxResults {
			break
		}
	}
	return out, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}
