// Package report отвечает за выгрузку отчётов в HTML
package report

import (
	"html/template"
	"os"
	"path/filepath"

	"github.com/hiring-pipeline-api/internal/domain"
	"github.com/hiring-pipeline-api/internal/dto"
)

const snapshotFilename = "weekly_activity_snapshot.html"

var snapshotTemplate = template.Must(template.New("snapshot").Parse(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"><title>Weekly Activity Snapshot</title>
<style>
    body { font-family: 'Segoe UI', sans-serif; color: #333; }
    .container { padding: 20px; border: 1px solid #6b92c2; width: 350px; margin: 20px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); background-color: #cedbeb; }
    h2 { color: #084999; text-align: center; }
    p { text-align: center; margin-top: -10px; color: #396dad; }
    table { border-collapse: collapse; width: 100%; margin-top: 20px; }
    th, td { border: 1px solid #6b92c2; text-align: left; padding: 10px; font-size: 1.1em; }
    th { background-color: #396dad; color: white; }
    td:nth-child(2) { text-align: center; font-weight: bold; }
    tbody tr:nth-child(even) { background-color: #ffffff; }
    tbody tr:nth-child(odd) { background-color: #e8eef4; }
</style></head><body><div class="container">
<h2>Weekly Activity Snapshot</h2><p>{{.DateRange}}</p>
<table>
    <thead><tr><th>Categories</th><th>Total</th></tr></thead>
    <tbody>
{{- range .Rows}}
        <tr><td>{{.Label}}</td><td>{{.Count}}</td></tr>
{{- end}}
    </tbody>
</table></div></body></html>
`))

type snapshotData struct {
	DateRange string
	Rows      []dto.SnapshotRow
}

// SnapshotWriter выгружает недельный срез в HTML-файл
type SnapshotWriter struct {
	dir string
}

// NewSnapshotWriter создаёт writer, пишущий файлы в указанный каталог
func NewSnapshotWriter(dir string) *SnapshotWriter {
	return &SnapshotWriter{dir: dir}
}

// WriteHTML рендерит срез в файл и возвращает абсолютный путь к нему
func (w *SnapshotWriter) WriteHTML(start, end string, rows []dto.SnapshotRow) (string, error) {
	startDate, err := domain.ParseDate(start)
	if err != nil {
		return "", err
	}
	endDate, err := domain.ParseDate(end)
	if err != nil {
		return "", err
	}

	data := snapshotData{
		DateRange: startDate.Format("January 02, 2006") + " - " + endDate.Format("January 02, 2006"),
		Rows:      rows,
	}

	path := filepath.Join(w.dir, snapshotFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := snapshotTemplate.Execute(f, data); err != nil {
		return "", err
	}

	return filepath.Abs(path)
}
