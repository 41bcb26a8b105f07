package importer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hiring-pipeline-api/internal/domain"
	"github.com/hiring-pipeline-api/internal/dto"
)

// mockMetricsService записывает сохранённые запросы по дате,
// отклоняя некорректные даты как настоящий сервис
type mockMetricsService struct {
	saved map[string]*dto.SaveMetricsRequest
}

func newMockMetricsService() *mockMetricsService {
	return &mockMetricsService{saved: make(map[string]*dto.SaveMetricsRequest)}
}

func (m *mockMetricsService) Save(ctx context.Context, req *dto.SaveMetricsRequest) (*dto.MetricsResponse, error) {
	if !domain.ValidDate(req.MetricDate) {
		return nil, domain.ErrInvalidDate
	}
	m.saved[req.MetricDate] = req
	return &dto.MetricsResponse{MetricDate: req.MetricDate}, nil
}

func (m *mockMetricsService) GetByDate(ctx context.Context, metricDate string) (*dto.MetricsResponse, error) {
	return nil, domain.ErrMetricNotFound
}

func (m *mockMetricsService) Summary(ctx context.Context, start, end string) (*dto.WeeklySummaryResponse, error) {
	return &dto.WeeklySummaryResponse{StartDate: start, EndDate: end}, nil
}

func TestImportCSV_UTF8WithBOM(t *testing.T) {
	metrics := newMockMetricsService()
	imp := New(metrics)

	csvBody := "\ufeffDate,Apps Reviewed,Interviews Scheduled,Hires Confirmed,Rejection_Post_NCNS,Withdrawal_Pre_Pay\n" +
		"2026-02-02,12,6,2,1,0\n" +
		"2026-02-03,8,3,1,0,2\n"

	resp, err := imp.ImportCSV(context.Background(), strings.NewReader(csvBody))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if resp.ImportedDays != 2 {
		t.Errorf("expected 2 imported days, got %d", resp.ImportedDays)
	}
	if resp.SkippedRows != 0 {
		t.Errorf("expected no skipped rows, got %d", resp.SkippedRows)
	}

	first := metrics.saved["2026-02-02"]
	if first == nil {
		t.Fatal("expected saved metrics for 2026-02-02")
	}
	if first.AppsReviewed != 12 || first.InterviewsScheduled != 6 || first.HiresConfirmed != 2 {
		t.Errorf("unexpected counters: %+v", first)
	}
	if len(first.Breakdowns) != 1 {
		t.Fatalf("expected zero counts omitted, got %+v", first.Breakdowns)
	}
	b := first.Breakdowns[0]
	if b.Category != string(domain.PostInterviewRejection) || b.Reason != domain.ReasonNCNS || b.Count != 1 {
		t.Errorf("unexpected breakdown mapping: %+v", b)
	}

	second := metrics.saved["2026-02-03"]
	if second == nil || len(second.Breakdowns) != 1 || second.Breakdowns[0].Reason != domain.ReasonPay {
		t.Errorf("unexpected second day: %+v", second)
	}
}

func TestImportCSV_Windows1252(t *testing.T) {
	metrics := newMockMetricsService()
	imp := New(metrics)

	// заголовок лишней колонки содержит байт 0xE9, недопустимый в UTF-8
	raw := append([]byte("Date,Apps Reviewed,R\xe9sum\xe9s\n"), []byte("2026-02-02,5,3\n")...)

	resp, err := imp.ImportCSV(context.Background(), bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if resp.ImportedDays != 1 {
		t.Errorf("expected 1 imported day, got %d", resp.ImportedDays)
	}
	if saved := metrics.saved["2026-02-02"]; saved == nil || saved.AppsReviewed != 5 {
		t.Errorf("unexpected saved metrics: %+v", saved)
	}
}

func TestImportCSV_DateHeaderVariants(t *testing.T) {
	metrics := newMockMetricsService()
	imp := New(metrics)

	csvBody := " DATE ,Apps Reviewed\n2026-02-02,7\n"

	resp, err := imp.ImportCSV(context.Background(), strings.NewReader(csvBody))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if resp.ImportedDays != 1 {
		t.Errorf("expected 1 imported day, got %d", resp.ImportedDays)
	}
}

func TestImportCSV_NoDateColumn(t *testing.T) {
	imp := New(newMockMetricsService())

	csvBody := "Day,Apps Reviewed\n2026-02-02,7\n"

	_, err := imp.ImportCSV(context.Background(), strings.NewReader(csvBody))
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestImportCSV_SkipsBadRows(t *testing.T) {
	metrics := newMockMetricsService()
	imp := New(metrics)

	csvBody := "Date,Apps Reviewed\n" +
		"02/02/2026,5\n" +
		"2026-02-03,many\n" +
		"2026-02-04,9\n"

	resp, err := imp.ImportCSV(context.Background(), strings.NewReader(csvBody))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if resp.ImportedDays != 1 {
		t.Errorf("expected 1 imported day, got %d", resp.ImportedDays)
	}
	if resp.SkippedRows != 2 {
		t.Errorf("expected 2 skipped rows, got %d", resp.SkippedRows)
	}
	if len(resp.Errors) != 2 || !strings.HasPrefix(resp.Errors[0], "row 2:") {
		t.Errorf("unexpected errors: %v", resp.Errors)
	}
	if metrics.saved["2026-02-04"] == nil {
		t.Error("expected the valid row to be saved")
	}
}

func TestImportCSV_Reimport(t *testing.T) {
	metrics := newMockMetricsService()
	imp := New(metrics)

	csvBody := "Date,Apps Reviewed\n2026-02-02,5\n"

	for i := 0; i < 2; i++ {
		resp, err := imp.ImportCSV(context.Background(), strings.NewReader(csvBody))
		if err != nil {
			t.Fatalf("import failed: %v", err)
		}
		if resp.ImportedDays != 1 {
			t.Errorf("expected 1 imported day, got %d", resp.ImportedDays)
		}
	}
	if len(metrics.saved) != 1 {
		t.Errorf("expected a single stored day after re-import, got %d", len(metrics.saved))
	}
}

func TestColumnMappingCoversFixedBreakdowns(t *testing.T) {
	keys := domain.FixedBreakdowns()
	if len(columnMapping) != len(keys) {
		t.Fatalf("expected %d mapped columns, got %d", len(keys), len(columnMapping))
	}
	mapped := make(map[domain.BreakdownKey]bool, len(columnMapping))
	for _, key := range columnMapping {
		mapped[key] = true
	}
	for _, key := range keys {
		if !mapped[key] {
			t.Errorf("missing column for %s / %s", key.Category, key.Reason)
		}
	}
}
