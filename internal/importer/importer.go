// Package importer загружает исторические дневные показатели из CSV
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hiring-pipeline-api/internal/domain"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/service"
	"golang.org/x/text/encoding/charmap"
)

// columnMapping связывает колонки CSV с парами (категория, причина)
var columnMapping = map[string]domain.BreakdownKey{
	"Rejection_Pre_Not eligible for Rehire":  {Category: domain.PreInterviewRejection, Reason: domain.ReasonNotEligible},
	"Rejection_Pre_Background":               {Category: domain.PreInterviewRejection, Reason: domain.ReasonBackground},
	"Rejection_Pre_Not a good Fit":           {Category: domain.PreInterviewRejection, Reason: domain.ReasonNotGoodFit},
	"Rejection_Post_Not eligible for Rehire": {Category: domain.PostInterviewRejection, Reason: domain.ReasonNotEligible},
	"Rejection_Post_Background":              {Category: domain.PostInterviewRejection, Reason: domain.ReasonBackground},
	"Rejection_Post_Not a good Fit":          {Category: domain.PostInterviewRejection, Reason: domain.ReasonNotGoodFit},
	"Rejection_Post_NCNS":                    {Category: domain.PostInterviewRejection, Reason: domain.ReasonNCNS},
	"Withdrawal_Pre_Schedule":                {Category: domain.PreInterviewWithdrawal, Reason: domain.ReasonSchedule},
	"Withdrawal_Pre_Other Job Offer":         {Category: domain.PreInterviewWithdrawal, Reason: domain.ReasonOtherOffer},
	"Withdrawal_Pre_Pay":                     {Category: domain.PreInterviewWithdrawal, Reason: domain.ReasonPay},
	"Withdrawal_Pre_Other":                   {Category: domain.PreInterviewWithdrawal, Reason: domain.ReasonOther},
	"Withdrawal_Post_Schedule":               {Category: domain.PostInterviewWithdrawal, Reason: domain.ReasonSchedule},
	"Withdrawal_Post_Other Job Offer":        {Category: domain.PostInterviewWithdrawal, Reason: domain.ReasonOtherOffer},
	"Withdrawal_Post_Pay":                    {Category: domain.PostInterviewWithdrawal, Reason: domain.ReasonPay},
	"Withdrawal_Post_Other":                  {Category: domain.PostInterviewWithdrawal, Reason: domain.ReasonOther},
}

// Importer читает CSV с историей показателей и сохраняет её по дням.
// Каждая строка сохраняется атомарно, ошибочные строки пропускаются.
type Importer struct {
	metrics service.MetricsService
}

// New создаёт новый импортёр
func New(metrics service.MetricsService) *Importer {
	return &Importer{metrics: metrics}
}

// decode приводит содержимое файла к UTF-8. Файлы с BOM и корректным
// UTF-8 читаются как есть, остальные считаются Windows-1252.
func decode(data []byte) ([]byte, error) {
	data = []byte(strings.TrimPrefix(string(data), "\ufeff"))
	if utf8.Valid(data) {
		return data, nil
	}
	return charmap.Windows1252.NewDecoder().Bytes(data)
}

// isDateHeader распознаёт колонку с датой независимо от регистра,
// пробелов и остаточного BOM
func isDateHeader(name string) bool {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.EqualFold(strings.TrimSpace(name), "date")
}

func parseCount(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

// ImportCSV читает файл и сохраняет показатели по дням.
// Повторный импорт того же файла даёт тот же результат.
func (im *Importer) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResponse, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	decoded, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(decoded)))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	dateCol := -1
	columns := make(map[string]int, len(headers))
	for i, h := range headers {
		if dateCol == -1 && isDateHeader(h) {
			dateCol = i
			continue
		}
		columns[strings.TrimSpace(h)] = i
	}
	if dateCol == -1 {
		return nil, fmt.Errorf("%w: no Date column among %v", domain.ErrInvalidDate, headers)
	}

	resp := &dto.ImportResponse{}
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rowNum+1, err)
		}
		rowNum++

		req, err := im.buildRequest(record, dateCol, columns)
		if err == nil {
			_, err = im.metrics.Save(ctx, req)
		}
		if err != nil {
			resp.SkippedRows++
			resp.Errors = append(resp.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		resp.ImportedDays++
	}

	return resp, nil
}

func (im *Importer) buildRequest(record []string, dateCol int, columns map[string]int) (*dto.SaveMetricsRequest, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	if dateCol >= len(record) {
		return nil, domain.ErrInvalidDate
	}
	req := &dto.SaveMetricsRequest{
		MetricDate: strings.TrimSpace(record[dateCol]),
	}

	var err error
	if req.AppsReviewed, err = parseCount(cell("Apps Reviewed")); err != nil {
		return nil, fmt.Errorf("Apps Reviewed: %w", err)
	}
	if req.InterviewsScheduled, err = parseCount(cell("Interviews Scheduled")); err != nil {
		return nil, fmt.Errorf("Interviews Scheduled: %w", err)
	}
	if req.HiresConfirmed, err = parseCount(cell("Hires Confirmed")); err != nil {
		return nil, fmt.Errorf("Hires Confirmed: %w", err)
	}

	for header, key := range columnMapping {
		count, err := parseCount(cell(header))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", header, err)
		}
		if count == 0 {
			continue
		}
		req.Breakdowns = append(req.Breakdowns, dto.BreakdownEntry{
			Category: string(key.Category),
			Reason:   key.Reason,
			Count:    count,
		})
	}

	return req, nil
}
