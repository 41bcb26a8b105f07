package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/hiring-pipeline-api/internal/domain"
	"github.com/hiring-pipeline-api/internal/dto"
	"github.com/hiring-pipeline-api/internal/handler"
	"github.com/hiring-pipeline-api/internal/importer"
	"github.com/hiring-pipeline-api/internal/report"
	"github.com/hiring-pipeline-api/internal/repository"
	"github.com/hiring-pipeline-api/internal/service"
)

// store - общее хранилище моков, эмулирующее поведение БД,
// включая обнуление и каскадное удаление связей
type store struct {
	jobs         map[int64]*domain.Job
	interviewers map[int64]*domain.Interviewer
	classes      map[int64]*domain.HiringClass
	candidates   map[int64]*domain.Candidate
	links        map[int64][]int64
	metrics      map[string]*domain.DailyMetric

	nextJob, nextInterviewer, nextClass, nextCandidate, nextMetric int64
}

func newStore() *store {
	return &store{
		jobs:            make(map[int64]*domain.Job),
		interviewers:    make(map[int64]*domain.Interviewer),
		classes:         make(map[int64]*domain.HiringClass),
		candidates:      make(map[int64]*domain.Candidate),
		links:           make(map[int64][]int64),
		metrics:         make(map[string]*domain.DailyMetric),
		nextJob:         1,
		nextInterviewer: 1,
		nextClass:       1,
		nextCandidate:   1,
		nextMetric:      1,
	}
}

// candidateView возвращает копию кандидата с загруженными связями
func (s *store) candidateView(id int64) *domain.Candidate {
	c := *s.candidates[id]
	if c.JobID != nil {
		if job, ok := s.jobs[*c.JobID]; ok {
			jobCopy := *job
			c.Job = &jobCopy
		}
	}
	if c.ClassID != nil {
		if class, ok := s.classes[*c.ClassID]; ok {
			classCopy := *class
			c.Class = &classCopy
		}
	}
	c.Interviewers = nil
	for _, iid := range s.links[id] {
		if i, ok := s.interviewers[iid]; ok {
			c.Interviewers = append(c.Interviewers, *i)
		}
	}
	return &c
}

func (s *store) sortedCandidateIDs() []int64 {
	ids := make([]int64, 0, len(s.candidates))
	for id := range s.candidates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

type mockJobRepo struct{ s *store }

func (m *mockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	job.ID = m.s.nextJob
	m.s.nextJob++
	m.s.jobs[job.ID] = job
	return nil
}

func (m *mockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	if job, ok := m.s.jobs[id]; ok {
		return job, nil
	}
	return nil, domain.ErrJobNotFound
}

func (m *mockJobRepo) GetAll(ctx context.Context, department string) ([]domain.Job, error) {
	var jobs []domain.Job
	for _, job := range m.s.jobs {
		if department == "" || job.Department == department {
			jobs = append(jobs, *job)
		}
	}
	shiftOf := func(j domain.Job) string {
		if j.Shift == nil {
			return ""
		}
		return *j.Shift
	}
	sort.Slice(jobs, func(a, b int) bool {
		if jobs[a].Department != jobs[b].Department {
			return jobs[a].Department < jobs[b].Department
		}
		return shiftOf(jobs[a]) < shiftOf(jobs[b])
	})
	return jobs, nil
}

func (m *mockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	m.s.jobs[job.ID] = job
	return nil
}

func (m *mockJobRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.s.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(m.s.jobs, id)
	for _, c := range m.s.candidates {
		if c.JobID != nil && *c.JobID == id {
			c.JobID = nil
		}
	}
	return nil
}

func (m *mockJobRepo) Departments(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var departments []string
	for _, job := range m.s.jobs {
		if !seen[job.Department] {
			seen[job.Department] = true
			departments = append(departments, job.Department)
		}
	}
	sort.Strings(departments)
	return departments, nil
}

func (m *mockJobRepo) CountCandidates(ctx context.Context, jobID int64) (int64, error) {
	var count int64
	for _, c := range m.s.candidates {
		if c.JobID != nil && *c.JobID == jobID {
			count++
		}
	}
	return count, nil
}

type mockInterviewerRepo struct{ s *store }

func (m *mockInterviewerRepo) Create(ctx context.Context, i *domain.Interviewer) error {
	i.ID = m.s.nextInterviewer
	m.s.nextInterviewer++
	m.s.interviewers[i.ID] = i
	return nil
}

func (m *mockInterviewerRepo) GetByID(ctx context.Context, id int64) (*domain.Interviewer, error) {
	if i, ok := m.s.interviewers[id]; ok {
		return i, nil
	}
	return nil, domain.ErrInterviewerNotFound
}

func (m *mockInterviewerRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Interviewer, error) {
	var result []domain.Interviewer
	for _, id := range ids {
		if i, ok := m.s.interviewers[id]; ok {
			result = append(result, *i)
		}
	}
	return result, nil
}

func (m *mockInterviewerRepo) GetAll(ctx context.Context) ([]domain.Interviewer, error) {
	var result []domain.Interviewer
	for _, i := range m.s.interviewers {
		result = append(result, *i)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].Name < result[b].Name })
	return result, nil
}

func (m *mockInterviewerRepo) Update(ctx context.Context, i *domain.Interviewer) error {
	m.s.interviewers[i.ID] = i
	return nil
}

func (m *mockInterviewerRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.s.interviewers[id]; !ok {
		return domain.ErrInterviewerNotFound
	}
	delete(m.s.interviewers, id)
	for cid, ids := range m.s.links {
		var kept []int64
		for _, iid := range ids {
			if iid != id {
				kept = append(kept, iid)
			}
		}
		m.s.links[cid] = kept
	}
	return nil
}

func (m *mockInterviewerRepo) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	for _, i := range m.s.interviewers {
		if i.Name == name && (excludeID == nil || i.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockInterviewerRepo) CountCandidates(ctx context.Context, interviewerID int64) (int64, error) {
	var count int64
	for _, ids := range m.s.links {
		for _, iid := range ids {
			if iid == interviewerID {
				count++
			}
		}
	}
	return count, nil
}

type mockClassRepo struct{ s *store }

func (m *mockClassRepo) Create(ctx context.Context, class *domain.HiringClass) error {
	class.ID = m.s.nextClass
	m.s.nextClass++
	m.s.classes[class.ID] = class
	return nil
}

func (m *mockClassRepo) GetByID(ctx context.Context, id int64) (*domain.HiringClass, error) {
	if class, ok := m.s.classes[id]; ok {
		return class, nil
	}
	return nil, domain.ErrClassNotFound
}

func (m *mockClassRepo) GetAll(ctx context.Context) ([]domain.HiringClass, error) {
	var result []domain.HiringClass
	for _, class := range m.s.classes {
		result = append(result, *class)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].ClassDate < result[b].ClassDate })
	return result, nil
}

func (m *mockClassRepo) Update(ctx context.Context, class *domain.HiringClass) error {
	m.s.classes[class.ID] = class
	return nil
}

func (m *mockClassRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.s.classes[id]; !ok {
		return domain.ErrClassNotFound
	}
	delete(m.s.classes, id)
	for _, c := range m.s.candidates {
		if c.ClassID != nil && *c.ClassID == id {
			c.ClassID = nil
		}
	}
	return nil
}

func (m *mockClassRepo) ExistsByDate(ctx context.Context, classDate string, excludeID *int64) (bool, error) {
	for _, class := range m.s.classes {
		if class.ClassDate == classDate && (excludeID == nil || class.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockClassRepo) CountCandidates(ctx context.Context, classID int64) (int64, error) {
	var count int64
	for _, c := range m.s.candidates {
		if c.ClassID != nil && *c.ClassID == classID {
			count++
		}
	}
	return count, nil
}

func (m *mockClassRepo) Roster(ctx context.Context, future bool, today string) ([]domain.HiringClass, error) {
	var classes []domain.HiringClass
	for _, class := range m.s.classes {
		if future && class.ClassDate < today {
			continue
		}
		if !future && class.ClassDate >= today {
			continue
		}
		view := *class
		for _, id := range m.s.sortedCandidateIDs() {
			c := m.s.candidates[id]
			if c.ClassID != nil && *c.ClassID == class.ID {
				view.Candidates = append(view.Candidates, *m.s.candidateView(id))
			}
		}
		sort.Slice(view.Candidates, func(a, b int) bool {
			return view.Candidates[a].LastName < view.Candidates[b].LastName
		})
		classes = append(classes, view)
	}
	sort.Slice(classes, func(a, b int) bool {
		if future {
			return classes[a].ClassDate < classes[b].ClassDate
		}
		return classes[a].ClassDate > classes[b].ClassDate
	})
	return classes, nil
}

type mockCandidateRepo struct{ s *store }

func (m *mockCandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	c.ID = m.s.nextCandidate
	m.s.nextCandidate++
	var ids []int64
	for _, i := range c.Interviewers {
		ids = append(ids, i.ID)
	}
	stored := *c
	stored.Interviewers = nil
	stored.Job = nil
	stored.Class = nil
	m.s.candidates[c.ID] = &stored
	m.s.links[c.ID] = ids
	return nil
}

func (m *mockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	if _, ok := m.s.candidates[id]; !ok {
		return nil, domain.ErrCandidateNotFound
	}
	return m.s.candidateView(id), nil
}

func (m *mockCandidateRepo) GetAll(ctx context.Context, search string) ([]domain.Candidate, error) {
	var result []domain.Candidate
	for _, id := range m.s.sortedCandidateIDs() {
		c := m.s.candidateView(id)
		if search != "" {
			match := strings.Contains(c.FirstName, search) ||
				strings.Contains(c.LastName, search) ||
				strings.Contains(c.PhoneNumber, search) ||
				strings.Contains(c.COCNumber, search) ||
				strings.Contains(c.ReferredBy, search) ||
				strings.Contains(c.PNNumber, search) ||
				strings.Contains(c.EUID, search)
			if !match {
				continue
			}
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].LastName < result[b].LastName })
	return result, nil
}

func (m *mockCandidateRepo) Update(ctx context.Context, c *domain.Candidate) error {
	stored := *c
	stored.Interviewers = nil
	stored.Job = nil
	stored.Class = nil
	m.s.candidates[c.ID] = &stored
	return nil
}

func (m *mockCandidateRepo) ReplaceInterviewers(ctx context.Context, c *domain.Candidate, interviewers []domain.Interviewer) error {
	var ids []int64
	for _, i := range interviewers {
		ids = append(ids, i.ID)
	}
	m.s.links[c.ID] = ids
	return nil
}

func (m *mockCandidateRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.s.candidates[id]; !ok {
		return domain.ErrCandidateNotFound
	}
	delete(m.s.candidates, id)
	delete(m.s.links, id)
	return nil
}

func (m *mockCandidateRepo) MarkOrientationLetters(ctx context.Context, ids []int64) (int64, error) {
	var updated int64
	for _, id := range ids {
		if c, ok := m.s.candidates[id]; ok {
			c.OrientationLetterSent = true
			updated++
		}
	}
	return updated, nil
}

func (m *mockCandidateRepo) CountPending(ctx context.Context) (int64, error) {
	var count int64
	for _, c := range m.s.candidates {
		if c.Status == domain.StatusPending {
			count++
		}
	}
	return count, nil
}

func (m *mockCandidateRepo) CountInterviewsInMonth(ctx context.Context, monthPrefix string) (int64, error) {
	var count int64
	for _, c := range m.s.candidates {
		if c.Status != domain.StatusRejected && strings.HasPrefix(c.InterviewDate, monthPrefix) {
			count++
		}
	}
	return count, nil
}

func (m *mockCandidateRepo) ListWithClassBetween(ctx context.Context, start, end string) ([]domain.Candidate, error) {
	var result []domain.Candidate
	for _, id := range m.s.sortedCandidateIDs() {
		c := m.s.candidateView(id)
		if c.Class != nil && c.Class.ClassDate >= start && c.Class.ClassDate <= end {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCandidateRepo) Hotlist(ctx context.Context, today string) ([]domain.Candidate, error) {
	var result []domain.Candidate
	for _, id := range m.s.sortedCandidateIDs() {
		c := m.s.candidateView(id)
		if c.Status == domain.StatusPending && c.Class != nil && c.Class.ClassDate >= today {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(a, b int) bool {
		if result[a].Class.ClassDate != result[b].Class.ClassDate {
			return result[a].Class.ClassDate < result[b].Class.ClassDate
		}
		return result[a].LastName < result[b].LastName
	})
	return result, nil
}

func (m *mockCandidateRepo) InterviewedBetween(ctx context.Context, start, end string) ([]domain.Candidate, error) {
	var result []domain.Candidate
	for _, id := range m.s.sortedCandidateIDs() {
		c := m.s.candidateView(id)
		if c.InterviewDate >= start && c.InterviewDate <= end {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCandidateRepo) ByClassDate(ctx context.Context, classDate string) ([]domain.Candidate, error) {
	var result []domain.Candidate
	for _, id := range m.s.sortedCandidateIDs() {
		c := m.s.candidateView(id)
		if c.Class != nil && c.Class.ClassDate == classDate {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockCandidateRepo) SearchByReferrer(ctx context.Context, referrer string) ([]domain.Candidate, error) {
	var result []domain.Candidate
	for _, id := range m.s.sortedCandidateIDs() {
		c := m.s.candidateView(id)
		if strings.Contains(strings.ToLower(c.ReferredBy), strings.ToLower(referrer)) {
			result = append(result, *c)
		}
	}
	return result, nil
}

type mockMetricsRepo struct{ s *store }

func (m *mockMetricsRepo) GetByDate(ctx context.Context, metricDate string) (*domain.DailyMetric, error) {
	if metric, ok := m.s.metrics[metricDate]; ok {
		view := *metric
		return &view, nil
	}
	return nil, domain.ErrMetricNotFound
}

func (m *mockMetricsRepo) Save(ctx context.Context, metric *domain.DailyMetric) error {
	if existing, ok := m.s.metrics[metric.MetricDate]; ok {
		metric.ID = existing.ID
	} else {
		metric.ID = m.s.nextMetric
		m.s.nextMetric++
	}
	for i := range metric.Breakdowns {
		metric.Breakdowns[i].MetricID = metric.ID
	}
	stored := *metric
	m.s.metrics[metric.MetricDate] = &stored
	return nil
}

func (m *mockMetricsRepo) SumRange(ctx context.Context, start, end string) (*repository.MetricTotals, error) {
	totals := &repository.MetricTotals{}
	for date, metric := range m.s.metrics {
		if date >= start && date <= end {
			totals.AppsReviewed += metric.AppsReviewed
			totals.InterviewsScheduled += metric.InterviewsScheduled
			totals.HiresConfirmed += metric.HiresConfirmed
		}
	}
	return totals, nil
}

func (m *mockMetricsRepo) BreakdownSumRange(ctx context.Context, start, end string) ([]repository.BreakdownTotal, error) {
	sums := make(map[domain.BreakdownKey]int)
	for date, metric := range m.s.metrics {
		if date < start || date > end {
			continue
		}
		for _, b := range metric.Breakdowns {
			sums[domain.BreakdownKey{Category: b.Category, Reason: b.Reason}] += b.Count
		}
	}
	var totals []repository.BreakdownTotal
	for key, total := range sums {
		totals = append(totals, repository.BreakdownTotal{Category: key.Category, Reason: key.Reason, Total: total})
	}
	return totals, nil
}

type mockReportRepo struct{ s *store }

func (m *mockReportRepo) ReferralLeaderboard(ctx context.Context) ([]repository.ReferralLeader, error) {
	counts := make(map[string]int64)
	for _, c := range m.s.candidates {
		if c.ReferredBy != "" {
			counts[c.ReferredBy]++
		}
	}
	var leaders []repository.ReferralLeader
	for referrer, total := range counts {
		leaders = append(leaders, repository.ReferralLeader{ReferredBy: referrer, TotalReferrals: total})
	}
	sort.Slice(leaders, func(a, b int) bool { return leaders[a].TotalReferrals > leaders[b].TotalReferrals })
	return leaders, nil
}

func (m *mockReportRepo) HiresByDepartment(ctx context.Context, start, end string) ([]repository.DepartmentHires, error) {
	counts := make(map[string]int64)
	for _, c := range m.s.candidates {
		if c.Status != domain.StatusHired || c.JobID == nil {
			continue
		}
		if start != "" && c.InterviewDate < start {
			continue
		}
		if end != "" && c.InterviewDate > end {
			continue
		}
		if job, ok := m.s.jobs[*c.JobID]; ok {
			counts[job.Department]++
		}
	}
	var hires []repository.DepartmentHires
	for department, total := range counts {
		hires = append(hires, repository.DepartmentHires{Department: department, Hires: total})
	}
	sort.Slice(hires, func(a, b int) bool { return hires[a].Hires > hires[b].Hires })
	return hires, nil
}

type testServer struct {
	server *httptest.Server
	store  *store
}

func setupTestServer(t *testing.T) *testServer {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s := newStore()
	jobRepo := &mockJobRepo{s}
	interviewerRepo := &mockInterviewerRepo{s}
	classRepo := &mockClassRepo{s}
	candidateRepo := &mockCandidateRepo{s}
	metricsRepo := &mockMetricsRepo{s}
	reportRepo := &mockReportRepo{s}

	jobService := service.NewJobService(jobRepo)
	interviewerService := service.NewInterviewerService(interviewerRepo)
	classService := service.NewClassService(classRepo)
	candidateService := service.NewCandidateService(candidateRepo, jobRepo, classRepo, interviewerRepo)
	metricsService := service.NewMetricsService(metricsRepo)
	reportService := service.NewReportService(reportRepo, candidateRepo, metricsService, report.NewSnapshotWriter(t.TempDir()))

	router := handler.NewRouter(
		handler.NewJobHandler(jobService, logger),
		handler.NewInterviewerHandler(interviewerService, logger),
		handler.NewClassHandler(classService, logger),
		handler.NewCandidateHandler(candidateService, logger),
		handler.NewMetricsHandler(metricsService, importer.New(metricsService), logger),
		handler.NewReportHandler(reportService, logger),
		logger,
	)

	return &testServer{
		server: httptest.NewServer(router.Setup()),
		store:  s,
	}
}

func (ts *testServer) Close() {
	ts.server.Close()
}

func postJSON(url string, body map[string]any) (*http.Response, error) {
	data, _ := json.Marshal(body)
	return http.Post(url, "application/json", bytes.NewBuffer(data))
}

func putJSON(url string, body map[string]any) (*http.Response, error) {
	data, _ := json.Marshal(body)
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return http.DefaultClient.Do(req)
}

func deleteRequest(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return nil, err
	}
	return http.DefaultClient.Do(req)
}

func mustPost(t *testing.T, url string, body map[string]any) {
	t.Helper()
	resp, err := postJSON(url, body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		t.Fatalf("POST %s failed with status %d", url, resp.StatusCode)
	}
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return result
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func TestCreateJob_Success(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := postJSON(ts.server.URL+"/jobs/", map[string]any{
		"department":      "Warehouse",
		"shift":           "Night",
		"pay_structure":   "Hourly",
		"employment_type": "Full-Time",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, resp.StatusCode)
	}

	result := decode[dto.JobResponse](t, resp)
	if result.Department != "Warehouse" {
		t.Errorf("expected department 'Warehouse', got '%s'", result.Department)
	}
	if result.ID == 0 {
		t.Error("expected non-zero id")
	}
}

func TestCreateJob_InvalidPayStructure(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := postJSON(ts.server.URL+"/jobs/", map[string]any{
		"department":      "Warehouse",
		"pay_structure":   "Weekly",
		"employment_type": "Full-Time",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestGetJobs_FilterByDepartment(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/jobs/", map[string]any{"department": "Warehouse", "pay_structure": "Hourly", "employment_type": "Full-Time"})
	mustPost(t, ts.server.URL+"/jobs/", map[string]any{"department": "Office", "pay_structure": "Salary", "employment_type": "Full-Time"})

	resp, err := http.Get(ts.server.URL + "/jobs/?department=Office")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	jobs := decode[[]dto.JobResponse](t, resp)
	if len(jobs) != 1 || jobs[0].Department != "Office" {
		t.Errorf("expected one Office job, got %+v", jobs)
	}
}

func TestGetJobs_OrderedByShift(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/jobs/", map[string]any{"department": "Warehouse", "shift": "Night", "pay_structure": "Hourly", "employment_type": "Full-Time"})
	mustPost(t, ts.server.URL+"/jobs/", map[string]any{"department": "Warehouse", "shift": "Day", "pay_structure": "Hourly", "employment_type": "Full-Time"})

	resp, err := http.Get(ts.server.URL + "/jobs/?department=Warehouse")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	jobs := decode[[]dto.JobResponse](t, resp)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %+v", jobs)
	}
	if *jobs[0].Shift != "Day" || *jobs[1].Shift != "Night" {
		t.Errorf("expected jobs ordered by shift, got %s then %s", *jobs[0].Shift, *jobs[1].Shift)
	}
}

func TestGetJobDepartments(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/jobs/", map[string]any{"department": "Warehouse", "pay_structure": "Hourly", "employment_type": "Full-Time"})
	mustPost(t, ts.server.URL+"/jobs/", map[string]any{"department": "Warehouse", "pay_structure": "Hourly", "employment_type": "Part-Time"})
	mustPost(t, ts.server.URL+"/jobs/", map[string]any{"department": "Office", "pay_structure": "Salary", "employment_type": "Full-Time"})

	resp, err := http.Get(ts.server.URL + "/jobs/departments")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	departments := decode[[]string](t, resp)
	want := []string{"Office", "Warehouse"}
	if len(departments) != 2 || departments[0] != want[0] || departments[1] != want[1] {
		t.Errorf("expected %v, got %v", want, departments)
	}
}

func TestDeleteJob_UnlinksCandidates(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/jobs/", map[string]any{"department": "Warehouse", "pay_structure": "Hourly", "employment_type": "Full-Time"})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "Ana", "last_name": "Lopez", "job_id": 1})

	resp, err := deleteRequest(ts.server.URL + "/jobs/1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, resp.StatusCode)
	}

	getResp, err := http.Get(ts.server.URL + "/candidates/1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer getResp.Body.Close()

	candidate := decode[dto.CandidateResponse](t, getResp)
	if candidate.JobID != nil {
		t.Errorf("expected job link cleared, got %v", *candidate.JobID)
	}
}

func TestCreateInterviewer_Duplicate(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/interviewers/", map[string]any{"name": "Sam Reyes"})

	resp, err := postJSON(ts.server.URL+"/interviewers/", map[string]any{"name": "Sam Reyes"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected %d, got %d", http.StatusConflict, resp.StatusCode)
	}
}

func TestUpdateInterviewer_RenameToExisting(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/interviewers/", map[string]any{"name": "Sam Reyes"})
	mustPost(t, ts.server.URL+"/interviewers/", map[string]any{"name": "Kim Tran"})

	resp, err := putJSON(ts.server.URL+"/interviewers/2", map[string]any{"name": "Sam Reyes"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected %d, got %d", http.StatusConflict, resp.StatusCode)
	}
}

func TestCreateClass_DuplicateDate(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/classes/", map[string]any{"class_date": "2026-04-06"})

	resp, err := postJSON(ts.server.URL+"/classes/", map[string]any{"class_date": "2026-04-06"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected %d, got %d", http.StatusConflict, resp.StatusCode)
	}
}

func TestCreateClass_BadDate(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := postJSON(ts.server.URL+"/classes/", map[string]any{"class_date": "04/06/2026"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestCreateCandidate_DefaultsToPending(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/interviewers/", map[string]any{"name": "Sam Reyes"})

	resp, err := postJSON(ts.server.URL+"/candidates/", map[string]any{
		"first_name":      "Maria",
		"last_name":       "Gomez",
		"interviewer_ids": []int64{1},
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, resp.StatusCode)
	}

	result := decode[dto.CandidateResponse](t, resp)
	if result.Status != "Pending" {
		t.Errorf("expected status 'Pending', got '%s'", result.Status)
	}
	if len(result.Interviewers) != 1 || result.Interviewers[0].Name != "Sam Reyes" {
		t.Errorf("expected linked interviewer, got %+v", result.Interviewers)
	}
	if result.Cleared {
		t.Error("new candidate must not be cleared")
	}
	if len(result.MissingItems) != 4 {
		t.Errorf("expected 4 missing items, got %v", result.MissingItems)
	}
}

func TestCreateCandidate_UnknownJob(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := postJSON(ts.server.URL+"/candidates/", map[string]any{
		"first_name": "Maria",
		"last_name":  "Gomez",
		"job_id":     99,
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestCreateCandidate_UnknownInterviewer(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := postJSON(ts.server.URL+"/candidates/", map[string]any{
		"first_name":      "Maria",
		"last_name":       "Gomez",
		"interviewer_ids": []int64{7},
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestSearchCandidates(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "Maria", "last_name": "Gomez", "referred_by": "Pat Cole"})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "John", "last_name": "Smith"})

	resp, err := http.Get(ts.server.URL + "/candidates/?search=Pat")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	candidates := decode[[]dto.CandidateResponse](t, resp)
	if len(candidates) != 1 || candidates[0].LastName != "Gomez" {
		t.Errorf("expected one match by referrer, got %+v", candidates)
	}
}

func TestSearchCandidates_ByBadgeNumbers(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "Maria", "last_name": "Gomez", "pn_number": "PN-4401"})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "John", "last_name": "Smith", "euid": "E19223"})

	resp, err := http.Get(ts.server.URL + "/candidates/?search=4401")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	candidates := decode[[]dto.CandidateResponse](t, resp)
	if len(candidates) != 1 || candidates[0].LastName != "Gomez" {
		t.Errorf("expected one match by pn_number, got %+v", candidates)
	}

	resp2, err := http.Get(ts.server.URL + "/candidates/?search=E19223")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp2.Body.Close()

	candidates = decode[[]dto.CandidateResponse](t, resp2)
	if len(candidates) != 1 || candidates[0].LastName != "Smith" {
		t.Errorf("expected one match by euid, got %+v", candidates)
	}
}

func TestUpdateCandidate_ClearanceProgression(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "Maria", "last_name": "Gomez"})

	resp, err := putJSON(ts.server.URL+"/candidates/1", map[string]any{
		"bg_ds_clear":        true,
		"pre_board_complete": true,
		"myinfo_ready":       true,
		"pn_number":          "PN-5",
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	result := decode[dto.CandidateResponse](t, resp)
	if result.Cleared {
		t.Error("candidate without EUID must not be cleared")
	}
	if len(result.MissingItems) != 1 || result.MissingItems[0] != "PN/EUID" {
		t.Errorf("expected missing PN/EUID only, got %v", result.MissingItems)
	}

	resp2, err := putJSON(ts.server.URL+"/candidates/1", map[string]any{"euid": "E77"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp2.Body.Close()

	result = decode[dto.CandidateResponse](t, resp2)
	if !result.Cleared {
		t.Errorf("expected cleared candidate, missing %v", result.MissingItems)
	}
}

func TestUpdateCandidate_UnlinkClass(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/classes/", map[string]any{"class_date": "2026-04-06"})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "Maria", "last_name": "Gomez", "class_id": 1})

	resp, err := putJSON(ts.server.URL+"/candidates/1", map[string]any{"class_id": 0})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	result := decode[dto.CandidateResponse](t, resp)
	if result.ClassID != nil {
		t.Errorf("expected class link cleared, got %v", *result.ClassID)
	}
}

func TestDeleteCandidate(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "Maria", "last_name": "Gomez"})

	resp, err := deleteRequest(ts.server.URL + "/candidates/1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, resp.StatusCode)
	}

	getResp, err := http.Get(ts.server.URL + "/candidates/1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, getResp.StatusCode)
	}
}

func TestOrientationLetters_ClearedNextWeekOnly(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	nextWeekStart, _ := domain.NextWeekRange(time.Now())
	mustPost(t, ts.server.URL+"/classes/", map[string]any{"class_date": nextWeekStart})

	mustPost(t, ts.server.URL+"/candidates/", map[string]any{
		"first_name": "Maria", "last_name": "Gomez", "class_id": 1,
		"bg_ds_clear": true, "pre_board_complete": true, "myinfo_ready": true,
		"pn_number": "PN-1", "euid": "E1",
	})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{
		"first_name": "John", "last_name": "Smith", "class_id": 1,
	})

	resp, err := postJSON(ts.server.URL+"/candidates/orientation-letters", map[string]any{})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	result := decode[dto.OrientationLettersResponse](t, resp)
	if result.Updated != 1 {
		t.Errorf("expected 1 updated, got %d", result.Updated)
	}

	getResp, err := http.Get(ts.server.URL + "/candidates/1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer getResp.Body.Close()
	cleared := decode[dto.CandidateResponse](t, getResp)
	if !cleared.OrientationLetterSent {
		t.Error("expected orientation letter flag set for the cleared candidate")
	}

	getResp2, err := http.Get(ts.server.URL + "/candidates/2")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer getResp2.Body.Close()
	pending := decode[dto.CandidateResponse](t, getResp2)
	if pending.OrientationLetterSent {
		t.Error("not-cleared candidate must not be marked")
	}
}

func TestRoster_FutureAndPast(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	today := time.Now()
	futureDate := today.AddDate(0, 0, 7).Format("2006-01-02")
	pastDate := today.AddDate(0, 0, -7).Format("2006-01-02")

	mustPost(t, ts.server.URL+"/classes/", map[string]any{"class_date": futureDate})
	mustPost(t, ts.server.URL+"/classes/", map[string]any{"class_date": pastDate})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "Maria", "last_name": "Gomez", "class_id": 1})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{
		"first_name": "John", "last_name": "Smith", "class_id": 2,
		"candidate_status": "Rejected", "rejection_reason": "NCNS",
	})

	resp, err := http.Get(ts.server.URL + "/candidates/roster?view=future")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	roster := decode[dto.RosterResponse](t, resp)
	if len(roster.Classes) != 1 || roster.Classes[0].ClassDate != futureDate {
		t.Fatalf("expected only the future class, got %+v", roster.Classes)
	}
	if len(roster.Classes[0].Candidates) != 1 || roster.Classes[0].Candidates[0].Cleared {
		t.Errorf("expected one not-cleared candidate, got %+v", roster.Classes[0].Candidates)
	}

	resp2, err := http.Get(ts.server.URL + "/candidates/roster?view=past")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp2.Body.Close()

	past := decode[dto.RosterResponse](t, resp2)
	if len(past.Classes) != 1 || past.Classes[0].ClassDate != pastDate {
		t.Fatalf("expected only the past class, got %+v", past.Classes)
	}
	if got := past.Classes[0].Candidates[0].FinalStatus; got != "NCNS" {
		t.Errorf("expected final status 'NCNS', got '%s'", got)
	}
}

func TestSaveMetrics_Overwrite(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/metrics/", map[string]any{
		"metric_date":   "2026-03-02",
		"apps_reviewed": 10,
		"breakdowns": []map[string]any{
			{"category": "pre_interview_rejection", "reason": "Background", "count": 2},
		},
	})
	mustPost(t, ts.server.URL+"/metrics/", map[string]any{
		"metric_date":   "2026-03-02",
		"apps_reviewed": 4,
		"breakdowns": []map[string]any{
			{"category": "post_interview_withdrawal", "reason": "Pay", "count": 1},
		},
	})

	resp, err := http.Get(ts.server.URL + "/metrics/?date=2026-03-02")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	result := decode[dto.MetricsResponse](t, resp)
	if result.AppsReviewed != 4 {
		t.Errorf("expected apps_reviewed overwritten to 4, got %d", result.AppsReviewed)
	}
	if len(result.Breakdowns) != 1 || result.Breakdowns[0].Reason != "Pay" {
		t.Errorf("expected breakdowns fully replaced, got %+v", result.Breakdowns)
	}
}

func TestSaveMetrics_ZeroBreakdownsOmitted(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/metrics/", map[string]any{
		"metric_date": "2026-03-02",
		"breakdowns": []map[string]any{
			{"category": "pre_interview_rejection", "reason": "Background", "count": 0},
			{"category": "pre_interview_withdrawal", "reason": "Schedule", "count": 3},
		},
	})

	resp, err := http.Get(ts.server.URL + "/metrics/?date=2026-03-02")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	result := decode[dto.MetricsResponse](t, resp)
	if len(result.Breakdowns) != 1 || result.Breakdowns[0].Count != 3 {
		t.Errorf("expected only the non-zero row stored, got %+v", result.Breakdowns)
	}
}

func TestSaveMetrics_UnknownBreakdownPair(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := postJSON(ts.server.URL+"/metrics/", map[string]any{
		"metric_date": "2026-03-02",
		"breakdowns": []map[string]any{
			{"category": "pre_interview_rejection", "reason": "NCNS", "count": 1},
		},
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestSaveMetrics_NegativeCount(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := postJSON(ts.server.URL+"/metrics/", map[string]any{
		"metric_date":   "2026-03-02",
		"apps_reviewed": -1,
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestGetMetrics_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/metrics/?date=2026-03-02")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestMetricsSummary_Rollups(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/metrics/", map[string]any{
		"metric_date": "2026-03-02", "apps_reviewed": 10, "interviews_scheduled": 5, "hires_confirmed": 2,
		"breakdowns": []map[string]any{
			{"category": "pre_interview_withdrawal", "reason": "Pay", "count": 1},
			{"category": "post_interview_rejection", "reason": "NCNS", "count": 2},
			{"category": "post_interview_rejection", "reason": "Background", "count": 3},
		},
	})
	mustPost(t, ts.server.URL+"/metrics/", map[string]any{
		"metric_date": "2026-03-04", "apps_reviewed": 7,
		"breakdowns": []map[string]any{
			{"category": "post_interview_withdrawal", "reason": "Other", "count": 4},
		},
	})

	resp, err := http.Get(ts.server.URL + "/metrics/summary?start=2026-03-01&end=2026-03-07")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	summary := decode[dto.WeeklySummaryResponse](t, resp)
	if summary.AppsReviewed != 17 {
		t.Errorf("expected 17 apps reviewed, got %d", summary.AppsReviewed)
	}
	if summary.Withdrew != 5 {
		t.Errorf("expected withdrew 5, got %d", summary.Withdrew)
	}
	if summary.NCNS != 2 {
		t.Errorf("expected ncns 2, got %d", summary.NCNS)
	}
	if summary.Decline != 3 {
		t.Errorf("expected decline 3, got %d", summary.Decline)
	}

	want := []dto.BreakdownEntry{
		{Category: "post_interview_rejection", Reason: "Background", Count: 3},
		{Category: "post_interview_rejection", Reason: "NCNS", Count: 2},
		{Category: "pre_interview_withdrawal", Reason: "Pay", Count: 1},
		{Category: "post_interview_withdrawal", Reason: "Other", Count: 4},
	}
	if len(summary.Breakdowns) != len(want) {
		t.Fatalf("expected %d breakdown rows, got %+v", len(want), summary.Breakdowns)
	}
	for i, entry := range want {
		if summary.Breakdowns[i] != entry {
			t.Errorf("breakdown %d: expected %+v, got %+v", i, entry, summary.Breakdowns[i])
		}
	}
}

func TestReferralLeaderboard(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "Maria", "last_name": "Gomez", "referred_by": "Pat Cole"})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "John", "last_name": "Smith", "referred_by": "Pat Cole"})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "Lee", "last_name": "Wong", "referred_by": "Ada May"})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "Sue", "last_name": "Ellis"})

	resp, err := http.Get(ts.server.URL + "/reports/leaderboard")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	rows := decode[[]dto.LeaderboardRow](t, resp)
	if len(rows) != 2 {
		t.Fatalf("expected 2 referrers, got %+v", rows)
	}
	if rows[0].Referrer != "Pat Cole" || rows[0].TotalReferrals != 2 {
		t.Errorf("expected Pat Cole with 2 referrals on top, got %+v", rows[0])
	}
}

func TestHiresByDepartment(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/jobs/", map[string]any{"department": "Warehouse", "pay_structure": "Hourly", "employment_type": "Full-Time"})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{
		"first_name": "Maria", "last_name": "Gomez", "job_id": 1,
		"candidate_status": "Hired", "interview_date": "2026-02-10",
	})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{
		"first_name": "John", "last_name": "Smith", "job_id": 1,
	})

	resp, err := http.Get(ts.server.URL + "/reports/hires-by-department")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	rows := decode[[]dto.DepartmentHiresRow](t, resp)
	if len(rows) != 1 || rows[0].Hires != 1 {
		t.Fatalf("expected one Warehouse hire, got %+v", rows)
	}

	// фильтр по диапазону дат интервью отсекает найм
	resp2, err := http.Get(ts.server.URL + "/reports/hires-by-department?start=2026-03-01")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp2.Body.Close()

	filtered := decode[[]dto.DepartmentHiresRow](t, resp2)
	if len(filtered) != 0 {
		t.Errorf("expected no hires in range, got %+v", filtered)
	}
}

func TestSearchByReferrer_RequiresQuery(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/reports/referrer-search")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestReferralsByClassWeek(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	mustPost(t, ts.server.URL+"/classes/", map[string]any{"class_date": "2026-04-06"})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "Maria", "last_name": "Gomez", "class_id": 1, "referred_by": "Pat Cole"})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{"first_name": "John", "last_name": "Smith", "class_id": 1})

	resp, err := http.Get(ts.server.URL + "/reports/referrals?class_date=2026-04-06")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	result := decode[dto.ReferralsResponse](t, resp)
	if len(result.WithReferrals) != 1 || result.WithReferrals[0].ReferredBy != "Pat Cole" {
		t.Errorf("expected one referred candidate, got %+v", result.WithReferrals)
	}
	if len(result.WithoutReferrals) != 1 || result.WithoutReferrals[0].LastName != "Smith" {
		t.Errorf("expected one non-referred candidate, got %+v", result.WithoutReferrals)
	}
}

func TestWeeklySnapshot(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	start, _ := domain.LastWeekRange(time.Now())
	mustPost(t, ts.server.URL+"/metrics/", map[string]any{
		"metric_date": start, "apps_reviewed": 20, "interviews_scheduled": 8, "hires_confirmed": 3,
		"breakdowns": []map[string]any{
			{"category": "pre_interview_withdrawal", "reason": "Schedule", "count": 2},
			{"category": "post_interview_rejection", "reason": "NCNS", "count": 1},
		},
	})

	resp, err := http.Get(ts.server.URL + "/reports/weekly-snapshot")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	snapshot := decode[dto.SnapshotResponse](t, resp)
	if len(snapshot.Rows) != 6 {
		t.Fatalf("expected 6 rows, got %+v", snapshot.Rows)
	}
	want := map[string]int{"Apps Received": 20, "Interviews": 8, "Offers": 3, "Withdrew": 2, "Decline": 0, "NCNS": 1}
	for _, row := range snapshot.Rows {
		if want[row.Label] != row.Count {
			t.Errorf("row %s: expected %d, got %d", row.Label, want[row.Label], row.Count)
		}
	}
	if snapshot.FilePath != "" {
		t.Errorf("expected no file export without format=html, got %s", snapshot.FilePath)
	}
}

func TestWeeklySnapshot_HTMLExport(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.server.URL + "/reports/weekly-snapshot?format=html")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	snapshot := decode[dto.SnapshotResponse](t, resp)
	if snapshot.FilePath == "" {
		t.Fatal("expected exported file path")
	}

	content, err := os.ReadFile(snapshot.FilePath)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}
	if !strings.Contains(string(content), "Weekly Activity Snapshot") {
		t.Error("exported file is missing the report title")
	}
}

func TestDashboard(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	today := time.Now()
	thisMonth := today.Format("2006-01-") + "15"
	nextWeekStart, _ := domain.NextWeekRange(today)

	mustPost(t, ts.server.URL+"/classes/", map[string]any{"class_date": nextWeekStart})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{
		"first_name": "Maria", "last_name": "Gomez", "class_id": 1,
		"interview_date": thisMonth,
		"bg_ds_clear":    true, "pre_board_complete": true, "myinfo_ready": true,
		"pn_number": "PN-1", "euid": "E1",
	})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{
		"first_name": "John", "last_name": "Smith", "class_id": 1,
	})
	mustPost(t, ts.server.URL+"/candidates/", map[string]any{
		"first_name": "Sue", "last_name": "Ellis",
		"interview_date": thisMonth, "candidate_status": "Rejected",
	})

	resp, err := http.Get(ts.server.URL + "/dashboard")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	dashboard := decode[dto.DashboardResponse](t, resp)
	if dashboard.InterviewsThisMonth != 1 {
		t.Errorf("expected 1 interview this month (rejected excluded), got %d", dashboard.InterviewsThisMonth)
	}
	if dashboard.PendingCandidates != 2 {
		t.Errorf("expected 2 pending candidates, got %d", dashboard.PendingCandidates)
	}
	if dashboard.ClearedForNextWeek != 1 {
		t.Errorf("expected 1 cleared for next week, got %d", dashboard.ClearedForNextWeek)
	}
	if len(dashboard.Hotlist) != 2 {
		t.Errorf("expected 2 hotlist candidates, got %d", len(dashboard.Hotlist))
	}
}

func TestImportMetricsCSV(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.Close()

	csvBody := "\ufeffDate,Apps Reviewed,Interviews Scheduled,Hires Confirmed,Rejection_Post_NCNS,Withdrawal_Pre_Pay\n" +
		"2026-02-02,12,6,2,1,0\n" +
		"2026-02-03,8,3,1,0,2\n" +
		"bad-date,1,1,1,0,0\n"

	resp, err := http.Post(ts.server.URL+"/metrics/import", "text/csv", strings.NewReader(csvBody))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	result := decode[dto.ImportResponse](t, resp)
	if result.ImportedDays != 2 {
		t.Errorf("expected 2 imported days, got %d", result.ImportedDays)
	}
	if result.SkippedRows != 1 {
		t.Errorf("expected 1 skipped row, got %d", result.SkippedRows)
	}

	getResp, err := http.Get(ts.server.URL + "/metrics/?date=2026-02-02")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer getResp.Body.Close()

	metrics := decode[dto.MetricsResponse](t, getResp)
	if metrics.AppsReviewed != 12 {
		t.Errorf("expected 12 apps reviewed, got %d", metrics.AppsReviewed)
	}
	if len(metrics.Breakdowns) != 1 || metrics.Breakdowns[0].Reason != "NCNS" {
		t.Errorf("expected single NCNS breakdown, got %+v", metrics.Breakdowns)
	}
}
