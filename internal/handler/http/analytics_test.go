package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsService struct {
	lastYearParam   string
	lastMonthsParam string
	err             error
}

func (f *fakeAnalyticsService) record(yearParam, monthsParam string) error {
	f.lastYearParam = yearParam
	f.lastMonthsParam = monthsParam
	return f.err
}

func (f *fakeAnalyticsService) ListSessions(ctx context.Context, yearParam, monthsParam string) ([]session.SessionResponse, error) {
	return nil, f.record(yearParam, monthsParam)
}

func (f *fakeAnalyticsService) TotalEmployees(ctx context.Context, yearParam, monthsParam string) (session.TotalEmployeesResponse, error) {
	return session.TotalEmployeesResponse{TotalEmployees: 5}, f.record(yearParam, monthsParam)
}

func (f *fakeAnalyticsService) DashboardStats(ctx context.Context, yearParam, monthsParam string) (session.DashboardStatsResponse, error) {
	return session.DashboardStatsResponse{TotalEmployees: 5, AvgLoginTime: "10:15", AvgLogoutTime: "19:05", AvgWorkHours: 8.8}, f.record(yearParam, monthsParam)
}

func (f *fakeAnalyticsService) EmployeeMonthlyHours(ctx context.Context, yearParam, monthsParam string) ([]session.EmployeeMonthlyHoursRow, error) {
	return nil, f.record(yearParam, monthsParam)
}

func (f *fakeAnalyticsService) MonthlyOvertime(ctx context.Context, yearParam, monthsParam string) ([]session.MonthlyOvertimeRow, error) {
	return nil, f.record(yearParam, monthsParam)
}

func (f *fakeAnalyticsService) AvgBreakPerMonth(ctx context.Context, yearParam, monthsParam string) ([]session.AvgBreakRow, error) {
	return nil, f.record(yearParam, monthsParam)
}

func (f *fakeAnalyticsService) TotalBreakPerMonth(ctx context.Context, yearParam, monthsParam string) ([]session.TotalBreakRow, error) {
	return nil, f.record(yearParam, monthsParam)
}

func (f *fakeAnalyticsService) TopWorkingHours(ctx context.Context, yearParam, monthsParam string) ([]session.WorkingHoursRow, error) {
	return nil, f.record(yearParam, monthsParam)
}

func (f *fakeAnalyticsService) BottomWorkingHours(ctx context.Context, yearParam, monthsParam string) ([]session.WorkingHoursRow, error) {
	return nil, f.record(yearParam, monthsParam)
}

func (f *fakeAnalyticsService) EmployeeSummary(ctx context.Context, yearParam, monthsParam string) ([]session.EmployeeSummaryRow, error) {
	return nil, f.record(yearParam, monthsParam)
}

func (f *fakeAnalyticsService) AttendanceYears(ctx context.Context) ([]int, error) {
	return []int{2024, 2025}, f.err
}

type fakeImportService struct {
	lastFilename string
	result       session.ImportResult
	err          error
}

func (f *fakeImportService) Import(ctx context.Context, filename string, file io.Reader) (session.ImportResult, error) {
	f.lastFilename = filename
	if f.err != nil {
		return session.ImportResult{}, f.err
	}
	return f.result, nil
}

func newTestRouter(analytics *fakeAnalyticsService, imports *fakeImportService) http.Handler {
	return NewRouter(
		NewAnalyticsHandler(analytics),
		NewImportHandler(imports),
		"test",
		"http://localhost:3000",
	)
}

func doGet(t *testing.T, handler http.Handler, target string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec, body
}

// Response mirrors the wire envelope for decoding in tests.
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestRouter_Heartbeat(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(&fakeAnalyticsService{}, &fakeImportService{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Attendance API is running")
}

func TestAnalyticsHandler_PassesFilterParams(t *testing.T) {
	t.Parallel()

	svc := &fakeAnalyticsService{}
	handler := newTestRouter(svc, &fakeImportService{})

	rec, body := doGet(t, handler, "/api/v1/total-employees?year=2025&months=Jan,Feb")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "2025", svc.lastYearParam)
	assert.Equal(t, "Jan,Feb", svc.lastMonthsParam)

	var data session.TotalEmployeesResponse
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, 5, data.TotalEmployees)
}

func TestAnalyticsHandler_DashboardStats(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(&fakeAnalyticsService{}, &fakeImportService{})

	rec, body := doGet(t, handler, "/api/v1/dashboard-stats")
	assert.Equal(t, http.StatusOK, rec.Code)

	var data session.DashboardStatsResponse
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, "10:15", data.AvgLoginTime)
	assert.InDelta(t, 8.8, data.AvgWorkHours, 1e-9)
}

func TestAnalyticsHandler_StoreFailureIs500(t *testing.T) {
	t.Parallel()

	svc := &fakeAnalyticsService{err: errors.New("connection refused")}
	handler := newTestRouter(svc, &fakeImportService{})

	rec, body := doGet(t, handler, "/api/v1/employee-summary")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Message, "connection refused")
}

func multipartUpload(t *testing.T, fieldName, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestImportHandler_Success(t *testing.T) {
	t.Parallel()

	imports := &fakeImportService{result: session.ImportResult{Count: 12}}
	handler := newTestRouter(&fakeAnalyticsService{}, imports)

	buf, contentType := multipartUpload(t, "file", "sessions.xlsx", []byte("payload"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/user-sessions/import", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sessions.xlsx", imports.lastFilename)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Sessions imported successfully", body.Message)

	var data session.ImportResult
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, 12, data.Count)
}

func TestImportHandler_MissingFileIs400(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(&fakeAnalyticsService{}, &fakeImportService{})

	// multipart body with the wrong field name
	buf, contentType := multipartUpload(t, "not-the-file", "sessions.xlsx", []byte("payload"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/user-sessions/import", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
}

func TestImportHandler_BadSheetIs400(t *testing.T) {
	t.Parallel()

	imports := &fakeImportService{err: session.ErrMissingColumns}
	handler := newTestRouter(&fakeAnalyticsService{}, imports)

	buf, contentType := multipartUpload(t, "file", "sessions.xlsx", []byte("payload"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/user-sessions/import", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
