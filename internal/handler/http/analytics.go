package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-analytics-go/internal/domain/session"
	"github.com/cmlabs-hris/attendance-analytics-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	ListSessions(w http.ResponseWriter, r *http.Request)
	TotalEmployees(w http.ResponseWriter, r *http.Request)
	DashboardStats(w http.ResponseWriter, r *http.Request)
	EmployeeMonthlyHours(w http.ResponseWriter, r *http.Request)
	MonthlyOvertime(w http.ResponseWriter, r *http.Request)
	AvgBreakPerMonth(w http.ResponseWriter, r *http.Request)
	TotalBreakPerMonth(w http.ResponseWriter, r *http.Request)
	TopWorkingHours(w http.ResponseWriter, r *http.Request)
	BottomWorkingHours(w http.ResponseWriter, r *http.Request)
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
	AttendanceYears(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService session.AnalyticsService
}

func NewAnalyticsHandler(analyticsService session.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// filterParams pulls the optional year/months query values. Validation
// happens downstream: bad values mean "no filter", never a rejection.
func filterParams(r *http.Request) (yearParam, monthsParam string) {
	q := r.URL.Query()
	return q.Get("year"), q.Get("months")
}

// ListSessions implements AnalyticsHandler.
func (h *analyticsHandlerImpl) ListSessions(w http.ResponseWriter, r *http.Request) {
	yearParam, monthsParam := filterParams(r)
	result, err := h.analyticsService.ListSessions(r.Context(), yearParam, monthsParam)
	if err != nil {
		slog.Error("Failed to list sessions", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// TotalEmployees implements AnalyticsHandler.
func (h *analyticsHandlerImpl) TotalEmployees(w http.ResponseWriter, r *http.Request) {
	yearParam, monthsParam := filterParams(r)
	result, err := h.analyticsService.TotalEmployees(r.Context(), yearParam, monthsParam)
	if err != nil {
		slog.Error("Failed to count employees", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// DashboardStats implements AnalyticsHandler.
func (h *analyticsHandlerImpl) DashboardStats(w http.ResponseWriter, r *http.Request) {
	yearParam, monthsParam := filterParams(r)
	result, err := h.analyticsService.DashboardStats(r.Context(), yearParam, monthsParam)
	if err != nil {
		slog.Error("Failed to compute dashboard stats", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// EmployeeMonthlyHours implements AnalyticsHandler.
func (h *analyticsHandlerImpl) EmployeeMonthlyHours(w http.ResponseWriter, r *http.Request) {
	yearParam, monthsParam := filterParams(r)
	result, err := h.analyticsService.EmployeeMonthlyHours(r.Context(), yearParam, monthsParam)
	if err != nil {
		slog.Error("Failed to compute monthly hours", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// MonthlyOvertime implements AnalyticsHandler.
func (h *analyticsHandlerImpl) MonthlyOvertime(w http.ResponseWriter, r *http.Request) {
	yearParam, monthsParam := filterParams(r)
	result, err := h.analyticsService.MonthlyOvertime(r.Context(), yearParam, monthsParam)
	if err != nil {
		slog.Error("Failed to compute monthly overtime", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// AvgBreakPerMonth implements AnalyticsHandler.
func (h *analyticsHandlerImpl) AvgBreakPerMonth(w http.ResponseWriter, r *http.Request) {
	yearParam, monthsParam := filterParams(r)
	result, err := h.analyticsService.AvgBreakPerMonth(r.Context(), yearParam, monthsParam)
	if err != nil {
		slog.Error("Failed to compute average break", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// TotalBreakPerMonth implements AnalyticsHandler.
func (h *analyticsHandlerImpl) TotalBreakPerMonth(w http.ResponseWriter, r *http.Request) {
	yearParam, monthsParam := filterParams(r)
	result, err := h.analyticsService.TotalBreakPerMonth(r.Context(), yearParam, monthsParam)
	if err != nil {
		slog.Error("Failed to compute total break", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// TopWorkingHours implements AnalyticsHandler.
func (h *analyticsHandlerImpl) TopWorkingHours(w http.ResponseWriter, r *http.Request) {
	yearParam, monthsParam := filterParams(r)
	result, err := h.analyticsService.TopWorkingHours(r.Context(), yearParam, monthsParam)
	if err != nil {
		slog.Error("Failed to rank top working hours", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// BottomWorkingHours implements AnalyticsHandler.
func (h *analyticsHandlerImpl) BottomWorkingHours(w http.ResponseWriter, r *http.Request) {
	yearParam, monthsParam := filterParams(r)
	result, err := h.analyticsService.BottomWorkingHours(r.Context(), yearParam, monthsParam)
	if err != nil {
		slog.Error("Failed to rank bottom working hours", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// EmployeeSummary implements AnalyticsHandler.
func (h *analyticsHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	yearParam, monthsParam := filterParams(r)
	result, err := h.analyticsService.EmployeeSummary(r.Context(), yearParam, monthsParam)
	if err != nil {
		slog.Error("Failed to compute employee summary", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// AttendanceYears implements AnalyticsHandler.
func (h *analyticsHandlerImpl) AttendanceYears(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.AttendanceYears(r.Context())
	if err != nil {
		slog.Error("Failed to list attendance years", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
