package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-engine/internal/pkg/cache"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	calendarSvc    calendar.Service
	reportCache    cache.Invalidator
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	calendarSvc calendar.Service,
	reportCache cache.Invalidator,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		calendarSvc:    calendarSvc,
		reportCache:    reportCache,
	}
}

// invalidateReports runs after every successful write so the next report reads the new marks
func (s *AttendanceServiceImpl) invalidateReports(companyID string) {
	removed := s.reportCache.Invalidate(cache.CompanyScope(companyID))
	slog.Debug("Report cache invalidated", "company_id", companyID, "removed", removed)
}

// ========== MARKING ==========

func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, companyID string, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Company isolation
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	status := attendance.Status(req.Status)
	if status == attendance.StatusNotSet {
		if err := s.ClearAttendance(ctx, companyID, req.EmployeeID, req.Date); err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{EmployeeID: req.EmployeeID, Date: req.Date, Status: string(status)}, nil
	}

	saved, err := s.attendanceRepo.Upsert(ctx, attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	s.invalidateReports(companyID)

	return attendance.NewAttendanceResponse(saved), nil
}

func (s *AttendanceServiceImpl) BulkMarkAttendance(ctx context.Context, companyID string, req attendance.BulkMarkAttendanceRequest) (attendance.BulkMarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	active, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return attendance.BulkMarkResponse{}, fmt.Errorf("failed to get active employees: %w", err)
	}

	employeeIDs := make([]string, 0, len(active))
	if len(req.EmployeeIDs) == 0 {
		for _, e := range active {
			employeeIDs = append(employeeIDs, e.ID)
		}
	} else {
		activeSet := make(map[string]bool, len(active))
		for _, e := range active {
			activeSet[e.ID] = true
		}
		seen := make(map[string]bool, len(req.EmployeeIDs))
		for _, id := range req.EmployeeIDs {
			if !activeSet[id] {
				return attendance.BulkMarkResponse{}, fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, id)
			}
			if !seen[id] {
				seen[id] = true
				employeeIDs = append(employeeIDs, id)
			}
		}
	}

	if len(employeeIDs) == 0 {
		return attendance.BulkMarkResponse{}, attendance.ErrNoEmployees
	}

	if err := s.upsertAll(ctx, employeeIDs, date, attendance.Status(req.Status)); err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	s.invalidateReports(companyID)
	slog.Info("Attendance bulk marked", "company_id", companyID, "date", req.Date, "status", req.Status, "count", len(employeeIDs))

	return attendance.BulkMarkResponse{Date: req.Date, Status: req.Status, Marked: len(employeeIDs)}, nil
}

func (s *AttendanceServiceImpl) upsertAll(ctx context.Context, employeeIDs []string, date time.Time, status attendance.Status) error {
	records := make([]attendance.Record, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		records = append(records, attendance.Record{EmployeeID: id, Date: date, Status: status})
	}
	if err := s.attendanceRepo.BulkUpsert(ctx, records); err != nil {
		return fmt.Errorf("failed to save attendance batch: %w", err)
	}
	return nil
}

func (s *AttendanceServiceImpl) ClearAttendance(ctx context.Context, companyID string, employeeID string, date string) error {
	d, err := calendar.ParseDate(date)
	if err != nil {
		return err
	}

	if err := s.attendanceRepo.Delete(ctx, companyID, employeeID, d); err != nil {
		return err
	}

	s.invalidateReports(companyID)
	return nil
}

// ========== DAILY SHEET ==========

func (s *AttendanceServiceImpl) DailySheet(ctx context.Context, companyID string, date string) (attendance.DailySheetResponse, error) {
	d, err := calendar.ParseDate(date)
	if err != nil {
		return attendance.DailySheetResponse{}, err
	}

	var (
		day       calendar.DayResolution
		employees []employee.Employee
		records   []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		day, err = s.calendarSvc.ResolveDay(gCtx, companyID, d)
		return err
	})

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.GetActiveByCompanyID(gCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get active employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByCompanyAndDate(gCtx, companyID, d)
		if err != nil {
			return fmt.Errorf("failed to get attendance: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return attendance.DailySheetResponse{}, err
	}

	statusByEmployee := make(map[string]attendance.Status, len(records))
	for _, r := range records {
		statusByEmployee[r.EmployeeID] = r.Status
	}

	rows := make([]attendance.DailySheetRow, 0, len(employees))
	for _, e := range employees {
		status, ok := statusByEmployee[e.ID]
		if !ok {
			status = attendance.StatusNotSet
		}
		rows = append(rows, attendance.DailySheetRow{
			EmployeeID: e.ID,
			Name:       e.Name,
			Rank:       e.Rank,
			Status:     string(status),
		})
	}

	return attendance.DailySheetResponse{
		Date:           date,
		ShowAttendance: day.ShowAttendance,
		Day:            calendar.NewDayResolutionResponse(day),
		Rows:           rows,
	}, nil
}

// ========== HOLIDAY AUTOFILL ==========

func (s *AttendanceServiceImpl) AutoMarkHolidayAttendance(ctx context.Context, companyID string, date time.Time) (attendance.AutoMarkResponse, error) {
	date = calendar.DateOnly(date)
	result := attendance.AutoMarkResponse{Date: date.Format(calendar.DateLayout)}

	day, err := s.calendarSvc.ResolveDay(ctx, companyID, date)
	if err != nil {
		return result, err
	}
	if day.Kind != calendar.DayKindHoliday {
		return result, nil
	}
	result.HolidayFound = true

	active, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return result, fmt.Errorf("failed to get active employees: %w", err)
	}
	if len(active) == 0 {
		return result, nil
	}

	employeeIDs := make([]string, 0, len(active))
	for _, e := range active {
		employeeIDs = append(employeeIDs, e.ID)
	}

	if err := s.upsertAll(ctx, employeeIDs, date, attendance.StatusPresent); err != nil {
		return result, err
	}
	result.Marked = len(employeeIDs)

	s.invalidateReports(companyID)
	slog.Info("Holiday attendance auto-marked", "company_id", companyID, "date", result.Date, "count", result.Marked)

	return result, nil
}
