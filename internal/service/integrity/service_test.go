package integrity

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traincore/schedule-backend-go/internal/domain/approval"
	"github.com/traincore/schedule-backend-go/internal/domain/clock"
	"github.com/traincore/schedule-backend-go/internal/domain/leave"
	"github.com/traincore/schedule-backend-go/internal/domain/overtime"
	"github.com/traincore/schedule-backend-go/internal/domain/schedule"
	"github.com/traincore/schedule-backend-go/internal/pkg/keylock"
)

// fixedClock pins "now" so tests control retroactivity and timestamps.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Config() clock.OverrideConfig { return clock.OverrideConfig{} }

func (c *fixedClock) SetOverride(instant *time.Time) clock.OverrideConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	if instant != nil {
		c.now = *instant
	}
	return clock.OverrideConfig{}
}

type memLeaveRepo struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (r *memLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[req.ID] = req
	return req, nil
}

func (r *memLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *memLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []leave.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memLeaveRepo) ListPendingOlderThan(_ context.Context, cutoff time.Time) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []leave.LeaveRequest
	for _, req := range r.requests {
		if req.Status == approval.StatusPending && req.CreatedAt.Before(cutoff) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *memLeaveRepo) Update(_ context.Context, req leave.UpdateLeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.requests[req.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if req.Status != nil {
		cur.Status = approval.Status(*req.Status)
	}
	if req.DecidedAt != nil {
		cur.DecidedAt = req.DecidedAt
	}
	if req.DecidedBy != nil {
		cur.DecidedBy = req.DecidedBy
	}
	if req.CancelledAt != nil {
		cur.CancelledAt = req.CancelledAt
	}
	if req.CancelledBy != nil {
		cur.CancelledBy = req.CancelledBy
	}
	r.requests[req.ID] = cur
	return nil
}

type memOvertimeRepo struct {
	mu           sync.Mutex
	declarations map[string]overtime.Declaration
}

func newMemOvertimeRepo() *memOvertimeRepo {
	return &memOvertimeRepo{declarations: make(map[string]overtime.Declaration)}
}

func (r *memOvertimeRepo) Create(_ context.Context, d overtime.Declaration) (overtime.Declaration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.declarations[d.ID] = d
	return d, nil
}

func (r *memOvertimeRepo) GetByID(_ context.Context, id string) (overtime.Declaration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.declarations[id]
	if !ok {
		return overtime.Declaration{}, overtime.ErrDeclarationNotFound
	}
	return d, nil
}

func (r *memOvertimeRepo) ListByEmployeeDate(_ context.Context, employeeID string, date time.Time) ([]overtime.Declaration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []overtime.Declaration
	for _, d := range r.declarations {
		if d.EmployeeID == employeeID && d.SameDate(date) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memOvertimeRepo) ListPendingOlderThan(_ context.Context, cutoff time.Time) ([]overtime.Declaration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []overtime.Declaration
	for _, d := range r.declarations {
		if d.Status == approval.StatusPending && d.CreatedAt.Before(cutoff) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memOvertimeRepo) Update(_ context.Context, req overtime.UpdateDeclarationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.declarations[req.ID]
	if !ok {
		return overtime.ErrDeclarationNotFound
	}
	if req.Status != nil {
		cur.Status = approval.Status(*req.Status)
	}
	if req.DecidedAt != nil {
		cur.DecidedAt = req.DecidedAt
	}
	if req.DecidedBy != nil {
		cur.DecidedBy = req.DecidedBy
	}
	r.declarations[req.ID] = cur
	return nil
}

// stubScheduleService answers with a single Mon-Fri 09:00-17:00 schedule
// and an optional set of holiday dates.
type stubScheduleService struct {
	schedule schedule.WorkSchedule
	holidays map[string]bool
}

func newStubScheduleService() *stubScheduleService {
	weekly := map[time.Weekday]schedule.DayInterval{
		time.Monday:    {StartMinute: 9 * 60, EndMinute: 17 * 60},
		time.Tuesday:   {StartMinute: 9 * 60, EndMinute: 17 * 60},
		time.Wednesday: {StartMinute: 9 * 60, EndMinute: 17 * 60},
		time.Thursday:  {StartMinute: 9 * 60, EndMinute: 17 * 60},
		time.Friday:    {StartMinute: 9 * 60, EndMinute: 17 * 60},
	}
	return &stubScheduleService{
		schedule: schedule.WorkSchedule{
			ID:            "sched-1",
			EmployeeID:    "emp-1",
			Weekly:        weekly,
			EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		holidays: make(map[string]bool),
	}
}

func (s *stubScheduleService) CreateSchedule(_ context.Context, _ schedule.CreateScheduleRequest) (schedule.WorkSchedule, error) {
	return schedule.WorkSchedule{}, nil
}

func (s *stubScheduleService) ActiveScheduleFor(_ context.Context, employeeID string, date time.Time) (schedule.WorkSchedule, error) {
	if employeeID != s.schedule.EmployeeID || !s.schedule.ActiveOn(date) {
		return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
	}
	return s.schedule, nil
}

func (s *stubScheduleService) ListSchedules(_ context.Context, _ string) ([]schedule.WorkSchedule, error) {
	return []schedule.WorkSchedule{s.schedule}, nil
}

func (s *stubScheduleService) IsWorkingDay(_ context.Context, employeeID string, date time.Time) (bool, error) {
	if s.holidays[date.Format("2006-01-02")] {
		return false, nil
	}
	if employeeID != s.schedule.EmployeeID || !s.schedule.ActiveOn(date) {
		return false, nil
	}
	_, ok := s.schedule.IntervalOn(date)
	return ok, nil
}

type fixture struct {
	svc          *Service
	clock        *fixedClock
	leaveRepo    *memLeaveRepo
	overtimeRepo *memOvertimeRepo
	schedules    *stubScheduleService
}

func newFixture() *fixture {
	clk := &fixedClock{now: time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)}
	leaveRepo := newMemLeaveRepo()
	overtimeRepo := newMemOvertimeRepo()
	schedules := newStubScheduleService()
	svc := NewService(clk, keylock.New(), 5*time.Second, 4*time.Hour, leaveRepo, overtimeRepo, schedules)
	return &fixture{svc: svc, clock: clk, leaveRepo: leaveRepo, overtimeRepo: overtimeRepo, schedules: schedules}
}

func TestSubmitLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("valid submission is created pending", func(t *testing.T) {
		f := newFixture()
		created, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, approval.StatusPending, created.Status)
		assert.Equal(t, f.clock.Now(), created.CreatedAt)
	})

	t.Run("retroactive submission is rejected", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-06-10", EndDate: "2024-06-12",
		})
		assert.ErrorIs(t, err, leave.ErrRetroactiveLeave)
	})

	t.Run("backfill permits retroactive submission", func(t *testing.T) {
		f := newFixture()
		created, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-06-10", EndDate: "2024-06-12", Backfill: true,
		})
		require.NoError(t, err)
		assert.Equal(t, approval.StatusPending, created.Status)
	})

	t.Run("overlap with pending request is rejected", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		require.NoError(t, err)

		_, err = f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-05", EndDate: "2024-07-08",
		})
		assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
	})

	t.Run("other employees are unaffected", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		require.NoError(t, err)

		_, err = f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-2", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		assert.NoError(t, err)
	})
}

func TestDecideLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("approve records decider and instant", func(t *testing.T) {
		f := newFixture()
		created, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		require.NoError(t, err)

		decided, err := f.svc.DecideLeave(ctx, leave.DecideLeaveRequest{
			RequestID: created.ID, DeciderID: "mgr-1", Approve: true,
		})
		require.NoError(t, err)
		assert.Equal(t, approval.StatusApproved, decided.Status)
		require.NotNil(t, decided.DecidedAt)
		assert.Equal(t, f.clock.Now(), *decided.DecidedAt)
		require.NotNil(t, decided.DecidedBy)
		assert.Equal(t, "mgr-1", *decided.DecidedBy)
	})

	t.Run("second decision fails and changes nothing", func(t *testing.T) {
		f := newFixture()
		created, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		require.NoError(t, err)

		first, err := f.svc.DecideLeave(ctx, leave.DecideLeaveRequest{
			RequestID: created.ID, DeciderID: "mgr-1", Approve: true,
		})
		require.NoError(t, err)

		f.clock.SetOverride(ptrTime(f.clock.Now().Add(time.Hour)))
		_, err = f.svc.DecideLeave(ctx, leave.DecideLeaveRequest{
			RequestID: created.ID, DeciderID: "mgr-2", Approve: false,
		})
		assert.ErrorIs(t, err, approval.ErrAlreadyProcessed)

		after, err := f.svc.GetLeaveRequest(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, approval.StatusApproved, after.Status)
		assert.Equal(t, *first.DecidedAt, *after.DecidedAt)
		assert.Equal(t, "mgr-1", *after.DecidedBy)
	})

	t.Run("unknown request id", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.DecideLeave(ctx, leave.DecideLeaveRequest{
			RequestID: "missing", DeciderID: "mgr-1", Approve: true,
		})
		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	})

	t.Run("approve fails stale when an overlap was approved since", func(t *testing.T) {
		f := newFixture()
		first, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		require.NoError(t, err)

		// A disjoint-at-submission second request turned overlapping is not
		// constructible through the API, so seed the overlap directly.
		f.clock.SetOverride(ptrTime(f.clock.Now().Add(time.Minute)))
		second := leave.LeaveRequest{
			ID: "seeded", EmployeeID: "emp-1",
			StartDate: time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC),
			Status:    approval.StatusPending, CreatedAt: f.clock.Now(),
		}
		_, err = f.leaveRepo.Create(ctx, second)
		require.NoError(t, err)

		_, err = f.svc.DecideLeave(ctx, leave.DecideLeaveRequest{
			RequestID: first.ID, DeciderID: "mgr-1", Approve: true,
		})
		require.NoError(t, err)

		// The later request now conflicts with an approved one.
		_, err = f.svc.DecideLeave(ctx, leave.DecideLeaveRequest{
			RequestID: "seeded", DeciderID: "mgr-1", Approve: true,
		})
		assert.ErrorIs(t, err, approval.ErrStaleConflict)
	})

	t.Run("reject skips the conflict re-check", func(t *testing.T) {
		f := newFixture()
		created, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		require.NoError(t, err)

		earlier := leave.LeaveRequest{
			ID: "earlier", EmployeeID: "emp-1",
			StartDate: time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC),
			Status:    approval.StatusPending, CreatedAt: created.CreatedAt.Add(-time.Hour),
		}
		_, err = f.leaveRepo.Create(ctx, earlier)
		require.NoError(t, err)

		decided, err := f.svc.DecideLeave(ctx, leave.DecideLeaveRequest{
			RequestID: created.ID, DeciderID: "mgr-1", Approve: false,
		})
		require.NoError(t, err)
		assert.Equal(t, approval.StatusRejected, decided.Status)
	})
}

func TestCancelLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("requester cancels and the dates free up", func(t *testing.T) {
		f := newFixture()
		created, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		require.NoError(t, err)

		cancelled, err := f.svc.CancelLeave(ctx, leave.CancelLeaveRequest{
			RequestID: created.ID, RequesterID: "emp-1",
		})
		require.NoError(t, err)
		assert.Equal(t, approval.StatusCancelled, cancelled.Status)

		_, err = f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		assert.NoError(t, err)
	})

	t.Run("non-requester cannot cancel", func(t *testing.T) {
		f := newFixture()
		created, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		require.NoError(t, err)

		_, err = f.svc.CancelLeave(ctx, leave.CancelLeaveRequest{
			RequestID: created.ID, RequesterID: "emp-2",
		})
		assert.ErrorIs(t, err, approval.ErrNotRequester)
	})

	t.Run("admin override cancels on behalf", func(t *testing.T) {
		f := newFixture()
		created, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		require.NoError(t, err)

		cancelled, err := f.svc.CancelLeave(ctx, leave.CancelLeaveRequest{
			RequestID: created.ID, RequesterID: "mgr-1", AdminOverride: true,
		})
		require.NoError(t, err)
		assert.Equal(t, approval.StatusCancelled, cancelled.Status)
	})

	t.Run("approved request cannot be cancelled", func(t *testing.T) {
		f := newFixture()
		created, err := f.svc.SubmitLeave(ctx, leave.SubmitLeaveRequest{
			EmployeeID: "emp-1", StartDate: "2024-07-01", EndDate: "2024-07-05",
		})
		require.NoError(t, err)
		_, err = f.svc.DecideLeave(ctx, leave.DecideLeaveRequest{
			RequestID: created.ID, DeciderID: "mgr-1", Approve: true,
		})
		require.NoError(t, err)

		_, err = f.svc.CancelLeave(ctx, leave.CancelLeaveRequest{
			RequestID: created.ID, RequesterID: "emp-1",
		})
		assert.ErrorIs(t, err, approval.ErrAlreadyProcessed)
	})
}

func TestSubmitOvertime(t *testing.T) {
	ctx := context.Background()

	t.Run("evening overtime on a working day", func(t *testing.T) {
		f := newFixture()
		created, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-01", Start: "18:00", End: "20:00",
		})
		require.NoError(t, err)
		assert.Equal(t, approval.StatusPending, created.Status)
		assert.Equal(t, "18:00-20:00", created.Interval.String())
	})

	t.Run("inside working hours is rejected", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-01", Start: "16:00", End: "19:00",
		})
		assert.ErrorIs(t, err, overtime.ErrInsideWorkingHours)
	})

	t.Run("weekend needs the holiday flag", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-06", Start: "10:00", End: "12:00",
		})
		assert.ErrorIs(t, err, overtime.ErrNotWorkingDay)

		created, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-06", Start: "10:00", End: "12:00", HolidayOvertime: true,
		})
		require.NoError(t, err)
		assert.True(t, created.HolidayOvertime)
	})

	t.Run("public holiday needs the holiday flag", func(t *testing.T) {
		f := newFixture()
		f.schedules.holidays["2024-07-04"] = true

		_, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-04", Start: "18:00", End: "20:00",
		})
		assert.ErrorIs(t, err, overtime.ErrNotWorkingDay)

		_, err = f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-04", Start: "18:00", End: "20:00", HolidayOvertime: true,
		})
		assert.NoError(t, err)
	})

	t.Run("daily cap counts approved declarations", func(t *testing.T) {
		f := newFixture()
		first, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-01", Start: "17:00", End: "20:00",
		})
		require.NoError(t, err)
		_, err = f.svc.DecideOvertime(ctx, overtime.DecideOvertimeRequest{
			DeclarationID: first.ID, DeciderID: "mgr-1", Approve: true,
		})
		require.NoError(t, err)

		_, err = f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-01", Start: "20:00", End: "22:00",
		})
		assert.ErrorIs(t, err, overtime.ErrDailyCapExceeded)

		created, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-01", Start: "20:00", End: "21:00",
		})
		require.NoError(t, err)
		assert.Equal(t, approval.StatusPending, created.Status)
	})

	t.Run("invalid time format fails validation", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-01", Start: "25:00", End: "26:00",
		})
		assert.Error(t, err)
	})
}

func TestDecideOvertime(t *testing.T) {
	ctx := context.Background()

	t.Run("racing overlaps resolve to one approval", func(t *testing.T) {
		f := newFixture()
		first, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-01", Start: "18:00", End: "20:00",
		})
		require.NoError(t, err)

		f.clock.SetOverride(ptrTime(f.clock.Now().Add(time.Minute)))
		second, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-01", Start: "19:00", End: "21:00",
		})
		require.NoError(t, err)

		// The later one is superseded while the earlier is still pending.
		_, err = f.svc.DecideOvertime(ctx, overtime.DecideOvertimeRequest{
			DeclarationID: second.ID, DeciderID: "mgr-1", Approve: true,
		})
		assert.ErrorIs(t, err, approval.ErrSuperseded)

		_, err = f.svc.DecideOvertime(ctx, overtime.DecideOvertimeRequest{
			DeclarationID: first.ID, DeciderID: "mgr-1", Approve: true,
		})
		require.NoError(t, err)

		// Once the earlier is approved the later one is stale.
		_, err = f.svc.DecideOvertime(ctx, overtime.DecideOvertimeRequest{
			DeclarationID: second.ID, DeciderID: "mgr-1", Approve: true,
		})
		assert.ErrorIs(t, err, approval.ErrStaleConflict)
	})

	t.Run("rejecting a superseded declaration still works", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-01", Start: "18:00", End: "20:00",
		})
		require.NoError(t, err)

		f.clock.SetOverride(ptrTime(f.clock.Now().Add(time.Minute)))
		second, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-01", Start: "19:00", End: "21:00",
		})
		require.NoError(t, err)

		decided, err := f.svc.DecideOvertime(ctx, overtime.DecideOvertimeRequest{
			DeclarationID: second.ID, DeciderID: "mgr-1", Approve: false,
		})
		require.NoError(t, err)
		assert.Equal(t, approval.StatusRejected, decided.Status)
	})

	t.Run("second decision on a terminal declaration fails", func(t *testing.T) {
		f := newFixture()
		created, err := f.svc.SubmitOvertime(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "emp-1", Date: "2024-07-01", Start: "18:00", End: "20:00",
		})
		require.NoError(t, err)

		_, err = f.svc.DecideOvertime(ctx, overtime.DecideOvertimeRequest{
			DeclarationID: created.ID, DeciderID: "mgr-1", Approve: true,
		})
		require.NoError(t, err)

		_, err = f.svc.DecideOvertime(ctx, overtime.DecideOvertimeRequest{
			DeclarationID: created.ID, DeciderID: "mgr-2", Approve: false,
		})
		assert.ErrorIs(t, err, approval.ErrAlreadyProcessed)
	})
}

func ptrTime(t time.Time) *time.Time { return &t }
