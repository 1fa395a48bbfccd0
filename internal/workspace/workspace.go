package workspace

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-console/internal/domain/navigator"
	"github.com/BruksfildServices01/salon-console/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-console/internal/logger"
	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/remote"
	"github.com/BruksfildServices01/salon-console/internal/state"
	"github.com/BruksfildServices01/salon-console/internal/timezone"
)

// ScheduleSource is the part of the backend a stylist dashboard reads.
type ScheduleSource interface {
	StylistSalon(ctx context.Context, token string) (*models.Salon, error)
	WeeklySchedule(ctx context.Context, token string, start, end time.Time) (models.Schedule, error)
}

type Direction string

const (
	Previous Direction = "previous"
	Next     Direction = "next"
)

// Snapshot is everything the schedule page paints.
type Snapshot struct {
	View         schedule.View          `json:"view"`
	SelectedDate string                 `json:"selected_date"`
	WeekStart    string                 `json:"week_start"`
	CanPrevious  bool                   `json:"can_navigate_previous"`
	CanNext      bool                   `json:"can_navigate_next"`
	Salon        *models.Salon          `json:"salon,omitempty"`
	Appointments []schedule.Appointment `json:"appointments"`
	Cancelled    []schedule.Appointment `json:"cancelled"`
	Columns      []calendar.Column      `json:"columns"`
	Hours        []calendar.HourLabel   `json:"hours"`
	Error        string                 `json:"error,omitempty"`
}

type fetched struct {
	view     schedule.View
	schedule models.Schedule
}

// Workspace is one stylist's dashboard state. Methods are safe for
// concurrent use; overlapping refreshes resolve latest-wins.
type Workspace struct {
	src   ScheduleSource
	clock timezone.Clock
	loc   *time.Location
	log   *zap.Logger

	mu  sync.Mutex
	nav *navigator.Navigator

	data  state.Slice[fetched]
	salon state.Slice[*models.Salon]

	lastSeen time.Time
}

func New(src ScheduleSource, clock timezone.Clock, log *zap.Logger) *Workspace {
	now := clock.Now()
	return &Workspace{
		src:      src,
		clock:    clock,
		loc:      now.Location(),
		log:      logger.OrNop(log),
		nav:      navigator.New(now, nil),
		lastSeen: now,
	}
}

func (w *Workspace) touch() {
	w.mu.Lock()
	w.lastSeen = w.clock.Now()
	w.mu.Unlock()
}

func (w *Workspace) idleSince() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

// Refresh re-anchors the navigator to the wall clock and fetches the range
// of the active view. A fetch superseded by a newer one is dropped.
func (w *Workspace) Refresh(ctx context.Context, token string) Snapshot {
	w.touch()

	if !w.salon.Loaded() {
		if _, err := w.salon.Load(ctx, func(ctx context.Context) (*models.Salon, error) {
			return w.src.StylistSalon(ctx, token)
		}); err != nil && !errors.Is(err, state.ErrStale) {
			w.log.Warn("salon context unavailable", zap.Error(err))
		}
	}

	w.mu.Lock()
	w.nav.SetNow(w.clock.Now())
	view := w.nav.View()
	start, end := w.nav.FetchRange()
	w.mu.Unlock()

	_, err := w.data.Load(ctx, func(ctx context.Context) (fetched, error) {
		s, err := w.src.WeeklySchedule(ctx, token, start, end)
		if err != nil {
			return fetched{}, err
		}
		return fetched{view: view, schedule: s}, nil
	})
	if err != nil && !errors.Is(err, state.ErrStale) {
		w.log.Warn("schedule fetch failed",
			zap.String("view", string(view)),
			zap.String("start", schedule.DateKey(start)),
			zap.String("end", schedule.DateKey(end)),
			zap.Error(err),
		)
	}

	return w.Snapshot()
}

// Open is the page load: the view goes back to today's day view and the
// window is refetched. View changes live only until the next Open.
func (w *Workspace) Open(ctx context.Context, token string) Snapshot {
	w.mu.Lock()
	w.nav.SetNow(w.clock.Now())
	w.nav.SetView(schedule.ViewDay)
	w.mu.Unlock()
	return w.Refresh(ctx, token)
}

// Loaded reports whether a schedule fetch has completed.
func (w *Workspace) Loaded() bool {
	return w.data.Loaded()
}

// SwitchView changes mode, resets its reference point and refetches.
func (w *Workspace) SwitchView(ctx context.Context, token string, v schedule.View) Snapshot {
	w.mu.Lock()
	w.nav.SetView(v)
	w.mu.Unlock()
	return w.Refresh(ctx, token)
}

// Navigate steps within the already-fetched range. It reports false when
// the step was rejected.
func (w *Workspace) Navigate(dir Direction) (Snapshot, bool) {
	w.touch()

	w.mu.Lock()
	var moved bool
	if dir == Previous {
		moved = w.nav.Previous()
	} else {
		moved = w.nav.Next()
	}
	w.mu.Unlock()

	return w.Snapshot(), moved
}

// Snapshot derives the page from the current state. Statuses are computed
// against the clock at call time.
func (w *Workspace) Snapshot() Snapshot {
	f, err := w.data.Get()
	salon, _ := w.salon.Get()

	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.clock.Now()
	w.nav.SetNow(now)
	if f.view == schedule.ViewWeek && f.schedule != nil {
		w.nav.SetProbe(navigator.ScheduleProbe{Schedule: f.schedule})
	} else {
		w.nav.SetProbe(navigator.OptimisticProbe{})
	}

	filter := w.nav.Filter()
	appts := schedule.Transform(f.schedule, filter, now, w.loc, w.log)

	snap := Snapshot{
		View:         w.nav.View(),
		SelectedDate: schedule.DateKey(w.nav.SelectedDate()),
		WeekStart:    schedule.DateKey(w.nav.WeekStart()),
		CanPrevious:  w.nav.CanNavigatePrevious(),
		CanNext:      w.nav.CanNavigateNext(),
		Salon:        salon,
		Appointments: appts,
		Cancelled:    schedule.Cancelled(appts),
		Hours:        calendar.HourLabels(),
	}
	if err != nil {
		snap.Error = remote.MessageOf(err)
	}

	if filter.View == schedule.ViewWeek {
		snap.Columns = calendar.LayoutWeek(filter.Reference, f.schedule, appts)
	} else {
		var day *models.ScheduleDay
		if d, ok := f.schedule[schedule.DateKey(filter.Reference)]; ok {
			day = &d
		}
		snap.Columns = []calendar.Column{calendar.LayoutDay(filter.Reference, day, appts)}
	}
	return snap
}
