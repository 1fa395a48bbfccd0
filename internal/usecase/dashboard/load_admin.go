package dashboard

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/salon-console/internal/backend"
	"github.com/BruksfildServices01/salon-console/internal/logger"
	"github.com/BruksfildServices01/salon-console/internal/models"
	"github.com/BruksfildServices01/salon-console/internal/remote"
)

const ApprovedStatus = "APPROVED"

type Source interface {
	Demographics(ctx context.Context, token string) (backend.Analytics, error)
	UserEngagement(ctx context.Context, token string) (backend.Analytics, error)
	BrowseSalons(ctx context.Context, token, status string) ([]models.Salon, error)
}

// Section is one independently loaded part of the dashboard.
type Section[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error,omitempty"`
}

type AdminDashboard struct {
	Demographics   Section[backend.Analytics] `json:"demographics"`
	Engagement     Section[backend.Analytics] `json:"user_engagement"`
	ApprovedSalons Section[[]models.Salon]    `json:"approved_salons"`
	LoadedAt       time.Time                  `json:"loaded_at"`
}

type LoadAdmin struct {
	src Source
	log *zap.Logger
}

func NewLoadAdmin(src Source, log *zap.Logger) *LoadAdmin {
	return &LoadAdmin{src: src, log: logger.OrNop(log)}
}

// Execute loads the three sections in parallel. A failing section is
// reported inside the result; only when all of them fail is an error
// returned. A rejected session or a cancelled request stops the other
// sections and fails the whole load.
func (uc *LoadAdmin) Execute(ctx context.Context, token string) (*AdminDashboard, error) {
	if token == "" {
		return nil, remote.ErrNotAuthenticated
	}

	var (
		out  = &AdminDashboard{}
		errs [3]error
	)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := uc.src.Demographics(gctx, token)
		out.Demographics = section(data, err)
		errs[0] = err
		return fatal(err)
	})
	g.Go(func() error {
		data, err := uc.src.UserEngagement(gctx, token)
		out.Engagement = section(data, err)
		errs[1] = err
		return fatal(err)
	})
	g.Go(func() error {
		data, err := uc.src.BrowseSalons(gctx, token, ApprovedStatus)
		if data == nil {
			data = []models.Salon{}
		}
		out.ApprovedSalons = section(data, err)
		errs[2] = err
		return fatal(err)
	})
	if err := g.Wait(); err != nil {
		uc.log.Warn("dashboard load aborted", zap.Error(err))
		return nil, err
	}

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			uc.log.Warn("dashboard section failed", zap.Error(err))
		}
	}
	if failed == len(errs) {
		return nil, errs[0]
	}

	out.LoadedAt = time.Now().UTC()
	return out, nil
}

// fatal keeps the errors that make the other sections pointless.
func fatal(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, remote.ErrNotAuthenticated),
		remote.StatusOf(err) == http.StatusUnauthorized,
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return nil
}

func section[T any](data T, err error) Section[T] {
	if err != nil {
		var zero T
		return Section[T]{Data: zero, Error: remote.MessageOf(err)}
	}
	return Section[T]{Data: data}
}
