package usecase

import (
	"daily-timesheet/internal/timesheet"
	"daily-timesheet/internal/timesheet/repository"
	"daily-timesheet/pkg/datemath"
	pkgLog "daily-timesheet/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.EventRepository
	dateMath   *datemath.Parser
	aggregator *timesheet.Aggregator
	cfg        timesheet.Config
}

// New creates a new timesheet UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.EventRepository,
	dateMath *datemath.Parser,
	cfg timesheet.Config,
) timesheet.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		dateMath:   dateMath,
		aggregator: timesheet.NewAggregator(cfg.TicketPrefix),
		cfg:        cfg,
	}
}
