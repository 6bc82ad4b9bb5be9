package timesheet

import (
	"context"
	"time"
)

// UseCase runs one load cycle: meetings first, then tasks, both aggregated.
type UseCase interface {
	Load(ctx context.Context, input LoadInput) (LoadOutput, error)
}

// Renderer draws aggregation results. The engine never builds presentation
// itself; hyperlinks and display strings belong to the renderer.
type Renderer interface {
	RenderRows(ctx context.Context, date time.Time, target Target, result AggregationResult)
	RenderError(ctx context.Context, date time.Time, err error)
	ClearAll(ctx context.Context)
}
