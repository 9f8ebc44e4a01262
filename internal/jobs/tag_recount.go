package jobs

import (
	"context"
	"fmt"
)

// UsageRecounter recomputes tag usage counters from text membership.
type UsageRecounter interface {
	RecountUsage(ctx context.Context) error
}

// TagRecountProcessor keeps the heuristic tags.usage_count column warm
// without coupling content writes to the tag directory.
type TagRecountProcessor struct {
	recounter UsageRecounter
}

func NewTagRecountProcessor(recounter UsageRecounter) *TagRecountProcessor {
	return &TagRecountProcessor{recounter: recounter}
}

func (p *TagRecountProcessor) Process(ctx context.Context) error {
	if err := p.recounter.RecountUsage(ctx); err != nil {
		return fmt.Errorf("tag recount: %w", err)
	}
	return nil
}
