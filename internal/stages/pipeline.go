// Package stages provides the trial transformations run by the normalizer.
package stages

import (
	"context"
	"fmt"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
	"github.com/custodia-labs/mocapprep/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface so pipelines can nest.
var _ driven.TrialStage = (*Pipeline)(nil)

// Pipeline chains multiple TrialStages and runs them in order.
type Pipeline struct {
	stages []driven.TrialStage
}

// NewPipeline creates a new pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...driven.TrialStage) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// Process runs the trial through all stages in order.
// Each stage receives the output of the previous one.
func (p *Pipeline) Process(ctx context.Context, trial *domain.Trial) (*domain.Trial, error) {
	if trial == nil {
		return nil, fmt.Errorf("trial is nil")
	}

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var err error
		trial, err = stage.Apply(ctx, trial)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
	}

	return trial, nil
}

// Name returns the pipeline identifier.
func (p *Pipeline) Name() string {
	return "pipeline"
}

// Apply runs the pipeline as a single stage.
func (p *Pipeline) Apply(ctx context.Context, trial *domain.Trial) (*domain.Trial, error) {
	return p.Process(ctx, trial)
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage driven.TrialStage) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}
