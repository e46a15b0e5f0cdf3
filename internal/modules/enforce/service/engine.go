package service

import (
	"context"
	"fmt"

	"grindlock/internal/modules/enforce/domain"
	enforceout "grindlock/internal/modules/enforce/port/out"
)

// Evaluation is one complete engine pass: the decision, the progress it was
// based on, what reconciliation did, and the guided task when blocked.
// ReconcileErr carries a non-fatal mechanism failure (typically permission
// denied); the decision is still valid and must be surfaced.
type Evaluation struct {
	Decision     domain.Decision
	Progress     enforceout.Progress
	Reconciled   ReconcileResult
	GuidedTask   *domain.Task
	ReconcileErr error
}

// Engine is the goal enforcement orchestrator. It is stateless: every run
// starts from scratch, and all durable truth lives in the progress provider
// and the blocking mechanism. Each run completes in one pass; waiting and
// re-invocation belong to the caller.
type Engine struct {
	progress   enforceout.ProgressSource
	catalog    enforceout.CatalogSource
	controller *BlockController
	thresholds domain.Thresholds
}

func NewEngine(progress enforceout.ProgressSource, catalog enforceout.CatalogSource, controller *BlockController, thresholds domain.Thresholds) *Engine {
	return &Engine{
		progress:   progress,
		catalog:    catalog,
		controller: controller,
		thresholds: thresholds,
	}
}

// Run evaluates one phase. When reconcile is false the run is advisory: the
// decision is computed but the mechanism is left alone.
//
// A provider failure aborts the run before reconciliation — the engine
// never guesses progress, so the mechanism keeps its prior state. A
// mechanism write failure does not abort: the decision is returned with
// ReconcileErr set.
func (e *Engine) Run(ctx context.Context, phase domain.GoalPhase, reconcile bool) (Evaluation, error) {
	phase, err := e.resolvePhase(ctx, phase)
	if err != nil {
		return Evaluation{}, err
	}

	progress, err := e.progress.Progress(ctx)
	if err != nil {
		return Evaluation{}, fmt.Errorf("phase %s: %w", phase, err)
	}

	evaluation := Evaluation{
		Decision: domain.Evaluate(phase, progress.Today, progress.Yesterday, e.thresholds),
		Progress: progress,
	}

	if reconcile {
		evaluation.Reconciled, evaluation.ReconcileErr = e.controller.Reconcile(ctx, evaluation.Decision)
	} else {
		status, err := e.controller.Status(ctx)
		if err != nil {
			evaluation.ReconcileErr = err
		} else {
			evaluation.Reconciled = ReconcileResult{Active: status.Active}
		}
	}

	if evaluation.Decision.ShouldBlock {
		tasks, err := e.catalog.Tasks(ctx)
		if err != nil {
			return Evaluation{}, fmt.Errorf("load catalog: %w", err)
		}
		if task, ok := domain.NextIncomplete(tasks, progress.Completed); ok {
			evaluation.GuidedTask = &task
		}
	}
	return evaluation, nil
}

// NextTask returns the first incomplete problem in canonical order.
func (e *Engine) NextTask(ctx context.Context) (domain.Task, bool, error) {
	progress, err := e.progress.Progress(ctx)
	if err != nil {
		return domain.Task{}, false, fmt.Errorf("fetch progress: %w", err)
	}
	tasks, err := e.catalog.Tasks(ctx)
	if err != nil {
		return domain.Task{}, false, fmt.Errorf("load catalog: %w", err)
	}
	task, ok := domain.NextIncomplete(tasks, progress.Completed)
	return task, ok, nil
}

// resolvePhase maps Polling to the phase recorded by the mechanism when the
// block was activated. A poll with no active block, or with an unreadable
// trigger phase, degrades to an advisory Idle evaluation.
func (e *Engine) resolvePhase(ctx context.Context, phase domain.GoalPhase) (domain.GoalPhase, error) {
	if phase != domain.PhasePolling {
		return phase, nil
	}
	status, err := e.controller.Status(ctx)
	if err != nil {
		return domain.PhaseIdle, fmt.Errorf("resolve poll phase: %w", err)
	}
	if !status.Active {
		return domain.PhaseIdle, nil
	}
	trigger, err := domain.ParseTriggerPhase(status.Phase.String())
	if err != nil {
		return domain.PhaseIdle, nil
	}
	return trigger, nil
}
