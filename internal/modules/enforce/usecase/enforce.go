package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"grindlock/internal/modules/enforce/domain"
	"grindlock/internal/modules/enforce/dto"
	enforcein "grindlock/internal/modules/enforce/port/in"
	enforceout "grindlock/internal/modules/enforce/port/out"
	"grindlock/internal/modules/enforce/service"
	"grindlock/internal/platform/clock"
)

// Interactor runs the engine and routes its output to the presentation
// collaborators. Notification, persistence, and launcher failures are
// logged and swallowed: an evaluation that reached a decision has done its
// job even when a downstream consumer is broken.
type Interactor struct {
	engine     *service.Engine
	controller *service.BlockController
	notifier   enforceout.Notifier
	recorder   enforceout.CheckRecorder
	launcher   enforceout.TaskLauncher
	clock      clock.Clock
	logger     *log.Logger
}

func NewInteractor(
	engine *service.Engine,
	controller *service.BlockController,
	notifier enforceout.Notifier,
	recorder enforceout.CheckRecorder,
	launcher enforceout.TaskLauncher,
	clk clock.Clock,
	logger *log.Logger,
) enforcein.Usecase {
	return &Interactor{
		engine:     engine,
		controller: controller,
		notifier:   notifier,
		recorder:   recorder,
		launcher:   launcher,
		clock:      clk,
		logger:     logger,
	}
}

func (i *Interactor) RunCheck(ctx context.Context, mode string) (dto.DecisionOutput, error) {
	phase, parseErr := domain.ParseMode(mode)
	if parseErr != nil {
		i.logger.Warn("unrecognized mode, treating as status check", "mode", mode)
	}
	enforcing := parseErr == nil && phase != domain.PhaseIdle

	evaluation, err := i.engine.Run(ctx, phase, enforcing)
	if err != nil {
		return dto.DecisionOutput{}, err
	}
	if evaluation.ReconcileErr != nil {
		i.logger.Error("block list not updated", "err", evaluation.ReconcileErr)
	}

	if enforcing {
		i.record(ctx, evaluation)
		i.announce(ctx, evaluation)
		if evaluation.GuidedTask != nil && evaluation.Reconciled.Changed {
			if err := i.launcher.Open(ctx, *evaluation.GuidedTask); err != nil {
				i.logger.Warn("could not open guided task", "err", err)
			}
		}
	}
	return toOutput(evaluation), nil
}

func (i *Interactor) NextTask(ctx context.Context, open bool) (dto.GuidedTaskOutput, error) {
	task, ok, err := i.engine.NextTask(ctx)
	if err != nil {
		return dto.GuidedTaskOutput{}, err
	}
	if !ok {
		return dto.GuidedTaskOutput{}, fmt.Errorf("every catalog problem is already solved")
	}
	if open {
		if err := i.launcher.Open(ctx, task); err != nil {
			i.logger.Warn("could not open task", "err", err)
		}
	}
	return dto.GuidedTaskOutput{
		Slug:        task.Slug,
		Title:       task.Title,
		LeetCodeURL: task.LeetCodeURL,
		NeetCodeURL: task.NeetCodeURL,
	}, nil
}

func (i *Interactor) ForceUnblock(ctx context.Context) error {
	if err := i.controller.ForceDeactivate(ctx); err != nil {
		return err
	}
	i.notify(ctx, enforceout.Event{
		Kind:    enforceout.EventUnblocked,
		Title:   "Block lifted",
		Message: "Distraction blocking was removed manually.",
	})
	return nil
}

func (i *Interactor) BlockStatus(ctx context.Context) (dto.BlockStatusOutput, error) {
	status, err := i.controller.Status(ctx)
	if err != nil {
		return dto.BlockStatusOutput{}, err
	}
	return dto.BlockStatusOutput{
		Active:  status.Active,
		Phase:   status.Phase.String(),
		Domains: status.Domains,
	}, nil
}

func (i *Interactor) record(ctx context.Context, evaluation service.Evaluation) {
	record := enforceout.CheckRecord{
		At:           i.clock.Now(),
		Phase:        evaluation.Decision.Phase,
		Today:        evaluation.Progress.Today,
		Yesterday:    evaluation.Progress.Yesterday,
		ShouldBlock:  evaluation.Decision.ShouldBlock,
		Delta:        evaluation.Decision.Delta,
		BlockChanged: evaluation.Reconciled.Changed,
	}
	if evaluation.GuidedTask != nil {
		record.GuidedSlug = evaluation.GuidedTask.Slug
	}
	if err := i.recorder.Record(ctx, record); err != nil {
		i.logger.Warn("check not recorded", "err", err)
	}
}

// announce notifies on transitions, plus a reminder when a check finds the
// user behind while the block is already in place. Polls that hold an
// existing block stay silent so a ten-minute poll interval does not spam.
func (i *Interactor) announce(ctx context.Context, evaluation service.Evaluation) {
	decision := evaluation.Decision
	switch {
	case decision.ShouldBlock && evaluation.Reconciled.Changed:
		i.notify(ctx, enforceout.Event{
			Kind:  enforceout.EventBlocked,
			Title: "Distractions blocked",
			Message: fmt.Sprintf("%s goal missed (%d/%d). Solve %d more to unblock.",
				decision.Phase, decision.Actual, decision.Threshold, decision.Delta),
		})
	case !decision.ShouldBlock && evaluation.Reconciled.Changed:
		i.notify(ctx, enforceout.Event{
			Kind:    enforceout.EventUnblocked,
			Title:   "Goal met",
			Message: "Nice work. Distraction blocking lifted.",
		})
	case decision.ShouldBlock && !evaluation.Reconciled.Active:
		// Behind but the mechanism could not be engaged: still tell the user.
		i.notify(ctx, enforceout.Event{
			Kind:  enforceout.EventBehind,
			Title: "Behind on goals",
			Message: fmt.Sprintf("%s goal missed (%d/%d).",
				decision.Phase, decision.Actual, decision.Threshold),
		})
	case !decision.ShouldBlock && decision.Phase == domain.PhaseEvening && decision.Delta == 0:
		i.notify(ctx, enforceout.Event{
			Kind:    enforceout.EventGoalMet,
			Title:   "Daily goal met",
			Message: "All of today's problems are done.",
		})
	}
}

func (i *Interactor) notify(ctx context.Context, event enforceout.Event) {
	if err := i.notifier.Notify(ctx, event); err != nil {
		i.logger.Warn("notification not delivered", "kind", event.Kind, "err", err)
	}
}

func toOutput(evaluation service.Evaluation) dto.DecisionOutput {
	out := dto.DecisionOutput{
		Phase:        evaluation.Decision.Phase.String(),
		ShouldBlock:  evaluation.Decision.ShouldBlock,
		Threshold:    evaluation.Decision.Threshold,
		Actual:       evaluation.Decision.Actual,
		Delta:        evaluation.Decision.Delta,
		Today:        evaluation.Progress.Today,
		Yesterday:    evaluation.Progress.Yesterday,
		BlockActive:  evaluation.Reconciled.Active,
		BlockChanged: evaluation.Reconciled.Changed,
	}
	for slug := range evaluation.Progress.Completed {
		out.CompletedSlugs = append(out.CompletedSlugs, slug)
	}
	sort.Strings(out.CompletedSlugs)
	if evaluation.GuidedTask != nil {
		out.GuidedTask = &dto.GuidedTaskOutput{
			Slug:        evaluation.GuidedTask.Slug,
			Title:       evaluation.GuidedTask.Title,
			LeetCodeURL: evaluation.GuidedTask.LeetCodeURL,
			NeetCodeURL: evaluation.GuidedTask.NeetCodeURL,
		}
	}
	return out
}
