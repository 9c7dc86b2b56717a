package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/minakianandclaude/LifeTracker/internal/task"
	"github.com/minakianandclaude/LifeTracker/internal/voice"
)

// Intake validates the utterance, parses it and files the task in the inbox.
// A parse that fell back is still saved; the warning travels with the task.
func (uc *implUseCase) Intake(ctx context.Context, input voice.IntakeInput) (voice.IntakeOutput, error) {
	raw := strings.TrimSpace(input.Input)
	if raw == "" {
		return voice.IntakeOutput{}, voice.ErrEmptyInput
	}
	if utf8.RuneCountInString(raw) > voice.MaxInputLength {
		return voice.IntakeOutput{}, voice.ErrInputTooLong
	}

	parsed := uc.parser.Parse(ctx, raw)

	out, err := uc.taskUC.Create(ctx, task.CreateTaskInput{
		Title:        parsed.Title,
		RawInput:     &raw,
		ParseWarning: parsed.ParseWarning,
		ParseErrors:  parsed.ParseErrors,
	})
	if err != nil {
		uc.l.Errorf(ctx, "voice.usecase.Intake: taskUC.Create: %v", err)
		return voice.IntakeOutput{}, err
	}

	if parsed.ParseWarning {
		uc.l.Infof(ctx, "voice task %s saved with fallback title", out.Task.ID)
	}

	return voice.IntakeOutput{
		Message: fmt.Sprintf("Added: %s", out.Task.Title),
		Task:    out.Task,
		Parsed:  parsed,
	}, nil
}

// Health reports whether the model is available; parsing still works without it.
func (uc *implUseCase) Health(ctx context.Context) voice.HealthOutput {
	return voice.HealthOutput{LLMAvailable: uc.parser.CheckHealth(ctx)}
}
