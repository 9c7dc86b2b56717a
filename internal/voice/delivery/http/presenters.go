package http

import (
	taskHTTP "github.com/minakianandclaude/LifeTracker/internal/task/delivery/http"
	"github.com/minakianandclaude/LifeTracker/internal/voice"
)

const (
	healthMessageOK       = "LLM is ready"
	healthMessageDegraded = "LLM unavailable, will use fallback parsing"
)

type intakeReq struct {
	Input string `json:"input" binding:"required"`
}

func (r intakeReq) toInput() voice.IntakeInput {
	return voice.IntakeInput{Input: r.Input}
}

type parsingResp struct {
	Confidence voice.Confidence `json:"confidence"`
	Warning    bool             `json:"warning"`
	Errors     *string          `json:"errors"`
}

// intakeResp is shaped for a shortcut notification: message is what the user sees.
type intakeResp struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Task    taskHTTP.TaskResp `json:"task"`
	Parsing parsingResp       `json:"parsing"`
}

func (h *handler) newIntakeResp(out voice.IntakeOutput) intakeResp {
	return intakeResp{
		Success: true,
		Message: out.Message,
		Task:    taskHTTP.NewTaskResp(out.Task),
		Parsing: parsingResp{
			Confidence: out.Parsed.Confidence,
			Warning:    out.Parsed.ParseWarning,
			Errors:     out.Parsed.ParseErrors,
		},
	}
}

type healthResp struct {
	Status  string `json:"status"`
	LLM     string `json:"llm"`
	Message string `json:"message"`
}

func (h *handler) newHealthResp(out voice.HealthOutput) healthResp {
	if out.LLMAvailable {
		return healthResp{Status: "ok", LLM: "available", Message: healthMessageOK}
	}
	return healthResp{Status: "degraded", LLM: "unavailable", Message: healthMessageDegraded}
}
