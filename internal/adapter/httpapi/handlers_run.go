package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/input"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/usecase/orchestrator"
)

const executionModeHeader = "execution-mode"

func (s *Server) HandlerRunTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	httplog.LogEntrySetField(r.Context(), "task_id", id)

	var req RunTaskRequest
	if err := decodeBody(r, &req); err != nil {
		RenderJSON(w, r, ResponseError(CodeInvalidJSON, "Invalid JSON", nil), Render.Status(http.StatusBadRequest))
		return
	}

	resp, err := s.runner.Run(r.Context(), id, input.RunInput{
		Params: req.ParamValues,
		Mode:   entity.ParseExecutionMode(r.Header.Get(executionModeHeader)),
	})
	if errors.Is(err, orchestrator.ErrTaskNotFound) {
		renderNotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("Run task failed", "task_id", id, "error", err)
		renderInternal(w, r)
		return
	}

	httplog.LogEntrySetField(r.Context(), "execution_id", resp.ExecutionID)
	RenderJSON(w, r, resp)
}

func (s *Server) HandlerStreamTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	httplog.LogEntrySetField(r.Context(), "task_id", id)

	var req StreamTaskRequest
	if err := decodeBody(r, &req); err != nil {
		RenderJSON(w, r, ResponseError(CodeInvalidJSON, "Invalid JSON", nil), Render.Status(http.StatusBadRequest))
		return
	}
	mode := entity.ModeStreaming
	if req.ExecutionMode != "" {
		mode = entity.ParseExecutionMode(req.ExecutionMode)
	}

	events := NewEventWriter(w)
	err := s.runner.Stream(r.Context(), id, input.RunInput{Params: req.ParamValues, Mode: mode}, func(msg input.StreamMessage) error {
		return events.Send(msg)
	})
	if err == nil {
		return
	}

	if !events.Started() {
		if errors.Is(err, orchestrator.ErrTaskNotFound) {
			renderNotFound(w, r)
			return
		}
		s.logger.Error("Stream task failed", "task_id", id, "error", err)
		renderInternal(w, r)
		return
	}
	if r.Context().Err() == nil {
		s.logger.Warn("Stream ended early", "task_id", id, "error", err)
	}
}
