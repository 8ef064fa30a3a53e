package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"

	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
	"github.com/deepmindru-afk/superuzyr/internal/usecase/catalog"
)

type TasksResponse struct {
	Tasks []entity.Task `json:"tasks"`
}

type TaskResponse struct {
	Task entity.Task `json:"task"`
}

type CreateTaskResponse struct {
	Task      entity.Task `json:"task"`
	ShareLink string      `json:"shareLink"`
	EmbedCode string      `json:"embedCode"`
}

// decodeBody decodes an optional JSON body; an empty body leaves dst untouched.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Server) HandlerHealth(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) HandlerCatalog(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.ListPublished(r.Context())
	if err != nil {
		s.logger.Error("List published tasks failed", "error", err)
		renderInternal(w, r)
		return
	}
	RenderJSON(w, r, TasksResponse{Tasks: tasks})
}

func (s *Server) HandlerListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List(r.Context())
	if err != nil {
		s.logger.Error("List tasks failed", "error", err)
		renderInternal(w, r)
		return
	}
	RenderJSON(w, r, TasksResponse{Tasks: tasks})
}

func (s *Server) HandlerCreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderJSON(w, r, ResponseError(CodeInvalidJSON, "Invalid JSON", nil), Render.Status(http.StatusBadRequest))
		return
	}
	if issues := CreateTaskSchema.Validate(&req); len(issues) > 0 {
		payload := ResponseError(CodeValidationFailed, "Missing required fields: name, website, llm, instructions", z.Issues.Flatten(issues))
		RenderJSON(w, r, payload, Render.Status(http.StatusBadRequest))
		return
	}

	task, err := s.tasks.Create(r.Context(), req.Task())
	if err != nil {
		s.logger.Error("Create task failed", "error", err)
		renderInternal(w, r)
		return
	}
	httplog.LogEntrySetField(r.Context(), "task_id", task.ID)

	base := s.baseURL(r)
	RenderJSON(w, r, CreateTaskResponse{
		Task:      task,
		ShareLink: base + "/r/" + task.ID,
		EmbedCode: `<script src="` + base + `/cdn/button.js?task=` + task.ID + `"></script>`,
	})
}

func (s *Server) HandlerGetTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	httplog.LogEntrySetField(r.Context(), "task_id", id)

	task, err := s.tasks.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrTaskNotFound) {
		renderNotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("Get task failed", "task_id", id, "error", err)
		renderInternal(w, r)
		return
	}
	RenderJSON(w, r, TaskResponse{Task: task})
}

func (s *Server) HandlerUpdateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	httplog.LogEntrySetField(r.Context(), "task_id", id)

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderJSON(w, r, ResponseError(CodeInvalidJSON, "Invalid JSON", nil), Render.Status(http.StatusBadRequest))
		return
	}
	if issues := UpdateTaskSchema.Validate(&req); len(issues) > 0 {
		payload := ResponseError(CodeValidationFailed, "Schema validation failed", z.Issues.Flatten(issues))
		RenderJSON(w, r, payload, Render.Status(http.StatusBadRequest))
		return
	}

	task, err := s.tasks.Update(r.Context(), id, req.Patch())
	if errors.Is(err, catalog.ErrTaskNotFound) {
		renderNotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("Update task failed", "task_id", id, "error", err)
		renderInternal(w, r)
		return
	}
	RenderJSON(w, r, TaskResponse{Task: task})
}

func (s *Server) HandlerDeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	httplog.LogEntrySetField(r.Context(), "task_id", id)

	err := s.tasks.Delete(r.Context(), id)
	if errors.Is(err, catalog.ErrTaskNotFound) {
		renderNotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("Delete task failed", "task_id", id, "error", err)
		renderInternal(w, r)
		return
	}
	RenderJSON(w, r, map[string]bool{"success": true})
}
