package httpapi

import (
	"net/http"
	"net/url"

	"github.com/deepmindru-afk/superuzyr/internal/infrastructure/prompts"
)

func (s *Server) HandlerButtonScript(w http.ResponseWriter, r *http.Request) {
	taskID := r.URL.Query().Get("task")
	if taskID == "" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Missing task parameter"))
		return
	}

	script, err := prompts.GenerateButtonScript(prompts.ButtonScript, prompts.ButtonScriptData{
		TaskID: taskID,
		RunURL: s.baseURL(r) + "/r/" + url.PathEscape(taskID),
	})
	if err != nil {
		s.logger.Error("Render button script failed", "error", err)
		http.Error(w, "Failed to render button", http.StatusInternalServerError)
		return
	}

	s.varyOnBase(w)
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(script))
}
