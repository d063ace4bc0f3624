package site

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/analyzer"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/content"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/navigation"
	"github.com/Kalai-nithi-guhan/next-deploy/pkg/render"
)

type pageInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

type pageData struct {
	Page         pageInfo               `json:"page"`
	Nav          []navigation.Link      `json:"nav"`
	Content      any                    `json:"content,omitempty"`
	Form         string                 `json:"form,omitempty"`
	Notification *analyzer.Notification `json:"notification,omitempty"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.notFound(w, r)
		return
	}
	s.staticPage("home", "", func(doc content.Document) any { return doc.Home })(w, r)
}

func (s *Server) staticPage(name, title string, pick func(content.Document) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		s.renderPage(w, r, http.StatusOK, name, pageData{
			Page:    pageInfo{Name: name, Title: title, Path: r.URL.Path},
			Content: pick(s.content),
		})
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusNotFound, "notfound", pageData{
		Page: pageInfo{Name: "notfound", Title: "Page not found", Path: r.URL.Path},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleAnalyzer(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("format")), "json") {
			s.writeJSON(w, http.StatusOK, s.form)
			return
		}
		s.renderAnalyzer(w, r, analyzer.NewFormState(), nil)
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form payload", http.StatusBadRequest)
			return
		}
		state := analyzer.NewFormState()
		for name, values := range r.PostForm {
			if len(values) == 0 {
				continue
			}
			if err := state.UpdateField(name, values[0]); err != nil {
				s.logger.Debug("skipping posted field", zap.String("field", name), zap.Error(err))
			}
		}
		notice := state.Submit()
		if wantsJSON(r) {
			s.writeJSON(w, http.StatusOK, notice)
			return
		}
		s.renderAnalyzer(w, r, state, &notice)
	default:
		methodNotAllowedWith(w, http.MethodGet, http.MethodHead, http.MethodPost)
	}
}

func (s *Server) renderAnalyzer(w http.ResponseWriter, r *http.Request, state *analyzer.FormState, notice *analyzer.Notification) {
	formHTML, err := s.generator.Render(r.Context(), s.form, "", render.RenderOptions{
		Values: state.Values(),
		Method: http.MethodPost,
		Action: analyzer.Endpoint,
	})
	if err != nil {
		s.logger.Error("render analyzer form", zap.Error(err))
		http.Error(w, "failed to render form", http.StatusInternalServerError)
		return
	}
	s.renderPage(w, r, http.StatusOK, "analyzer", pageData{
		Page:         pageInfo{Name: "analyzer", Title: "Analyzer", Path: analyzer.Endpoint},
		Content:      s.content.Analyzer,
		Form:         string(formHTML),
		Notification: notice,
	})
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	data.Nav = navigation.Links(s.routes, r.URL.Path)

	var buf bytes.Buffer
	if err := s.pages.Execute(&buf, name, data); err != nil {
		s.logger.Error("render page", zap.String("page", name), zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn("write response", zap.String("page", name), zap.Error(err))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("write json response", zap.Error(err))
	}
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	methodNotAllowedWith(w, http.MethodGet, http.MethodHead)
	return false
}

func methodNotAllowedWith(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

func wantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == "application/json" {
			return true
		}
	}
	return false
}
