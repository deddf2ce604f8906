package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/draft-cli/internal/schema"
)

// previewState is the response body for every session endpoint: the current
// document text plus the per-question visibility flags the client uses to
// show and hide controls.
type previewState struct {
	SessionID  string          `json:"session_id"`
	Title      string          `json:"title"`
	Document   string          `json:"document"`
	Visibility map[string]bool `json:"visibility"`
}

// answerPatch mutates one answer. Value is typed by the question: an option
// id for single choice, an option id list for multi choice, free text
// otherwise. A null value clears the stored answer.
type answerPatch struct {
	ID    string          `json:"id"`
	Value json.RawMessage `json:"value"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.doc)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	id, sess := s.newSession()
	zap.L().Info("server: session created", zap.String("session_id", id))
	writeJSON(w, http.StatusCreated, s.state(id, sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	sess, ok := s.session(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, s.state(id, sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if !s.dropSession(id) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePatchAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	sess, ok := s.session(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if !sess.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, "render rate exceeded")
		return
	}

	var patch answerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if patch.ID == "" {
		writeError(w, http.StatusBadRequest, "question id is required")
		return
	}

	q, ok := s.eng.Question(patch.ID)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown question id")
		return
	}

	sess.mu.Lock()
	err := applyPatch(sess, q, patch.Value)
	sess.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.state(id, sess))
}

func applyPatch(sess *session, q *schema.Question, value json.RawMessage) error {
	if len(value) == 0 || string(value) == "null" {
		sess.ans.Clear(q.ID)
		return nil
	}

	switch q.Type {
	case schema.SingleChoice:
		var opt string
		if err := json.Unmarshal(value, &opt); err != nil {
			return errInvalidValue
		}
		sess.ans.SetOption(q.ID, opt)
	case schema.MultiChoice:
		var opts []string
		if err := json.Unmarshal(value, &opts); err != nil {
			return errInvalidValue
		}
		sess.ans.SetOptions(q.ID, opts)
	case schema.Text:
		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			return errInvalidValue
		}
		sess.ans.SetText(q.ID, text)
	}
	return nil
}

// state runs a full recompute over the session's answers. Every mutation
// funnels through here, so the returned document and visibility always
// reflect the latest state.
func (s *Server) state(id string, sess *session) previewState {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return previewState{
		SessionID:  id,
		Title:      s.doc.Title,
		Document:   s.eng.Render(sess.ans),
		Visibility: s.eng.Visibility(sess.ans),
	}
}

var errInvalidValue = jsonError("value does not match question type")

type jsonError string

func (e jsonError) Error() string { return string(e) }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
