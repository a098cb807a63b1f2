package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"vocab_mastery/internal/model"
	"vocab_mastery/internal/service"
	"vocab_mastery/internal/webutil"
)

// PracticeHandler は練習セッションと回答記録のエンドポイント
type PracticeHandler struct {
	sessionService service.SessionService
	attemptService service.AttemptService
	logger         *slog.Logger
}

func NewPracticeHandler(sessionService service.SessionService, attemptService service.AttemptService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{
		sessionService: sessionService,
		attemptService: attemptService,
		logger:         logger,
	}
}

// StartSession: POST /practice/sessions
func (h *PracticeHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartSession"))

	studentID, ok := studentFromRequest(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	var req model.StartSessionRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid start session request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	session, err := h.sessionService.StartSession(r.Context(), studentID, req.LessonID, model.PracticeMode(strings.ToUpper(req.Mode)))
	if err != nil {
		logger.Error("Error starting practice session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, model.StartSessionResponse{SessionID: session.SessionID}, logger)
}

// FinishSession: POST /practice/sessions/{session_id}/finish
func (h *PracticeHandler) FinishSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "FinishSession"))

	studentID, ok := studentFromRequest(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()), slog.String("session_id", sessionID.String()))

	var req model.FinishSessionRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid finish session request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	session, err := h.sessionService.FinishSession(r.Context(), studentID, sessionID, *req.DurationSec)
	if err != nil {
		logger.Error("Error finishing practice session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, session, logger)
}

// RecordAttempt: POST /practice/sessions/{session_id}/attempts
func (h *PracticeHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RecordAttempt"))

	studentID, ok := studentFromRequest(w, r, logger)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()), slog.String("session_id", sessionID.String()))

	var req model.RecordAttemptRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid attempt request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	in := model.AttemptInput{
		VocabularyID:  req.VocabularyID,
		QuestionType:  model.QuestionType(strings.ToUpper(req.QuestionType)),
		UserAnswer:    req.UserAnswer,
		CorrectAnswer: req.CorrectAnswer,
		IsCorrect:     *req.IsCorrect,
		TimeSpentSec:  *req.TimeSpentSec,
	}
	result, err := h.attemptService.RecordAttempt(r.Context(), studentID, sessionID, in)
	if err != nil {
		logger.Error("Error recording attempt in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}

// RecordFlashcardAction: POST /practice/flashcards
func (h *PracticeHandler) RecordFlashcardAction(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RecordFlashcardAction"))

	studentID, ok := studentFromRequest(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	var req model.FlashcardActionRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid flashcard action request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	grade := model.FlashcardGrade(strings.ToUpper(req.Action))
	result, err := h.attemptService.RecordFlashcardGrading(r.Context(), studentID, req.VocabularyID, req.LessonID, req.SessionID, grade)
	if err != nil {
		logger.Error("Error recording flashcard action in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, result, logger)
}

// RecordVocabSeen: POST /practice/lookups
func (h *PracticeHandler) RecordVocabSeen(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RecordVocabSeen"))

	studentID, ok := studentFromRequest(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	var req model.VocabSeenRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid vocabulary lookup request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.attemptService.RecordLookup(r.Context(), studentID, req.VocabularyID, req.LessonID)
	if err != nil {
		logger.Error("Error recording vocabulary lookup in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
