package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"studio-site/internal/domain"
	"studio-site/internal/services"
	"studio-site/internal/view"

	"github.com/google/uuid"
)

const (
	sessionCookieName = "studio_intake"
	startProjectPath  = "/start-project"
)

// IntakeHandler serves the start-project form. Each browser is identified
// by a random session cookie keying its persisted progress.
type IntakeHandler struct {
	intake       *services.IntakeService
	sanitizer    *TextSanitizer
	logger       domain.Logger
	secureCookie bool
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(intake *services.IntakeService, sanitizer *TextSanitizer, secureCookie bool, logger domain.Logger) *IntakeHandler {
	return &IntakeHandler{
		intake:       intake,
		sanitizer:    sanitizer,
		logger:       logger,
		secureCookie: secureCookie,
	}
}

// Show renders the form at the step implied by saved progress
func (h *IntakeHandler) Show(w http.ResponseWriter, r *http.Request) {
	form := h.intake.Load(r.Context(), h.session(w, r))
	h.renderForm(w, http.StatusOK, form, "")
}

// SelectVibe handles step one
func (h *IntakeHandler) SelectVibe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	form := h.intake.Load(ctx, h.session(w, r))

	if err := r.ParseForm(); err != nil {
		h.renderForm(w, http.StatusBadRequest, form, MSG_FORM_ERROR)
		return
	}

	err := h.intake.SelectVibe(ctx, form, domain.Vibe(r.PostForm.Get("vibe")))
	switch {
	case errors.Is(err, domain.ErrInvalidVibe):
		h.logger.WithError(err).Debug("Rejected vibe selection")
		h.renderForm(w, http.StatusUnprocessableEntity, form, MSG_INVALID_VIBE)
		return
	case err != nil:
		h.logger.WithError(err).Warn("Vibe selection not allowed")
	}

	http.Redirect(w, r, startProjectPath, http.StatusSeeOther)
}

// Details handles step two: back, save or submit
func (h *IntakeHandler) Details(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	form := h.intake.Load(ctx, h.session(w, r))

	if err := r.ParseForm(); err != nil {
		h.renderForm(w, http.StatusBadRequest, form, MSG_FORM_ERROR)
		return
	}

	if form.Step != domain.StepDetails {
		http.Redirect(w, r, startProjectPath, http.StatusSeeOther)
		return
	}

	// the brief is free prose and may mention markup; the views escape it
	details := domain.IntakeDetails{
		Name:    h.sanitizer.Clean(r.PostForm.Get("name")),
		Email:   h.sanitizer.Clean(r.PostForm.Get("email")),
		Company: h.sanitizer.Clean(r.PostForm.Get("company")),
		Brief:   strings.TrimSpace(r.PostForm.Get("brief")),
	}
	if err := h.intake.UpdateDetails(ctx, form, details); err != nil {
		h.logger.WithError(err).Warn("Failed to update intake details")
		http.Redirect(w, r, startProjectPath, http.StatusSeeOther)
		return
	}

	switch r.PostForm.Get("action") {
	case view.ActionBack:
		if err := h.intake.Back(ctx, form); err != nil {
			h.logger.WithError(err).Warn("Failed to go back")
		}
		// saved progress still carries the vibe, so a reload would land on details again
		h.renderForm(w, http.StatusOK, form, "")
	case view.ActionSave:
		http.Redirect(w, r, startProjectPath, http.StatusSeeOther)
	default:
		h.submit(w, r, form)
	}
}

func (h *IntakeHandler) submit(w http.ResponseWriter, r *http.Request, form *domain.IntakeForm) {
	err := h.intake.Submit(r.Context(), form)
	switch {
	case err == nil:
		// progress is cleared on success, render confirmation instead of redirecting
		h.renderForm(w, http.StatusOK, form, "")
	case errors.Is(err, domain.ErrIncompleteDetails):
		h.renderForm(w, http.StatusUnprocessableEntity, form, MSG_INCOMPLETE_DETAILS)
	case errors.Is(err, domain.ErrSubmissionInProgress):
		h.renderForm(w, http.StatusConflict, form, MSG_SUBMISSION_IN_FLIGHT)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.WithField("session", form.SessionID).Debug("Visitor left before submission finished")
	default:
		h.logger.WithError(err).WithField("session", form.SessionID).Warn("Submission rejected")
		http.Redirect(w, r, startProjectPath, http.StatusSeeOther)
	}
}

// Reset starts the form over
func (h *IntakeHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	form := h.intake.Load(ctx, h.session(w, r))
	h.intake.Reset(ctx, form)

	http.Redirect(w, r, startProjectPath, http.StatusSeeOther)
}

func (h *IntakeHandler) renderForm(w http.ResponseWriter, status int, form *domain.IntakeForm, msg string) {
	render(w, h.logger, status, view.StartProjectPage(view.IntakeProps{
		Form:      form,
		CanSubmit: services.DetailsComplete(form.IntakeDetails),
		Error:     msg,
	}))
}

// session returns the visitor's session id, issuing a new cookie when missing or malformed
func (h *IntakeHandler) session(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     startProjectPath,
		MaxAge:   int(TIMEOUT_SESSION_COOKIE.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
