package handler

import (
	"log/slog"
	"net/http"
	"time"

	"wordvault/internal/delivery/http/middleware"
	"wordvault/internal/delivery/http/response"
	"wordvault/internal/domain/entity"
	domainerrors "wordvault/internal/domain/errors"
	"wordvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WordHandler holds dependencies for vocabulary handlers. Every route it
// serves sits behind the auth middleware, so the owner is always known.
type WordHandler struct {
	uc     usecase.WordUsecase
	logger *slog.Logger
}

// NewWordHandler is the constructor for WordHandler, injected by Fx.
func NewWordHandler(uc usecase.WordUsecase, logger *slog.Logger) *WordHandler {
	return &WordHandler{
		uc:     uc,
		logger: logger,
	}
}

type createWordRequest struct {
	Native    string `json:"native" validate:"required"`
	Translate string `json:"translate" validate:"required"`
}

type editWordRequest struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Native    string    `json:"native" validate:"required"`
	Translate string    `json:"translate" validate:"required"`
}

type wordResponse struct {
	ID        string    `json:"id"`
	Native    string    `json:"native"`
	Translate string    `json:"translate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toWordResponse(word *entity.Word) wordResponse {
	return wordResponse{
		ID:        word.ID.String(),
		Native:    word.Native,
		Translate: word.Translate,
		CreatedAt: word.CreatedAt,
		UpdatedAt: word.UpdatedAt,
	}
}

// ownerID resolves the authenticated user set by the auth middleware.
func ownerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated.WithDetails("Missing authenticated user")
	}

	return userID, nil
}

// Create handles adding a word to the caller's vocabulary.
func (h *WordHandler) Create(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var req createWordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid word input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	word, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateWordInput{
		Native:    req.Native,
		Translate: req.Translate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWordResponse(word), "Word created successfully")
}

// List handles returning the caller's full vocabulary.
func (h *WordHandler) List(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	words, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	// An empty vocabulary serializes as [], not null.
	items := make([]wordResponse, 0, len(words))
	for _, word := range words {
		items = append(items, toWordResponse(word))
	}

	return response.Success(c, http.StatusOK, items, "Words retrieved successfully")
}

// Edit handles updating one of the caller's words.
func (h *WordHandler) Edit(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var req editWordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid word input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	word, err := h.uc.Edit(c.Request().Context(), userID, &usecase.EditWordInput{
		ID:        req.ID,
		Native:    req.Native,
		Translate: req.Translate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWordResponse(word), "Word updated successfully")
}

// Delete handles removing one of the caller's words. The target is addressed
// by the id query parameter; success returns an empty 204.
func (h *WordHandler) Delete(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id query parameter must be a valid UUID")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
