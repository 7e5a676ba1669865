package handler

import (
	"log/slog"
	"net/http"

	"soapbox/internal/delivery/http/metrics"
	"soapbox/internal/delivery/http/response"
	"soapbox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VoteHandler holds dependencies for vote-related handlers.
type VoteHandler struct {
	uc     usecase.VoteUsecase
	logger *slog.Logger
}

// NewVoteHandler is the constructor for VoteHandler, injected by Fx.
func NewVoteHandler(uc usecase.VoteUsecase, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Apply toggles the caller's vote on a post. Casting answers 201, retracting
// answers 200; both carry a confirmation message.
func (h *VoteHandler) Apply(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.ApplyVoteInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vote input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Apply(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Added {
		metrics.VotesAppliedTotal.WithLabelValues("cast").Inc()

		return c.JSON(http.StatusCreated, output)
	}
	metrics.VotesAppliedTotal.WithLabelValues("retract").Inc()

	return c.JSON(http.StatusOK, output)
}

// List returns the caller's own votes.
func (h *VoteHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	outputs, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, outputs)
}
