package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"soapbox/internal/delivery/http/validator"
	domainerrors "soapbox/internal/domain/errors"
	"soapbox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVoteUsecase scripts the outcome of Apply per test.
type stubVoteUsecase struct {
	output *usecase.ApplyVoteOutput
	err    error
}

func (s *stubVoteUsecase) Apply(_ context.Context, _ int64, _ *usecase.ApplyVoteInput) (*usecase.ApplyVoteOutput, error) {
	return s.output, s.err
}

func (s *stubVoteUsecase) ListForUser(_ context.Context, userID int64) ([]*usecase.VoteOutput, error) {
	return []*usecase.VoteOutput{{UserID: userID, PostID: 10}}, s.err
}

func applyVoteRequest(t *testing.T, uc usecase.VoteUsecase, body string, userID any) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/votes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("userID", userID)
	}

	h := NewVoteHandler(uc, newDiscardLogger())

	return rec, h.Apply(c)
}

func TestVoteHandler_Apply_CastAnswers201(t *testing.T) {
	uc := &stubVoteUsecase{output: &usecase.ApplyVoteOutput{Message: "Vote added successfully", Added: true}}

	rec, err := applyVoteRequest(t, uc, `{"post_id": 10, "dir": 1}`, int64(2))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Vote added successfully", body["message"])
}

func TestVoteHandler_Apply_RetractAnswers200(t *testing.T) {
	uc := &stubVoteUsecase{output: &usecase.ApplyVoteOutput{Message: "Vote removed successfully", Added: false}}

	rec, err := applyVoteRequest(t, uc, `{"post_id": 10, "dir": 0}`, int64(2))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVoteHandler_Apply_RejectsBadDirection(t *testing.T) {
	uc := &stubVoteUsecase{output: &usecase.ApplyVoteOutput{}}

	// dir outside {0, 1} never reaches the usecase.
	_, err := applyVoteRequest(t, uc, `{"post_id": 10, "dir": 2}`, int64(2))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestVoteHandler_Apply_MissingIdentity(t *testing.T) {
	uc := &stubVoteUsecase{output: &usecase.ApplyVoteOutput{}}

	_, err := applyVoteRequest(t, uc, `{"post_id": 10, "dir": 1}`, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
