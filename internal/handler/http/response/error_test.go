package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/approval"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/cutoff"
	"github.com/cmlabs-hris/hris-dtr-go/internal/domain/dtr"
	"github.com/cmlabs-hris/hris-dtr-go/internal/pkg/validator"
)

func TestHandleError_StatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", validator.ValidationErrors{{Field: "decision", Message: "decision is required"}}, http.StatusUnprocessableEntity},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"admin required", auth.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{"other user", auth.ErrForbidden, http.StatusForbidden},
		{"cutoff missing", cutoff.ErrCutoffNotFound, http.StatusNotFound},
		{"no cutoffs", cutoff.ErrNoCutoffPeriods, http.StatusNotFound},
		{"no saved dtr", dtr.ErrSavedDTRNotFound, http.StatusNotFound},
		{"superseded", dtr.ErrSupersededRun, http.StatusConflict},
		{"user required", dtr.ErrUserIDRequired, http.StatusBadRequest},
		{"request missing", approval.ErrRequestNotFound, http.StatusNotFound},
		{"already reviewed", approval.ErrRequestAlreadyReviewed, http.StatusConflict},
		{"unknown kind", approval.ErrUnknownKind, http.StatusBadRequest},
		{"wrapped", fmt.Errorf("failed to get cutoff: %w", cutoff.ErrCutoffNotFound), http.StatusNotFound},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.code, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Successful)
			require.NotNil(t, body.Error)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{{Field: "kind", Message: "kind is invalid"}})

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, map[string]string{"kind": "kind is invalid"}, body.Error.Details)
}

func TestSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]int{"count": 2})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"successful":true,"data":{"count":2}}`, rec.Body.String())
}
