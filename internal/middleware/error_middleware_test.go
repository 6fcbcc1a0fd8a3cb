package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/classtap/classtap/internal/app/models/dto"
	"github.com/classtap/classtap/internal/pkg/apperrors"
)

func TestHandleAPIError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"unknown card", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeStudentNotFound},
		{"missing course", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"missing schedule item", apperrors.ErrScheduleItemNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"validation", apperrors.NewValidationError("nfcId is required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"conflict", apperrors.ErrAlreadyEnrolled, http.StatusConflict, dto.ErrorCodeResourceConflict},
		{"store down", apperrors.NewStoreUnavailableError(nil), http.StatusServiceUnavailable, dto.ErrorCodeStoreUnavailable},
		{"unexpected", http.ErrBodyNotAllowed, http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			HandleAPIError(c, tc.err)

			if recorder.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tc.wantStatus)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response is not valid JSON: %v", err)
			}
			if resp.Error == nil {
				t.Fatal("response must carry an error detail")
			}
			if resp.Error.Code != tc.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tc.wantCode)
			}
			if resp.Success {
				t.Error("error responses must not report success")
			}
		})
	}
}
