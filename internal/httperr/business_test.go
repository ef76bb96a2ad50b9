package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBusinessErrorHelpers(t *testing.T) {
	err := ErrValidation("invalid_rating")

	if !IsBusiness(err, "invalid_rating") {
		t.Errorf("IsBusiness should match the code")
	}
	if IsBusiness(err, "other_code") {
		t.Errorf("IsBusiness must not match a different code")
	}
	if !IsKind(err, KindValidation) {
		t.Errorf("IsKind should match the kind")
	}
	if IsKind(err, KindConflict) {
		t.Errorf("IsKind must not match a different kind")
	}

	// Wrapped errors still unwrap to the business error.
	wrapped := fmt.Errorf("save review: %w", err)
	if !IsBusiness(wrapped, "invalid_rating") {
		t.Errorf("IsBusiness must see through wrapping")
	}
}

func TestWriteBusinessStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", ErrValidation("invalid_status"), http.StatusBadRequest, "invalid_status"},
		{"not found", ErrNotFound("booking_not_found"), http.StatusNotFound, "booking_not_found"},
		{"conflict", ErrConflict("review_already_exists"), http.StatusConflict, "review_already_exists"},
		{"fatal", ErrFatal("booking_total_missing"), http.StatusInternalServerError, "booking_total_missing"},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			WriteBusiness(c, tc.err)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}

			var body HTTPError
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if body.Code != tc.wantCode {
				t.Fatalf("error code = %q, want %q", body.Code, tc.wantCode)
			}
		})
	}
}
