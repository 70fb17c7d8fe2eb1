package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"busreservation/internal/domain"

	"github.com/gin-gonic/gin"
)

func TestRespondDomainErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.ValidationError{Field: "noOfSeats", Msg: "must be positive"}, http.StatusBadRequest, "validation_error"},
		{"not found", domain.NotFoundError{Resource: "schedule"}, http.StatusNotFound, "not_found"},
		{"conflict", domain.ConflictError{Resource: "schedule", Msg: "only 1 seats available"}, http.StatusConflict, "conflict"},
		{"unauthorized", domain.UnauthorizedError{Msg: "not your booking"}, http.StatusForbidden, "unauthorized"},
		{"dependency", domain.DependencyUnavailableError{Dependency: "booking service"}, http.StatusServiceUnavailable, "dependency_unavailable"},
		{"internal", domain.InternalError{Msg: "db exploded"}, http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		r := gin.New()
		r.GET("/boom", func(c *gin.Context) { RespondDomainError(c, tc.err) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		if w.Code != tc.status {
			t.Fatalf("%s: status = %d, want %d", tc.name, w.Code, tc.status)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: bad body: %v", tc.name, err)
		}
		if body["code"] != tc.code {
			t.Fatalf("%s: code = %v, want %s", tc.name, body["code"], tc.code)
		}
		if tc.name == "internal" && body["error"] != "something went wrong" {
			t.Fatalf("internal error leaked detail: %v", body["error"])
		}
	}
}
