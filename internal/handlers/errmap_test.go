package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lemonscar/detailing-api/internal/httperr"
)

func callWriteError(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	writeError(c, err)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec.Code, body
}

func TestWriteErrorKnownBusinessCode(t *testing.T) {
	status, body := callWriteError(t, httperr.ErrBusiness("invalid_time_slot"))

	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["error_code"] != "invalid_time_slot" {
		t.Fatalf("unexpected code: %s", body["error_code"])
	}
	if body["message"] != "Horário indisponível." {
		t.Fatalf("unexpected message: %s", body["message"])
	}
}

func TestWriteErrorNotFoundCodes(t *testing.T) {
	status, _ := callWriteError(t, httperr.ErrBusiness("booking_not_found"))
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestWriteErrorInvalidStateIsConflict(t *testing.T) {
	status, _ := callWriteError(t, httperr.ErrBusiness("invalid_state"))
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
}

func TestWriteErrorUnknownBusinessCodeIsBadRequest(t *testing.T) {
	status, body := callWriteError(t, httperr.ErrBusiness("something_new"))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["error_code"] != "something_new" {
		t.Fatalf("the code must pass through: %s", body["error_code"])
	}
}

func TestWriteErrorOpaqueErrorIsInternal(t *testing.T) {
	status, body := callWriteError(t, errors.New("db exploded"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body["message"] != "Ocorreu um erro. Tente novamente." {
		t.Fatalf("internal errors never leak details: %s", body["message"])
	}
}
