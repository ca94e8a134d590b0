package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
		if e.Error() != "Charge not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "CHARGE_NOT_FOUND" || body.Details != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("internal error hides details", func(t *testing.T) {
		cause := errors.New("dynamodb unavailable")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", e.HTTPStatus)
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if e.ToHTTPError().Details != "" {
			t.Fatalf("details must not leak for 5xx")
		}
	})

	t.Run("client error keeps details", func(t *testing.T) {
		e := NewDomainError("CHARGE_NOT_SENDABLE", "Charge cannot be sent", errors.New("already paid"), http.StatusBadRequest)
		if e.ToHTTPError().Details != "already paid" {
			t.Fatalf("expected details, got %+v", e.ToHTTPError())
		}
	})
}
