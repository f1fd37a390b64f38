package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromResolvesTaxonomy(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not_found", err: NotFound(errors.New("item missing")), wantStatus: http.StatusNotFound, wantCode: CodeNotFound},
		{name: "conflict", err: Conflict(errors.New("already rated")), wantStatus: http.StatusConflict, wantCode: CodeConflict},
		{name: "invalid_argument", err: InvalidArgument(errors.New("bad grade")), wantStatus: http.StatusBadRequest, wantCode: CodeInvalidArgument},
		{name: "job_failed", err: JobFailure(3, errors.New("exit 3")), wantStatus: http.StatusInternalServerError, wantCode: CodeJobFailed},
		{name: "job_interrupted", err: JobInterrupted(errors.New("cancelled")), wantStatus: http.StatusInternalServerError, wantCode: CodeJobInterrupted},
		{name: "job_execution", err: JobExecutionError(errors.New("no binary")), wantStatus: http.StatusInternalServerError, wantCode: CodeJobExecution},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: CodeInternal},
		{name: "wrapped", err: fmt.Errorf("outer: %w", NotFound(errors.New("inner"))), wantStatus: http.StatusNotFound, wantCode: CodeNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := From(tc.err)
			if got.Status != tc.wantStatus {
				t.Fatalf("From(%v).Status=%d, want %d", tc.err, got.Status, tc.wantStatus)
			}
			if got.Code != tc.wantCode {
				t.Fatalf("From(%v).Code=%q, want %q", tc.err, got.Code, tc.wantCode)
			}
		})
	}
}

func TestJobFailureCarriesExitCode(t *testing.T) {
	err := JobFailure(42, errors.New("reco job failed with exit code 42"))
	got := From(fmt.Errorf("recompute: %w", err))
	if got.ExitCode != 42 {
		t.Fatalf("ExitCode=%d, want 42", got.ExitCode)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	if msg := (&Error{Err: errors.New("detail")}).Error(); msg != "detail" {
		t.Fatalf("Error()=%q, want %q", msg, "detail")
	}
	if msg := (&Error{Code: CodeConflict}).Error(); msg != CodeConflict {
		t.Fatalf("Error()=%q, want %q", msg, CodeConflict)
	}
	if msg := (&Error{Status: 404}).Error(); msg != "api error (404)" {
		t.Fatalf("Error()=%q, want %q", msg, "api error (404)")
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Conflict(errors.New("dup")))
	if !IsCode(err, CodeConflict) {
		t.Fatalf("IsCode should match wrapped conflict")
	}
	if IsCode(err, CodeNotFound) {
		t.Fatalf("IsCode matched wrong code")
	}
	if IsCode(errors.New("plain"), CodeConflict) {
		t.Fatalf("IsCode matched plain error")
	}
}
