package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := stderrs.New("boom")
	err := Wrap(cause, ErrorCodeIO, "stat failed")
	if err.Error() != "stat failed: boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !stderrs.Is(err, cause) {
		t.Fatalf("wrapped cause not reachable via errors.Is")
	}
	if Root(err) != cause {
		t.Fatalf("Root did not return deepest cause")
	}
}

func TestCodeOfAndIsCode(t *testing.T) {
	err := NotFoundf("diff for pr %d vanished", 42)
	if CodeOf(err) != ErrorCodeNotFound {
		t.Fatalf("CodeOf = %v, want NotFound", CodeOf(err))
	}
	if !IsCode(err, ErrorCodeNotFound) {
		t.Fatalf("IsCode(NotFound) = false")
	}
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatalf("foreign error should map to Unknown")
	}

	// code survives an fmt wrap
	wrapped := fmt.Errorf("outer: %w", err)
	if CodeOf(wrapped) != ErrorCodeNotFound {
		t.Fatalf("CodeOf through fmt wrap = %v", CodeOf(wrapped))
	}
}

func TestWithFieldAndOp(t *testing.T) {
	err := Validationf("missing diff_url")
	err = WithField(err, "diff_url")
	err = WithOp(err, "prsplit.decode")

	e, ok := As(err)
	if !ok {
		t.Fatalf("As failed")
	}
	if e.Field() != "diff_url" || e.Op() != "prsplit.decode" {
		t.Fatalf("field/op = %q/%q", e.Field(), e.Op())
	}

	// foreign errors pass through unchanged
	foreign := stderrs.New("x")
	if WithField(foreign, "f") != foreign {
		t.Fatalf("WithField should not touch foreign errors")
	}
}

func TestWrapIf(t *testing.T) {
	if WrapIf(nil, ErrorCodeIO, "nope") != nil {
		t.Fatalf("WrapIf(nil) should be nil")
	}
	if WrapIf(stderrs.New("x"), ErrorCodeIO, "io") == nil {
		t.Fatalf("WrapIf(non-nil) should wrap")
	}
}

func TestFromHTTPStatus(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorCode
	}{
		{http.StatusNotFound, ErrorCodeNotFound},
		{http.StatusGone, ErrorCodeNotFound},
		{http.StatusTooManyRequests, ErrorCodeTooManyRequests},
		{http.StatusForbidden, ErrorCodeTooManyRequests},
		{http.StatusBadGateway, ErrorCodeUnavailable},
		{http.StatusServiceUnavailable, ErrorCodeUnavailable},
		{http.StatusGatewayTimeout, ErrorCodeUnavailable},
		{http.StatusInternalServerError, ErrorCodeUnavailable},
		{http.StatusUnprocessableEntity, ErrorCodeInvalidArgument},
		{http.StatusTeapot, ErrorCodeInvalidArgument},
		{0, ErrorCodeUnknown},
	}
	for _, c := range cases {
		if got := FromHTTPStatus(c.status); got != c.want {
			t.Fatalf("FromHTTPStatus(%d) = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(Unavailablef("upstream 503")) {
		t.Fatalf("Unavailable should be retryable")
	}
	if !Retryable(TooManyRequestsf("rate limited")) {
		t.Fatalf("TooManyRequests should be retryable")
	}
	if Retryable(NotFoundf("gone")) {
		t.Fatalf("NotFound should not be retryable")
	}
	if Retryable(stderrs.New("plain")) {
		t.Fatalf("foreign errors should not be retryable")
	}
}
