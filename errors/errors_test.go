package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"context deadline exceeded", context.DeadlineExceeded, true},
		{"context canceled", context.Canceled, true},
		{"invalid option", ErrInvalidOption, false},
		{"resource exhausted", ErrResourceExhausted, false},
		{"timeout in message", fmt.Errorf("operation timeout occurred"), true},
		{"temporary in message", fmt.Errorf("temporary failure"), true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsTransient(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"invalid config", ErrInvalidConfig, true},
		{"missing config", ErrMissingConfig, true},
		{"resource exhausted", ErrResourceExhausted, true},
		{"invalid option", ErrInvalidOption, false},
		{"fatal in message", fmt.Errorf("fatal system error occurred"), true},
		{"panic in message", fmt.Errorf("panic: system failure"), true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"invalid option", ErrInvalidOption, true},
		{"already registered", ErrAlreadyRegistered, true},
		{"resource exhausted", ErrResourceExhausted, false},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil error", nil, ErrorTransient},
		{"deadline exceeded", context.DeadlineExceeded, ErrorTransient},
		{"invalid config", ErrInvalidConfig, ErrorFatal},
		{"already registered", ErrAlreadyRegistered, ErrorInvalid},
		{"unknown error", fmt.Errorf("something odd"), ErrorTransient},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Classify(test.err); got != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, got, test.err)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "Component", "Method", "action") != nil {
		t.Error("wrapping nil should return nil")
	}

	base := errors.New("underlying failure")
	wrapped := Wrap(base, "Registry", "RegisterCounter", "prometheus registration")

	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match underlying error via errors.Is")
	}
	if !strings.Contains(wrapped.Error(), "Registry.RegisterCounter") {
		t.Errorf("expected component.method context in message, got %q", wrapped.Error())
	}
}

func TestWrapClassified(t *testing.T) {
	base := errors.New("underlying failure")

	tests := []struct {
		name     string
		wrap     func(error, string, string, string) error
		expected ErrorClass
	}{
		{"WrapTransient", WrapTransient, ErrorTransient},
		{"WrapInvalid", WrapInvalid, ErrorInvalid},
		{"WrapFatal", WrapFatal, ErrorFatal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.wrap(nil, "C", "M", "a") != nil {
				t.Error("wrapping nil should return nil")
			}

			err := test.wrap(base, "Buffer", "New", "metrics registration")

			var ce *ClassifiedError
			if !errors.As(err, &ce) {
				t.Fatal("expected a ClassifiedError")
			}
			if ce.Class != test.expected {
				t.Errorf("expected class %v, got %v", test.expected, ce.Class)
			}
			if ce.Component != "Buffer" || ce.Operation != "New" {
				t.Errorf("unexpected context: component=%q operation=%q", ce.Component, ce.Operation)
			}
			if !errors.Is(err, base) {
				t.Error("classified error should unwrap to the underlying error")
			}
		})
	}
}
