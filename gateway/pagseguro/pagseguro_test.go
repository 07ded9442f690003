package pagseguro

import (
	"net/http"
	"testing"

	"github.com/syncads/paydetect/gateway"
)

func TestDescriptor(t *testing.T) {
	desc := Descriptor()

	if desc.Slug != "pagseguro" {
		t.Errorf("slug = %q, want pagseguro", desc.Slug)
	}
	if desc.AuthType != gateway.AuthBearer {
		t.Errorf("authType = %q, want bearer", desc.AuthType)
	}
	if len(desc.RequiredFields) != 1 || desc.RequiredFields[0] != gateway.FieldAPIKey {
		t.Errorf("requiredFields = %v, want [apiKey]", desc.RequiredFields)
	}
	if desc.AcceptStatus == nil {
		t.Fatal("pagseguro needs its own status predicate")
	}
}

func TestAcceptStatus(t *testing.T) {
	tests := []struct {
		status int
		accept bool
	}{
		{http.StatusOK, true},
		{http.StatusCreated, true},
		// 400 proves the key was accepted; the probe just lacks charge
		// parameters.
		{http.StatusBadRequest, true},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusNotFound, false},
		{http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		if got := acceptStatus(tt.status); got != tt.accept {
			t.Errorf("acceptStatus(%d) = %v, want %v", tt.status, got, tt.accept)
		}
	}
}

func TestBuildAuth(t *testing.T) {
	header, value := buildAuth(gateway.Credentials{APIKey: "psk"})

	if header != "Authorization" || value != "Bearer psk" {
		t.Errorf("auth = %q %q, want Authorization Bearer psk", header, value)
	}
}
