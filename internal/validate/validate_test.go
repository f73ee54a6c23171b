package validate

import (
	"strings"
	"testing"

	"github.com/courier-org/courier-cli/internal/api"
)

func TestStruct_ValidPayload(t *testing.T) {
	req := api.PriceRequest{Weight: 2.5, PackageType: api.TypeExpress}
	if err := Struct(req); err != nil {
		t.Errorf("expected valid payload, got %v", err)
	}
}

func TestStruct_ReportsEachField(t *testing.T) {
	req := api.RegisterRequest{
		Name:     "",
		Email:    "not-an-email",
		Password: "short",
		Phone:    "",
	}

	err := Struct(req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{
		"name is required",
		"email must be a valid email address",
		"password must be at least 8 characters",
		"phone is required",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error missing %q:\n%s", want, msg)
		}
	}
}

func TestStruct_RejectsUnknownPackageType(t *testing.T) {
	req := api.PriceRequest{Weight: 1, PackageType: "CARRIER_PIGEON"}

	err := Struct(req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "packagetype must be one of") {
		t.Errorf("unexpected message: %v", err)
	}
}
