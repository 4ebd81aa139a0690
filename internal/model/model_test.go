package model

import "testing"

func TestIsAdminRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleAdmin, true},
		{RoleUser, false},
		{"", false},
		{"Admin", false},
		{"editor", false},
	}

	for _, tt := range tests {
		if got := IsAdminRole(tt.role); got != tt.want {
			t.Errorf("IsAdminRole(%q) = %v; want %v", tt.role, got, tt.want)
		}
	}
}

func TestUserIsAdmin(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	if !admin.IsAdmin() {
		t.Error("admin user should report IsAdmin")
	}

	user := &User{Role: RoleUser}
	if user.IsAdmin() {
		t.Error("regular user should not report IsAdmin")
	}
}

func TestIsValidService(t *testing.T) {
	for _, s := range Services {
		if !IsValidService(s) {
			t.Errorf("IsValidService(%q) = false; want true", s)
		}
	}

	invalid := []string{"", "Wedding", "catering", "wedding "}
	for _, s := range invalid {
		if IsValidService(s) {
			t.Errorf("IsValidService(%q) = true; want false", s)
		}
	}
}

func TestServicesCount(t *testing.T) {
	if len(Services) != 6 {
		t.Errorf("expected 6 service values, got %d", len(Services))
	}
}
