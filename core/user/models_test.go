package user

import "testing"

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{name: "empty defaults to student", role: "", want: RoleStudent},
		{name: "unknown defaults to student", role: "teacher", want: RoleStudent},
		{name: "lowercase kept", role: "school", want: RoleSchool},
		{name: "mixed case lowered", role: "Admin", want: RoleAdmin},
		{name: "legacy casing lowered", role: "Student", want: RoleStudent},
		{name: "whitespace trimmed", role: "  school ", want: RoleSchool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRole(tt.role); got != tt.want {
				t.Errorf("NormalizeRole(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestSetCheckPassword(t *testing.T) {
	var usr User
	if err := usr.SetPassword("secret1"); err != nil {
		t.Fatalf("SetPassword() failed: %v", err)
	}
	if err := usr.CheckPassword("secret1"); err != nil {
		t.Errorf("CheckPassword() with correct password failed: %v", err)
	}
	if err := usr.CheckPassword("secret2"); err == nil {
		t.Error("CheckPassword() with wrong password did not fail")
	}
}
