package user

import "testing"

func TestAllows(t *testing.T) {
	cases := []struct {
		name  string
		roles []string
		perm  Permission
		want  bool
	}{
		{"admin has everything", []string{RoleAdmin}, PermManageUsers, true},
		{"editor manages content", []string{RoleEditor}, PermManageContent, true},
		{"editor cannot view submissions", []string{RoleEditor}, PermViewSubmissions, false},
		{"viewer reads submissions", []string{RoleViewer}, PermViewSubmissions, true},
		{"viewer cannot upload", []string{RoleViewer}, PermUploadAssets, false},
		{"union of roles", []string{RoleViewer, RoleEditor}, PermViewSubmissions, true},
		{"unknown role grants nothing", []string{"ghost"}, PermManageContent, false},
		{"no roles", nil, PermManageContent, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allows(tc.roles, tc.perm); got != tc.want {
				t.Fatalf("Allows(%v, %s) = %v, want %v", tc.roles, tc.perm, got, tc.want)
			}
		})
	}
}

func TestRoleListRoundTrip(t *testing.T) {
	u := &User{}
	u.SetRoles([]string{RoleAdmin, RoleEditor})
	got := u.RoleList()
	if len(got) != 2 || got[0] != RoleAdmin || got[1] != RoleEditor {
		t.Fatalf("RoleList() = %v", got)
	}

	u.Roles = " admin , , viewer "
	got = u.RoleList()
	if len(got) != 2 || got[0] != "admin" || got[1] != "viewer" {
		t.Fatalf("RoleList() with messy input = %v", got)
	}
}
