package user

// Permission is a typed capability checked by a single authorization
// function, so every protected route shares one auditable code path.
type Permission string

const (
	PermManageContent   Permission = "content:manage"
	PermViewSubmissions Permission = "submissions:view"
	PermManageUsers     Permission = "users:manage"
	PermUploadAssets    Permission = "uploads:write"
)

// Role names as stored on User.Roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

var rolePermissions = map[string][]Permission{
	RoleAdmin:  {PermManageContent, PermViewSubmissions, PermManageUsers, PermUploadAssets},
	RoleEditor: {PermManageContent, PermUploadAssets},
	RoleViewer: {PermViewSubmissions},
}

// Allows reports whether any of the given roles grants the permission.
func Allows(roles []string, p Permission) bool {
	for _, r := range roles {
		for _, granted := range rolePermissions[r] {
			if granted == p {
				return true
			}
		}
	}
	return false
}
