package domain

// Action is a user-visible capability gated by role.
type Action string

const (
	ActionViewFeed       Action = "view_feed"
	ActionCreatePost     Action = "create_post"
	ActionEditPost       Action = "edit_post"
	ActionDeletePost     Action = "delete_post"
	ActionManageUsers    Action = "manage_users"
	ActionChangeUserRole Action = "change_user_role"
)

// policy is the single authorization table for the whole client. Screens
// must consult Can instead of re-deriving role checks locally.
var policy = map[Role]map[Action]struct{}{
	RoleStudent: {
		ActionViewFeed: {},
	},
	RoleTeacher: {
		ActionViewFeed:       {},
		ActionCreatePost:     {},
		ActionEditPost:       {},
		ActionDeletePost:     {},
		ActionManageUsers:    {},
		ActionChangeUserRole: {},
	},
}

// Can reports whether a role is allowed to perform an action. Roles
// outside the canonical enumeration are denied everything, view_feed
// included.
func Can(role Role, action Action) bool {
	allowed, ok := policy[ParseRole(string(role))]
	if !ok {
		return false
	}
	_, ok = allowed[action]
	return ok
}
