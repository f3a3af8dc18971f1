package auth

// PartitionPolicy decides whether a token principal may touch a given
// resource id. Policies are pure: no lookups, no side effects.
type PartitionPolicy func(p TokenPrincipal, resourceID int64) bool

// ParityPartition splits the athlete collection between two fixed
// non-admin accounts: user id 1 owns odd athlete ids, user id 2 owns
// even ones. Admins see everything; every other account is denied.
// This is a two-user demo rule, not a scalable multi-tenant pattern —
// replace the policy, not the gate, if the rule changes.
func ParityPartition(p TokenPrincipal, resourceID int64) bool {
	if p.IsAdmin() {
		return true
	}

	switch p.UserID {
	case 1:
		return resourceID%2 == 1
	case 2:
		return resourceID%2 == 0
	default:
		return false
	}
}
