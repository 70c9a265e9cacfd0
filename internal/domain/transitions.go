package domain

// terminalStatuses are request statuses with no outgoing transition other
// than to themselves. The set is also what scopes the duplicate-guard
// uniqueness constraint: a request in any of these states no longer blocks
// a new request for the same (artist, host) pair.
var terminalStatuses = map[RequestStatus]struct{}{
	StatusApproved:  {},
	StatusRejected:  {},
	StatusWithdrawn: {},
	StatusRemoved:   {},
	StatusConverted: {},
}

// requestTransitions maps current status to the statuses each role may move
// to. Statuses absent from the map (the terminal set) admit no transitions.
var requestTransitions = map[RequestStatus]map[ActorRole][]RequestStatus{
	StatusSubmitted: {
		RoleArtist: {StatusWithdrawn},
		RoleHost:   {StatusApproved, StatusRejected},
	},
	StatusWaitlisted: {
		RoleArtist: {StatusRemoved},
		RoleHost:   {StatusInvitedToApply, StatusRemoved, StatusRejected, StatusConverted},
	},
	StatusInvitedToApply: {
		RoleArtist: {StatusWithdrawn},
		RoleHost:   {StatusRejected, StatusRemoved},
	},
}

// IsTerminal reports whether s admits no further transitions.
func IsTerminal(s RequestStatus) bool {
	_, ok := terminalStatuses[s]
	return ok
}

// TerminalStatuses returns the terminal status set. The slice is a copy.
func TerminalStatuses() []RequestStatus {
	out := make([]RequestStatus, 0, len(terminalStatuses))
	for s := range terminalStatuses {
		out = append(out, s)
	}
	return out
}

// ValidRequestStatus reports whether s is a known request status.
func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case StatusSubmitted, StatusApproved, StatusRejected, StatusWithdrawn,
		StatusWaitlisted, StatusInvitedToApply, StatusRemoved, StatusConverted:
		return true
	}
	return false
}

// AllowedTransitions returns the statuses the role may move to from current.
// The current status itself is always included: a same-status transition is
// a legal no-op for either party.
func AllowedTransitions(current RequestStatus, role ActorRole) []RequestStatus {
	allowed := []RequestStatus{current}
	if byRole, ok := requestTransitions[current]; ok {
		allowed = append(allowed, byRole[role]...)
	}
	return allowed
}

// IsTransitionAllowed reports whether role may move a request from current
// to next.
func IsTransitionAllowed(current, next RequestStatus, role ActorRole) bool {
	if current == next {
		return true
	}
	byRole, ok := requestTransitions[current]
	if !ok {
		return false
	}
	for _, s := range byRole[role] {
		if s == next {
			return true
		}
	}
	return false
}
