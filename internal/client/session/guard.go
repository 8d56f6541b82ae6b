package session

// Decision is the guard's verdict for rendering a protected view.
type Decision int

const (
	// DecisionWait defers rendering while the session probe is still in
	// flight, preventing a false redirect to login at startup.
	DecisionWait Decision = iota

	// DecisionAllow renders the protected content.
	DecisionAllow

	// DecisionRedirectLogin sends the user to the login entry point.
	DecisionRedirectLogin
)

func (d Decision) String() string {
	switch d {
	case DecisionWait:
		return "wait"
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-login"
	default:
		return "unknown"
	}
}

// Decide is the route guard: a pure function over the session snapshot. It
// owns no state of its own.
func Decide(st State) Decision {
	if st.IsLoading {
		return DecisionWait
	}
	if st.IsAuthenticated {
		return DecisionAllow
	}
	return DecisionRedirectLogin
}
