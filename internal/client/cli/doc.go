// Package cli implements the interactive TechKatta shell: a small REPL
// over the session store. Logged-out users can register and log in;
// logged-in users get the dashboard, whoami, and logout. The dashboard is
// gated by the session guard, mirroring the protected route of the web
// client.
package cli
