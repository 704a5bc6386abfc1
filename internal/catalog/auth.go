package catalog

// AuthShims covers the auth family (spec §6: /auth, /auth/refresh). Login
// and refresh are handled by internal/auth.Session/taigaclient directly at
// startup and on token expiry — they are not exposed as callable tools,
// since a running server always holds a valid session. The auth family's
// only tool surface is read-only status, covered by the management tool
// taiga_auth_status (internal/catalog/management.go).
func AuthShims() []Shim {
	return nil
}
