package schedule

// Principal is the authenticated actor, threaded explicitly into every
// operation. Role and ownership checks happen at the edge; the core
// trusts what it receives.
type Principal struct {
	UserID uint
	Role   string
}
