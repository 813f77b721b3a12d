package dto

// ─── Inputs ──────────────────────────────────────────────────────────────────

// CreateUserInput is what the repository stores. PINHash is already hashed.
type CreateUserInput struct {
	Name    string
	Email   *string
	PINHash string
	Role    string
}

// CreateUserRequest carries a clear PIN; the auth service hashes it.
type CreateUserRequest struct {
	Name  string
	Email *string
	PIN   string
	Role  string
}

// ─── Partial update ──────────────────────────────────────────────────────────

type UserPatch struct {
	Name     *string
	Email    *string
	PINHash  *string
	Role     *string
	IsActive *bool
}

func (p UserPatch) Columns() map[string]interface{} {
	c := columns{}
	c.str("name", p.Name)
	c.nullStr("email", p.Email)
	c.str("pin_hash", p.PINHash)
	c.str("role", p.Role)
	c.flag("is_active", p.IsActive)
	return c
}
