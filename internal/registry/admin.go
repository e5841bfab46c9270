package registry

import "context"

// AdminService layers the privileged mutations on the registry. The admin
// allow-list is the actual security boundary: accounts on it cannot be
// terminated or have their visibility changed by admin operations, no
// matter who asks. That check lives here, not in any UI.
type AdminService struct {
	registry  *Registry
	allowlist map[string]bool
}

func NewAdminService(r *Registry, admins []string) *AdminService {
	allowlist := make(map[string]bool, len(admins))
	for _, slug := range admins {
		allowlist[slug] = true
	}
	return &AdminService{registry: r, allowlist: allowlist}
}

// IsAdmin reports membership in the static allow-list. This is an
// application constant, not derived data.
func (a *AdminService) IsAdmin(slug string) bool {
	return a.allowlist[slug]
}

// ResetPassword is allowed against any account, protected ones included.
func (a *AdminService) ResetPassword(ctx context.Context, slug, newPassword string) error {
	return a.registry.ResetPassword(ctx, slug, newPassword)
}

func (a *AdminService) SetPublished(ctx context.Context, slug string, published bool) error {
	if a.allowlist[slug] {
		return ErrProtected
	}
	return a.registry.SetPublished(ctx, slug, published)
}

func (a *AdminService) Terminate(ctx context.Context, slug string) error {
	if a.allowlist[slug] {
		return ErrProtected
	}
	return a.registry.Delete(ctx, slug)
}
