package api

// Backend routes. The server mounts everything under /api.
const (
	loginRoute       = "/api/auth/login"
	meRoute          = "/api/auth/me"
	emailsRoute      = "/api/emails"
	emailsSyncRoute  = "/api/emails/sync"
	aiProvidersRoute = "/api/config/ai-providers"
	configUsersRoute = "/api/config/users"
)

const requestIDHeader = "X-Request-ID"
