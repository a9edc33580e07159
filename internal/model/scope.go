package model

// Scope is the authenticated principal a request acts on behalf of.
// It is resolved by the auth middleware before any use case runs and is
// trusted unconditionally below the delivery layer.
type Scope struct {
	UserID string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
