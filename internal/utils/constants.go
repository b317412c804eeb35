package utils

const (
	OrganizationName = "Gravity"

	CORSLowSecurityAllowedOriginLocalhost = "http://localhost:*"

	// RuntimeModeProduction is the NODE_ENV value of production deployments.
	RuntimeModeProduction = "production"
)
