package auth

const (
	ContextKeyPrincipal    = "principal"
	ContextKeyKeyPrincipal = "key_principal"

	jsonKeyMessage = "message"

	headerAuthorization = "Authorization"
	headerAPIKey        = "x-api-key"

	queryAPIKey = "api_key"
	paramID     = "id"

	bearerScheme    = "bearer"
	authHeaderParts = 2
)

const (
	msgMissingAuthorization    = "missing authorization token"
	msgMalformedAuthorization  = "malformed authorization header, expected Bearer token"
	msgTokenExpired            = "token expired, please log in again"
	msgTokenInvalid            = "invalid token"
	msgMissingAPIKey           = "missing API key"
	msgInvalidAPIKey           = "invalid or inactive API key"
	msgRoleRequiredFmt         = "access denied: requires %s role"
	msgOwnershipDenied         = "access denied: you may only access your own data"
	msgPartitionDenied         = "access denied to this athlete"
	msgNotAuthenticated        = "user not authenticated"
	msgInvalidResourceID       = "invalid resource id"
	msgAuthorizationCheckFail  = "authorization check failed"
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
)
