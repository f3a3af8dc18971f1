package handler

const (
	jsonKeyMessage = "message"

	paramID = "id"

	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgInvalidRequestBody      = "invalid request body"
	msgInvalidAthleteID        = "invalid athlete id"
	msgInvalidUserID           = "invalid user id"
	msgInvalidAPIKeyID         = "invalid API key id"
	msgAthleteNotFound         = "athlete not found"
	msgUserNotFound            = "user not found"
	msgAPIKeyNotFound          = "API key not found"
	msgRegisterFail            = "failed to register user"
	msgLoginFail               = "failed to log in"
	msgInvalidCredentials      = "invalid email or password"
	msgInvalidRole             = "role must be user or admin"
	msgEmptyUpdate             = "update must carry at least one field"
	msgInternalError           = "internal server error"
	msgKeyValueRequired        = "key value is required"
	msgKeyOwnerRequired        = "key owner user id is required"
)
