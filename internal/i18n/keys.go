package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that could not be decoded.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyServiceUnavailable indicates a backing store is disabled or unreachable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// Optimizer error keys.
const (
	ErrKeyValidationConsumption    = "error.validation.consumption"
	ErrKeyValidationCostParams     = "error.validation.cost_params"
	ErrKeyValidationInitialStock   = "error.validation.initial_stock"
	ErrKeyValidationStep           = "error.validation.step"
	ErrKeyValidationCapacityFactor = "error.validation.capacity_factor"
	ErrKeyValidationAlgorithm      = "error.validation.algorithm"
	ErrKeyValidationDays           = "error.validation.days"
	ErrKeyValidationGenerator      = "error.validation.generator"
	ErrKeyHorizonTooLong           = "error.horizon_too_long"
	ErrKeyCapacityTooLarge         = "error.capacity_too_large"
	ErrKeySolverDivergence         = "error.solver_divergence"
	ErrKeyNoCostProfile            = "error.no_cost_profile"
)

// Success message translation keys.
const (
	// SuccessKeyPlanComputed indicates a plan was produced.
	SuccessKeyPlanComputed = "success.plan_computed"
)
