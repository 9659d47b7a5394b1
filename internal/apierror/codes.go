package apierror

// Error type URIs following the urn:moodstats:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:moodstats:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:moodstats:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:moodstats:error:rate_limit"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:moodstats:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:moodstats:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation = "Validation Error"
	TitleNotFound   = "Resource Not Found"
	TitleRateLimit  = "Rate Limit Exceeded"
	TitleInternal   = "Internal Server Error"
	TitleBadRequest = "Bad Request"
)
