package errors

// ErrorCode represents a unique error identifier
type ErrorCode int

// Error code ranges allocation:
// 10000-10999: System & Common errors
// 12000-12499: Problem catalog & upstream source errors
// 12500-12999: Sheet errors
// 15000-15999: AI assist errors

const (
	// ========== System & Common Errors (10000-10999) ==========

	// Success
	Success ErrorCode = 10000

	// Generic errors (10000-10099)
	InternalServerError ErrorCode = 10001
	InvalidParams       ErrorCode = 10002
	NotFound            ErrorCode = 10003
	TooManyRequests     ErrorCode = 10006
	ServiceUnavailable  ErrorCode = 10007
	Timeout             ErrorCode = 10008

	// Database errors (10100-10199)
	DatabaseError       ErrorCode = 10100
	RecordNotFound      ErrorCode = 10101
	RecordAlreadyExists ErrorCode = 10102

	// Cache errors (10200-10299)
	CacheError ErrorCode = 10200
	CacheMiss  ErrorCode = 10201

	// Validation errors (10300-10399)
	ValidationFailed   ErrorCode = 10300
	InvalidValue       ErrorCode = 10302
	RequiredFieldEmpty ErrorCode = 10303

	// ========== Problem Catalog Errors (12000-12499) ==========

	// Problem queries (12000-12099)
	ProblemNotFound    ErrorCode = 12000
	ProblemFetchFailed ErrorCode = 12001
	InvalidRatingRange ErrorCode = 12002
	InvalidDifficulty  ErrorCode = 12003

	// Upstream sources (12100-12199)
	SourceUnavailable  ErrorCode = 12100
	SourceBadResponse  ErrorCode = 12101
	ContestFetchFailed ErrorCode = 12102

	// ========== Sheet Errors (12500-12999) ==========

	SheetNotFound   ErrorCode = 12500
	SheetSeedFailed ErrorCode = 12501

	// ========== AI Assist Errors (15000-15999) ==========

	AssistNotConfigured    ErrorCode = 15000
	AssistGenerationFailed ErrorCode = 15001
	LanguageNotSupported   ErrorCode = 15002
)

// errorMessages maps error codes to their default English messages
var errorMessages = map[ErrorCode]string{
	// System & Common
	Success:             "Success",
	InternalServerError: "Internal server error",
	InvalidParams:       "Invalid parameters",
	NotFound:            "Resource not found",
	TooManyRequests:     "Too many requests, please try again later",
	ServiceUnavailable:  "Service temporarily unavailable",
	Timeout:             "Request timeout",

	// Database
	DatabaseError:       "Database operation failed",
	RecordNotFound:      "Record not found in database",
	RecordAlreadyExists: "Record already exists",

	// Cache
	CacheError: "Cache operation failed",
	CacheMiss:  "Cache miss",

	// Validation
	ValidationFailed:   "Validation failed",
	InvalidValue:       "Invalid value",
	RequiredFieldEmpty: "Required field is empty",

	// Problem catalog
	ProblemNotFound:    "Problem not found",
	ProblemFetchFailed: "Failed to fetch problems",
	InvalidRatingRange: "Invalid rating range",
	InvalidDifficulty:  "Invalid difficulty",

	// Upstream sources
	SourceUnavailable:  "Upstream source unavailable",
	SourceBadResponse:  "Upstream source returned an unexpected response",
	ContestFetchFailed: "Failed to fetch contests",

	// Sheets
	SheetNotFound:   "Sheet not found",
	SheetSeedFailed: "Failed to seed sheet data",

	// AI assist
	AssistNotConfigured:    "AI assist is not configured",
	AssistGenerationFailed: "AI error",
	LanguageNotSupported:   "Language must be one of c, cpp, java",
}

// Message returns the default message for the error code
func (c ErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}

// HTTPStatus returns the recommended HTTP status code for the error code
func (c ErrorCode) HTTPStatus() int {
	switch {
	case c == Success:
		return 200
	case c == NotFound, c == ProblemNotFound, c == SheetNotFound, c == RecordNotFound:
		return 404
	case c == TooManyRequests:
		return 429
	case c == ServiceUnavailable, c == SourceUnavailable:
		return 503
	case c >= 10300 && c < 10400: // Validation errors
		return 400
	case c == InvalidParams, c == InvalidRatingRange, c == InvalidDifficulty, c == LanguageNotSupported:
		return 400
	default:
		return 500
	}
}
