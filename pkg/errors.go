package pkg

// AppError is the application-level error envelope mapped by handlers onto
// HTTP responses. Code is a stable machine-readable identifier; Message is
// safe to show to callers; Err keeps the underlying cause for logs only.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    any
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails attaches a serializable detail payload (e.g. field-level
// validation errors, blocker counts) to the HTTP representation.
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body returned to callers. The underlying cause is
// deliberately not serialized.

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
