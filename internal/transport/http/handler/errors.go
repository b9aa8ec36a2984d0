package handler

const (
	errInternalServer     = "Internal server error"
	errInvalidBody        = "Invalid request data"
	errBookNotFound       = "Book not found"
	errMemberNotFound     = "Member not found"
	errConstraint         = "Database constraint violation"
	errInvalidCredentials = "Invalid username or password"
	errDuplicateUsername  = "Username already exists"
	errCredentialsMissing = "Username and password are required"
)
