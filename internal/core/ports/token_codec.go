package ports

// TokenCodec mints and validates signed bearer tokens. Tokens are stateless:
// nothing is stored server-side and validity ends at expiry.
type TokenCodec interface {
	Issue(subject string) (string, error)

	// Validate verifies signature, structure and expiry, returning the
	// subject claim. Failures are domain.ErrTokenExpired or
	// domain.ErrTokenMalformed.
	Validate(token string) (string, error)
}
