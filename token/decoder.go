package token

import (
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var MalformedTokenErr = errors.New("malformed token")

// DecodedToken holds the claims extracted from a bearer token. The client
// never verifies the signature - the backend is the authority for that - so
// these claims are only trusted for local bookkeeping such as the expiry check.
type DecodedToken struct {
	Subject string         // sub claim, the user's unique ID
	Email   string         // email claim, if present
	Exp     int64          // Expiration, seconds since epoch
	Claims  map[string]any // Full claim set as decoded
}

// Decode parses a raw bearer token without verifying its signature and
// extracts the embedded claims. Pure function: no side effects, no network.
func Decode(rawToken string) (*DecodedToken, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, errors.Wrap(MalformedTokenErr, "[Decode] empty token")
	}

	unverifiedToken, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(MalformedTokenErr, err.Error())
	}

	claims, ok := unverifiedToken.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.Wrap(MalformedTokenErr, "[Decode] error extracting claims")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	exp, _ := claims["exp"].(float64)

	return &DecodedToken{
		Subject: sub,
		Email:   email,
		Exp:     int64(exp),
		Claims:  claims,
	}, nil
}

// Expired reports whether the token's expiry has passed at the supplied
// wall-clock time. The clock is injected by the caller so the check stays
// testable. A token without an exp claim is treated as expired.
func (d *DecodedToken) Expired(now time.Time) bool {
	return d.Exp*1000 < now.UnixMilli()
}
