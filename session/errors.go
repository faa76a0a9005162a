package session

import "github.com/pkg/errors"

var (
	// LoginFailedErr is returned for any rejected login attempt. Deliberately
	// generic: "user not found" and "wrong password" are indistinguishable.
	LoginFailedErr = errors.New("invalid email or password")

	NotAuthenticatedErr = errors.New("not authenticated")
)
