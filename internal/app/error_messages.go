// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-shortener-users HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// {"message": ...} body of HTTP responses. The wording is part of the API:
// the frontend displays these strings as-is.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or required fields are missing.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgEmailAlreadyRegistered is returned by signup and profile update when
	// another account already uses the e-mail.
	MsgEmailAlreadyRegistered = "Email already registered!"

	// MsgUserNameAlreadyExists is returned by signup and profile update when
	// another account already uses the name.
	MsgUserNameAlreadyExists = "User Name already exists!"

	MsgPasswordTooShort = "Password should be at least 8 characters long!"
	MsgPasswordTooLong  = "Password should be at most 72 bytes long!"

	// MsgInvalidCredentials covers both an unknown name and a wrong password.
	MsgInvalidCredentials = "Invalid Credentials"

	MsgLoginSuccess = "Login Success"

	MsgUserNotFound     = "User not found"
	MsgUserDoesNotExist = "User doesn't exist"

	MsgResetEmailSent = "Reset email sent"

	// MsgResetLinkInvalid covers unknown, expired and already redeemed
	// reset tokens alike.
	MsgResetLinkInvalid  = "Reset link is invalid or has expired."
	MsgPasswordResetDone = "Password has been reset successfully."

	// MsgServerError hides every unexpected failure from the client.
	MsgServerError = "Server error. Please try again later."

	MsgTokenMissing = "token missing"
	MsgTokenInvalid = "invalid token"
	MsgTokenExpired = "token expired"

	MsgNotFound = "not found"

	// MsgBanner is the plain-text body of GET /.
	MsgBanner = "URL Shortner"
)
