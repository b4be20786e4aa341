// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault client services and runtime.
//
// All Msg* constants are the human-readable message strings handed to the
// caller (the UI layer) to describe the outcome of an operation. Each
// operation reports at most one terminal message, so keeping the wording in
// one place guarantees the UI shows consistent text.
package app

const (
	// MsgSelectFileToUpload is reported when an upload is attempted with no
	// file content.
	MsgSelectFileToUpload = "Please select a file to upload."

	// MsgEnterUserName is reported when an upload is attempted without a
	// username.
	MsgEnterUserName = "Please enter your user name."

	// MsgDownloadArgsMissing is reported when a download is attempted with
	// the username or filename missing.
	MsgDownloadArgsMissing = "Please enter your user name and select a file to download."

	// MsgRemoveArgsMissing is reported when a removal is attempted with the
	// username or filename missing.
	MsgRemoveArgsMissing = "Please enter your user name and select a file to remove."

	// MsgUploadFailed is the single terminal message for any upload failure
	// past validation (key fetch, encryption, or transfer).
	MsgUploadFailed = "An error occurred while encrypting the file."

	// MsgDownloadFailed is the single terminal message for any download
	// failure past validation.
	MsgDownloadFailed = "An error occurred while downloading the file."

	// MsgListFailed is reported when the file listing cannot be fetched.
	MsgListFailed = "Error fetching files. Please try again later."

	// MsgRemoveFailed is reported when a removal fails and the server did
	// not supply its own error text.
	MsgRemoveFailed = "An error occurred while removing the file."

	// MsgUploadedSuffix is appended to the server-echoed filename on a
	// successful upload.
	MsgUploadedSuffix = " uploaded and encrypted successfully."

	// MsgEmptyToken is reported when a login response contains no token.
	MsgEmptyToken = "Empty token received."

	// MsgTokenUsernameMismatch is reported when the username embedded in the
	// login token does not match the submitted e-mail. The token is not
	// stored in that case.
	MsgTokenUsernameMismatch = "Token username does not match email."

	// MsgAuthFallback is the generic message for login/register failures
	// when the server did not supply its own error text.
	MsgAuthFallback = "An error occurred. Please try again later."
)
