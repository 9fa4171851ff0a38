// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the identifiers used by the API.

There are no accounts. A client identifies its device with a UUID it
generates once and sends on every session request:

	X-Device-UUID: 6ba7b810-9dad-11d1-80b4-00c04fd430c8

# Device IDs

	deviceID, err := auth.ValidateDeviceUUID(r.Header.Get("X-Device-UUID"))

The returned id is canonical, so every spelling of the same UUID maps to
the same storage scope. The nil UUID is rejected.

# Session IDs

	id, err := auth.GenerateSessionID()  // "ses-V1StGXR8_Z5jdHi6B-myT"

Session ids are 21-character nanoids with a "ses-" prefix.
*/
package auth
