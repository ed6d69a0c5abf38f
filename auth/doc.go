// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier and auth code generation.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(8)  // 16 hex characters

# Auth Codes

Auth codes are bearer capabilities: possessing one grants a single
registration and a single vote batch for its event. They are random
base62 strings sized for hand-typing:

	code, err := auth.GenerateAuthCode(8)

Codes carry no embedded claims; the event binding, admin flag and voted
flag all live on the code row in the database.
*/
package auth
