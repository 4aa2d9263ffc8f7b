// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token utilities.

# Password Hashing

Passwords are stored as bcrypt hashes only:

	hash, err := auth.HashPassword(password, cfg.BcryptCost)
	ok := auth.CheckPassword(hash, password)

bcrypt embeds its own per-password salt, so two users with the same
password get different hashes. A cost of 0 selects the library default;
tests use the minimum cost to stay fast.

# Session Tokens

Login sessions are identified by opaque random tokens:

	token := auth.GenerateSessionToken()

Tokens carry no embedded claims; the sessions table is the only mapping
from token to user.
*/
package auth
