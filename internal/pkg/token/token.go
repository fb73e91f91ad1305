// Package token implements the legacy access-token scheme: an unsigned
// base64 encoding of "{userID}:{email}:{YYYY-MM-DD}". The token carries no
// signature and is trivially forgeable; clients must treat it as an opaque
// session identifier, never as a verifiable credential. Replacing it with a
// signed token would change the wire format existing clients depend on.
package token

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TTL is the validity window communicated alongside every issued token.
const TTL = 24 * time.Hour

const dateLayout = "2006-01-02"

// Issue encodes the access token for the given user at the given instant.
func Issue(userID uint, email string, now time.Time) string {
	raw := fmt.Sprintf("%d:%s:%s", userID, email, now.UTC().Format(dateLayout))
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Decode splits a token back into its plaintext parts. It performs no
// validation beyond structure; there is nothing cryptographic to verify.
func Decode(tok string) (userID uint, email string, issued time.Time, err error) {
	b, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		return 0, "", time.Time{}, fmt.Errorf("decode token: %w", err)
	}
	parts := strings.Split(string(b), ":")
	if len(parts) != 3 {
		return 0, "", time.Time{}, fmt.Errorf("malformed token payload")
	}
	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, "", time.Time{}, fmt.Errorf("malformed token user id: %w", err)
	}
	issued, err = time.Parse(dateLayout, parts[2])
	if err != nil {
		return 0, "", time.Time{}, fmt.Errorf("malformed token date: %w", err)
	}
	return uint(id), parts[1], issued, nil
}
