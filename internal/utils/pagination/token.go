package pagination

import (
	"encoding/base64"
	"fmt"
)

// EncodeOffsetToken creates an opaque token for offset pagination. Entries
// are paged newest first; the token marks where the next page starts.
func EncodeOffsetToken(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%d", offset)))
}

// DecodeOffsetToken decodes an offset pagination token.
func DecodeOffsetToken(token string) (int, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	var offset int
	if _, err := fmt.Sscanf(string(decodedBytes), "%d", &offset); err != nil {
		return 0, fmt.Errorf("invalid pagination token format (offset parse): %w", err)
	}
	if offset < 0 {
		return 0, fmt.Errorf("invalid pagination token (negative offset)")
	}
	return offset, nil
}
