package utils

import "strings"

// RemoveBase64Header strips an optional data URI scheme marker
// (data:image/png;base64,...) by cutting at the first comma.
func RemoveBase64Header(base64Str string) string {
	if i := strings.IndexByte(base64Str, ','); i >= 0 {
		return base64Str[i+1:]
	}
	return base64Str
}

// NormalizeBase64 trims surrounding whitespace, removes a data URI
// header and repairs missing '=' padding so that clients which truncate
// padding still decode.
func NormalizeBase64(base64Str string) string {
	pure := RemoveBase64Header(strings.TrimSpace(base64Str))
	if rem := len(pure) % 4; rem != 0 {
		pure += strings.Repeat("=", 4-rem)
	}
	return pure
}
