package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// maxSanitizedBody bounds the JSON bodies rewritten by SanitizeInput
const maxSanitizedBody = 1 << 20

// maxSanitizePasses bounds the unescape/sanitize loop for nested entity encodings
const maxSanitizePasses = 8

// SanitizeInput strips HTML from every string in a JSON request body, nested
// values included. Password fields are passed through untouched and bodies
// that are not JSON are left for the handler to reject.
func SanitizeInput() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}
		if c.Request.Body == nil || !strings.HasPrefix(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		buf, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSanitizedBody+1))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if len(buf) > maxSanitizedBody {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}

		var body interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			// malformed JSON is reported by the handler's binding
			restoreBody(c, buf)
			c.Next()
			return
		}

		cleaned, err := json.Marshal(sanitizeValue(policy, "", body))
		if err != nil {
			restoreBody(c, buf)
			c.Next()
			return
		}
		restoreBody(c, cleaned)
		c.Next()
	}
}

func restoreBody(c *gin.Context, buf []byte) {
	c.Request.Body = io.NopCloser(bytes.NewReader(buf))
	c.Request.ContentLength = int64(len(buf))
}

func sanitizeValue(policy *bluemonday.Policy, key string, v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		if isSecretKey(key) {
			return val
		}
		return cleanText(policy, val)
	case map[string]interface{}:
		for k, inner := range val {
			val[k] = sanitizeValue(policy, k, inner)
		}
		return val
	case []interface{}:
		for i, inner := range val {
			val[i] = sanitizeValue(policy, key, inner)
		}
		return val
	default:
		return v
	}
}

// cleanText strips markup and decodes entities until the value is stable,
// so encoded tags cannot turn back into markup after a single pass.
// Values that never settle keep bluemonday's escaped output.
func cleanText(policy *bluemonday.Policy, s string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(policy.Sanitize(s))
		if next == s {
			return s
		}
		s = next
	}
	return policy.Sanitize(s)
}

func isSecretKey(key string) bool {
	return strings.Contains(strings.ToLower(key), "password")
}
