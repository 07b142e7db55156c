// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/lib/pq"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds all client-related information for request tracking
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// AddAdditional adds additional custom information to the metadata
func (cm *ClientMetadata) AddAdditional(key, value string) {
	if cm.Additional == nil {
		cm.Additional = make(map[string]string)
	}
	cm.Additional[key] = value
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// formatShowTime renders a start time for API responses
func formatShowTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// genresToStrings converts the stored text[] value to a plain slice
func genresToStrings(genres pq.StringArray) []string {
	out := make([]string, len(genres))
	copy(out, genres)
	return out
}
