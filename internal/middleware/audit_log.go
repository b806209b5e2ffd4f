package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// NewRequestAuditEntry builds an audit entry for action carrying the
// request metadata of c.
func NewRequestAuditEntry(c *gin.Context, action, message string) *model.LogEntry {
	entry := model.NewAuditEntry(action, message)
	entry.RequestID = GetRequestID(c)
	entry.Method = c.Request.Method
	entry.Path = c.Request.URL.Path
	entry.IP = c.ClientIP()
	entry.UserAgent = c.Request.UserAgent()
	return entry
}

// AuditLog records a successful quote action. A nil sink disables auditing.
func AuditLog(sink AuditSink, c *gin.Context, action, message string, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	entry := NewRequestAuditEntry(c, action, message)
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	sink.Log(entry)
}

// AuditLogProduct records an action on a single product.
func AuditLogProduct(sink AuditSink, c *gin.Context, action, code, message string, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	entry := NewRequestAuditEntry(c, action, message)
	entry.ProductCode = code
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	sink.Log(entry)
}

// AuditLogError records a failed quote action.
func AuditLogError(sink AuditSink, c *gin.Context, action, message string, err error) {
	if sink == nil {
		return
	}
	entry := NewRequestAuditEntry(c, action, message)
	entry.Level = model.LogLevelError
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Log(entry)
}
