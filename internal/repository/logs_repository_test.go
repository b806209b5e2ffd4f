//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestLogsFilter(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name     string
		opts     LogQueryOptions
		expected bson.M
	}{
		{
			name:     "empty options",
			opts:     LogQueryOptions{},
			expected: bson.M{},
		},
		{
			name: "exact fields",
			opts: LogQueryOptions{RequestID: "req-1", Level: "warn", ActionType: "export_csv", Method: "GET"},
			expected: bson.M{
				"request_id":  "req-1",
				"level":       "warn",
				"action_type": "export_csv",
				"method":      "GET",
			},
		},
		{
			name:     "path is a case insensitive regex",
			opts:     LogQueryOptions{Path: "/api/quote"},
			expected: bson.M{"path": bson.M{"$regex": "/api/quote", "$options": "i"}},
		},
		{
			name:     "time range",
			opts:     LogQueryOptions{StartTime: &start, EndTime: &end},
			expected: bson.M{"timestamp": bson.M{"$gte": start, "$lte": end}},
		},
		{
			name:     "open ended range",
			opts:     LogQueryOptions{StartTime: &start},
			expected: bson.M{"timestamp": bson.M{"$gte": start}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, logsFilter(tt.opts))
		})
	}
}

func TestPrepareLogEntry(t *testing.T) {
	entry := &LogEntryDocument{Message: "x"}
	prepareLogEntry(entry)

	assert.False(t, entry.ID.IsZero())
	assert.False(t, entry.Timestamp.IsZero())

	id, ts := entry.ID, entry.Timestamp
	prepareLogEntry(entry)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, ts, entry.Timestamp)
}
