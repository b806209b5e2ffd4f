//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/mocks"
	"github.com/guttosm/quote-service/internal/repository"
)

func TestNewLoggingService(t *testing.T) {
	svc := NewLoggingService(new(mocks.MockLogsRepositoryInterface))

	assert.NotNil(t, svc)
	assert.IsType(t, &LoggingServiceImpl{}, svc)
}

func TestLoggingService_CreateLog(t *testing.T) {
	existingID := primitive.NewObjectID()

	tests := []struct {
		name      string
		entry     *model.LogEntry
		setupMock func(*mocks.MockLogsRepositoryInterface)
		wantError bool
	}{
		{
			name:  "assigns id and timestamp",
			entry: model.NewAuditEntry(OpSetQuantity, "Quantity updated"),
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return !doc.ID.IsZero() && doc.ActionType == OpSetQuantity && doc.Level == model.LogLevelInfo
				})).Return(nil)
			},
		},
		{
			name:  "keeps existing id",
			entry: &model.LogEntry{ID: existingID, Level: model.LogLevelWarn, Message: "kept"},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return doc.ID == existingID
				})).Return(nil)
			},
		},
		{
			name:  "copies product code",
			entry: &model.LogEntry{Level: model.LogLevelInfo, Message: "toggled", ProductCode: "OP"},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return doc.ProductCode == "OP"
				})).Return(nil)
			},
		},
		{
			name:  "repository error",
			entry: &model.LogEntry{Level: model.LogLevelError, Message: "boom"},
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockLogsRepositoryInterface)
			tt.setupMock(repo)

			err := NewLoggingService(repo).CreateLog(context.Background(), tt.entry)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.False(t, tt.entry.ID.IsZero())
				assert.False(t, tt.entry.Timestamp.IsZero())
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("empty batch skips repository", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		assert.NoError(t, NewLoggingService(repo).CreateLogs(context.Background(), nil))
		repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})

	t.Run("bulk insert", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
			return len(docs) == 2 && docs[1].ActionType == OpClearAll
		})).Return(nil)

		entries := []*model.LogEntry{
			model.NewAuditEntry(OpSelectAll, "All selected"),
			model.NewAuditEntry(OpClearAll, "All cleared"),
		}
		assert.NoError(t, NewLoggingService(repo).CreateLogs(context.Background(), entries))
		repo.AssertExpectations(t)
	})
}

func TestLoggingService_QueryLogs(t *testing.T) {
	start := time.Now().Add(-time.Hour)
	opts := model.LogQueryOptions{ActionType: "export_csv", Level: model.LogLevelInfo, StartTime: &start, Limit: 10}
	expectedOpts := repository.LogQueryOptions{ActionType: "export_csv", Level: model.LogLevelInfo, StartTime: &start, Limit: 10}

	t.Run("maps documents", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Query", mock.Anything, expectedOpts).Return([]*repository.LogEntryDocument{
			{ID: primitive.NewObjectID(), Message: "exported", ActionType: "export_csv", ProductCode: ""},
		}, nil)

		entries, err := NewLoggingService(repo).QueryLogs(context.Background(), opts)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "exported", entries[0].Message)
		assert.Equal(t, "export_csv", entries[0].ActionType)
	})

	t.Run("propagates error", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Query", mock.Anything, expectedOpts).Return(nil, errors.New("cursor failed"))

		entries, err := NewLoggingService(repo).QueryLogs(context.Background(), opts)
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}

func TestLoggingService_CountLogs(t *testing.T) {
	repo := new(mocks.MockLogsRepositoryInterface)
	repo.On("Count", mock.Anything, repository.LogQueryOptions{RequestID: "req-1"}).Return(int64(3), nil)

	count, err := NewLoggingService(repo).CountLogs(context.Background(), model.LogQueryOptions{RequestID: "req-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
