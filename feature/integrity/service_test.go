package integrity

import (
	"context"
	"testing"

	"catalog-webservice/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var testFolders = []string{"reports/variations"}

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestService_Storage(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", "", testFolders, zap.NewNop(), nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
	mockClient.On("PutObject", mock.Anything, "test-bucket", "reports/variations/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	report, err := svc.CheckStorage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testFolders, report.Missing)

	assert.NoError(t, svc.FixStorage(context.Background(), report))
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestService_StorageNotConfigured(t *testing.T) {
	svc := NewService(nil, "test-bucket", "", testFolders, zap.NewNop(), nil)
	_, err := svc.CheckStorage(context.Background())
	assert.EqualError(t, err, "storage is not configured")
}

func TestService_Schema(t *testing.T) {
	t.Run("No Database", func(t *testing.T) {
		svc := NewService(nil, "test-bucket", "", testFolders, zap.NewNop(), nil)
		_, err := svc.CheckSchema()
		assert.Error(t, err)
	})

	t.Run("Inspect Failures", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.MatchExpectationsInOrder(false)
		for i := 0; i < 10; i++ {
			sqlMock.ExpectQuery("SHOW COLUMNS").WillReturnError(assert.AnError)
		}

		svc := NewService(nil, "test-bucket", "", testFolders, zap.NewNop(), db)
		report, err := svc.CheckSchema()
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Len(t, report.Errors, 10)
	})
}
