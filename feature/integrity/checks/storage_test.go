package checks

import (
	"context"
	"testing"

	"catalog-webservice/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testFolders = []string{"reports/variations"}

func TestCheckStorage(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "catalog").Return(false, nil)

		report, err := CheckStorage(context.Background(), mockClient, "catalog", testFolders)
		require.NoError(t, err)
		assert.False(t, report.BucketExists)
		assert.Equal(t, testFolders, report.Missing)
		assert.False(t, report.Healthy())
		mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Bucket Check Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "catalog").Return(false, assert.AnError)

		_, err := CheckStorage(context.Background(), mockClient, "catalog", testFolders)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Folder Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
		ch := make(chan minio.ObjectInfo)
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "catalog", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		report, err := CheckStorage(context.Background(), mockClient, "catalog", testFolders)
		require.NoError(t, err)
		assert.Equal(t, testFolders, report.Missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Key: "reports/variations/"}
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "catalog", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "reports/variations/"
		})).Return((<-chan minio.ObjectInfo)(ch))

		report, err := CheckStorage(context.Background(), mockClient, "catalog", testFolders)
		require.NoError(t, err)
		assert.Empty(t, report.Missing)
		assert.True(t, report.Healthy())
	})
}

func TestFixStorage(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Creates Bucket And Folders", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("MakeBucket", mock.Anything, "catalog", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)
		mockClient.On("PutObject", mock.Anything, "catalog", "reports/variations/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		report := &StorageReport{Bucket: "catalog", Missing: testFolders}
		err := FixStorage(context.Background(), mockClient, report, "eu-west-1", logger)
		assert.NoError(t, err)
		assert.True(t, report.BucketExists)
		mockClient.AssertExpectations(t)
	})

	t.Run("Folder Only", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "catalog", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		report := &StorageReport{Bucket: "catalog", BucketExists: true, Missing: testFolders}
		assert.NoError(t, FixStorage(context.Background(), mockClient, report, "", logger))
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
		mockClient.AssertNumberOfCalls(t, "PutObject", 1)
	})

	t.Run("Bucket Failure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("MakeBucket", mock.Anything, "catalog", mock.Anything).Return(assert.AnError)

		report := &StorageReport{Bucket: "catalog", Missing: testFolders}
		err := FixStorage(context.Background(), mockClient, report, "", logger)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
