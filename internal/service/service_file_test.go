package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-profile/internal/crypto"
	"github.com/MKhiriev/go-secure-profile/internal/logger"
	"github.com/MKhiriev/go-secure-profile/internal/mock"
	"github.com/MKhiriev/go-secure-profile/internal/store"
	"github.com/MKhiriev/go-secure-profile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testFileID = "01964d1e-8f3a-7c2b-9d4e-5f6a7b8c9d0e"

type fixedIDGenerator string

func (g fixedIDGenerator) Generate() string { return string(g) }

func newTestFileSvc(t *testing.T, ctrl *gomock.Controller) (FileService, *mock.MockFileRepository, *mock.MockEncryptor) {
	t.Helper()

	repo := mock.NewMockFileRepository(ctrl)
	enc := mock.NewMockEncryptor(ctrl)

	return NewFileService(repo, enc, fixedIDGenerator(testFileID), logger.Nop()), repo, enc
}

// ─────────────────────────────────────────────
// Upload
// ─────────────────────────────────────────────

func TestFileService_Upload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, enc := newTestFileSvc(t, ctrl)

	uploadedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	data := []byte("\x89PNG fake image")

	enc.EXPECT().EncryptFile(data).Return([]byte("sealed-file"), nil)
	repo.EXPECT().SaveFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, file models.UserFile) (models.UserFile, error) {
			assert.Equal(t, testFileID, file.FileID)
			assert.Equal(t, int64(4), file.UserID)
			assert.Equal(t, "cat.png", file.OriginalName)
			assert.Equal(t, int64(len(data)), file.FileSize)
			assert.Equal(t, []byte("sealed-file"), file.EncryptedData)
			file.UploadedAt = uploadedAt
			return file, nil
		})

	info, err := svc.Upload(context.Background(), models.FileUpload{
		UserID:      4,
		Name:        "cat.png",
		ContentType: "image/png",
		Description: "my cat",
		Data:        data,
	})

	require.NoError(t, err)
	assert.Equal(t, models.FileInfo{
		FileID:      testFileID,
		Name:        "cat.png",
		Size:        int64(len(data)),
		ContentType: "image/png",
		Description: "my cat",
		UploadedAt:  uploadedAt,
	}, info)
}

func TestFileService_Upload_EncryptionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, enc := newTestFileSvc(t, ctrl)

	enc.EXPECT().EncryptFile(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.Upload(context.Background(), models.FileUpload{UserID: 4, Data: []byte("x")})

	assert.ErrorIs(t, err, ErrCannotProtectData)
}

func TestFileService_Upload_StorageFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, enc := newTestFileSvc(t, ctrl)

	enc.EXPECT().EncryptFile(gomock.Any()).Return([]byte("sealed"), nil)
	repo.EXPECT().SaveFile(gomock.Any(), gomock.Any()).Return(models.UserFile{}, store.ErrTemporarilyUnavailable)

	_, err := svc.Upload(context.Background(), models.FileUpload{UserID: 4, Data: []byte("x")})

	assert.ErrorIs(t, err, store.ErrTemporarilyUnavailable)
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestFileService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestFileSvc(t, ctrl)

	repo.EXPECT().ListFiles(gomock.Any(), int64(4)).Return([]models.UserFile{
		{FileID: "b", UserID: 4, OriginalName: "b.png", EncryptedData: []byte("sealed-b")},
		{FileID: "a", UserID: 4, OriginalName: "a.mp3", EncryptedData: []byte("sealed-a")},
	}, nil)

	infos, err := svc.List(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "b", infos[0].FileID)
	assert.Equal(t, "a.mp3", infos[1].Name)
}

func TestFileService_List_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestFileSvc(t, ctrl)

	repo.EXPECT().ListFiles(gomock.Any(), int64(4)).Return(nil, nil)

	infos, err := svc.List(context.Background(), 4)

	require.NoError(t, err)
	assert.NotNil(t, infos)
	assert.Empty(t, infos)
}

func TestFileService_List_StorageFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestFileSvc(t, ctrl)

	repo.EXPECT().ListFiles(gomock.Any(), int64(4)).Return(nil, store.ErrTemporarilyUnavailable)

	_, err := svc.List(context.Background(), 4)

	assert.ErrorIs(t, err, store.ErrTemporarilyUnavailable)
}

// ─────────────────────────────────────────────
// Download
// ─────────────────────────────────────────────

func TestFileService_Download_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, enc := newTestFileSvc(t, ctrl)

	repo.EXPECT().GetFile(gomock.Any(), int64(4), testFileID).Return(models.UserFile{
		FileID:        testFileID,
		UserID:        4,
		OriginalName:  "song.mp3",
		ContentType:   "audio/mpeg",
		FileSize:      5,
		EncryptedData: []byte("sealed"),
	}, nil)
	enc.EXPECT().DecryptFile([]byte("sealed")).Return([]byte("music"), nil)

	file, err := svc.Download(context.Background(), 4, testFileID)

	require.NoError(t, err)
	assert.Equal(t, []byte("music"), file.Data)
	assert.Equal(t, "song.mp3", file.Info.Name)
	assert.Equal(t, "audio/mpeg", file.Info.ContentType)
}

func TestFileService_Download_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestFileSvc(t, ctrl)

	repo.EXPECT().GetFile(gomock.Any(), int64(4), testFileID).Return(models.UserFile{}, store.ErrFileNotFound)

	_, err := svc.Download(context.Background(), 4, testFileID)

	assert.ErrorIs(t, err, store.ErrFileNotFound)
}

func TestFileService_Download_TamperedCiphertext(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, enc := newTestFileSvc(t, ctrl)

	repo.EXPECT().GetFile(gomock.Any(), int64(4), testFileID).Return(models.UserFile{EncryptedData: []byte("tampered")}, nil)
	enc.EXPECT().DecryptFile([]byte("tampered")).Return(nil, crypto.ErrAuthentication)

	file, err := svc.Download(context.Background(), 4, testFileID)

	assert.ErrorIs(t, err, ErrCannotReadData)
	assert.Nil(t, file.Data)
}

func TestFileService_UploadThenDownload_RealEncryptor(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockFileRepository(ctrl)

	enc, err := crypto.NewEncryptor([]byte("a-master-secret-of-decent-length"))
	require.NoError(t, err)

	svc := NewFileService(repo, enc, fixedIDGenerator(testFileID), logger.Nop())
	data := []byte("RIFF....WAVEfmt ")

	var stored models.UserFile
	repo.EXPECT().SaveFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, file models.UserFile) (models.UserFile, error) {
			stored = file
			return file, nil
		})
	repo.EXPECT().GetFile(gomock.Any(), int64(4), testFileID).
		DoAndReturn(func(context.Context, int64, string) (models.UserFile, error) { return stored, nil })

	_, err = svc.Upload(context.Background(), models.FileUpload{UserID: 4, Name: "a.wav", ContentType: "audio/wav", Data: data})
	require.NoError(t, err)
	assert.NotEqual(t, data, stored.EncryptedData)

	file, err := svc.Download(context.Background(), 4, testFileID)
	require.NoError(t, err)
	assert.Equal(t, data, file.Data)
}
