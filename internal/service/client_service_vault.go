// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/filevault/client-go/internal/adapter"
	"github.com/filevault/client-go/internal/app"
	"github.com/filevault/client-go/internal/crypto"
	"github.com/filevault/client-go/internal/logger"
	"github.com/filevault/client-go/models"
)

type clientVaultService struct {
	adapter     adapter.ServerAdapter
	crypto      crypto.KeyChainService
	downloadDir string
	logger      *logger.Logger

	uploadInFlight   atomic.Bool
	downloadInFlight atomic.Bool
	listInFlight     atomic.Bool
	removeInFlight   atomic.Bool
}

func NewClientVaultService(serverAdapter adapter.ServerAdapter, keychain crypto.KeyChainService, downloadDir string, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{adapter: serverAdapter, crypto: keychain, downloadDir: downloadDir, logger: logger}
}

// Upload implements [ClientVaultService]. The pipeline is strictly
/// sequential: fetch the per-user secret, derive the key, encrypt, transfer.
// The secret is fetched fresh on every call; a stale secret must never be
// reused across calls.
func (s *clientVaultService) Upload(ctx context.Context, content []byte, filename, username string) (string, error) {
	if len(content) == 0 {
		return "", ErrNoFileSelected
	}
	if username == "" {
		return "", ErrNoUserName
	}

	s.uploadInFlight.Store(true)
	defer s.uploadInFlight.Store(false)

	secret, err := s.adapter.FetchKey(ctx, username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("fetch encryption key for upload")
		return "", ErrUploadFailed
	}

	key, err := s.crypto.DeriveKey(secret, username)
	if err != nil {
		s.logger.Error().Err(err).Msg("derive key for upload")
		return "", ErrUploadFailed
	}

	ciphertext, err := s.crypto.Encrypt(content, key)
	if err != nil {
		s.logger.Error().Err(err).Msg("encrypt file content")
		return "", ErrUploadFailed
	}

	resp, err := s.adapter.UploadFile(ctx, models.UploadRequest{
		Ciphertext: ciphertext,
		Username:   username,
		Filename:   filename,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("upload file to server")
		return "", ErrUploadFailed
	}

	return resp.FileName + app.MsgUploadedSuffix, nil
}

// Download implements [ClientVaultService]. The ciphertext is fetched before
// the secret, mirroring the transfer order of the reference client; the
// decrypted bytes only touch disk after every step has succeeded.
func (s *clientVaultService) Download(ctx context.Context, username, filename string) (string, error) {
	if username == "" || filename == "" {
		return "", ErrDownloadArgsMissing
	}

	s.downloadInFlight.Store(true)
	defer s.downloadInFlight.Store(false)

	ciphertext, err := s.adapter.DownloadFile(ctx, models.DownloadRequest{Username: username, FileName: filename})
	if err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("download file from server")
		return "", ErrDownloadFailed
	}

	secret, err := s.adapter.FetchKey(ctx, username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("fetch encryption key for download")
		return "", ErrDownloadFailed
	}

	key, err := s.crypto.DeriveKey(secret, username)
	if err != nil {
		s.logger.Error().Err(err).Msg("derive key for download")
		return "", ErrDownloadFailed
	}

	plaintext, err := s.crypto.Decrypt(ciphertext, key)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("decrypt downloaded file")
		return "", ErrDownloadFailed
	}

	if err = os.MkdirAll(s.downloadDir, 0755); err != nil {
		s.logger.Error().Err(err).Str("dir", s.downloadDir).Msg("create download directory")
		return "", ErrDownloadFailed
	}

	// filepath.Base keeps a server-supplied name from escaping the
	// download directory.
	path := filepath.Join(s.downloadDir, filepath.Base(filename))
	if err = os.WriteFile(path, plaintext, 0644); err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("write decrypted file")
		return "", ErrDownloadFailed
	}

	return path, nil
}

// List implements [ClientVaultService].
func (s *clientVaultService) List(ctx context.Context, username string) ([]string, error) {
	s.listInFlight.Store(true)
	defer s.listInFlight.Store(false)

	records, err := s.adapter.ListFiles(ctx, models.ListRequest{Username: username})
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("fetch file listing")
		return nil, ErrListFailed
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.Name)
	}

	return names, nil
}

// Remove implements [ClientVaultService].
func (s *clientVaultService) Remove(ctx context.Context, username, filename string) error {
	if username == "" || filename == "" {
		return ErrRemoveArgsMissing
	}

	s.removeInFlight.Store(true)
	defer s.removeInFlight.Store(false)

	if err := s.adapter.DeleteFile(ctx, models.DeleteRequest{Username: username, Filename: filename}); err != nil {
		s.logger.Error().Err(err).Str("filename", filename).Msg("delete file on server")
		return mapRemoveError(err)
	}

	return nil
}

// InFlight implements [ClientVaultService].
func (s *clientVaultService) InFlight(op Operation) bool {
	switch op {
	case OpUpload:
		return s.uploadInFlight.Load()
	case OpDownload:
		return s.downloadInFlight.Load()
	case OpList:
		return s.listInFlight.Load()
	case OpRemove:
		return s.removeInFlight.Load()
	default:
		return false
	}
}
