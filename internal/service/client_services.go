package service

import (
	"github.com/filevault/client-go/internal/adapter"
	"github.com/filevault/client-go/internal/crypto"
	"github.com/filevault/client-go/internal/logger"
	"github.com/filevault/client-go/internal/validators"
)

// ClientServices bundles the client-side business services behind a single
// construction point.
type ClientServices struct {
	AuthService  ClientAuthService
	VaultService ClientVaultService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, downloadDir string, logger *logger.Logger) *ClientServices {
	keychain := crypto.NewKeyChainService()
	validator := validators.NewCredentialsValidator()

	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, validator, logger),
		VaultService: NewClientVaultService(serverAdapter, keychain, downloadDir, logger),
	}
}
