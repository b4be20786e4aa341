package client

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/filevault/client-go/internal/logger"
	"github.com/filevault/client-go/internal/mock"
)

// newTestApp wires an App to scripted input and captured output. Passwords
// are read as plain lines since there is no terminal in tests.
func newTestApp(t *testing.T, ctrl *gomock.Controller, input string) (*App, *mock.MockClientAuthService, *mock.MockClientVaultService, *bytes.Buffer) {
	t.Helper()

	mockAuth := mock.NewMockClientAuthService(ctrl)
	mockVault := mock.NewMockClientVaultService(ctrl)
	out := &bytes.Buffer{}

	app := &App{
		auth:   mockAuth,
		vault:  mockVault,
		logger: logger.Nop(),
		in:     bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}
	app.readPassword = func() (string, error) {
		line, err := app.in.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	return app, mockAuth, mockVault, out
}

func TestApp_LoginUploadQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	input := strings.Join([]string{
		"login",
		"User@X.com",
		"secret!123",
		"upload " + path,
		"quit",
	}, "\n") + "\n"

	app, mockAuth, mockVault, out := newTestApp(t, ctrl, input)

	mockAuth.EXPECT().
		Login(gomock.Any(), "User@X.com", "secret!123").
		Return("Login successful.", nil)
	mockVault.EXPECT().
		Upload(gomock.Any(), []byte("hello"), "notes.txt", "user@x.com").
		Return("notes.txt uploaded and encrypted successfully.", nil)

	require.NoError(t, app.Run())

	assert.Contains(t, out.String(), "Login successful.")
	assert.Contains(t, out.String(), "notes.txt uploaded and encrypted successfully.")
}

func TestApp_LoginFailureStaysInAuthFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := strings.Join([]string{
		"login",
		"user@x.com",
		"wrongpass1",
		"quit",
	}, "\n") + "\n"

	app, mockAuth, _, out := newTestApp(t, ctrl, input)

	mockAuth.EXPECT().
		Login(gomock.Any(), "user@x.com", "wrongpass1").
		Return("", errors.New("Invalid password."))

	require.NoError(t, app.Run())

	assert.Contains(t, out.String(), "Invalid password.")
}

func TestApp_LogoutReturnsToAuthFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := strings.Join([]string{
		"login",
		"user@x.com",
		"secret!123",
		"logout",
		"quit",
	}, "\n") + "\n"

	app, mockAuth, _, _ := newTestApp(t, ctrl, input)

	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("Login successful.", nil)
	mockAuth.EXPECT().Logout()

	require.NoError(t, app.Run())

	assert.Empty(t, app.username, "logout clears the active username")
}

func TestApp_ListAndRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := strings.Join([]string{
		"login",
		"user@x.com",
		"secret!123",
		"list",
		"remove notes.txt",
		"quit",
	}, "\n") + "\n"

	app, mockAuth, mockVault, out := newTestApp(t, ctrl, input)

	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("Login successful.", nil)
	gomock.InOrder(
		mockVault.EXPECT().List(gomock.Any(), "user@x.com").Return([]string{"notes.txt"}, nil),
		mockVault.EXPECT().Remove(gomock.Any(), "user@x.com", "notes.txt").Return(nil),
		// Removal triggers a listing refresh.
		mockVault.EXPECT().List(gomock.Any(), "user@x.com").Return([]string{}, nil),
	)

	require.NoError(t, app.Run())

	assert.Contains(t, out.String(), "notes.txt removed.")
	assert.Contains(t, out.String(), "No files found.")
}

func TestApp_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := "frobnicate\nquit\n"

	app, _, _, out := newTestApp(t, ctrl, input)

	require.NoError(t, app.Run())

	assert.Contains(t, out.String(), "Unknown command: frobnicate")
}
