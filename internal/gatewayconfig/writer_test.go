package gatewayconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/gateway-console/internal/adapter"
	"github.com/feral-file/gateway-console/internal/gatewayconfig"
	"github.com/feral-file/gateway-console/internal/mocks"
)

func TestAtomicWriter_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")
	w := gatewayconfig.NewAtomicWriter(adapter.NewFileSystem())

	require.NoError(t, w.WriteFile(path, []byte("first")))
	require.NoError(t, w.WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAtomicWriter_CleansUpOnFailure(t *testing.T) {
	const (
		target  = "/srv/soketi/config.json"
		tmpName = "/srv/soketi/.config.json.tmp-123"
	)

	tests := []struct {
		name       string
		setupMocks func(*mocks.MockFileSystem, *mocks.MockFile)
	}{
		{
			name: "write error",
			setupMocks: func(fs *mocks.MockFileSystem, f *mocks.MockFile) {
				f.EXPECT().Write([]byte("data")).Return(0, errors.New("disk full"))
				f.EXPECT().Close().Return(nil)
				fs.EXPECT().Remove(tmpName).Return(nil)
			},
		},
		{
			name: "sync error",
			setupMocks: func(fs *mocks.MockFileSystem, f *mocks.MockFile) {
				f.EXPECT().Write([]byte("data")).Return(4, nil)
				f.EXPECT().Sync().Return(errors.New("io error"))
				f.EXPECT().Close().Return(nil)
				fs.EXPECT().Remove(tmpName).Return(nil)
			},
		},
		{
			name: "rename error",
			setupMocks: func(fs *mocks.MockFileSystem, f *mocks.MockFile) {
				f.EXPECT().Write([]byte("data")).Return(4, nil)
				f.EXPECT().Sync().Return(nil)
				f.EXPECT().Close().Return(nil)
				fs.EXPECT().Chmod(tmpName, os.FileMode(0644)).Return(nil)
				fs.EXPECT().Rename(tmpName, target).Return(errors.New("cross-device link"))
				fs.EXPECT().Remove(tmpName).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fs := mocks.NewMockFileSystem(ctrl)
			f := mocks.NewMockFile(ctrl)
			fs.EXPECT().MkdirAll("/srv/soketi", os.FileMode(0755)).Return(nil)
			fs.EXPECT().CreateTemp("/srv/soketi", ".config.json.tmp-*").Return(f, nil)
			f.EXPECT().Name().Return(tmpName)
			tt.setupMocks(fs, f)

			err := gatewayconfig.NewAtomicWriter(fs).WriteFile(target, []byte("data"))
			assert.Error(t, err)
		})
	}
}
