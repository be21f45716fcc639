package postgres

import (
	"testing"
	"time"

	postgresClient "github.com/lmbotha/lea/pkg/databases/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgresLMSRepository(t *testing.T) {
	t.Run("nil client is rejected", func(t *testing.T) {
		repo, err := NewPostgresLMSRepository(nil)
		assert.Error(t, err)
		assert.Nil(t, repo)
	})

	t.Run("postgres client is accepted", func(t *testing.T) {
		client := postgresClient.NewPostgresDatabaseClient(10, 5, 30*time.Second)
		repo, err := NewPostgresLMSRepository(client)
		require.NoError(t, err)
		assert.NotNil(t, repo)
	})
}

func TestAssertStringID(t *testing.T) {
	tests := []struct {
		name       string
		insertedID interface{}
		want       string
		wantErr    bool
	}{
		{
			name:       "string id",
			insertedID: "c1b2a3d4-0000-0000-0000-000000000001",
			want:       "c1b2a3d4-0000-0000-0000-000000000001",
		},
		{
			// lib/pq hands back UUID columns as []byte when scanned into interface{}
			name:       "byte slice id",
			insertedID: []byte("c1b2a3d4-0000-0000-0000-000000000001"),
			want:       "c1b2a3d4-0000-0000-0000-000000000001",
		},
		{
			name:       "unexpected type",
			insertedID: 42,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assertStringID(tt.insertedID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
