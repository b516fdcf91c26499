package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	tree := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"storage": map[string]any{
			"bucketUrl":     "file:///tmp/matjip",
			"publicBaseUrl": "",
		},
		"submission": map[string]any{"cleanupOrphanedAssets": false},
		"secretKey":  map[string]any{"access": ""},
	}

	tests := map[string]string{
		"POSTGRES_SSLMODE":                 "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":         "postgres.master.userName",
		"STORAGE_BUCKETURL":                "storage.bucketUrl",
		"STORAGE_PUBLICBASEURL":            "storage.publicBaseUrl",
		"SUBMISSION_CLEANUPORPHANEDASSETS": "submission.cleanupOrphanedAssets",
		"SECRETKEY_ACCESS":                 "secretKey.access",
		"SECRETKEY__ACCESS":                "secretKey.access",
		"NEW_FEATURE_FLAG":                 "new.feature.flag",
		"STORAGE_UNKNOWN_KEY":              "storage.unknown.key",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, tree))
		})
	}
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		// index 2 has no port, so index 3 is never read
		"POSTGRES_REPLICAS_2_HOST": "replica-c",
		"POSTGRES_REPLICAS_3_HOST": "replica-d",
		"POSTGRES_REPLICAS_3_PORT": "5435",
	}

	replicas := replicasFromEnv(func(key string) string { return vars[key] })

	if assert.Len(t, replicas, 2) {
		assert.Equal(t, "replica-a", replicas[0].Host)
		assert.Equal(t, "reader", replicas[0].UserName)
		assert.Equal(t, "5433", replicas[1].Port)
		assert.Empty(t, replicas[1].Password)
	}
	assert.Empty(t, replicasFromEnv(func(string) string { return "" }))
}
