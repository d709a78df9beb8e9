package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/AlexJCturbo/just-tech-news/internal/config"
	"github.com/AlexJCturbo/just-tech-news/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useSQLite(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.db")
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("SQLITE_PATH", path)
	t.Setenv("BCRYPT_COST", "4")
	return path
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-users", "2", "-posts", "1"})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Users)
	assert.Equal(t, 1, cfg.PostsPerUser)

	_, err = parseFlags([]string{"-users", "0"})
	assert.Error(t, err)
}

func TestRun_SeedsAndReleasesDatabase(t *testing.T) {
	path := useSQLite(t)
	seedCfg := seedConfig{Users: 2, PostsPerUser: 1, Password: "password1234"}

	require.NoError(t, run(seedCfg))

	db, err := database.Open(config.DriverSQLite, config.SQLiteDSN(path))
	require.NoError(t, err)
	defer db.CloseDB()

	var users, posts, comments, votes int
	ctx := context.Background()
	require.NoError(t, db.DB.GetContext(ctx, &users, `SELECT COUNT(*) FROM users`))
	require.NoError(t, db.DB.GetContext(ctx, &posts, `SELECT COUNT(*) FROM posts`))
	require.NoError(t, db.DB.GetContext(ctx, &comments, `SELECT COUNT(*) FROM comments`))
	require.NoError(t, db.DB.GetContext(ctx, &votes, `SELECT COUNT(*) FROM votes`))
	assert.Equal(t, 2, users)
	assert.Equal(t, 2, posts)
	assert.Equal(t, 2, comments)
	assert.Equal(t, 4, votes)
}

func TestRun_ReturnsSeedFailure(t *testing.T) {
	useSQLite(t)
	seedCfg := seedConfig{Users: 1, PostsPerUser: 0, Password: "password1234"}

	require.NoError(t, run(seedCfg))

	// demo users already exist, so the second pass fails inside run
	err := run(seedCfg)
	assert.ErrorContains(t, err, "demo user 1")
}
