package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig() {
	cfg = AppConfig{}
	loaded = false
}

func TestLoadDefaults(t *testing.T) {
	resetConfig()
	t.Setenv("SECRET_KEY", "test-secret")

	c := Load()
	require.True(t, loaded)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, "test-secret", c.SecretKey)
	assert.Equal(t, "sqlite://blog.db", c.DatabaseURL)
	assert.Empty(t, c.AdminEmails)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, "templates/*.html", c.TemplateGlob)
	assert.Equal(t, "static", c.StaticDir)
	assert.Equal(t, 6379, c.RedisPort)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 100, c.LogMaxSizeMB)
}

func TestLoadEnvOverrides(t *testing.T) {
	resetConfig()
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("APP_PORT", "9001")
	t.Setenv("DATABASE_URL", "bloguser:pw@tcp(127.0.0.1:3306)/blog?parseTime=True")
	t.Setenv("ADMIN_EMAILS", "admin@x.com, editor@x.com")
	t.Setenv("LOG_MAX_BACKUPS", "9")
	t.Setenv("LOG_COMPRESS", "true")

	c := Load()
	assert.Equal(t, "9001", c.AppPort)
	assert.Equal(t, "bloguser:pw@tcp(127.0.0.1:3306)/blog?parseTime=True", c.DatabaseURL)
	assert.Equal(t, []string{"admin@x.com", "editor@x.com"}, c.AdminEmails)
	assert.Equal(t, 9, c.LogMaxBackups)
	assert.True(t, c.LogCompress)
}

func TestIsAdmin(t *testing.T) {
	open := AppConfig{}
	assert.True(t, open.IsAdmin("anyone@x.com"), "empty list admits any logged-in user")

	restricted := AppConfig{AdminEmails: []string{"admin@x.com"}}
	assert.True(t, restricted.IsAdmin("admin@x.com"))
	assert.True(t, restricted.IsAdmin("ADMIN@X.COM"), "email comparison is case-insensitive")
	assert.False(t, restricted.IsAdmin("reader@x.com"))
}

func TestOpenDialectorSelection(t *testing.T) {
	assert.Equal(t, "sqlite", openDialector("sqlite://blog.db").Name())
	assert.Equal(t, "sqlite", openDialector("blog.db").Name())
	assert.Equal(t, "mysql", openDialector("user:pw@tcp(db:3306)/blog").Name())
}
