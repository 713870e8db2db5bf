package cmd_test

import (
	"testing"
	"time"

	"fulfillment/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_NAME", "fulfillment")

	cfg, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 2, cfg.Workload.Cap)
	assert.Equal(t, "0 0 21 * * *", cfg.DayEnd.Cron)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "fulfillment")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("STAFF", "alice:packing,admin:admin")

	cfg, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, time.UTC, cfg.Location())

	seeds, err := cfg.StaffSeeds()
	require.NoError(t, err)
	assert.Equal(t, []cmd.StaffSeed{
		{Username: "alice", Role: "packing"},
		{Username: "admin", Role: "admin"},
	}, seeds)
}

func TestLoadConfig_RejectsOtherWorkloadCap(t *testing.T) {
	t.Setenv("DB_NAME", "fulfillment")
	t.Setenv("WORKLOAD_CAP", "3")

	_, err := cmd.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workload.cap")
}

func TestConfig_Validate(t *testing.T) {
	cfg := cmd.Config{
		HTTP:     cmd.HTTPConfig{Port: 0},
		Workload: cmd.WorkloadConfig{Cap: 2},
		Timezone: "Mars/Olympus",
		Staff:    []string{"nobody"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http.port")
	assert.Contains(t, err.Error(), "db.name")
	assert.Contains(t, err.Error(), "timezone")
	assert.Contains(t, err.Error(), "username:role")
}

func TestDBConfig_DSN(t *testing.T) {
	dsn := cmd.DBConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SslMode: "disable",
	}.DSN("Asia/Kolkata")

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable TimeZone=Asia/Kolkata", dsn)
}
