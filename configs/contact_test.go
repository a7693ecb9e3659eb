package configs

import (
	"testing"

	"rehber.link/configs/configslog"
	"rehber.link/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	prev := configslog.Log
	configslog.Log = zap.New(core)
	t.Cleanup(func() { configslog.Log = prev })
	return logs
}

func TestNormalizeClampsPageSizeWithWarning(t *testing.T) {
	logs := observeLogs(t)

	cfg := ContactConfig{PaginateBy: 500}
	cfg.Normalize()

	assert.Equal(t, queryparams.MaxPerPage, cfg.PaginateBy)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(500), logs.All()[0].ContextMap()["value"])
}

func TestNormalizeKeepsValidPageSize(t *testing.T) {
	logs := observeLogs(t)

	cfg := ContactConfig{PaginateBy: 7}
	cfg.Normalize()
	assert.Equal(t, 7, cfg.PaginateBy)

	cfg = ContactConfig{PaginateBy: 0}
	cfg.Normalize()
	assert.Equal(t, queryparams.DefaultPerPage, cfg.PaginateBy)

	assert.Zero(t, logs.Len())
}

func TestLoadContactConfig(t *testing.T) {
	t.Setenv("CONTACT_MARKUP", "markdown")
	t.Setenv("CONTACT_PAGINATE_BY", "15")
	t.Setenv("CONTACT_DASHBOARD_ENABLED", "true")

	cfg := LoadContactConfig()
	assert.Equal(t, ContactConfig{Markup: "markdown", PaginateBy: 15, DashboardEnabled: true}, cfg)
}
