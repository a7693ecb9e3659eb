package configs

import (
	"rehber.link/configs/configslog"
	"rehber.link/pkg/markup"
	"rehber.link/pkg/queryparams"

	"go.uber.org/zap"
)

// ContactConfig rehber modülünün başlangıçta okunan ayarlarıdır.
// Handler ve servislere constructor üzerinden verilir.
type ContactConfig struct {
	Markup           markup.Mode // CONTACT_MARKUP
	PaginateBy       int         // CONTACT_PAGINATE_BY
	DashboardEnabled bool        // CONTACT_DASHBOARD_ENABLED
}

// LoadContactConfig ayarları ortam değişkenlerinden okur.
func LoadContactConfig() ContactConfig {
	cfg := ContactConfig{
		Markup:           markup.Mode(GetEnv("CONTACT_MARKUP", "")),
		PaginateBy:       GetEnvInt("CONTACT_PAGINATE_BY", queryparams.DefaultPerPage),
		DashboardEnabled: GetEnvBool("CONTACT_DASHBOARD_ENABLED", false),
	}
	cfg.Normalize()
	return cfg
}

// Normalize sayfa boyutunu geçerli aralığa çeker.
func (c *ContactConfig) Normalize() {
	if c.PaginateBy <= 0 {
		c.PaginateBy = queryparams.DefaultPerPage
	}
	if c.PaginateBy > queryparams.MaxPerPage {
		configslog.Log.Warn("CONTACT_PAGINATE_BY üst sınırı aşıyor, sınır kullanılacak",
			zap.Int("value", c.PaginateBy), zap.Int("max", queryparams.MaxPerPage))
		c.PaginateBy = queryparams.MaxPerPage
	}
}
