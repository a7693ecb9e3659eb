// Package markup açıklama alanlarını yapılandırılmış dile göre HTML'e çevirir.
package markup

import (
	"bytes"

	"rehber.link/configs/configslog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
)

// Mode kaynak metnin yazıldığı işaretleme dilidir (CONTACT_MARKUP).
type Mode string

const (
	ModeMarkdown         Mode = "markdown"
	ModeRestructuredText Mode = "restructured_text"
	ModeTextile          Mode = "textile"
	ModeWYSIWYG          Mode = "wysiwyg"
	ModeHTML             Mode = "html"
	// ModePlain tanımsız/varsayılan moddur; etiketler temizlenir.
	ModePlain Mode = ""
)

// IsKnown mod için özel bir dönüştürücü olup olmadığını söyler.
func (m Mode) IsKnown() bool {
	switch m {
	case ModeMarkdown, ModeRestructuredText, ModeTextile, ModeWYSIWYG, ModeHTML:
		return true
	}
	return false
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Renderer tek bir moda bağlı, durumsuz dönüştürücüdür.
type Renderer struct {
	mode Mode
}

func NewRenderer(mode Mode) *Renderer {
	if mode != ModePlain && !mode.IsKnown() {
		configslog.Log.Warn("Bilinmeyen işaretleme modu, etiketler temizlenecek", zap.String("mode", string(mode)))
	}
	return &Renderer{mode: mode}
}

// Render kaynağı HTML'e çevirir. Hata döndürmez; dönüştürücü başarısız
// olursa etiketleri temizlenmiş metne düşer.
func (r *Renderer) Render(src string) string {
	switch r.mode {
	case ModeMarkdown:
		var buf bytes.Buffer
		if err := md.Convert([]byte(src), &buf); err != nil {
			configslog.Log.Error("Markdown dönüştürülemedi", zap.Error(err))
			return StripTags(src)
		}
		return buf.String()
	case ModeRestructuredText:
		return RestructuredText(src)
	case ModeTextile:
		return Textile(src)
	case ModeWYSIWYG, ModeHTML:
		return src
	default:
		return StripTags(src)
	}
}
