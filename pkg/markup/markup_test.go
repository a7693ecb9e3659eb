package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPassThroughModes(t *testing.T) {
	src := `<p>Merhaba <script>alert(1)</script> & "dünya"</p>`

	for _, mode := range []Mode{ModeHTML, ModeWYSIWYG} {
		assert.Equal(t, src, NewRenderer(mode).Render(src), string(mode))
	}
}

func TestRenderUnknownModeStripsTags(t *testing.T) {
	src := `<p>Hello <b>World</b></p><!-- hidden -->`

	assert.Equal(t, "Hello World", NewRenderer(Mode("bbcode")).Render(src))
	assert.Equal(t, "Hello World", NewRenderer(ModePlain).Render(src))
}

func TestRenderMarkdown(t *testing.T) {
	out := NewRenderer(ModeMarkdown).Render("# Başlık\n\nBu **kalın** metin.")

	assert.Contains(t, out, "<h1>Başlık</h1>")
	assert.Contains(t, out, "<p>Bu <strong>kalın</strong> metin.</p>")
}

func TestRenderDispatchesTextileAndRst(t *testing.T) {
	assert.Equal(t, "<p><strong>a</strong></p>", NewRenderer(ModeTextile).Render("*a*"))
	assert.Equal(t, "<p><strong>a</strong></p>", NewRenderer(ModeRestructuredText).Render("**a**"))
}

func TestRenderIsIdempotent(t *testing.T) {
	src := "h1. Hi\n\nSome _text_ with <b>tags</b>."
	for _, mode := range []Mode{ModeMarkdown, ModeRestructuredText, ModeTextile, ModeHTML, ModePlain} {
		r := NewRenderer(mode)
		assert.Equal(t, r.Render(src), r.Render(src), string(mode))
	}
}

func TestModeIsKnown(t *testing.T) {
	assert.True(t, ModeMarkdown.IsKnown())
	assert.True(t, ModeWYSIWYG.IsKnown())
	assert.False(t, ModePlain.IsKnown())
	assert.False(t, Mode("creole").IsKnown())
}

func TestStripTags(t *testing.T) {
	tests := map[string]string{
		"":                                  "",
		"düz metin":                         "düz metin",
		"<p>a</p><p>b</p>":                  "ab",
		"Tom &amp; Jerry <i>show</i>":       "Tom &amp; Jerry show",
		"1 < 2 ve 3 > 2":                    "1 &lt; 2 ve 3 &gt; 2",
		`<a href="http://x.y">link</a> son`: "link son",
		"<br/>satır<br />":                  "satır",
	}
	for in, want := range tests {
		assert.Equal(t, want, StripTags(in), in)
	}
}

func TestStripTagsLeavesNoMarkup(t *testing.T) {
	inputs := []string{
		`<textarea><img src=x onerror=alert(1)></textarea>`,
		`<<script>script>alert(1)<</script>/script>`,
		`<title><b>bold</b></title>`,
		`<style>body{}</style><p>a<script>alert(1)</script>b</p>`,
		`<<b>b>kalın<</b>/b>`,
		`yarım <img src=x onerror="alert(1)"`,
		`<svg><a xlink:href="javascript:alert(1)">x</a></svg>`,
	}
	for _, in := range inputs {
		out := NewRenderer(ModePlain).Render(in)
		assert.NotContains(t, out, "<", in)
		assert.NotContains(t, out, ">", in)
	}

	assert.Equal(t, "ab", StripTags(`<p>a<script>alert(1)</script>b</p>`))
}
