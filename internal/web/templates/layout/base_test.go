package layout

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseWrapsChildren(t *testing.T) {
	body := templ.Raw(`<section id="content">hello</section>`)
	ctx := templ.WithChildren(context.Background(), body)

	var buf bytes.Buffer
	require.NoError(t, Base(PageData{Title: "Вход", TabID: "tab-3"}).Render(ctx, &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "Вход | MAJOR", doc.Find("title").Text())
	assert.Equal(t, "tab-3", doc.Find("body").AttrOr("data-tab", ""))
	assert.Equal(t, "hello", doc.Find("main#main #content").Text())
	assert.Equal(t, 1, doc.Find("#dialog").Length())
	assert.Equal(t, 0, doc.Find("#toast").Length())
	assert.Contains(t, doc.Find("script:not([src])").Text(), "session-changed")
}

func TestBaseDefaultTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Base(PageData{}).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "<title>MAJOR</title>")
}

func TestToast(t *testing.T) {
	var buf bytes.Buffer
	flash := &FlashMessage{Type: "error", Title: "Ошибка", Message: `<script>alert(1)</script>`}
	require.NoError(t, Toast(flash).Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	toast := doc.Find("#toast")
	assert.True(t, toast.HasClass("toast"))
	assert.True(t, toast.HasClass("toast-error"))
	assert.Equal(t, "Ошибка", toast.Find(".toast-title").Text())
	assert.Equal(t, `<script>alert(1)</script>`, toast.Find(".toast-message").Text())
	assert.Equal(t, 0, toast.Find("script").Length())
}

func TestToastOptionalParts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Toast(&FlashMessage{Type: "info", Message: "До встречи"}).Render(context.Background(), &buf))
	assert.NotContains(t, buf.String(), "toast-title")

	buf.Reset()
	require.NoError(t, Toast(nil).Render(context.Background(), &buf))
	assert.Empty(t, buf.String())
}
