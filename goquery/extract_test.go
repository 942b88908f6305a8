package goquery_test

import (
	"testing"

	"github.com/fwojciec/lexicon"
	"github.com/fwojciec/lexicon/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Links(t *testing.T) {
	t.Parallel()

	t.Run("resolves anchors inside the selection in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<html><body>
<nav><a href="/nav/">Navigation</a></nav>
<ul class="index">
	<li><a href="/addClass/">.addClass()</a></li>
	<li><a href="ajax/">jQuery.ajax()</a></li>
	<li><a href="https://api.example.com/data/">  .data()  </a></li>
</ul>
</body></html>`)
		require.NoError(t, err)

		links, err := doc.Links(".index", "https://api.example.com/docs/")

		require.NoError(t, err)
		assert.Equal(t, []goquery.Link{
			{Text: ".addClass()", URL: "https://api.example.com/addClass/"},
			{Text: "jQuery.ajax()", URL: "https://api.example.com/docs/ajax/"},
			{Text: ".data()", URL: "https://api.example.com/data/"},
		}, links)
	})

	t.Run("strips fragments and keeps repeats", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<div class="index">
<a href="/fadeIn/">.fadeIn()</a>
<a href="/fadeIn/#examples">.fadeIn() examples</a>
</div>`)
		require.NoError(t, err)

		links, err := doc.Links(".index", "https://api.example.com/")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, links[0].URL, links[1].URL)
	})

	t.Run("skips unusable anchors", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<div class="index">
<a href="mailto:team@example.com">Mail</a>
<a href="JavaScript:void(0)">Script</a>
<a href="#top">Top</a>
<a href="https://other.example.com/x/">Elsewhere</a>
<a href="https://sub.api.example.com/y/">Subdomain</a>
<a href="/empty/"> </a>
<a>No href</a>
<a href="/kept/">Kept</a>
</div>`)
		require.NoError(t, err)

		links, err := doc.Links(".index", "https://api.example.com/")

		require.NoError(t, err)
		assert.Equal(t, []goquery.Link{{Text: "Kept", URL: "https://api.example.com/kept/"}}, links)
	})

	t.Run("no matches yields no links", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<p>nothing</p>`)
		require.NoError(t, err)

		links, err := doc.Links(".index", "https://api.example.com/")

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("rejects a base without host", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<p>nothing</p>`)
		require.NoError(t, err)

		_, err = doc.Links(".index", "/relative/")

		assert.Equal(t, lexicon.EINVALID, lexicon.ErrorCode(err))
	})
}
