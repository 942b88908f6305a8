package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lexicon"
)

// Link is an anchor found in a document, resolved to an absolute URL.
type Link struct {
	Text string
	URL  string
}

// Links returns the anchors inside the elements matching selector, in
// document order. Each href is resolved against baseURL with its fragment
// stripped. Anchors without text, non-HTTP schemes, self-references and
// links to other hosts are skipped. Repeats are kept; callers dedupe.
func (d *Document) Links(selector, baseURL string) ([]Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, lexicon.Errorf(lexicon.EINVALID, "invalid base URL %q", baseURL)
	}

	var links []Link
	d.doc.Find(selector).Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		text := strings.Join(strings.Fields(a.Text()), " ")
		if text == "" {
			return
		}
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || isNonHTTPLink(href) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || !isSameHost(base, resolved) {
			return
		}
		links = append(links, Link{Text: text, URL: resolved})
	})
	return links, nil
}

// resolveURL resolves href against base and strips the fragment.
// It returns "" when href cannot be parsed or points back at base.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	self := *base
	self.Fragment = ""
	if result == self.String() {
		return ""
	}
	return result
}

// isSameHost uses exact host matching; subdomains are different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

func isNonHTTPLink(href string) bool {
	href = strings.ToLower(href)
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
