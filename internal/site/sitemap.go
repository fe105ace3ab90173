package site

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// absoluteBaseURL returns raw without a trailing slash when it is an
// absolute http or https URL.
func absoluteBaseURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}
	return strings.TrimSuffix(u.String(), "/"), true
}

func (b *Builder) writeSitemap(base string, pages []Page, modified time.Time) error {
	set := urlSet{Xmlns: sitemapNamespace}
	lastMod := modified.Format("2006-01-02")
	for _, p := range pages {
		loc := base + p.Path
		if p.Path != "/" {
			loc += "/"
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: loc, LastMod: lastMod})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return b.writeFile("sitemap.xml", append([]byte(xml.Header), data...))
}
