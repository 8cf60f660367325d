package scraper

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// VideoMetaScraper fetches a video page and pulls title and thumbnail from
// its Open Graph tags, falling back to the <title> element.
type VideoMetaScraper struct {
	client *http.Client
}

func NewVideoMetaScraper() *VideoMetaScraper {
	return &VideoMetaScraper{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *VideoMetaScraper) Fetch(url string) (string, string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; fitpulse-bot/1.0)")

	res, err := s.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fetching %s: status %d", url, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return "", "", err
	}

	title := metaContent(doc, "og:title")
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	thumbnail := metaContent(doc, "og:image")

	if title == "" && thumbnail == "" {
		log.Warn().Str("url", url).Msg("page had no usable metadata")
	}
	return title, thumbnail, nil
}

func metaContent(doc *goquery.Document, property string) string {
	sel := fmt.Sprintf(`meta[property="%s"]`, property)
	content, _ := doc.Find(sel).First().Attr("content")
	return strings.TrimSpace(content)
}
