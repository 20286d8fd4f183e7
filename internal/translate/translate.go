// Package translate resolves English words to Traditional Chinese. Lookups
// hit a small static dictionary first and fall back to the free MyMemory
// translation API; translation never fails the caller.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"notebook/internal/models"
)

const requestTimeout = 10 * time.Second

// Translator looks up word translations
type Translator struct {
	client  *http.Client
	baseURL string
	dict    map[string]string
}

// New creates a translator backed by the builtin dictionary and MyMemory
func New() *Translator {
	return &Translator{
		client:  &http.Client{Timeout: requestTimeout},
		baseURL: "https://api.mymemory.translated.net/get",
		dict:    dictionary,
	}
}

// NewWithEndpoint creates a translator against a custom API endpoint (tests)
func NewWithEndpoint(baseURL string, client *http.Client) *Translator {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Translator{client: client, baseURL: baseURL, dict: dictionary}
}

// Translate returns the Traditional Chinese rendering of word. On any
// failure it returns the word bracketed as untranslated; it never errors.
func (t *Translator) Translate(ctx context.Context, word string) string {
	key := models.Key(word)

	if translation, ok := t.dict[key]; ok {
		return translation
	}

	translation, err := t.translateOnline(ctx, word)
	if err != nil {
		log.Printf("Translation lookup failed for %q: %v", word, err)
		return "[" + word + "]"
	}
	return translation
}

// mymemoryResponse is the slice of the API response we care about
type mymemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

func (t *Translator) translateOnline(ctx context.Context, word string) (string, error) {
	params := url.Values{}
	params.Set("q", word)
	params.Set("langpair", "en|zh-TW")

	req, err := http.NewRequestWithContext(ctx, "GET", t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch translation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body mymemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if body.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("empty translation for %q", word)
	}
	return body.ResponseData.TranslatedText, nil
}
