// Package audio generates pronunciation clips for vocabulary words.
package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const ttsRequestTimeout = 10 * time.Second

// TTSService fetches spoken renditions of words and caches them as MP3
// files in a local directory
type TTSService struct {
	audioDir string
	client   *http.Client
	baseURL  string
}

// NewTTSService creates a TTS service caching files under audioDir
func NewTTSService(audioDir string) *TTSService {
	return &TTSService{
		audioDir: audioDir,
		client:   &http.Client{Timeout: ttsRequestTimeout},
		baseURL:  "https://translate.google.com/translate_tts",
	}
}

// PronunciationFile returns the path of the cached MP3 for word, fetching
// and caching it on first use
func (s *TTSService) PronunciationFile(ctx context.Context, word string) (string, error) {
	sanitized := strings.ToLower(strings.TrimSpace(word))
	sanitized = strings.ReplaceAll(sanitized, " ", "_")

	filename := fmt.Sprintf("word_%s.mp3", sanitized)
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(s.audioDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	if err := s.fetchGoogleTTS(ctx, word, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}

	return path, nil
}

// fetchGoogleTTS uses Google Translate's free text-to-speech endpoint
func (s *TTSService) fetchGoogleTTS(ctx context.Context, text, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "en")
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	ctx, cancel := context.WithTimeout(ctx, ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Google rejects requests without a browser user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}

// Prune removes cached clips for words no longer in the given set
func (s *TTSService) Prune(keep map[string]bool) error {
	files, err := os.ReadDir(s.audioDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read audio directory: %w", err)
	}

	for _, file := range files {
		name := file.Name()
		if file.IsDir() || filepath.Ext(name) != ".mp3" {
			continue
		}
		word := strings.TrimSuffix(strings.TrimPrefix(name, "word_"), ".mp3")
		word = strings.ReplaceAll(word, "_", " ")
		if !keep[word] {
			if err := os.Remove(filepath.Join(s.audioDir, name)); err != nil {
				return fmt.Errorf("failed to remove %s: %w", name, err)
			}
		}
	}

	return nil
}
