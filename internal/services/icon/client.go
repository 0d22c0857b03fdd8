package icon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-app/internal/models"
)

const maxIconSize = 1 << 20

var (
	ErrInvalidCode = errors.New("invalid icon code")
	ErrFetchFailed = errors.New("icon fetch failed")

	codePattern = regexp.MustCompile(`^[0-9]{2}[dn]$`)
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Image struct {
	ContentType string
	Data        []byte
}

// Client downloads weather pictograms from the icon host.
type Client struct {
	template string
	client   HTTPClient
	logger   zerolog.Logger
}

func NewClient(template string, httpClient HTTPClient, logger zerolog.Logger) *Client {
	return &Client{template: template, client: httpClient, logger: logger}
}

func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

func (c *Client) URL(code string) string {
	return models.Weather{Icon: code}.IconURL(c.template)
}

func (c *Client) Fetch(ctx context.Context, code string) (Image, error) {
	if !ValidCode(code) {
		return Image{}, ErrInvalidCode
	}

	url := c.URL(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("icon", code).Msg("icon request failed")
		return Image{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error().Err(cerr).Str("icon", code).Msg("failed to close icon body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("icon", code).Msg("icon host returned non-200 status")
		return Image{}, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIconSize))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return Image{ContentType: contentType, Data: data}, nil
}
