package charactersync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
	sheeterr "github.com/KirkDiggler/dnd-character-sheet/internal/errors"
	"github.com/KirkDiggler/dnd-character-sheet/internal/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader is sent on every call so both sides can correlate logs
	RequestIDHeader = "X-Request-ID"

	defaultTimeout = 10 * time.Second

	// maxBodyBytes bounds how much of a response is read
	maxBodyBytes = 1 << 20
)

// Client talks to the remote character endpoint at {BaseURL}/{owner}/character
type Client struct {
	baseURL    string
	httpClient *http.Client
	ids        uuid.Generator
	logger     *zap.Logger
}

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	IDs        uuid.Generator
	Logger     *zap.Logger
}

func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, sheeterr.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		return nil, sheeterr.InvalidArgument("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, sheeterr.WrapWithCode(err, sheeterr.CodeInvalidArgument, "invalid base URL")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		ids:        ids,
		logger:     logger.Named("charactersync"),
	}, nil
}

// loadEnvelope is the GET response shape
type loadEnvelope struct {
	Body *payload `json:"body"`
}

// payload is both the GET body and the POST request
type payload struct {
	Attributes map[string]int `json:"attributes"`
	Skills     map[string]int `json:"skills"`
}

func (c *Client) characterURL(ownerID string) string {
	return fmt.Sprintf("%s/%s/character", c.baseURL, url.PathEscape(ownerID))
}

// Load fetches the stored snapshot. Any transport failure, non-2xx status or
// payload that does not match the schema is an error; the caller decides
// what to fall back to.
func (c *Client) Load(ctx context.Context, ownerID string) (*character.Snapshot, error) {
	if ownerID == "" {
		return nil, sheeterr.InvalidArgument("owner ID is required")
	}

	requestID := c.ids.New()
	log := c.logger.With(zap.String("owner_id", ownerID), zap.String("request_id", requestID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.characterURL(ownerID), nil)
	if err != nil {
		return nil, sheeterr.Wrap(err, "failed to build load request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("character load failed", zap.Error(err))
		return nil, sheeterr.Unavailable(err, "failed to load character").WithMeta("owner_id", ownerID)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, sheeterr.Unavailable(err, "failed to read load response").WithMeta("owner_id", ownerID)
	}

	log.Debug("character load response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, sheeterr.Unavailable(nil, fmt.Sprintf("load returned status %d", resp.StatusCode)).
			WithMeta("owner_id", ownerID).
			WithMeta("status", resp.StatusCode)
	}

	snapshot, err := decodeLoad(raw)
	if err != nil {
		return nil, sheeterr.Wrap(err, "failed to decode character").WithMeta("owner_id", ownerID)
	}
	return snapshot, nil
}

func decodeLoad(raw []byte) (*character.Snapshot, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, sheeterr.WrapWithCode(err, sheeterr.CodeValidation, "response is not JSON")
	}
	if err := loadSchema.Validate(doc); err != nil {
		return nil, sheeterr.WrapWithCode(err, sheeterr.CodeValidation, "response does not match character schema")
	}

	var envelope loadEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, sheeterr.WrapWithCode(err, sheeterr.CodeValidation, "failed to decode character body")
	}

	snapshot := &character.Snapshot{
		Attributes: make(map[shared.Attribute]int, len(envelope.Body.Attributes)),
		Skills:     envelope.Body.Skills,
	}
	for name, score := range envelope.Body.Attributes {
		snapshot.Attributes[shared.Attribute(name)] = score
	}
	return snapshot, nil
}

// Save posts the full snapshot. Any non-2xx response is a failure.
func (c *Client) Save(ctx context.Context, ownerID string, snapshot *character.Snapshot) error {
	if ownerID == "" {
		return sheeterr.InvalidArgument("owner ID is required")
	}
	if snapshot == nil {
		return sheeterr.InvalidArgument("snapshot is required")
	}

	body := payload{
		Attributes: make(map[string]int, len(snapshot.Attributes)),
		Skills:     snapshot.Skills,
	}
	for attr, score := range snapshot.Attributes {
		body.Attributes[string(attr)] = score
	}

	data, err := json.Marshal(body)
	if err != nil {
		return sheeterr.Wrap(err, "failed to encode character")
	}

	requestID := c.ids.New()
	log := c.logger.With(zap.String("owner_id", ownerID), zap.String("request_id", requestID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.characterURL(ownerID), bytes.NewReader(data))
	if err != nil {
		return sheeterr.Wrap(err, "failed to build save request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("character save failed", zap.Error(err))
		return sheeterr.Unavailable(err, "failed to save character").WithMeta("owner_id", ownerID)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("character save rejected", zap.Int("status", resp.StatusCode))
		return sheeterr.Unavailable(nil, fmt.Sprintf("save returned status %d", resp.StatusCode)).
			WithMeta("owner_id", ownerID).
			WithMeta("status", resp.StatusCode)
	}

	log.Info("character saved")
	return nil
}
