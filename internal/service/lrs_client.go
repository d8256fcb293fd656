package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"oecd_explorer/internal/model"
)

// TelemetryEmitter 将语句发送到远端学习记录库
type TelemetryEmitter interface {
	Emit(ctx context.Context, cfg model.IntegrationConfig, stmt model.Statement) error
}

// LRSClient posts xAPI statements to a learning record store.
type LRSClient struct {
	HTTP *http.Client
}

func NewLRSClient(timeout time.Duration) *LRSClient {
	return &LRSClient{HTTP: &http.Client{Timeout: timeout}}
}

func StatementsURL(endpoint string) string {
	return strings.TrimRight(endpoint, "/") + "/statements"
}

func (c *LRSClient) Emit(ctx context.Context, cfg model.IntegrationConfig, stmt model.Statement) error {
	body, err := json.Marshal(stmt)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, StatementsURL(cfg.Endpoint), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Experience-API-Version", model.StatementVersion)
	if cfg.Key != "" || cfg.Secret != "" {
		req.SetBasicAuth(cfg.Key, cfg.Secret)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("LRS error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
