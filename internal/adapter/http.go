package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-secure-telemetry/internal/config"
	"github.com/MKhiriev/go-secure-telemetry/internal/logger"
	"github.com/MKhiriev/go-secure-telemetry/models"
	"github.com/go-resty/resty/v2"
)

type masterHTTPAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPMasterAdapter constructs an HTTP/REST implementation of
// [MasterAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL and the bounded request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPMasterAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (MasterAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &masterHTTPAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListTargets implements [MasterAdapter].
func (h *masterHTTPAdapter) ListTargets(ctx context.Context) ([]models.Target, error) {
	var targets []models.Target
	if err := h.getJSON(ctx, RouteTargets, nil, &targets); err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	return targets, nil
}

// GetLibraryFile implements [MasterAdapter]. The file content is returned
// verbatim.
func (h *masterHTTPAdapter) GetLibraryFile(ctx context.Context, file string) ([]byte, error) {
	path, err := BuildRoute(RouteLibraryFile, map[string]string{"file": file})
	if err != nil {
		return nil, err
	}

	resp, err := h.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("library file request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("library file: %w", err)
	}
	return resp.Body(), nil
}

// GetConfig implements [MasterAdapter]. The configuration document is
// device-defined, so it is returned undecoded.
func (h *masterHTTPAdapter) GetConfig(ctx context.Context, device string) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := h.getJSON(ctx, RouteConfig, deviceParams(device), &doc); err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}
	return doc, nil
}

// FetchSnapshot implements [MasterAdapter].
func (h *masterHTTPAdapter) FetchSnapshot(ctx context.Context, device string) (models.Snapshot, error) {
	var snap models.Snapshot
	if err := h.getJSON(ctx, RouteData, deviceParams(device), &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch snapshot: %w", err)
	}
	return snap, nil
}

// FetchEncryptedSnapshot implements [MasterAdapter]. Chunk order is
// preserved exactly as received.
func (h *masterHTTPAdapter) FetchEncryptedSnapshot(ctx context.Context, device string) (models.EncryptedSnapshot, error) {
	var snap models.EncryptedSnapshot
	if err := h.getJSON(ctx, RouteDataEncrypted, deviceParams(device), &snap); err != nil {
		return models.EncryptedSnapshot{}, fmt.Errorf("fetch encrypted snapshot: %w", err)
	}
	return snap, nil
}

// SendCommand implements [MasterAdapter].
func (h *masterHTTPAdapter) SendCommand(ctx context.Context, device, command string) error {
	err := h.postJSON(ctx, RouteCommand, deviceParams(device), models.CommandRequest{Command: command}, nil)
	if err != nil {
		return fmt.Errorf("send command: %w", err)
	}
	return nil
}

// SetVerbose implements [MasterAdapter].
func (h *masterHTTPAdapter) SetVerbose(ctx context.Context, device string, on bool) error {
	err := h.postJSON(ctx, RouteVerbose, deviceParams(device), models.VerboseRequest{Enabled: on}, nil)
	if err != nil {
		return fmt.Errorf("set verbose: %w", err)
	}
	return nil
}

// SetStream implements [MasterAdapter].
func (h *masterHTTPAdapter) SetStream(ctx context.Context, device string, on bool) error {
	err := h.postJSON(ctx, RouteStream, deviceParams(device), models.StreamRequest{Enabled: on}, nil)
	if err != nil {
		return fmt.Errorf("set stream: %w", err)
	}
	return nil
}

// SetFrequency implements [MasterAdapter].
func (h *masterHTTPAdapter) SetFrequency(ctx context.Context, device string, hertz int) error {
	err := h.postJSON(ctx, RouteFrequency, deviceParams(device), models.FrequencyRequest{Hertz: hertz}, nil)
	if err != nil {
		return fmt.Errorf("set frequency: %w", err)
	}
	return nil
}

// WriteTag implements [MasterAdapter].
func (h *masterHTTPAdapter) WriteTag(ctx context.Context, device string, record models.EncryptedTagRecord) (bool, error) {
	var ack models.Ack
	if err := h.postJSON(ctx, RouteTagWrite, deviceParams(device), record, &ack); err != nil {
		return false, fmt.Errorf("write tag: %w", err)
	}
	return ack.Success, nil
}

// WriteTagBatch implements [MasterAdapter].
func (h *masterHTTPAdapter) WriteTagBatch(ctx context.Context, device string, batch models.TagWriteBatch) (bool, error) {
	var ack models.Ack
	if err := h.postJSON(ctx, RouteTagWriteBatch, deviceParams(device), batch, &ack); err != nil {
		return false, fmt.Errorf("write tag batch: %w", err)
	}
	return ack.Success, nil
}

// ExchangeKey implements [MasterAdapter].
func (h *masterHTTPAdapter) ExchangeKey(ctx context.Context, device, publicKey string) (models.KeyExchangeResponse, error) {
	var resp models.KeyExchangeResponse
	err := h.postJSON(ctx, RouteKeyExchange, deviceParams(device), models.KeyExchangeRequest{PublicKey: publicKey}, &resp)
	if err != nil {
		return models.KeyExchangeResponse{}, fmt.Errorf("exchange key: %w", err)
	}
	return resp, nil
}

// ResetDefaults implements [MasterAdapter].
func (h *masterHTTPAdapter) ResetDefaults(ctx context.Context, device string) error {
	if err := h.postJSON(ctx, RouteReset, deviceParams(device), nil, nil); err != nil {
		return fmt.Errorf("reset defaults: %w", err)
	}
	return nil
}

// EnableLogging implements [MasterAdapter].
func (h *masterHTTPAdapter) EnableLogging(ctx context.Context, device string, periodMS int64) (models.LoggingAck, error) {
	var ack models.LoggingAck
	err := h.postJSON(ctx, RouteLoggingEnable, deviceParams(device), models.LoggingEnableRequest{PeriodMS: periodMS}, &ack)
	if err != nil {
		return models.LoggingAck{}, fmt.Errorf("enable logging: %w", err)
	}
	return ack, nil
}

// DisableLogging implements [MasterAdapter].
func (h *masterHTTPAdapter) DisableLogging(ctx context.Context, device string) error {
	if err := h.postJSON(ctx, RouteLoggingDisable, deviceParams(device), nil, nil); err != nil {
		return fmt.Errorf("disable logging: %w", err)
	}
	return nil
}

// ListLoggingSessions implements [MasterAdapter].
func (h *masterHTTPAdapter) ListLoggingSessions(ctx context.Context, device string) ([]models.LoggingSessionInfo, error) {
	var sessions []models.LoggingSessionInfo
	if err := h.getJSON(ctx, RouteLoggingSessions, deviceParams(device), &sessions); err != nil {
		return nil, fmt.Errorf("list logging sessions: %w", err)
	}
	return sessions, nil
}

// FetchLoggingData implements [MasterAdapter].
func (h *masterHTTPAdapter) FetchLoggingData(ctx context.Context, device, key string) (json.RawMessage, error) {
	var doc json.RawMessage
	err := h.getJSON(ctx, RouteLoggingData, map[string]string{"device": device, "key": key}, &doc)
	if err != nil {
		return nil, fmt.Errorf("fetch logging data: %w", err)
	}
	return doc, nil
}

func (h *masterHTTPAdapter) getJSON(ctx context.Context, route Route, params map[string]string, out any) error {
	path, err := BuildRoute(route, params)
	if err != nil {
		return err
	}

	resp, err := h.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Str("route", string(route)).Int("status", resp.StatusCode()).Msg("master request failed")
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", route, err)
	}
	return nil
}

func (h *masterHTTPAdapter) postJSON(ctx context.Context, route Route, params map[string]string, body, out any) error {
	path, err := BuildRoute(route, params)
	if err != nil {
		return err
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Str("route", string(route)).Int("status", resp.StatusCode()).Msg("master request failed")
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", route, err)
	}
	return nil
}

func deviceParams(device string) map[string]string {
	return map[string]string{"device": device}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), body)
}
