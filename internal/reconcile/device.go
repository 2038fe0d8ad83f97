package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/vending/internal/domain"
	"github.com/GlebRadaev/vending/pkg/clients"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	maxRetryAfter = time.Second * 30
)

var ErrRateLimited = errors.New("device controller rate limit")

// DeviceResponse is the controller's record of a dispense.
type DeviceResponse struct {
	OrderID        string `json:"order_id"`
	DeviceResponse string `json:"device_response"`
}

type Device struct {
	url           string
	client        clients.HTTPClientI
	maxRetries    uint64
	retryInterval time.Duration
}

func NewDevice(url string, client clients.HTTPClientI) *Device {
	return &Device{
		url:           url,
		client:        client,
		maxRetries:    maxRetries,
		retryInterval: retryInterval,
	}
}

// Outcome asks the device controller how the dispense of orderID ended.
// reported is false while the controller has no result for the order.
func (d *Device) Outcome(ctx context.Context, orderID string) (outcome domain.DeviceOutcome, reported bool, err error) {
	url := d.url + "/api/dispenses/" + orderID
	backoff := retry.WithMaxRetries(d.maxRetries, retry.NewConstant(d.retryInterval))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		statusCode, respBody, respHeaders, err := d.client.Get(ctx, url, nil)
		if err != nil {
			return retry.RetryableError(err)
		}

		switch {
		case statusCode == http.StatusOK:
			outcome, err = parseOutcome(orderID, respBody)
			reported = err == nil
			return err
		case statusCode == http.StatusNotFound, statusCode == http.StatusNoContent:
			return nil
		case statusCode == http.StatusTooManyRequests:
			return d.waitRateLimit(ctx, orderID, respHeaders)
		case statusCode >= http.StatusInternalServerError:
			zap.L().Warn("Device controller error, retrying", zap.String("order_id", orderID), zap.Int("status", statusCode))
			return retry.RetryableError(fmt.Errorf("unexpected status code %d", statusCode))
		default:
			return fmt.Errorf("unexpected status code %d", statusCode)
		}
	})
	if err != nil {
		return domain.DeviceOutcome{}, false, fmt.Errorf("query device for order %s: %w", orderID, err)
	}
	return outcome, reported, nil
}

func parseOutcome(orderID string, body []byte) (domain.DeviceOutcome, error) {
	var resp DeviceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.DeviceOutcome{}, fmt.Errorf("failed to parse response body: %w", err)
	}
	if resp.OrderID != orderID {
		return domain.DeviceOutcome{}, fmt.Errorf("order id mismatch: expected %s, got %s", orderID, resp.OrderID)
	}
	return domain.ParseDeviceOutcome(resp.DeviceResponse)
}

// waitRateLimit honours Retry-After on top of the constant backoff.
func (d *Device) waitRateLimit(ctx context.Context, orderID string, respHeaders http.Header) error {
	var wait time.Duration
	if seconds, err := strconv.Atoi(respHeaders.Get("Retry-After")); err == nil && seconds > 0 {
		wait = min(time.Duration(seconds)*time.Second, maxRetryAfter)
	}
	zap.L().Warn("Rate limit detected, retrying", zap.String("order_id", orderID), zap.Duration("retry_after", wait))

	if wait > 0 {
		t := time.NewTimer(wait)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return retry.RetryableError(ErrRateLimited)
}
