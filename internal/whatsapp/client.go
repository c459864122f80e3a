// Package whatsapp sends messages through a self-hosted WhatsApp gateway,
// enqueued as durable background jobs rather than sent synchronously.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/headuck/gophonelite/platform/config"
	"github.com/headuck/gophonelite/platform/logger"
	"github.com/headuck/gophonelite/platform/phone"
)

// TaskTypeSendMessage is the asynq task type this package enqueues and
// consumes.
const TaskTypeSendMessage = "whatsapp:send_message"

// SendMessagePayload is the asynq task payload for a queued send.
type SendMessagePayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Client gates outbound WhatsApp sends behind the phone classifier and
// hands accepted sends to a durable asynq queue instead of calling the
// gateway inline.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	log      *logger.Logger
	enqueuer *asynq.Client
}

// NewClient builds a gateway client, or nil if no gateway is configured.
func NewClient(cfg config.WhatsAppConfig, redisCfg config.RedisConfig, log *logger.Logger) *Client {
	if cfg.GetWhatsAppGatewayURL() == "" {
		return nil
	}

	redisOpt := asynq.RedisClientOpt{Addr: redisCfg.GetRedisAddr(), Password: redisCfg.GetRedisPassword(), DB: redisCfg.GetRedisDB()}

	return &Client{
		baseURL:  strings.TrimRight(cfg.GetWhatsAppGatewayURL(), "/"),
		apiKey:   cfg.GetWhatsAppAPIKey(),
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
		enqueuer: asynq.NewClient(redisOpt),
	}
}

// Close releases the underlying asynq client's connections.
func (c *Client) Close() error {
	if c == nil || c.enqueuer == nil {
		return nil
	}
	return c.enqueuer.Close()
}

// Enqueue validates and classifies phoneNumber and, only if it is a
// mobile-capable number, schedules a background job to send message
// through the gateway. Non-mobile-capable numbers are rejected outright:
// this bounded context exists to demonstrate the classifier gatekeeping a
// real send channel, not to guess at fallback delivery.
func (c *Client) Enqueue(ctx context.Context, phoneNumber, message string) error {
	if c == nil {
		return nil
	}

	if !isMobileCapable(phoneNumber) {
		return fmt.Errorf("whatsapp: %s is not classified as mobile-capable", phoneNumber)
	}

	payload, err := json.Marshal(SendMessagePayload{Phone: phoneNumber, Message: message})
	if err != nil {
		return fmt.Errorf("marshal whatsapp task payload: %w", err)
	}

	task := asynq.NewTask(TaskTypeSendMessage, payload)
	if _, err := c.enqueuer.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue whatsapp task: %w", err)
	}

	c.log.Info("whatsapp send enqueued", "phone", phoneNumber)
	return nil
}

// isMobileCapable reports whether phoneNumber's classified type can
// plausibly receive a WhatsApp message: MOBILE, or the shared
// FIXED_LINE_OR_MOBILE ambiguity NANPA-style regions produce.
func isMobileCapable(phoneNumber string) bool {
	switch phone.NumberType(phoneNumber) {
	case "MOBILE", "FIXED_LINE_OR_MOBILE":
		return true
	default:
		return false
	}
}

// HandleSendMessage is the asynq.HandlerFunc that performs the actual
// gateway call for a dequeued send-message task.
func (c *Client) HandleSendMessage(ctx context.Context, t *asynq.Task) error {
	var payload SendMessagePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal whatsapp task payload: %w", err)
	}
	return c.sendMessage(ctx, payload.Phone, payload.Message)
}

func (c *Client) sendMessage(ctx context.Context, phoneNumber, message string) error {
	normalized := strings.TrimPrefix(phone.NormalizeE164(phoneNumber), "+")

	body, err := json.Marshal(struct {
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}{Phone: normalized, Message: message})
	if err != nil {
		return fmt.Errorf("marshal whatsapp payload: %w", err)
	}

	url := fmt.Sprintf("%s/send/message", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", formatAuthHeader(c.apiKey))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	c.log.Info("whatsapp sent", "phone", normalized)
	return nil
}

// Worker runs the asynq consumer that dequeues send-message tasks and
// performs the actual gateway call.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	client *Client
	log    *logger.Logger
}

// NewWorker builds a Worker around client, or nil if client is nil.
func NewWorker(client *Client, redisCfg config.RedisConfig, asynqCfg config.AsynqConfig, log *logger.Logger) *Worker {
	if client == nil {
		return nil
	}

	redisOpt := asynq.RedisClientOpt{Addr: redisCfg.GetRedisAddr(), Password: redisCfg.GetRedisPassword(), DB: redisCfg.GetRedisDB()}

	queue := asynqCfg.GetAsynqQueueName()
	if queue == "" {
		queue = "whatsapp"
	}
	concurrency := asynqCfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{queue: 1},
	})

	mux := asynq.NewServeMux()
	w := &Worker{server: server, mux: mux, client: client, log: log}
	mux.HandleFunc(TaskTypeSendMessage, w.client.HandleSendMessage)
	return w
}

// Run blocks, processing tasks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("whatsapp worker stopped", "error", err)
	}
}

func formatAuthHeader(apiKey string) string {
	if strings.HasPrefix(strings.ToLower(apiKey), "basic ") {
		return apiKey
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(apiKey))
	return "Basic " + encoded
}
