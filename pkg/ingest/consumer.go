/*
 * Copyright 2026 EdgeFleet Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/models"
	"github.com/edgefleet/fleetstate/pkg/registry"
)

const (
	defaultMaxPullMessages = 32
	defaultPullExpiry      = 30 * time.Second
	defaultMaxDeliver      = 3
	defaultAckWait         = 30 * time.Second
)

// Consumer pulls heartbeat reports from a JetStream stream and feeds them to
// the ingestor. Invalid reports are acked away; transient failures are
// nak'd so JetStream redelivers.
type Consumer struct {
	ingestor *Ingestor
	consumer jetstream.Consumer
	logger   logger.Logger
	stream   string
	name     string
}

// NewConsumer creates or resumes a durable pull consumer on the heartbeat
// stream.
func NewConsumer(
	ctx context.Context, js jetstream.JetStream, ingestor *Ingestor,
	cfg *models.NATSConfig, log logger.Logger) (*Consumer, error) {
	consumer, err := js.Consumer(ctx, cfg.Stream, cfg.ConsumerName)
	if err != nil {
		consumerCfg := jetstream.ConsumerConfig{
			Durable:       cfg.ConsumerName,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       defaultAckWait,
			MaxDeliver:    defaultMaxDeliver,
			FilterSubject: cfg.Subject,
		}

		consumer, err = js.CreateConsumer(ctx, cfg.Stream, consumerCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create heartbeat consumer: %w", err)
		}
	}

	return &Consumer{
		ingestor: ingestor,
		consumer: consumer,
		logger:   log.WithComponent("heartbeat-consumer"),
		stream:   cfg.Stream,
		name:     cfg.ConsumerName,
	}, nil
}

// ProcessMessages runs the pull loop until ctx is cancelled.
func (c *Consumer) ProcessMessages(ctx context.Context) {
	c.logger.Info().
		Str("stream", c.stream).
		Str("consumer", c.name).
		Msg("Starting heartbeat pull consumer")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("Stopping heartbeat consumer")
			return
		default:
			msgs, err := c.consumer.Fetch(defaultMaxPullMessages, jetstream.FetchMaxWait(defaultPullExpiry))
			if err != nil {
				c.logger.Warn().Err(err).Msg("Failed to fetch heartbeat messages")
				time.Sleep(time.Second)

				continue
			}

			for msg := range msgs.Messages() {
				c.handleMessage(ctx, msg)
			}

			if fetchErr := msgs.Error(); fetchErr != nil {
				c.logger.Warn().Err(fetchErr).Msg("Heartbeat fetch error")
			}
		}
	}
}

func (c *Consumer) handleMessage(ctx context.Context, msg jetstream.Msg) {
	var report models.HeartbeatReport

	if err := json.Unmarshal(msg.Data(), &report); err != nil {
		c.logger.Warn().Err(err).Str("subject", msg.Subject()).Msg("Dropping undecodable heartbeat")
		_ = msg.Ack()

		return
	}

	_, err := c.ingestor.HandleReport(ctx, &report)
	if err == nil {
		_ = msg.Ack()
		return
	}

	// Invalid or unknown reports can never succeed on redelivery.
	if errors.Is(err, ErrInvalidReport) || errors.Is(err, ErrUnknownDevice) {
		c.logger.Warn().Err(err).Str("device_id", report.DeviceID).Msg("Dropping heartbeat report")
		_ = msg.Ack()

		return
	}

	if errors.Is(err, registry.ErrStorageTimeout) {
		c.logger.Warn().Err(err).Str("device_id", report.DeviceID).Msg("Storage timeout, requeueing heartbeat")
	} else {
		c.logger.Error().Err(err).Str("device_id", report.DeviceID).Msg("Failed to process heartbeat")
	}

	metadata, metaErr := msg.Metadata()
	if metaErr == nil && metadata.NumDelivered >= defaultMaxDeliver {
		c.logger.Error().Str("device_id", report.DeviceID).Msg("Max deliveries reached, discarding heartbeat")
		_ = msg.Ack()

		return
	}

	_ = msg.Nak()
}

// EnsureStream creates the heartbeat stream when it does not exist yet.
func EnsureStream(ctx context.Context, js jetstream.JetStream, cfg *models.NATSConfig) error {
	_, err := js.Stream(ctx, cfg.Stream)
	if err == nil {
		return nil
	}

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.Stream,
		Subjects: []string{cfg.Subject},
		Storage:  jetstream.FileStorage,
	})
	if err != nil {
		return fmt.Errorf("failed to create heartbeat stream: %w", err)
	}

	return nil
}
