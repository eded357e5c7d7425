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

package metricstore

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/models"
)

const measurementDeviceMetrics = "device_metrics"

// InfluxRecorder writes heartbeat hardware metrics to an InfluxDB bucket.
type InfluxRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	logger   logger.Logger
}

// NewInfluxRecorder connects to InfluxDB using the given config.
func NewInfluxRecorder(cfg *models.InfluxConfig, log logger.Logger) *InfluxRecorder {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)

	return &InfluxRecorder{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		logger:   log.WithComponent("metricstore"),
	}
}

// RecordDeviceMetrics writes one point per heartbeat. Devices that report no
// hardware metrics produce no point.
func (r *InfluxRecorder) RecordDeviceMetrics(ctx context.Context, device *models.Device, ts time.Time) error {
	fields := make(map[string]interface{})

	if device.CPUUsage != nil {
		fields["cpu_usage"] = *device.CPUUsage
	}

	if device.MemoryUsage != nil {
		fields["memory_usage"] = *device.MemoryUsage
	}

	if device.StorageUsage != nil {
		fields["storage_usage"] = *device.StorageUsage
	}

	if device.Temperature != nil {
		fields["temperature"] = *device.Temperature
	}

	if len(fields) == 0 {
		return nil
	}

	point := influxdb2.NewPoint(measurementDeviceMetrics,
		map[string]string{
			"device_id": device.DeviceID,
			"fleet_id":  device.FleetID,
		},
		fields,
		ts,
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		return fmt.Errorf("failed to write device metrics point: %w", err)
	}

	return nil
}

// Close flushes and shuts down the underlying client.
func (r *InfluxRecorder) Close() {
	r.client.Close()
}
