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

package models

import "time"

// HardwareMetrics is the metric snapshot carried by a heartbeat. Nil fields
// are absent from the report and leave the stored value untouched
// (last-write-wins per field).
type HardwareMetrics struct {
	CPUUsage     *float64 `json:"cpu_usage,omitempty"`
	MemoryUsage  *float64 `json:"memory_usage,omitempty"`
	StorageUsage *float64 `json:"storage_usage,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
}

// HeartbeatReport is a periodic liveness report from a device, keyed by the
// external device ID. Reports never create devices; provisioning is a
// separate explicit act.
type HeartbeatReport struct {
	DeviceID          string          `json:"device_id"`
	Timestamp         time.Time       `json:"timestamp"`
	Metrics           HardwareMetrics `json:"metrics"`
	IPAddress         string          `json:"ip_address,omitempty"`
	OSVersion         string          `json:"os_version,omitempty"`
	SupervisorVersion string          `json:"supervisor_version,omitempty"`
}
