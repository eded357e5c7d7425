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

import (
	"time"
)

// DeviceStatus is the lifecycle state of a device. Status is derived state:
// it only changes through the ingestor's promotion rule, the reaper's
// demotion rule, or an explicit deployment signal, always via compare-and-set.
type DeviceStatus string

const (
	DeviceStatusProvisioning DeviceStatus = "provisioning"
	DeviceStatusOnline       DeviceStatus = "online"
	DeviceStatusOffline      DeviceStatus = "offline"
	DeviceStatusUpdating     DeviceStatus = "updating"
	DeviceStatusError        DeviceStatus = "error"
)

// Valid reports whether s is one of the known device statuses.
func (s DeviceStatus) Valid() bool {
	switch s {
	case DeviceStatusProvisioning, DeviceStatusOnline, DeviceStatusOffline,
		DeviceStatusUpdating, DeviceStatusError:
		return true
	default:
		return false
	}
}

// Device represents a single managed device within a fleet.
type Device struct {
	ID                string       `json:"id"`
	FleetID           string       `json:"fleet_id"`
	Name              string       `json:"name"`
	DeviceID          string       `json:"device_id"` // external provisioning ID, immutable
	UUID              string       `json:"uuid"`      // external device UUID, immutable
	Status            DeviceStatus `json:"status"`
	DeviceType        string       `json:"device_type"`
	OSVersion         string       `json:"os_version,omitempty"`
	SupervisorVersion string       `json:"supervisor_version,omitempty"`
	IPAddress         string       `json:"ip_address,omitempty"`
	MACAddress        string       `json:"mac_address,omitempty"`
	LastSeen          *time.Time   `json:"last_seen"`
	CPUUsage          *float64     `json:"cpu_usage"`
	MemoryUsage       *float64     `json:"memory_usage"`
	StorageUsage      *float64     `json:"storage_usage"`
	Temperature       *float64     `json:"temperature"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
