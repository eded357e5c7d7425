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

// RecentDeviceEntry is the wire shape of one device in the dashboard
// recent-devices list. LastSeen is RFC 3339 or null.
type RecentDeviceEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DeviceID    string   `json:"device_id"`
	Status      string   `json:"status"`
	Fleet       string   `json:"fleet"`
	LastSeen    *string  `json:"last_seen"`
	CPUUsage    *float64 `json:"cpu_usage"`
	MemoryUsage *float64 `json:"memory_usage"`
	Temperature *float64 `json:"temperature"`
}

// DashboardResponse is the JSON body served for dashboard-stats queries.
type DashboardResponse struct {
	Stats         OrgStats            `json:"stats"`
	RecentDevices []RecentDeviceEntry `json:"recent_devices"`
}

// NewRecentDeviceEntry flattens a device plus its fleet name into the
// dashboard wire shape.
func NewRecentDeviceEntry(device *Device, fleetName string) RecentDeviceEntry {
	entry := RecentDeviceEntry{
		ID:          device.ID,
		Name:        device.Name,
		DeviceID:    device.DeviceID,
		Status:      string(device.Status),
		Fleet:       fleetName,
		CPUUsage:    device.CPUUsage,
		MemoryUsage: device.MemoryUsage,
		Temperature: device.Temperature,
	}

	if device.LastSeen != nil {
		formatted := device.LastSeen.UTC().Format(time.RFC3339)
		entry.LastSeen = &formatted
	}

	return entry
}
