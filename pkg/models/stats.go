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

// OrgStats holds per-organization dashboard counters. All counts come from
// a single consistent snapshot of the device set; the five status counts
// always sum to TotalDevices.
type OrgStats struct {
	TotalDevices        int `json:"total_devices"`
	OnlineDevices       int `json:"online_devices"`
	OfflineDevices      int `json:"offline_devices"`
	UpdatingDevices     int `json:"updating_devices"`
	ProvisioningDevices int `json:"provisioning_devices"`
	ErrorDevices        int `json:"error_devices"`
	TotalFleets         int `json:"total_fleets"`
	UpdatesToday        int `json:"updates_today"`
}

// FleetStats holds per-fleet device counters.
type FleetStats struct {
	FleetID     string `json:"fleet_id"`
	DeviceCount int    `json:"device_count"`
	OnlineCount int    `json:"online_count"`
}

// RecentDevice pairs a device with its fleet name for dashboard rendering.
type RecentDevice struct {
	Device    *Device `json:"device"`
	FleetName string  `json:"fleet_name"`
}

// DashboardSnapshot is the aggregator's answer to a dashboard query: stats
// and the recent-device list taken from the same storage snapshot.
type DashboardSnapshot struct {
	OrganizationID string         `json:"organization_id"`
	Stats          OrgStats       `json:"stats"`
	RecentDevices  []RecentDevice `json:"recent_devices"`
	GeneratedAt    time.Time      `json:"generated_at"`
}
