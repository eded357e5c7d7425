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
	"errors"
	"fmt"
)

var (
	// ErrInvalidReport marks a heartbeat that must be dropped without
	// touching stored state. The specific cause wraps it.
	ErrInvalidReport = errors.New("invalid heartbeat report")

	// ErrUnknownDevice reports a heartbeat for a device that was never
	// provisioned. Heartbeats do not auto-create devices.
	ErrUnknownDevice = errors.New("unknown device")

	ErrMissingDeviceID   = fmt.Errorf("%w: device id is required", ErrInvalidReport)
	ErrMissingTimestamp  = fmt.Errorf("%w: timestamp is required", ErrInvalidReport)
	ErrTimestampInFuture = fmt.Errorf("%w: timestamp is too far in the future", ErrInvalidReport)
	ErrOutOfOrder        = fmt.Errorf("%w: timestamp is not newer than stored last_seen", ErrInvalidReport)
)
