// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package drv2605l controls a Texas Instruments DRV2605L haptic motor
// driver over I²C. The chip drives both eccentric rotating mass (ERM) and
// linear resonant actuator (LRA) motors and can play effects from its
// built-in waveform library, follow a PWM or analog input, or stream
// real-time amplitude from the host.
//
// New verifies the device identity, runs one of three calibration paths
// (auto-calibration, previously saved values, or factory programmed OTP
// values) and leaves the device in standby. Select an input mode with
// SetMode, leave standby with SetStandby(false) and trigger playback with
// SetGo.
//
// All DRV2605L units share I²C address 0x5A, so one bus carries at most
// one addressable unit (or several listening to the same writes).
//
// # Datasheet
//
// https://www.ti.com/lit/ds/symlink/drv2605l.pdf
package drv2605l
