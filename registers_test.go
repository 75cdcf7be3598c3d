// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package drv2605l

import (
	"math/bits"
	"testing"
)

// TestFieldIsolation checks, for every register field and every possible
// starting byte, that writing the field changes only its own bit positions
// and that the written value reads back exactly.
func TestFieldIsolation(t *testing.T) {
	b2v := func(on bool) byte {
		if on {
			return 1
		}
		return 0
	}
	tests := []struct {
		name string
		mask byte
		set  func(b, v byte) byte
		get  func(b byte) byte
	}{
		{"mode.devReset", 0x80,
			func(b, v byte) byte { r := modeReg(b); r.setDevReset(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(modeReg(b).devReset()) }},
		{"mode.standby", 0x40,
			func(b, v byte) byte { r := modeReg(b); r.setStandby(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(modeReg(b).standby()) }},
		{"mode.mode", 0x07,
			func(b, v byte) byte { r := modeReg(b); r.setMode(v); return byte(r) },
			func(b byte) byte { return modeReg(b).mode() }},

		{"library.hiZ", 0x10,
			func(b, v byte) byte { r := libraryReg(b); r.setHiZ(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(libraryReg(b).hiZ()) }},
		{"library.library", 0x07,
			func(b, v byte) byte { r := libraryReg(b); r.setLibrary(v); return byte(r) },
			func(b byte) byte { return libraryReg(b).library() }},

		{"go.go", 0x01,
			func(b, v byte) byte { r := goReg(b); r.setGoBit(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(goReg(b).goBit()) }},

		{"feedback.lraSelect", 0x80,
			func(b, v byte) byte { r := feedbackReg(b); r.setLRASelect(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(feedbackReg(b).lraSelect()) }},
		{"feedback.brakeFactor", 0x70,
			func(b, v byte) byte { r := feedbackReg(b); r.setBrakeFactor(v); return byte(r) },
			func(b byte) byte { return feedbackReg(b).brakeFactor() }},
		{"feedback.loopGain", 0x0C,
			func(b, v byte) byte { r := feedbackReg(b); r.setLoopGain(v); return byte(r) },
			func(b byte) byte { return feedbackReg(b).loopGain() }},
		{"feedback.bemfGain", 0x03,
			func(b, v byte) byte { r := feedbackReg(b); r.setBEMFGain(v); return byte(r) },
			func(b byte) byte { return feedbackReg(b).bemfGain() }},

		{"control1.startupBoost", 0x80,
			func(b, v byte) byte { r := control1Reg(b); r.setStartupBoost(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control1Reg(b).startupBoost()) }},
		{"control1.acCouple", 0x20,
			func(b, v byte) byte { r := control1Reg(b); r.setACCouple(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control1Reg(b).acCouple()) }},
		{"control1.driveTime", 0x1F,
			func(b, v byte) byte { r := control1Reg(b); r.setDriveTime(v); return byte(r) },
			func(b byte) byte { return control1Reg(b).driveTime() }},

		{"control2.bidirInput", 0x80,
			func(b, v byte) byte { r := control2Reg(b); r.setBidirInput(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control2Reg(b).bidirInput()) }},
		{"control2.brakeStabilizer", 0x40,
			func(b, v byte) byte { r := control2Reg(b); r.setBrakeStabilizer(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control2Reg(b).brakeStabilizer()) }},
		{"control2.sampleTime", 0x30,
			func(b, v byte) byte { r := control2Reg(b); r.setSampleTime(v); return byte(r) },
			func(b byte) byte { return control2Reg(b).sampleTime() }},
		{"control2.blankingTime", 0x0C,
			func(b, v byte) byte { r := control2Reg(b); r.setBlankingTime(v); return byte(r) },
			func(b byte) byte { return control2Reg(b).blankingTime() }},
		{"control2.idissTime", 0x03,
			func(b, v byte) byte { r := control2Reg(b); r.setIDissTime(v); return byte(r) },
			func(b byte) byte { return control2Reg(b).idissTime() }},

		{"control3.ngThresh", 0xC0,
			func(b, v byte) byte { r := control3Reg(b); r.setNGThresh(v); return byte(r) },
			func(b byte) byte { return control3Reg(b).ngThresh() }},
		{"control3.ermOpenLoop", 0x20,
			func(b, v byte) byte { r := control3Reg(b); r.setERMOpenLoop(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control3Reg(b).ermOpenLoop()) }},
		{"control3.supplyCompDis", 0x10,
			func(b, v byte) byte { r := control3Reg(b); r.setSupplyCompDis(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control3Reg(b).supplyCompDis()) }},
		{"control3.dataFormatRTP", 0x08,
			func(b, v byte) byte { r := control3Reg(b); r.setDataFormatRTP(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control3Reg(b).dataFormatRTP()) }},
		{"control3.lraDriveMode", 0x04,
			func(b, v byte) byte { r := control3Reg(b); r.setLRADriveMode(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control3Reg(b).lraDriveMode()) }},
		{"control3.analogInput", 0x02,
			func(b, v byte) byte { r := control3Reg(b); r.setAnalogInput(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control3Reg(b).analogInput()) }},
		{"control3.lraOpenLoop", 0x01,
			func(b, v byte) byte { r := control3Reg(b); r.setLRAOpenLoop(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control3Reg(b).lraOpenLoop()) }},

		{"control4.zcDetTime", 0xC0,
			func(b, v byte) byte { r := control4Reg(b); r.setZCDetTime(v); return byte(r) },
			func(b byte) byte { return control4Reg(b).zcDetTime() }},
		{"control4.autoCalTime", 0x30,
			func(b, v byte) byte { r := control4Reg(b); r.setAutoCalTime(v); return byte(r) },
			func(b byte) byte { return control4Reg(b).autoCalTime() }},
		{"control4.otpProgram", 0x01,
			func(b, v byte) byte { r := control4Reg(b); r.setOTPProgram(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control4Reg(b).otpProgram()) }},

		{"control5.autoOpenLoopCnt", 0xC0,
			func(b, v byte) byte { r := control5Reg(b); r.setAutoOpenLoopCnt(v); return byte(r) },
			func(b byte) byte { return control5Reg(b).autoOpenLoopCnt() }},
		{"control5.lraAutoOpenLoop", 0x20,
			func(b, v byte) byte { r := control5Reg(b); r.setLRAAutoOpenLoop(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control5Reg(b).lraAutoOpenLoop()) }},
		{"control5.playbackInterval1ms", 0x10,
			func(b, v byte) byte { r := control5Reg(b); r.setPlaybackInterval1ms(v&1 != 0); return byte(r) },
			func(b byte) byte { return b2v(control5Reg(b).playbackInterval1ms()) }},
		{"control5.blankingTimeMSB", 0x0C,
			func(b, v byte) byte { r := control5Reg(b); r.setBlankingTimeMSB(v); return byte(r) },
			func(b byte) byte { return control5Reg(b).blankingTimeMSB() }},
		{"control5.idissTimeMSB", 0x03,
			func(b, v byte) byte { r := control5Reg(b); r.setIDissTimeMSB(v); return byte(r) },
			func(b byte) byte { return control5Reg(b).idissTimeMSB() }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			shift := uint(bits.TrailingZeros8(test.mask))
			fieldMax := test.mask >> shift
			for orig := 0; orig < 256; orig++ {
				for v := 0; v <= int(fieldMax); v++ {
					got := test.set(byte(orig), byte(v))
					if got&^test.mask != byte(orig)&^test.mask {
						t.Fatalf("orig=%#02x v=%d: bits outside %#02x changed: got %#02x", orig, v, test.mask, got)
					}
					if rb := test.get(got); rb != byte(v)&fieldMax {
						t.Fatalf("orig=%#02x v=%d: read back %d", orig, v, rb)
					}
				}
			}
		})
	}
}

// TestFieldWidth checks that an over-wide field value is masked to the
// field's allocated bits rather than spilling into its neighbors.
func TestFieldWidth(t *testing.T) {
	for orig := 0; orig < 256; orig++ {
		m := modeReg(orig)
		m.setMode(0xFF)
		if byte(m) != byte(orig)|0x07 {
			t.Fatalf("orig=%#02x: mode spilled: %#02x", orig, byte(m))
		}
		fb := feedbackReg(orig)
		fb.setLoopGain(0xFF)
		if byte(fb) != byte(orig)|0x0C {
			t.Fatalf("orig=%#02x: loop gain spilled: %#02x", orig, byte(fb))
		}
	}
}

// TestRoundTrip rebuilds a register byte from its unpacked fields and
// checks every exposed bit position survives.
func TestRoundTrip(t *testing.T) {
	for orig := 0; orig < 256; orig++ {
		b := byte(orig)

		src := modeReg(b)
		var m modeReg
		m.setDevReset(src.devReset())
		m.setStandby(src.standby())
		m.setMode(src.mode())
		if byte(m) != b&0xC7 {
			t.Fatalf("mode %#02x round-tripped to %#02x", b, byte(m))
		}

		sfb := feedbackReg(b)
		var fb feedbackReg
		fb.setLRASelect(sfb.lraSelect())
		fb.setBrakeFactor(sfb.brakeFactor())
		fb.setLoopGain(sfb.loopGain())
		fb.setBEMFGain(sfb.bemfGain())
		if byte(fb) != b {
			t.Fatalf("feedback %#02x round-tripped to %#02x", b, byte(fb))
		}

		sc3 := control3Reg(b)
		var c3 control3Reg
		c3.setNGThresh(sc3.ngThresh())
		c3.setERMOpenLoop(sc3.ermOpenLoop())
		c3.setSupplyCompDis(sc3.supplyCompDis())
		c3.setDataFormatRTP(sc3.dataFormatRTP())
		c3.setLRADriveMode(sc3.lraDriveMode())
		c3.setAnalogInput(sc3.analogInput())
		c3.setLRAOpenLoop(sc3.lraOpenLoop())
		if byte(c3) != b {
			t.Fatalf("control3 %#02x round-tripped to %#02x", b, byte(c3))
		}
	}
}

func TestStatus(t *testing.T) {
	for v := 0; v < 256; v++ {
		s := Status(v)
		if got, want := s.DeviceID(), uint8(v)>>5; got != want {
			t.Fatalf("%#02x: DeviceID = %d, want %d", v, got, want)
		}
		if got, want := s.DiagResult(), v&0x08 != 0; got != want {
			t.Fatalf("%#02x: DiagResult = %t, want %t", v, got, want)
		}
		if got, want := s.OverTemp(), v&0x02 != 0; got != want {
			t.Fatalf("%#02x: OverTemp = %t, want %t", v, got, want)
		}
		if got, want := s.OverCurrent(), v&0x01 != 0; got != want {
			t.Fatalf("%#02x: OverCurrent = %t, want %t", v, got, want)
		}
	}
}

func TestOTPStatus(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got, want := control4Reg(v).otpStatus(), v&0x04 != 0; got != want {
			t.Fatalf("%#02x: otpStatus = %t, want %t", v, got, want)
		}
	}
}

func TestWait(t *testing.T) {
	if got := Wait(5); got != Effect(0x85) {
		t.Fatalf("Wait(5) = %#02x", byte(got))
	}
	if got := Wait(200); got != Effect(0xFF) {
		t.Fatalf("Wait(200) = %#02x, want capped at %#02x", byte(got), 0xFF)
	}
}
