// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package drv2605l

// register is the one byte address of a DRV2605L register.
type register byte

const (
	regStatus          register = 0x00
	regMode            register = 0x01
	regRTPInput        register = 0x02
	regLibrary         register = 0x03
	regWaveformSeq     register = 0x04 // first of 8 sequencer slots, 0x04-0x0B
	regGo              register = 0x0C
	regOverdriveTime   register = 0x0D
	regSustainTimePos  register = 0x0E
	regSustainTimeNeg  register = 0x0F
	regBrakeTime       register = 0x10
	regRatedVoltage    register = 0x16
	regOverdriveClamp  register = 0x17
	regAutoCalComp     register = 0x18
	regAutoCalBackEMF  register = 0x19
	regFeedback        register = 0x1A
	regControl1        register = 0x1B
	regControl2        register = 0x1C
	regControl3        register = 0x1D
	regControl4        register = 0x1E
	regControl5        register = 0x1F
	regOpenLoopPeriod  register = 0x20
	regVbatMonitor     register = 0x21
	regResonancePeriod register = 0x22
)

// Values of the mode register MODE field.
const (
	modeInternalTrigger      byte = 0
	modeExternalTriggerEdge  byte = 1
	modeExternalTriggerLevel byte = 2
	modePWMAnalog            byte = 3
	modeAudioToVibe          byte = 4
	modeRealTimePlayback     byte = 5
	modeDiagnostics          byte = 6
	modeAutoCalibration      byte = 7
)

func getBits(v byte, shift, width uint) byte {
	return (v >> shift) & (1<<width - 1)
}

func putBits(v byte, shift, width uint, f byte) byte {
	mask := byte(1<<width-1) << shift
	return v&^mask | f<<shift&mask
}

func getBit(v byte, n uint) bool {
	return v&(1<<n) != 0
}

func putBit(v byte, n uint, on bool) byte {
	if on {
		return v | 1<<n
	}
	return v &^ (1 << n)
}

// Status is the raw value of the status register (0x00).
type Status byte

// DeviceID identifies the part; the DRV2605L reports 7.
func (s Status) DeviceID() uint8 { return getBits(byte(s), 5, 3) }

// DiagResult reports whether the last auto-calibration or diagnostic run
// failed. Valid only after the GO bit has cleared.
func (s Status) DiagResult() bool { return getBit(byte(s), 3) }

// OverTemp reports that the device is exceeding its temperature threshold.
func (s Status) OverTemp() bool { return getBit(byte(s), 1) }

// OverCurrent reports that the device detected an overcurrent event.
func (s Status) OverCurrent() bool { return getBit(byte(s), 0) }

// modeReg is the mode register (0x01): DEV_RESET[7], STANDBY[6], MODE[2:0].
type modeReg byte

func (r modeReg) devReset() bool { return getBit(byte(r), 7) }

func (r *modeReg) setDevReset(on bool) { *r = modeReg(putBit(byte(*r), 7, on)) }

func (r modeReg) standby() bool { return getBit(byte(r), 6) }

func (r *modeReg) setStandby(on bool) { *r = modeReg(putBit(byte(*r), 6, on)) }

func (r modeReg) mode() byte { return getBits(byte(r), 0, 3) }

func (r *modeReg) setMode(v byte) { *r = modeReg(putBits(byte(*r), 0, 3, v)) }

// libraryReg is the library selection register (0x03): HI_Z[4],
// LIBRARY_SEL[2:0].
type libraryReg byte

func (r libraryReg) hiZ() bool { return getBit(byte(r), 4) }

func (r *libraryReg) setHiZ(on bool) { *r = libraryReg(putBit(byte(*r), 4, on)) }

func (r libraryReg) library() byte { return getBits(byte(r), 0, 3) }

func (r *libraryReg) setLibrary(v byte) { *r = libraryReg(putBits(byte(*r), 0, 3, v)) }

// goReg is the GO register (0x0C). The GO bit starts playback, calibration
// or diagnostics and self-clears on completion.
type goReg byte

func (r goReg) goBit() bool { return getBit(byte(r), 0) }

func (r *goReg) setGoBit(on bool) { *r = goReg(putBit(byte(*r), 0, on)) }

// feedbackReg is the feedback control register (0x1A): N_ERM_LRA[7],
// FB_BRAKE_FACTOR[6:4], LOOP_GAIN[3:2], BEMF_GAIN[1:0].
type feedbackReg byte

func (r feedbackReg) lraSelect() bool { return getBit(byte(r), 7) }

func (r *feedbackReg) setLRASelect(on bool) { *r = feedbackReg(putBit(byte(*r), 7, on)) }

func (r feedbackReg) brakeFactor() byte { return getBits(byte(r), 4, 3) }

func (r *feedbackReg) setBrakeFactor(v byte) { *r = feedbackReg(putBits(byte(*r), 4, 3, v)) }

func (r feedbackReg) loopGain() byte { return getBits(byte(r), 2, 2) }

func (r *feedbackReg) setLoopGain(v byte) { *r = feedbackReg(putBits(byte(*r), 2, 2, v)) }

func (r feedbackReg) bemfGain() byte { return getBits(byte(r), 0, 2) }

func (r *feedbackReg) setBEMFGain(v byte) { *r = feedbackReg(putBits(byte(*r), 0, 2, v)) }

// control1Reg (0x1B): STARTUP_BOOST[7], AC_COUPLE[5], DRIVE_TIME[4:0].
type control1Reg byte

func (r control1Reg) startupBoost() bool { return getBit(byte(r), 7) }

func (r *control1Reg) setStartupBoost(on bool) { *r = control1Reg(putBit(byte(*r), 7, on)) }

func (r control1Reg) acCouple() bool { return getBit(byte(r), 5) }

func (r *control1Reg) setACCouple(on bool) { *r = control1Reg(putBit(byte(*r), 5, on)) }

func (r control1Reg) driveTime() byte { return getBits(byte(r), 0, 5) }

func (r *control1Reg) setDriveTime(v byte) { *r = control1Reg(putBits(byte(*r), 0, 5, v)) }

// control2Reg (0x1C): BIDIR_INPUT[7], BRAKE_STABILIZER[6], SAMPLE_TIME[5:4],
// BLANKING_TIME[3:2], IDISS_TIME[1:0].
type control2Reg byte

func (r control2Reg) bidirInput() bool { return getBit(byte(r), 7) }

func (r *control2Reg) setBidirInput(on bool) { *r = control2Reg(putBit(byte(*r), 7, on)) }

func (r control2Reg) brakeStabilizer() bool { return getBit(byte(r), 6) }

func (r *control2Reg) setBrakeStabilizer(on bool) { *r = control2Reg(putBit(byte(*r), 6, on)) }

func (r control2Reg) sampleTime() byte { return getBits(byte(r), 4, 2) }

func (r *control2Reg) setSampleTime(v byte) { *r = control2Reg(putBits(byte(*r), 4, 2, v)) }

func (r control2Reg) blankingTime() byte { return getBits(byte(r), 2, 2) }

func (r *control2Reg) setBlankingTime(v byte) { *r = control2Reg(putBits(byte(*r), 2, 2, v)) }

func (r control2Reg) idissTime() byte { return getBits(byte(r), 0, 2) }

func (r *control2Reg) setIDissTime(v byte) { *r = control2Reg(putBits(byte(*r), 0, 2, v)) }

// control3Reg (0x1D): NG_THRESH[7:6], ERM_OPEN_LOOP[5], SUPPLY_COMP_DIS[4],
// DATA_FORMAT_RTP[3], LRA_DRIVE_MODE[2], N_PWM_ANALOG[1], LRA_OPEN_LOOP[0].
type control3Reg byte

func (r control3Reg) ngThresh() byte { return getBits(byte(r), 6, 2) }

func (r *control3Reg) setNGThresh(v byte) { *r = control3Reg(putBits(byte(*r), 6, 2, v)) }

func (r control3Reg) ermOpenLoop() bool { return getBit(byte(r), 5) }

func (r *control3Reg) setERMOpenLoop(on bool) { *r = control3Reg(putBit(byte(*r), 5, on)) }

func (r control3Reg) supplyCompDis() bool { return getBit(byte(r), 4) }

func (r *control3Reg) setSupplyCompDis(on bool) { *r = control3Reg(putBit(byte(*r), 4, on)) }

func (r control3Reg) dataFormatRTP() bool { return getBit(byte(r), 3) }

func (r *control3Reg) setDataFormatRTP(on bool) { *r = control3Reg(putBit(byte(*r), 3, on)) }

func (r control3Reg) lraDriveMode() bool { return getBit(byte(r), 2) }

func (r *control3Reg) setLRADriveMode(on bool) { *r = control3Reg(putBit(byte(*r), 2, on)) }

// analogInput selects the analog interpretation of the IN/TRIG pin; clear
// means PWM (the datasheet's N_PWM_ANALOG).
func (r control3Reg) analogInput() bool { return getBit(byte(r), 1) }

func (r *control3Reg) setAnalogInput(on bool) { *r = control3Reg(putBit(byte(*r), 1, on)) }

func (r control3Reg) lraOpenLoop() bool { return getBit(byte(r), 0) }

func (r *control3Reg) setLRAOpenLoop(on bool) { *r = control3Reg(putBit(byte(*r), 0, on)) }

// control4Reg (0x1E): ZC_DET_TIME[7:6], AUTO_CAL_TIME[5:4], OTP_STATUS[2],
// OTP_PROGRAM[0]. OTP_STATUS is set by the factory programming process and
// is read-only.
type control4Reg byte

func (r control4Reg) zcDetTime() byte { return getBits(byte(r), 6, 2) }

func (r *control4Reg) setZCDetTime(v byte) { *r = control4Reg(putBits(byte(*r), 6, 2, v)) }

func (r control4Reg) autoCalTime() byte { return getBits(byte(r), 4, 2) }

func (r *control4Reg) setAutoCalTime(v byte) { *r = control4Reg(putBits(byte(*r), 4, 2, v)) }

func (r control4Reg) otpStatus() bool { return getBit(byte(r), 2) }

func (r control4Reg) otpProgram() bool { return getBit(byte(r), 0) }

func (r *control4Reg) setOTPProgram(on bool) { *r = control4Reg(putBit(byte(*r), 0, on)) }

// control5Reg (0x1F): AUTO_OL_CNT[7:6], LRA_AUTO_OPEN_LOOP[5],
// PLAYBACK_INTERVAL[4], BLANKING_TIME[3:2] and IDISS_TIME[1:0] upper bits.
type control5Reg byte

func (r control5Reg) autoOpenLoopCnt() byte { return getBits(byte(r), 6, 2) }

func (r *control5Reg) setAutoOpenLoopCnt(v byte) { *r = control5Reg(putBits(byte(*r), 6, 2, v)) }

func (r control5Reg) lraAutoOpenLoop() bool { return getBit(byte(r), 5) }

func (r *control5Reg) setLRAAutoOpenLoop(on bool) { *r = control5Reg(putBit(byte(*r), 5, on)) }

func (r control5Reg) playbackInterval1ms() bool { return getBit(byte(r), 4) }

func (r *control5Reg) setPlaybackInterval1ms(on bool) { *r = control5Reg(putBit(byte(*r), 4, on)) }

func (r control5Reg) blankingTimeMSB() byte { return getBits(byte(r), 2, 2) }

func (r *control5Reg) setBlankingTimeMSB(v byte) { *r = control5Reg(putBits(byte(*r), 2, 2, v)) }

func (r control5Reg) idissTimeMSB() byte { return getBits(byte(r), 0, 2) }

func (r *control5Reg) setIDissTimeMSB(v byte) { *r = control5Reg(putBits(byte(*r), 0, 2, v)) }
