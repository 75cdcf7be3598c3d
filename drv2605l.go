// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package drv2605l

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Addr is the I²C address of the DRV2605L. It is fixed in silicon and shared
// by every unit, so that multiple drivers on one bus can be broadcast the
// same waveform.
const Addr uint16 = 0x5A

// deviceID is the status register DEVICE_ID value for the DRV2605L.
const deviceID = 7

var (
	// ErrWrongDeviceID is returned when the status register reports a part
	// other than the DRV2605L.
	ErrWrongDeviceID = errors.New("drv2605l: unexpected device ID")

	// ErrConnection wraps any failed bus transaction.
	ErrConnection = errors.New("drv2605l: bus transaction failed")

	// ErrOTPNotProgrammed is returned when OTPCalibration is requested but
	// the device reports no factory programmed values.
	ErrOTPNotProgrammed = errors.New("drv2605l: no calibration values in OTP memory")

	// ErrCalibrationFailed is returned when the device's self-diagnostic
	// reports that auto-calibration did not converge.
	ErrCalibrationFailed = errors.New("drv2605l: auto-calibration failed")

	// ErrDiagnosticFailed is returned when an on-demand diagnostic run
	// reports an actuator fault.
	ErrDiagnosticFailed = errors.New("drv2605l: device diagnostic failed")

	// ErrTimeout is returned when the device does not clear the GO or
	// DEV_RESET bit within Opts.GoTimeout.
	ErrTimeout = errors.New("drv2605l: device did not finish in time")

	// ErrWrongMotorType is reserved for actuator type mismatches.
	ErrWrongMotorType = errors.New("drv2605l: wrong motor type")
)

// CalibrationParams configures auto-calibration for both ERM and LRA motors.
// RatedVoltage, OverdriveClamp and DriveTime must be computed from the motor
// and DRV2605L datasheets; for the remaining fields the
// DefaultCalibrationParams values are advised. Start from
// DefaultCalibrationParams and override the motor specific values.
type CalibrationParams struct {
	// RatedVoltage, see datasheet 8.5.2.1 Rated Voltage Programming.
	RatedVoltage uint8
	// OverdriveClamp, see datasheet 8.5.2.2 Overdrive Voltage-Clamp
	// Programming.
	OverdriveClamp uint8
	// DriveTime, see datasheet 8.5.1.1 Drive-Time Programming.
	DriveTime uint8
	// BrakeFactor is the feedback brake factor.
	BrakeFactor uint8
	// LoopGain controls the feedback loop aggressiveness.
	LoopGain uint8
	// AutoCalTime adjusts the auto-calibration duration.
	AutoCalTime uint8
	// SampleTime is the LRA auto-resonance sampling time.
	SampleTime uint8
	// BlankingTime is the LRA blanking time before back-EMF sampling.
	BlankingTime uint8
	// IDissTime is the LRA current dissipation time.
	IDissTime uint8
	// ZCDetTime is the LRA zero-crossing detect window.
	ZCDetTime uint8
}

// DefaultCalibrationParams holds the datasheet-advised defaults. The three
// required voltage/timing values are placeholders for a small generic ERM
// motor and should be overridden for a real design.
var DefaultCalibrationParams = CalibrationParams{
	RatedVoltage:   0x3E,
	OverdriveClamp: 0x8C,
	DriveTime:      0x13,
	BrakeFactor:    2,
	LoopGain:       2,
	AutoCalTime:    3,
	SampleTime:     3,
	BlankingTime:   1,
	IDissTime:      1,
	ZCDetTime:      0,
}

// LoadParams are the results of an auto-calibration run. They can be read
// back with Dev.Calibration after construction and hardcoded into a
// LoadCalibration on later boots to skip auto-calibration.
type LoadParams struct {
	// Compensation is the auto-calibration compensation result.
	Compensation uint8
	// BackEMF is the auto-calibration back-EMF result.
	BackEMF uint8
	// BackEMFGain is the calibrated back-EMF gain (2 bits).
	BackEMFGain uint8
}

// Calibration selects how the device obtains its motor compensation values
// during New. Implementations are AutoCalibration, LoadCalibration and
// OTPCalibration.
type Calibration interface {
	apply(d *Dev) error
}

// AutoCalibration runs the device's auto-calibration engine with the given
// motor parameters.
//
// Secure the motor to a mass before auto-calibrating; it cannot calibrate
// while bouncing around on a bench.
type AutoCalibration struct {
	Params CalibrationParams
}

func (c AutoCalibration) apply(d *Dev) error {
	p := c.Params

	var fb feedbackReg
	fb.setBrakeFactor(p.BrakeFactor)
	fb.setLoopGain(p.LoopGain)
	if d.lra {
		fb.setLRASelect(true)
	}
	var c2 control2Reg
	c2.setSampleTime(p.SampleTime)
	c2.setBlankingTime(p.BlankingTime)
	c2.setIDissTime(p.IDissTime)
	var c4 control4Reg
	c4.setZCDetTime(p.ZCDetTime)
	c4.setAutoCalTime(p.AutoCalTime)
	var c1 control1Reg
	c1.setDriveTime(p.DriveTime)

	if err := d.writeReg(regFeedback, byte(fb)); err != nil {
		return err
	}
	if err := d.writeReg(regControl2, byte(c2)); err != nil {
		return err
	}
	if err := d.writeReg(regControl4, byte(c4)); err != nil {
		return err
	}
	if err := d.writeReg(regRatedVoltage, p.RatedVoltage); err != nil {
		return err
	}
	if err := d.writeReg(regOverdriveClamp, p.OverdriveClamp); err != nil {
		return err
	}
	if err := d.writeReg(regControl1, byte(c1)); err != nil {
		return err
	}
	_, err := d.calibrate()
	return err
}

// LoadCalibration writes previously captured calibration results instead of
// running auto-calibration. It is common to auto-calibrate once, read the
// results back with Dev.Calibration and hardcode them here.
type LoadCalibration struct {
	Params LoadParams
}

func (c LoadCalibration) apply(d *Dev) error {
	v, err := d.readReg(regFeedback)
	if err != nil {
		return err
	}
	fb := feedbackReg(v)
	fb.setBEMFGain(c.Params.BackEMFGain)
	if err := d.writeReg(regFeedback, byte(fb)); err != nil {
		return err
	}
	if err := d.writeReg(regAutoCalComp, c.Params.Compensation); err != nil {
		return err
	}
	return d.writeReg(regAutoCalBackEMF, c.Params.BackEMF)
}

// OTPCalibration trusts calibration values programmed into the device's
// one-time-programmable memory at the factory. This is uncommon; New fails
// with ErrOTPNotProgrammed if the OTP has not been programmed.
type OTPCalibration struct{}

func (OTPCalibration) apply(d *Dev) error {
	v, err := d.readReg(regControl4)
	if err != nil {
		return err
	}
	if !control4Reg(v).otpStatus() {
		return ErrOTPNotProgrammed
	}
	return nil
}

// ROMParams stretch or shrink the built-in waveforms. All offsets are in
// multiples of the playback interval (5ms, or 1ms with Interval1ms).
type ROMParams struct {
	// OverdriveTime extends the overdrive portion of the waveform.
	OverdriveTime uint8
	// SustainPositiveTime extends the positive sustain portion.
	SustainPositiveTime uint8
	// SustainNegativeTime extends the negative sustain portion.
	SustainNegativeTime uint8
	// BrakeTime extends the braking portion.
	BrakeTime uint8
	// Interval1ms decreases the playback interval from 5ms to 1ms.
	Interval1ms bool
}

// Mode selects one of the four mutually exclusive input modes. The
// implementations are ROM, PWM, Analog and RealTimePlayback.
type Mode interface {
	isMode()
}

// ROM plays effects from the selected built-in waveform library. Program
// the sequencer with SetROM or SetROMSingle, then trigger with SetGo.
//
// For ERM motors SetMode enables open-loop drive, as all ERM libraries are
// tuned for open loop.
type ROM struct {
	Library Library
	Params  ROMParams
}

// PWM drives the motor from a PWM signal on the IN/TRIG pin: 0% duty is
// full braking, 50% is half rated voltage, 100% is rated voltage.
type PWM struct{}

// Analog drives the motor from an analog voltage on the IN/TRIG pin, with
// 1.8V corresponding to 100% of rated voltage.
type Analog struct{}

// RealTimePlayback drives the motor from the duty cycle set with SetRTP:
// 0x00 is full braking, 0x7F half rated voltage, 0xFF rated voltage.
type RealTimePlayback struct{}

func (ROM) isMode()              {}
func (PWM) isMode()              {}
func (Analog) isMode()           {}
func (RealTimePlayback) isMode() {}

// Opts holds the construction options for the device.
type Opts struct {
	// LRA selects linear resonant actuator drive. The default is ERM.
	LRA bool
	// Calibration selects the startup calibration path. nil runs
	// auto-calibration with DefaultCalibrationParams.
	Calibration Calibration
	// GoTimeout bounds waits for the GO and DEV_RESET bits to self-clear.
	GoTimeout time.Duration
	// GoPollInterval is the delay between polls while waiting.
	GoPollInterval time.Duration
}

// DefaultOpts holds the default construction options: an ERM motor,
// auto-calibrated with DefaultCalibrationParams.
var DefaultOpts = Opts{
	GoTimeout:      3 * time.Second,
	GoPollInterval: time.Millisecond,
}

// Dev is a handle to a DRV2605L. The device's registers are the single
// source of truth for its mode, standby and calibration state; the handle
// holds no shadow copy and every read-modify-write starts from a fresh
// register read.
type Dev struct {
	c              conn.Conn
	lra            bool
	goTimeout      time.Duration
	goPollInterval time.Duration
}

// New returns a calibrated DRV2605L left in standby for power savings.
//
// The device identity is verified first, then the chosen calibration path
// runs. A bus fault at any step aborts immediately with a wrapped
// ErrConnection; registers already written stay written, no compensating
// writes are attempted.
//
// Use SetMode, SetStandby(false) and SetGo to play something.
func New(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{
		c:              &i2c.Dev{Bus: b, Addr: Addr},
		lra:            opts.LRA,
		goTimeout:      opts.GoTimeout,
		goPollInterval: opts.GoPollInterval,
	}
	if d.goTimeout == 0 {
		d.goTimeout = DefaultOpts.GoTimeout
	}
	if d.goPollInterval == 0 {
		d.goPollInterval = DefaultOpts.GoPollInterval
	}

	st, err := d.Status()
	if err != nil {
		return nil, err
	}
	if st.DeviceID() != deviceID {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWrongDeviceID, st.DeviceID(), deviceID)
	}

	cal := opts.Calibration
	if cal == nil {
		cal = AutoCalibration{Params: DefaultCalibrationParams}
	}
	if err := cal.apply(d); err != nil {
		return nil, err
	}

	if err := d.SetStandby(true); err != nil {
		return nil, err
	}
	return d, nil
}

// SetMode switches the device to the given input mode, clearing any mode
// specific bits a previous mode left behind. It does not touch the standby
// bit; sequencing standby, mode and GO is the caller's responsibility.
func (d *Dev) SetMode(mode Mode) error {
	mv, err := d.readReg(regMode)
	if err != nil {
		return err
	}
	m := modeReg(mv)
	cv, err := d.readReg(regControl3)
	if err != nil {
		return err
	}
	ctrl3 := control3Reg(cv)

	switch mode := mode.(type) {
	case PWM:
		// Undo open loop in case the previous mode was ROM.
		if !d.lra {
			ctrl3.setERMOpenLoop(false)
		}
		ctrl3.setAnalogInput(false)
		if err := d.writeReg(regControl3, byte(ctrl3)); err != nil {
			return err
		}
		m.setMode(modePWMAnalog)
		return d.writeReg(regMode, byte(m))

	case Analog:
		if !d.lra {
			ctrl3.setERMOpenLoop(false)
		}
		ctrl3.setAnalogInput(true)
		if err := d.writeReg(regControl3, byte(ctrl3)); err != nil {
			return err
		}
		m.setMode(modePWMAnalog)
		return d.writeReg(regMode, byte(m))

	case RealTimePlayback:
		// No other mode reads this bit, so it is never unset elsewhere.
		ctrl3.setDataFormatRTP(true)
		if !d.lra {
			ctrl3.setERMOpenLoop(false)
		}
		if err := d.writeReg(regControl3, byte(ctrl3)); err != nil {
			return err
		}
		m.setMode(modeRealTimePlayback)
		return d.writeReg(regMode, byte(m))

	case ROM:
		c5v, err := d.readReg(regControl5)
		if err != nil {
			return err
		}
		ctrl5 := control5Reg(c5v)
		ctrl5.setPlaybackInterval1ms(mode.Params.Interval1ms)
		if err := d.writeReg(regControl5, byte(ctrl5)); err != nil {
			return err
		}
		if err := d.writeReg(regOverdriveTime, mode.Params.OverdriveTime); err != nil {
			return err
		}
		if err := d.writeReg(regSustainTimePos, mode.Params.SustainPositiveTime); err != nil {
			return err
		}
		if err := d.writeReg(regSustainTimeNeg, mode.Params.SustainNegativeTime); err != nil {
			return err
		}
		if err := d.writeReg(regBrakeTime, mode.Params.BrakeTime); err != nil {
			return err
		}
		// The ERM libraries require open loop drive.
		if !d.lra {
			ctrl3.setERMOpenLoop(true)
		}
		if err := d.writeReg(regControl3, byte(ctrl3)); err != nil {
			return err
		}
		lv, err := d.readReg(regLibrary)
		if err != nil {
			return err
		}
		lib := libraryReg(lv)
		lib.setLibrary(byte(mode.Library))
		if err := d.writeReg(regLibrary, byte(lib)); err != nil {
			return err
		}
		m.setMode(modeInternalTrigger)
		return d.writeReg(regMode, byte(m))

	default:
		return fmt.Errorf("drv2605l: unsupported mode %T", mode)
	}
}

// SetROM programs the eight waveform sequencer slots to play in order on
// SetGo. Playback stops early at a Stop entry; use Wait entries to insert
// pauses between effects. Only meaningful in ROM mode.
func (d *Dev) SetROM(effects [8]Effect) error {
	buf := make([]byte, 0, 9)
	buf = append(buf, byte(regWaveformSeq))
	for _, e := range effects {
		buf = append(buf, byte(e))
	}
	if err := d.c.Tx(buf, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

// SetROMSingle programs a single effect followed by a Stop terminator into
// the waveform sequencer. Only meaningful in ROM mode.
func (d *Dev) SetROMSingle(e Effect) error {
	if err := d.c.Tx([]byte{byte(regWaveformSeq), byte(e), byte(Stop)}, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

// SetRTP sets the real-time playback duty cycle. The value persists until
// the next SetRTP, a mode change or standby. Only meaningful in
// RealTimePlayback mode.
func (d *Dev) SetRTP(duty uint8) error {
	return d.writeReg(regRTPInput, duty)
}

// RTP returns the current real-time playback duty cycle.
func (d *Dev) RTP() (uint8, error) {
	return d.readReg(regRTPInput)
}

// SetGo sets the GO bit, starting playback (or calibration or diagnostics)
// in whatever mode is configured.
func (d *Dev) SetGo() error {
	v, err := d.readReg(regGo)
	if err != nil {
		return err
	}
	g := goReg(v)
	g.setGoBit(true)
	return d.writeReg(regGo, byte(g))
}

// Go returns the GO bit. In modes without another completion signal it can
// be polled until it clears to detect the end of waveform playback.
func (d *Dev) Go() (bool, error) {
	v, err := d.readReg(regGo)
	if err != nil {
		return false, err
	}
	return goReg(v).goBit(), nil
}

// SetStandby enters or leaves the low power standby state. All mode and
// calibration configuration is kept.
func (d *Dev) SetStandby(enable bool) error {
	v, err := d.readReg(regMode)
	if err != nil {
		return err
	}
	m := modeReg(v)
	m.setStandby(enable)
	return d.writeReg(regMode, byte(m))
}

// Status returns the device status register.
func (d *Dev) Status() (Status, error) {
	v, err := d.readReg(regStatus)
	return Status(v), err
}

// Calibration returns the compensation values currently resident in the
// device, either loaded at construction or produced by auto-calibration.
func (d *Dev) Calibration() (LoadParams, error) {
	fb, err := d.readReg(regFeedback)
	if err != nil {
		return LoadParams{}, err
	}
	comp, err := d.readReg(regAutoCalComp)
	if err != nil {
		return LoadParams{}, err
	}
	bemf, err := d.readReg(regAutoCalBackEMF)
	if err != nil {
		return LoadParams{}, err
	}
	return LoadParams{
		Compensation: comp,
		BackEMF:      bemf,
		BackEMFGain:  feedbackReg(fb).bemfGain(),
	}, nil
}

// Diagnostics runs the actuator diagnostic and reports
// ErrDiagnosticFailed if the device detects a fault such as an absent or
// shorted motor. The device is left out of standby in diagnostics mode.
func (d *Dev) Diagnostics() error {
	if err := d.trigger(modeDiagnostics); err != nil {
		return err
	}
	st, err := d.Status()
	if err != nil {
		return err
	}
	if st.DiagResult() {
		return ErrDiagnosticFailed
	}
	return nil
}

// Reset performs the equivalent of a power cycle: playback is interrupted
// and every register returns to its default value. Since the defaults
// select an ERM motor, the actuator type is re-selected afterwards for LRA
// devices. Mode and calibration configuration is lost.
func (d *Dev) Reset() error {
	var m modeReg
	m.setDevReset(true)
	if err := d.writeReg(regMode, byte(m)); err != nil {
		return err
	}
	deadline := time.Now().Add(d.goTimeout)
	for {
		v, err := d.readReg(regMode)
		if err != nil {
			return err
		}
		if !modeReg(v).devReset() {
			break
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		time.Sleep(d.goPollInterval)
	}
	if !d.lra {
		return nil
	}
	v, err := d.readReg(regFeedback)
	if err != nil {
		return err
	}
	fb := feedbackReg(v)
	fb.setLRASelect(true)
	return d.writeReg(regFeedback, byte(fb))
}

// BatteryVoltage returns the supply voltage as measured by the device.
func (d *Dev) BatteryVoltage() (physic.ElectricPotential, error) {
	v, err := d.readReg(regVbatMonitor)
	if err != nil {
		return 0, err
	}
	// VDD = value * 5.6V / 255.
	return physic.ElectricPotential(v) * 5600 / 255 * physic.MilliVolt, nil
}

// LRAPeriod returns the measured LRA resonance period. Only meaningful for
// LRA motors running closed loop.
func (d *Dev) LRAPeriod() (time.Duration, error) {
	v, err := d.readReg(regResonancePeriod)
	if err != nil {
		return 0, err
	}
	// 98.46us per count.
	return time.Duration(v) * 98460 * time.Nanosecond, nil
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("drv2605l: %s", d.c.String())
}

// Halt puts the device in standby. Implements conn.Resource.
func (d *Dev) Halt() error {
	return d.SetStandby(true)
}

// calibrate runs the auto-calibration engine and returns the results.
func (d *Dev) calibrate() (LoadParams, error) {
	if err := d.trigger(modeAutoCalibration); err != nil {
		return LoadParams{}, err
	}
	st, err := d.Status()
	if err != nil {
		return LoadParams{}, err
	}
	if st.DiagResult() {
		return LoadParams{}, ErrCalibrationFailed
	}
	return d.Calibration()
}

// trigger leaves standby, enters the given mode, sets GO and waits for the
// device to clear it.
func (d *Dev) trigger(mode byte) error {
	v, err := d.readReg(regMode)
	if err != nil {
		return err
	}
	m := modeReg(v)
	m.setStandby(false)
	m.setMode(mode)
	if err := d.writeReg(regMode, byte(m)); err != nil {
		return err
	}
	if err := d.SetGo(); err != nil {
		return err
	}
	return d.waitGo()
}

// waitGo polls the GO bit until the device clears it or the deadline
// passes.
func (d *Dev) waitGo() error {
	deadline := time.Now().Add(d.goTimeout)
	for {
		busy, err := d.Go()
		if err != nil {
			return err
		}
		if !busy {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		time.Sleep(d.goPollInterval)
	}
}

func (d *Dev) readReg(r register) (byte, error) {
	var buf [1]byte
	if err := d.c.Tx([]byte{byte(r)}, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return buf[0], nil
}

func (d *Dev) writeReg(r register, v byte) error {
	if err := d.c.Tx([]byte{byte(r), v}, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return nil
}

var _ conn.Resource = &Dev{}
