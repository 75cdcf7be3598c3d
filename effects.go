// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package drv2605l

// Library selects one of the built-in Immersion TS2200 waveform libraries.
// Libraries A through E are tuned for ERM motors with different rated and
// overdrive voltages; LibraryLRA is the only library for LRA motors.
type Library byte

const (
	LibraryEmpty Library = 0
	LibraryA     Library = 1
	LibraryB     Library = 2
	LibraryC     Library = 3
	LibraryD     Library = 4
	LibraryE     Library = 5
	LibraryLRA   Library = 6
)

// Effect is a waveform sequencer entry: either one of the 123 library
// effects, a Wait delay slot, or Stop to end the sequence early.
type Effect byte

// Wait returns a sequencer entry that pauses playback for n*10ms instead of
// playing an effect. n is capped at 127.
func Wait(n uint8) Effect {
	if n > 127 {
		n = 127
	}
	return Effect(0x80 | n)
}

// The TS2200 library effects. Names carry the intensity percentage from the
// datasheet effect list where several strengths of the same effect exist.
const (
	// Stop ends sequence playback; slots after it are not played.
	Stop Effect = 0

	StrongClick100 Effect = 1
	StrongClick60  Effect = 2
	StrongClick30  Effect = 3
	SharpClick100  Effect = 4
	SharpClick60   Effect = 5
	SharpClick30   Effect = 6
	SoftBump100    Effect = 7
	SoftBump60     Effect = 8
	SoftBump30     Effect = 9
	DoubleClick100 Effect = 10
	DoubleClick60  Effect = 11
	TripleClick100 Effect = 12
	SoftFuzz60     Effect = 13
	StrongBuzz100  Effect = 14
	Alert750ms     Effect = 15
	Alert1000ms    Effect = 16

	// Numbered click variants: 1 is 100%, then 80%, 60% and 30%.
	StrongClick1 Effect = 17
	StrongClick2 Effect = 18
	StrongClick3 Effect = 19
	StrongClick4 Effect = 20
	MediumClick1 Effect = 21
	MediumClick2 Effect = 22
	MediumClick3 Effect = 23
	SharpTick1   Effect = 24
	SharpTick2   Effect = 25
	SharpTick3   Effect = 26

	ShortDoubleClickStrong1 Effect = 27
	ShortDoubleClickStrong2 Effect = 28
	ShortDoubleClickStrong3 Effect = 29
	ShortDoubleClickStrong4 Effect = 30
	ShortDoubleClickMedium1 Effect = 31
	ShortDoubleClickMedium2 Effect = 32
	ShortDoubleClickMedium3 Effect = 33
	ShortDoubleSharpTick1   Effect = 34
	ShortDoubleSharpTick2   Effect = 35
	ShortDoubleSharpTick3   Effect = 36

	LongDoubleSharpClickStrong1 Effect = 37
	LongDoubleSharpClickStrong2 Effect = 38
	LongDoubleSharpClickStrong3 Effect = 39
	LongDoubleSharpClickStrong4 Effect = 40
	LongDoubleSharpClickMedium1 Effect = 41
	LongDoubleSharpClickMedium2 Effect = 42
	LongDoubleSharpClickMedium3 Effect = 43
	LongDoubleSharpTick1        Effect = 44
	LongDoubleSharpTick2        Effect = 45
	LongDoubleSharpTick3        Effect = 46

	Buzz1 Effect = 47
	Buzz2 Effect = 48
	Buzz3 Effect = 49
	Buzz4 Effect = 50
	Buzz5 Effect = 51

	PulsingStrong1 Effect = 52
	PulsingStrong2 Effect = 53
	PulsingMedium1 Effect = 54
	PulsingMedium2 Effect = 55
	PulsingSharp1  Effect = 56
	PulsingSharp2  Effect = 57

	TransitionClick1 Effect = 58
	TransitionClick2 Effect = 59
	TransitionClick3 Effect = 60
	TransitionClick4 Effect = 61
	TransitionClick5 Effect = 62
	TransitionClick6 Effect = 63
	TransitionHum1   Effect = 64
	TransitionHum2   Effect = 65
	TransitionHum3   Effect = 66
	TransitionHum4   Effect = 67
	TransitionHum5   Effect = 68
	TransitionHum6   Effect = 69

	// Transition ramps, 100% to 0% (down) and 0% to 100% (up).
	RampDownLongSmooth1   Effect = 70
	RampDownLongSmooth2   Effect = 71
	RampDownMediumSmooth1 Effect = 72
	RampDownMediumSmooth2 Effect = 73
	RampDownShortSmooth1  Effect = 74
	RampDownShortSmooth2  Effect = 75
	RampDownLongSharp1    Effect = 76
	RampDownLongSharp2    Effect = 77
	RampDownMediumSharp1  Effect = 78
	RampDownMediumSharp2  Effect = 79
	RampDownShortSharp1   Effect = 80
	RampDownShortSharp2   Effect = 81
	RampUpLongSmooth1     Effect = 82
	RampUpLongSmooth2     Effect = 83
	RampUpMediumSmooth1   Effect = 84
	RampUpMediumSmooth2   Effect = 85
	RampUpShortSmooth1    Effect = 86
	RampUpShortSmooth2    Effect = 87
	RampUpLongSharp1      Effect = 88
	RampUpLongSharp2      Effect = 89
	RampUpMediumSharp1    Effect = 90
	RampUpMediumSharp2    Effect = 91
	RampUpShortSharp1     Effect = 92
	RampUpShortSharp2     Effect = 93

	// Half-scale transition ramps, 50% to 0% and 0% to 50%.
	RampDownLongSmooth1Half   Effect = 94
	RampDownLongSmooth2Half   Effect = 95
	RampDownMediumSmooth1Half Effect = 96
	RampDownMediumSmooth2Half Effect = 97
	RampDownShortSmooth1Half  Effect = 98
	RampDownShortSmooth2Half  Effect = 99
	RampDownLongSharp1Half    Effect = 100
	RampDownLongSharp2Half    Effect = 101
	RampDownMediumSharp1Half  Effect = 102
	RampDownMediumSharp2Half  Effect = 103
	RampDownShortSharp1Half   Effect = 104
	RampDownShortSharp2Half   Effect = 105
	RampUpLongSmooth1Half     Effect = 106
	RampUpLongSmooth2Half     Effect = 107
	RampUpMediumSmooth1Half   Effect = 108
	RampUpMediumSmooth2Half   Effect = 109
	RampUpShortSmooth1Half    Effect = 110
	RampUpShortSmooth2Half    Effect = 111
	RampUpLongSharp1Half      Effect = 112
	RampUpLongSharp2Half      Effect = 113
	RampUpMediumSharp1Half    Effect = 114
	RampUpMediumSharp2Half    Effect = 115
	RampUpShortSharp1Half     Effect = 116
	RampUpShortSharp2Half     Effect = 117

	// LongBuzz plays until stopped programmatically.
	LongBuzz Effect = 118

	// Smooth hums with no kick or brake pulse, 50% down to 10%.
	SmoothHum1 Effect = 119
	SmoothHum2 Effect = 120
	SmoothHum3 Effect = 121
	SmoothHum4 Effect = 122
	SmoothHum5 Effect = 123
)
