package core

const (
	// Epsilon is the magnitude at or below which a sample counts as silent.
	Epsilon = 1e-16

	// DbGainConversionMult converts log10 amplitude to decibels.
	DbGainConversionMult = 20.0

	// Midi0Frequency is the frequency of MIDI note 0 in Hz.
	Midi0Frequency = 8.1757989156

	NotesPerOctave = 12
	CentsPerNote   = 100
	CentsPerOctave = NotesPerOctave * CentsPerNote

	// MidiSize is the number of addressable MIDI notes.
	MidiSize = 128

	// MaxCents is the cents value one past the highest MIDI note.
	// Conversions do not enforce it.
	MaxCents = MidiSize * CentsPerNote

	// MinQPow and MaxQPow bound the base-2 exponent of the resonance curve.
	MinQPow = -1.0
	MaxQPow = 4.0
)
