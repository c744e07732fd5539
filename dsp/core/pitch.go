package core

import "math"

// CentsToRatio returns the frequency ratio of an interval in cents: 2^(c/1200).
func CentsToRatio(cents Sample) Sample {
	return Sample(math.Pow(2, float64(cents)/CentsPerOctave))
}

// MidiCentsToFrequency converts an absolute pitch in cents above MIDI note 0
// to Hz.
func MidiCentsToFrequency(cents Sample) Sample {
	return Midi0Frequency * CentsToRatio(cents)
}

// MidiNoteToFrequency converts a possibly fractional MIDI note to Hz.
// Note 69 is 440 Hz. Notes outside 0..127 extrapolate.
func MidiNoteToFrequency(note Sample) Sample {
	return MidiCentsToFrequency(note * CentsPerNote)
}

// FrequencyToMidiNote converts Hz to a fractional MIDI note.
// Non-positive frequencies yield -Inf or NaN.
func FrequencyToMidiNote(frequency Sample) Sample {
	return NotesPerOctave * Sample(math.Log2(float64(frequency/Midi0Frequency)))
}

// FrequencyToMidiCents converts Hz to cents above MIDI note 0.
func FrequencyToMidiCents(frequency Sample) Sample {
	return CentsPerNote * FrequencyToMidiNote(frequency)
}
