// Package message builds outreach messages for matched profiles.
//
// A prompt is assembled from a tone-specific instruction, a profile
// context block recovered from the profile's embedding text, and the
// sender's own context, then handed to a generation backend. Tones are
// a closed set; an unknown tone falls back to curious.
package message
