// Package soap splits generated visit documentation into its SOAP sections
// and the nursing care plan.
//
// The parser is line oriented and tolerant of the formatting variations
// language models produce: plain "S（主観）:" labels, markdown bold or
// heading markers, half- or full-width brackets and colons. Anything it
// cannot place is left out of the structured result; callers always keep the
// raw text alongside it.
package soap
