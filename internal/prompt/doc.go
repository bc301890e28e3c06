// Package prompt turns a nurse's visit note into the prompt sent to the
// language model.
//
// The prompt is a fixed template: the output section headers (S/O/A/P and
// the 看護計画書 block) and the psychiatric home-visit vocabulary are
// constants of the template, and only the note's fields are substituted.
package prompt
