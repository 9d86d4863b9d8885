// Package riddle simulates the 100 prisoners riddle under the
// cycle-following strategy.
//
// Each game shuffles slips into N boxes and hands N prisoners a distinct
// note. A prisoner opens the box numbered by their note, then the box
// numbered by each slip they find, and may open at most N/2 boxes. The group
// wins only if every prisoner finds their own number.
//
// Boxes, slips and notes all use the domain 0..N-1. All randomness comes from
// one *rand.Rand that the caller owns; games draw from it in order, so a seed
// fixes the whole run.
package riddle
