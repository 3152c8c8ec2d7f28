// Package bands aggregates a magnitude spectrum into two named frequency
// bands and derives relative-energy ratios with a categorical verdict.
//
// A patent vascular access produces a low-pitched continuous bruit, so energy
// concentrated below 500 Hz leans normal; a narrowed access whistles, pushing
// energy into the 1-3 kHz band. The thresholds are display heuristics, not a
// validated clinical model.
package bands
