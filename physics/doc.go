// Package physics is a small axis-aligned rigid body engine for platformers.
//
// Bodies fall under gravity, move under accumulated impulses and are resolved
// against each other one axis at a time. Overlapping pairs are tracked across
// ticks so that collision handlers and listeners see exactly one begin and one
// end per contact.
package physics
