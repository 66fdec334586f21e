/*
Package value implements the closed value and type algebra of the language.

Scalar payloads (numbers, booleans, strings) are carried as cty values so the
HCL front-end can hand literals over without conversion. Quantities (Length,
Area, Volume, Angle) are stored in base units: millimeters for lengths and
radians for angles. Lists keep their items as Values so nested quantities and
model handles survive, and model handles are opaque integers owned by the
model package.
*/
package value
