// Package services implements the driving ports on top of the driven ones.
//
// Positions flow upward: PositionService turns heliocentric coordinates
// into a geocentric ecliptic position, PlacementBuilder names the sign and
// retrograde flag, ChartService does that for every body at one instant and
// TransitService repeats it across a span of time. HistoryService and
// SettingsService sit beside the pipeline.
package services
